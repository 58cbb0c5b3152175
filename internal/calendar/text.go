package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// String renders d as "2081-05-12 (BS)".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d (%s)", d.year, int(d.month), d.day, d.system)
}

var (
	numericDateRe = regexp.MustCompile(`^(-?[0-9]+)-([0-9]{1,2})-([0-9]{1,2})$`)
	taggedDateRe  = regexp.MustCompile(`^(\S+)\s+\(?([A-Za-z]{2})\)?$`)
)

// Parse parses a numeric date of the form "2081-05-12" in system, with the
// same validation as Of.
func Parse(val string, system System) (Date, error) {
	parts := numericDateRe.FindStringSubmatch(strings.TrimSpace(val))
	if parts == nil {
		return Date{}, fmt.Errorf("%w: %q, expected format YYYY-MM-DD", ErrInvalidDate, val)
	}
	var fields [3]int
	for i, part := range parts[1:] {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, val, err)
		}
		fields[i] = n
	}
	return Of(fields[0], fields[1], fields[2], system)
}

// ParseDate parses a date tagged with its system, either "2081-05-12 BS" or
// the String form "2081-05-12 (BS)".
func ParseDate(val string) (Date, error) {
	parts := taggedDateRe.FindStringSubmatch(strings.TrimSpace(val))
	if parts == nil {
		return Date{}, fmt.Errorf("%w: %q, expected format YYYY-MM-DD SYSTEM", ErrInvalidDate, val)
	}
	system, err := ParseSystem(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return Parse(parts[1], system)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (d Date) MarshalText() ([]byte, error) {
	if !d.system.Valid() {
		return nil, fmt.Errorf("%w: zero date", ErrInvalidDate)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the forms
// understood by ParseDate.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
