package calendar

import (
	"fmt"
	"strings"
)

// System identifies which of the two supported calendars a date belongs to.
// The zero value is not a valid system.
type System uint8

const (
	// AD is the Gregorian-style solar calendar with formulaic leap years.
	AD System = iota + 1
	// BS is the Bikram Sambat lunar-solar calendar. Its month lengths are
	// irregular and only available through a per-year lookup table.
	BS
)

// Valid reports whether s is AD or BS.
func (s System) Valid() bool {
	return s == AD || s == BS
}

// Other returns the counterpart system.
func (s System) Other() System {
	switch s {
	case AD:
		return BS
	case BS:
		return AD
	}
	return s
}

func (s System) String() string {
	switch s {
	case AD:
		return "AD"
	case BS:
		return "BS"
	}
	return fmt.Sprintf("System(%d)", uint8(s))
}

// ParseSystem parses "AD" or "BS" in any case.
func ParseSystem(val string) (System, error) {
	switch strings.ToUpper(strings.TrimSpace(val)) {
	case "AD":
		return AD, nil
	case "BS":
		return BS, nil
	}
	return 0, fmt.Errorf("invalid calendar system: %q", val)
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid calendar system: %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	v, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
