package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Month is a month-of-year ordinal in [1,12]. Each calendar system maps its
// own named months onto the same ordinals: January is Baishakh in BS,
// February is Jestha and so on through December/Chaitra.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var (
	adMonthNames = [...]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	bsMonthNames = [...]string{"Baishakh", "Jestha", "Asadh", "Shrawan", "Bhadra", "Ashwin",
		"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra"}
)

// MonthOf returns the month with ordinal v in [1,12].
func MonthOf(v int) (Month, error) {
	if v < 1 || v > 12 {
		return 0, fmt.Errorf("%w: month %d out of range [1,12]", ErrInvalidDate, v)
	}
	return Month(v), nil
}

// Valid reports whether m is in [1,12].
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// Plus returns the month n months after m, wrapping modulo 12.
func (m Month) Plus(n int) Month {
	return Month(floorMod(int(m)-1+n, 12) + 1)
}

// Minus returns the month n months before m, wrapping modulo 12.
func (m Month) Minus(n int) Month {
	return m.Plus(-n)
}

// Name returns the romanized month name used by system.
func (m Month) Name(system System) string {
	if !m.Valid() {
		return m.String()
	}
	if system == BS {
		return bsMonthNames[m-1]
	}
	return adMonthNames[m-1]
}

func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return adMonthNames[m-1]
}

// ParseMonth parses a numeric month ("5", "05") or a month name, or a prefix
// of at least three letters of it, of either system ("May", "bhadra").
// Case and diacritics are ignored, so "Māgh" parses as Magh.
func ParseMonth(val string) (Month, error) {
	val = strings.TrimSpace(val)
	if n, err := strconv.Atoi(val); err == nil {
		return MonthOf(n)
	}
	lc := foldName(val)
	if len(lc) >= 3 {
		for _, names := range [][12]string{adMonthNames, bsMonthNames} {
			for i, name := range names {
				if strings.HasPrefix(strings.ToLower(name), lc) {
					return Month(i + 1), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("invalid month: %q", val)
}
