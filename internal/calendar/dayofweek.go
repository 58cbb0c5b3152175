package calendar

import (
	"fmt"
	"strings"
)

// DayOfWeek is a day of the 7-day cycle with ISO ordinals, Monday = 1 through
// Sunday = 7. Both calendar systems share the same week.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayOfWeekOf returns the day of week with ordinal v in [1,7].
func DayOfWeekOf(v int) (DayOfWeek, error) {
	if v < 1 || v > 7 {
		return 0, fmt.Errorf("invalid day of week: %d", v)
	}
	return DayOfWeek(v), nil
}

// Valid reports whether d is one of Monday..Sunday.
func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Plus returns the day of week days after d, wrapping modulo 7. Negative
// offsets move backwards. The result is always a valid DayOfWeek.
func (d DayOfWeek) Plus(days int) DayOfWeek {
	return DayOfWeek(floorMod(int(d)-1+days, 7) + 1)
}

// Minus returns the day of week days before d.
func (d DayOfWeek) Minus(days int) DayOfWeek {
	return d.Plus(-days)
}

// Until returns the number of days, in [0,6], from d forward to other.
func (d DayOfWeek) Until(other DayOfWeek) int {
	return floorMod(int(other)-int(d), 7)
}

// WeekDays returns the seven days of a week that starts on first.
func WeekDays(first DayOfWeek) [7]DayOfWeek {
	var days [7]DayOfWeek
	for i := range days {
		days[i] = first.Plus(i)
	}
	return days
}

func (d DayOfWeek) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d-1]
}

// ParseDayOfWeek parses a day name, or any prefix of at least three letters
// of it, in either case ("sun", "Sunday").
func ParseDayOfWeek(val string) (DayOfWeek, error) {
	lc := foldName(val)
	if len(lc) >= 3 {
		for i, name := range dayNames {
			if strings.HasPrefix(strings.ToLower(name), lc) {
				return DayOfWeek(i + 1), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid day of week: %q", val)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DayOfWeek) UnmarshalText(text []byte) error {
	v, err := ParseDayOfWeek(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
