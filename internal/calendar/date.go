// Package calendar implements a date value that belongs to one of two civil
// calendars, AD (Gregorian-style, formulaic leap years) and BS (Bikram
// Sambat, month lengths from a lookup table), together with day, month and
// year arithmetic, conversion between the systems and interval counting.
//
// Date values are immutable; every operation returns a new value.
package calendar

import (
	"fmt"
)

// Supported years, in either system.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a calendar date in either the AD or the BS system.
// The zero value is not a valid date; use Of, MustOf, Now or Today.
type Date struct {
	system System
	year   int
	month  Month
	day    int
}

// Of returns the date year-month-day in system. It fails with ErrInvalidDate
// when year is outside [MinYear,MaxYear], month is outside [1,12] or day
// exceeds the length of that month in that year of system.
func Of(year, month, day int, system System) (Date, error) {
	if !system.Valid() {
		return Date{}, fmt.Errorf("%w: unknown calendar system %d", ErrInvalidDate, uint8(system))
	}
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range [%d,%d]", ErrInvalidDate, year, MinYear, MaxYear)
	}
	m, err := MonthOf(month)
	if err != nil {
		return Date{}, err
	}
	if n := LengthOfMonth(year, m, system); day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: day %d out of range [1,%d] for %04d-%02d (%s)",
			ErrInvalidDate, day, n, year, month, system)
	}
	return Date{system: system, year: year, month: m, day: day}, nil
}

// MustOf is like Of but panics if the date is invalid.
func MustOf(year, month, day int, system System) Date {
	d, err := Of(year, month, day, system)
	if err != nil {
		panic(err)
	}
	return d
}

// System returns the calendar system of d.
func (d Date) System() System { return d.system }

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() Month { return d.month }

// Day returns the day-of-month of d.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == (Date{}) }

// IsLeapYear reports whether year has a leap day in system. Only AD has
// leap years (4/100/400 rule); the BS year-to-year variation is entirely
// encoded in its lookup table.
func IsLeapYear(year int, system System) bool {
	if system != AD {
		return false
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// LengthOfMonth returns the number of days of month in year of system, or 0
// for an invalid month or system.
func LengthOfMonth(year int, month Month, system System) int {
	if !month.Valid() {
		return 0
	}
	switch system {
	case AD:
		if month == February && IsLeapYear(year, AD) {
			return 29
		}
		return adMonthDays[month-1]
	case BS:
		return bsYear(year)[month-1]
	}
	return 0
}

// LengthOfYear returns the number of days of year in system.
func LengthOfYear(year int, system System) int {
	switch system {
	case AD:
		if IsLeapYear(year, AD) {
			return 366
		}
		return 365
	case BS:
		total := 0
		for _, n := range bsYear(year) {
			total += n
		}
		return total
	}
	return 0
}

// IsLeapYear reports whether the year of d is a leap year.
func (d Date) IsLeapYear() bool { return IsLeapYear(d.year, d.system) }

// LengthOfMonth returns the number of days in the month of d.
func (d Date) LengthOfMonth() int { return LengthOfMonth(d.year, d.month, d.system) }

// LengthOfYear returns the number of days in the year of d.
func (d Date) LengthOfYear() int { return LengthOfYear(d.year, d.system) }

// DayOfYear returns the 1-based day of the year of d.
func (d Date) DayOfYear() int {
	n := d.day
	for m := January; m < d.month; m++ {
		n += LengthOfMonth(d.year, m, d.system)
	}
	return n
}

// AtDay returns d with its day-of-month replaced by day.
func (d Date) AtDay(day int) (Date, error) {
	if n := d.LengthOfMonth(); day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: day %d out of range [1,%d] for %04d-%02d (%s)",
			ErrInvalidDate, day, n, d.year, int(d.month), d.system)
	}
	d.day = day
	return d, nil
}

// AtStartOfMonth returns the first day of the month of d.
func (d Date) AtStartOfMonth() Date {
	d.day = 1
	return d
}

// AtEndOfMonth returns the last day of the month of d.
func (d Date) AtEndOfMonth() Date {
	d.day = d.LengthOfMonth()
	return d
}

// AtStartOfYear returns the first day of the year of d.
func (d Date) AtStartOfYear() Date {
	d.month, d.day = January, 1
	return d
}

// StartDayOfWeek returns the day of week of the first day of the month of d.
func (d Date) StartDayOfWeek() DayOfWeek {
	return d.AtStartOfMonth().DayOfWeek()
}

// Compare orders d and other lexicographically on (year, month, day) and
// returns -1, 0 or +1. Dates of different systems are not ordered; convert
// one of them first. Compare returns ErrCrossSystemComparison in that case.
func (d Date) Compare(other Date) (int, error) {
	if d.system != other.system {
		return 0, fmt.Errorf("%w: %s and %s", ErrCrossSystemComparison, d, other)
	}
	return compareFields(d, other), nil
}

// Before reports whether d is strictly earlier than other. It is false when
// the two dates belong to different systems; use Compare to detect that
// case, or convert one date first.
func (d Date) Before(other Date) bool {
	c, err := d.Compare(other)
	return err == nil && c < 0
}

// After reports whether d is strictly later than other. It is false when
// the two dates belong to different systems; use Compare to detect that
// case, or convert one date first.
func (d Date) After(other Date) bool {
	c, err := d.Compare(other)
	return err == nil && c > 0
}

// Equal reports whether d and other denote the same day, converting other
// into the system of d first.
func (d Date) Equal(other Date) bool {
	return d == Convert(other, d.system)
}

func compareFields(a, b Date) int {
	switch {
	case a.year != b.year:
		return sign(a.year - b.year)
	case a.month != b.month:
		return sign(int(a.month) - int(b.month))
	}
	return sign(a.day - b.day)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
