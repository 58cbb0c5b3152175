package calendar

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is used to determine "today" in either calendar system.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Now returns today's date in system according to the host clock.
func Now(system System) Date {
	return Today(RealClock{}, system)
}

// Today returns the date of clock.Now() in system. The civil date of the
// clock's location is taken as the AD date and converted for BS.
func Today(clock Clock, system System) Date {
	return FromTime(clock.Now(), system)
}

// FromTime returns the civil date of t in system. The time of day and the
// location of t are not retained.
func FromTime(t time.Time, system System) Date {
	y, m, d := t.Date()
	return Convert(Date{system: AD, year: y, month: Month(m), day: d}, system)
}
