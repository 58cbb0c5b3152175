package calendar

// DaysBetween returns the signed number of days from a to b: positive when b
// is chronologically after a, negative when before, and 0 for the same day.
// When the systems differ b is converted into the system of a first, so
// DaysBetween(a, b) == -DaysBetween(b, a) always holds.
func DaysBetween(a, b Date) int {
	early, late, s := order(a, Convert(b, a.system))
	if s == 0 {
		return 0
	}
	if early.year == late.year {
		return s * (late.DayOfYear() - early.DayOfYear())
	}
	days := early.LengthOfYear() - early.DayOfYear()
	for year := early.year + 1; year < late.year; year++ {
		days += LengthOfYear(year, a.system)
	}
	days += late.DayOfYear()
	return s * days
}

// MonthsBetween returns the signed number of calendar months from a to b:
// the elapsed years times 12 plus the month-index delta, ignoring the days.
// It is 0 for two dates of the same month.
func MonthsBetween(a, b Date) int {
	early, late, s := order(a, Convert(b, a.system))
	if s == 0 {
		return 0
	}
	return s * ((late.year-early.year)*12 + int(late.month) - int(early.month))
}

// WeeksBetween returns the signed number of weeks, each starting on
// firstDayOfWeek, that the inclusive range between a and b touches. A range
// of one or two days within the same week counts as 1 (or -1).
func WeeksBetween(a, b Date, firstDayOfWeek DayOfWeek) int {
	early, _, s := order(a, Convert(b, a.system))
	if s == 0 {
		s = 1
	}
	total := s*DaysBetween(a, b) + 1
	if total <= 1 {
		return s
	}
	// Days from the earlier date through the end of its week.
	head := 7 - firstDayOfWeek.Until(early.DayOfWeek())
	count := 1
	if rest := total - head; rest > 0 {
		count += (rest + 6) / 7
	}
	return s * count
}

// order returns a and b sorted chronologically along with the sign of the
// interval from a to b. Both dates must belong to the same system.
func order(a, b Date) (early, late Date, s int) {
	switch compareFields(a, b) {
	case 0:
		return a, b, 0
	case -1:
		return a, b, 1
	}
	return b, a, -1
}
