package calendar

// fastPathMaxDay bounds the day-of-month values that PlusDays resolves with
// direct month-length lookups: at most the current month plus one more.
const fastPathMaxDay = 59

// PlusDays returns d shifted by n days, rolling over month and year
// boundaries in either direction.
//
// BS month lengths have no closed form, so offsets that leave the current or
// the following month are simulated one day at a time against the month
// length table.
func (d Date) PlusDays(n int) Date {
	if n == 0 {
		return d
	}
	if dom := d.day + n; dom > 0 && dom <= fastPathMaxDay {
		monthLen := d.LengthOfMonth()
		if dom <= monthLen {
			d.day = dom
			return d
		}
		next := d.AtStartOfMonth().plusMonth()
		if dom-monthLen <= next.LengthOfMonth() {
			next.day = dom - monthLen
			return next
		}
	}
	scratch := d
	for ; n > 0; n-- {
		scratch.addSingleDay()
	}
	for ; n < 0; n++ {
		scratch.subtractSingleDay()
	}
	return scratch
}

// MinusDays returns d shifted back by n days.
func (d Date) MinusDays(n int) Date {
	return d.PlusDays(-n)
}

// PlusMonths returns d shifted by n months. The day is clamped to the last
// day of the target month when it would overflow, so this never fails.
func (d Date) PlusMonths(n int) Date {
	if n == 0 {
		return d
	}
	count := d.year*12 + int(d.month-1) + n
	d.year = floorDiv(count, 12)
	d.month = Month(floorMod(count, 12) + 1)
	d.day = min(d.day, d.LengthOfMonth())
	return d
}

// MinusMonths returns d shifted back by n months, clamping the day.
func (d Date) MinusMonths(n int) Date {
	return d.PlusMonths(-n)
}

// PlusYears returns d shifted by n years. The day is clamped to the length
// of the same month in the target year, e.g. AD Feb 29 becomes Feb 28.
func (d Date) PlusYears(n int) Date {
	if n == 0 {
		return d
	}
	d.year += n
	d.day = min(d.day, d.LengthOfMonth())
	return d
}

// MinusYears returns d shifted back by n years, clamping the day.
func (d Date) MinusYears(n int) Date {
	return d.PlusYears(-n)
}

// plusMonth returns the same day of the next month without clamping; only
// used on first days of a month.
func (d Date) plusMonth() Date {
	d.month = d.month.Plus(1)
	if d.month == January {
		d.year++
	}
	return d
}

func (d *Date) addSingleDay() {
	d.day++
	if d.day > d.LengthOfMonth() {
		d.day = 1
		d.month = d.month.Plus(1)
		if d.month == January {
			d.year++
		}
	}
}

func (d *Date) subtractSingleDay() {
	d.day--
	if d.day < 1 {
		d.month = d.month.Minus(1)
		if d.month == December {
			d.year--
		}
		d.day = d.LengthOfMonth()
	}
}
