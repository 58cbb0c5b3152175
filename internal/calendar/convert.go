package calendar

// The reference dates of both systems denote the same real day, a Sunday.
// They are the single calibration point between the two calendars: every
// conversion counts days from one anchor and replays them from the other.
var (
	adReferenceDate = Date{system: AD, year: 2002, month: April, day: 14}
	bsReferenceDate = Date{system: BS, year: 2059, month: January, day: 1}
)

// referenceDay is the day of week of both reference dates.
const referenceDay = Sunday

// ReferenceDate returns the anchor date of system.
func ReferenceDate(system System) Date {
	switch system {
	case AD:
		return adReferenceDate
	case BS:
		return bsReferenceDate
	}
	return Date{}
}

// Convert returns d expressed in the target system. Converting into the
// system d already belongs to returns d unchanged, as does an invalid target.
func Convert(d Date, target System) Date {
	if d.system == target || !target.Valid() || !d.system.Valid() {
		return d
	}
	return ReferenceDate(target).PlusDays(d.daysSinceReference())
}

// Reverse returns d converted into the other system.
func (d Date) Reverse() Date {
	return Convert(d, d.system.Other())
}

// DayOfWeek returns the day of week of d.
func (d Date) DayOfWeek() DayOfWeek {
	return referenceDay.Plus(d.daysSinceReference())
}

// daysSinceReference returns the signed day distance from the reference date
// of the system of d.
func (d Date) daysSinceReference() int {
	return DaysBetween(ReferenceDate(d.system), d)
}
