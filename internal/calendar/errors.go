package calendar

import "errors"

// Error taxonomy of the date engine. All of them are local validation errors;
// callers match them with errors.Is since the returned errors carry context.
var (
	// ErrInvalidDate reports a month or day outside the valid range of its
	// calendar system and year.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange reports a malformed date range or row ceiling.
	ErrInvalidRange = errors.New("invalid range")

	// ErrCrossSystemComparison reports an ordering of two dates that belong to
	// different calendar systems without an explicit conversion first.
	ErrCrossSystemComparison = errors.New("cross-system comparison")
)
