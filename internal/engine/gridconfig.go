package engine

import (
	"fmt"
	"iter"

	"github.com/tartampluch/go-patro/internal/calendar"
)

// GridConfig is the full input of a grid layout.
type GridConfig struct {
	StartBound     calendar.Date
	EndBound       calendar.Date
	FirstDayOfWeek calendar.DayOfWeek
	MaxRowCount    int
	InDateStyle    InDateStyle
	OutDateStyle   OutDateStyle
	// HasBoundaries selects month-aligned pages; false lays the range out as
	// one continuous run of weeks.
	HasBoundaries bool
}

// Validate reports configuration errors as calendar.ErrInvalidRange.
func (c GridConfig) Validate() error {
	if err := validateRange(c.StartBound, c.EndBound, c.FirstDayOfWeek, c.MaxRowCount); err != nil {
		return err
	}
	if int(c.InDateStyle) >= len(inDateNames) || int(c.OutDateStyle) >= len(outDateNames) {
		return fmt.Errorf("%w: unknown padding style %s/%s", calendar.ErrInvalidRange, c.InDateStyle, c.OutDateStyle)
	}
	return nil
}

// Generate lays out the configured range.
func (c GridConfig) Generate() ([]MonthPage, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.HasBoundaries {
		return GenerateBoundedMonths(c.StartBound, c.EndBound, c.FirstDayOfWeek, c.MaxRowCount, c.InDateStyle, c.OutDateStyle)
	}
	return GenerateUnboundedMonths(c.StartBound, c.EndBound, c.FirstDayOfWeek, c.MaxRowCount, c.InDateStyle, c.OutDateStyle)
}

// Pages iterates over the pages Generate returns. Every iteration starts
// over from the configuration. A configuration error is yielded once with a
// zero page.
func (c GridConfig) Pages() iter.Seq2[MonthPage, error] {
	return func(yield func(MonthPage, error) bool) {
		pages, err := c.Generate()
		if err != nil {
			yield(MonthPage{}, err)
			return
		}
		for _, p := range pages {
			if !yield(p, nil) {
				return
			}
		}
	}
}
