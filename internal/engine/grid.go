package engine

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-patro/internal/calendar"
)

// MaxWeekRows is the height of a full month grid: a 32-day month starting on
// the last column spans six weeks.
const MaxWeekRows = 6

// DayOwner tells which month a grid cell belongs to relative to the month
// being displayed.
type DayOwner uint8

const (
	PreviousMonth DayOwner = iota + 1
	CurrentMonth
	NextMonth
)

var dayOwnerNames = [...]string{"previous_month", "current_month", "next_month"}

func (o DayOwner) String() string {
	if o < PreviousMonth || o > NextMonth {
		return fmt.Sprintf("DayOwner(%d)", uint8(o))
	}
	return dayOwnerNames[o-1]
}

// MarshalText implements encoding.TextMarshaler.
func (o DayOwner) MarshalText() ([]byte, error) {
	if o < PreviousMonth || o > NextMonth {
		return nil, fmt.Errorf("invalid day owner: %d", uint8(o))
	}
	return []byte(o.String()), nil
}

// InDateStyle selects which months receive leading days from the previous
// month in their first row.
type InDateStyle uint8

const (
	InDateAllMonths InDateStyle = iota
	InDateFirstMonth
	InDateNone
)

var inDateNames = [...]string{"all_months", "first_month", "none"}

func (s InDateStyle) String() string {
	if int(s) >= len(inDateNames) {
		return fmt.Sprintf("InDateStyle(%d)", uint8(s))
	}
	return inDateNames[s]
}

// ParseInDateStyle parses "all_months", "first_month" or "none". Dashes are
// accepted in place of underscores.
func ParseInDateStyle(val string) (InDateStyle, error) {
	key := normalizeStyle(val)
	for i, name := range inDateNames {
		if key == name {
			return InDateStyle(i), nil
		}
	}
	return 0, fmt.Errorf("invalid in-date style: %q", val)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *InDateStyle) UnmarshalText(text []byte) error {
	v, err := ParseInDateStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// OutDateStyle selects how the end of a month (or range) is padded with days
// of the following month.
type OutDateStyle uint8

const (
	// OutDateEndOfRow pads the last row to seven days.
	OutDateEndOfRow OutDateStyle = iota
	// OutDateEndOfGrid also appends whole rows so every page has the same
	// height.
	OutDateEndOfGrid
	// OutDateNone leaves the last row short.
	OutDateNone
)

var outDateNames = [...]string{"end_of_row", "end_of_grid", "none"}

func (s OutDateStyle) String() string {
	if int(s) >= len(outDateNames) {
		return fmt.Sprintf("OutDateStyle(%d)", uint8(s))
	}
	return outDateNames[s]
}

// ParseOutDateStyle parses "end_of_row", "end_of_grid" or "none".
func ParseOutDateStyle(val string) (OutDateStyle, error) {
	key := normalizeStyle(val)
	for i, name := range outDateNames {
		if key == name {
			return OutDateStyle(i), nil
		}
	}
	return 0, fmt.Errorf("invalid out-date style: %q", val)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OutDateStyle) UnmarshalText(text []byte) error {
	v, err := ParseOutDateStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func normalizeStyle(val string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(val)), "-", "_")
}

// Day is one grid cell.
type Day struct {
	Date  calendar.Date
	Owner DayOwner
}

// WeekRow is one line of the grid in calendar order, starting on the
// configured first day of week. Rows hold seven days except the first row of
// a month generated without leading days and the last row under OutDateNone.
type WeekRow []Day

// YearMonth identifies a calendar month in one system.
type YearMonth struct {
	System calendar.System
	Year   int
	Month  calendar.Month
}

// YearMonthOf returns the month d belongs to.
func YearMonthOf(d calendar.Date) YearMonth {
	return YearMonth{System: d.System(), Year: d.Year(), Month: d.Month()}
}

// Name returns e.g. "Magh 2077".
func (ym YearMonth) Name() string {
	return fmt.Sprintf("%s %d", ym.Month.Name(ym.System), ym.Year)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d (%s)", ym.Year, int(ym.Month), ym.System)
}

// MonthPage is one block of week rows. A month with more rows than the row
// ceiling spans several consecutive pages sharing YearMonth and GroupSize.
type MonthPage struct {
	YearMonth    YearMonth
	WeekRows     []WeekRow
	IndexInGroup int
	GroupSize    int
}

// Days returns the cells of p in order, optionally restricted to owner.
func (p MonthPage) Days(owner DayOwner) []Day {
	var days []Day
	for _, row := range p.WeekRows {
		for _, d := range row {
			if owner == 0 || d.Owner == owner {
				days = append(days, d)
			}
		}
	}
	return days
}

// GenerateWeekRows returns the rows of the month containing month.
//
// With includeLeadingDays the first row starts on firstDayOfWeek and is
// padded with PreviousMonth days. Without it those slots are omitted and the
// first row is short; the column of any cell is its DayOfWeek. Trailing
// padding follows outDateStyle, and OutDateEndOfGrid fills the grid to
// MaxWeekRows rows.
func GenerateWeekRows(month calendar.Date, firstDayOfWeek calendar.DayOfWeek, includeLeadingDays bool, outDateStyle OutDateStyle) []WeekRow {
	return generateWeekRows(month, firstDayOfWeek, includeLeadingDays, outDateStyle, MaxWeekRows)
}

// generateWeekRows builds a month grid whose height under OutDateEndOfGrid
// is at least MaxWeekRows and a multiple of align.
func generateWeekRows(month calendar.Date, first calendar.DayOfWeek, leading bool, out OutDateStyle, align int) []WeekRow {
	start := month.AtStartOfMonth()
	b := newRowBuilder(first, start.DayOfWeek())

	if leading {
		offset := first.Until(start.DayOfWeek())
		b.weekday = first
		d := start.MinusDays(offset)
		for range offset {
			b.add(d, PreviousMonth)
			d = d.PlusDays(1)
		}
	}

	d := start
	for range start.LengthOfMonth() {
		b.add(d, CurrentMonth)
		d = d.PlusDays(1)
	}

	b.pad(d, out, align)
	return b.rows
}

// rowBuilder splits a day sequence into week rows on firstDayOfWeek.
type rowBuilder struct {
	first   calendar.DayOfWeek
	weekday calendar.DayOfWeek
	rows    []WeekRow
	current WeekRow
}

func newRowBuilder(first, weekday calendar.DayOfWeek) *rowBuilder {
	return &rowBuilder{first: first, weekday: weekday}
}

// add appends d, whose day of week must be b.weekday.
func (b *rowBuilder) add(d calendar.Date, owner DayOwner) {
	if b.weekday == b.first && len(b.current) > 0 {
		b.flush()
	}
	b.current = append(b.current, Day{Date: d, Owner: owner})
	b.weekday = b.weekday.Plus(1)
}

func (b *rowBuilder) flush() {
	b.rows = append(b.rows, b.current)
	b.current = make(WeekRow, 0, 7)
}

// pad closes the last row and applies the trailing policy, drawing
// NextMonth days from next onwards.
func (b *rowBuilder) pad(next calendar.Date, out OutDateStyle, align int) {
	if out != OutDateNone {
		for b.weekday != b.first {
			b.add(next, NextMonth)
			next = next.PlusDays(1)
		}
	}
	if len(b.current) > 0 {
		b.flush()
	}
	if out != OutDateEndOfGrid {
		return
	}
	target := max(len(b.rows), MaxWeekRows)
	if align > 0 {
		target = (target + align - 1) / align * align
	}
	for len(b.rows) < target {
		for range 7 {
			b.add(next, NextMonth)
			next = next.PlusDays(1)
		}
		b.flush()
	}
}
