package engine

import (
	"fmt"
	"iter"

	"github.com/tartampluch/go-patro/internal/calendar"
)

// GenerateBoundedMonths returns the pages of every month from the month of
// startMonth through the month of endMonth, inclusive. Each month is laid
// out on its own and split into pages of at most maxRowCount rows.
//
// InDateFirstMonth pads only the first month with leading days,
// InDateAllMonths pads every month and InDateNone none. Under
// OutDateEndOfGrid all pages of a month have the same height: the month is
// padded to at least MaxWeekRows rows, rounded up to a multiple of
// min(maxRowCount, MaxWeekRows). With a ceiling of 4 or 5 that yields 8 or
// 10 rows, so trailing rows, and with a ceiling of 5 a whole page, may hold
// only NextMonth days.
func GenerateBoundedMonths(startMonth, endMonth calendar.Date, firstDayOfWeek calendar.DayOfWeek, maxRowCount int,
	inDateStyle InDateStyle, outDateStyle OutDateStyle) ([]MonthPage, error) {
	if err := validateRange(startMonth, endMonth, firstDayOfWeek, maxRowCount); err != nil {
		return nil, err
	}
	first, last := startMonth.AtStartOfMonth(), endMonth.AtStartOfMonth()
	if last.Before(first) {
		return nil, fmt.Errorf("%w: end month %s precedes start month %s",
			calendar.ErrInvalidRange, YearMonthOf(last), YearMonthOf(first))
	}

	align := min(maxRowCount, MaxWeekRows)
	var pages []MonthPage
	for m := first; !m.After(last); m = m.PlusMonths(1) {
		leading := inDateStyle == InDateAllMonths || (inDateStyle == InDateFirstMonth && m == first)
		rows := generateWeekRows(m, firstDayOfWeek, leading, outDateStyle, align)
		pages = append(pages, paginate(YearMonthOf(m), rows, maxRowCount)...)
	}
	return pages, nil
}

// GenerateUnboundedMonths lays out [startDate, endDate] as one continuous
// run of weeks, ignoring month boundaries, and cuts it into pages of
// maxRowCount rows. Only the last page may be shorter, unless outDateStyle
// is OutDateEndOfGrid.
//
// Leading days before startDate are added back to firstDayOfWeek unless
// inDateStyle is InDateNone. A page's YearMonth is the month of its first
// CurrentMonth day; consecutive pages with the same YearMonth form a group.
func GenerateUnboundedMonths(startDate, endDate calendar.Date, firstDayOfWeek calendar.DayOfWeek, maxRowCount int,
	inDateStyle InDateStyle, outDateStyle OutDateStyle) ([]MonthPage, error) {
	if err := validateRange(startDate, endDate, firstDayOfWeek, maxRowCount); err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date %s precedes start date %s",
			calendar.ErrInvalidRange, endDate, startDate)
	}

	startDay := startDate.DayOfWeek()
	b := newRowBuilder(firstDayOfWeek, startDay)
	if inDateStyle != InDateNone {
		offset := firstDayOfWeek.Until(startDay)
		b.weekday = firstDayOfWeek
		d := startDate.MinusDays(offset)
		for range offset {
			b.add(d, PreviousMonth)
			d = d.PlusDays(1)
		}
	}

	d := startDate
	for !d.After(endDate) {
		b.add(d, CurrentMonth)
		d = d.PlusDays(1)
	}
	// Whole trailing rows are added per page below, not per month.
	rowStyle := outDateStyle
	if rowStyle == OutDateEndOfGrid {
		rowStyle = OutDateEndOfRow
	}
	b.pad(d, rowStyle, 0)

	var pages []MonthPage
	for rows := range chunk(b.rows, maxRowCount) {
		pages = append(pages, MonthPage{YearMonth: firstOwnedMonth(rows), WeekRows: rows})
	}

	if outDateStyle == OutDateEndOfGrid {
		last := &pages[len(pages)-1]
		next := lastDate(last.WeekRows).PlusDays(1)
		for len(last.WeekRows) < maxRowCount {
			row := make(WeekRow, 0, 7)
			for range 7 {
				row = append(row, Day{Date: next, Owner: NextMonth})
				next = next.PlusDays(1)
			}
			last.WeekRows = append(last.WeekRows, row)
		}
	}

	groupPages(pages)
	return pages, nil
}

// paginate splits the rows of one month into pages of at most maxRowCount
// rows.
func paginate(ym YearMonth, rows []WeekRow, maxRowCount int) []MonthPage {
	size := (len(rows) + maxRowCount - 1) / maxRowCount
	pages := make([]MonthPage, 0, size)
	for rows := range chunk(rows, maxRowCount) {
		pages = append(pages, MonthPage{
			YearMonth:    ym,
			WeekRows:     rows,
			IndexInGroup: len(pages),
			GroupSize:    size,
		})
	}
	return pages
}

// groupPages numbers runs of consecutive pages that share a YearMonth.
func groupPages(pages []MonthPage) {
	for start := 0; start < len(pages); {
		end := start + 1
		for end < len(pages) && pages[end].YearMonth == pages[start].YearMonth {
			end++
		}
		for i := start; i < end; i++ {
			pages[i].IndexInGroup = i - start
			pages[i].GroupSize = end - start
		}
		start = end
	}
}

// chunk yields consecutive sub-slices of at most n rows. Each sub-slice is
// capped at its own length so appending to one never writes into the next.
func chunk(rows []WeekRow, n int) iter.Seq[[]WeekRow] {
	return func(yield func([]WeekRow) bool) {
		for i := 0; i < len(rows); i += n {
			j := min(i+n, len(rows))
			if !yield(rows[i:j:j]) {
				return
			}
		}
	}
}

func firstOwnedMonth(rows []WeekRow) YearMonth {
	for _, row := range rows {
		for _, d := range row {
			if d.Owner == CurrentMonth {
				return YearMonthOf(d.Date)
			}
		}
	}
	return YearMonthOf(rows[0][0].Date)
}

func lastDate(rows []WeekRow) calendar.Date {
	row := rows[len(rows)-1]
	return row[len(row)-1].Date
}

// validateRange checks the inputs shared by both generators.
func validateRange(start, end calendar.Date, first calendar.DayOfWeek, maxRowCount int) error {
	switch {
	case !start.System().Valid() || !end.System().Valid():
		return fmt.Errorf("%w: missing range bound", calendar.ErrInvalidRange)
	case start.System() != end.System():
		return fmt.Errorf("%w: bounds %s and %s belong to different systems", calendar.ErrInvalidRange, start, end)
	case maxRowCount < 1:
		return fmt.Errorf("%w: row ceiling %d is below 1", calendar.ErrInvalidRange, maxRowCount)
	case !first.Valid():
		return fmt.Errorf("%w: invalid first day of week %d", calendar.ErrInvalidRange, int(first))
	}
	return nil
}
