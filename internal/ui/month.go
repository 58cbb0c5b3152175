// Package ui renders generated month pages as terminal calendar grids.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-patro/internal/calendar"
	"github.com/tartampluch/go-patro/internal/config"
	"github.com/tartampluch/go-patro/internal/engine"
)

// Styles holds the lipgloss styles of a month grid.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Header      lipgloss.Style
	Day         lipgloss.Style
	OutDay      lipgloss.Style
	Today       lipgloss.Style
	Counterpart lipgloss.Style
}

// DefaultStyles returns the grid styles bound to r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	cell := r.NewStyle().Width(config.GridColumnWidth).Align(lipgloss.Right)
	return Styles{
		Title:       r.NewStyle().Bold(true),
		Subtitle:    r.NewStyle().Faint(true),
		Header:      cell.Foreground(lipgloss.Color("#5f9fb0")).Bold(true),
		Day:         cell,
		OutDay:      cell.Faint(true),
		Today:       cell.Reverse(true).Bold(true),
		Counterpart: r.NewStyle().Width(config.GridCounterpartWidth).Align(lipgloss.Right).Faint(true),
	}
}

// MonthView draws month pages one below the other.
type MonthView struct {
	FirstDayOfWeek calendar.DayOfWeek
	Today          calendar.Date // Highlighted when present; may be zero.

	// ShowCounterpart prints the day-of-month of the other system next to
	// each day.
	ShowCounterpart bool

	Styles Styles
}

// NewMonthView returns a view with the default styles of r.
func NewMonthView(r *lipgloss.Renderer, first calendar.DayOfWeek) *MonthView {
	return &MonthView{FirstDayOfWeek: first, Styles: DefaultStyles(r)}
}

// Render draws all pages separated by a blank line.
func (v *MonthView) Render(pages []engine.MonthPage) string {
	blocks := make([]string, 0, len(pages))
	for _, p := range pages {
		blocks = append(blocks, v.RenderPage(p))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderPage draws one page: a title line, the weekday header and one line
// per week row. Cells of short rows are placed in the column of their day
// of week.
func (v *MonthView) RenderPage(p engine.MonthPage) string {
	lines := []string{v.title(p), v.header()}
	for _, row := range p.WeekRows {
		lines = append(lines, v.row(row))
	}
	return strings.Join(lines, "\n")
}

func (v *MonthView) title(p engine.MonthPage) string {
	title := v.Styles.Title.Render(p.YearMonth.Name() + " " + p.YearMonth.System.String())
	if p.GroupSize > 1 {
		title += fmt.Sprintf(" (%d/%d)", p.IndexInGroup+1, p.GroupSize)
	}
	if span := counterpartSpan(p); span != "" {
		title += " " + v.Styles.Subtitle.Render(span)
	}
	return title
}

func (v *MonthView) header() string {
	cells := make([]string, 0, 7)
	for _, d := range calendar.WeekDays(v.FirstDayOfWeek) {
		cells = append(cells, v.cell(v.Styles.Header.Render(d.String()[:2]), ""))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (v *MonthView) row(row engine.WeekRow) string {
	cells := make([]string, 7)
	for i := range cells {
		cells[i] = v.cell(v.Styles.Day.Render(""), "")
	}
	for _, d := range row {
		col := v.FirstDayOfWeek.Until(d.Date.DayOfWeek())
		style := v.Styles.Day
		switch {
		case d.Owner != engine.CurrentMonth:
			style = v.Styles.OutDay
		case !v.Today.IsZero() && v.Today.Equal(d.Date):
			style = v.Styles.Today
		}
		var other string
		if v.ShowCounterpart {
			other = fmt.Sprint(d.Date.Reverse().Day())
		}
		cells[col] = v.cell(style.Render(fmt.Sprint(d.Date.Day())), other)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (v *MonthView) cell(main, other string) string {
	if !v.ShowCounterpart {
		return main
	}
	return main + v.Styles.Counterpart.Render(other)
}

// counterpartSpan names the months of the other system covered by the
// current-month days of p, e.g. "Jan-Feb 2021" or "Dec 2020-Jan 2021".
func counterpartSpan(p engine.MonthPage) string {
	days := p.Days(engine.CurrentMonth)
	if len(days) == 0 {
		return ""
	}
	first := days[0].Date.Reverse()
	last := days[len(days)-1].Date.Reverse()
	name := func(d calendar.Date) string {
		return d.Month().Name(d.System())[:3]
	}
	switch {
	case first.Year() != last.Year():
		return fmt.Sprintf("%s %d-%s %d %s", name(first), first.Year(), name(last), last.Year(), first.System())
	case first.Month() != last.Month():
		return fmt.Sprintf("%s-%s %d %s", name(first), name(last), last.Year(), first.System())
	}
	return fmt.Sprintf("%s %d %s", name(first), first.Year(), first.System())
}
