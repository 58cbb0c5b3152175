package engine_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-patro/internal/calendar"
	"github.com/tartampluch/go-patro/internal/config"
	"github.com/tartampluch/go-patro/internal/engine"
)

func baishakh2081(t *testing.T) []engine.MonthPage {
	t.Helper()
	month := calendar.MustOf(2081, 1, 1, calendar.BS)
	pages, err := engine.GenerateBoundedMonths(month, month, calendar.Sunday, 6, engine.InDateAllMonths, engine.OutDateEndOfGrid)
	require.NoError(t, err)
	return pages
}

func TestEncodeICS_OneEventPerDay(t *testing.T) {
	stamp := time.Date(2024, 4, 20, 8, 0, 0, 0, time.UTC)
	data, err := engine.EncodeICS(baishakh2081(t), stamp)
	require.NoError(t, err)

	icsStr := string(data)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "PRODID:"+config.ICalProdid)
	assert.Contains(t, icsStr, "X-WR-CALNAME:"+config.ICalCalName)
	// Baishakh 2081 runs from AD 2024-04-13 to 2024-05-13; padding days are skipped.
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240413")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240513")
	assert.NotContains(t, icsStr, "DTSTART;VALUE=DATE:20240412")
	assert.NotContains(t, icsStr, "DTSTART;VALUE=DATE:20240514")

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 31)

	summary, err := events[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Baishakh 1, 2081 BS", summary)

	start, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC), start)

	uids := map[string]bool{}
	for _, ev := range events {
		uid, err := ev.Props.Text(ical.PropUID)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(uid, "@"+config.ICalDomain))
		uids[uid] = true
	}
	assert.Len(t, uids, 31, "UIDs must be unique")
}

func TestEncodeICS_DeterministicUIDs(t *testing.T) {
	pages := baishakh2081(t)
	stamp := time.Date(2024, 4, 20, 8, 0, 0, 0, time.UTC)

	first, err := engine.EncodeICS(pages, stamp)
	require.NoError(t, err)
	second, err := engine.EncodeICS(pages, stamp)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeICS_MatchesConversionForADGrid(t *testing.T) {
	month := calendar.MustOf(2024, 4, 1, calendar.AD)
	pages, err := engine.GenerateBoundedMonths(month, month, calendar.Monday, 6, engine.InDateNone, engine.OutDateNone)
	require.NoError(t, err)

	data, err := engine.EncodeICS(pages, time.Now())
	require.NoError(t, err)

	// AD 2024-04-12 is the last day of Chaitra 2080, 04-13 starts Baishakh 2081.
	icsStr := string(data)
	assert.Contains(t, icsStr, "SUMMARY:Chaitra 30\\, 2080 BS")
	assert.Contains(t, icsStr, "SUMMARY:Baishakh 1\\, 2081 BS")
	assert.Equal(t, 30, strings.Count(icsStr, "BEGIN:VEVENT"))
}

func TestEncodeICS_Empty(t *testing.T) {
	data, err := engine.EncodeICS(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestEncodeJSON(t *testing.T) {
	data, err := engine.EncodeJSON(baishakh2081(t))
	require.NoError(t, err)

	var pages []struct {
		System       string `json:"system"`
		Year         int    `json:"year"`
		Month        int    `json:"month"`
		MonthName    string `json:"month_name"`
		IndexInGroup int    `json:"index_in_group"`
		GroupSize    int    `json:"group_size"`
		WeekRows     [][]struct {
			System string `json:"system"`
			Year   int    `json:"year"`
			Month  int    `json:"month"`
			Day    int    `json:"day"`
			Owner  string `json:"owner"`
		} `json:"week_rows"`
	}
	require.NoError(t, json.Unmarshal(data, &pages))

	require.Len(t, pages, 1)
	p := pages[0]
	assert.Equal(t, "BS", p.System)
	assert.Equal(t, 2081, p.Year)
	assert.Equal(t, 1, p.Month)
	assert.Equal(t, "Baishakh", p.MonthName)
	assert.Equal(t, 1, p.GroupSize)
	require.Len(t, p.WeekRows, engine.MaxWeekRows)

	// Baishakh 2081 starts on a Saturday: six leading days.
	first := p.WeekRows[0]
	require.Len(t, first, 7)
	assert.Equal(t, "previous_month", first[0].Owner)
	assert.Equal(t, 2080, first[0].Year)
	assert.Equal(t, 12, first[0].Month)
	assert.Equal(t, "current_month", first[6].Owner)
	assert.Equal(t, 1, first[6].Day)
}

func TestEncodeJSON_Empty(t *testing.T) {
	data, err := engine.EncodeJSON(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
