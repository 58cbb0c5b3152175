package calendar_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-patro/internal/calendar"
)

func TestString(t *testing.T) {
	assert.Equal(t, "2081-05-12 (BS)", calendar.MustOf(2081, 5, 12, calendar.BS).String())
	assert.Equal(t, "2024-04-13 (AD)", calendar.MustOf(2024, 4, 13, calendar.AD).String())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    calendar.Date
		wantErr bool
	}{
		{"2081-05-12 (BS)", calendar.MustOf(2081, 5, 12, calendar.BS), false},
		{"2081-5-2 bs", calendar.MustOf(2081, 5, 2, calendar.BS), false},
		{"  2024-02-29 AD ", calendar.MustOf(2024, 2, 29, calendar.AD), false},
		{"2023-02-29 AD", calendar.Date{}, true},
		{"2081-05-12", calendar.Date{}, true},
		{"2081-05-12 XX", calendar.Date{}, true},
		{"not a date", calendar.Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := calendar.ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, calendar.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	d, err := calendar.Parse("2077-10-29", calendar.BS)
	require.NoError(t, err)
	assert.Equal(t, calendar.MustOf(2077, 10, 29, calendar.BS), d)

	_, err = calendar.Parse("2077/10/29", calendar.BS)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestParse_RejectsOutOfRangeYears(t *testing.T) {
	tests := []struct {
		name string
		val  string
	}{
		{"Overflowing year", "99999999999999999999-01-01"},
		{"Overflowing negative year", "-99999999999999999999-01-01"},
		{"Large year", "123456789-01-01"},
		{"Year zero", "0000-01-01"},
		{"Negative year", "-5-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.Parse(tt.val, calendar.AD)
			assert.ErrorIs(t, err, calendar.ErrInvalidDate)
		})
	}

	_, err := calendar.ParseDate("99999999999999999999-01-01 AD")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	d, err := calendar.Parse("9999-12-31", calendar.AD)
	require.NoError(t, err)
	assert.Equal(t, calendar.MaxYear, d.Year())
}

func TestDate_TextRoundTrip(t *testing.T) {
	type payload struct {
		Date calendar.Date `json:"date"`
	}
	in := payload{Date: calendar.MustOf(2081, 3, 32, calendar.BS)}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2081-03-32 (BS)"}`, string(raw))

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	_, err = json.Marshal(payload{})
	assert.Error(t, err)
}

func TestParseNames(t *testing.T) {
	sys, err := calendar.ParseSystem("bs")
	require.NoError(t, err)
	assert.Equal(t, calendar.BS, sys)
	assert.Equal(t, calendar.AD, sys.Other())
	_, err = calendar.ParseSystem("jalali")
	assert.Error(t, err)

	dow, err := calendar.ParseDayOfWeek("sun")
	require.NoError(t, err)
	assert.Equal(t, calendar.Sunday, dow)
	_, err = calendar.ParseDayOfWeek("s")
	assert.Error(t, err)

	m, err := calendar.ParseMonth("magh")
	require.NoError(t, err)
	assert.Equal(t, calendar.October, m)
	m, err = calendar.ParseMonth("05")
	require.NoError(t, err)
	assert.Equal(t, calendar.May, m)
	_, err = calendar.ParseMonth("13")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	assert.Equal(t, "Magh", calendar.October.Name(calendar.BS))
	assert.Equal(t, "October", calendar.October.Name(calendar.AD))

	for _, val := range []string{"Māgh", "MĀGH", " magh "} {
		m, err = calendar.ParseMonth(val)
		require.NoError(t, err, val)
		assert.Equal(t, calendar.October, m, val)
	}
	m, err = calendar.ParseMonth("Āshwin")
	require.NoError(t, err)
	assert.Equal(t, calendar.June, m)

	d, err := calendar.ParseDayOfWeek("SÚNDAY")
	require.NoError(t, err)
	assert.Equal(t, calendar.Sunday, d)
}

func TestDayOfWeekArithmetic(t *testing.T) {
	assert.Equal(t, calendar.Monday, calendar.Sunday.Plus(1))
	assert.Equal(t, calendar.Sunday, calendar.Monday.Minus(1))
	assert.Equal(t, calendar.Wednesday, calendar.Wednesday.Plus(-700))
	assert.Equal(t, 6, calendar.Sunday.Until(calendar.Saturday))
	assert.Equal(t, 0, calendar.Friday.Until(calendar.Friday))

	week := calendar.WeekDays(calendar.Sunday)
	assert.Equal(t, calendar.Sunday, week[0])
	assert.Equal(t, calendar.Saturday, week[6])

	_, err := calendar.DayOfWeekOf(8)
	assert.Error(t, err)
	assert.Equal(t, calendar.December, calendar.January.Minus(1))
	assert.Equal(t, calendar.February, calendar.December.Plus(14))
}
