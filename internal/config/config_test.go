package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-patro/internal/calendar"
	"github.com/tartampluch/go-patro/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ServerHeader", config.ServerHeader},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultRefreshMin, 0, "Default refresh interval must be positive")
	assert.Greater(t, config.DefaultMaxRowCount, 0)
	assert.True(t, strings.HasPrefix(config.ServerHeader, "Go-Patro/"))
	assert.Contains(t, config.StubVCalendar, config.ICalProdid)
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := config.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPort, s.Port)
	assert.Equal(t, calendar.BS, s.System)
	assert.Equal(t, calendar.Sunday, s.FirstDayOfWeek)
	assert.Equal(t, config.DefaultMaxRowCount, s.MaxRowCount)
	assert.Equal(t, config.DefaultInDates, s.InDates)
	assert.Equal(t, config.DefaultOutDates, s.OutDates)
	assert.True(t, s.HasBoundaries)
	assert.Equal(t, config.DefaultMonthsBefore, s.MonthsBefore)
	assert.Equal(t, config.DefaultMonthsAfter, s.MonthsAfter)
	assert.Equal(t, time.Duration(config.DefaultRefreshMin)*time.Minute, s.RefreshInterval())
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("PATRO_PORT", "9000")
	t.Setenv("PATRO_SYSTEM", "ad")
	t.Setenv("PATRO_FIRST_DAY_OF_WEEK", "Monday")
	t.Setenv("PATRO_MAX_ROW_COUNT", "3")
	t.Setenv("PATRO_HAS_BOUNDARIES", "false")
	t.Setenv("PATRO_REFRESH_MIN", "15")

	s, err := config.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, calendar.AD, s.System)
	assert.Equal(t, calendar.Monday, s.FirstDayOfWeek)
	assert.Equal(t, 3, s.MaxRowCount)
	assert.False(t, s.HasBoundaries)
	assert.Equal(t, 15*time.Minute, s.RefreshInterval())
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"Bad system", "PATRO_SYSTEM", "jalali", config.ErrParseEnv},
		{"Bad weekday", "PATRO_FIRST_DAY_OF_WEEK", "x", config.ErrParseEnv},
		{"Non numeric rows", "PATRO_MAX_ROW_COUNT", "many", config.ErrParseEnv},
		{"Port not a number", "PATRO_PORT", "http", config.ErrPortNumber},
		{"Port out of range", "PATRO_PORT", "70000", config.ErrPortRange},
		{"Zero rows", "PATRO_MAX_ROW_COUNT", "0", config.ErrSettings},
		{"Negative window", "PATRO_MONTHS_BEFORE", "-1", config.ErrSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.LoadSettings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRefreshInterval_Fallback(t *testing.T) {
	s := config.Settings{RefreshMin: 0}
	assert.Equal(t, time.Duration(config.DefaultRefreshMin)*time.Minute, s.RefreshInterval())
}
