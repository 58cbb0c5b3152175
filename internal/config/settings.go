package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/tartampluch/go-patro/internal/calendar"
)

// Settings holds the runtime options of the feed service, read from
// PATRO_* environment variables.
type Settings struct {
	Port           string             `env:"PORT" envDefault:"18081"`
	System         calendar.System    `env:"SYSTEM" envDefault:"BS"`
	FirstDayOfWeek calendar.DayOfWeek `env:"FIRST_DAY_OF_WEEK" envDefault:"sunday"`
	MaxRowCount    int                `env:"MAX_ROW_COUNT" envDefault:"6"`
	InDates        string             `env:"IN_DATES" envDefault:"all_months"`
	OutDates       string             `env:"OUT_DATES" envDefault:"end_of_row"`
	HasBoundaries  bool               `env:"HAS_BOUNDARIES" envDefault:"true"`
	MonthsBefore   int                `env:"MONTHS_BEFORE" envDefault:"1"`
	MonthsAfter    int                `env:"MONTHS_AFTER" envDefault:"12"`
	RefreshMin     int                `env:"REFRESH_MIN" envDefault:"360"`
}

// ParseEnv loads the env-tagged fields of target, each variable name
// prefixed with prefix.
func ParseEnv(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("%s: %w", ErrParseEnv, err)
	}
	return nil
}

// LoadSettings reads and validates Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s, EnvPrefix); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the values the environment parser cannot.
func (s Settings) Validate() error {
	if s.Port == "" {
		return errors.New(ErrPortRequired)
	}
	port, err := strconv.Atoi(s.Port)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrPortNumber, err)
	}
	if port < MinPort || port > MaxPort {
		return errors.New(ErrPortRange)
	}
	if s.MaxRowCount < 1 {
		return fmt.Errorf("%s: max row count %d is below 1", ErrSettings, s.MaxRowCount)
	}
	if s.MonthsBefore < 0 || s.MonthsAfter < 0 {
		return fmt.Errorf("%s: negative month window %d/%d", ErrSettings, s.MonthsBefore, s.MonthsAfter)
	}
	return nil
}

// RefreshInterval returns the re-render period, falling back to the default
// for non-positive values.
func (s Settings) RefreshInterval() time.Duration {
	val := s.RefreshMin
	if val <= 0 {
		val = DefaultRefreshMin
	}
	return time.Duration(val) * time.Minute
}
