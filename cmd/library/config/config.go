package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/library-circulation/cmd/library/circulation"
)

// Config controls the circulation rules, the clock, logging and late return
// notifications.
type Config struct {
	BorrowDays       int `env:"LIBRARY_BORROW_DAYS"        envDefault:"7"`
	MaxActiveBorrows int `env:"LIBRARY_MAX_ACTIVE_BORROWS" envDefault:"5"`
	FinePerDay       int `env:"LIBRARY_FINE_PER_DAY"       envDefault:"100"`

	// Today pins the clock to a YYYY-MM-DD date. Empty means the wall clock.
	Today    string `env:"LIBRARY_TODAY"`
	LogLevel string `env:"LIBRARY_LOG_LEVEL" envDefault:"warn"`

	NotificationsEnabled bool          `env:"LIBRARY_NOTIFICATIONS_ENABLED" envDefault:"false"`
	NotificationsURL     string        `env:"LIBRARY_NOTIFICATIONS_URL"     envDefault:"https://ntfy.sh/library_circulation"`
	NotificationsTimeout time.Duration `env:"LIBRARY_NOTIFICATIONS_TIMEOUT" envDefault:"2s"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BorrowDays <= 0 {
		return errors.New("LIBRARY_BORROW_DAYS must be positive")
	}
	if c.MaxActiveBorrows <= 0 {
		return errors.New("LIBRARY_MAX_ACTIVE_BORROWS must be positive")
	}
	if c.FinePerDay < 0 {
		return errors.New("LIBRARY_FINE_PER_DAY must not be negative")
	}
	if c.NotificationsTimeout <= 0 {
		return errors.New("LIBRARY_NOTIFICATIONS_TIMEOUT must be positive")
	}
	if _, err := c.Clock(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) Policy() circulation.Policy {
	return circulation.Policy{
		BorrowDays:       c.BorrowDays,
		MaxActiveBorrows: c.MaxActiveBorrows,
		FinePerDay:       c.FinePerDay,
	}
}

// Clock returns time.Now, or a clock frozen at midnight of Today.
func (c Config) Clock() (func() time.Time, error) {
	if strings.TrimSpace(c.Today) == "" {
		return time.Now, nil
	}
	today, err := circulation.ParseDate(c.Today)
	if err != nil {
		return nil, fmt.Errorf("LIBRARY_TODAY: %w", err)
	}
	return func() time.Time { return today }, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LIBRARY_LOG_LEVEL: %w", err)
	}
	return level, nil
}
