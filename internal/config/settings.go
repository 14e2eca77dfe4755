package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds runtime knobs read from the environment.
type Settings struct {
	// Level to start directly; 0 opens the level menu.
	Level      int    `env:"BREAKOUT_LEVEL" envDefault:"0"`
	Mute       bool   `env:"BREAKOUT_MUTE" envDefault:"false"`
	Seed       int64  `env:"BREAKOUT_SEED" envDefault:"0"`
	LevelsFile string `env:"BREAKOUT_LEVELS_FILE"`
	PprofAddr  string `env:"BREAKOUT_PPROF_ADDR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings parses Settings and rejects a negative start level.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.Level < 0 {
		return Settings{}, fmt.Errorf("parse env: BREAKOUT_LEVEL must be >= 0, got %d", s.Level)
	}
	return s, nil
}
