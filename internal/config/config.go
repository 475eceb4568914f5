// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Highscore backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Validate for an unsupported highscore backend.
var ErrUnknownBackend = errors.New("unknown highscore backend")

// Config contains all runtime settings.
type Config struct {
	TickRate     int             `yaml:"tick_rate"`
	FallInterval time.Duration   `yaml:"fall_interval"`
	Highscore    HighscoreConfig `yaml:"highscore"`
	Scores       ScoresConfig    `yaml:"scores"`
	Log          LogConfig       `yaml:"log"`
}

// HighscoreConfig selects where the highscore is persisted.
type HighscoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // Text file for the file backend
}

// ScoresConfig defines the finished-game history database.
type ScoresConfig struct {
	DB      string `yaml:"db"`
	History bool   `yaml:"history"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("config: fall_interval must be positive, got %s", c.FallInterval)
	}
	switch c.Highscore.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: %w %q", ErrUnknownBackend, c.Highscore.Backend)
	}
	return nil
}
