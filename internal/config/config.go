// Package config provides YAML-based configuration loading for irodori.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all irodori settings.
type Config struct {
	Random  RandomConfig  `yaml:"random"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
}

// RandomConfig defines random string and shuffle settings.
type RandomConfig struct {
	Length int   `yaml:"length"` // Default random string length
	Seed   int64 `yaml:"seed"`   // 0 = seed from the clock
}

// DisplayConfig defines how catalog colors are printed.
type DisplayConfig struct {
	Format      string `yaml:"format"`       // Output format name, see registry
	SwatchWidth int    `yaml:"swatch_width"` // Swatch width in cells
	ShowKanji   bool   `yaml:"show_kanji"`
}

// ServerConfig defines the SSH browser server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the config values are usable.
func (c Config) Validate() error {
	if c.Random.Length < 0 {
		return fmt.Errorf("%w: random.length must not be negative (got %d)", ErrInvalid, c.Random.Length)
	}
	if c.Display.SwatchWidth <= 0 {
		return fmt.Errorf("%w: display.swatch_width must be positive (got %d)", ErrInvalid, c.Display.SwatchWidth)
	}
	if c.Display.Format == "" {
		return fmt.Errorf("%w: display.format must be set", ErrInvalid)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalid)
	}
	return nil
}
