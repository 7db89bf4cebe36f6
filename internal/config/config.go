// Package config defines the configuration structures for the go-selfies CLI
// and HTTP server.  No I/O or parsing logic lives here — only plain data
// types, defaults, and validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/go-selfies/internal/constraints"
	"github.com/turtacn/go-selfies/internal/monitoring/logging"
)

// ServerConfig holds HTTP server tunables for `selfies serve`.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ConstraintsConfig selects the semantic constraint table installed at
// startup: a named preset, optionally overlaid with custom entries.
type ConstraintsConfig struct {
	// Preset is "default", "octet_rule", or "hypervalent".
	Preset string `mapstructure:"preset"`

	// Custom entries overlay the preset; keys follow the constraint-table key
	// grammar ("C", "N+1", "?").
	Custom map[string]int `mapstructure:"custom"`
}

// Config is the root configuration document.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         logging.LogConfig `mapstructure:"log"`
	Constraints ConstraintsConfig `mapstructure:"constraints"`
}

// Validate checks cross-field consistency.  It is called by the loader after
// defaults are applied.
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode must be debug, release, or test; got %q", c.Server.Mode)
	}

	if _, err := constraints.FromPreset(c.Constraints.Preset); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Constraints.Custom) > 0 {
		if err := c.EffectiveConstraints().Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// EffectiveConstraints returns the preset table overlaid with the custom
// entries.
func (c *Config) EffectiveConstraints() constraints.Table {
	t, err := constraints.FromPreset(c.Constraints.Preset)
	if err != nil {
		t, _ = constraints.FromPreset(constraints.PresetDefault)
	}
	for k, v := range c.Constraints.Custom {
		t[k] = v
	}
	return t
}

//Personal.AI order the ending
