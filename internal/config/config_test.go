package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/go-selfies/internal/constraints"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, constraints.PresetDefault, cfg.Constraints.Preset)

	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadMode(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Server.Mode = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadPresetAndCustom(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Constraints.Preset = "strict"
	assert.Error(t, cfg.Validate())

	cfg = &Config{}
	ApplyDefaults(cfg)
	cfg.Constraints.Custom = map[string]int{"C": -2}
	assert.Error(t, cfg.Validate())
}

func TestEffectiveConstraints_OverlaysCustom(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Constraints.Custom = map[string]int{"C": 1}

	table := cfg.EffectiveConstraints()
	assert.Equal(t, 1, table["C"])
	assert.Equal(t, 3, table["N"], "preset entries survive the overlay")
	require.NoError(t, table.Validate())
}

//Personal.AI order the ending
