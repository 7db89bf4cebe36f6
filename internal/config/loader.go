package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "SELFIES"

// newViper builds a pre-configured Viper instance: YAML file type, SELFIES_
// env prefix, automatic env binding, and a key replacer mapping "." → "_" so
// nested keys like "server.addr" resolve to "SELFIES_SERVER_ADDR".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Registering every key makes AutomaticEnv overrides visible to
	// Unmarshal; the zero defaults are replaced by ApplyDefaults afterwards.
	for _, key := range []string{
		"server.addr", "server.mode", "server.read_timeout",
		"server.write_timeout", "server.shutdown_timeout",
		"log.level", "log.format", "log.output_paths",
		"constraints.preset", "constraints.custom",
	} {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the YAML file at configPath, merges SELFIES_* environment
// overrides, applies defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from SELFIES_* environment variables
// and defaults, with no config file required.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath and invokes onChange with the newly parsed Config
// whenever the file changes on disk.  It is intended for hot-reloading the
// safe subset of settings (log level, constraint preset).  A change that
// fails to parse or validate is skipped rather than propagated.
//
// Watch is non-blocking; the watcher goroutine is managed by viper.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; callers should have called Load first, so errors here
	// only mean the watcher starts against an absent file.
	_ = v.ReadInConfig()

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

// MustLoad wraps Load and panics on any error; intended for main() where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
