// Package config defines hlxproxyd's daemon configuration (SPEC_FULL.md
// §A.3): defaults, optional YAML file overlay, and the model size
// invariants from spec.md §3 ("identifiers are dense [1..Max]").
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openhlx/hlxproxyd/pkg/model"
)

// Default listen/connect addresses and timeouts, used when neither a config
// file nor a CLI flag overrides them.
const (
	DefaultListen    = "0.0.0.0:8090"
	DefaultConnect   = "127.0.0.1:9090"
	DefaultTimeoutMS = 5000
	DefaultLogLevel  = "info"
)

// Default model sizes (spec.md §3 leaves the exact maximums to the
// deployment; these match the device family this proxy was built against).
const (
	DefaultMaxZones            = 18
	DefaultMaxGroups           = 8
	DefaultMaxSources          = 12
	DefaultMaxFavorites        = 64
	DefaultMaxEqualizerPresets = 12
)

// ModelConfig mirrors model.Sizes on disk, plus the fixed equalizer band
// count carried along for validation (spec.md §3: "valid ranges are fixed
// at build time per object family" — zone_equalizer_bands must equal
// model.EqualizerBandCount when given, it does not resize anything).
type ModelConfig struct {
	MaxZones            int `yaml:"max_zones"`
	MaxGroups           int `yaml:"max_groups"`
	MaxSources          int `yaml:"max_sources"`
	MaxFavorites        int `yaml:"max_favorites"`
	MaxEqualizerPresets int `yaml:"max_equalizer_presets"`
	ZoneEqualizerBands  int `yaml:"zone_equalizer_bands"`
}

// Config is the daemon's resolved configuration.
type Config struct {
	Listen    string      `yaml:"listen"`
	Connect   string      `yaml:"connect"`
	TimeoutMS int         `yaml:"timeout_ms"`
	LogLevel  string      `yaml:"log_level"`
	Model     ModelConfig `yaml:"model"`
}

// Timeout returns TimeoutMS as a time.Duration, for direct use constructing
// the Object Controller Basis (spec.md §5 default exchange timeout).
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Sizes returns the model.Sizes this configuration describes.
func (c *Config) Sizes() model.Sizes {
	return model.Sizes{
		MaxZones:            c.Model.MaxZones,
		MaxGroups:           c.Model.MaxGroups,
		MaxSources:          c.Model.MaxSources,
		MaxFavorites:        c.Model.MaxFavorites,
		MaxEqualizerPresets: c.Model.MaxEqualizerPresets,
	}
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Listen:    DefaultListen,
		Connect:   DefaultConnect,
		TimeoutMS: DefaultTimeoutMS,
		LogLevel:  DefaultLogLevel,
		Model: ModelConfig{
			MaxZones:            DefaultMaxZones,
			MaxGroups:           DefaultMaxGroups,
			MaxSources:          DefaultMaxSources,
			MaxFavorites:        DefaultMaxFavorites,
			MaxEqualizerPresets: DefaultMaxEqualizerPresets,
			ZoneEqualizerBands:  model.EqualizerBandCount,
		},
	}
}

// Load returns the default configuration when path is empty, otherwise the
// defaults overlaid with whatever the YAML file at path sets (keys absent
// from the file leave the default in place, since Load decodes on top of an
// already-populated struct; a key the file sets, even to zero, replaces it).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// Validate enforces the model size invariants of spec.md §3 (ranges
// [1, Max], Max > 0) and that the configured timeout and addresses are
// usable, before the daemon starts.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.Connect == "" {
		return fmt.Errorf("connect address must not be empty")
	}
	if c.TimeoutMS <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", c.TimeoutMS)
	}

	for name, max := range map[string]int{
		"max_zones":             c.Model.MaxZones,
		"max_groups":            c.Model.MaxGroups,
		"max_sources":           c.Model.MaxSources,
		"max_favorites":         c.Model.MaxFavorites,
		"max_equalizer_presets": c.Model.MaxEqualizerPresets,
	} {
		if max <= 0 {
			return fmt.Errorf("model.%s must be positive, got %d", name, max)
		}
	}

	if c.Model.ZoneEqualizerBands != 0 && c.Model.ZoneEqualizerBands != model.EqualizerBandCount {
		return fmt.Errorf("model.zone_equalizer_bands must equal %d (fixed at build time), got %d",
			model.EqualizerBandCount, c.Model.ZoneEqualizerBands)
	}

	return nil
}

// ApplyFlags overlays non-zero-valued CLI flag overrides onto c (flags win
// over both defaults and the config file, SPEC_FULL.md §A.3).
func (c *Config) ApplyFlags(listen, connect string, timeoutMS int, logLevel string) {
	if listen != "" {
		c.Listen = listen
	}
	if connect != "" {
		c.Connect = connect
	}
	if timeoutMS > 0 {
		c.TimeoutMS = timeoutMS
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}
