// Package config loads the settings of the hexboard command.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HEXBOARD_SIZE=800.
const EnvPrefix = "HEXBOARD"

// Player places a full camp of checkers in one sextant.
type Player struct {
	Quad  int    `json:"quad" mapstructure:"quad"`
	Color string `json:"color" mapstructure:"color"`
}

// Placement drops a single checker.
type Placement struct {
	At    string `json:"at" mapstructure:"at"`
	Color string `json:"color" mapstructure:"color"`
}

// Config holds the hexboard settings.
type Config struct {
	Size         int     `json:"size" mapstructure:"size"`
	Output       string  `json:"output" mapstructure:"output"`
	Border       string  `json:"border" mapstructure:"border"`
	SlotColor    string  `json:"slotColor" mapstructure:"slotColor"`
	Background   string  `json:"background" mapstructure:"background"`
	Labels       bool    `json:"labels" mapstructure:"labels"`
	LabelSize    float64 `json:"labelSize" mapstructure:"labelSize"`
	SlotIdentity string  `json:"slotIdentity" mapstructure:"slotIdentity"`
	LogLevel     string  `json:"logLevel" mapstructure:"logLevel"`

	Players  []Player    `json:"players" mapstructure:"players"`
	Checkers []Placement `json:"checkers" mapstructure:"checkers"`
}

// setDefaults registers the default value of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("size", 640)
	v.SetDefault("output", "hexboard.png")
	v.SetDefault("border", "red")
	v.SetDefault("slotColor", "black")
	v.SetDefault("background", "white")
	v.SetDefault("labels", false)
	v.SetDefault("labelSize", 9.0)
	v.SetDefault("slotIdentity", "cell")
	v.SetDefault("logLevel", "info")

	v.SetDefault("players", []map[string]any{
		{"quad": 0, "color": "red"},
		{"quad": 3, "color": "blue"},
	})
	v.SetDefault("checkers", []map[string]any{})
}

// Load reads the configuration file at path (JSON, YAML or TOML, chosen by
// extension) on top of the defaults. An empty path loads defaults only.
// Environment variables prefixed with EnvPrefix override scalar keys.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("config: size must be positive, got %d", c.Size)
	}
	if c.Output == "" {
		return fmt.Errorf("config: output must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: logLevel: %w", err)
	}
	return l, nil
}
