// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all assistbot configuration.
type Config struct {
	Shell   Shell   `yaml:"shell"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// Shell holds interactive prompt settings.
type Shell struct {
	Prompt  string `yaml:"prompt"`
	Banner  bool   `yaml:"banner"`  // Print banner and help at session start
	History int    `yaml:"history"` // Input lines remembered by the TUI
}

// Display holds output rendering settings.
type Display struct {
	Color     string `yaml:"color"`      // "auto" | "always" | "never"
	AssetsDir string `yaml:"assets_dir"` // Overrides embedded banner.txt / help.yaml
}

// Log holds diagnostic logging settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shell: Shell{
			Prompt:  "Enter a command: ",
			Banner:  true,
			History: 100,
		},
		Display: Display{
			Color: "auto",
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Shell.History < 0 {
		return fmt.Errorf("config: shell.history must be non-negative, got %d", c.Shell.History)
	}
	switch c.Display.Color {
	case "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("config: display.color must be \"auto\", \"always\" or \"never\", got %q", c.Display.Color)
	}
	if c.Display.AssetsDir != "" {
		info, err := os.Stat(c.Display.AssetsDir)
		if err != nil {
			return fmt.Errorf("config: display.assets_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: display.assets_dir %q is not a directory", c.Display.AssetsDir)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return level, nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ASSISTBOT_PROMPT, ASSISTBOT_COLOR, ASSISTBOT_LOG_LEVEL, NO_COLOR.
// NO_COLOR wins over ASSISTBOT_COLOR.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ASSISTBOT_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	if v := os.Getenv("ASSISTBOT_COLOR"); v != "" {
		c.Display.Color = strings.ToLower(v)
	}
	if v := os.Getenv("ASSISTBOT_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
		if _, err := c.SlogLevel(); err != nil {
			return fmt.Errorf("config: invalid ASSISTBOT_LOG_LEVEL %q: %w", v, err)
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Display.Color = "never"
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Shell   *rawShell   `yaml:"shell"`
	Display *rawDisplay `yaml:"display"`
	Log     *rawLog     `yaml:"log"`
}

type rawShell struct {
	Prompt  *string `yaml:"prompt"`
	Banner  *bool   `yaml:"banner"`
	History *int    `yaml:"history"`
}

type rawDisplay struct {
	Color     *string `yaml:"color"`
	AssetsDir *string `yaml:"assets_dir"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Shell != nil {
		if layer.Shell.Prompt != nil {
			c.Shell.Prompt = *layer.Shell.Prompt
		}
		if layer.Shell.Banner != nil {
			c.Shell.Banner = *layer.Shell.Banner
		}
		if layer.Shell.History != nil {
			c.Shell.History = *layer.Shell.History
		}
	}
	if layer.Display != nil {
		if layer.Display.Color != nil {
			c.Display.Color = *layer.Display.Color
		}
		if layer.Display.AssetsDir != nil {
			c.Display.AssetsDir = *layer.Display.AssetsDir
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
