package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all runtime configuration for a namecleaner run.
type Config struct {
	Dir        string
	ConfigFile string
	LogFormat  string // "text" or "json"
	Color      string // "auto", "always" or "never"
	Force      bool
	Verbose    bool
}

// yamlConfig is the on-disk YAML structure. Pointers distinguish unset keys
// from zero values.
type yamlConfig struct {
	Force     *bool   `yaml:"force"`
	Verbose   *bool   `yaml:"verbose"`
	LogFormat *string `yaml:"log_format"`
	Color     *string `yaml:"color"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Keys named in explicit are treated as already set on the command line and
// are left untouched.
func (c *Config) LoadFromFile(path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if yc.Force != nil && !explicit["force"] {
		c.Force = *yc.Force
	}
	if yc.Verbose != nil && !explicit["verbose"] {
		c.Verbose = *yc.Verbose
	}
	if yc.LogFormat != nil && !explicit["log-format"] {
		c.LogFormat = *yc.LogFormat
	}
	if yc.Color != nil && !explicit["color"] {
		c.Color = *yc.Color
	}
	return nil
}

// Validate checks enumerated fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("--log-format must be text or json, got %q", c.LogFormat)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("--color must be auto, always or never, got %q", c.Color)
	}
	return nil
}

// TargetDir returns the directory to operate on, defaulting to the current
// working directory.
func (c *Config) TargetDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}
