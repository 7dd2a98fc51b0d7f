package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rolodex/rolodex/pkg/telemetry"
)

// Config is the full assistant configuration.
type Config struct {
	// Prompt is printed before every read of the command line.
	Prompt string `yaml:"prompt" validate:"required"`

	// BirthdayWindowDays is the default window for the birthdays command
	// when no day count is given.
	BirthdayWindowDays int `yaml:"birthday_window_days" validate:"min=0,max=366"`

	Logging telemetry.LoggingConfig `yaml:"logging"`
	Metrics telemetry.MetricsConfig `yaml:"metrics"`
	Tracing telemetry.TracingConfig `yaml:"tracing"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:             "Enter a command: ",
		BirthdayWindowDays: 7,
		Logging:            telemetry.DefaultLoggingConfig(),
		Metrics:            telemetry.DefaultMetricsConfig(),
		Tracing:            telemetry.DefaultTracingConfig(),
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rolodex", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rolodex", "config.yaml")
}

// Load reads the config file at path, layered over the defaults. An
// empty path means DefaultPath; a missing file yields the defaults
// without error, since the assistant is fully usable unconfigured.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration against its struct rules.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
