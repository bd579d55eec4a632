// Package config loads the optional YAML file holding default formatting options.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dateformatters/internal/models"
)

// Config holds the defaults the CLI and TUI start from. Every field is
// optional; empty values keep the built-in defaults.
type Config struct {
	Locale    string `yaml:"locale,omitempty" validate:"omitempty,locale"`
	Timezone  string `yaml:"timezone,omitempty" validate:"omitempty,tz"`
	DateStyle string `yaml:"date_style,omitempty" validate:"omitempty,style"`
	TimeStyle string `yaml:"time_style,omitempty" validate:"omitempty,style"`
	Pattern   string `yaml:"pattern,omitempty"`
	AMSymbol  string `yaml:"am_symbol,omitempty" validate:"omitempty,max=32"`
	PMSymbol  string `yaml:"pm_symbol,omitempty" validate:"omitempty,max=32"`
	Debug     bool   `yaml:"debug"`
}

// NewDefault returns the configuration used when no file exists.
func NewDefault() *Config {
	return &Config{
		DateStyle: models.StyleShort.String(),
		TimeStyle: models.StyleShort.String(),
	}
}

// Load reads and validates the YAML file at path. A missing file is not an
// error and yields NewDefault.
func Load(path string) (*Config, error) {
	cfg := NewDefault()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the configuration into the initial option snapshot for date.
func (c *Config) Options(date time.Time) (models.FormatOptions, error) {
	opts := models.DefaultOptions(date)
	if c.DateStyle != "" {
		s, err := models.ParseStyle(c.DateStyle)
		if err != nil {
			return opts, fmt.Errorf("date_style: %w", err)
		}
		opts.DateStyle = s
	}
	if c.TimeStyle != "" {
		s, err := models.ParseStyle(c.TimeStyle)
		if err != nil {
			return opts, fmt.Errorf("time_style: %w", err)
		}
		opts.TimeStyle = s
	}
	opts.Pattern = c.Pattern
	opts.AMSymbol = c.AMSymbol
	opts.PMSymbol = c.PMSymbol
	opts.Locale = c.Locale
	return opts, nil
}
