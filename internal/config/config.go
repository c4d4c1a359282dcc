package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/model"
)

// Config holds all runtime configuration for a tagstamp run.
type Config struct {
	DSN        string
	FilePath   string
	ConfigPath string
	LogFormat  string // "text" or "json"
	LogLevel   string
	Force      bool

	FlagKey  string
	ValueKey string
	TimeZone string
	Culture  string
	Formats  []string // exact-match patterns tried before the ISO fallback
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	FlagKey  string   `yaml:"flag_key"`
	ValueKey string   `yaml:"value_key"`
	TimeZone string   `yaml:"time_zone"`
	Culture  string   `yaml:"culture"`
	Formats  []string `yaml:"formats"`
}

// LoadFromFile reads a YAML config file and fills in any extraction settings
// not already set on c; values from flags take precedence over the file.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	fill(&c.FlagKey, yc.FlagKey)
	fill(&c.ValueKey, yc.ValueKey)
	fill(&c.TimeZone, yc.TimeZone)
	fill(&c.Culture, yc.Culture)
	if len(c.Formats) == 0 {
		c.Formats = yc.Formats
	}
	return nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Options returns the extraction settings with defaults applied.
func (c *Config) Options() extract.Options {
	opts := extract.Options{
		FlagKey:  c.FlagKey,
		ValueKey: c.ValueKey,
		TimeZone: c.TimeZone,
		Culture:  c.Culture,
		Formats:  c.Formats,
	}
	if opts.FlagKey == "" {
		opts.FlagKey = model.FlagKeyOffline
	}
	if opts.ValueKey == "" {
		opts.ValueKey = model.ValueKeySyncTime
	}
	if opts.TimeZone == "" {
		opts.TimeZone = model.DefaultTimeZone
	}
	if opts.Culture == "" {
		opts.Culture = model.DefaultCulture
	}
	return opts
}

// Resolve builds the Normalizer for this configuration. Unknown zones,
// cultures and untranslatable formats are reported here, before any I/O.
func (c *Config) Resolve() (*extract.Normalizer, error) {
	return extract.New(c.Options())
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or TAGSTAMP_DB_URL is required")
	}
	return nil
}
