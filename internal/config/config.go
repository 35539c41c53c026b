// Package config loads calculator CLI settings from a YAML file, an optional
// .env file and CALC_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultLocale    = "en-US"
	DefaultQueueSize = 64
)

// Config is the root configuration.
type Config struct {
	Locale    string  `yaml:"locale"`
	QueueSize int     `yaml:"queue_size"`
	Logging   Logging `yaml:"logging"`
	Metrics   Metrics `yaml:"metrics"`
}

// Metrics configures the optional Prometheus endpoint.
type Metrics struct {
	// Listen is the address for the /metrics endpoint; empty disables it.
	Listen string `yaml:"listen"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration. A missing file at path is not an error;
// defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile loads .env then .env.local when present. Existing process
// environment variables are not overwritten.
func loadEnvFile() error {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.QueueSize == 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	if c.Logging.Format == "" {
		c.Logging.Format = LogFormatText
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CALC_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("CALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = LogLevel(v)
	}
	if v := os.Getenv("CALC_LOG_FORMAT"); v != "" {
		c.Logging.Format = LogFormat(v)
	}
	if v := os.Getenv("CALC_METRICS_LISTEN"); v != "" {
		c.Metrics.Listen = v
	}
	if v := os.Getenv("CALC_QUEUE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CALC_QUEUE_SIZE %q: %v", ErrInvalidConfig, v, err)
		}
		c.QueueSize = n
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.Language(); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("%w: queue_size must be positive, got %d", ErrInvalidConfig, c.QueueSize)
	}
	if !c.Logging.Level.Valid() {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	if !c.Logging.Format.Valid() {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// Language parses Locale as a BCP 47 tag.
func (c *Config) Language() (language.Tag, error) {
	return language.Parse(c.Locale)
}
