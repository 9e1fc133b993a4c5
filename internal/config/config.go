// Package config provides configuration loading for depfilter.
package config

import (
	"fmt"
	"time"

	"github.com/jakoblorz/go-depfilter/internal/logging"
)

// Config is the complete depfilter configuration.
type Config struct {
	// Source is the catalog reference: a path, an http(s) URL or github:owner/repo/path[@ref].
	Source string `mapstructure:"source"`
	// HTTPAddr is the listen address of the serve command.
	HTTPAddr string `mapstructure:"http_addr"`
	// FetchTimeout bounds the catalog load; zero means no timeout.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`

	Log   LogConfig   `mapstructure:"log"`
	Style StyleConfig `mapstructure:"style"`
	OTel  OTelConfig  `mapstructure:"otel"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level logging.Level `mapstructure:"level"`
	JSON  bool          `mapstructure:"json"`
}

// StyleConfig configures tag class names in HTML output.
type StyleConfig struct {
	// Prefix is prepended to style tokens, e.g. "btn" gives "btn-primary".
	Prefix string `mapstructure:"prefix"`
}

// OTelConfig configures opt-in tracing.
type OTelConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

const (
	DefaultSource      = "projects.json"
	DefaultHTTPAddr    = "localhost:8080"
	DefaultStylePrefix = "btn"
	DefaultServiceName = "depfilter"
)

// NewConfig returns a configuration with defaults applied.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	if c.Style.Prefix == "" {
		c.Style.Prefix = DefaultStylePrefix
	}
	if c.OTel.ServiceName == "" {
		c.OTel.ServiceName = DefaultServiceName
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative, got %s", c.FetchTimeout)
	}
	if c.Log.Level < logging.LevelDebug || c.Log.Level > logging.LevelError {
		return fmt.Errorf("log.level out of range: %d", c.Log.Level)
	}
	return nil
}
