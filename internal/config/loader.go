package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jakoblorz/go-depfilter/internal/logging"
)

const (
	// DefaultConfigPath is the config file looked up in the working directory.
	DefaultConfigPath = ".depfilter.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "DEPFILTER"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"source":        "source",
	"http-addr":     "http_addr",
	"fetch-timeout": "fetch_timeout",
	"log-level":     "log.level",
	"log-json":      "log.json",
	"style-prefix":  "style.prefix",
}

// Loader handles loading configuration from files, environment and flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv applies during Unmarshal.
	v.SetDefault("source", DefaultSource)
	v.SetDefault("http_addr", DefaultHTTPAddr)
	v.SetDefault("fetch_timeout", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("style.prefix", DefaultStylePrefix)
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.service_name", DefaultServiceName)

	return &Loader{v: v}
}

// BindFlags lets explicitly set flags override file and environment values.
// Flags not present in the set are ignored.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file at path (optional when path is empty), applies
// environment overrides and validates the result.
func (l *Loader) Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to read config file", Err: err}
		}
	} else if explicit {
		return nil, &LoadError{Path: path, Message: "config file not found", Err: err}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse config", Err: err}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "configuration validation failed", Err: err}
	}

	return cfg, nil
}

// viperDecodeHook composes the standard mapstructure hooks with ours.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToLevelHookFunc(),
	)
}

func stringToLevelHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(logging.Level(0)) {
			return data, nil
		}
		return logging.ParseLevel(data.(string))
	}
}

// ErrConfig is matched by every LoadError.
var ErrConfig = errors.New("configuration error")

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConfig.
func (e *LoadError) Is(target error) bool {
	return target == ErrConfig
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}
