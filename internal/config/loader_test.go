package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/go-depfilter/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "depfilter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultSource, cfg.Source)
	require.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	require.Equal(t, time.Duration(0), cfg.FetchTimeout)
	require.Equal(t, logging.LevelInfo, cfg.Log.Level)
	require.Equal(t, "btn", cfg.Style.Prefix)
	require.Equal(t, "depfilter", cfg.OTel.ServiceName)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
source: https://example.com/projects.json
fetch_timeout: 5s
log:
  level: debug
  json: true
style:
  prefix: label
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/projects.json", cfg.Source)
	require.Equal(t, 5*time.Second, cfg.FetchTimeout)
	require.Equal(t, logging.LevelDebug, cfg.Log.Level)
	require.True(t, cfg.Log.JSON)
	require.Equal(t, "label", cfg.Style.Prefix)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "source: from-file.json\n")
	t.Setenv("DEPFILTER_SOURCE", "from-env.json")
	t.Setenv("DEPFILTER_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env.json", cfg.Source)
	require.Equal(t, logging.LevelWarn, cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEPFILTER_SOURCE", "from-env.json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("source", "", "")
	require.NoError(t, flags.Parse([]string{"--source", "from-flag.json"}))

	loader := NewLoader()
	require.NoError(t, loader.BindFlags(flags))

	cfg, err := loader.Load("")
	require.NoError(t, err)
	require.Equal(t, "from-flag.json", cfg.Source)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrConfig))
		require.Contains(t, err.Error(), "config file not found")
	})

	t.Run("invalid level", func(t *testing.T) {
		path := writeConfig(t, "log:\n  level: loud\n")
		_, err := Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("negative timeout", func(t *testing.T) {
		path := writeConfig(t, "fetch_timeout: -1s\n")
		_, err := Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must not be negative")
	})
}
