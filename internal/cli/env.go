package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jakoblorz/go-depfilter/internal/catalog"
	"github.com/jakoblorz/go-depfilter/internal/config"
	"github.com/jakoblorz/go-depfilter/internal/filesystem"
	"github.com/jakoblorz/go-depfilter/internal/github"
	"github.com/jakoblorz/go-depfilter/internal/logging"
	"github.com/jakoblorz/go-depfilter/internal/telemetry"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// Env holds what every command needs once flags are parsed, including the
// collaborators catalogs are loaded through.
type Env struct {
	fs         filesystem.FileSystem
	gh         github.GitHubClient
	httpClient *http.Client

	cfg      *config.Config
	logger   *logging.Logger
	shutdown func(context.Context) error
}

// NewEnv creates an Env; Setup must run before commands use it.
func NewEnv(fs filesystem.FileSystem, gh github.GitHubClient) *Env {
	return &Env{
		fs:       fs,
		gh:       gh,
		cfg:      config.NewConfig(),
		logger:   logging.NewNoop(),
		shutdown: func(context.Context) error { return nil },
	}
}

// Setup loads configuration for cmd and initializes logging and tracing.
func (e *Env) Setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString(configFlag)
	cfg, err := loader.Load(path)
	if err != nil {
		return err
	}
	e.cfg = cfg

	e.logger = logging.New(&logging.Config{
		Level:      cfg.Log.Level,
		JSONFormat: cfg.Log.JSON,
		Writer:     cmd.ErrOrStderr(),
	})

	shutdown, err := telemetry.Setup(cmd.Context(), telemetry.Config{
		Endpoint:    cfg.OTel.Endpoint,
		ServiceName: cfg.OTel.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	e.shutdown = shutdown

	return nil
}

// Close flushes tracing.
func (e *Env) Close(ctx context.Context) error {
	return e.shutdown(ctx)
}

// Config returns the loaded configuration
func (e *Env) Config() *config.Config {
	return e.cfg
}

// Logger returns the configured logger
func (e *Env) Logger() *logging.Logger {
	return e.logger
}

// Loader builds a catalog loader for the configured source.
func (e *Env) Loader() (*catalog.Loader, error) {
	source, err := catalog.NewSource(e.cfg.Source, catalog.Deps{
		FS:         e.fs,
		HTTPClient: e.httpClient,
		GitHub:     e.gh,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog source: %w", err)
	}

	return catalog.NewLoader(source,
		catalog.WithTimeout(e.cfg.FetchTimeout),
		catalog.WithLogger(e.logger),
	), nil
}

// LoadCatalog loads the catalog once. A failure is logged and an empty
// catalog is returned, unless strict is set, in which case the error is.
func (e *Env) LoadCatalog(ctx context.Context, strict bool) (*catalog.Catalog, error) {
	loader, err := e.Loader()
	if err != nil {
		return nil, err
	}
	if !strict {
		return loader.LoadOrEmpty(ctx), nil
	}

	c, err := loader.Load(ctx)
	if err != nil {
		e.logger.Error(catalog.LoadFailedMessage, "source", loader.Source().Name(), "error", err)
		return nil, err
	}
	return c, nil
}

func writeLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
