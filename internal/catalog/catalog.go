// Package catalog loads the project catalog once from a file, URL or
// GitHub repository and hands it to the filter core.
package catalog

import (
	"context"
	"time"

	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/logging"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LoadFailedMessage is logged once when a load fails.
const LoadFailedMessage = "Error getting project data."

// Catalog is the result of one load. It is read-only once returned and
// safe to share between goroutines.
type Catalog struct {
	Source   string
	Projects []models.Project
	Tags     []models.Tag
	LoadedAt time.Time
}

// Empty returns a catalog with no projects for source.
func Empty(source string) *Catalog {
	return &Catalog{Source: source}
}

// State returns a fresh FilterState over the catalog's projects.
func (c *Catalog) State(selected []models.Tag) *filter.FilterState {
	state := filter.NewWithSelection(selected)
	state.Load(c.Projects)
	return state
}

// Loader fetches and decodes a catalog.
type Loader struct {
	source  Source
	timeout time.Duration
	logger  *logging.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures a Loader
type Option func(*Loader)

// WithTimeout bounds each Load. Zero leaves the context untouched.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.timeout = d }
}

// WithLogger sets the logger used by LoadOrEmpty.
func WithLogger(logger *logging.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithClock overrides the LoadedAt clock.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) { l.now = now }
}

// NewLoader creates a loader for source.
func NewLoader(source Source, opts ...Option) *Loader {
	l := &Loader{
		source: source,
		logger: logging.NewNoop(),
		tracer: telemetry.Tracer(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured source.
func (l *Loader) Source() Source {
	return l.source
}

// Load fetches the document once, decodes it and indexes its tags.
// There is no retry. Every failure is a *LoadError matching ErrDataLoad.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	name := l.source.Name()
	ctx, span := l.tracer.Start(ctx, "catalog.load",
		trace.WithAttributes(attribute.String("catalog.source", name)),
	)
	defer span.End()

	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, l.fail(span, &LoadError{Source: name, Op: "fetch", Err: err})
	}

	projects, err := Decode(FormatFor(name), data)
	if err != nil {
		return nil, l.fail(span, &LoadError{Source: name, Op: "decode", Err: err})
	}

	tags := filter.IndexDependencies(projects)
	span.SetAttributes(
		attribute.Int("catalog.projects", len(projects)),
		attribute.Int("catalog.tags", len(tags)),
	)

	return &Catalog{
		Source:   name,
		Projects: projects,
		Tags:     tags,
		LoadedAt: l.now(),
	}, nil
}

// LoadOrEmpty is Load for rendering surfaces: a failure is logged once and
// an empty catalog is returned in its place.
func (l *Loader) LoadOrEmpty(ctx context.Context) *Catalog {
	c, err := l.Load(ctx)
	if err != nil {
		l.logger.WithContext(ctx).Error(LoadFailedMessage, "source", l.source.Name(), "error", err)
		return Empty(l.source.Name())
	}
	return c
}

func (l *Loader) fail(span trace.Span, err *LoadError) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Op+" failed")
	return err
}
