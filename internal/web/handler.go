package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jakoblorz/go-depfilter/internal/catalog"
	"github.com/jakoblorz/go-depfilter/internal/logging"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/render"
)

const (
	requestIDHeader   = "X-Request-Id"
	requestIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	maxRequestIDLen   = 64
)

// HandlerOptions configures page rendering
type HandlerOptions struct {
	Prefix string
	Title  string
}

type handler struct {
	catalog *catalog.Catalog
	opts    HandlerOptions
	logger  *logging.Logger
}

// NewHandler returns the HTTP routes of the catalog view:
//
//	GET /               the page, filtered by repeated ?tag= parameters
//	GET /projects.json  the loaded catalog
//	GET /api/projects   visible projects as JSON
//	GET /healthz        liveness
func NewHandler(c *catalog.Catalog, opts HandlerOptions, logger *logging.Logger) http.Handler {
	if c == nil {
		c = catalog.Empty("")
	}
	if logger == nil {
		logger = logging.NewNoop()
	}
	h := &handler{catalog: c, opts: opts, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handlePage)
	mux.HandleFunc("GET /projects.json", h.handleCatalog)
	mux.HandleFunc("GET /api/projects", h.handleProjects)
	mux.Handle("GET /healthz", HealthHandler())

	return withRequestID(logger, mux)
}

// HealthHandler returns a simple health check handler
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
		})
	}
}

// selection reads the selected set from repeated and comma-separated tag parameters.
func selection(r *http.Request) []models.Tag {
	return models.ParseTags(r.URL.Query()["tag"])
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	state := h.catalog.State(selection(r))
	page := render.NewPage(state, render.PageOptions{
		Title:  h.opts.Title,
		Source: h.catalog.Source,
		Prefix: h.opts.Prefix,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteHTML(w, page); err != nil {
		h.logger.WithContext(r.Context()).Error("failed to write page", "error", err)
	}
}

func (h *handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	projects := h.catalog.Projects
	if projects == nil {
		projects = []models.Project{}
	}
	h.writeJSON(w, r, projects)
}

func (h *handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	state := h.catalog.State(selection(r))
	h.writeJSON(w, r, render.NewProjectList(h.catalog.Source, state))
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		h.logger.WithContext(r.Context()).Error("failed to write response", "error", err)
	}
}

// validRequestID accepts client IDs of at most maxRequestIDLen characters
// drawn from requestIDAlphabet.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(requestIDAlphabet, r) {
			return false
		}
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withRequestID tags each request with an ID, echoed in X-Request-Id and
// attached to log lines written while handling it.
func withRequestID(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !validRequestID(id) {
			generated, err := gonanoid.Generate(requestIDAlphabet, 12)
			if err != nil {
				logger.Warn("failed to generate request id", "error", err)
			}
			id = generated
		}

		ctx := logging.WithRequestID(r.Context(), id)
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.WithContext(ctx).Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
