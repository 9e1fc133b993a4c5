package e2e_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jakoblorz/go-depfilter/internal/catalog"
	"github.com/jakoblorz/go-depfilter/internal/filesystem"
	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/github"
	"github.com/jakoblorz/go-depfilter/internal/logging"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/render"
	"github.com/jakoblorz/go-depfilter/internal/web"
	"github.com/stretchr/testify/require"
)

const projectsJSON = `[
  {"id": 1, "name": "dashboard", "dependencies": {"react": "^16.8.0", "redux": "^4.0.1", "lodash": "4.17.11"}},
  {"id": 2, "name": "admin", "dependencies": {"react": "^16.4.0", "mobx": "^5.9.0"}},
  {"id": 3, "name": "landing", "dependencies": {"lodash": "4.17.4"}},
  {"id": 4, "name": "docs"}
]`

func TestFullWorkflow(t *testing.T) {
	// Setup catalog file
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("projects.json", []byte(projectsJSON))

	// Test: Load once
	loader := catalog.NewLoader(catalog.NewFileSource(fs, "projects.json"))
	c, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, c.Projects, 4)
	require.Equal(t, []models.Tag{"react", "redux", "lodash", "mobx"}, c.Tags)

	// Test: Unfiltered shows everything
	state := c.State(nil)
	require.False(t, state.Filtered())
	require.Len(t, state.Visible(), 4)

	// Test: Toggle narrows with AND semantics
	state.Toggle("react")
	require.Len(t, state.Visible(), 2)
	state.Toggle("lodash")
	visible := state.Visible()
	require.Len(t, visible, 1)
	require.Equal(t, "dashboard", visible[0].Name)
	require.Equal(t, models.StyleSelected, state.Classify("lodash"))
	require.Equal(t, models.StyleDefault, state.Classify("mobx"))

	// Test: Toggle twice restores
	state.Toggle("lodash")
	require.Equal(t, []models.Tag{"react"}, state.Selected())

	// Test: Tag usage with version ordering
	usage := filter.Usage(c.Projects)
	require.Equal(t, []string{"4.17.4", "4.17.11"}, usage[2].Versions)

	// Test: Static page for the same selection
	var page bytes.Buffer
	require.NoError(t, render.WriteHTML(&page, render.NewPage(state, render.PageOptions{Prefix: "btn"})))
	require.Contains(t, page.String(), "2 of 4 projects")

	// Test: HTTP view serves the same result from the URL
	srv := httptest.NewServer(web.NewHandler(c, web.HandlerOptions{Prefix: "btn"}, logging.NewNoop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?tag=react")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Contains(t, string(body), "2 of 4 projects")
}

func TestGitHubCatalogWorkflow(t *testing.T) {
	gh := github.NewMockClient()
	gh.AddFile("acme", "projects", "catalog/projects.json", "", []byte(projectsJSON))

	src, err := catalog.NewSource("github:acme/projects/catalog/projects.json", catalog.Deps{GitHub: gh})
	require.NoError(t, err)

	c, err := catalog.NewLoader(src).Load(context.Background())
	require.NoError(t, err)

	state := c.State([]models.Tag{"mobx"})
	require.Len(t, state.Visible(), 1)
	require.Equal(t, "admin", state.Visible()[0].Name)
}

func TestLoadFailureWorkflow(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Writer: &logs})

	gh := github.NewMockClient()
	src, err := catalog.NewSource("github:acme/projects/missing.json", catalog.Deps{GitHub: gh})
	require.NoError(t, err)

	c := catalog.NewLoader(src, catalog.WithLogger(logger)).LoadOrEmpty(context.Background())
	require.Empty(t, c.Projects)
	require.Contains(t, logs.String(), catalog.LoadFailedMessage)

	// Rendering continues with the empty set
	state := c.State([]models.Tag{"react"})
	require.Empty(t, state.Visible())
	require.Equal(t, []models.Tag{"react"}, state.Stale())
}
