package render

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/stretchr/testify/require"
)

func sampleState(selected ...models.Tag) *filter.FilterState {
	state := filter.NewWithSelection(selected)
	state.Load([]models.Project{
		{ID: "1", Name: "alpha", URL: "https://example.com/alpha", Dependencies: models.NewDependencies("react", "^16.0.0", "redux", "^4.0.0")},
		{ID: "2", Name: "beta", Description: "  State with observables ", Dependencies: models.NewDependencies("react", "^15.0.0", "mobx", "^5.0.0")},
		{ID: "3", Name: "gamma"},
	})
	return state
}

func TestNewPage_Unfiltered(t *testing.T) {
	page := NewPage(sampleState(), PageOptions{Prefix: "btn"})

	require.False(t, page.Filtered)
	require.Equal(t, 3, page.Total)
	require.Len(t, page.Projects, 3)
	require.Len(t, page.Tags, 3)

	react := page.Tags[0]
	require.Equal(t, models.Tag("react"), react.Tag)
	require.Equal(t, "btn-default", react.Class)
	require.Equal(t, "/?tag=react", react.Href)
	require.False(t, react.Selected)

	require.Equal(t, "label-default", page.Projects[0].Tags[0].Class)
	require.Equal(t, "^16.0.0", page.Projects[0].Tags[0].Version)
	require.Equal(t, "project-1", page.Projects[0].Anchor)
}

func TestNewPage_Filtered(t *testing.T) {
	page := NewPage(sampleState("react", "redux"), PageOptions{Prefix: "btn", BasePath: "/app"})

	require.True(t, page.Filtered)
	require.Len(t, page.Projects, 1)
	require.Equal(t, "alpha", page.Projects[0].Title)

	byTag := map[models.Tag]TagLink{}
	for _, link := range page.Tags {
		byTag[link.Tag] = link
	}

	require.Equal(t, "btn-primary", byTag["react"].Class)
	require.Equal(t, "/app?tag=redux", byTag["react"].Href)
	require.Equal(t, "btn-primary", byTag["redux"].Class)
	require.Equal(t, "/app?tag=react", byTag["redux"].Href)
	require.Equal(t, "btn-default", byTag["mobx"].Class)
	require.Equal(t, "/app?tag=react&tag=redux&tag=mobx", byTag["mobx"].Href)
	require.Equal(t, "/app", page.ClearHref)
}

func TestNewPage_Stale(t *testing.T) {
	page := NewPage(sampleState("vue"), PageOptions{})

	require.Equal(t, []models.Tag{"vue"}, page.Stale)
	require.Empty(t, page.Projects)
	require.Equal(t, "default", page.Tags[0].Class)
}

func TestSelectionHref(t *testing.T) {
	require.Equal(t, "/", SelectionHref("/", nil))
	require.Equal(t, "/?tag=c%2B%2B", SelectionHref("/", []models.Tag{"c++"}))
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, NewPage(sampleState("react"), PageOptions{Title: "Catalog", Source: "projects.json", Prefix: "btn"}))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `<a class="btn-primary" href="/">react</a>`)
	require.Contains(t, out, `<a class="btn-default" href="/?tag=react&amp;tag=redux">redux</a>`)
	require.Contains(t, out, "Filtering by react")
	require.Contains(t, out, "2 of 3 projects")
	require.Contains(t, out, "<p>State with observables</p>")
	require.NotContains(t, out, "gamma")

	snaps.MatchSnapshot(t, out)
}

func TestWriteHTML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, NewPage(filter.New(), PageOptions{})))

	require.Contains(t, buf.String(), "0 of 0 projects")
	require.Contains(t, buf.String(), "No projects match the selected dependencies.")
}

func TestWriteHTML_EscapesCatalogText(t *testing.T) {
	state := filter.New()
	state.Load([]models.Project{{Name: "<script>alert(1)</script>"}})

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, NewPage(state, PageOptions{})))
	require.NotContains(t, buf.String(), "<script>alert(1)</script>")
	require.Contains(t, buf.String(), "&lt;script&gt;")
}
