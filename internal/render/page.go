// Package render turns a filtered catalog into pages and listings.
package render

import (
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/models"
)

// LabelPrefix is the class prefix of tags listed under each project.
const LabelPrefix = "label"

// TagLink is one clickable tag. Href toggles the tag in the current selection.
type TagLink struct {
	Tag      models.Tag
	Version  string
	Class    string
	Href     string
	Selected bool
}

// ProjectView is a project as shown on the page
type ProjectView struct {
	Anchor      string
	Title       string
	Description string
	URL         string
	Tags        []TagLink
}

// Page is the data behind the HTML view
type Page struct {
	Title     string
	Source    string
	BasePath  string
	Tags      []TagLink
	Projects  []ProjectView
	Selected  []models.Tag
	Stale     []models.Tag
	Filtered  bool
	Total     int
	ClearHref string
}

// PageOptions configures NewPage
type PageOptions struct {
	Title    string
	Source   string
	BasePath string
	// Prefix is the class prefix of the tag navigation, e.g. "btn".
	Prefix string
}

// NewPage builds the page for a FilterState. Every class comes from
// Classify and every link from Toggle, so the page holds no filter logic.
func NewPage(state *filter.FilterState, opts PageOptions) Page {
	if opts.Title == "" {
		opts.Title = "Projects"
	}
	if opts.BasePath == "" {
		opts.BasePath = "/"
	}

	selected := state.Selected()
	page := Page{
		Title:     opts.Title,
		Source:    opts.Source,
		BasePath:  opts.BasePath,
		Selected:  selected,
		Stale:     state.Stale(),
		Filtered:  state.Filtered(),
		Total:     len(state.Projects()),
		ClearHref: opts.BasePath,
	}

	for _, tag := range state.Tags() {
		page.Tags = append(page.Tags, tagLink(tag, "", selected, opts.Prefix, opts.BasePath))
	}

	for i, p := range state.Visible() {
		view := ProjectView{
			Anchor:      anchor(p, i),
			Title:       p.Title(),
			Description: p.Description,
			URL:         p.URL,
		}
		for _, key := range p.Dependencies.Keys() {
			version, _ := p.Dependencies.Get(key)
			view.Tags = append(view.Tags, tagLink(models.Tag(key), version, selected, LabelPrefix, opts.BasePath))
		}
		page.Projects = append(page.Projects, view)
	}

	return page
}

func tagLink(tag models.Tag, version string, selected []models.Tag, prefix, basePath string) TagLink {
	return TagLink{
		Tag:      tag,
		Version:  version,
		Class:    filter.Classify(tag, selected).Class(prefix),
		Href:     SelectionHref(basePath, filter.Toggle(tag, selected)),
		Selected: filter.Classify(tag, selected) == models.StyleSelected,
	}
}

// SelectionHref encodes a selection as repeated tag query parameters.
func SelectionHref(basePath string, selected []models.Tag) string {
	if len(selected) == 0 {
		return basePath
	}
	q := url.Values{"tag": models.TagStrings(selected)}
	return basePath + "?" + q.Encode()
}

func anchor(p models.Project, i int) string {
	if p.ID != "" {
		return "project-" + p.ID
	}
	return fmt.Sprintf("project-%d", i+1)
}

var pageTemplate = template.Must(template.New("page").Funcs(sprig.FuncMap()).Parse(pageHTML))

// WriteHTML renders the page as a complete HTML document.
func WriteHTML(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
</head>
<body>
<nav class="nav-parent">
<h1>{{ .Title }}</h1>
{{- if .Source }}
<p class="source">{{ .Source }}</p>
{{- end }}
<ul class="tags">
{{- range .Tags }}
<li><a class="{{ .Class }}" href="{{ .Href }}">{{ .Tag }}</a></li>
{{- end }}
</ul>
{{- if .Filtered }}
<p class="filter">Filtering by {{ .Selected | join " + " }} &middot; <a href="{{ .ClearHref }}">clear</a></p>
{{- end }}
{{- if .Stale }}
<p class="stale">Not in this catalog: {{ .Stale | join ", " }}</p>
{{- end }}
</nav>
<main>
<p class="count">{{ len .Projects }} of {{ .Total }} {{ if eq .Total 1 }}project{{ else }}projects{{ end }}</p>
{{- range .Projects }}
<section id="{{ .Anchor }}">
<h2>{{ if .URL }}<a href="{{ .URL }}">{{ .Title }}</a>{{ else }}{{ .Title }}{{ end }}</h2>
{{- with .Description }}
<p>{{ . | trim }}</p>
{{- end }}
{{- if .Tags }}
<ul class="dependencies">
{{- range .Tags }}
<li><a class="{{ .Class }}" href="{{ .Href }}">{{ .Tag }}{{ with .Version }} <small>{{ . }}</small>{{ end }}</a></li>
{{- end }}
</ul>
{{- end }}
</section>
{{- else }}
<p class="empty">No projects match the selected dependencies.</p>
{{- end }}
</main>
</body>
</html>
`
