package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/mattn/go-runewidth"
)

// ProjectList is the JSON shape of the list command
type ProjectList struct {
	Source   string           `json:"source"`
	Selected []string         `json:"selected"`
	Stale    []string         `json:"stale,omitempty"`
	Total    int              `json:"total"`
	Projects []models.Project `json:"projects"`
}

// NewProjectList collects the visible projects of state.
func NewProjectList(source string, state *filter.FilterState) ProjectList {
	visible := state.Visible()
	if visible == nil {
		visible = []models.Project{}
	}
	var stale []string
	if s := state.Stale(); len(s) > 0 {
		stale = models.TagStrings(s)
	}
	return ProjectList{
		Source:   source,
		Selected: models.TagStrings(state.Selected()),
		Stale:    stale,
		Total:    len(state.Projects()),
		Projects: visible,
	}
}

// WriteProjects writes the visible projects of state in the given format.
func WriteProjects(w io.Writer, source string, state *filter.FilterState, format models.OutputFormat) error {
	list := NewProjectList(source, state)
	if format == models.FormatJSON {
		return writeJSON(w, list)
	}

	if list.Total == 0 {
		_, err := fmt.Fprintln(w, "No projects loaded.")
		return err
	}

	header := fmt.Sprintf("%d of %d projects", len(list.Projects), list.Total)
	if len(list.Selected) > 0 {
		header += " depending on " + strings.Join(list.Selected, " + ")
	}
	rows := make([][]string, 0, len(list.Projects))
	for _, p := range list.Projects {
		rows = append(rows, []string{p.Title(), strings.Join(p.Dependencies.Keys(), ", ")})
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	if len(list.Stale) > 0 {
		b.WriteString("Not in catalog: " + strings.Join(list.Stale, ", ") + "\n")
	}
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString("No projects match the selected dependencies.\n")
	} else {
		writeTable(&b, rows)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTags writes the tag universe with usage counts. With versions set,
// the distinct version specs of each tag are listed too.
func WriteTags(w io.Writer, usage []filter.TagUsage, versions bool, format models.OutputFormat) error {
	if format == models.FormatJSON {
		if usage == nil {
			usage = []filter.TagUsage{}
		}
		if !versions {
			out := make([]filter.TagUsage, len(usage))
			for i, u := range usage {
				out[i] = filter.TagUsage{Tag: u.Tag, Projects: u.Projects, Versions: []string{}}
			}
			usage = out
		}
		return writeJSON(w, usage)
	}

	if len(usage) == 0 {
		_, err := fmt.Fprintln(w, "No dependency tags.")
		return err
	}

	head := []string{"TAG", "PROJECTS"}
	if versions {
		head = append(head, "VERSIONS")
	}
	rows := [][]string{head}
	for _, u := range usage {
		row := []string{u.Tag.String(), fmt.Sprintf("%d", u.Projects)}
		if versions {
			row = append(row, strings.Join(u.Versions, " "))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	writeTable(&b, rows)
	_, err := io.WriteString(w, b.String())
	return err
}

// writeTable pads every column but the last to its widest cell.
// Widths are display widths so wide runes line up.
func writeTable(b *strings.Builder, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
				break
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]))
			line.WriteString("  ")
		}
		b.WriteString(strings.TrimRight(line.String(), " ") + "\n")
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
