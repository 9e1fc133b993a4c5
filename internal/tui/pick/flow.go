// Package pick selects filter tags with a huh form.
package pick

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/tui"
)

// Flow runs the tag picker against a loaded FilterState.
type Flow struct {
	state *filter.FilterState
	theme *huh.Theme
	run   func(*huh.Form) error
}

// Result captures the successful output of the flow.
type Result struct {
	Selected []models.Tag
	Visible  []models.Project
}

// NewFlow constructs a Flow with the orange/blue huh theme.
func NewFlow(state *filter.FilterState) *Flow {
	return &Flow{
		state: state,
		theme: tui.NewHuhTheme(),
		run:   func(f *huh.Form) error { return f.Run() },
	}
}

// Run shows the form and applies the picked tags to the state through
// Toggle; returns nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	picked, err := f.selectTags()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	f.Apply(picked)

	return &Result{
		Selected: f.state.Selected(),
		Visible:  f.state.Visible(),
	}, nil
}

// Apply toggles the state until its catalog tags equal picked. Newly added
// tags are appended in picked order. Selected tags missing from the catalog
// cannot be offered by the form and are kept.
func (f *Flow) Apply(picked []models.Tag) {
	want := make(map[models.Tag]bool, len(picked))
	for _, tag := range picked {
		want[tag] = true
	}
	stale := make(map[models.Tag]bool)
	for _, tag := range f.state.Stale() {
		stale[tag] = true
	}
	for _, tag := range f.state.Selected() {
		if !want[tag] && !stale[tag] {
			f.state.Toggle(tag)
		}
	}
	for _, tag := range picked {
		if f.state.Classify(tag) != models.StyleSelected {
			f.state.Toggle(tag)
		}
	}
}

// Options builds one option per tag labelled with its project count.
// Tags already selected start checked.
func Options(state *filter.FilterState) []huh.Option[string] {
	usage := filter.Usage(state.Projects())
	opts := make([]huh.Option[string], 0, len(usage))
	for _, u := range usage {
		noun := "projects"
		if u.Projects == 1 {
			noun = "project"
		}
		label := fmt.Sprintf("%s (%d %s)", u.Tag, u.Projects, noun)
		opts = append(opts, huh.NewOption(label, string(u.Tag)).
			Selected(state.Classify(u.Tag) == models.StyleSelected))
	}
	return opts
}

func (f *Flow) selectTags() ([]models.Tag, error) {
	opts := Options(f.state)
	if len(opts) == 0 {
		return f.state.Selected(), nil
	}

	known := f.state.Tags()
	selected := make([]string, 0, len(opts))
	for _, tag := range f.state.Selected() {
		if slices.Contains(known, tag) {
			selected = append(selected, string(tag))
		}
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Toggle.SetKeys(" ", "x")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle tag")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "show projects")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Options(opts...).
				Filterable(true).
				Value(&selected),
		).
			Title("Dependency Filter").
			Description("Projects must use every selected dependency."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := f.run(form); err != nil {
		return nil, err
	}

	tags := make([]models.Tag, len(selected))
	for i, s := range selected {
		tags[i] = models.Tag(s)
	}
	return tags, nil
}
