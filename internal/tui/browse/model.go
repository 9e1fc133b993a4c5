// Package browse is the interactive terminal view: the tag list on top,
// the projects passing the current filter below.
package browse

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-depfilter/internal/catalog"
	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/tui/components"
)

// LoadFunc loads the catalog. Failures are handled by the loader, the
// browser only ever sees a catalog, possibly empty.
type LoadFunc func(ctx context.Context) *catalog.Catalog

// State represents the phase of the browser
type State int

const (
	StateLoading State = iota
	StateReady
)

// KeyMap are the browser-level bindings
type KeyMap struct {
	Clear key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LoadedMsg carries the result of the single catalog load
type LoadedMsg struct {
	Catalog *catalog.Catalog
}

// Model is the bubbletea model of the browse command. It owns its
// FilterState; all mutation happens on the bubbletea event loop.
type Model struct {
	ctx    context.Context
	load   LoadFunc
	state  *filter.FilterState
	phase  State
	source string
	tags   components.TagList
	keys   KeyMap
	width  int
	height int
}

// NewModel creates a browser that loads its catalog with load on Init.
func NewModel(ctx context.Context, load LoadFunc, selected []models.Tag) Model {
	return Model{
		ctx:   ctx,
		load:  load,
		state: filter.NewWithSelection(selected),
		phase: StateLoading,
		tags:  components.NewTagList(nil),
		keys:  DefaultKeyMap(),
	}
}

// Init starts the load
func (m Model) Init() tea.Cmd {
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		return LoadedMsg{Catalog: load(ctx)}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case LoadedMsg:
		m.phase = StateReady
		if msg.Catalog != nil {
			m.source = msg.Catalog.Source
			m.state.Load(msg.Catalog.Projects)
		}
		m.tags = m.tags.SetTags(m.state.Tags())
		return m, nil

	case components.ToggleTagMsg:
		m.state.Toggle(msg.Tag)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			for _, tag := range m.state.Selected() {
				m.state.Toggle(tag)
			}
			return m, nil
		}
	}

	if m.phase != StateReady {
		return m, nil
	}

	var cmd tea.Cmd
	m.tags, cmd = m.tags.Update(msg)
	return m, cmd
}

// Selected returns the tags selected when the browser exits
func (m Model) Selected() []models.Tag {
	return m.state.Selected()
}

// Phase returns the current phase
func (m Model) Phase() State {
	return m.phase
}
