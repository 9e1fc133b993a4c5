package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/tui"
)

// TagListKeyMap are the bindings of a TagList
type TagListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

// DefaultTagListKeyMap returns vim-style navigation with space to toggle.
func DefaultTagListKeyMap() TagListKeyMap {
	return TagListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
	}
}

// ToggleTagMsg asks the owner of the filter to toggle Tag.
type ToggleTagMsg struct {
	Tag models.Tag
}

// TagList is a cursor over the tag universe. It holds no selection: the
// owner passes a classifier when rendering and handles ToggleTagMsg.
type TagList struct {
	tags   []models.Tag
	cursor int
	keys   TagListKeyMap
}

// NewTagList creates a tag list component
func NewTagList(tags []models.Tag) TagList {
	return TagList{
		tags: tags,
		keys: DefaultTagListKeyMap(),
	}
}

// SetTags replaces the tags, keeping the cursor in range.
func (m TagList) SetTags(tags []models.Tag) TagList {
	m.tags = tags
	if m.cursor >= len(tags) {
		m.cursor = max(len(tags)-1, 0)
	}
	return m
}

// Init initializes the component
func (m TagList) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m TagList) Update(msg tea.Msg) (TagList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.tags)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if tag, ok := m.Current(); ok {
			return m, func() tea.Msg { return ToggleTagMsg{Tag: tag} }
		}
	}
	return m, nil
}

// View renders the tags with a checkbox per tag
func (m TagList) View(classify func(models.Tag) models.Style) string {
	var b strings.Builder

	for i, tag := range m.tags {
		cursor := " "
		if m.cursor == i {
			cursor = tui.SelectedStyle.Render("›")
		}

		style := classify(tag)
		checkbox := tui.StyleFor(style).Render("[ ]")
		if style == models.StyleSelected {
			checkbox = tui.StyleFor(style).Render("[✓]")
		}

		itemStyle := lipgloss.NewStyle()
		if m.cursor == i {
			itemStyle = tui.SelectedStyle
		}

		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox, itemStyle.Render(string(tag))))
	}

	return b.String()
}

// Current returns the tag under the cursor
func (m TagList) Current() (models.Tag, bool) {
	if len(m.tags) == 0 {
		return "", false
	}
	return m.tags[m.cursor], true
}

// Cursor returns the cursor position
func (m TagList) Cursor() int {
	return m.cursor
}

// Keys returns the bindings for help rendering
func (m TagList) Keys() TagListKeyMap {
	return m.keys
}
