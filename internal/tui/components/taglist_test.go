package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTagList_Navigation(t *testing.T) {
	m := NewTagList([]models.Tag{"react", "redux", "mobx"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	require.Equal(t, 2, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	tag, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, models.Tag("redux"), tag)
}

func TestTagList_ToggleEmitsMessage(t *testing.T) {
	m := NewTagList([]models.Tag{"react", "redux"})
	m, _ = m.Update(keyRunes("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.NotNil(t, cmd)
	require.Equal(t, ToggleTagMsg{Tag: "redux"}, cmd())
}

func TestTagList_EmptyToggleIsNoop(t *testing.T) {
	m := NewTagList(nil)
	_, cmd := m.Update(keyRunes("x"))
	require.Nil(t, cmd)

	_, ok := m.Current()
	require.False(t, ok)
}

func TestTagList_SetTagsClampsCursor(t *testing.T) {
	m := NewTagList([]models.Tag{"a", "b", "c"})
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))

	m = m.SetTags([]models.Tag{"a"})
	require.Equal(t, 0, m.Cursor())

	m = m.SetTags(nil)
	require.Equal(t, 0, m.Cursor())
}

func TestTagList_View(t *testing.T) {
	m := NewTagList([]models.Tag{"react", "redux"})
	view := m.View(func(tag models.Tag) models.Style {
		if tag == "redux" {
			return models.StyleSelected
		}
		return models.StyleDefault
	})

	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "[ ]")
	require.Contains(t, lines[0], "react")
	require.Contains(t, lines[1], "[✓]")
	require.Contains(t, lines[1], "redux")
}
