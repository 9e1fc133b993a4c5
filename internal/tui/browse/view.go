package browse

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/tui"
)

// View renders the current state
func (m Model) View() string {
	if m.phase == StateLoading {
		return tui.SubtleStyle.Render("Loading projects…") + "\n"
	}

	var b strings.Builder

	title := "Dependencies"
	if m.source != "" {
		title += " · " + m.source
	}
	b.WriteString(tui.TitleStyle.Render(title))
	b.WriteString("\n")

	if len(m.state.Tags()) == 0 {
		b.WriteString(tui.SubtleStyle.Render("No dependency tags."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.tags.View(m.state.Classify))
	}

	if stale := m.state.Stale(); len(stale) > 0 {
		b.WriteString(tui.WarnStyle.Render("Not in catalog: " + strings.Join(models.TagStrings(stale), ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.state.Visible()
	b.WriteString(tui.HeaderStyle.Render(fmt.Sprintf("%d of %d projects", len(visible), len(m.state.Projects()))))
	b.WriteString("\n\n")

	for _, p := range visible {
		b.WriteString(tui.SelectedStyle.Render(p.Title()))
		if keys := p.Dependencies.Keys(); len(keys) > 0 {
			b.WriteString("  ")
			b.WriteString(m.renderTags(keys))
		}
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString("  " + tui.DescStyle.Render(p.Description) + "\n")
		}
	}
	if len(visible) == 0 && len(m.state.Projects()) > 0 {
		b.WriteString(tui.SubtleStyle.Render("No projects match the selected dependencies."))
		b.WriteString("\n")
	}

	b.WriteString(tui.HelpStyle.Render(m.help()))

	return b.String()
}

func (m Model) renderTags(keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		tag := models.Tag(k)
		parts[i] = tui.StyleFor(m.state.Classify(tag)).Render(k)
	}
	return strings.Join(parts, " ")
}

func (m Model) help() string {
	tk := m.tags.Keys()
	bindings := []struct{ key, desc string }{
		{tk.Up.Help().Key, tk.Up.Help().Desc},
		{tk.Down.Help().Key, tk.Down.Help().Desc},
		{tk.Toggle.Help().Key, tk.Toggle.Help().Desc},
		{m.keys.Clear.Help().Key, m.keys.Clear.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.key + " " + b.desc
	}
	return strings.Join(parts, " • ")
}
