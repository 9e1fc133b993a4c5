package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-depfilter/internal/models"
)

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	// Header styling for panes
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	// Selected item styling
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	// Checkbox styling
	CheckedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	UncheckedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	// Help text styling
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)

	// Warning styling, used for selected tags missing from the catalog
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8700"))

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	// Description styling
	DescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// StyleFor maps a tag style to its terminal rendering.
func StyleFor(style models.Style) lipgloss.Style {
	if style == models.StyleSelected {
		return CheckedStyle
	}
	return UncheckedStyle
}

// NewHuhTheme returns the charm theme with depfilter's orange/blue accents.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeCharm()

	orange := lipgloss.Color("#FF8700")
	blue := lipgloss.Color("#5FAFFF")

	t.Focused.Title = t.Focused.Title.Foreground(orange).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(lipgloss.Color("#888888"))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(orange)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(orange)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(blue)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(blue)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(orange)
	t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color("#666666"))

	return t
}
