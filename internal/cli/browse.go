package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/tui/browse"
	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	env *Env
}

// NewBrowseCommand creates a new browse command
func NewBrowseCommand(env *Env) *cobra.Command {
	cmd := &BrowseCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog and toggle dependency filters interactively",
		Long: `Opens a terminal view with every dependency tag and the projects passing
the current filter. Space toggles the tag under the cursor, c clears the
filter and q quits. The selected tags are printed on exit.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringArray("tag", nil, "Tags selected when the browser opens")

	return cobraCmd
}

// Run executes the browse command
func (c *BrowseCommand) Run(cmd *cobra.Command, args []string) error {
	tagValues, _ := cmd.Flags().GetStringArray("tag")

	loader, err := c.env.Loader()
	if err != nil {
		return err
	}

	model := browse.NewModel(cmd.Context(), loader.LoadOrEmpty, models.ParseTags(tagValues))
	program := tea.NewProgram(model, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if m, ok := final.(browse.Model); ok {
		for _, tag := range m.Selected() {
			writeLine(cmd.OutOrStdout(), "%s", tag)
		}
	}

	return nil
}
