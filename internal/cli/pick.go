package cli

import (
	"fmt"

	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/render"
	"github.com/jakoblorz/go-depfilter/internal/tui/pick"
	"github.com/spf13/cobra"
)

// PickCommand handles the pick command
type PickCommand struct {
	env *Env
}

// NewPickCommand creates a new pick command
func NewPickCommand(env *Env) *cobra.Command {
	cmd := &PickCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick dependency tags from a list and print the matching projects",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringArray("tag", nil, "Tags checked when the form opens")
	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().Bool("strict", false, "Fail when the catalog cannot be loaded")

	return cobraCmd
}

// Run executes the pick command
func (c *PickCommand) Run(cmd *cobra.Command, args []string) error {
	tagValues, _ := cmd.Flags().GetStringArray("tag")
	formatStr, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")

	format, err := models.ParseOutputFormat(formatStr)
	if err != nil {
		return err
	}

	catalog, err := c.env.LoadCatalog(cmd.Context(), strict)
	if err != nil {
		return err
	}

	state := catalog.State(models.ParseTags(tagValues))
	result, err := pick.NewFlow(state).Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if result == nil {
		return nil
	}

	if err := render.WriteProjects(cmd.OutOrStdout(), catalog.Source, state, format); err != nil {
		return fmt.Errorf("failed to write projects: %w", err)
	}

	return nil
}
