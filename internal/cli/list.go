package cli

import (
	"fmt"

	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/render"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	env *Env
}

// NewListCommand creates a new list command
func NewListCommand(env *Env) *cobra.Command {
	cmd := &ListCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "List the projects that use every given dependency",
		Long: `Loads the catalog once and prints the visible projects.

Without --tag every project is visible. With one or more tags only projects
whose dependencies include all of them are listed.`,
		Example: `  # List every project
  depfilter list

  # Projects using both react and redux
  depfilter list --tag react --tag redux
  depfilter list --tag react,redux

  # Output JSON for scripting
  depfilter list --tag react --format json`,
		RunE: cmd.Run,
	}

	addListFlags(cobraCmd)

	return cobraCmd
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("tag", nil, "Dependency tag to filter by (repeatable, comma-separated)")
	cmd.Flags().String("format", "text", "Output format: text or json")
	cmd.Flags().Bool("strict", false, "Fail when the catalog cannot be loaded instead of listing nothing")
}

// Run executes the list command
func (c *ListCommand) Run(cmd *cobra.Command, args []string) error {
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
	if err := render.WriteProjects(cmd.OutOrStdout(), catalog.Source, state, format); err != nil {
		return fmt.Errorf("failed to write projects: %w", err)
	}

	return nil
}
