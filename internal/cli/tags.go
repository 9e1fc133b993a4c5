package cli

import (
	"fmt"

	"github.com/jakoblorz/go-depfilter/internal/filter"
	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/render"
	"github.com/spf13/cobra"
)

// TagsCommand handles the tags command
type TagsCommand struct {
	env *Env
}

// NewTagsCommand creates a new tags command
func NewTagsCommand(env *Env) *cobra.Command {
	cmd := &TagsCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "tags",
		Short: "List every dependency tag in the catalog",
		Long: `Prints the dependency tags in the order they first appear in the catalog,
with the number of projects using each.

With --versions the distinct version specs of each tag are listed as well,
lowest version first.`,
		Example: `  depfilter tags
  depfilter tags --versions
  depfilter tags --format json`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().Bool("versions", false, "Show the version specs used for each tag")
	cobraCmd.Flags().Bool("strict", false, "Fail when the catalog cannot be loaded")

	return cobraCmd
}

// Run executes the tags command
func (c *TagsCommand) Run(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	versions, _ := cmd.Flags().GetBool("versions")
	strict, _ := cmd.Flags().GetBool("strict")

	format, err := models.ParseOutputFormat(formatStr)
	if err != nil {
		return err
	}

	catalog, err := c.env.LoadCatalog(cmd.Context(), strict)
	if err != nil {
		return err
	}

	usage := filter.Usage(catalog.Projects)
	if err := render.WriteTags(cmd.OutOrStdout(), usage, versions, format); err != nil {
		return fmt.Errorf("failed to write tags: %w", err)
	}

	return nil
}
