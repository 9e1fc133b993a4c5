package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-depfilter/internal/models"
	"github.com/jakoblorz/go-depfilter/internal/render"
	"github.com/spf13/cobra"
)

// RenderCommand handles the render command
type RenderCommand struct {
	env *Env
}

// NewRenderCommand creates a new render command
func NewRenderCommand(env *Env) *cobra.Command {
	cmd := &RenderCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the catalog page as static HTML",
		Long: `Renders the same page 'depfilter serve' shows, for the given selection,
to stdout or to a file.`,
		Example: `  depfilter render > index.html
  depfilter render --tag react -o public/react.html`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringArray("tag", nil, "Dependency tag to filter by (repeatable, comma-separated)")
	cobraCmd.Flags().StringP("output", "o", "", "Write the page to this file instead of stdout")
	cobraCmd.Flags().String("title", "Projects", "Page title")

	return cobraCmd
}

// Run executes the render command
func (c *RenderCommand) Run(cmd *cobra.Command, args []string) error {
	tagValues, _ := cmd.Flags().GetStringArray("tag")
	output, _ := cmd.Flags().GetString("output")
	title, _ := cmd.Flags().GetString("title")

	catalog, err := c.env.LoadCatalog(cmd.Context(), false)
	if err != nil {
		return err
	}

	page := render.NewPage(catalog.State(models.ParseTags(tagValues)), render.PageOptions{
		Title:  title,
		Source: catalog.Source,
		Prefix: c.env.Config().Style.Prefix,
	})

	var buf bytes.Buffer
	if err := render.WriteHTML(&buf, page); err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := c.env.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := c.env.fs.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	writeLine(cmd.ErrOrStderr(), "✓ Wrote %s (%d of %d projects)", output, len(page.Projects), page.Total)
	return nil
}
