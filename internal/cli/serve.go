package cli

import (
	"github.com/jakoblorz/go-depfilter/internal/web"
	"github.com/spf13/cobra"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	env *Env
}

// NewServeCommand creates a new serve command
func NewServeCommand(env *Env) *cobra.Command {
	cmd := &ServeCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a single filterable web page",
		Long: `Loads the catalog once and serves it over HTTP.

Each tag on the page is a link toggling it in the selection, which is kept in
the URL (?tag=react&tag=redux). The server stores nothing. If the catalog cannot
be loaded the failure is logged and an empty page is served.

Routes:
  /               the page
  /projects.json  the loaded catalog
  /api/projects   visible projects as JSON, filtered by ?tag=
  /healthz        health check`,
		Example: `  depfilter serve
  depfilter serve --http-addr :8080 --source https://example.com/projects.json`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("http-addr", "", "Listen address (default localhost:8080)")
	cobraCmd.Flags().String("title", "Projects", "Page title")

	return cobraCmd
}

// Run executes the serve command
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")

	catalog, err := c.env.LoadCatalog(cmd.Context(), false)
	if err != nil {
		return err
	}
	c.env.Logger().Info("catalog loaded",
		"source", catalog.Source,
		"projects", len(catalog.Projects),
		"tags", len(catalog.Tags),
	)

	cfg := c.env.Config()
	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Prefix:   cfg.Style.Prefix,
		Title:    title,
	}, catalog, c.env.Logger())
	if err != nil {
		return err
	}

	return server.ListenAndServe(cmd.Context())
}
