package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jakoblorz/go-depfilter/internal/filesystem"
	"github.com/jakoblorz/go-depfilter/internal/github"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, ghClient github.GitHubClient) *cobra.Command {
	env := NewEnv(fs, ghClient)
	return newRootCommand(env)
}

func newRootCommand(env *Env) *cobra.Command {
	list := &ListCommand{env: env}

	rootCmd := &cobra.Command{
		Use:   "depfilter",
		Short: "Filter a project catalog by its dependencies",
		Long: `A CLI tool for browsing a catalog of projects by the dependencies they use.

The catalog is a projects.json (or YAML) document listing projects and their
dependencies. Every dependency name is a tag; selecting tags narrows the list
to the projects that use all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.Setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `depfilter list` when no subcommand is provided.
			return list.Run(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(configFlag, "", "Config file (default .depfilter.yaml if present)")
	flags.String("source", "", "Catalog: file path, http(s) URL or github:owner/repo/path[@ref] (default projects.json)")
	flags.Duration("fetch-timeout", 0, "Timeout for loading the catalog (0 = none)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (default info)")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.String("style-prefix", "", "Class prefix for tags in HTML output (default btn)")

	addListFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(NewListCommand(env))
	rootCmd.AddCommand(NewTagsCommand(env))
	rootCmd.AddCommand(NewBrowseCommand(env))
	rootCmd.AddCommand(NewPickCommand(env))
	rootCmd.AddCommand(NewServeCommand(env))
	rootCmd.AddCommand(NewRenderCommand(env))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	var ghClient github.GitHubClient
	if client, err := github.NewClientFromEnv(); err == nil {
		ghClient = client
	} else {
		ghClient = github.NewClientWithoutAuth()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := NewEnv(fs, ghClient)
	rootCmd := newRootCommand(env)

	err := rootCmd.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if closeErr := env.Close(shutdownCtx); closeErr != nil {
		env.Logger().Warn("failed to flush traces", "error", closeErr)
	}

	if err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
