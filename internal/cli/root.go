// Package cli provides the command-line interface for copy-assets.
package cli

import (
	"github.com/sagesearch/copy-assets/internal/app"
	"github.com/sagesearch/copy-assets/internal/usecase"
	"github.com/spf13/cobra"
)

// newContainerFunc builds the container from flags, allowing it to be replaced in tests.
var newContainerFunc = app.New

// NewRootCommand creates the root command for copy-assets.
// workDir is the directory the process was started from.
func NewRootCommand(workDir, version string) *cobra.Command {
	var opts app.Options
	var noColor bool

	root := &cobra.Command{
		Use:   "copy-assets",
		Short: "Copy attachment images into assets/images",
		Long: `copy-assets copies the settings profile images from .prompt_attachments/
into assets/images/, renaming each file according to a fixed mapping.

The destination directory is created if needed. A missing source is
reported and skipped; the run continues with the remaining files and
ends with a summary of every expected destination.

Paths are resolved against the project root: the enclosing git worktree,
or the current directory outside a repository. Settings may be placed in
copy-assets.toml at the project root.

Run "copy-assets init" to write the built-in mapping to an editable
manifest.

Error conditions:
- Destination directory cannot be created: exits with status 1`,
		Args:    cobra.NoArgs,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.WorkDir = workDir
			opts.Stderr = cmd.ErrOrStderr()

			c, err := newContainerFunc(opts)
			if err != nil {
				return err
			}
			return runCopy(cmd, c, !noColor)
		},
	}

	root.PersistentFlags().StringVar(&opts.Root, "root", "", "Project root to resolve relative paths against (default: git worktree root or current directory)")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error (default from config, else info)")
	root.Flags().StringVar(&opts.ManifestPath, "manifest", "", "Load the mapping from a TOML or YAML manifest instead of the built-in one")
	root.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would be copied without writing to disk")
	root.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newInitCommand(&opts, workDir))

	return root
}

// runCopy executes the copy with the container's manifest and prints progress
// to the command's stdout.
func runCopy(cmd *cobra.Command, c *app.Container, color bool) error {
	m, err := c.LoadManifest()
	if err != nil {
		return err
	}

	reporter := newConsoleReporter(cmd.OutOrStdout(), color && c.Config.Color, c.Config.DryRun)
	_, err = c.CopyAssetsUseCase(reporter).Execute(cmd.Context(), usecase.CopyAssetsInput{
		Manifest: m,
	})
	return err
}
