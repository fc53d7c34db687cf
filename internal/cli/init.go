package cli

import (
	"fmt"

	"github.com/sagesearch/copy-assets/internal/app"
	"github.com/sagesearch/copy-assets/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
// opts is shared with the root command so persistent flags apply.
func newInitCommand(opts *app.Options, workDir string) *cobra.Command {
	var manifestFile string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in mapping to editable files",
		Long: `Write the built-in mapping to a manifest file and create copy-assets.toml
pointing at it. Later runs then read the mapping from the manifest.

The manifest format follows its extension: .toml, .yaml or .yml.
Both files are written to the project root.

Error conditions:
- copy-assets.toml already exists: use --force to overwrite
- Manifest file already exists: use --force to overwrite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.WorkDir = workDir
			opts.Stderr = cmd.ErrOrStderr()

			c, err := newContainerFunc(*opts)
			if err != nil {
				return err
			}

			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				ProjectRoot:  c.Config.ProjectRoot,
				ManifestFile: manifestFile,
				Force:        force,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Created manifest: %s\n", out.ManifestPath)
			_, _ = fmt.Fprintf(w, "Created config:   %s\n", out.ConfigPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestFile, "manifest-file", usecase.DefaultManifestFile, "Manifest file to create, relative to the project root")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}
