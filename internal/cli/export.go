package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/wex/internal/theme"
	"github.com/jmylchreest/wex/internal/tokens"
)

// loadTheme exports the default theme with the overrides file applied, if any.
func (a *app) loadTheme(overridesPath string) (*theme.Theme, error) {
	opts := theme.Options{}
	if overridesPath != "" {
		o, err := tokens.LoadOverrides(a.fs, overridesPath)
		if err != nil {
			return nil, err
		}
		opts = theme.OptionsFromOverrides(o)
	}
	return theme.NewExporter(a.logger).Export(opts), nil
}

func (a *app) newExportCmd() *cobra.Command {
	var (
		overridesPath string
		outPath       string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the default theme, optionally customised, as a token document",
		Long: `Export builds the complete light/dark theme from the generated colour
ramps and the default token tables, then applies an overrides file.
Overrides always win; overrides for unknown tokens are ignored so both
modes keep the same set of tokens.

The result can be fed straight back into "wex generate".`,
		Example: `  # Default theme to stdout
  wex export

  # Rebrand and write a source document
  wex export -f brand.yaml -o tokens.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th, err := a.loadTheme(overridesPath)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = th.JSON()
			case "yaml":
				data, err = yaml.Marshal(th.Document())
			default:
				return fmt.Errorf("invalid format %q (must be 'json' or 'yaml')", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode theme: %w", err)
			}

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := afero.WriteFile(a.fs, outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			a.logger.Info("exported theme", "path", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&overridesPath, "overrides", "f", "", "overrides file (YAML or JSON)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&format, "format", "json", "output format (json or yaml)")

	return cmd
}
