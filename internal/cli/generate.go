package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/build"
	"github.com/jmylchreest/wex/internal/config"
)

// buildFlagKeys maps the flags shared by generate and watch to their
// configuration keys.
var buildFlagKeys = map[string]string{
	"source":    config.KeyTokensSource,
	"out-dir":   config.KeyOutputDir,
	"plugins":   config.KeyOutputPlugins,
	"templates": config.KeyOutputTemplates,
}

// addBuildFlags adds the flags shared by generate and watch.
func (a *app) addBuildFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("source", "s", "", "token source document or http(s) URL (default from "+config.KeyTokensSource+")")
	flags.StringP("out-dir", "o", "", "directory for generated files (default from "+config.KeyOutputDir+")")
	flags.StringSliceP("plugins", "p", nil, "output plugins to run: "+strings.Join(a.registry.List(), ", "))
	flags.String("templates", "", "directory of custom plugin templates")

	a.registerPluginFlags(cmd)
}

// bindBuildFlags binds the running command's flags to viper. Binding happens
// at run time because generate and watch share keys.
func (a *app) bindBuildFlags(cmd *cobra.Command) error {
	for flag, key := range buildFlagKeys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// newGenerator resolves the selected plugins and build options.
func (a *app) newGenerator(cmd *cobra.Command, fs afero.Fs) (*build.Generator, build.Options, error) {
	if err := a.bindBuildFlags(cmd); err != nil {
		return nil, build.Options{}, err
	}
	a.registry.Configure(a.logger, a.fs, a.v.GetString(config.KeyOutputTemplates))

	plugins, err := a.registry.Select(config.Plugins(a.v))
	if err != nil {
		return nil, build.Options{}, err
	}

	opts := build.Options{
		Source:    a.v.GetString(config.KeyTokensSource),
		OutputDir: a.v.GetString(config.KeyOutputDir),
	}
	return build.NewGenerator(fs, plugins, a.logger), opts, nil
}

func (a *app) newGenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate CSS and other outputs from a token document",
		Long: `Generate reads a light/dark token document and writes one file per
selected output plugin. The source may be a local JSON or YAML file or an
http(s) URL.

Output Plugins:
  css       - CSS custom properties (:root for light, .dark for dark)
  json      - the theme as indented JSON with sorted keys
  tailwind  - Tailwind preset mapping tokens to hsl(var(--token))
  swatch    - PNG swatch sheet of every token

A missing token source is an error.`,
		Example: `  # Generate tokens.css from tokens.json
  wex generate

  # Several outputs into a build directory
  wex generate -s design/tokens.yaml -o src/styles -p css,tailwind

  # Attribute based dark mode
  wex generate --css.dark-selector '[data-theme="dark"]'

  # Shared tokens from a design system server
  wex generate -s https://design.example.com/tokens.json

  # Show what would change without writing
  wex generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := a.fs
			if dryRun {
				// Writes land in memory; reads fall through to disk.
				fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(a.fs), afero.NewMemMapFs())
			}

			g, opts, err := a.newGenerator(cmd, fs)
			if err != nil {
				return err
			}

			result, err := g.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), result, dryRun)
			return nil
		},
	}

	a.addBuildFlags(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")

	return cmd
}

func printResult(w io.Writer, result *build.Result, dryRun bool) {
	verb := "wrote"
	if dryRun {
		verb = "would write"
	}
	for _, path := range result.Written {
		fmt.Fprintf(w, "%s %s\n", verb, path)
	}
	for _, path := range result.Unchanged {
		fmt.Fprintf(w, "unchanged %s\n", path)
	}
}
