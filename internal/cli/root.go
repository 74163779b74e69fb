// Package cli provides the command-line interface for wex.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/config"
	"github.com/jmylchreest/wex/internal/logging"
	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/output/css"
	"github.com/jmylchreest/wex/internal/output/jsontheme"
	"github.com/jmylchreest/wex/internal/output/swatch"
	"github.com/jmylchreest/wex/internal/output/tailwind"
	"github.com/jmylchreest/wex/internal/version"
)

// app is the state shared by every command of one invocation.
type app struct {
	fs       afero.Fs
	v        *viper.Viper
	logger   hclog.Logger
	registry *output.Registry

	configFile string
	verbose    bool
	quiet      bool
	noColour   bool
	logJSON    bool
}

// NewRootCmd builds the wex command tree on the operating system filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{
		fs:       fs,
		v:        viper.New(),
		logger:   hclog.NewNullLogger(),
		registry: newRegistry(),
	}

	rootCmd := &cobra.Command{
		Use:   "wex",
		Short: "Design token colour toolkit",
		Long: `wex turns a light/dark design token document into CSS custom properties
and companion outputs, derives ten-stop colour ramps from a base colour and
checks component colour pairs against WCAG 2.1 contrast requirements.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default: ./wex.yaml or $XDG_CONFIG_HOME/wex/wex.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&a.noColour, "no-color", false, "disable coloured previews")
	rootCmd.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		a.newGenerateCmd(),
		a.newWatchCmd(),
		a.newExportCmd(),
		a.newContrastCmd(),
		a.newRampCmd(),
		a.newInspectCmd(),
		a.newSchemaCmd(),
		a.newTemplatesCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// newRegistry registers every built-in output plugin.
func newRegistry() *output.Registry {
	r := output.NewRegistry()
	r.Register(css.New())
	r.Register(jsontheme.New())
	r.Register(tailwind.New())
	r.Register(swatch.New())
	return r
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Setup(a.v, a.fs, a.configFile); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:   a.v.GetString(config.KeyLogLevel),
		Verbose: a.verbose,
		Quiet:   a.quiet,
		Output:  cmd.ErrOrStderr(),
		JSON:    a.logJSON,
	})
	if err != nil {
		return err
	}
	a.logger = logger

	if a.noColour {
		colour.DisableColourOutput = true
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded config", "path", used)
	}

	if err := config.ApplyFlags(a.v, cmd.Flags()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.registry.Configure(a.logger, a.fs, a.v.GetString(config.KeyOutputTemplates))
	return nil
}

// registerPluginFlags registers plugin-specific flags with cmd.
func (a *app) registerPluginFlags(cmd *cobra.Command) {
	for _, name := range a.registry.List() {
		p, _ := a.registry.Get(name)
		p.RegisterFlags(cmd)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
