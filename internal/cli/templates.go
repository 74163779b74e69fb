package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/config"
	"github.com/jmylchreest/wex/internal/output"
)

func (a *app) newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `Templates lists and extracts the embedded templates used by output plugins.

Extracted templates live in <dir>/<plugin>/ where <dir> is the
output.templates setting. When set, generate and watch use a custom
template in place of the embedded one.`,
	}

	cmd.AddCommand(a.newTemplatesListCmd(), a.newTemplatesDumpCmd())
	return cmd
}

// templatePlugins returns the named plugins that render templates, or all of them.
func (a *app) templatePlugins(names []string) ([]output.Plugin, error) {
	if len(names) == 0 {
		names = a.registry.List()
	}
	plugins, err := a.registry.Select(names)
	if err != nil {
		return nil, err
	}

	var templated []output.Plugin
	for _, p := range plugins {
		if _, ok := p.(output.TemplateProvider); ok {
			templated = append(templated, p)
		}
	}
	return templated, nil
}

func (a *app) newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plugin templates and whether a custom copy is in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plugins, err := a.templatePlugins(nil)
			if err != nil {
				return err
			}

			table := NewTable("Plugin", "Template", "Source")
			for _, p := range plugins {
				loader := p.(output.TemplateProvider).Loader()
				names, err := loader.ListEmbeddedTemplates()
				if err != nil {
					return err
				}
				for _, name := range names {
					source := "embedded"
					if loader.HasCustomTemplate(name) {
						source = loader.CustomPath(name)
					}
					table.AddRow(p.Name(), name, source)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func (a *app) newTemplatesDumpCmd() *cobra.Command {
	var (
		names    []string
		force    bool
		location string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Extract embedded templates for editing",
		Example: `  wex templates dump -l ./templates
  wex templates dump -l ./templates -p css --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if location == "" {
				location = a.v.GetString(config.KeyOutputTemplates)
			}
			if location == "" {
				return fmt.Errorf("no template directory: pass --location or set %s", config.KeyOutputTemplates)
			}

			plugins, err := a.templatePlugins(names)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range plugins {
				loader := p.(output.TemplateProvider).Loader().WithCustomBase(a.fs, location)
				dumped, err := loader.DumpTemplates(force)
				if err != nil {
					return fmt.Errorf("plugin %s: %w", p.Name(), err)
				}
				for _, path := range dumped {
					fmt.Fprintf(out, "wrote %s\n", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&names, "plugins", "p", nil, "plugins to dump (default: all)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing custom templates")
	cmd.Flags().StringVarP(&location, "location", "l", "", "template directory (default from "+config.KeyOutputTemplates+")")

	return cmd
}
