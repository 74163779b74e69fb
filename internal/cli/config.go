package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration keys, their environment variables and current values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			file := a.v.ConfigFileUsed()
			if file == "" {
				file = "none"
			}
			fmt.Fprintf(out, "Config file: %s\n\n", file)

			table := NewTable("Key", "Env", "Value", "Default", "Description")
			for _, f := range config.Defaults {
				table.AddRow(f.Key, f.Env(), fmt.Sprint(a.v.Get(f.Key)), fmt.Sprint(f.Value), f.Description)
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
}
