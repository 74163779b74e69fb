package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/tokens"
)

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [tokens|overrides]",
		Short:     "Print the JSON Schema of the token document or the overrides file",
		Example:   "  wex schema > tokens.schema.json\n  wex schema overrides",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{tokens.SchemaDocument, tokens.SchemaOverrides},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := tokens.SchemaDocument
			if len(args) == 1 {
				kind = args[0]
			}

			data, err := tokens.SchemaFor(kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
