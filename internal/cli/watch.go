package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/build"
)

func (a *app) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate outputs whenever the token document changes",
		Long: `Watch generates once, then regenerates every time the token source is
written or replaced. A failing first run exits; later failures are logged
and watching continues. Stop with Ctrl-C.`,
		Example: `  wex watch -s design/tokens.json -o src/styles`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, opts, err := a.newGenerator(cmd, a.fs)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return build.NewWatcher(g, opts, a.logger).
				OnRun(func(result *build.Result, err error) {
					if err == nil {
						printResult(out, result, false)
					}
				}).
				Run(ctx)
		},
	}

	a.addBuildFlags(cmd)

	return cmd
}
