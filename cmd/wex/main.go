// Command wex generates CSS custom properties and companion outputs from a
// light/dark design token document, and audits colour contrast.
package main

import (
	"os"

	"github.com/jmylchreest/wex/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
