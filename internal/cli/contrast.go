package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/contrast"
	"github.com/jmylchreest/wex/internal/tokens"
)

// Badge colours per rating.
var ratingColours = map[colour.Rating]string{
	colour.RatingAAA:     "#1a7f37",
	colour.RatingAA:      "#2da44e",
	colour.RatingAALarge: "#bf8700",
	colour.RatingFail:    "#cf222e",
}

// ratingBadge renders a rating, styled when the terminal supports it.
func ratingBadge(r colour.Rating) string {
	if !colour.SupportsANSIColours() {
		return r.String()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(ratingColours[r])).
		Padding(0, 1).
		Render(r.String())
}

func (a *app) newContrastCmd() *cobra.Command {
	var (
		sourcePath    string
		overridesPath string
		suggest       bool
		strict        bool
		asJSON        bool
	)
	modes := tokens.NewModeFlag()

	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Check component colour pairs against WCAG contrast requirements",
		Long: `Contrast resolves every component foreground/background pair and rates its
WCAG 2.1 contrast ratio: AAA (7:1), AA (4.5:1), AA-large (3:1) or Fail.
Body text needs AA; pairs marked large text need AA-large. Pairs whose
tokens are missing or unparseable are reported as skipped.

By default the built-in theme is checked; use --source for a token document
or --overrides to check a customised theme.`,
		Example: `  wex contrast
  wex contrast -s tokens.json --mode dark --suggest
  wex contrast -f brand.yaml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := a.contrastValues(cmd.Context(), sourcePath, overridesPath)
			if err != nil {
				return err
			}

			pairs := tokens.ContrastPairs()
			reports := make([]contrast.Report, 0, len(modes.Modes()))
			for _, mode := range modes.Modes() {
				reports = append(reports, contrast.Audit(values(mode), mode, pairs, contrast.Options{Suggest: suggest}))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				printContrastReports(out, reports, suggest)
			}

			if strict {
				failed := 0
				for _, r := range reports {
					failed += r.Summary().Failed
				}
				if failed > 0 {
					return fmt.Errorf("%d contrast pair(s) below their required rating", failed)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourcePath, "source", "s", "", "token document or URL to check instead of the built-in theme")
	cmd.Flags().StringVarP(&overridesPath, "overrides", "f", "", "overrides file applied to the built-in theme")
	cmd.Flags().Var(modes, "mode", "mode to check (light, dark or all)")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "suggest a passing foreground for failing pairs")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any pair fails")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the reports as JSON")
	cmd.MarkFlagsMutuallyExclusive("source", "overrides")

	return cmd
}

// contrastValues returns a per-mode value lookup for the chosen input.
func (a *app) contrastValues(ctx context.Context, sourcePath, overridesPath string) (func(tokens.Mode) map[string]string, error) {
	if sourcePath != "" {
		doc, err := tokens.LoadSource(ctx, a.fs, sourcePath)
		if err != nil {
			return nil, err
		}
		return doc.Values, nil
	}

	th, err := a.loadTheme(overridesPath)
	if err != nil {
		return nil, err
	}
	return th.Values, nil
}

func printContrastReports(w io.Writer, reports []contrast.Report, suggest bool) {
	headers := []string{"Mode", "Component", "Pair", "Foreground", "Background", "Ratio", "Rating", "Needs", "Result"}
	if suggest {
		headers = append(headers, "Suggestion")
	}
	table := NewTable(headers...).SetAlignment(5, AlignRight)

	var total contrast.Summary
	for _, report := range reports {
		for _, res := range report.Results {
			table.AddRow(contrastRow(res, suggest)...)
		}
		s := report.Summary()
		total.Passed += s.Passed
		total.Failed += s.Failed
		total.Skipped += s.Skipped
	}

	fmt.Fprint(w, table.Render())
	fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped\n", total.Passed, total.Failed, total.Skipped)
}

func contrastRow(res contrast.Result, suggest bool) []string {
	row := []string{
		res.Mode.String(),
		res.Pair.Component,
		res.Pair.Name,
		swatchCell(res.Pair.Foreground, res.Foreground),
		swatchCell(res.Pair.Background, res.Background),
	}

	if res.Skipped() {
		row = append(row, "-", "-", res.Pair.Required().String(), "skipped: "+res.Reason)
	} else {
		row = append(row,
			fmt.Sprintf("%.2f", res.Contrast.Ratio),
			ratingBadge(res.Contrast.Rating),
			res.Pair.Required().String(),
			string(res.Status),
		)
	}

	if suggest {
		cell := ""
		if res.Suggestion != nil {
			cell = colour.Preview(*res.Suggestion, res.Suggestion.Hex(), 9)
		}
		row = append(row, cell)
	}
	return row
}

// swatchCell shows a token name with a preview of its value.
func swatchCell(key, value string) string {
	rgb, ok := colour.Parse(value)
	if !ok {
		return key
	}
	return colour.Preview(rgb, " ", 2) + " " + key
}
