package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/colour"
)

func (a *app) newInspectCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "inspect <colour> [background]",
		Short: "Show a colour in every format, and its contrast against a background",
		Long: `Inspect parses a colour (#rgb, #rrggbb, rgb(r, g, b), hsl(h, s%, l%) or a bare
"h s% l%" triple) and prints its RGB, hex and HSL forms and its WCAG relative
luminance. Given a background it also prints the contrast ratio and rating,
and a foreground adjusted to reach --target when the pair falls short.`,
		Example: `  wex inspect '#0057a3'
  wex inspect "208 100% 32%" white
  wex inspect '#777' '#fff' --target AAA`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, ok := colour.Parse(args[0])
			if !ok {
				return fmt.Errorf("invalid colour %q", args[0])
			}

			out := cmd.OutOrStdout()
			printColour(out, args[0], fg)

			if len(args) == 1 {
				return nil
			}

			bg, ok := parseNamedColour(args[1])
			if !ok {
				return fmt.Errorf("invalid background colour %q", args[1])
			}

			want, err := parseRating(target)
			if err != nil {
				return err
			}

			result := colour.Contrast(fg, bg)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Background  %s %s\n", colour.Preview(bg, "", 4), bg.Hex())
			fmt.Fprintf(out, "Contrast    %.2f:1 %s\n", result.Ratio, ratingBadge(result.Rating))
			fmt.Fprintf(out, "Sample      %s\n", sampleText(fg, bg))

			if result.Rating.Meets(want) {
				return nil
			}
			if s, ok := colour.SuggestForeground(fg, bg, want.MinRatio()); ok {
				fmt.Fprintf(out, "Suggestion  %s %s (%.2f:1 for %s)\n",
					colour.Preview(s, "", 4), s.Hex(), colour.ContrastRatio(s, bg), want)
			} else {
				fmt.Fprintf(out, "Suggestion  none reaches %s on this background\n", want)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", string(colour.RatingAA), "rating to reach when suggesting (AAA, AA or AA-large)")

	return cmd
}

func printColour(w io.Writer, input string, rgb colour.RGB) {
	hsl := rgb.HSL()
	if exact, ok := colour.ParseHSL(input); ok {
		hsl = exact
	}

	table := NewTable("Format", "Value")
	table.AddRow("Input", colour.ColourString(rgb, input))
	table.AddRow("Hex", rgb.Hex())
	table.AddRow("RGB", rgb.String())
	table.AddRow("HSL", hsl.CSS())
	table.AddRow("Token", hsl.String())
	table.AddRow("Luminance", fmt.Sprintf("%.4f", colour.Luminance(rgb)))
	table.AddRow("Preview", colour.Preview(rgb, rgb.Hex(), 11))
	fmt.Fprint(w, table.Render())
}

// parseNamedColour accepts "white" and "black" besides the usual formats.
func parseNamedColour(s string) (colour.RGB, bool) {
	switch s {
	case "white":
		return colour.RGB{R: 255, G: 255, B: 255}, true
	case "black":
		return colour.RGB{}, true
	}
	return colour.Parse(s)
}

func parseRating(s string) (colour.Rating, error) {
	for _, r := range []colour.Rating{colour.RatingAAA, colour.RatingAA, colour.RatingAALarge} {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid rating %q (must be AAA, AA or AA-large)", s)
}

// sampleText renders fg on bg when styling is available.
func sampleText(fg, bg colour.RGB) string {
	const sample = " The quick brown fox "
	if !colour.SupportsANSIColours() {
		return sample
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(sample)
}
