package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/palette"
)

func (a *app) newRampCmd() *cobra.Command {
	var (
		stops  map[string]string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ramp [name] [base-colour]",
		Short: "Generate a ten-stop colour ramp from a base colour",
		Long: `Ramp derives shades 50 to 900 from a base colour bound to shade 500. Hue
and saturation are kept; every other shade gets a fixed lightness.

Without arguments the built-in ramps are listed. With only a name the
built-in ramp of that name is shown. Individual shades can be replaced
with --stop; replaced shades are marked with *.`,
		Example: `  wex ramp
  wex ramp blue
  wex ramp brand "hsl(208, 100%, 32%)"
  wex ramp brand '#0057a3' --stop 900=#001a33`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseStops(stops)
			if err != nil {
				return err
			}

			var ramps []palette.Ramp
			switch len(args) {
			case 0:
				for _, d := range palette.Defaults() {
					ramps = append(ramps, palette.FromHSL(d.Name, d.Base(), overrides))
				}
			case 1:
				d, ok := palette.LookupDefault(args[0])
				if !ok {
					return fmt.Errorf("unknown ramp %q (built-in ramps: %s); pass a base colour to create one",
						args[0], strings.Join(palette.Names(), ", "))
				}
				ramps = append(ramps, palette.FromHSL(d.Name, d.Base(), overrides))
			default:
				ramp, ok := palette.Generate(args[0], args[1], overrides)
				if !ok {
					return fmt.Errorf("invalid base colour %q", args[1])
				}
				ramps = append(ramps, ramp)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ramps)
			}

			if len(args) == 0 {
				printRampSummary(out, ramps)
				return nil
			}
			printRamp(out, ramps[0])
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&stops, "stop", nil, "override a shade, e.g. --stop 700=#1d4ed8")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the ramp as JSON")

	return cmd
}

// parseStops validates --stop keys and values.
func parseStops(stops map[string]string) (map[palette.Shade]string, error) {
	overrides := make(map[palette.Shade]string, len(stops))
	for k, v := range stops {
		shade, err := palette.ParseShade(k)
		if err != nil {
			return nil, err
		}
		if _, ok := colour.Parse(v); !ok {
			return nil, fmt.Errorf("invalid colour %q for shade %d", v, shade)
		}
		overrides[shade] = v
	}
	return overrides, nil
}

func printRamp(w io.Writer, ramp palette.Ramp) {
	fmt.Fprintf(w, "%s  hue %s, saturation %.0f%%\n\n", ramp.Name, formatFloat(ramp.Hue), ramp.Saturation*100)

	table := NewTable("Shade", "Token", "Value", "Hex", "Preview", "Text").SetAlignment(0, AlignRight)
	for _, stop := range ramp.Stops {
		shade := stop.Shade.String()
		if stop.Overridden {
			shade += "*"
		}

		text := colour.BestTextColour(stop.RGB)
		textName := "black"
		if text.R == 255 {
			textName = "white"
		}
		result := colour.Contrast(text, stop.RGB)

		table.AddRow(
			shade,
			ramp.TokenKey(stop.Shade),
			stop.Value,
			stop.RGB.Hex(),
			colour.Preview(stop.RGB, "Aa", 9),
			fmt.Sprintf("%s %.2f %s", textName, result.Ratio, ratingBadge(result.Rating)),
		)
	}
	fmt.Fprint(w, table.Render())
}

func printRampSummary(w io.Writer, ramps []palette.Ramp) {
	headers := []string{"Ramp", "Base"}
	for _, s := range palette.Shades {
		headers = append(headers, s.String())
	}
	table := NewTable(headers...)

	for _, ramp := range ramps {
		base, _ := ramp.Stop(palette.BaseShade)
		row := []string{ramp.Name, base.RGB.Hex()}
		for _, stop := range ramp.Stops {
			row = append(row, colour.Preview(stop.RGB, "", 4))
		}
		table.AddRow(row...)
	}
	fmt.Fprint(w, table.Render())
}

func formatFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}
