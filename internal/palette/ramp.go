// Package palette derives ten-stop lightness ramps from a single base colour.
package palette

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/wex/internal/colour"
)

// Shade is a conventional ramp step number (50, 100, ... 900).
type Shade int

// BaseShade is the stop bound to the ramp's base colour.
const BaseShade Shade = 500

// Shades lists every stop from lightest to darkest.
var Shades = []Shade{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// shadeLightness is the fixed target lightness per stop. 500 uses the base.
var shadeLightness = map[Shade]float64{
	50:  0.97,
	100: 0.93,
	200: 0.85,
	300: 0.72,
	400: 0.56,
	600: 0.38,
	700: 0.32,
	800: 0.26,
	900: 0.20,
}

// String returns the shade number.
func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

// Valid reports whether s is one of the ten ramp stops.
func (s Shade) Valid() bool {
	if s == BaseShade {
		return true
	}
	_, ok := shadeLightness[s]
	return ok
}

// ParseShade converts "700" into Shade(700).
func ParseShade(s string) (Shade, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid shade %q: %w", s, err)
	}
	shade := Shade(n)
	if !shade.Valid() {
		return 0, fmt.Errorf("invalid shade %d (must be one of %v)", n, Shades)
	}
	return shade, nil
}

// Lightness returns the target lightness for a stop given the base lightness.
func Lightness(shade Shade, base float64) float64 {
	if shade == BaseShade {
		return base
	}
	return shadeLightness[shade]
}

// Stop is one generated (or overridden) colour in a ramp.
type Stop struct {
	Shade      Shade      `json:"shade"`
	Colour     colour.HSL `json:"colour"`
	Value      string     `json:"value"`
	Overridden bool       `json:"overridden,omitempty"`
	RGB        colour.RGB `json:"rgb"`
}

// Ramp is a named family of same-hue stops.
type Ramp struct {
	Name       string  `json:"name"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Stops      []Stop  `json:"stops"`
}

// Generate builds the ten stops of a ramp from base, which is bound to shade 500.
// Hue and saturation are taken from base and held fixed; each stop gets the
// lightness from the shade table. Overrides replace individual stops and are
// flagged; they never influence sibling stops. Unparseable overrides are
// ignored. Generate reports false when base itself is not a colour.
func Generate(name, base string, overrides map[Shade]string) (Ramp, bool) {
	hsl, ok := colour.ParseHSL(base)
	if !ok {
		return Ramp{}, false
	}
	return FromHSL(name, hsl, overrides), true
}

// FromHSL is Generate for an already parsed base colour.
func FromHSL(name string, base colour.HSL, overrides map[Shade]string) Ramp {
	ramp := Ramp{
		Name:       name,
		Hue:        base.H,
		Saturation: base.S,
		Stops:      make([]Stop, 0, len(Shades)),
	}

	for _, shade := range Shades {
		stop := newStop(shade, base.WithLightness(Lightness(shade, base.L)))

		if raw, ok := overrides[shade]; ok {
			if hsl, ok := colour.ParseHSL(raw); ok {
				stop = newStop(shade, hsl)
				stop.Overridden = true
			}
		}

		ramp.Stops = append(ramp.Stops, stop)
	}

	return ramp
}

func newStop(shade Shade, hsl colour.HSL) Stop {
	return Stop{
		Shade:  shade,
		Colour: hsl,
		Value:  hsl.String(),
		RGB:    hsl.RGB(),
	}
}

// Stop returns the stop for shade.
func (r Ramp) Stop(shade Shade) (Stop, bool) {
	for _, s := range r.Stops {
		if s.Shade == shade {
			return s, true
		}
	}
	return Stop{}, false
}

// TokenKey names the CSS custom property for a stop, e.g. "--color-blue-500".
func (r Ramp) TokenKey(shade Shade) string {
	return TokenKey(r.Name, shade)
}

// Tokens returns the ramp as token key -> bare HSL triple.
func (r Ramp) Tokens() map[string]string {
	tokens := make(map[string]string, len(r.Stops))
	for _, s := range r.Stops {
		tokens[r.TokenKey(s.Shade)] = s.Value
	}
	return tokens
}

// TokenKey names the CSS custom property for a ramp stop.
func TokenKey(ramp string, shade Shade) string {
	return fmt.Sprintf("--color-%s-%d", ramp, shade)
}
