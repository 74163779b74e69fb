// Package colour parses colour strings and implements the WCAG luminance,
// contrast and rating maths used across the token pipeline.
package colour

import (
	"fmt"
	"image/color"
)

// RGB is an opaque sRGB colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String formats the colour as an rgb() function.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats the colour as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color adapts the colour for image drawing.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// HSL converts to hue in degrees and saturation/lightness fractions.
// Greys have hue and saturation 0.
func (c RGB) HSL() HSL {
	h, s, l := toColorful(c).Hsl()
	return HSL{H: normaliseHue(h), S: s, L: l}
}
