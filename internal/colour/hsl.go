package colour

import (
	"fmt"
	"math"
	"strconv"
)

// HSL represents a colour in HSL space.
// H is hue in degrees [0, 360), S and L are fractions in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGB converts HSL to RGB using the sector based chroma/hue decomposition.
func (c HSL) RGB() RGB {
	h := normaliseHue(c.H)
	s := clampUnit(c.S)
	l := clampUnit(c.L)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// WithLightness returns a copy of c with its lightness replaced.
func (c HSL) WithLightness(l float64) HSL {
	c.L = clampUnit(l)
	return c
}

// String formats the colour as a bare CSS variable triple, e.g. "208 100% 32%".
func (c HSL) String() string {
	return fmt.Sprintf("%s %s%% %s%%",
		formatComponent(c.H), formatComponent(c.S*100), formatComponent(c.L*100))
}

// CSS formats the colour as an hsl() function, e.g. "hsl(208, 100%, 32%)".
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)",
		formatComponent(c.H), formatComponent(c.S*100), formatComponent(c.L*100))
}

// formatComponent rounds to one decimal place and drops a trailing ".0".
func formatComponent(v float64) string {
	v = math.Round(v*10) / 10
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toChannel(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
