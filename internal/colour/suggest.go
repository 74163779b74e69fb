package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// lStep is the CIE L* increment (on go-colorful's 0-1 scale) per attempt.
const lStep = 0.005

// SuggestForeground nudges fg's CIE L* until it reaches target contrast with bg.
// The Lab a*/b* components are kept so the hue survives. The search first moves
// away from the background and then the other way; pure black or white is the
// last resort. Returns false when even those miss the target.
func SuggestForeground(fg, bg RGB, target float64) (RGB, bool) {
	if ContrastRatio(fg, bg) >= target {
		return fg, true
	}

	l, a, b := toColorful(fg).Lab()

	dir := 1.0
	if Luminance(fg) < Luminance(bg) {
		dir = -1.0
	}

	for _, d := range []float64{dir, -dir} {
		for i := 1; ; i++ {
			candL := l + d*lStep*float64(i)
			if candL < 0 || candL > 1 {
				break
			}
			cand := fromColorful(colorful.Lab(candL, a, b).Clamped())
			if ContrastRatio(cand, bg) >= target {
				return cand, true
			}
		}
	}

	best := BestTextColour(bg)
	if ContrastRatio(best, bg) >= target {
		return best, true
	}
	return RGB{}, false
}

func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}
