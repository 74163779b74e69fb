package colour

import (
	"math"
)

// ContrastResult is the outcome of comparing a foreground and background colour.
type ContrastResult struct {
	Ratio  float64 `json:"ratio"`
	Rating Rating  `json:"rating"`
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.1.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises an sRGB channel in [0, 1].
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.1.
// Returns a value between 1 and 21. The result does not depend on argument order.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func ContrastRatio(fg, bg RGB) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Contrast computes the ratio and rating for a foreground/background pair.
func Contrast(fg, bg RGB) ContrastResult {
	ratio := ContrastRatio(fg, bg)
	return ContrastResult{Ratio: ratio, Rating: Rate(ratio)}
}

// ContrastOf parses both colour strings and computes their contrast.
// It reports false when either string is not a recognised colour.
func ContrastOf(fg, bg string) (ContrastResult, bool) {
	fgRGB, ok := Parse(fg)
	if !ok {
		return ContrastResult{}, false
	}
	bgRGB, ok := Parse(bg)
	if !ok {
		return ContrastResult{}, false
	}
	return Contrast(fgRGB, bgRGB), true
}

// BestTextColour returns black or white, whichever contrasts more with bg.
func BestTextColour(bg RGB) RGB {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(black, bg) >= ContrastRatio(white, bg) {
		return black
	}
	return white
}
