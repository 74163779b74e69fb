package colour

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern       = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern       = regexp.MustCompile(`(?i)^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslTriplePattern = regexp.MustCompile(`^(-?\d*\.?\d+)\s+(\d*\.?\d+)%\s+(\d*\.?\d+)%$`)
	hslFuncPattern   = regexp.MustCompile(`(?i)^hsl\(\s*(-?\d*\.?\d+)(?:deg)?\s*,?\s*(\d*\.?\d+)%\s*,?\s*(\d*\.?\d+)%\s*\)$`)
)

// Parse converts a colour string into RGB.
// Supported formats, tried in order: #RGB / #RRGGBB (hash optional),
// rgb(r, g, b), a bare "h s% l%" triple and hsl(h, s%, l%).
// Anything else, including out of range channels, reports false.
func Parse(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, false
	}

	if rgb, ok := parseHex(s); ok {
		return rgb, true
	}
	if rgb, ok := parseRGBFunc(s); ok {
		return rgb, true
	}
	if hsl, ok := parseHSLMatch(hslTriplePattern, s); ok {
		return hsl.RGB(), true
	}
	if hsl, ok := parseHSLMatch(hslFuncPattern, s); ok {
		return hsl.RGB(), true
	}

	return RGB{}, false
}

// ParseHSL converts a colour string into HSL.
// HSL encoded input keeps its exact components; hex and rgb() input is
// converted through RGB.
func ParseHSL(s string) (HSL, bool) {
	s = strings.TrimSpace(s)

	if hsl, ok := parseHSLMatch(hslTriplePattern, s); ok {
		return hsl, true
	}
	if hsl, ok := parseHSLMatch(hslFuncPattern, s); ok {
		return hsl, true
	}

	rgb, ok := Parse(s)
	if !ok {
		return HSL{}, false
	}
	return rgb.HSL(), true
}

// IsHSLTriple reports whether s is a bare "h s% l%" triple, the form that
// has to be wrapped in hsl() before use as a colour.
func IsHSLTriple(s string) bool {
	_, ok := parseHSLMatch(hslTriplePattern, strings.TrimSpace(s))
	return ok
}

// MustParse is like Parse but panics on invalid input.
// Intended for static tables and tests.
func MustParse(s string) RGB {
	rgb, ok := Parse(s)
	if !ok {
		panic("colour: invalid colour " + strconv.Quote(s))
	}
	return rgb
}

// parseHex parses #RGB or #RRGGBB, with or without the hash.
func parseHex(s string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	hex := m[1]
	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

func parseRGBFunc(s string) (RGB, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > 255 {
			return RGB{}, false
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

func parseHSLMatch(pattern *regexp.Regexp, s string) (HSL, bool) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, false
	}

	h, okH := parseNumber(m[1])
	sat, okS := parseNumber(m[2])
	l, okL := parseNumber(m[3])
	if !okH || !okS || !okL {
		return HSL{}, false
	}
	if sat > 100 || l > 100 {
		return HSL{}, false
	}

	return HSL{H: normaliseHue(h), S: sat / 100, L: l / 100}, true
}

// parseNumber treats NaN and overflow as unparseable.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
