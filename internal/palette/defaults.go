package palette

import (
	"sort"

	"github.com/jmylchreest/wex/internal/colour"
)

// Default is the built-in base colour of one ramp.
type Default struct {
	Name       string
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Base returns the default base colour as HSL.
func (d Default) Base() colour.HSL {
	return colour.HSL{H: d.Hue, S: d.Saturation, L: d.Lightness}
}

// defaults is the fixed hue/saturation table used when no base is supplied.
var defaults = []Default{
	{Name: "blue", Hue: 208, Saturation: 1.00, Lightness: 0.45},
	{Name: "teal", Hue: 174, Saturation: 0.72, Lightness: 0.40},
	{Name: "green", Hue: 142, Saturation: 0.64, Lightness: 0.42},
	{Name: "yellow", Hue: 43, Saturation: 0.96, Lightness: 0.48},
	{Name: "orange", Hue: 24, Saturation: 0.94, Lightness: 0.50},
	{Name: "red", Hue: 0, Saturation: 0.74, Lightness: 0.50},
	{Name: "purple", Hue: 262, Saturation: 0.60, Lightness: 0.52},
	{Name: "pink", Hue: 330, Saturation: 0.70, Lightness: 0.50},
}

// Defaults returns a copy of the default ramp table in display order.
func Defaults() []Default {
	out := make([]Default, len(defaults))
	copy(out, defaults)
	return out
}

// LookupDefault finds the default entry for a ramp name.
func LookupDefault(name string) (Default, bool) {
	for _, d := range defaults {
		if d.Name == name {
			return d, true
		}
	}
	return Default{}, false
}

// Names returns the default ramp names sorted alphabetically.
func Names() []string {
	names := make([]string, len(defaults))
	for i, d := range defaults {
		names[i] = d.Name
	}
	sort.Strings(names)
	return names
}
