package tokens

import (
	"slices"

	"github.com/jmylchreest/wex/internal/colour"
)

// ContrastPair is a foreground/background token combination used by a
// component, which must meet a minimum contrast rating.
type ContrastPair struct {
	Name       string `json:"name"`
	Component  string `json:"component"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	// LargeText pairs only need AA-large.
	LargeText bool `json:"largeText,omitempty"`
}

// Required returns the minimum rating the pair must reach.
func (p ContrastPair) Required() colour.Rating {
	if p.LargeText {
		return colour.RatingAALarge
	}
	return colour.RatingAA
}

var contrastPairs = []ContrastPair{
	{Name: "Body text", Component: "Typography", Foreground: "--text-default", Background: "--surface-default"},
	{Name: "Muted text", Component: "Typography", Foreground: "--text-muted", Background: "--surface-default"},
	{Name: "Subtle text", Component: "Typography", Foreground: "--text-subtle", Background: "--surface-sunken"},
	{Name: "Link", Component: "Typography", Foreground: "--text-link", Background: "--surface-default"},
	{Name: "Inverse text", Component: "Typography", Foreground: "--text-inverse", Background: "--surface-inverse"},
	{Name: "Error text", Component: "Typography", Foreground: "--text-danger", Background: "--surface-default"},
	{Name: "Primary button", Component: "Button", Foreground: "--button-primary-fg", Background: "--button-primary-bg"},
	{Name: "Secondary button", Component: "Button", Foreground: "--button-secondary-fg", Background: "--button-secondary-bg"},
	{Name: "Danger button", Component: "Button", Foreground: "--button-danger-fg", Background: "--button-danger-bg"},
	{Name: "Dialog body", Component: "Dialog", Foreground: "--dialog-fg", Background: "--dialog-bg"},
	{Name: "Input text", Component: "Input", Foreground: "--input-fg", Background: "--input-bg"},
	{Name: "Input placeholder", Component: "Input", Foreground: "--input-placeholder", Background: "--input-bg", LargeText: true},
	{Name: "Toast", Component: "Toast", Foreground: "--toast-fg", Background: "--toast-bg"},
	{Name: "Selected day", Component: "Calendar", Foreground: "--calendar-day-selected-fg", Background: "--calendar-day-selected-bg"},
	{Name: "Today marker", Component: "Calendar", Foreground: "--calendar-day-today-fg", Background: "--surface-raised", LargeText: true},
	{Name: "Badge", Component: "Badge", Foreground: "--badge-fg", Background: "--badge-bg"},
	{Name: "Tooltip", Component: "Tooltip", Foreground: "--tooltip-fg", Background: "--tooltip-bg"},
}

// ContrastPairs returns the fixed catalogue of component contrast pairs.
func ContrastPairs() []ContrastPair {
	return slices.Clone(contrastPairs)
}
