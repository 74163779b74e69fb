// Package theme exports the two-mode design token theme.
package theme

import (
	"encoding/json"
	"slices"

	"github.com/samber/lo"

	"github.com/jmylchreest/wex/internal/tokens"
)

// Theme maps token names to colour values for light and dark mode.
type Theme struct {
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

// New returns an empty theme.
func New() *Theme {
	return &Theme{
		Light: make(map[string]string),
		Dark:  make(map[string]string),
	}
}

// Values returns the map for mode.
func (t *Theme) Values(mode tokens.Mode) map[string]string {
	if mode == tokens.Dark {
		return t.Dark
	}
	return t.Light
}

// Keys returns the token names of mode sorted alphabetically.
func (t *Theme) Keys(mode tokens.Mode) []string {
	keys := lo.Keys(t.Values(mode))
	slices.Sort(keys)
	return keys
}

// JSON returns the theme as two-space indented JSON with sorted keys.
func (t *Theme) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Document converts the theme into a token source document.
func (t *Theme) Document() *tokens.Document {
	return &tokens.Document{
		Light: lo.Assign(t.Light),
		Dark:  lo.Assign(t.Dark),
	}
}

// FromDocument wraps a token source document as a theme.
func FromDocument(doc *tokens.Document) *Theme {
	return &Theme{
		Light: lo.Assign(doc.Light),
		Dark:  lo.Assign(doc.Dark),
	}
}

// Parity returns the keys present in one map but not the other, sorted.
func Parity(light, dark map[string]string) (missingInDark, missingInLight []string) {
	missingInDark = lo.Without(lo.Keys(light), lo.Keys(dark)...)
	missingInLight = lo.Without(lo.Keys(dark), lo.Keys(light)...)
	slices.Sort(missingInDark)
	slices.Sort(missingInLight)
	return missingInDark, missingInLight
}
