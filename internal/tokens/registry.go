package tokens

import (
	"slices"

	"github.com/jmylchreest/wex/internal/palette"
)

// Category groups registry tokens.
type Category string

const (
	CategoryNeutral   Category = "neutral"
	CategorySemantic  Category = "semantic"
	CategorySurface   Category = "surface"
	CategoryText      Category = "text"
	CategoryComponent Category = "component"
)

// Token is a registered colour token with its default values.
// Dark is empty when the light value is used in both modes.
type Token struct {
	Key       string
	Category  Category
	Component string
	Light     string
	Dark      string
}

// Value returns the default for mode, falling back to the light value.
func (t Token) Value(mode Mode) string {
	if mode == Dark && t.Dark != "" {
		return t.Dark
	}
	return t.Light
}

func neutral(key, value string) Token {
	return Token{Key: key, Category: CategoryNeutral, Light: value}
}

func semantic(key, light, dark string) Token {
	return Token{Key: key, Category: CategorySemantic, Light: light, Dark: dark}
}

func surface(key, light, dark string) Token {
	return Token{Key: key, Category: CategorySurface, Light: light, Dark: dark}
}

func text(key, light, dark string) Token {
	return Token{Key: key, Category: CategoryText, Light: light, Dark: dark}
}

func component(name, key, light, dark string) Token {
	return Token{Key: key, Category: CategoryComponent, Component: name, Light: light, Dark: dark}
}

// registry is the static default token table. Values are bare HSL triples.
var registry = []Token{
	neutral("--color-neutral-0", "0 0% 100%"),
	neutral("--color-neutral-50", "210 20% 98%"),
	neutral("--color-neutral-100", "210 16% 93%"),
	neutral("--color-neutral-200", "210 14% 89%"),
	neutral("--color-neutral-300", "210 12% 80%"),
	neutral("--color-neutral-400", "210 9% 63%"),
	neutral("--color-neutral-500", "210 7% 46%"),
	neutral("--color-neutral-600", "210 9% 31%"),
	neutral("--color-neutral-700", "210 11% 24%"),
	neutral("--color-neutral-800", "210 13% 16%"),
	neutral("--color-neutral-900", "210 17% 10%"),
	neutral("--color-neutral-1000", "0 0% 0%"),

	semantic("--color-primary", "208 100% 40%", "208 100% 66%"),
	semantic("--color-primary-hover", "208 100% 32%", "208 100% 74%"),
	semantic("--color-success", "142 64% 30%", "142 55% 55%"),
	semantic("--color-warning", "43 96% 48%", "43 96% 58%"),
	semantic("--color-danger", "0 74% 42%", "0 84% 66%"),
	semantic("--color-info", "196 80% 36%", "196 80% 62%"),

	surface("--surface-default", "0 0% 100%", "210 17% 10%"),
	surface("--surface-raised", "0 0% 100%", "210 13% 16%"),
	surface("--surface-sunken", "210 20% 98%", "210 20% 6%"),
	surface("--surface-overlay", "210 17% 10%", "0 0% 0%"),
	surface("--surface-inverse", "210 17% 10%", "210 20% 98%"),
	surface("--border-default", "210 14% 89%", "210 11% 24%"),
	surface("--focus-ring", "208 100% 45%", "208 100% 66%"),

	text("--text-default", "210 17% 10%", "210 20% 98%"),
	text("--text-muted", "210 9% 31%", "210 12% 80%"),
	text("--text-subtle", "210 7% 42%", "210 9% 63%"),
	text("--text-inverse", "0 0% 100%", "210 17% 10%"),
	text("--text-link", "208 100% 36%", "208 100% 72%"),
	text("--text-on-primary", "0 0% 100%", "210 17% 10%"),
	text("--text-danger", "0 74% 40%", "0 84% 72%"),

	component("Button", "--button-primary-bg", "208 100% 40%", "208 100% 66%"),
	component("Button", "--button-primary-fg", "0 0% 100%", "210 17% 10%"),
	component("Button", "--button-primary-hover-bg", "208 100% 32%", "208 100% 74%"),
	component("Button", "--button-secondary-bg", "210 16% 93%", "210 11% 24%"),
	component("Button", "--button-secondary-fg", "210 17% 10%", "210 20% 98%"),
	component("Button", "--button-danger-bg", "0 74% 42%", "0 84% 66%"),
	component("Button", "--button-danger-fg", "0 0% 100%", "210 17% 10%"),
	component("Dialog", "--dialog-bg", "0 0% 100%", "210 13% 16%"),
	component("Dialog", "--dialog-fg", "210 17% 10%", "210 20% 98%"),
	component("Dialog", "--dialog-overlay", "210 17% 10%", ""),
	component("Input", "--input-bg", "0 0% 100%", "210 17% 10%"),
	component("Input", "--input-fg", "210 17% 10%", "210 20% 98%"),
	component("Input", "--input-border", "210 12% 80%", "210 9% 31%"),
	component("Input", "--input-placeholder", "210 7% 46%", "210 9% 63%"),
	component("Toast", "--toast-bg", "210 17% 10%", "210 20% 98%"),
	component("Toast", "--toast-fg", "210 20% 98%", "210 17% 10%"),
	component("Calendar", "--calendar-day-selected-bg", "208 100% 40%", "208 100% 66%"),
	component("Calendar", "--calendar-day-selected-fg", "0 0% 100%", "210 17% 10%"),
	component("Calendar", "--calendar-day-today-fg", "208 100% 36%", "208 100% 72%"),
	component("Badge", "--badge-bg", "208 100% 93%", "208 60% 26%"),
	component("Badge", "--badge-fg", "208 100% 26%", "208 100% 93%"),
	component("Tooltip", "--tooltip-bg", "210 17% 10%", ""),
	component("Tooltip", "--tooltip-fg", "0 0% 100%", ""),
}

// Registry returns a copy of the static token table.
func Registry() []Token {
	return slices.Clone(registry)
}

// Lookup returns the registered token for key.
func Lookup(key string) (Token, bool) {
	for _, t := range registry {
		if t.Key == key {
			return t, true
		}
	}
	return Token{}, false
}

// RampKeys returns the token keys of every default ramp stop.
func RampKeys() []string {
	keys := make([]string, 0, len(palette.Defaults())*len(palette.Shades))
	for _, d := range palette.Defaults() {
		for _, shade := range palette.Shades {
			keys = append(keys, palette.TokenKey(d.Name, shade))
		}
	}
	return keys
}

// AllKeys returns every token a theme contains, ramps included, sorted.
func AllKeys() []string {
	keys := RampKeys()
	for _, t := range registry {
		keys = append(keys, t.Key)
	}
	slices.Sort(keys)
	return keys
}

// IsRegistered reports whether key is a ramp stop or a registry token.
func IsRegistered(key string) bool {
	if _, ok := Lookup(key); ok {
		return true
	}
	return slices.Contains(RampKeys(), key)
}
