package tokens

import (
	"strings"
	"testing"

	"github.com/jmylchreest/wex/internal/colour"
)

func TestRegistryKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, key := range AllKeys() {
		if seen[key] {
			t.Errorf("duplicate token key %q", key)
		}
		seen[key] = true
		if !strings.HasPrefix(key, "--") {
			t.Errorf("token key %q lacks the -- prefix", key)
		}
	}
}

func TestRegistryValuesParse(t *testing.T) {
	for _, tok := range Registry() {
		for _, mode := range Modes {
			if _, ok := colour.Parse(tok.Value(mode)); !ok {
				t.Errorf("%s (%s) default %q is not a colour", tok.Key, mode, tok.Value(mode))
			}
		}
	}
}

func TestTokenValueFallsBackToLight(t *testing.T) {
	tok, ok := Lookup("--tooltip-bg")
	if !ok {
		t.Fatal("--tooltip-bg not registered")
	}
	if tok.Dark != "" {
		t.Fatalf("--tooltip-bg unexpectedly has a dark default %q", tok.Dark)
	}
	if got := tok.Value(Dark); got != tok.Light {
		t.Errorf("Value(Dark) = %q, want light value %q", got, tok.Light)
	}

	tok, _ = Lookup("--surface-default")
	if got := tok.Value(Dark); got != tok.Dark {
		t.Errorf("Value(Dark) = %q, want dark value %q", got, tok.Dark)
	}
}

func TestContrastPairsReferenceRegisteredTokens(t *testing.T) {
	for _, pair := range ContrastPairs() {
		if !IsRegistered(pair.Foreground) {
			t.Errorf("%s: foreground %q not registered", pair.Name, pair.Foreground)
		}
		if !IsRegistered(pair.Background) {
			t.Errorf("%s: background %q not registered", pair.Name, pair.Background)
		}
	}
}

func TestContrastPairRequired(t *testing.T) {
	if got := (ContrastPair{}).Required(); got != colour.RatingAA {
		t.Errorf("Required() = %s, want AA", got)
	}
	if got := (ContrastPair{LargeText: true}).Required(); got != colour.RatingAALarge {
		t.Errorf("Required() = %s, want AA-large", got)
	}
}

func TestIsRegistered(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "--color-blue-500", want: true},
		{key: "--color-neutral-0", want: true},
		{key: "--button-primary-bg", want: true},
		{key: "--color-blue-550", want: false},
		{key: "--made-up", want: false},
	}

	for _, tt := range tests {
		if got := IsRegistered(tt.key); got != tt.want {
			t.Errorf("IsRegistered(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
