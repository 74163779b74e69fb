package tokens

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/jmylchreest/wex/internal/palette"
)

func TestLoadOverrides(t *testing.T) {
	fsys := afero.NewMemMapFs()
	src := `
tokens:
  light:
    button-primary-bg: "#0057a3"
  dark:
    --surface-default: "#000"
ramps:
  light:
    blue:
      base: "hsl(208, 100%, 32%)"
      stops:
        "700": "#102030"
`
	if err := afero.WriteFile(fsys, "overrides.yaml", []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOverrides(fsys, "overrides.yaml")
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}

	if got := o.Tokens[Light]["--button-primary-bg"]; got != "#0057a3" {
		t.Errorf("light --button-primary-bg = %q (keys should be normalised)", got)
	}
	blue := o.Ramps[Light]["blue"]
	if blue.Base != "hsl(208, 100%, 32%)" {
		t.Errorf("blue base = %q", blue.Base)
	}
	if diff := cmp.Diff(map[palette.Shade]string{700: "#102030"}, blue.Shades()); diff != "" {
		t.Errorf("Shades() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesJSON(t *testing.T) {
	fsys := afero.NewMemMapFs()
	src := `{"tokens": {"dark": {"--text-default": "#fff"}}}`
	if err := afero.WriteFile(fsys, "overrides.json", []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOverrides(fsys, "overrides.json")
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}
	if o.Tokens[Dark]["--text-default"] != "#fff" {
		t.Errorf("dark --text-default = %q", o.Tokens[Dark]["--text-default"])
	}
}

func TestOverridesValidate(t *testing.T) {
	tests := []struct {
		name    string
		o       Overrides
		wantErr bool
	}{
		{
			name:    "empty",
			o:       Overrides{},
			wantErr: false,
		},
		{
			name:    "unknown token mode",
			o:       Overrides{Tokens: map[Mode]map[string]string{"sepia": {"--a": "#fff"}}},
			wantErr: true,
		},
		{
			name:    "unknown ramp",
			o:       Overrides{Ramps: map[Mode]map[string]RampOverride{Light: {"chartreuse": {Base: "#0f0"}}}},
			wantErr: true,
		},
		{
			name:    "invalid shade",
			o:       Overrides{Ramps: map[Mode]map[string]RampOverride{Dark: {"red": {Stops: map[string]string{"450": "#f00"}}}}},
			wantErr: true,
		},
		{
			name:    "unparseable colours are allowed",
			o:       Overrides{Ramps: map[Mode]map[string]RampOverride{Dark: {"red": {Base: "nope"}}}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOverridesMissing(t *testing.T) {
	if _, err := LoadOverrides(afero.NewMemMapFs(), "missing.yaml"); err == nil {
		t.Error("LoadOverrides() accepted a missing file")
	}
}
