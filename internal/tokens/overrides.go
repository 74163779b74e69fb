package tokens

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/wex/internal/palette"
	"github.com/jmylchreest/wex/internal/security"
)

// RampOverride replaces a ramp's base colour and/or individual stops.
type RampOverride struct {
	Base  string            `json:"base,omitempty" yaml:"base,omitempty" jsonschema:"description=Colour bound to shade 500."`
	Stops map[string]string `json:"stops,omitempty" yaml:"stops,omitempty" jsonschema:"description=Per-shade colour overrides keyed by shade (50-900)."`
}

// Overrides is the user supplied customisation file for theme export.
type Overrides struct {
	Tokens map[Mode]map[string]string       `json:"tokens,omitempty" yaml:"tokens,omitempty" jsonschema:"description=Per-mode token overrides. These win over every generated or default value."`
	Ramps  map[Mode]map[string]RampOverride `json:"ramps,omitempty" yaml:"ramps,omitempty" jsonschema:"description=Per-mode ramp base colours and stop overrides keyed by ramp name."`
}

// LoadOverrides reads an overrides file. YAML and JSON are both accepted.
func LoadOverrides(fsys afero.Fs, path string) (*Overrides, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("overrides file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open overrides: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(security.LimitReader(f, MaxSourceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}

	o := &Overrides{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("failed to parse overrides %s: %w", path, err)
	}

	o.normalise()
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid overrides %s: %w", path, err)
	}
	return o, nil
}

// Validate checks modes, ramp names and shade keys.
// Colour values are not checked; unparseable ones fall back to defaults.
func (o *Overrides) Validate() error {
	for mode := range o.Tokens {
		if _, err := ParseMode(string(mode)); err != nil {
			return fmt.Errorf("tokens: %w", err)
		}
	}

	for mode, ramps := range o.Ramps {
		if _, err := ParseMode(string(mode)); err != nil {
			return fmt.Errorf("ramps: %w", err)
		}
		names := lo.Keys(ramps)
		slices.Sort(names)
		for _, name := range names {
			if _, ok := palette.LookupDefault(name); !ok {
				return fmt.Errorf("ramps.%s: unknown ramp %q (known: %v)", mode, name, palette.Names())
			}
			for shade := range ramps[name].Stops {
				if _, err := palette.ParseShade(shade); err != nil {
					return fmt.Errorf("ramps.%s.%s: %w", mode, name, err)
				}
			}
		}
	}

	return nil
}

// Shades converts the string keyed stop overrides into palette shades.
// Invalid shade keys are dropped; Validate reports them.
func (r RampOverride) Shades() map[palette.Shade]string {
	if len(r.Stops) == 0 {
		return nil
	}
	out := make(map[palette.Shade]string, len(r.Stops))
	for k, v := range r.Stops {
		if shade, err := palette.ParseShade(k); err == nil {
			out[shade] = v
		}
	}
	return out
}

func (o *Overrides) normalise() {
	for mode, values := range o.Tokens {
		o.Tokens[mode] = normaliseKeys(values)
	}
}
