package theme

import (
	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"

	"github.com/jmylchreest/wex/internal/palette"
	"github.com/jmylchreest/wex/internal/tokens"
)

// RampOptions customises one ramp in one mode.
type RampOptions struct {
	// Base replaces the default base colour (shade 500). Unparseable values
	// fall back to the default.
	Base string
	// Stops overrides individual shades.
	Stops map[palette.Shade]string
}

// Options are the caller supplied inputs to Export.
type Options struct {
	Ramps  map[tokens.Mode]map[string]RampOptions
	Tokens map[tokens.Mode]map[string]string
}

// OptionsFromOverrides converts a parsed overrides file into export options.
func OptionsFromOverrides(o *tokens.Overrides) Options {
	opts := Options{
		Ramps:  make(map[tokens.Mode]map[string]RampOptions),
		Tokens: make(map[tokens.Mode]map[string]string),
	}
	if o == nil {
		return opts
	}

	for mode, values := range o.Tokens {
		opts.Tokens[mode] = lo.Assign(values)
	}
	for mode, ramps := range o.Ramps {
		opts.Ramps[mode] = lo.MapValues(ramps, func(r tokens.RampOverride, _ string) RampOptions {
			return RampOptions{Base: r.Base, Stops: r.Shades()}
		})
	}
	return opts
}

// Exporter builds themes from the default tables and caller overrides.
type Exporter struct {
	logger hclog.Logger
}

// NewExporter returns an exporter. A nil logger discards output.
func NewExporter(logger hclog.Logger) *Exporter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Exporter{logger: logger.Named("theme")}
}

// Export builds both modes independently. For each mode:
//  1. every default ramp is generated, honouring base and stop overrides,
//  2. the registry defaults are applied, dark values falling back to light,
//  3. token overrides are applied last and always win.
//
// Overrides for unregistered tokens are dropped so both modes keep the same
// key set. The result is total: every registered token is present.
func (e *Exporter) Export(opts Options) *Theme {
	t := New()
	for _, mode := range tokens.Modes {
		values := t.Values(mode)

		for _, ramp := range e.ramps(mode, opts.Ramps[mode]) {
			for k, v := range ramp.Tokens() {
				values[k] = v
			}
		}

		for _, tok := range tokens.Registry() {
			values[tok.Key] = tok.Value(mode)
		}

		for key, value := range opts.Tokens[mode] {
			key = tokens.NormaliseKey(key)
			if _, ok := values[key]; !ok {
				e.logger.Warn("ignoring override for unregistered token", "mode", mode, "token", key)
				continue
			}
			values[key] = value
		}
	}
	return t
}

// Ramps returns the generated ramps of mode, in default table order.
func (e *Exporter) Ramps(mode tokens.Mode, opts Options) []palette.Ramp {
	return e.ramps(mode, opts.Ramps[mode])
}

func (e *Exporter) ramps(mode tokens.Mode, overrides map[string]RampOptions) []palette.Ramp {
	defaults := palette.Defaults()
	ramps := make([]palette.Ramp, 0, len(defaults))

	for _, d := range defaults {
		ro := overrides[d.Name]

		if ro.Base != "" {
			if ramp, ok := palette.Generate(d.Name, ro.Base, ro.Stops); ok {
				ramps = append(ramps, ramp)
				continue
			}
			e.logger.Warn("unparseable ramp base, using default", "mode", mode, "ramp", d.Name, "base", ro.Base)
		}

		ramps = append(ramps, palette.FromHSL(d.Name, d.Base(), ro.Stops))
	}

	for name := range overrides {
		if _, ok := palette.LookupDefault(name); !ok {
			e.logger.Warn("ignoring override for unknown ramp", "mode", mode, "ramp", name)
		}
	}

	return ramps
}

// Default exports the theme with no overrides.
func Default() *Theme {
	return NewExporter(nil).Export(Options{})
}
