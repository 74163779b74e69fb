// Package tokens holds the design token registry, the contrast pair catalogue
// and the light/dark token source document.
package tokens

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Mode selects the light or dark half of a theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists both modes in output order.
var Modes = []Mode{Light, Dark}

// ParseMode converts "light"/"dark" (any case) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("invalid mode %q (must be 'light' or 'dark')", s)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// ModeFlag is a pflag.Value selecting one mode or both ("all").
type ModeFlag struct {
	modes []Mode
	raw   string
}

var _ pflag.Value = (*ModeFlag)(nil)

// NewModeFlag returns a flag value defaulting to both modes.
func NewModeFlag() *ModeFlag {
	return &ModeFlag{modes: Modes, raw: "all"}
}

// String implements pflag.Value.
func (f *ModeFlag) String() string {
	return f.raw
}

// Set implements pflag.Value.
func (f *ModeFlag) Set(s string) error {
	if strings.EqualFold(s, "all") || s == "" {
		f.modes, f.raw = Modes, "all"
		return nil
	}
	m, err := ParseMode(s)
	if err != nil {
		return err
	}
	f.modes, f.raw = []Mode{m}, m.String()
	return nil
}

// Type implements pflag.Value.
func (f *ModeFlag) Type() string {
	return "mode"
}

// Modes returns the selected modes.
func (f *ModeFlag) Modes() []Mode {
	return f.modes
}
