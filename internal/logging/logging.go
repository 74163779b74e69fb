// Package logging builds the hclog logger shared by wex commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Options select the logger's verbosity.
type Options struct {
	// Level is a configured level name; empty means info.
	Level string
	// Verbose forces debug output.
	Verbose bool
	// Quiet limits output to errors. Verbose wins when both are set.
	Quiet bool
	// Output defaults to io.Discard when nil.
	Output io.Writer
	// JSON switches to JSON formatted lines.
	JSON bool
}

// ParseLevel converts a level name into an hclog.Level.
func ParseLevel(name string) (hclog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return hclog.Info, nil
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid log level %q (must be trace, debug, info, warn, error or off)", name)
	}
	return level, nil
}

// New returns the root "wex" logger.
func New(opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	switch {
	case opts.Verbose:
		level = hclog.Debug
	case opts.Quiet:
		level = hclog.Error
	}

	output := opts.Output
	if output == nil {
		output = io.Discard
		level = hclog.Off
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "wex",
		Output:     output,
		Level:      level,
		JSONFormat: opts.JSON,
	}), nil
}
