// Package jsontheme provides the exported theme JSON output plugin.
package jsontheme

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/output"
)

// DefaultFilename is the file written when no --json.filename is given.
const DefaultFilename = "theme.json"

// Plugin implements the output.Plugin interface for the theme JSON document.
type Plugin struct {
	filename string
}

// New creates a new theme JSON output plugin.
func New() *Plugin {
	return &Plugin{filename: DefaultFilename}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "json"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Write the light/dark theme as indented JSON with sorted keys"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, "json.filename", DefaultFilename, "Name of the generated theme document")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" || filepath.Base(p.filename) != p.filename {
		return fmt.Errorf("invalid json filename %q (must be a bare file name)", p.filename)
	}
	return nil
}

// Generate serialises the document.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Document == nil {
		return nil, output.ErrNilDocument
	}

	content, err := data.Document.MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}

	return map[string][]byte{p.filename: content}, nil
}
