// Package build runs the token source through the output plugins and writes
// the results, once or every time the source changes.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/security"
	"github.com/jmylchreest/wex/internal/theme"
	"github.com/jmylchreest/wex/internal/tokens"
)

// ErrNoPlugins is returned when a generator has nothing to run.
var ErrNoPlugins = errors.New("no output plugins selected")

// Options control a single generation run.
type Options struct {
	// Source is the token document to read, a file path or an http(s) URL.
	Source string
	// OutputDir receives every generated file.
	OutputDir string
}

// Result describes a completed run.
type Result struct {
	// Written lists files whose content changed, sorted.
	Written []string
	// Unchanged lists files that already had the generated content, sorted.
	Unchanged []string
	// MissingInDark and MissingInLight report key-set parity violations in
	// the source document.
	MissingInDark  []string
	MissingInLight []string
}

// Generator renders a token source with a fixed set of output plugins.
type Generator struct {
	fs      afero.Fs
	plugins []output.Plugin
	logger  hclog.Logger
}

// NewGenerator creates a generator. A nil logger discards output.
func NewGenerator(fs afero.Fs, plugins []output.Plugin, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{
		fs:      fs,
		plugins: plugins,
		logger:  logger.Named("build"),
	}
}

// Run reads opts.Source, renders it with every plugin and writes the files
// into opts.OutputDir. A missing source file is an error wrapping
// tokens.ErrSourceNotFound. Files whose content is unchanged are not
// rewritten.
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	if len(g.plugins) == 0 {
		return nil, ErrNoPlugins
	}
	for _, p := range g.plugins {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
	}

	doc, err := tokens.LoadSource(ctx, g.fs, opts.Source)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	result.MissingInDark, result.MissingInLight = theme.Parity(doc.Light, doc.Dark)
	if len(result.MissingInDark) > 0 {
		g.logger.Warn("tokens missing from dark mode", "source", opts.Source, "tokens", result.MissingInDark)
	}
	if len(result.MissingInLight) > 0 {
		g.logger.Warn("tokens missing from light mode", "source", opts.Source, "tokens", result.MissingInLight)
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := g.fs.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", outDir, err)
	}

	data := output.NewThemeData(doc, opts.Source)
	for _, p := range g.plugins {
		files, err := p.Generate(data)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}

		for name, content := range files {
			path, changed, err := g.write(outDir, name, content)
			if err != nil {
				return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
			}
			if changed {
				g.logger.Info("wrote file", "plugin", p.Name(), "path", path, "bytes", len(content))
				result.Written = append(result.Written, path)
			} else {
				g.logger.Debug("file unchanged", "plugin", p.Name(), "path", path)
				result.Unchanged = append(result.Unchanged, path)
			}
		}
	}

	slices.Sort(result.Written)
	slices.Sort(result.Unchanged)
	return result, nil
}

// write stores content at outDir/name unless the file already holds it.
func (g *Generator) write(outDir, name string, content []byte) (string, bool, error) {
	if err := security.ValidateOutputName(name); err != nil {
		return "", false, fmt.Errorf("refusing to write %q: %w", name, err)
	}
	path := filepath.Join(outDir, name)

	if existing, err := afero.ReadFile(g.fs, path); err == nil && bytes.Equal(existing, content) {
		return path, false, nil
	}

	if err := afero.WriteFile(g.fs, path, content, 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write %q: %w", path, err)
	}
	return path, true, nil
}
