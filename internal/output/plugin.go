// Package output defines the contract between the build pipeline and the
// plugins that turn a token document into files.
package output

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/tokens"
)

// ErrNilDocument is returned by plugins asked to render nothing.
var ErrNilDocument = errors.New("token document cannot be nil")

// ThemeData is the input handed to every output plugin.
type ThemeData struct {
	// Source names the token document in generated banners.
	Source   string
	Document *tokens.Document
}

// NewThemeData wraps a document read from source.
func NewThemeData(doc *tokens.Document, source string) *ThemeData {
	return &ThemeData{Source: source, Document: doc}
}

// Plugin represents an output plugin that renders a token document into
// one or more files.
type Plugin interface {
	// Name is the selector used with --plugins, e.g. "css".
	Name() string
	Description() string

	// Generate renders data. Keys of the returned map are file names
	// relative to the output directory.
	Generate(data *ThemeData) (map[string][]byte, error)

	// RegisterFlags adds "<name>.<option>" flags to cmd.
	RegisterFlags(cmd *cobra.Command)

	// Validate rejects flag values that cannot produce output.
	Validate() error
}

// LoggingPlugin is implemented by plugins that log while generating.
type LoggingPlugin interface {
	SetLogger(logger hclog.Logger)
}

// TemplatePlugin is implemented by plugins whose templates can be overridden
// from a directory on disk.
type TemplatePlugin interface {
	SetTemplateSource(fs afero.Fs, dir string)
}

// TemplateProvider is implemented by plugins rendering embedded templates.
type TemplateProvider interface {
	Loader() *TemplateLoader
}

// Registry indexes output plugins by name.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds plugin, replacing any plugin of the same name.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get looks up a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names, sorted.
func (r *Registry) List() []string {
	names := lo.Keys(r.plugins)
	slices.Sort(names)
	return names
}

// Select returns the named plugins in the order given.
// Unknown names are reported together in one error.
func (r *Registry) Select(names []string) ([]Plugin, error) {
	names = lo.Uniq(names)

	unknown := lo.Reject(names, func(name string, _ int) bool {
		_, ok := r.plugins[name]
		return ok
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown output plugin(s) %v (available: %v)", unknown, r.List())
	}

	return lo.Map(names, func(name string, _ int) Plugin { return r.plugins[name] }), nil
}

// Configure hands a logger and template source to every plugin that wants them.
func (r *Registry) Configure(logger hclog.Logger, fs afero.Fs, templateDir string) {
	for _, p := range r.plugins {
		if lp, ok := p.(LoggingPlugin); ok {
			lp.SetLogger(logger.Named(p.Name()))
		}
		if tp, ok := p.(TemplatePlugin); ok {
			tp.SetTemplateSource(fs, templateDir)
		}
	}
}
