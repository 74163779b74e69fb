// Package css provides the CSS custom property output plugin.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/tokens"
)

//go:embed *.tmpl
var templates embed.FS

const templateName = "tokens.css.tmpl"

// Defaults for the plugin flags.
const (
	DefaultFilename     = "tokens.css"
	DefaultDarkSelector = ".dark"
)

// Plugin implements the output.Plugin interface for plain CSS custom properties.
type Plugin struct {
	filename     string
	darkSelector string
	loader       *output.TemplateLoader
	logger       hclog.Logger
}

// New creates a new CSS output plugin.
func New() *Plugin {
	return &Plugin{
		filename:     DefaultFilename,
		darkSelector: DefaultDarkSelector,
		loader:       output.NewTemplateLoader("css", templates),
		logger:       hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate a stylesheet of CSS custom properties for light and dark mode"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, "css.filename", DefaultFilename, "Name of the generated stylesheet")
	cmd.Flags().StringVar(&p.darkSelector, "css.dark-selector", DefaultDarkSelector, "Selector wrapping the dark mode tokens")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" || filepath.Base(p.filename) != p.filename {
		return fmt.Errorf("invalid css filename %q (must be a bare file name)", p.filename)
	}
	if strings.TrimSpace(p.darkSelector) == "" || strings.ContainsAny(p.darkSelector, "{}") {
		return fmt.Errorf("invalid dark selector %q", p.darkSelector)
	}
	return nil
}

// SetLogger implements output.LoggingPlugin.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = logger
	p.loader.WithLogger(logger)
}

// SetTemplateSource implements output.TemplatePlugin.
func (p *Plugin) SetTemplateSource(fs afero.Fs, dir string) {
	p.loader.WithCustomBase(fs, dir)
}

// Loader exposes the template loader, e.g. for dumping templates.
func (p *Plugin) Loader() *output.TemplateLoader {
	return p.loader
}

// templateData is the data passed to the stylesheet template.
type templateData struct {
	Source       string
	DarkSelector string
	Light        []output.Entry
	Dark         []output.Entry
}

// Generate renders the stylesheet. Tokens are sorted alphabetically so the
// output is byte-stable for the same document.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Document == nil {
		return nil, output.ErrNilDocument
	}

	tmplContent, _, err := p.loader.Load(templateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("tokens.css").Funcs(output.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	td := templateData{
		Source:       data.Source,
		DarkSelector: p.darkSelector,
		Light:        output.Entries(data.Document, tokens.Light),
		Dark:         output.Entries(data.Document, tokens.Dark),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	p.logger.Debug("rendered stylesheet", "file", p.filename, "light", len(td.Light), "dark", len(td.Dark))

	return map[string][]byte{p.filename: buf.Bytes()}, nil
}
