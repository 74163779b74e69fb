// Package tailwind provides a Tailwind CSS preset output plugin.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/tokens"
)

//go:embed *.tmpl
var templates embed.FS

const templateName = "tailwind.config.js.tmpl"

// DefaultFilename is the file written when no --tailwind.filename is given.
const DefaultFilename = "tailwind.config.js"

// rampKeyPattern matches ramp stop tokens such as --color-blue-500.
var rampKeyPattern = regexp.MustCompile(`^--color-([a-z0-9-]+?)-(\d+)$`)

// Plugin implements the output.Plugin interface for Tailwind CSS.
type Plugin struct {
	filename string
	loader   *output.TemplateLoader
	logger   hclog.Logger
}

// New creates a new Tailwind CSS output plugin.
func New() *Plugin {
	return &Plugin{
		filename: DefaultFilename,
		loader:   output.NewTemplateLoader("tailwind", templates),
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate a Tailwind CSS preset mapping every token to its CSS variable"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, "tailwind.filename", DefaultFilename, "Name of the generated Tailwind config")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" || filepath.Base(p.filename) != p.filename {
		return fmt.Errorf("invalid tailwind filename %q (must be a bare file name)", p.filename)
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

// Generate creates the Tailwind config from the token document.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Document == nil {
		return nil, output.ErrNilDocument
	}

	tmplContent, _, err := p.loader.Load(templateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("tailwind.config.js").Funcs(output.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config template: %w", err)
	}

	cd := prepareConfigData(data)
	p.logger.Debug("rendered tailwind preset", "ramps", len(cd.Ramps), "colours", len(cd.Colours))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cd); err != nil {
		return nil, fmt.Errorf("failed to execute config template: %w", err)
	}

	return map[string][]byte{p.filename: buf.Bytes()}, nil
}

// ConfigData holds data for the config template.
type ConfigData struct {
	Source  string
	Ramps   []Ramp
	Colours []Colour
}

// Ramp is a colour family nested by shade.
type Ramp struct {
	Name  string
	Stops []Colour
}

// Colour is one Tailwind colour name bound to a CSS value.
type Colour struct {
	Name  string
	Value string
}

// prepareConfigData groups ramp stops by ramp and lists the remaining tokens
// flat, both sorted.
func prepareConfigData(data *output.ThemeData) ConfigData {
	doc := data.Document
	keys := lo.Uniq(append(doc.Keys(tokens.Light), doc.Keys(tokens.Dark)...))
	slices.Sort(keys)

	ramps := make(map[string][]Colour)
	var colours []Colour

	for _, key := range keys {
		value := cssValue(doc, key)
		if m := rampKeyPattern.FindStringSubmatch(key); m != nil {
			ramps[m[1]] = append(ramps[m[1]], Colour{Name: m[2], Value: value})
			continue
		}
		colours = append(colours, Colour{Name: output.Entry{Key: key}.Name(), Value: value})
	}

	cd := ConfigData{Source: data.Source, Colours: colours}
	for _, name := range lo.Keys(ramps) {
		stops := ramps[name]
		slices.SortFunc(stops, func(a, b Colour) int {
			return shadeNumber(a.Name) - shadeNumber(b.Name)
		})
		cd.Ramps = append(cd.Ramps, Ramp{Name: name, Stops: stops})
	}
	slices.SortFunc(cd.Ramps, func(a, b Ramp) int {
		return strings.Compare(a.Name, b.Name)
	})

	return cd
}

// cssValue wraps bare HSL triples in hsl() so Tailwind can use them.
// Tokens holding any other colour syntax are referenced directly.
func cssValue(doc *tokens.Document, key string) string {
	for _, mode := range tokens.Modes {
		if v, ok := doc.Values(mode)[key]; ok && !colour.IsHSLTriple(v) {
			return fmt.Sprintf("var(%s)", key)
		}
	}
	return fmt.Sprintf("hsl(var(%s))", key)
}

func shadeNumber(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
