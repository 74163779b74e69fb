package output

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// TemplateLoader loads plugin templates, preferring a custom copy in
// <dir>/<plugin>/ over the embedded default.
type TemplateLoader struct {
	pluginName string
	embedFS    embed.FS
	fs         afero.Fs
	customBase string
	logger     hclog.Logger
}

// NewTemplateLoader creates a loader serving only embedded templates until
// WithCustomBase is called.
func NewTemplateLoader(pluginName string, embedFS embed.FS) *TemplateLoader {
	return &TemplateLoader{
		pluginName: pluginName,
		embedFS:    embedFS,
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets the directory searched for overrides. An empty dir
// disables overrides.
func (l *TemplateLoader) WithCustomBase(fs afero.Fs, dir string) *TemplateLoader {
	l.fs = fs
	l.customBase = dir
	return l
}

// WithLogger sets the logger used to report which template was chosen.
func (l *TemplateLoader) WithLogger(logger hclog.Logger) *TemplateLoader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads a template file, checking for custom overrides first.
// Returns the template content and whether it was loaded from a custom override.
func (l *TemplateLoader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.HasCustomTemplate(filename) {
		customPath := l.CustomPath(filename)
		content, err := afero.ReadFile(l.fs, customPath)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read custom template %q: %w", customPath, err)
		}
		l.logger.Debug("using custom template", "path", customPath)
		return content, true, nil
	}

	l.logger.Debug("using embedded template", "template", filename)
	content, err = l.embedFS.ReadFile(filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

// CustomPath returns the path where a custom template would be located.
func (l *TemplateLoader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.pluginName, filename)
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *TemplateLoader) HasCustomTemplate(filename string) bool {
	if l.fs == nil || l.customBase == "" {
		return false
	}
	ok, err := afero.Exists(l.fs, l.CustomPath(filename))
	return err == nil && ok
}

// ListEmbeddedTemplates returns a list of all embedded template files.
func (l *TemplateLoader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	return templates, nil
}

// DumpTemplates writes the embedded templates into the custom directory so
// they can be edited. Existing files are kept unless force is set.
func (l *TemplateLoader) DumpTemplates(force bool) ([]string, error) {
	if l.fs == nil || l.customBase == "" {
		return nil, fmt.Errorf("no custom template directory configured")
	}

	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	for _, name := range templates {
		outputPath := l.CustomPath(name)
		if !force && l.HasCustomTemplate(name) {
			l.logger.Info("keeping existing custom template", "path", outputPath)
			continue
		}

		content, err := l.embedFS.ReadFile(name)
		if err != nil {
			return dumped, fmt.Errorf("failed to read embedded template %q: %w", name, err)
		}
		if err := l.fs.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return dumped, fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
		}
		if err := afero.WriteFile(l.fs, outputPath, content, 0o644); err != nil {
			return dumped, fmt.Errorf("failed to write template to %q: %w", outputPath, err)
		}
		dumped = append(dumped, outputPath)
	}

	return dumped, nil
}
