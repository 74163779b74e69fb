package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/wex/internal/security"
)

// MaxSourceSize caps how much of a token source file is read.
const MaxSourceSize = 8 << 20

var (
	// ErrSourceNotFound is returned when the token source file does not exist.
	ErrSourceNotFound = errors.New("token source not found")

	// ErrUnsupportedFormat is returned for source files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported token source format")
)

// Format is the encoding of a token source file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Document is a token source: two maps from "--token-name" to colour value.
type Document struct {
	Light map[string]string `json:"light" yaml:"light" jsonschema:"description=Token values for light mode keyed by CSS custom property name."`
	Dark  map[string]string `json:"dark" yaml:"dark" jsonschema:"description=Token values for dark mode keyed by CSS custom property name."`
}

// NewDocument returns an empty document with both maps allocated.
func NewDocument() *Document {
	return &Document{
		Light: make(map[string]string),
		Dark:  make(map[string]string),
	}
}

// Values returns the map for mode.
func (d *Document) Values(mode Mode) map[string]string {
	if mode == Dark {
		return d.Dark
	}
	return d.Light
}

// Set stores value under key for mode.
func (d *Document) Set(mode Mode, key, value string) {
	if mode == Dark {
		d.Dark[key] = value
		return
	}
	d.Light[key] = value
}

// Keys returns the keys of mode sorted alphabetically.
func (d *Document) Keys(mode Mode) []string {
	keys := lo.Keys(d.Values(mode))
	slices.Sort(keys)
	return keys
}

// Normalise allocates missing maps and prefixes bare keys with "--".
func (d *Document) Normalise() {
	d.Light = normaliseKeys(d.Light)
	d.Dark = normaliseKeys(d.Dark)
}

func normaliseKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[NormaliseKey(k)] = strings.TrimSpace(v)
	}
	return out
}

// NormaliseKey trims a token name and ensures the "--" prefix.
func NormaliseKey(key string) string {
	key = strings.TrimSpace(key)
	if !strings.HasPrefix(key, "--") {
		key = "--" + strings.TrimLeft(key, "-")
	}
	return key
}

// Load reads a token source document from fsys.
// A missing file is reported as ErrSourceNotFound.
func Load(fsys afero.Fs, path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open token source: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(security.LimitReader(r, MaxSourceSize))
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	default:
		err = json.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, err
	}

	doc.Normalise()
	return doc, nil
}

// MarshalIndent encodes the document as two-space indented JSON with sorted keys.
func (d *Document) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
