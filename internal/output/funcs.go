package output

import (
	"strings"
	"text/template"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/tokens"
)

// Entry is one token as seen by templates.
type Entry struct {
	Key   string
	Value string
}

// Name returns the key without its leading "--".
func (e Entry) Name() string {
	return strings.TrimPrefix(e.Key, "--")
}

// Entries returns the tokens of mode sorted by key.
func Entries(doc *tokens.Document, mode tokens.Mode) []Entry {
	values := doc.Values(mode)
	keys := doc.Keys(mode)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: values[k]})
	}
	return entries
}

// TemplateFuncs returns the functions shared by all plugin templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Format conversion.
		"hex":     hexFunc,
		"rgb":     rgbFunc,
		"hslFunc": hslFunc,

		// String manipulation (pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"quote":      quoteFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// hexFunc renders a colour value as #rrggbb, passing unparseable input through.
func hexFunc(value string) string {
	if rgb, ok := colour.Parse(value); ok {
		return rgb.Hex()
	}
	return value
}

func rgbFunc(value string) string {
	if rgb, ok := colour.Parse(value); ok {
		return rgb.String()
	}
	return value
}

func hslFunc(value string) string {
	if hsl, ok := colour.ParseHSL(value); ok {
		return hsl.CSS()
	}
	return value
}

func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

func replaceFunc(old, replacement, s string) string {
	return strings.ReplaceAll(s, old, replacement)
}

// quoteFunc wraps s in single quotes for JavaScript output.
func quoteFunc(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
