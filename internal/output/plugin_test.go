package output_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/output/css"
	"github.com/jmylchreest/wex/internal/output/jsontheme"
	"github.com/jmylchreest/wex/internal/output/swatch"
	"github.com/jmylchreest/wex/internal/output/tailwind"
	"github.com/jmylchreest/wex/internal/tokens"
)

func newRegistry() *output.Registry {
	r := output.NewRegistry()
	r.Register(css.New())
	r.Register(jsontheme.New())
	r.Register(tailwind.New())
	r.Register(swatch.New())
	return r
}

func TestRegistryList(t *testing.T) {
	r := newRegistry()

	want := []string{"css", "json", "swatch", "tailwind"}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := r.Get("css"); !ok {
		t.Error("Get(css) not found")
	}
	if _, ok := r.Get("nope"); ok {
		t.Error("Get(nope) found")
	}
}

func TestRegistrySelect(t *testing.T) {
	r := newRegistry()

	plugins, err := r.Select([]string{"tailwind", "css", "tailwind"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	got := make([]string, 0, len(plugins))
	for _, p := range plugins {
		got = append(got, p.Name())
	}
	if diff := cmp.Diff([]string{"tailwind", "css"}, got); diff != "" {
		t.Errorf("Select() order mismatch (-want +got):\n%s", diff)
	}

	_, err = r.Select([]string{"css", "scss", "less"})
	if err == nil {
		t.Fatal("Select() with unknown plugins should fail")
	}
	if !strings.Contains(err.Error(), "scss") || !strings.Contains(err.Error(), "less") {
		t.Errorf("error should name every unknown plugin: %v", err)
	}
}

func TestRegistryConfigure(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/tmpl/css/tokens.css.tmpl", []byte("custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := newRegistry()
	r.Configure(hclog.NewNullLogger(), fs, "/tmpl")

	p, _ := r.Get("css")
	files, err := p.Generate(output.NewThemeData(tokens.NewDocument(), "x.json"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(files["tokens.css"]) != "custom\n" {
		t.Errorf("template source not applied, got %q", files["tokens.css"])
	}
}

func TestEntries(t *testing.T) {
	doc := tokens.NewDocument()
	doc.Set(tokens.Dark, "--b", "2")
	doc.Set(tokens.Dark, "--a", "1")

	want := []output.Entry{{Key: "--a", Value: "1"}, {Key: "--b", Value: "2"}}
	if diff := cmp.Diff(want, output.Entries(doc, tokens.Dark)); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if got := want[0].Name(); got != "a" {
		t.Errorf("Name() = %q, want a", got)
	}
}
