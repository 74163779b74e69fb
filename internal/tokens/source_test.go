package tokens

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"

	"github.com/jmylchreest/wex/internal/fetch"
)

func TestLoadSourceFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "tokens.json", []byte(`{"light": {"text": "#000"}, "dark": {"text": "#fff"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadSource(context.Background(), fs, "tokens.json")
	if err != nil {
		t.Fatalf("LoadSource() error = %v", err)
	}
	if doc.Light["--text"] != "#000" {
		t.Errorf("light --text = %q", doc.Light["--text"])
	}

	if _, err := LoadSource(context.Background(), fs, "absent.json"); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("missing file error = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadSourceRemote(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tokens.yaml", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("light:\n  surface: \"0 0% 100%\"\ndark:\n  surface: \"210 17% 10%\"\n"))
	})
	mux.HandleFunc("/theme", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"light": {"--surface": "#fff"}, "dark": {"--surface": "#111"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fs := afero.NewMemMapFs()

	doc, err := LoadSource(context.Background(), fs, srv.URL+"/tokens.yaml")
	if err != nil {
		t.Fatalf("LoadSource(yaml) error = %v", err)
	}
	if doc.Dark["--surface"] != "210 17% 10%" {
		t.Errorf("dark --surface = %q", doc.Dark["--surface"])
	}

	doc, err = LoadSource(context.Background(), fs, srv.URL+"/theme?v=2")
	if err != nil {
		t.Fatalf("LoadSource(json) error = %v", err)
	}
	if doc.Light["--surface"] != "#fff" {
		t.Errorf("light --surface = %q", doc.Light["--surface"])
	}

	if _, err := LoadSource(context.Background(), fs, srv.URL+"/missing.json"); !errors.Is(err, fetch.ErrStatus) {
		t.Errorf("missing remote error = %v, want ErrStatus", err)
	}
	if _, err := LoadSource(context.Background(), fs, srv.URL+"/tokens.toml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("toml error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestIsRemote(t *testing.T) {
	if !IsRemote("https://example.com/tokens.json") {
		t.Error("https URL not detected")
	}
	if IsRemote("design/tokens.json") {
		t.Error("relative path treated as remote")
	}
}
