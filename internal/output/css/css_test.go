package css

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/output/outputtest"
	"github.com/jmylchreest/wex/internal/tokens"
)

func TestCSSPlugin(t *testing.T) {
	outputtest.RunAllTests(t, New(), outputtest.TestConfig{
		ExpectedName:  "css",
		ExpectedFiles: []string{"tokens.css"},
		ExpectedFlags: []string{"css.filename", "css.dark-selector"},
	})
}

func TestGenerateExactOutput(t *testing.T) {
	files, err := New().Generate(output.NewThemeData(outputtest.CreateTestDocument(), "design/tokens.json"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := `/* This file is auto-generated by wex from design/tokens.json. Do not edit. */
:root {
  --color-blue-50: 208 100% 97%;
  --color-blue-500: 208 100% 32%;
  --surface-default: 0 0% 100%;
  --text-default: 210 17% 10%;
}

.dark {
  --color-blue-50: 208 100% 97%;
  --color-blue-500: 208 100% 66%;
  --surface-default: 210 17% 10%;
  --text-default: 210 20% 98%;
}
`
	if diff := cmp.Diff(want, string(files["tokens.css"])); diff != "" {
		t.Errorf("generated CSS mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateByteStable(t *testing.T) {
	p := New()
	data := output.NewThemeData(outputtest.CreateTestDocument(), "tokens.json")

	first, err := p.Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for range 10 {
		again, err := p.Generate(data)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if string(again["tokens.css"]) != string(first["tokens.css"]) {
			t.Fatal("output differs between runs")
		}
	}
}

func TestFlagsChangeOutput(t *testing.T) {
	p := New()
	cmd := &cobra.Command{Use: "test"}
	p.RegisterFlags(cmd)

	if err := cmd.Flags().Set("css.dark-selector", `[data-theme="dark"]`); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("css.filename", "theme.css"); err != nil {
		t.Fatal(err)
	}

	files, err := p.Generate(output.NewThemeData(outputtest.CreateTestDocument(), "tokens.json"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	content, ok := files["theme.css"]
	if !ok {
		t.Fatalf("expected theme.css, got %v", files)
	}
	if !strings.Contains(string(content), "\n[data-theme=\"dark\"] {\n") {
		t.Errorf("custom dark selector not used:\n%s", content)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		darkSelector string
		wantErr      bool
	}{
		{name: "defaults", filename: DefaultFilename, darkSelector: DefaultDarkSelector},
		{name: "attribute selector", filename: "a.css", darkSelector: "[data-mode=dark]"},
		{name: "empty filename", filename: "", darkSelector: ".dark", wantErr: true},
		{name: "nested filename", filename: "../tokens.css", darkSelector: ".dark", wantErr: true},
		{name: "empty selector", filename: "a.css", darkSelector: "  ", wantErr: true},
		{name: "brace in selector", filename: "a.css", darkSelector: ".dark {", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.filename = tt.filename
			p.darkSelector = tt.darkSelector
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCustomTemplateOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/templates/css/tokens.css.tmpl", []byte("{{ range .Light }}{{ .Name }}={{ .Value | hex }}\n{{ end }}"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New()
	p.SetTemplateSource(fs, "/templates")

	doc := tokens.NewDocument()
	doc.Set(tokens.Light, "--text-default", "0 0% 0%")

	files, err := p.Generate(output.NewThemeData(doc, "tokens.json"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := string(files["tokens.css"]); got != "text-default=#000000\n" {
		t.Errorf("custom template output = %q", got)
	}
}
