package swatch

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/output/outputtest"
	"github.com/jmylchreest/wex/internal/tokens"
)

func TestSwatchPlugin(t *testing.T) {
	outputtest.RunAllTests(t, New(), outputtest.TestConfig{
		ExpectedName:  "swatch",
		ExpectedFiles: []string{"swatches.png"},
		ExpectedFlags: []string{"swatch.filename", "swatch.row-height"},
	})
}

func TestGenerateDecodesAsPNG(t *testing.T) {
	doc := outputtest.CreateTestDocument()

	files, err := New().Generate(output.NewThemeData(doc, "tokens.json"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(files["swatches.png"]))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != imageWidth {
		t.Errorf("width = %d, want %d", bounds.Dx(), imageWidth)
	}
	// Header plus four tokens.
	if want := 5 * defaultRowHeight; bounds.Dy() != want {
		t.Errorf("height = %d, want %d", bounds.Dy(), want)
	}
}

func TestRenderCellColours(t *testing.T) {
	doc := outputtest.CreateTestDocument()
	img := New().Render(doc)

	// --surface-default is the third token, so row 3 after the header.
	y := 3*defaultRowHeight + 1

	tests := []struct {
		name string
		x    int
		want color.RGBA
	}{
		{name: "light swatch", x: labelWidth + 1, want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "dark swatch", x: labelWidth + swatchWidth + 1, want: color.RGBA{R: 21, G: 26, B: 30, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, y); got != tt.want {
				t.Errorf("pixel at (%d, %d) = %v, want %v", tt.x, y, got, tt.want)
			}
		})
	}
}

func TestRenderMissingValue(t *testing.T) {
	doc := tokens.NewDocument()
	doc.Set(tokens.Light, "--only-light", "#ff0000")

	img := New().Render(doc)

	y := defaultRowHeight + 1
	if got := img.RGBAAt(labelWidth+1, y); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("light swatch = %v, want red", got)
	}
	if got := img.RGBAAt(labelWidth+swatchWidth+1, y); got != missingColour {
		t.Errorf("dark swatch = %v, want missing colour", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		rowHeight int
		wantErr   bool
	}{
		{name: "default", rowHeight: defaultRowHeight},
		{name: "too small", rowHeight: 8, wantErr: true},
		{name: "too large", rowHeight: 1000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.rowHeight = tt.rowHeight
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
