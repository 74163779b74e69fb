// Package swatch provides an output plugin rendering every token as a PNG
// swatch sheet, light and dark side by side.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/tokens"
)

// DefaultFilename is the file written when no --swatch.filename is given.
const DefaultFilename = "swatches.png"

// Layout in pixels.
const (
	padding          = 8
	defaultRowHeight = 24
	labelWidth       = 280
	swatchWidth      = 160
	imageWidth       = labelWidth + len(modeColumns)*swatchWidth
)

var modeColumns = [...]tokens.Mode{tokens.Light, tokens.Dark}

var (
	sheetBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelColour     = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	missingColour   = color.RGBA{R: 204, G: 204, B: 204, A: 255}
)

// Plugin implements the output.Plugin interface for PNG swatch sheets.
type Plugin struct {
	filename  string
	rowHeight int
}

// New creates a new swatch output plugin.
func New() *Plugin {
	return &Plugin{filename: DefaultFilename, rowHeight: defaultRowHeight}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "swatch"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Render a PNG sheet with a light and dark swatch for every token"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, "swatch.filename", DefaultFilename, "Name of the generated PNG")
	cmd.Flags().IntVar(&p.rowHeight, "swatch.row-height", defaultRowHeight, "Height of each swatch row in pixels")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" || filepath.Base(p.filename) != p.filename {
		return fmt.Errorf("invalid swatch filename %q (must be a bare file name)", p.filename)
	}
	if p.rowHeight < 16 || p.rowHeight > 256 {
		return fmt.Errorf("invalid swatch row height %d (must be between 16 and 256)", p.rowHeight)
	}
	return nil
}

// Generate draws one row per token. Labels on each swatch use whichever of
// black or white contrasts more with it.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Document == nil {
		return nil, output.ErrNilDocument
	}

	img := p.Render(data.Document)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch sheet: %w", err)
	}

	return map[string][]byte{p.filename: buf.Bytes()}, nil
}

// Render draws the swatch sheet for doc.
func (p *Plugin) Render(doc *tokens.Document) *image.RGBA {
	keys := lo.Uniq(append(doc.Keys(tokens.Light), doc.Keys(tokens.Dark)...))
	slices.Sort(keys)

	rows := len(keys) + 1
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, rows*p.rowHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	// Header row.
	drawText(img, padding, p.baseline(0), "token", labelColour)
	for col, mode := range modeColumns {
		drawText(img, labelWidth+col*swatchWidth+padding, p.baseline(0), mode.String(), labelColour)
	}

	for i, key := range keys {
		row := i + 1
		drawText(img, padding, p.baseline(row), key, labelColour)

		for col, mode := range modeColumns {
			cell := image.Rect(
				labelWidth+col*swatchWidth, row*p.rowHeight,
				labelWidth+(col+1)*swatchWidth, (row+1)*p.rowHeight,
			)
			p.drawSwatch(img, cell, doc.Values(mode)[key])
		}
	}

	return img
}

func (p *Plugin) drawSwatch(img *image.RGBA, cell image.Rectangle, value string) {
	rgb, ok := colour.Parse(value)
	if !ok {
		draw.Draw(img, cell, image.NewUniform(missingColour), image.Point{}, draw.Src)
		label := "missing"
		if value != "" {
			label = "invalid"
		}
		drawText(img, cell.Min.X+padding, cell.Max.Y-p.textOffset(), label, labelColour)
		return
	}

	draw.Draw(img, cell, image.NewUniform(rgb.Color()), image.Point{}, draw.Src)
	drawText(img, cell.Min.X+padding, cell.Max.Y-p.textOffset(), rgb.Hex(), colour.BestTextColour(rgb).Color())
}

// baseline returns the y coordinate of text in row.
func (p *Plugin) baseline(row int) int {
	return (row+1)*p.rowHeight - p.textOffset()
}

// textOffset vertically centres basicfont glyphs in a row.
func (p *Plugin) textOffset() int {
	face := basicfont.Face7x13
	return (p.rowHeight-face.Height)/2 + face.Descent
}

func drawText(img draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
