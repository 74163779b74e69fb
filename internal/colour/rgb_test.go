package colour

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBColor(t *testing.T) {
	want := color.RGBA{R: 0, G: 87, B: 163, A: 255}
	if got := (RGB{R: 0, G: 87, B: 163}).Color(); got != want {
		t.Errorf("Color() = %#v, want %#v", got, want)
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 0, G: 87, B: 163}
	if got := rgb.String(); got != "rgb(0, 87, 163)" {
		t.Errorf("String() = %s, want rgb(0, 87, 163)", got)
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "red", rgb: RGB{R: 255}, want: HSL{H: 0, S: 1, L: 0.5}},
		{name: "green", rgb: RGB{G: 255}, want: HSL{H: 120, S: 1, L: 0.5}},
		{name: "blue", rgb: RGB{B: 255}, want: HSL{H: 240, S: 1, L: 0.5}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: HSL{H: 0, S: 0, L: 1}},
		{name: "black", rgb: RGB{}, want: HSL{H: 0, S: 0, L: 0}},
		{name: "magenta side", rgb: RGB{R: 255, B: 128}, want: HSL{H: 329.88235294117646, S: 1, L: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.HSL()
			if math.Abs(got.H-tt.want.H) > 1e-9 || math.Abs(got.S-tt.want.S) > 1e-9 || math.Abs(got.L-tt.want.L) > 1e-9 {
				t.Errorf("HSL() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
