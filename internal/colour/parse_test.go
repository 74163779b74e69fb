package colour

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{name: "hex white", input: "#ffffff", want: RGB{R: 255, G: 255, B: 255}},
		{name: "hex short black", input: "#000", want: RGB{}},
		{name: "hex mixed case", input: "#1A2b3C", want: RGB{R: 26, G: 43, B: 60}},
		{name: "hex short expands", input: "#abc", want: RGB{R: 170, G: 187, B: 204}},
		{name: "hex without hash", input: "0057a3", want: RGB{R: 0, G: 87, B: 163}},
		{name: "hex with whitespace", input: "  #ff0000 ", want: RGB{R: 255}},
		{name: "rgb function", input: "rgb(255, 0, 0)", want: RGB{R: 255}},
		{name: "rgb compact", input: "rgb(0,87,163)", want: RGB{R: 0, G: 87, B: 163}},
		{name: "bare hsl triple", input: "208 100% 32%", want: RGB{R: 0, G: 87, B: 163}},
		{name: "bare hsl decimals", input: "0 0% 100%", want: RGB{R: 255, G: 255, B: 255}},
		{name: "hsl function", input: "hsl(208, 100%, 32%)", want: RGB{R: 0, G: 87, B: 163}},
		{name: "hsl function spaces", input: "hsl(208 100% 32%)", want: RGB{R: 0, G: 87, B: 163}},
		{name: "hsl negative hue", input: "hsl(-120, 100%, 50%)", want: RGB{B: 255}},
		{name: "hsl deg unit", input: "hsl(360deg, 100%, 50%)", want: RGB{R: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Parse(%q) reported invalid", tt.input)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"#12",
		"#ggg",
		"#12345",
		"rgb(256, 0, 0)",
		"rgb(1, 2)",
		"rgb(-1, 0, 0)",
		"hsl(10, 200%, 50%)",
		"208 100 32",
		"1.2.3 4% 5%",
		"NaN 10% 10%",
		"blue",
		"var(--color-blue-500)",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if got, ok := Parse(in); ok {
				t.Errorf("Parse(%q) = %+v, want invalid", in, got)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	colours := []RGB{
		{},
		{R: 255, G: 255, B: 255},
		{R: 1, G: 2, B: 3},
		{R: 0, G: 87, B: 163},
		{R: 250, G: 128, B: 114},
	}

	for _, want := range colours {
		got, ok := Parse(want.Hex())
		if !ok || got != want {
			t.Errorf("Parse(%s) = %+v (ok=%v), want %+v", want.Hex(), got, ok, want)
		}
	}
}

func TestParseHSL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  HSL
	}{
		{name: "bare triple is exact", input: "208 100% 32%", want: HSL{H: 208, S: 1, L: 0.32}},
		{name: "function is exact", input: "hsl(208, 100%, 32%)", want: HSL{H: 208, S: 1, L: 0.32}},
		{name: "hex converts", input: "#ff0000", want: HSL{H: 0, S: 1, L: 0.5}},
		{name: "rgb converts", input: "rgb(0, 0, 255)", want: HSL{H: 240, S: 1, L: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHSL(tt.input)
			if !ok {
				t.Fatalf("ParseHSL(%q) reported invalid", tt.input)
			}
			if got != tt.want {
				t.Errorf("ParseHSL(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}

	if _, ok := ParseHSL("not a colour"); ok {
		t.Error("ParseHSL() accepted garbage")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("nope")
}

func TestIsHSLTriple(t *testing.T) {
	for input, want := range map[string]bool{
		"208 100% 32%":        true,
		" 0 0% 100% ":         true,
		"hsl(208, 100%, 32%)": false,
		"#0057a3":             false,
		"208 100 32":          false,
	} {
		if got := IsHSLTriple(input); got != want {
			t.Errorf("IsHSLTriple(%q) = %v, want %v", input, got, want)
		}
	}
}
