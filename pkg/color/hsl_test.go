package color_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/goliatone/go-base16/pkg/color"
)

func TestToHSL(t *testing.T) {
	tests := []struct {
		name  string
		input color.RGB
		h     string
		s     string
		l     string
	}{
		{"gray", color.RGB{R: 128, G: 128, B: 128}, "0.00", "0.00", "0.50"},
		{"black", color.RGB{}, "0.00", "0.00", "0.00"},
		{"white", color.RGB{R: 255, G: 255, B: 255}, "0.00", "0.00", "1.00"},
		{"red", color.RGB{R: 255}, "0.00", "1.00", "0.50"},
		{"green", color.RGB{G: 255}, "120.00", "1.00", "0.50"},
		{"blue", color.RGB{B: 255}, "240.00", "1.00", "0.50"},
		{"magenta", color.RGB{R: 255, B: 255}, "300.00", "1.00", "0.50"},
		{"rose", color.RGB{R: 255, B: 1}, "359.76", "1.00", "0.50"},
		{"base00", color.MustParseHex("7cafc2"), "196.29", "0.36", "0.62"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := color.ToHSL(test.input)
			if h := format2(got.Hue); h != test.h {
				t.Errorf("hue: want %s, got %s (%v)", test.h, h, got.Hue)
			}
			if s := format2(got.Saturation); s != test.s {
				t.Errorf("saturation: want %s, got %s (%v)", test.s, s, got.Saturation)
			}
			if l := format2(got.Luminance); l != test.l {
				t.Errorf("luminance: want %s, got %s (%v)", test.l, l, got.Luminance)
			}
		})
	}
}

func TestToHSL_HueRange(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				hsl := c.HSL()
				if hsl.Hue < 0 || hsl.Hue >= 360 || math.Signbit(hsl.Hue) {
					t.Fatalf("%s: hue %v out of [0,360)", c, hsl.Hue)
				}
				if hsl.Saturation < 0 || hsl.Saturation > 1 {
					t.Fatalf("%s: saturation %v out of [0,1]", c, hsl.Saturation)
				}
				if hsl.Luminance < 0 || hsl.Luminance > 1 {
					t.Fatalf("%s: luminance %v out of [0,1]", c, hsl.Luminance)
				}
			}
		}
	}
}

func TestToHSL_MatchesColorful(t *testing.T) {
	const epsilon = 1e-9
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				ref := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
				wantH, wantS, wantL := ref.Hsl()

				got := color.ToHSL(c)
				if math.Abs(got.Hue-wantH) > epsilon {
					t.Fatalf("%s: hue want %v, got %v", c, wantH, got.Hue)
				}
				if math.Abs(got.Saturation-wantS) > epsilon {
					t.Fatalf("%s: saturation want %v, got %v", c, wantS, got.Saturation)
				}
				if math.Abs(got.Luminance-wantL) > epsilon {
					t.Fatalf("%s: luminance want %v, got %v", c, wantL, got.Luminance)
				}
			}
		}
	}
}

func format2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
