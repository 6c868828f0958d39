package color

import "math"

// HSL is a colour decomposed into hue (degrees, [0,360)), saturation and
// luminance (both [0,1]).
type HSL struct {
	Hue        float64
	Saturation float64
	Luminance  float64
}

// ToHSL converts an RGB colour to HSL. Achromatic colours (all channels
// equal) have hue and saturation 0.
func ToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := max(r, g, b)
	lo := min(r, g, b)

	l := (hi + lo) / 2
	if hi == lo {
		return HSL{Luminance: l}
	}

	delta := hi - lo
	var s float64
	if l <= 0.5 {
		s = delta / (hi + lo)
	} else {
		s = delta / (2 - hi - lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}

	return HSL{
		Hue:        wrapDegrees(h * 60),
		Saturation: s,
		Luminance:  l,
	}
}

// wrapDegrees reduces h into [0,360) with a non-negative remainder.
func wrapDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	switch {
	case h < 0:
		h += 360
	case h == 0:
		// folds -0
		return 0
	}
	if h >= 360 {
		return 0
	}
	return h
}
