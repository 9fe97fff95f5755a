// Package color converts between gamma-encoded sRGB and linear light.
//
// Gradient ramps interpolate either directly on sRGB values, as browsers do
// for CSS gradients, or in linear light, which avoids the dark band between
// saturated complementary colors. This package supplies the transfer
// functions for the second mode.
package color

import "math"

// Linear is a color with linear-light RGB components and straight alpha,
// all in [0, 1].
type Linear struct {
	R, G, B, A float64
}

// ToLinear decodes an sRGB component in [0, 1] (the sRGB EOTF).
func ToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// FromLinear encodes a linear component in [0, 1] back to sRGB (the OETF).
// Input outside [0, 1] is clamped.
func FromLinear(l float64) float64 {
	switch {
	case l <= 0:
		return 0
	case l >= 1:
		return 1
	case l <= 0.0031308:
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// Decode converts 8-bit sRGB channels and an alpha to linear light.
func Decode(r, g, b uint8, a float64) Linear {
	return Linear{R: DecodeByte(r), G: DecodeByte(g), B: DecodeByte(b), A: a}
}

// Lerp interpolates between c and o in linear light. Alpha is interpolated
// as is; it is never gamma-encoded.
func (c Linear) Lerp(o Linear, t float64) Linear {
	return Linear{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Encode converts c back to 8-bit sRGB channels. Alpha is returned in [0, 1].
func (c Linear) Encode() (r, g, b uint8, a float64) {
	return EncodeByte(c.R), EncodeByte(c.G), EncodeByte(c.B), math.Min(1, math.Max(0, c.A))
}
