package gradient

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB color with a straight (non-premultiplied) alpha in [0, 1].
// It is derived from a ColorStop on every render and never stored.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// ParseHex parses a 3- or 6-digit hexadecimal color, with or without a
// leading '#'. The 3-digit form expands by digit duplication, so "f0a"
// equals "ff00aa". Anything else fails with ErrInvalidColorFormat.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	var v [6]uint8
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
		v[i] = d
	}
	return RGB{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for constants and tests.
func MustParseHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParseColor accepts everything ParseHex does plus CSS/SVG color keywords
// such as "rebeccapurple" or "navy". Hex wins when a string is both.
func ParseColor(s string) (RGB, error) {
	c, err := ParseHex(s)
	if err == nil {
		return c, nil
	}
	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return RGB{R: named.R, G: named.G, B: named.B}, nil
	}
	return RGB{}, err
}

// Hex returns the canonical lower-case "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha combines c with an opacity clamped to [0, 1].
func (c RGB) WithAlpha(opacity float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: ClampOpacity(opacity)}
}

// ToRGBA parses hex and attaches the clamped opacity.
func ToRGBA(hex string, opacity float64) (RGBA, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return RGBA{}, err
	}
	return c.WithAlpha(opacity), nil
}

// CSS renders the color as "rgba(r,g,b,a)".
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, FormatNumber(c.A))
}

// SwiftUI renders the color as a SwiftUI Color literal with each channel
// expressed as a fraction of 255.
func (c RGBA) SwiftUI() string {
	return fmt.Sprintf("Color(red: %s, green: %s, blue: %s, opacity: %s)",
		channel(c.R), channel(c.G), channel(c.B), FormatFixed(c.A, 3))
}

func channel(v uint8) string {
	return FormatFixed(float64(v)/255, 3)
}

// FormatCSSRGBA is the function form of RGBA.CSS.
func FormatCSSRGBA(c RGBA) string { return c.CSS() }

// FormatNativeColor is the function form of RGBA.SwiftUI.
func FormatNativeColor(c RGBA) string { return c.SwiftUI() }

// Color converts c to the standard library color model.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}
