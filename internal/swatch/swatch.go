// Package swatch draws a gradient into a terminal using half-block cells.
//
// Each cell covers two pixels: the upper one is the foreground of "▀" and
// the lower one the background. Translucent pixels are composited over a
// gray checkerboard so opacity stays visible.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/raster"
)

const halfBlock = "▀"

// Checkerboard tones behind translucent cells.
var (
	checkLight = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	checkDark  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Render rasterizes d at cols x 2*rows pixels and returns rows lines of
// styled cells separated by newlines.
func Render(d *gradient.Descriptor, cols, rows int, opts ...raster.Option) (string, error) {
	if cols <= 0 || rows <= 0 {
		return "", fmt.Errorf("%w: %dx%d cells", raster.ErrInvalidSize, cols, rows)
	}
	img, err := raster.Render(d, cols, rows*2, opts...)
	if err != nil {
		return "", err
	}
	return cells(img, cols, rows), nil
}

func cells(img *image.NRGBA, cols, rows int) string {
	var b strings.Builder
	for y := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range cols {
			bg := checkDark
			if (x/2+y)%2 == 0 {
				bg = checkLight
			}
			top := over(img.NRGBAAt(x, 2*y), bg)
			bottom := over(img.NRGBAAt(x, 2*y+1), bg)
			b.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(halfBlock))
		}
	}
	return b.String()
}

// over composites c onto an opaque background.
func over(c, bg color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	mix := func(f, b uint8) uint8 {
		return uint8((uint32(f)*a + uint32(b)*(255-a) + 127) / 255)
	}
	return color.NRGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 0xff}
}
