// Package raster draws a gradient.Descriptor into pixels and packages the
// result as image files, multi-size archives and iOS image sets.
//
// Geometry follows CSS so that exported images match the live CSS
// preview: linear angles use the CSS convention (0deg points up, angles
// grow clockwise), radial gradients are circles reaching the farthest
// corner, and conic gradients sweep clockwise from their start angle.
//
// Usage:
//
//	img, err := raster.Render(d, 512, 512)
//	if err != nil {
//	    return err
//	}
//	err = raster.Encode(w, img, raster.PNG)
package raster

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/internal/parallel"
)

// MaxSize bounds the width and height of a rendered image.
const MaxSize = 8192

// ErrInvalidSize is returned for image dimensions outside [1, MaxSize].
var ErrInvalidSize = errors.New("raster: invalid image size")

// Render draws d into a new width×height image.
func Render(d *gradient.Descriptor, width, height int, opts ...Option) (*image.NRGBA, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if d == nil || len(d.Stops) == 0 {
		return nil, gradient.ErrEmptyStopList
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var key cacheKey
	if o.cache != nil {
		key = newCacheKey(d, width, height, o)
		if img, ok := o.cache.get(key); ok {
			return img, nil
		}
	}

	start := time.Now()
	n := o.supersample
	for n > 1 && (width*n > MaxSize || height*n > MaxSize) {
		n--
	}
	img := image.NewNRGBA(image.Rect(0, 0, width*n, height*n))
	fill(img, NewShader(d, width*n, height*n), newRamp(d.Stops, o.interpolation))

	if n > 1 {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = dst
	}

	gradient.Logger().Debug("raster rendered",
		"type", d.Type(),
		"width", width,
		"height", height,
		"supersample", n,
		"interpolation", o.interpolation,
		"elapsed", time.Since(start))
	if o.cache != nil {
		o.cache.put(key, img)
	}
	return img, nil
}

// Images with at least this many pixels are shaded in row bands on the
// shared pool.
const (
	parallelThreshold = 256 * 256
	bandHeight        = 16
)

var sharedPool = sync.OnceValue(func() *parallel.Pool {
	return parallel.NewPool(0)
})

// fill shades every pixel at its center.
func fill(img *image.NRGBA, s Shader, r *ramp) {
	h := img.Bounds().Dy()
	if img.Bounds().Dx()*h < parallelThreshold {
		fillRows(img, s, r, 0, h)
		return
	}
	sharedPool().Rows(h, bandHeight, func(y0, y1 int) {
		fillRows(img, s, r, y0, y1)
	})
}

func fillRows(img *image.NRGBA, s Shader, r *ramp, y0, y1 int) {
	w := img.Bounds().Dx()
	for y := y0; y < y1; y++ {
		row := img.Pix[y*img.Stride:]
		for x := range w {
			c := r.at(s.Offset(float64(x)+0.5, float64(y)+0.5))
			i := x * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

func checkSize(width, height int) error {
	if width < 1 || height < 1 || width > MaxSize || height > MaxSize {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}
