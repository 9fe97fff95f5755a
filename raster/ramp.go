package raster

import (
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/gradient"
	lincolor "github.com/gogpu/gradient/internal/color"
)

// rampStop is a color stop with its offset in [0, 1].
type rampStop struct {
	offset float64
	c      gradient.RGBA
}

// ramp maps gradient offsets to colors. Offsets before the first stop take
// its color, offsets after the last stop take the last color, and stops at
// equal offsets produce a hard edge.
type ramp struct {
	stops []rampStop
	mode  Interpolation
}

func newRamp(stops []gradient.ColorStop, mode Interpolation) *ramp {
	r := &ramp{stops: make([]rampStop, len(stops)), mode: mode}
	for i, s := range stops {
		r.stops[i] = rampStop{offset: s.Position / 100, c: s.RGBA()}
	}
	sort.SliceStable(r.stops, func(i, j int) bool {
		return r.stops[i].offset < r.stops[j].offset
	})
	return r
}

func (r *ramp) at(t float64) color.NRGBA {
	if len(r.stops) == 0 {
		return color.NRGBA{}
	}
	if math.IsNaN(t) {
		t = 0
	}
	idx := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].offset >= t
	})
	if idx == 0 {
		return r.stops[0].c.Color()
	}
	if idx >= len(r.stops) {
		return r.stops[len(r.stops)-1].c.Color()
	}

	s1, s2 := r.stops[idx-1], r.stops[idx]
	if s2.offset == s1.offset {
		return s2.c.Color()
	}
	local := (t - s1.offset) / (s2.offset - s1.offset)
	return r.interpolate(s1.c, s2.c, local)
}

func (r *ramp) interpolate(a, b gradient.RGBA, t float64) color.NRGBA {
	switch r.mode {
	case LinearRGB:
		return interpolateLinear(a, b, t)
	case Lab:
		return interpolateLab(a, b, t)
	default:
		return interpolateSRGB(a, b, t)
	}
}

// interpolateSRGB blends premultiplied sRGB values, as CSS does, so a
// transparent stop does not drag its hidden color into the blend.
func interpolateSRGB(a, b gradient.RGBA, t float64) color.NRGBA {
	alpha := lerp(a.A, b.A, t)
	if alpha <= 0 {
		return color.NRGBA{}
	}
	ch := func(ca, cb uint8) uint8 {
		pa := float64(ca) / 255 * a.A
		pb := float64(cb) / 255 * b.A
		return to8(lerp(pa, pb, t) / alpha)
	}
	return color.NRGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: to8(alpha)}
}

// interpolateLinear blends premultiplied linear-light values.
func interpolateLinear(a, b gradient.RGBA, t float64) color.NRGBA {
	la := lincolor.Decode(a.R, a.G, a.B, a.A)
	lb := lincolor.Decode(b.R, b.G, b.B, b.A)
	m := premultiply(la).Lerp(premultiply(lb), t)
	if m.A <= 0 {
		return color.NRGBA{}
	}
	m.R, m.G, m.B = m.R/m.A, m.G/m.A, m.B/m.A
	cr, cg, cb, ca := m.Encode()
	return color.NRGBA{R: cr, G: cg, B: cb, A: to8(ca)}
}

func premultiply(c lincolor.Linear) lincolor.Linear {
	return lincolor.Linear{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// interpolateLab blends in CIE L*a*b*; alpha is blended separately.
func interpolateLab(a, b gradient.RGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	cr, cg, cbl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.NRGBA{R: cr, G: cg, B: cbl, A: to8(lerp(a.A, b.A, t))}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}
