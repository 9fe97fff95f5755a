package raster

import (
	"math"

	"github.com/gogpu/gradient"
)

// Shader maps a pixel position to an offset along the gradient, where 0 is
// the first stop position and 1 the last possible one (100%). Offsets
// outside [0, 1] are padded by the ramp.
type Shader interface {
	Offset(x, y float64) float64
}

// NewShader returns the shader for d on a width×height surface.
func NewShader(d *gradient.Descriptor, width, height int) Shader {
	w, h := float64(width), float64(height)
	switch g := d.Geometry.(type) {
	case gradient.RadialGeometry:
		return newRadialShader(g, w, h)
	case gradient.AngularGeometry:
		return newConicShader(g, w, h)
	case gradient.LinearGeometry:
		return newLinearShader(g, w, h)
	}
	return constShader(0)
}

type constShader float64

func (c constShader) Offset(float64, float64) float64 { return float64(c) }

// linearShader projects onto the CSS gradient line: it passes through the
// box center along the angle, and is just long enough that the corners
// opposite each other receive offsets 0 and 1.
type linearShader struct {
	cx, cy float64
	dx, dy float64 // unit direction
	length float64
}

func newLinearShader(g gradient.LinearGeometry, w, h float64) Shader {
	rad := g.AngleDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	length := math.Abs(w*sin) + math.Abs(h*cos)
	if length == 0 {
		return constShader(0)
	}
	// CSS 0deg points up; y grows downwards.
	return &linearShader{cx: w / 2, cy: h / 2, dx: sin, dy: -cos, length: length}
}

func (s *linearShader) Offset(x, y float64) float64 {
	px, py := x-s.cx, y-s.cy
	return (px*s.dx+py*s.dy)/s.length + 0.5
}

// radialShader is a circle around the center whose radius reaches the
// farthest corner of the box.
type radialShader struct {
	cx, cy float64
	radius float64
}

func newRadialShader(g gradient.RadialGeometry, w, h float64) Shader {
	g = g.Clamp()
	cx, cy := w*g.CenterX/100, h*g.CenterY/100
	r := 0.0
	for _, corner := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		r = math.Max(r, math.Hypot(corner[0]-cx, corner[1]-cy))
	}
	if r == 0 {
		return constShader(1)
	}
	return &radialShader{cx: cx, cy: cy, radius: r}
}

func (s *radialShader) Offset(x, y float64) float64 {
	return math.Hypot(x-s.cx, y-s.cy) / s.radius
}

// conicShader sweeps clockwise through one revolution starting at the
// CSS "from" angle, where 0deg points up.
type conicShader struct {
	cx, cy float64
	start  float64 // radians, measured clockwise from up
}

func newConicShader(g gradient.AngularGeometry, w, h float64) Shader {
	g = g.Clamp()
	return &conicShader{
		cx:    w * g.CenterX / 100,
		cy:    h * g.CenterY / 100,
		start: g.StartAngleDegrees * math.Pi / 180,
	}
}

func (s *conicShader) Offset(x, y float64) float64 {
	dx, dy := x-s.cx, y-s.cy
	if dx == 0 && dy == 0 {
		return 0
	}
	// atan2 in y-down space already grows clockwise; shift so up is zero.
	angle := math.Atan2(dy, dx) + math.Pi/2 - s.start
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi)
}
