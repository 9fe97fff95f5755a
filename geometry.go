package gradient

import (
	"fmt"
	"math"
	"strings"
)

// Type selects the gradient variant. Exactly one is active at a time.
type Type int

const (
	// Linear is a gradient along a direction given by an angle.
	Linear Type = iota
	// Radial is a circular gradient around a center.
	Radial
	// Angular is a conic sweep around a center.
	Angular
)

// String returns the lower-case name used by presets and flags.
func (t Type) String() string {
	switch t {
	case Linear:
		return "linear"
	case Radial:
		return "radial"
	case Angular:
		return "angular"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType parses a gradient type name. "conic" is accepted for Angular.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "radial":
		return Radial, nil
	case "angular", "conic":
		return Angular, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Geometry holds the type-specific parameters of a gradient. It is
// implemented by LinearGeometry, RadialGeometry and AngularGeometry only.
type Geometry interface {
	Type() Type
	clamped() Geometry
}

// UnitPoint is a point in the unit square used by native gradient APIs,
// (0,0) top-left and (1,1) bottom-right.
type UnitPoint struct {
	X, Y float64
}

// LinearGeometry is the direction of a linear gradient. The angle is not
// bounded; trigonometry treats it modulo 360.
type LinearGeometry struct {
	AngleDegrees float64
}

// RadialGeometry is a circle in percent of the box. Centers and the start
// radius lie in [0, 100]; the end radius in [1, 100].
type RadialGeometry struct {
	CenterX, CenterY float64
	StartRadius      float64
	EndRadius        float64
}

// AngularGeometry is a conic sweep around a center given in percent,
// starting at StartAngleDegrees and covering one full revolution.
type AngularGeometry struct {
	CenterX, CenterY  float64
	StartAngleDegrees float64
}

// DefaultLinear returns the geometry of a fresh linear gradient.
func DefaultLinear() LinearGeometry { return LinearGeometry{AngleDegrees: 90} }

// DefaultRadial returns the geometry of a fresh radial gradient.
func DefaultRadial() RadialGeometry {
	return RadialGeometry{CenterX: 50, CenterY: 50, StartRadius: 0, EndRadius: 100}
}

// DefaultAngular returns the geometry of a fresh angular gradient.
func DefaultAngular() AngularGeometry {
	return AngularGeometry{CenterX: 50, CenterY: 50}
}

func (LinearGeometry) Type() Type  { return Linear }
func (RadialGeometry) Type() Type  { return Radial }
func (AngularGeometry) Type() Type { return Angular }

func (g LinearGeometry) clamped() Geometry {
	if math.IsNaN(g.AngleDegrees) || math.IsInf(g.AngleDegrees, 0) {
		g.AngleDegrees = 0
	}
	return g
}

func (g RadialGeometry) clamped() Geometry  { return g.Clamp() }
func (g AngularGeometry) clamped() Geometry { return g.Clamp() }

// UnitPoints maps the angle to start and end points in the unit square.
// The direction (cos θ, sin θ) is scaled so its larger component is ±1,
// then centered on (0.5, 0.5). Angle 0 runs left to right, 90 top to
// bottom.
func (g LinearGeometry) UnitPoints() (start, end UnitPoint) {
	rad := g.AngleDegrees * math.Pi / 180
	vx, vy := math.Cos(rad), math.Sin(rad)
	m := math.Max(math.Abs(vx), math.Abs(vy))
	if m == 0 || math.IsNaN(m) {
		m = 1
	}
	nx, ny := vx/m, vy/m
	start = UnitPoint{X: 0.5 - 0.5*nx, Y: 0.5 - 0.5*ny}
	end = UnitPoint{X: 0.5 + 0.5*nx, Y: 0.5 + 0.5*ny}
	return start, end
}

// Clamp returns g with every field inside its valid range.
func (g RadialGeometry) Clamp() RadialGeometry {
	return RadialGeometry{
		CenterX:     clampPercent(g.CenterX, 50),
		CenterY:     clampPercent(g.CenterY, 50),
		StartRadius: clampPercent(g.StartRadius, 0),
		EndRadius:   clampRange(g.EndRadius, 1, 100, 100),
	}
}

// Unit returns the clamped center and radii in unit space.
func (g RadialGeometry) Unit() (center UnitPoint, startRadius, endRadius float64) {
	c := g.Clamp()
	return UnitPoint{X: c.CenterX / 100, Y: c.CenterY / 100}, c.StartRadius / 100, c.EndRadius / 100
}

// Clamp returns g with its center inside [0, 100].
func (g AngularGeometry) Clamp() AngularGeometry {
	start := g.StartAngleDegrees
	if math.IsNaN(start) || math.IsInf(start, 0) {
		start = 0
	}
	return AngularGeometry{
		CenterX:           clampPercent(g.CenterX, 50),
		CenterY:           clampPercent(g.CenterY, 50),
		StartAngleDegrees: start,
	}
}

// Unit returns the clamped center in unit space and the sweep in degrees.
// The end angle is always exactly one revolution past the start.
func (g AngularGeometry) Unit() (center UnitPoint, startAngle, endAngle float64) {
	c := g.Clamp()
	return UnitPoint{X: c.CenterX / 100, Y: c.CenterY / 100}, c.StartAngleDegrees, c.StartAngleDegrees + 360
}

func clampPercent(v, fallback float64) float64 {
	return clampRange(v, 0, 100, fallback)
}

func clampRange(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return clamp(v, lo, hi)
}
