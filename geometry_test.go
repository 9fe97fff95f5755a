package gradient

import (
	"errors"
	"math"
	"testing"
)

const unitEpsilon = 1e-9

func pointNear(a, b UnitPoint) bool {
	return math.Abs(a.X-b.X) < unitEpsilon && math.Abs(a.Y-b.Y) < unitEpsilon
}

func TestLinearUnitPoints(t *testing.T) {
	tests := []struct {
		name       string
		angle      float64
		start, end UnitPoint
	}{
		{"0 left to right", 0, UnitPoint{0, 0.5}, UnitPoint{1, 0.5}},
		{"90 top to bottom", 90, UnitPoint{0.5, 0}, UnitPoint{0.5, 1}},
		{"180 right to left", 180, UnitPoint{1, 0.5}, UnitPoint{0, 0.5}},
		{"45 corner to corner", 45, UnitPoint{0, 0}, UnitPoint{1, 1}},
		{"360 wraps", 360, UnitPoint{0, 0.5}, UnitPoint{1, 0.5}},
		{"-90 bottom to top", -90, UnitPoint{0.5, 1}, UnitPoint{0.5, 0}},
		{"30 hits the side", 30, UnitPoint{0, 0.5 - 0.5*math.Tan(math.Pi/6)}, UnitPoint{1, 0.5 + 0.5*math.Tan(math.Pi/6)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := LinearGeometry{AngleDegrees: tt.angle}.UnitPoints()
			if !pointNear(start, tt.start) || !pointNear(end, tt.end) {
				t.Errorf("UnitPoints(%v) = %v, %v; want %v, %v", tt.angle, start, end, tt.start, tt.end)
			}
		})
	}
}

// Points always stay inside the unit square and are symmetric around
// its center.
func TestLinearUnitPointsInSquare(t *testing.T) {
	for a := -720.0; a <= 720; a += 7.5 {
		start, end := LinearGeometry{AngleDegrees: a}.UnitPoints()
		for _, p := range []UnitPoint{start, end} {
			if p.X < -unitEpsilon || p.X > 1+unitEpsilon || p.Y < -unitEpsilon || p.Y > 1+unitEpsilon {
				t.Fatalf("angle %v: point %v outside unit square", a, p)
			}
		}
		if math.Abs(start.X+end.X-1) > unitEpsilon || math.Abs(start.Y+end.Y-1) > unitEpsilon {
			t.Fatalf("angle %v: %v and %v not symmetric", a, start, end)
		}
	}
}

func TestRadialUnit(t *testing.T) {
	tests := []struct {
		name   string
		g      RadialGeometry
		center UnitPoint
		sr, er float64
	}{
		{"defaults", DefaultRadial(), UnitPoint{0.5, 0.5}, 0, 1},
		{"percent to unit", RadialGeometry{25, 75, 10, 60}, UnitPoint{0.25, 0.75}, 0.1, 0.6},
		{"end radius zero coerced to one", RadialGeometry{50, 50, 0, 0}, UnitPoint{0.5, 0.5}, 0, 0.01},
		{"out of range clamped", RadialGeometry{-10, 150, 120, 500}, UnitPoint{0, 1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sr, er := tt.g.Unit()
			if !pointNear(c, tt.center) || math.Abs(sr-tt.sr) > unitEpsilon || math.Abs(er-tt.er) > unitEpsilon {
				t.Errorf("Unit() = %v, %v, %v; want %v, %v, %v", c, sr, er, tt.center, tt.sr, tt.er)
			}
		})
	}
}

func TestRadialClampEndRadius(t *testing.T) {
	if got := (RadialGeometry{EndRadius: 0}).Clamp().EndRadius; got != 1 {
		t.Errorf("Clamp().EndRadius = %v, want 1", got)
	}
	if got := (RadialGeometry{EndRadius: math.NaN()}).Clamp().EndRadius; got != 100 {
		t.Errorf("Clamp().EndRadius for NaN = %v, want 100", got)
	}
}

func TestAngularEndIsFullTurn(t *testing.T) {
	for _, start := range []float64{0, 45, -30, 359.5, 720, 0.1, -1e6} {
		_, s, e := AngularGeometry{CenterX: 50, CenterY: 50, StartAngleDegrees: start}.Unit()
		if s != start || e != start+360 {
			t.Errorf("start %v: Unit() angles = %v, %v; want %v, %v", start, s, e, start, start+360)
		}
	}
}

func TestAngularUnitCenter(t *testing.T) {
	c, _, _ := AngularGeometry{CenterX: 120, CenterY: 25}.Unit()
	if !pointNear(c, UnitPoint{1, 0.25}) {
		t.Errorf("center = %v, want {1 0.25}", c)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"linear", Linear},
		{"Radial", Radial},
		{"angular", Angular},
		{"conic", Angular},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseType("diamond"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ParseType(diamond) error = %v, want ErrUnknownType", err)
	}
	for _, typ := range []Type{Linear, Radial, Angular} {
		if got, _ := ParseType(typ.String()); got != typ {
			t.Errorf("ParseType(%v.String()) = %v", typ, got)
		}
	}
}
