package gradient

import "fmt"

// Descriptor is the complete, renderer-agnostic description of one
// configured gradient. It is assembled fresh for every render pass and is
// not meant to be kept or mutated afterwards.
type Descriptor struct {
	// Stops in ascending position order; never empty.
	Stops []ColorStop
	// Geometry matching the gradient type.
	Geometry Geometry
}

// NewDescriptor validates and assembles a descriptor. The stops are
// copied, clamped and sorted by position; the geometry is clamped.
func NewDescriptor(stops []ColorStop, g Geometry) (*Descriptor, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyStopList
	}
	if g == nil {
		return nil, fmt.Errorf("%w: nil geometry", ErrUnknownType)
	}
	clampedStops := make([]ColorStop, len(stops))
	for i, s := range stops {
		clampedStops[i] = clampStop(s)
	}
	d := &Descriptor{
		Stops:    sortStops(clampedStops),
		Geometry: g.clamped(),
	}
	Logger().Debug("descriptor assembled", "type", d.Type(), "stops", len(d.Stops))
	return d, nil
}

// Type returns the gradient type implied by the geometry.
func (d *Descriptor) Type() Type {
	return d.Geometry.Type()
}

// Colors returns the RGBA value of every stop in render order.
func (d *Descriptor) Colors() []RGBA {
	out := make([]RGBA, len(d.Stops))
	for i, s := range d.Stops {
		out[i] = s.RGBA()
	}
	return out
}
