package gradient

// Editor is the mutable state behind an interactive gradient editor: the
// selected type, one geometry per type and the stop list. Geometry of the
// inactive types is retained so switching back restores it.
//
// An Editor is not safe for concurrent use. Descriptor assembles a new
// descriptor on every call; nothing is cached between passes.
type Editor struct {
	typ     Type
	linear  LinearGeometry
	radial  RadialGeometry
	angular AngularGeometry
	stops   *StopList
}

// NewEditor returns an editor with a linear gradient and the default stops.
func NewEditor() *Editor {
	e := &Editor{}
	e.Reset()
	return e
}

// Reset restores every field to its default.
func (e *Editor) Reset() {
	e.typ = Linear
	e.linear = DefaultLinear()
	e.radial = DefaultRadial()
	e.angular = DefaultAngular()
	e.stops = NewStopList()
}

// Type returns the selected gradient type.
func (e *Editor) Type() Type { return e.typ }

// SetType selects the active gradient type.
func (e *Editor) SetType(t Type) error {
	switch t {
	case Linear, Radial, Angular:
		e.typ = t
		return nil
	}
	return ErrUnknownType
}

// SetAngle sets the linear angle in degrees.
func (e *Editor) SetAngle(deg float64) {
	e.linear = LinearGeometry{AngleDegrees: deg}.clamped().(LinearGeometry)
}

// SetRadial sets the radial parameters, clamping each to its range.
func (e *Editor) SetRadial(cx, cy, startRadius, endRadius float64) {
	e.radial = RadialGeometry{CenterX: cx, CenterY: cy, StartRadius: startRadius, EndRadius: endRadius}.Clamp()
}

// SetAngular sets the angular parameters, clamping the center.
func (e *Editor) SetAngular(cx, cy, startAngle float64) {
	e.angular = AngularGeometry{CenterX: cx, CenterY: cy, StartAngleDegrees: startAngle}.Clamp()
}

// Linear returns the stored linear geometry.
func (e *Editor) Linear() LinearGeometry { return e.linear }

// Radial returns the stored radial geometry.
func (e *Editor) Radial() RadialGeometry { return e.radial }

// Angular returns the stored angular geometry.
func (e *Editor) Angular() AngularGeometry { return e.angular }

// Stops returns the editable stop list.
func (e *Editor) Stops() *StopList { return e.stops }

// Geometry returns the geometry of the selected type.
func (e *Editor) Geometry() Geometry {
	switch e.typ {
	case Radial:
		return e.radial
	case Angular:
		return e.angular
	default:
		return e.linear
	}
}

// Descriptor assembles a fresh descriptor from the current state.
func (e *Editor) Descriptor() (*Descriptor, error) {
	return NewDescriptor(e.stops.Stops(), e.Geometry())
}
