package gradient

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// ColorStop anchors a color and opacity at a percentage along the
// gradient axis.
type ColorStop struct {
	Color    RGB
	Position float64 // percent, 0 to 100
	Opacity  float64 // 0 to 1
}

// NewColorStop parses hex and clamps position and opacity into range.
func NewColorStop(hex string, position, opacity float64) (ColorStop, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return ColorStop{}, err
	}
	return ColorStop{
		Color:    c,
		Position: ClampPosition(position),
		Opacity:  ClampOpacity(opacity),
	}, nil
}

// RGBA returns the stop color with its opacity applied.
func (s ColorStop) RGBA() RGBA {
	return s.Color.WithAlpha(s.Opacity)
}

// ClampPosition clamps a stop position to [0, 100]. NaN becomes 0.
func ClampPosition(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return clamp(p, 0, 100)
}

// ClampOpacity clamps an opacity to [0, 1]. NaN becomes fully opaque.
func ClampOpacity(o float64) float64 {
	if math.IsNaN(o) {
		return 1
	}
	return clamp(o, 0, 1)
}

// OpacityFromPercent converts a percentage opacity input, clamped to
// [0, 100], to an opacity in [0, 1].
func OpacityFromPercent(pct float64) float64 {
	if math.IsNaN(pct) {
		return 1
	}
	return clamp(pct, 0, 100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// DefaultStops returns the stops a fresh editor starts with.
func DefaultStops() []ColorStop {
	return []ColorStop{
		{Color: RGB{0x1a, 0x1a, 0x40}, Position: 0, Opacity: 1},
		{Color: RGB{0x4d, 0x4d, 0xff}, Position: 100, Opacity: 1},
	}
}

// sortStops returns a copy of stops in ascending position order.
// Stops at equal positions keep their relative order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := slices.Clone(stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}

// StopList is the editable list of color stops. It keeps stops in the
// order they were created or moved to; renderers consume Sorted.
//
// The zero value is an empty list; use NewStopList for a usable one.
type StopList struct {
	stops []ColorStop
}

// NewStopList returns a list holding stops, clamped. With no arguments it
// holds DefaultStops.
func NewStopList(stops ...ColorStop) *StopList {
	if len(stops) == 0 {
		stops = DefaultStops()
	}
	l := &StopList{stops: make([]ColorStop, 0, len(stops))}
	for _, s := range stops {
		l.Add(s)
	}
	return l
}

// Len returns the number of stops.
func (l *StopList) Len() int { return len(l.stops) }

// At returns the stop at index i in creation order.
func (l *StopList) At(i int) (ColorStop, error) {
	if err := l.check(i); err != nil {
		return ColorStop{}, err
	}
	return l.stops[i], nil
}

// Stops returns a copy of the stops in creation order.
func (l *StopList) Stops() []ColorStop {
	return slices.Clone(l.stops)
}

// Sorted returns a copy of the stops in ascending position order.
func (l *StopList) Sorted() []ColorStop {
	return sortStops(l.stops)
}

// Add appends a stop and returns its index.
func (l *StopList) Add(s ColorStop) int {
	l.stops = append(l.stops, clampStop(s))
	return len(l.stops) - 1
}

// Insert places s at index i, shifting later stops. i may equal Len.
func (l *StopList) Insert(i int, s ColorStop) error {
	if i < 0 || i > len(l.stops) {
		return fmt.Errorf("%w: %d", ErrStopIndex, i)
	}
	l.stops = slices.Insert(l.stops, i, clampStop(s))
	return nil
}

// Remove deletes the stop at index i. Removing the only remaining stop is
// refused with ErrEmptyStopList and leaves the list unchanged.
func (l *StopList) Remove(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	if len(l.stops) == 1 {
		Logger().Warn("refusing to remove last color stop")
		return ErrEmptyStopList
	}
	l.stops = slices.Delete(l.stops, i, i+1)
	return nil
}

// Move relocates the stop at from so that it ends up at index to.
func (l *StopList) Move(from, to int) error {
	if err := l.check(from); err != nil {
		return err
	}
	if err := l.check(to); err != nil {
		return err
	}
	s := l.stops[from]
	l.stops = slices.Delete(l.stops, from, from+1)
	l.stops = slices.Insert(l.stops, to, s)
	return nil
}

// SetColor replaces the color of stop i.
func (l *StopList) SetColor(i int, hex string) error {
	if err := l.check(i); err != nil {
		return err
	}
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	l.stops[i].Color = c
	return nil
}

// SetPosition stores p clamped to [0, 100] and returns the stored value.
func (l *StopList) SetPosition(i int, p float64) (float64, error) {
	if err := l.check(i); err != nil {
		return 0, err
	}
	stored := ClampPosition(p)
	if stored != p {
		Logger().Warn("stop position clamped", "index", i, "input", p, "stored", stored)
	}
	l.stops[i].Position = stored
	return stored, nil
}

// SetOpacity stores o clamped to [0, 1] and returns the stored value.
func (l *StopList) SetOpacity(i int, o float64) (float64, error) {
	if err := l.check(i); err != nil {
		return 0, err
	}
	l.stops[i].Opacity = ClampOpacity(o)
	return l.stops[i].Opacity, nil
}

// SetOpacityPercent stores a percentage opacity, clamped to [0, 100].
func (l *StopList) SetOpacityPercent(i int, pct float64) (float64, error) {
	return l.SetOpacity(i, OpacityFromPercent(pct))
}

// Reset restores DefaultStops.
func (l *StopList) Reset() {
	l.stops = DefaultStops()
}

// Replace swaps in a whole new set of stops, clamping each one. An empty
// set is refused and the list is left untouched.
func (l *StopList) Replace(stops []ColorStop) error {
	if len(stops) == 0 {
		return ErrEmptyStopList
	}
	l.stops = l.stops[:0]
	for _, s := range stops {
		l.Add(s)
	}
	return nil
}

func (l *StopList) check(i int) error {
	if i < 0 || i >= len(l.stops) {
		return fmt.Errorf("%w: %d (len %d)", ErrStopIndex, i, len(l.stops))
	}
	return nil
}

func clampStop(s ColorStop) ColorStop {
	s.Position = ClampPosition(s.Position)
	s.Opacity = ClampOpacity(s.Opacity)
	return s
}
