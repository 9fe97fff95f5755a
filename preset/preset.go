// Package preset loads gradient definitions from files.
//
// A preset describes one gradient (type, geometry and color stops) plus
// the outputs to produce from it. Two encodings are supported: JSON, and
// Lua scripts that assign a global "gradient" table with the same keys.
//
//	{
//	  "name": "Ocean sunset",
//	  "type": "radial",
//	  "center_x": 30, "center_y": 70, "end_radius": 80,
//	  "stops": [
//	    {"color": "#ff7e5f", "pos": 0},
//	    {"color": "navy", "pos": 100, "opacity": 0.8}
//	  ],
//	  "outputs": {"css": true, "png": "sunset.png", "size": 512}
//	}
//
// Values outside their ranges are clamped when the preset is turned into
// an editor, exactly as interactive edits are.
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gradient"
)

var (
	// ErrUnsupportedFormat is returned for preset files that are neither
	// JSON nor Lua.
	ErrUnsupportedFormat = errors.New("preset: unsupported format")

	// ErrMissingTable is returned when a Lua preset does not assign the
	// global "gradient" table.
	ErrMissingTable = errors.New("preset: script did not define a gradient table")

	// ErrScriptLimit is returned when a Lua preset exceeds its CPU or
	// memory allowance.
	ErrScriptLimit = errors.New("preset: script exceeded its resource limits")
)

// Format identifies a preset encoding.
type Format int

const (
	// JSON is a plain JSON object.
	JSON Format = iota
	// Lua is a script assigning a global "gradient" table.
	Lua
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Lua:
		return "lua"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".lua":
		return Lua, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Preset is the file model of one gradient.
type Preset struct {
	Name        string  `json:"name,omitempty"`
	Type        string  `json:"type"`
	Angle       float64 `json:"angle"`
	CenterX     float64 `json:"center_x"`
	CenterY     float64 `json:"center_y"`
	StartRadius float64 `json:"start_radius"`
	EndRadius   float64 `json:"end_radius"`
	StartAngle  float64 `json:"start_angle"`
	Stops       []Stop  `json:"stops"`
	Outputs     Outputs `json:"outputs"`
}

// Stop is one color stop. Color accepts hex notation or a CSS color
// keyword. A missing opacity means fully opaque.
type Stop struct {
	Color    string   `json:"color"`
	Position float64  `json:"pos"`
	Opacity  *float64 `json:"opacity,omitempty"`
}

// Outputs lists what to produce from a preset. Empty fields produce
// nothing; command-line flags take precedence.
type Outputs struct {
	CSS            bool   `json:"css,omitempty"`
	Swift          bool   `json:"swift,omitempty"`
	SwiftName      string `json:"swift_name,omitempty"`
	SwiftLocations bool   `json:"swift_locations,omitempty"`
	Image          string `json:"image,omitempty"`
	Size           int    `json:"size,omitempty"`
	Interpolation  string `json:"interpolation,omitempty"`
}

// Default returns a preset holding the editor defaults: a 90 degree
// linear gradient over the default stops.
func Default() *Preset {
	lin, rad, ang := gradient.DefaultLinear(), gradient.DefaultRadial(), gradient.DefaultAngular()
	p := &Preset{
		Type:        gradient.Linear.String(),
		Angle:       lin.AngleDegrees,
		CenterX:     rad.CenterX,
		CenterY:     rad.CenterY,
		StartRadius: rad.StartRadius,
		EndRadius:   rad.EndRadius,
		StartAngle:  ang.StartAngleDegrees,
	}
	for _, s := range gradient.DefaultStops() {
		p.Stops = append(p.Stops, Stop{Color: s.Color.Hex(), Position: s.Position})
	}
	return p
}

// FromEditor captures the current editor state as a preset.
func FromEditor(e *gradient.Editor) *Preset {
	rad, ang := e.Radial(), e.Angular()
	p := &Preset{
		Type:        e.Type().String(),
		Angle:       e.Linear().AngleDegrees,
		CenterX:     rad.CenterX,
		CenterY:     rad.CenterY,
		StartRadius: rad.StartRadius,
		EndRadius:   rad.EndRadius,
		StartAngle:  ang.StartAngleDegrees,
	}
	for _, s := range e.Stops().Stops() {
		op := s.Opacity
		p.Stops = append(p.Stops, Stop{Color: s.Color.Hex(), Position: s.Position, Opacity: &op})
	}
	return p
}

// Load reads and parses the preset at path, choosing the format from
// the file extension.
func Load(path string) (*Preset, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	p, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	gradient.Logger().Debug("preset loaded", "path", path, "format", f, "stops", len(p.Stops))
	return p, nil
}

// Parse decodes a preset. Keys absent from data keep their defaults.
func Parse(data []byte, f Format) (*Preset, error) {
	switch f {
	case JSON:
		return parseJSON(data)
	case Lua:
		return parseLua(data)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// Editor builds an editor from the preset. Geometry and stops are clamped
// to their ranges; an unknown type or color is an error. A preset
// without stops gets the default pair.
func (p *Preset) Editor() (*gradient.Editor, error) {
	e := gradient.NewEditor()

	typ := gradient.Linear
	if p.Type != "" {
		t, err := gradient.ParseType(p.Type)
		if err != nil {
			return nil, err
		}
		typ = t
	}
	if err := e.SetType(typ); err != nil {
		return nil, err
	}
	e.SetAngle(p.Angle)
	e.SetRadial(p.CenterX, p.CenterY, p.StartRadius, p.EndRadius)
	e.SetAngular(p.CenterX, p.CenterY, p.StartAngle)

	if len(p.Stops) == 0 {
		gradient.Logger().Warn("preset has no stops, using defaults", "name", p.Name)
		return e, nil
	}
	stops := make([]gradient.ColorStop, 0, len(p.Stops))
	for i, s := range p.Stops {
		c, err := gradient.ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		op := 1.0
		if s.Opacity != nil {
			op = *s.Opacity
		}
		stops = append(stops, gradient.ColorStop{Color: c, Position: s.Position, Opacity: op})
	}
	if err := e.Stops().Replace(stops); err != nil {
		return nil, err
	}
	return e, nil
}

// Descriptor is a shortcut for building the editor and assembling its
// descriptor.
func (p *Preset) Descriptor() (*gradient.Descriptor, error) {
	e, err := p.Editor()
	if err != nil {
		return nil, err
	}
	return e.Descriptor()
}
