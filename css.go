package gradient

import (
	"fmt"
	"strings"
)

// CSS renders d as a CSS gradient function:
//
//	linear-gradient(45deg, rgba(255,0,0,1) 0%, rgba(0,0,255,1) 100%)
//	radial-gradient(circle at 50% 50%, ...)
//	conic-gradient(from 0deg at 50% 50%, ...)
//
// The linear angle is passed through in CSS's own convention. Radial radii
// have no counterpart in "circle at X% Y%" and are not emitted.
func CSS(d *Descriptor) string {
	stops := cssStops(sortStops(d.Stops))
	switch g := d.Geometry.(type) {
	case LinearGeometry:
		return fmt.Sprintf("linear-gradient(%sdeg, %s)", FormatNumber(g.AngleDegrees), stops)
	case RadialGeometry:
		g = g.Clamp()
		return fmt.Sprintf("radial-gradient(circle at %s%% %s%%, %s)",
			FormatNumber(g.CenterX), FormatNumber(g.CenterY), stops)
	case AngularGeometry:
		g = g.Clamp()
		return fmt.Sprintf("conic-gradient(from %sdeg at %s%% %s%%, %s)",
			FormatNumber(g.StartAngleDegrees), FormatNumber(g.CenterX), FormatNumber(g.CenterY), stops)
	}
	return ""
}

// CSSDeclaration renders d as a complete "background: ...;" declaration.
func CSSDeclaration(d *Descriptor) string {
	return "background: " + CSS(d) + ";"
}

func cssStops(stops []ColorStop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = s.RGBA().CSS() + " " + FormatNumber(s.Position) + "%"
	}
	return strings.Join(parts, ", ")
}
