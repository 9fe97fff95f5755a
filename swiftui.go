package gradient

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SwiftUI renders d as SwiftUI source declaring a LinearGradient,
// RadialGradient or AngularGradient value.
//
// Unit points, centers and radii are rendered to three decimals with
// trailing zeros trimmed; angles are rendered as given. The angular end
// angle is always start + 360 because AngularGradient needs an explicit
// end while CSS conic gradients imply a full turn.
func SwiftUI(d *Descriptor, opts ...CodeOption) string {
	o := defaultCodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	in := o.indent

	var b strings.Builder
	var ctor string
	var params []string
	switch g := d.Geometry.(type) {
	case LinearGeometry:
		start, end := g.UnitPoints()
		ctor = "LinearGradient"
		params = []string{
			"startPoint: " + unitPoint(start),
			"endPoint: " + unitPoint(end),
		}
	case RadialGeometry:
		center, sr, er := g.Unit()
		ctor = "RadialGradient"
		params = []string{
			"center: " + unitPoint(center),
			"startRadius: " + FormatFixed(sr, 3),
			"endRadius: " + FormatFixed(er, 3),
		}
	case AngularGeometry:
		center, sa, ea := g.Unit()
		ctor = "AngularGradient"
		params = []string{
			"center: " + unitPoint(center),
			"startAngle: .degrees(" + FormatNumber(sa) + ")",
			"endAngle: .degrees(" + FormatNumber(ea) + ")",
		}
	default:
		return ""
	}

	fmt.Fprintf(&b, "let %s = %s(\n", o.variable, ctor)
	b.WriteString(in + "gradient: ")
	writeSwiftGradient(&b, sortStops(d.Stops), in, o.locations)
	for _, p := range params {
		b.WriteString(",\n" + in + p)
	}
	b.WriteString("\n)")

	Logger().Debug("swiftui rendered", "type", d.Type(), "variable", o.variable, "bytes", b.Len())
	return b.String()
}

func writeSwiftGradient(b *strings.Builder, stops []ColorStop, in string, locations bool) {
	items := make([]string, len(stops))
	for i, s := range stops {
		if locations {
			items[i] = fmt.Sprintf(".init(color: %s, location: %s)",
				s.RGBA().SwiftUI(), FormatFixed(s.Position/100, 3))
		} else {
			items[i] = s.RGBA().SwiftUI()
		}
	}
	label := "colors"
	if locations {
		label = "stops"
	}
	fmt.Fprintf(b, "Gradient(%s: [\n%s%s%s\n%s])", label, in, in,
		strings.Join(items, ",\n"+in+in), in)
}

func unitPoint(p UnitPoint) string {
	return fmt.Sprintf("UnitPoint(x: %s, y: %s)", FormatFixed(p.X, 3), FormatFixed(p.Y, 3))
}

var swiftKeywords = map[string]bool{
	"let": true, "var": true, "func": true, "class": true, "struct": true,
	"enum": true, "return": true, "if": true, "else": true, "for": true,
	"in": true, "self": true, "true": true, "false": true, "nil": true,
}

// Identifier converts free text into a lowerCamelCase Swift identifier:
// "Ocean sunset" becomes "oceanSunset" and "2nd layer" becomes
// "gradient2ndLayer". Empty input and Swift keywords fall back to
// "gradient"-prefixed names.
func Identifier(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "gradient"
	}
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.WriteString(lower.String(words[0]))
	for _, w := range words[1:] {
		b.WriteString(title.String(w))
	}
	id := b.String()

	if r := []rune(id)[0]; unicode.IsDigit(r) {
		return "gradient" + id
	}
	if swiftKeywords[id] {
		return id + "Gradient"
	}
	return id
}
