// Package gradient models a configurable color gradient and renders it as
// CSS, SwiftUI source or, through the raster sub-package, images.
//
// # Overview
//
// A gradient is one of three variants selected by [Type]: a linear gradient
// along an angle, a radial gradient around a center, or an angular (conic)
// sweep. Its colors come from a list of [ColorStop] values, each a 24-bit
// color with an opacity anchored at a percentage along the gradient axis.
//
// The pipeline is one-directional and synchronous:
//
//	Editor (mutable state) -> Descriptor (fresh per pass) -> CSS / SwiftUI / raster.Render
//
// Renderers are pure functions of a [Descriptor]; nothing is cached between
// passes, so re-rendering after every input change is always correct.
//
// # Quick Start
//
//	e := gradient.NewEditor()
//	e.SetAngle(45)
//	d, err := e.Descriptor()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(gradient.CSSDeclaration(d))
//	fmt.Println(gradient.SwiftUI(d, gradient.WithVariableName("hero")))
//
// # Out-of-range input
//
// Numeric inputs are never rejected. Positions, opacities, centers and radii
// are clamped to their ranges at the point of input. Malformed colors are
// reported with [ErrInvalidColorFormat] and removing the last stop with
// [ErrEmptyStopList].
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive diagnostics.
package gradient
