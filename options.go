package gradient

// CodeOption configures SwiftUI code generation.
//
// Example:
//
//	src := gradient.SwiftUI(d,
//	    gradient.WithVariableName("ocean sunset"),
//	    gradient.WithStopLocations(true),
//	)
type CodeOption func(*codeOptions)

type codeOptions struct {
	variable  string
	locations bool
	indent    string
}

func defaultCodeOptions() codeOptions {
	return codeOptions{
		variable: "gradient",
		indent:   "    ",
	}
}

// WithVariableName sets the name bound by the generated "let". Free text
// is converted with Identifier, so "Ocean sunset" becomes "oceanSunset".
func WithVariableName(name string) CodeOption {
	return func(o *codeOptions) {
		o.variable = Identifier(name)
	}
}

// WithStopLocations emits Gradient(stops:) with explicit locations instead
// of Gradient(colors:), which spaces colors evenly and ignores positions.
func WithStopLocations(enabled bool) CodeOption {
	return func(o *codeOptions) {
		o.locations = enabled
	}
}

// WithIndent sets the indentation unit of the generated source.
// The default is four spaces.
func WithIndent(indent string) CodeOption {
	return func(o *codeOptions) {
		o.indent = indent
	}
}
