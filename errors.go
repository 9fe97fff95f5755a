package gradient

import "errors"

var (
	// ErrInvalidColorFormat is returned for color strings that are not
	// 3 or 6 hexadecimal digits (optionally prefixed with '#').
	ErrInvalidColorFormat = errors.New("gradient: invalid color format")

	// ErrEmptyStopList is returned when an operation would leave a
	// gradient without color stops.
	ErrEmptyStopList = errors.New("gradient: at least one color stop is required")

	// ErrStopIndex is returned for stop indices outside the list.
	ErrStopIndex = errors.New("gradient: stop index out of range")

	// ErrUnknownType is returned for unrecognised gradient types.
	ErrUnknownType = errors.New("gradient: unknown gradient type")
)
