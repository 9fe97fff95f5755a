package gradient

import (
	"strconv"
	"strings"
)

// FormatFixed renders v with the given number of decimal places, then
// strips trailing zeros and a trailing decimal point:
//
//	FormatFixed(1, 3)      == "1"
//	FormatFixed(0.5, 3)    == "0.5"
//	FormatFixed(0.2509, 3) == "0.251"
//
// Trimming never changes the rendered value. Negative zero renders as "0".
func FormatFixed(v float64, places int) string {
	if places < 0 {
		places = 0
	}
	s := strconv.FormatFloat(v, 'f', places, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatNumber renders v as given: the shortest decimal that parses back
// to v, without an exponent.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
