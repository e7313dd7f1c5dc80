package calc

import (
	"errors"
	"math"
	"strconv"
)

// FormatNumber renders v for the display. Whole numbers render without a
// decimal point; everything else renders as the shortest decimal that
// parses back to v. Exponent notation is never produced.
//
// v must be finite.
func FormatNumber(v float64) string {
	if v == 0 {
		// Covers negative zero.
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseDisplay converts a display numeral to a float64. Partial numerals such
// as "5." or "-0." are accepted. Anything unparseable yields 0.
func ParseDisplay(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ErrRange still carries ±Inf, which the overflow check relies on.
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0
	}
	return v
}
