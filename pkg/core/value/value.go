package value

import (
	"math"
	"strconv"
	"strings"
)

// Magnitudes inside [plainMin, plainMax) print in plain decimal notation;
// anything else uses an exponent.
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// Format returns the display text of an evaluation result.
// Integral values keep a ".0" suffix so results always read as decimals,
// e.g. 14 -> "14.0", 3.75 -> "3.75", 1e21 -> "1.0E21".
func Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= plainMin && abs < plainMax {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 'E' with shortest precision yields forms like "1E+21" or "1.5E-05".
	s := strconv.FormatFloat(f, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "E" + strconv.Itoa(e)
}
