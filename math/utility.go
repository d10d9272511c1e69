package math

import (
	"math"
)

const (
	DEG2RAD = math.Pi / 180
	RAD2DEG = 180 / math.Pi
	Pi      = math.Pi

	// RoundingError is the tolerance used for plane classification.
	RoundingError = 0.000001
)

func Round(v float64, precision int) float64 {
	var r float64

	if tmp := v * math.Pow(10, float64(precision)); tmp > 0 {
		r = math.Floor(tmp + 0.5)
	} else {
		r = math.Ceil(tmp - 0.5)
	}

	return r / math.Pow(10, float64(precision))
}

/*
	NearlyEquals compares two float64 with an error margin
	http://floating-point-gui.de/errors/comparison/
*/
func NearlyEquals(a, b, epsilon float64) bool {
	// shortcut, handles infinities
	if a == b {
		return true
	}

	diff := math.Abs(a - b)

	// a or b or both are zero
	if a*b == 0 {
		return diff < (epsilon * epsilon)
	}

	// use relative error
	return diff/(math.Abs(a)+math.Abs(b)) < epsilon
}

// IsZero reports whether v lies within RoundingError of zero.
func IsZero(v float64) bool {
	return math.Abs(v) <= RoundingError
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func precisionEpsilon(precision int) float64 {
	return math.Pow(10, float64(-precision))
}
