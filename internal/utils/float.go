package utils

import "math"

// Epsilon is the tolerance below which a float is treated as zero when it
// appears in a denominator (MAD, IQR, gross amounts, burn rates).
const Epsilon = 1e-9

// ApproxZero reports whether v is close enough to zero to be treated as a
// degenerate denominator.
func ApproxZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// ApproxEqual reports whether a and b differ by less than tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// Clamp restricts v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to the unit interval. Confidence scores and regression
// weights both live in [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// NonNegative floors v at zero. Predicted money amounts are never negative.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
