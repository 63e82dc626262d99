package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
