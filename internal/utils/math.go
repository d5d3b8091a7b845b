// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Heading returns the angle of the vector from (x0, y0) to (x1, y1).
func Heading(x0, y0, x1, y1 float64) float64 {
	return math.Atan2(y1-y0, x1-x0)
}
