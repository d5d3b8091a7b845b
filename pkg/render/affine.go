// pkg/render/affine.go
package render

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine is a 2D affine transform in f64.Aff3 layout:
// x' = m[0]*x + m[1]*y + m[2], y' = m[3]*x + m[4]*y + m[5].
type Affine f64.Aff3

// Identity leaves points unchanged.
func Identity() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

func Translation(x, y float64) Affine {
	return Affine{1, 0, x, 0, 1, y}
}

// Rotation turns by theta radians, positive from +X towards +Y.
func Rotation(theta float64) Affine {
	s, c := math.Sincos(theta)
	return Affine{c, -s, 0, s, c, 0}
}

func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Then returns the transform that applies m first and n second.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		n[0]*m[0] + n[1]*m[3],
		n[0]*m[1] + n[1]*m[4],
		n[0]*m[2] + n[1]*m[5] + n[2],
		n[3]*m[0] + n[4]*m[3],
		n[3]*m[1] + n[4]*m[4],
		n[3]*m[2] + n[4]*m[5] + n[5],
	}
}

// Det is the area scale of the linear part.
func (m Affine) Det() float64 {
	return m[0]*m[4] - m[1]*m[3]
}
