// pkg/render/color.go
package render

import "image/color"

// WithAlpha returns c with its alpha replaced by opacity (clamped to 0..1).
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(opacity*255 + 0.5)
	return c
}
