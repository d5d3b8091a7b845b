// pkg/render/gpu/image_canvas_test.go
package gpu

import (
	"image/color"
	"math"
	"testing"

	"go-hex-ants/pkg/render"
)

func TestVertexColor_StraightAlpha(t *testing.T) {
	hue := color.NRGBA{44, 95, 45, 255}
	r, g, b, a := vertexColor(render.WithAlpha(hue, 0.8))

	near := func(got float32, want float64) bool {
		return math.Abs(float64(got)-want) < 1e-6
	}
	if !near(r, 44.0/255) || !near(g, 95.0/255) || !near(b, 45.0/255) {
		t.Fatalf("rgb = (%v, %v, %v), want the hue unchanged by opacity", r, g, b)
	}
	if !near(a, 204.0/255) {
		t.Fatalf("alpha = %v, want %v", a, 204.0/255)
	}
}

func TestVertexColor_FromPremultiplied(t *testing.T) {
	// RGBA is premultiplied: 22/128 is the straight value 44/255 at half alpha.
	r, _, _, a := vertexColor(color.RGBA{22, 47, 22, 128})
	if math.Abs(float64(r)-float64(44.0/255)) > 0.01 || math.Abs(float64(a)-128.0/255) > 1e-6 {
		t.Fatalf("r=%v a=%v", r, a)
	}
}
