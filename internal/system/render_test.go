// internal/system/render_test.go
package system

import (
	"testing"

	"go-hex-ants/internal/component"
	"go-hex-ants/internal/config"
	"go-hex-ants/internal/entity"
	"go-hex-ants/pkg/hexgrid"
	"go-hex-ants/pkg/render"
)

func TestRenderSystem_DrawsPlacedAnts(t *testing.T) {
	c, m := newTestColony(t, 400, 300)
	r := NewRenderSystem(c, config.AntColor)
	canvas := render.NewRasterCanvas(400, 300)

	r.Draw(canvas)
	if countInk(canvas) != 0 || r.Drawn() != 0 {
		t.Fatal("unplaced ants must not be drawn")
	}

	m.Update()
	r.Draw(canvas)
	if countInk(canvas) == 0 || r.Drawn() == 0 {
		t.Fatal("expected ants on the canvas")
	}
}

func TestRenderSystem_SkipsAntsOutsideCanvas(t *testing.T) {
	c := entity.NewColony(0)
	ant := func(x, y float64) *component.Ant {
		return &component.Ant{
			Start:   hexgrid.Point{x, y},
			End:     hexgrid.Point{x + 10, y},
			Speed:   0.001,
			Size:    4,
			Opacity: 1,
		}
	}
	c.Ants = []*component.Ant{
		ant(50, 50),   // inside
		ant(-2, 50),   // centre off canvas, legs reach in
		ant(-200, 50), // overscan
		ant(50, 1000), // overscan
	}
	r := NewRenderSystem(c, config.AntColor)
	r.Draw(render.NewRasterCanvas(100, 100))
	if r.Drawn() != 2 {
		t.Fatalf("drawn = %d, want 2", r.Drawn())
	}
}

func countInk(c *render.RasterCanvas) int {
	n := 0
	pix := c.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}
