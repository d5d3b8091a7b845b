// internal/system/render.go
package system

import (
	"image/color"

	"go-hex-ants/internal/entity"
	"go-hex-ants/pkg/render"
)

// RenderSystem draws the colony's ants in pool order.
type RenderSystem struct {
	colony *entity.Colony
	hue    color.NRGBA
	drawn  int
}

func NewRenderSystem(colony *entity.Colony, hue color.NRGBA) *RenderSystem {
	return &RenderSystem{colony: colony, hue: hue}
}

// Drawn returns how many ants the last Draw put on the canvas.
func (s *RenderSystem) Drawn() int {
	return s.drawn
}

// Draw draws every placed ant that can touch the canvas. Ants in the
// overscan margin are skipped.
func (s *RenderSystem) Draw(c render.Canvas) {
	w, h := c.Size()
	reach := render.AntExtent()
	s.drawn = 0
	for _, a := range s.colony.Ants {
		if a.Size <= 0 {
			continue
		}
		pose := a.Pose()
		if !visible(pose, reach*pose.Size, w, h) {
			continue
		}
		render.DrawAnt(c, pose, s.hue)
		s.drawn++
	}
}

func visible(p render.Pose, r float64, w, h int) bool {
	return p.X+r >= 0 && p.Y+r >= 0 && p.X-r <= float64(w) && p.Y-r <= float64(h)
}
