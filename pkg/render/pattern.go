// pkg/render/pattern.go
package render

import (
	"image/color"

	"go-hex-ants/pkg/hexgrid"
)

// DrawPattern strokes every edge of grid, reproducing the page background
// the ants walk on. Edges shared by two hexagons are drawn twice, as the grid
// holds them twice.
func DrawPattern(c Canvas, grid hexgrid.Grid, col color.Color, width float64) {
	c.Save()
	defer c.Restore()
	c.SetColor(col)
	c.SetLineWidth(width)
	for _, e := range grid {
		c.StrokePolyline(
			Pt{e.Start.X(), e.Start.Y()},
			Pt{e.End.X(), e.End.Y()},
		)
	}
}

// Backdrop keeps a pre-rendered copy of the pattern and redraws it only when
// the grid changes.
type Backdrop struct {
	canvas Canvas
	col    color.Color
	width  float64
	edges  int
	dirty  bool
}

// NewBackdrop wraps canvas; nothing is drawn until Render.
func NewBackdrop(canvas Canvas, col color.Color, width float64) *Backdrop {
	return &Backdrop{canvas: canvas, col: col, width: width, dirty: true}
}

// Invalidate forces the next Render to redraw.
func (b *Backdrop) Invalidate() {
	b.dirty = true
}

// Render redraws the pattern if the backdrop was invalidated. It reports
// whether anything was drawn.
func (b *Backdrop) Render(grid hexgrid.Grid) bool {
	if !b.dirty {
		return false
	}
	b.canvas.Clear()
	DrawPattern(b.canvas, grid, b.col, b.width)
	b.edges = len(grid)
	b.dirty = false
	return true
}

// Edges returns the number of edges drawn by the last Render.
func (b *Backdrop) Edges() int {
	return b.edges
}
