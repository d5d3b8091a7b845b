// pkg/hexgrid/grid.go
package hexgrid

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is a position in viewport pixels.
type Point = orb.Point

// Edge is one side of one hexagon instance. Edges are values: callers copy the
// endpoints they need instead of holding on to the Grid.
type Edge struct {
	Start Point
	End   Point
}

// Grid is the ordered list of hexagon edges covering a viewport plus overscan.
// Shared sides of neighbouring hexagons appear twice.
type Grid []Edge

// Layout is the tiling that Build used for a viewport.
type Layout struct {
	Scale      float64 // pixels per view-box unit
	TileWidth  float64
	TileHeight float64
	Cols, Rows int
}

// Edges returns how many edges a grid with this layout holds.
func (l Layout) Edges() int {
	return l.Cols * l.Rows * 6
}

// Measure computes the tiling for a width x height viewport without building it.
// Each axis gets ceil(dimension/tile)+2 tiles so that agents never pop in at the
// right and bottom borders.
func Measure(width, height float64, p Pattern) (Layout, bool) {
	if width <= 0 || height <= 0 {
		return Layout{}, false
	}
	scale := p.Scale(width)
	tw, th := p.TileSize(scale)
	if tw <= 0 || th <= 0 {
		return Layout{}, false
	}
	return Layout{
		Scale:      scale,
		TileWidth:  tw,
		TileHeight: th,
		Cols:       int(math.Ceil(width/tw)) + 2,
		Rows:       int(math.Ceil(height/th)) + 2,
	}, true
}

// Build generates the grid for a width x height viewport. A non-positive
// dimension yields an empty grid.
func Build(width, height float64, p Pattern) Grid {
	l, ok := Measure(width, height, p)
	if !ok {
		return nil
	}

	grid := make(Grid, 0, l.Edges())
	var vertices [6]Point
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			baseX := float64(col) * l.TileWidth
			baseY := float64(row) * l.TileHeight
			for i, v := range p.Vertices {
				vertices[i] = Point{baseX + v.X()*l.Scale, baseY + v.Y()*l.Scale}
			}
			for i := 0; i < 6; i++ {
				grid = append(grid, Edge{Start: vertices[i], End: vertices[(i+1)%6]})
			}
		}
	}
	return grid
}

// Bounds returns the bounding box of every edge endpoint.
func (g Grid) Bounds() (orb.Bound, bool) {
	if len(g) == 0 {
		return orb.Bound{}, false
	}
	b := orb.Bound{Min: g[0].Start, Max: g[0].Start}
	for _, e := range g {
		b = b.Extend(e.Start)
		b = b.Extend(e.End)
	}
	return b, true
}

// covers reports whether the grid spans at least [0,width] x [0,height].
func (g Grid) covers(width, height float64) bool {
	b, ok := g.Bounds()
	if !ok {
		return false
	}
	return b.Min.X() <= 0 && b.Min.Y() <= 0 && b.Max.X() >= width && b.Max.Y() >= height
}

// Intn is the part of a random source that Random needs.
type Intn interface {
	Intn(n int) int
}

// Random picks a uniformly distributed edge. ok is false for an empty grid.
func (g Grid) Random(rng Intn) (Edge, bool) {
	if len(g) == 0 {
		return Edge{}, false
	}
	return g[rng.Intn(len(g))], true
}
