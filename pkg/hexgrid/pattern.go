// pkg/hexgrid/pattern.go
package hexgrid

// Pattern describes one tile of the page background in its normalized
// coordinate space. The page background draws the same hexagon in a
// ViewBox x ViewBox box, so these numbers have to change together with it.
type Pattern struct {
	Width    float64  // tile width in view-box units
	Height   float64  // tile height in view-box units
	ViewBox  float64  // side of the normalized space the tile lives in
	Vertices [6]Point // hexagon template in view-box units, clockwise from the top
}

// DefaultPattern matches the background: a 20 x 17.32 tile in a 0..100 view box.
var DefaultPattern = Pattern{
	Width:   20,
	Height:  17.32,
	ViewBox: 100,
	Vertices: [6]Point{
		{10, 0},
		{20, 5},
		{20, 12.32},
		{10, 17.32},
		{0, 12.32},
		{0, 5},
	},
}

// Scale returns pixels per view-box unit for a viewport of the given width.
// Only the width is used so the pattern stays isotropic with the background.
func (p Pattern) Scale(viewportWidth float64) float64 {
	if p.ViewBox <= 0 {
		return 0
	}
	return viewportWidth / p.ViewBox
}

// TileSize returns the tile width and height in pixels for the given scale.
func (p Pattern) TileSize(scale float64) (w, h float64) {
	return p.Width * scale, p.Height * scale
}
