// pkg/render/raster_canvas.go
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// RasterCanvas draws into an in-memory RGBA image with the x/image
// rasterizer. It needs no GPU or window system.
type RasterCanvas struct {
	*Pen
	img  *image.RGBA
	z    *vector.Rasterizer
	poly []Pt
}

// NewRasterCanvas allocates a transparent width x height canvas.
func NewRasterCanvas(width, height int) *RasterCanvas {
	c := &RasterCanvas{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		z:   vector.NewRasterizer(max(width, 0), max(height, 0)),
	}
	c.Pen = NewPen(c)
	return c
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Resize reallocates the backing image; content is discarded.
func (c *RasterCanvas) Resize(width, height int) {
	c.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

func (c *RasterCanvas) begin() bool {
	w, h := c.Dimensions()
	if w == 0 || h == 0 {
		return false
	}
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over
	return true
}

func (c *RasterCanvas) flush(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *RasterCanvas) FillPolygon(poly []Pt, col color.Color) {
	if !c.begin() {
		return
	}
	c.addPolygon(poly)
	c.flush(col)
}

// StrokePath expands every segment to a quad and every inner vertex to a
// round join, all in one rasterizer pass so overlaps are not blended twice.
func (c *RasterCanvas) StrokePath(line []Pt, width float64, col color.Color) {
	if width <= 0 || !c.begin() {
		return
	}
	hw := width / 2
	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		c.addPolygon([]Pt{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		})
	}
	for i := 1; i+1 < len(line); i++ {
		c.poly = disc(c.poly[:0], line[i], hw)
		c.addPolygon(c.poly)
	}
	c.flush(col)
}

// addPolygon feeds poly to the rasterizer with a fixed winding. The
// rasterizer sums signed coverage, so mixed windings would cancel out.
func (c *RasterCanvas) addPolygon(poly []Pt) {
	if len(poly) < 3 {
		return
	}
	if signedArea(poly) < 0 {
		c.z.MoveTo(float32(poly[len(poly)-1].X), float32(poly[len(poly)-1].Y))
		for i := len(poly) - 2; i >= 0; i-- {
			c.z.LineTo(float32(poly[i].X), float32(poly[i].Y))
		}
	} else {
		c.z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			c.z.LineTo(float32(p.X), float32(p.Y))
		}
	}
	c.z.ClosePath()
}

func (c *RasterCanvas) Erase() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
}

func (c *RasterCanvas) Dimensions() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func signedArea(poly []Pt) float64 {
	var s float64
	for i := range poly {
		j := (i + 1) % len(poly)
		s += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return s / 2
}

func disc(dst []Pt, center Pt, r float64) []Pt {
	const n = 8
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		dst = append(dst, Pt{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)})
	}
	return dst
}
