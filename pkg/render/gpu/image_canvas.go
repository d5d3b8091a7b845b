// pkg/render/gpu/image_canvas.go

// Package gpu draws render.Canvas primitives onto ebiten images.
package gpu

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-hex-ants/pkg/render"
)

// ImageCanvas draws onto an ebiten image. Paths are tessellated with
// ebiten/vector and drawn as vertex-colored triangles over a white pixel.
type ImageCanvas struct {
	*render.Pen
	img      *ebiten.Image
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

// NewImageCanvas allocates a width x height offscreen image.
func NewImageCanvas(width, height int) *ImageCanvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	c := &ImageCanvas{
		img:      ebiten.NewImage(max(width, 1), max(height, 1)),
		whiteImg: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 96),
	}
	c.Pen = render.NewPen(c)
	return c
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *ebiten.Image {
	return c.img
}

// Resize replaces the backing image. Like resizing an HTML canvas, the
// content is discarded.
func (c *ImageCanvas) Resize(width, height int) {
	w, h := c.Dimensions()
	if w == width && h == height {
		c.Erase()
		return
	}
	c.img.Deallocate()
	c.img = ebiten.NewImage(max(width, 1), max(height, 1))
}

// Dispose frees the GPU memory behind the canvas.
func (c *ImageCanvas) Dispose() {
	c.img.Deallocate()
}

func (c *ImageCanvas) FillPolygon(poly []render.Pt, col color.Color) {
	path := toPath(poly)
	path.Close()
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(col)
}

func (c *ImageCanvas) StrokePath(line []render.Pt, width float64, col color.Color) {
	path := toPath(line)
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:      float32(width),
		MiterLimit: 10,
	})
	c.drawTriangles(col)
}

func (c *ImageCanvas) drawTriangles(col color.Color) {
	r, g, b, a := vertexColor(col)
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	c.img.DrawTriangles(c.vs, c.is, c.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *ImageCanvas) Erase() {
	c.img.Clear()
}

func (c *ImageCanvas) Dimensions() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// vertexColor returns straight (non-premultiplied) channels in 0..1, which is
// what DrawTriangles expects with the default ColorScaleMode.
func vertexColor(col color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

func toPath(points []render.Pt) *vector.Path {
	var path vector.Path
	for i, pt := range points {
		if i == 0 {
			path.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
	}
	return &path
}
