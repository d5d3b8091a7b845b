// pkg/render/canvas.go
package render

import (
	"image/color"
	"math"
)

// Pt is a point in the canvas' current local frame.
type Pt struct {
	X, Y float64
}

// Canvas is an immediate-mode 2D drawing surface with a save/restore
// transform stack, in the spirit of the HTML canvas 2D context.
type Canvas interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	SetColor(c color.Color)
	SetLineWidth(w float64)
	FillEllipse(cx, cy, rx, ry float64)
	FillCircle(cx, cy, r float64)
	StrokePolyline(points ...Pt)
	Clear()
	Size() (width, height int)
}

// ellipseSegments is the polygon resolution used for ellipses and circles.
const ellipseSegments = 24

// Backend receives primitives already transformed to device pixels.
type Backend interface {
	FillPolygon(poly []Pt, c color.Color)
	StrokePath(path []Pt, width float64, c color.Color)
	Erase()
	Dimensions() (int, int)
}

type style struct {
	m         Affine
	color     color.Color
	lineWidth float64
}

// Pen implements Canvas on top of a Backend. It owns the transform and style
// stack, so backends only ever see device coordinates.
type Pen struct {
	b     Backend
	cur   style
	stack []style
	buf   []Pt
}

// NewPen starts with the identity transform, black and a 1px line.
func NewPen(b Backend) *Pen {
	return &Pen{
		b:   b,
		cur: style{m: Identity(), color: color.Black, lineWidth: 1},
	}
}

// Save pushes the transform, color and line width.
func (p *Pen) Save() {
	p.stack = append(p.stack, p.cur)
}

// Restore pops what the matching Save pushed. An unbalanced Restore is ignored.
func (p *Pen) Restore() {
	if len(p.stack) == 0 {
		return
	}
	p.cur = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

// depth returns the number of pending Saves.
func (p *Pen) depth() int {
	return len(p.stack)
}

func (p *Pen) Translate(x, y float64) {
	p.cur.m = Translation(x, y).Then(p.cur.m)
}

func (p *Pen) Rotate(theta float64) {
	p.cur.m = Rotation(theta).Then(p.cur.m)
}

func (p *Pen) SetColor(c color.Color) {
	p.cur.color = c
}

func (p *Pen) SetLineWidth(w float64) {
	p.cur.lineWidth = w
}

func (p *Pen) FillEllipse(cx, cy, rx, ry float64) {
	p.buf = p.buf[:0]
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		p.buf = append(p.buf, p.apply(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	p.b.FillPolygon(p.buf, p.cur.color)
}

func (p *Pen) FillCircle(cx, cy, r float64) {
	p.FillEllipse(cx, cy, r, r)
}

func (p *Pen) StrokePolyline(points ...Pt) {
	if len(points) < 2 {
		return
	}
	p.buf = p.buf[:0]
	for _, pt := range points {
		p.buf = append(p.buf, p.apply(pt.X, pt.Y))
	}
	p.b.StrokePath(p.buf, p.cur.lineWidth*p.scaleFactor(), p.cur.color)
}

func (p *Pen) Clear() {
	p.b.Erase()
}

func (p *Pen) Size() (int, int) {
	return p.b.Dimensions()
}

func (p *Pen) apply(x, y float64) Pt {
	dx, dy := p.cur.m.Apply(x, y)
	return Pt{dx, dy}
}

// scaleFactor is the average linear scale of the current transform.
func (p *Pen) scaleFactor() float64 {
	return math.Sqrt(math.Abs(p.cur.m.Det()))
}
