// pkg/render/ant.go
package render

import (
	"image/color"
	"math"
)

// Pose is everything DrawAnt needs to place one ant.
type Pose struct {
	X, Y    float64
	Heading float64 // radians, 0 = facing +X
	Size    float64 // pixels per body unit
	Opacity float64 // 0..1
}

// Body parts in body units; +X points from the abdomen to the head.
type ellipse struct{ cx, cy, rx, ry float64 }

type circle struct{ cx, cy, r float64 }

var (
	abdomen = ellipse{-0.7, 0, 0.5, 0.4}
	thorax  = ellipse{0.4, 0, 0.35, 0.22}
	node    = circle{-0.08, 0, 0.08}
	head    = circle{0.85, 0, 0.18}

	petiole = []Pt{{-0.2, 0}, {0.05, 0}}

	antennae = [][]Pt{
		{{0.92, -0.08}, {1.15, -0.3}, {1.3, -0.6}},
		{{0.92, 0.08}, {1.15, 0.3}, {1.3, 0.6}},
	}

	// Front pair angled forward, middle pair sideways, back pair backward.
	legs = [][]Pt{
		{{0.6, 0.15}, {0.8, 0.5}, {0.95, 0.85}},
		{{0.6, -0.15}, {0.8, -0.5}, {0.95, -0.85}},
		{{0.4, 0.18}, {0.45, 0.65}, {0.4, 1.0}},
		{{0.4, -0.18}, {0.45, -0.65}, {0.4, -1.0}},
		{{0.2, 0.18}, {0.05, 0.6}, {-0.15, 0.9}},
		{{0.2, -0.18}, {0.05, -0.6}, {-0.15, -0.9}},
	}
)

const (
	petioleWidth = 0.1
	limbWidth    = 0.06
)

// DrawAnt draws one ant. The canvas transform is saved and restored around
// the call, so ants drawn in a row never see each other's transform.
func DrawAnt(c Canvas, pose Pose, hue color.NRGBA) {
	s := pose.Size
	c.Save()
	defer c.Restore()

	c.Translate(pose.X, pose.Y)
	c.Rotate(pose.Heading)
	c.SetColor(WithAlpha(hue, pose.Opacity))

	fillEllipse(c, abdomen, s)

	c.SetLineWidth(s * petioleWidth)
	strokeScaled(c, petiole, s)
	fillCircle(c, node, s)

	fillEllipse(c, thorax, s)
	fillCircle(c, head, s)

	c.SetLineWidth(s * limbWidth)
	for _, a := range antennae {
		strokeScaled(c, a, s)
	}
	for _, l := range legs {
		strokeScaled(c, l, s)
	}
}

// AntExtent is the radius, in body units, of a circle around the pose point
// that contains the whole figure.
func AntExtent() float64 {
	r := 0.0
	grow := func(x, y float64) {
		r = math.Max(r, math.Hypot(x, y))
	}
	for _, e := range []ellipse{abdomen, thorax} {
		grow(math.Abs(e.cx)+e.rx, math.Abs(e.cy)+e.ry)
	}
	for _, o := range []circle{node, head} {
		grow(math.Abs(o.cx)+o.r, math.Abs(o.cy)+o.r)
	}
	for _, group := range [][][]Pt{antennae, legs, {petiole}} {
		for _, line := range group {
			for _, p := range line {
				grow(p.X, p.Y)
			}
		}
	}
	return r + petioleWidth
}

func fillEllipse(c Canvas, e ellipse, s float64) {
	c.FillEllipse(e.cx*s, e.cy*s, e.rx*s, e.ry*s)
}

func fillCircle(c Canvas, o circle, s float64) {
	c.FillCircle(o.cx*s, o.cy*s, o.r*s)
}

func strokeScaled(c Canvas, line []Pt, s float64) {
	pts := make([]Pt, len(line))
	for i, p := range line {
		pts[i] = Pt{p.X * s, p.Y * s}
	}
	c.StrokePolyline(pts...)
}
