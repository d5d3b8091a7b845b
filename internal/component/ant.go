// internal/component/ant.go
package component

import (
	"go-hex-ants/internal/utils"
	"go-hex-ants/pkg/hexgrid"
	"go-hex-ants/pkg/render"
)

// Ant is the motion state of one sprite. Start and End are copies of one grid
// edge taken at the last reset; the grid itself may have been rebuilt since.
type Ant struct {
	Start    hexgrid.Point
	End      hexgrid.Point
	Progress float64 // position along Start->End, in [0,1)
	Speed    float64 // progress units per frame; 0 until the ant gets an edge
	Size     float64 // pixels per body unit
	Opacity  float64
}

// Placed reports whether the ant has ever been given an edge.
func (a *Ant) Placed() bool {
	return a.Speed > 0
}

// Position interpolates the current point on the edge.
func (a *Ant) Position() (x, y float64) {
	x = utils.Lerp(a.Start.X(), a.End.X(), a.Progress)
	y = utils.Lerp(a.Start.Y(), a.End.Y(), a.Progress)
	return
}

// Heading is the constant direction of travel along the edge.
func (a *Ant) Heading() float64 {
	return utils.Heading(a.Start.X(), a.Start.Y(), a.End.X(), a.End.Y())
}

// Pose returns what the renderer needs to draw the ant.
func (a *Ant) Pose() render.Pose {
	x, y := a.Position()
	return render.Pose{
		X:       x,
		Y:       y,
		Heading: a.Heading(),
		Size:    a.Size,
		Opacity: a.Opacity,
	}
}
