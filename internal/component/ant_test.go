// internal/component/ant_test.go
package component

import (
	"math"
	"testing"

	"go-hex-ants/pkg/hexgrid"
)

func TestAnt_PositionAndHeading(t *testing.T) {
	a := Ant{
		Start:    hexgrid.Point{10, 10},
		End:      hexgrid.Point{10, 30},
		Progress: 0.25,
		Speed:    0.001,
		Size:     4,
		Opacity:  0.9,
	}
	x, y := a.Position()
	if x != 10 || y != 15 {
		t.Fatalf("position = (%v,%v), want (10,15)", x, y)
	}
	if math.Abs(a.Heading()-math.Pi/2) > 1e-12 {
		t.Fatalf("heading = %v, want π/2", a.Heading())
	}

	p := a.Pose()
	if p.X != 10 || p.Y != 15 || p.Size != 4 || p.Opacity != 0.9 {
		t.Fatalf("pose = %+v", p)
	}

	// Heading does not depend on progress.
	a.Progress = 0.9
	if math.Abs(a.Heading()-math.Pi/2) > 1e-12 {
		t.Fatal("heading changed along a straight edge")
	}
}

func TestAnt_Placed(t *testing.T) {
	var a Ant
	if a.Placed() {
		t.Fatal("zero ant must not be placed")
	}
	a.Speed = 0.001
	if !a.Placed() {
		t.Fatal("ant with speed must be placed")
	}
}
