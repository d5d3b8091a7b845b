// pkg/hexgrid/grid_test.go
package hexgrid

import (
	"math"
	"math/rand"
	"testing"
)

func TestBuild_FullHD(t *testing.T) {
	l, ok := Measure(1920, 1080, DefaultPattern)
	if !ok {
		t.Fatal("expected a layout for 1920x1080")
	}
	if math.Abs(l.Scale-19.2) > 1e-9 {
		t.Fatalf("scale = %v, want 19.2", l.Scale)
	}
	if math.Abs(l.TileWidth-384) > 1e-9 {
		t.Fatalf("tile width = %v, want 384", l.TileWidth)
	}
	if math.Abs(l.TileHeight-332.544) > 1e-6 {
		t.Fatalf("tile height = %v, want ~332.5", l.TileHeight)
	}
	if l.Cols != 7 || l.Rows != 6 {
		t.Fatalf("cols x rows = %d x %d, want 7 x 6", l.Cols, l.Rows)
	}

	grid := Build(1920, 1080, DefaultPattern)
	if len(grid) != 252 {
		t.Fatalf("edges = %d, want 252", len(grid))
	}
	if len(grid) != l.Edges() {
		t.Fatalf("Build produced %d edges, Measure predicted %d", len(grid), l.Edges())
	}
}

func TestBuild_FirstHexagonFollowsTemplate(t *testing.T) {
	grid := Build(100, 100, DefaultPattern) // scale 1
	for i := 0; i < 6; i++ {
		want := DefaultPattern.Vertices[i]
		if grid[i].Start != want {
			t.Fatalf("edge %d start = %v, want %v", i, grid[i].Start, want)
		}
		if grid[i].End != DefaultPattern.Vertices[(i+1)%6] {
			t.Fatalf("edge %d does not close onto the next vertex", i)
		}
	}
	// Second hexagon in the row is shifted by exactly one tile width.
	if got := grid[6].Start.X() - grid[0].Start.X(); math.Abs(got-20) > 1e-9 {
		t.Fatalf("column offset = %v, want 20", got)
	}
}

func TestBuild_OverscanCoversViewport(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := [][2]float64{{1, 1}, {1, 5000}, {5000, 1}, {1920, 1080}, {375, 812}, {3840, 2160}}
	for i := 0; i < 50; i++ {
		sizes = append(sizes, [2]float64{float64(1 + rng.Intn(4000)), float64(1 + rng.Intn(4000))})
	}
	for _, s := range sizes {
		grid := Build(s[0], s[1], DefaultPattern)
		if len(grid) == 0 {
			t.Fatalf("%vx%v: empty grid", s[0], s[1])
		}
		if !grid.covers(s[0], s[1]) {
			b, _ := grid.Bounds()
			t.Fatalf("%vx%v: bounds %v do not cover the viewport", s[0], s[1], b)
		}
	}
}

func TestBuild_DegenerateViewport(t *testing.T) {
	for _, s := range [][2]float64{{0, 0}, {0, 100}, {100, 0}, {-5, 10}} {
		if grid := Build(s[0], s[1], DefaultPattern); len(grid) != 0 {
			t.Fatalf("%vx%v: expected empty grid, got %d edges", s[0], s[1], len(grid))
		}
	}
	var empty Grid
	if _, ok := empty.Random(rand.New(rand.NewSource(1))); ok {
		t.Fatal("Random on an empty grid must report !ok")
	}
	if empty.covers(1, 1) {
		t.Fatal("an empty grid covers nothing")
	}
}

func TestGrid_RandomReturnsMember(t *testing.T) {
	grid := Build(800, 600, DefaultPattern)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		e, ok := grid.Random(rng)
		if !ok {
			t.Fatal("expected an edge")
		}
		found := false
		for _, g := range grid {
			if g == e {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("edge %v is not part of the grid", e)
		}
		if e.Start == e.End {
			t.Fatalf("edge %v has zero length", e)
		}
	}
}
