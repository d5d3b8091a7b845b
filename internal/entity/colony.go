// internal/entity/colony.go
package entity

import (
	"go-hex-ants/internal/component"
	"go-hex-ants/pkg/hexgrid"
)

// Colony is the world of one animation run: the fixed, ordered ant pool and
// the grid they sample edges from. It is owned by a single session and only
// touched from the frame loop and its listeners.
type Colony struct {
	Ants   []*component.Ant
	Grid   hexgrid.Grid
	Layout hexgrid.Layout
	Frame  uint64
}

// NewColony creates size unplaced ants.
func NewColony(size int) *Colony {
	c := &Colony{Ants: make([]*component.Ant, size)}
	for i := range c.Ants {
		c.Ants[i] = &component.Ant{}
	}
	return c
}

// Rebuild replaces the grid for a new viewport. Ants keep their current
// edge until their traversal ends.
func (c *Colony) Rebuild(width, height int, p hexgrid.Pattern) {
	c.Layout, _ = hexgrid.Measure(float64(width), float64(height), p)
	c.Grid = hexgrid.Build(float64(width), float64(height), p)
}
