// internal/system/movement.go
package system

import (
	"go-hex-ants/internal/component"
	"go-hex-ants/internal/config"
	"go-hex-ants/internal/entity"
	"go-hex-ants/internal/utils"
)

// MotionRanges bounds the random parameters drawn on every reset.
type MotionRanges struct {
	SpeedMin, SpeedMax     float64
	SizeMin, SizeMax       float64
	OpacityMin, OpacityMax float64
}

// DefaultMotionRanges returns the ranges from config.
func DefaultMotionRanges() MotionRanges {
	return MotionRanges{
		SpeedMin:   config.AntSpeedMin,
		SpeedMax:   config.AntSpeedMax,
		SizeMin:    config.AntSizeMin,
		SizeMax:    config.AntSizeMax,
		OpacityMin: config.AntOpacityMin,
		OpacityMax: config.AntOpacityMax,
	}
}

// MovementSystem moves every ant of a colony along its edge and relocates it
// to a fresh random edge when the edge is done.
type MovementSystem struct {
	colony *entity.Colony
	rng    *utils.PRNGService
	ranges MotionRanges
	resets int
}

func NewMovementSystem(colony *entity.Colony, rng *utils.PRNGService, ranges MotionRanges) *MovementSystem {
	return &MovementSystem{colony: colony, rng: rng, ranges: ranges}
}

// Resets returns how many successful resets happened so far.
func (s *MovementSystem) Resets() int {
	return s.resets
}

// Reset puts the ant at the start of a random edge of the current grid with
// fresh speed, size and opacity. With an empty grid it does nothing and
// returns false.
func (s *MovementSystem) Reset(a *component.Ant) bool {
	edge, ok := s.colony.Grid.Random(s.rng)
	if !ok {
		return false
	}
	a.Start = edge.Start
	a.End = edge.End
	a.Progress = 0
	a.Speed = s.rng.Range(s.ranges.SpeedMin, s.ranges.SpeedMax)
	a.Size = s.rng.Range(s.ranges.SizeMin, s.ranges.SizeMax)
	a.Opacity = s.rng.Range(s.ranges.OpacityMin, s.ranges.OpacityMax)
	s.resets++
	return true
}

// Advance moves the ant one frame forward and reports whether it was
// relocated. The overshoot past the end of the edge is dropped.
func (s *MovementSystem) Advance(a *component.Ant) bool {
	if !a.Placed() {
		return s.Reset(a)
	}
	a.Progress += a.Speed
	if a.Progress < 1 {
		return false
	}
	if s.Reset(a) {
		return true
	}
	// No grid to move to: park on the old edge until one shows up.
	a.Progress = 0
	a.Speed = 0
	return false
}

// Update advances every ant in pool order.
func (s *MovementSystem) Update() {
	for _, a := range s.colony.Ants {
		s.Advance(a)
	}
}
