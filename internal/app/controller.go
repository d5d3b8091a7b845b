// internal/app/controller.go
package app

import (
	"fmt"
	"image/color"
	"log/slog"

	"go-hex-ants/internal/config"
	"go-hex-ants/internal/event"
	"go-hex-ants/internal/state"
	"go-hex-ants/internal/system"
	"go-hex-ants/internal/utils"
	"go-hex-ants/pkg/hexgrid"
)

// Options tune a Controller.
type Options struct {
	Ants    int
	Pattern hexgrid.Pattern
	Ranges  system.MotionRanges
	Color   color.NRGBA
}

// DefaultOptions returns the configured pool size, pattern, ranges and hue.
func DefaultOptions() Options {
	return Options{
		Ants:    config.AntCount,
		Pattern: hexgrid.DefaultPattern,
		Ranges:  system.DefaultMotionRanges(),
		Color:   config.AntColor,
	}
}

// Stopper stops the run it was returned for. Calling it more than once, or
// after that run already ended, does nothing.
type Stopper func()

// Stats is a snapshot of the controller for logs and the debug HUD.
type Stats struct {
	Session  string
	Phase    state.Phase
	Sessions int
	Frames   uint64
	Resets   int
	Drawn    int
	Edges    int
	Cols     int
	Rows     int
	Scale    float64
}

func (s Stats) String() string {
	if s.Phase != state.Running {
		return fmt.Sprintf("ants %s (%d runs)", s.Phase, s.Sessions)
	}
	return fmt.Sprintf("ants %s  frame %d  resets %d  drawn %d\ngrid %dx%d  edges %d  scale %.2f",
		s.Phase, s.Frames, s.Resets, s.Drawn, s.Cols, s.Rows, s.Edges, s.Scale)
}

// Controller owns the animation lifecycle on one host: at most one session
// runs at a time, and the reduced-motion preference starts and stops it.
type Controller struct {
	host     Host
	opts     Options
	log      *slog.Logger
	rng      *utils.PRNGService
	sm       *state.StateMachine
	prefSub  event.Subscription
	attached bool
	sessions int
}

// New creates a stopped controller. log and rng may be nil.
func New(host Host, opts Options, log *slog.Logger, rng *utils.PRNGService) *Controller {
	if log == nil {
		log = slog.Default()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	if opts.Ants < 0 {
		opts.Ants = 0
	}
	return &Controller{
		host: host,
		opts: opts,
		log:  log,
		rng:  rng,
		sm:   state.NewStateMachine(),
	}
}

// Running reports whether a session is active.
func (c *Controller) Running() bool {
	return c.sm.Phase() == state.Running
}

// Start begins a session unless motion is reduced or one is already running,
// in which case the live session's stopper is returned and nothing is created.
func (c *Controller) Start() Stopper {
	if s, ok := c.sm.Current().(*session); ok {
		return s.stopper()
	}
	if c.host.ReducedMotion() {
		c.log.Info("ants disabled: prefers-reduced-motion is enabled")
		return func() {}
	}

	c.log.Info("creating ant system", "ants", c.opts.Ants)
	s, err := newSession(c)
	if err != nil {
		c.log.Debug("ants not started", "error", err)
		return func() {}
	}
	c.sessions++
	c.sm.SetState(s)
	return s.stopper()
}

// Stop ends the running session, if any.
func (c *Controller) Stop() {
	if c.Running() {
		c.sm.SetState(nil)
	}
}

// Attach starts the animation if allowed and follows the reduced-motion
// preference until Detach.
func (c *Controller) Attach() {
	if c.attached {
		return
	}
	c.attached = true
	c.prefSub = c.host.Events().SubscribeFunc(event.ReducedMotionChanged, c.onPreference)
	c.Start()
}

// Detach stops the animation and stops following the preference.
func (c *Controller) Detach() {
	c.prefSub.Cancel()
	c.attached = false
	c.Stop()
}

func (c *Controller) onPreference(e event.Event) {
	reduced, ok := e.Data.(bool)
	if !ok {
		return
	}
	switch {
	case reduced && c.Running():
		c.log.Debug("ants suspended", "reason", "reduced motion")
		c.Stop()
	case !reduced && !c.Running():
		c.Start()
	}
}

// Stats returns a snapshot of the current run.
func (c *Controller) Stats() Stats {
	st := Stats{Phase: c.sm.Phase(), Sessions: c.sessions}
	s, ok := c.sm.Current().(*session)
	if !ok {
		return st
	}
	l := s.colony.Layout
	st.Session = s.id
	st.Frames = s.colony.Frame
	st.Resets = s.movement.Resets()
	st.Drawn = s.renderer.Drawn()
	st.Edges = len(s.colony.Grid)
	st.Cols, st.Rows, st.Scale = l.Cols, l.Rows, l.Scale
	return st
}
