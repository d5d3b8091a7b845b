// internal/app/session.go
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"go-hex-ants/internal/entity"
	"go-hex-ants/internal/event"
	"go-hex-ants/internal/page"
	"go-hex-ants/internal/state"
	"go-hex-ants/internal/system"
)

// session is one run of the animation. It owns the surface, the colony, the
// resize subscription and the pending frame; Exit releases all of them.
type session struct {
	id       string
	c        *Controller
	log      *slog.Logger
	surface  page.Surface
	colony   *entity.Colony
	movement *system.MovementSystem
	renderer *system.RenderSystem
	resize   event.Subscription
	frame    page.FrameID
	closed   bool
}

func newSession(c *Controller) (*session, error) {
	w, h := c.host.Viewport()
	surface, err := c.host.MountSurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	if surface == nil {
		return nil, ErrNoSurface
	}

	id := uuid.NewString()
	colony := entity.NewColony(c.opts.Ants)
	colony.Rebuild(w, h, c.opts.Pattern)
	s := &session{
		id:       id,
		c:        c,
		log:      c.log.With("session", id),
		surface:  surface,
		colony:   colony,
		movement: system.NewMovementSystem(colony, c.rng, c.opts.Ranges),
		renderer: system.NewRenderSystem(colony, c.opts.Color),
	}
	for _, a := range colony.Ants {
		s.movement.Reset(a)
	}
	return s, nil
}

func (s *session) Enter() {
	s.resize = s.c.host.Events().SubscribeFunc(event.ViewportResized, s.onResize)
	s.frame = s.c.host.RequestFrame(s.tick)
	l := s.colony.Layout
	s.log.Debug("ants started", "cols", l.Cols, "rows", l.Rows, "edges", len(s.colony.Grid))
}

func (s *session) Exit() {
	if s.closed {
		return
	}
	s.closed = true
	s.c.host.CancelFrame(s.frame)
	s.frame = 0
	s.resize.Cancel()
	s.c.host.UnmountSurface(s.surface)
	s.log.Debug("ants stopped", "frames", s.colony.Frame, "resets", s.movement.Resets())
}

func (s *session) Phase() state.Phase {
	return state.Running
}

// stopper ends this session only, never a later one.
func (s *session) stopper() Stopper {
	return func() {
		if s.c.sm.Current() == state.State(s) {
			s.c.sm.SetState(nil)
		}
	}
}

func (s *session) tick() {
	if s.closed {
		return
	}
	s.surface.Clear()
	s.movement.Update()
	s.renderer.Draw(s.surface)
	s.colony.Frame++
	s.frame = s.c.host.RequestFrame(s.tick)
}

func (s *session) onResize(e event.Event) {
	vp, ok := e.Data.(event.Viewport)
	if !ok {
		return
	}
	s.surface.Resize(vp.Width, vp.Height)
	s.colony.Rebuild(vp.Width, vp.Height, s.c.opts.Pattern)
	s.log.Debug("grid rebuilt", "width", vp.Width, "height", vp.Height, "edges", len(s.colony.Grid))
}
