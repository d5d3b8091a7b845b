// internal/app/host.go
package app

import (
	"errors"

	"go-hex-ants/internal/event"
	"go-hex-ants/internal/page"
)

// ErrNoSurface is returned when the host cannot provide a drawing surface.
var ErrNoSurface = errors.New("no drawing surface")

// Host is the page the animation lives on. overlay.Overlay and page.Headless
// implement it.
type Host interface {
	Viewport() (width, height int)
	ReducedMotion() bool
	Events() *event.Dispatcher
	MountSurface(width, height int) (page.Surface, error)
	UnmountSurface(s page.Surface)
	RequestFrame(fn func()) page.FrameID
	CancelFrame(id page.FrameID)
}
