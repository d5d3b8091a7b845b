// internal/page/headless.go
package page

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"go-hex-ants/internal/event"
	"go-hex-ants/pkg/render"
)

// Headless is an in-memory page. Frames advance only when Step is called,
// which makes it suitable for snapshots and tests.
type Headless struct {
	events   *event.Dispatcher
	frames   Scheduler
	surfaces Layers[*render.RasterCanvas]
	width    int
	height   int
	reduced  bool
	mountErr error
	frame    uint64
}

// NewHeadless creates a width x height page.
func NewHeadless(width, height int, reduced bool) *Headless {
	return &Headless{
		events:  event.NewDispatcher(),
		width:   width,
		height:  height,
		reduced: reduced,
	}
}

func (h *Headless) Viewport() (int, int) {
	return h.width, h.height
}

func (h *Headless) ReducedMotion() bool {
	return h.reduced
}

func (h *Headless) Events() *event.Dispatcher {
	return h.events
}

func (h *Headless) RequestFrame(fn func()) FrameID {
	return h.frames.Request(fn)
}

func (h *Headless) CancelFrame(id FrameID) {
	h.frames.Cancel(id)
}

// FailMounts makes MountSurface fail with err, as on a page without a
// drawing capability. A nil err restores normal behaviour.
func (h *Headless) FailMounts(err error) {
	h.mountErr = err
}

func (h *Headless) MountSurface(width, height int) (Surface, error) {
	if h.mountErr != nil {
		return nil, h.mountErr
	}
	c := render.NewRasterCanvas(width, height)
	h.surfaces.InsertBottom(c)
	return c, nil
}

func (h *Headless) UnmountSurface(s Surface) {
	if c, ok := s.(*render.RasterCanvas); ok {
		h.surfaces.Remove(c)
	}
}

// Resize changes the viewport and notifies listeners if it differs.
func (h *Headless) Resize(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height
	h.events.Dispatch(event.Event{Type: event.ViewportResized, Data: event.Viewport{Width: width, Height: height}})
}

// SetReducedMotion changes the preference and notifies listeners on a change.
func (h *Headless) SetReducedMotion(reduced bool) {
	if reduced == h.reduced {
		return
	}
	h.reduced = reduced
	h.events.Dispatch(event.Event{Type: event.ReducedMotionChanged, Data: reduced})
}

// Step runs one frame and returns how many callbacks ran.
func (h *Headless) Step() int {
	h.frame++
	return h.frames.Run()
}

// Frame returns the number of Steps so far.
func (h *Headless) Frame() uint64 {
	return h.frame
}

// Surfaces returns how many surfaces are mounted.
func (h *Headless) Surfaces() int {
	return h.surfaces.Len()
}

// PendingFrames returns how many frame callbacks wait for the next Step.
func (h *Headless) PendingFrames() int {
	return h.frames.Pending()
}

// Composite paints background, then every layer in order, then every mounted
// surface bottom to top.
func (h *Headless) Composite(background color.Color, layers ...*render.RasterCanvas) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	for _, l := range layers {
		draw.Draw(dst, dst.Bounds(), l.Image(), image.Point{}, draw.Over)
	}
	for _, s := range h.surfaces.Items() {
		draw.Draw(dst, dst.Bounds(), s.Image(), image.Point{}, draw.Over)
	}
	return dst
}
