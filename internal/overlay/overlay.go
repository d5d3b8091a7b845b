// internal/overlay/overlay.go

// Package overlay is the desktop page: a transparent ebiten window.
package overlay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-hex-ants/internal/config"
	"go-hex-ants/internal/event"
	"go-hex-ants/internal/motion"
	"go-hex-ants/internal/page"
	"go-hex-ants/pkg/hexgrid"
	"go-hex-ants/pkg/render"
	"go-hex-ants/pkg/render/gpu"
)

// Options configures an Overlay.
type Options struct {
	Width    int
	Height   int
	Debug    bool
	Backdrop bool
	Log      *slog.Logger
}

// Overlay is the desktop page: an ebiten game whose screen is the viewport.
// Surfaces mounted on it are offscreen images composited every Draw.
type Overlay struct {
	ctx      context.Context
	log      *slog.Logger
	events   *event.Dispatcher
	frames   page.Scheduler
	surfaces page.Layers[*gpu.ImageCanvas]
	monitor  *motion.Monitor
	backdrop *render.Backdrop
	bgCanvas *gpu.ImageCanvas
	bgGrid   hexgrid.Grid
	status   func() string
	debug    bool

	width, height  int
	outerW, outerH int
	lastFrameRan   int
}

// New creates an overlay of the given initial size. monitor may be nil, in
// which case motion is never reduced.
func New(ctx context.Context, monitor *motion.Monitor, opts Options) *Overlay {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	o := &Overlay{
		ctx:     ctx,
		log:     log,
		events:  event.NewDispatcher(),
		monitor: monitor,
		debug:   opts.Debug,
		width:   opts.Width,
		height:  opts.Height,
		outerW:  opts.Width,
		outerH:  opts.Height,
	}
	if opts.Backdrop {
		o.bgCanvas = gpu.NewImageCanvas(o.width, o.height)
		o.backdrop = render.NewBackdrop(o.bgCanvas, config.BackdropColor, config.BackdropStrokeWidth)
		o.bgGrid = hexgrid.Build(float64(o.width), float64(o.height), hexgrid.DefaultPattern)
		o.events.SubscribeFunc(event.ViewportResized, func(e event.Event) {
			vp := e.Data.(event.Viewport)
			o.bgCanvas.Resize(vp.Width, vp.Height)
			o.bgGrid = hexgrid.Build(float64(vp.Width), float64(vp.Height), hexgrid.DefaultPattern)
			o.backdrop.Invalidate()
		})
	}
	return o
}

// SetStatus installs the text provider shown in the debug HUD.
func (o *Overlay) SetStatus(fn func() string) {
	o.status = fn
}

func (o *Overlay) Viewport() (int, int) {
	return o.width, o.height
}

func (o *Overlay) ReducedMotion() bool {
	if o.monitor == nil {
		return false
	}
	return o.monitor.Reduced()
}

func (o *Overlay) Events() *event.Dispatcher {
	return o.events
}

func (o *Overlay) RequestFrame(fn func()) page.FrameID {
	return o.frames.Request(fn)
}

func (o *Overlay) CancelFrame(id page.FrameID) {
	o.frames.Cancel(id)
}

func (o *Overlay) MountSurface(width, height int) (page.Surface, error) {
	c := gpu.NewImageCanvas(width, height)
	o.surfaces.InsertBottom(c)
	return c, nil
}

func (o *Overlay) UnmountSurface(s page.Surface) {
	c, ok := s.(*gpu.ImageCanvas)
	if !ok {
		return
	}
	if o.surfaces.Remove(c) {
		c.Dispose()
	}
}

// Update delivers preference changes, then viewport changes, then runs the
// frames requested since the previous tick.
func (o *Overlay) Update() error {
	if err := o.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	if o.monitor != nil {
		if reduced, changed := o.monitor.Poll(); changed {
			o.log.Debug("reduced motion changed", "reduced", reduced, "source", o.monitor.Name())
			o.events.Dispatch(event.Event{Type: event.ReducedMotionChanged, Data: reduced})
		}
	}
	if o.outerW != o.width || o.outerH != o.height {
		o.width, o.height = o.outerW, o.outerH
		o.events.Dispatch(event.Event{Type: event.ViewportResized, Data: event.Viewport{Width: o.width, Height: o.height}})
	}
	o.lastFrameRan = o.frames.Run()
	return nil
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.backdrop != nil {
		o.backdrop.Render(o.bgGrid)
		screen.DrawImage(o.bgCanvas.Image(), nil)
	}
	for _, s := range o.surfaces.Items() {
		screen.DrawImage(s.Image(), nil)
	}
	if o.debug {
		ebitenutil.DebugPrint(screen, o.hud())
	}
}

func (o *Overlay) hud() string {
	text := fmt.Sprintf("TPS %.0f  FPS %.0f\nviewport %dx%d  surfaces %d  callbacks %d\nreduced motion %v",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		o.width, o.height, o.surfaces.Len(), o.lastFrameRan, o.ReducedMotion())
	if o.backdrop != nil {
		text += fmt.Sprintf("  backdrop edges %d", o.backdrop.Edges())
	}
	if o.status != nil {
		text += "\n" + o.status()
	}
	return text
}

// Layout records the outside size; the change is announced on the next Update.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		o.outerW, o.outerH = outsideWidth, outsideHeight
	}
	return o.outerW, o.outerH
}
