// internal/event/types.go
package event

const (
	ViewportResized      EventType = "ViewportResized"      // Data: Viewport
	ReducedMotionChanged EventType = "ReducedMotionChanged" // Data: bool, true = reduce
)

// Viewport is the payload of ViewportResized.
type Viewport struct {
	Width, Height int
}
