// internal/page/page.go

// Package page hosts drawing surfaces the way a web page hosts canvases.
// Frame callbacks run once per display refresh; viewport and preference
// changes arrive as events.
package page

import "go-hex-ants/pkg/render"

// Surface is a full-viewport drawing surface mounted on a page.
type Surface interface {
	render.Canvas
	Resize(width, height int)
}

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// Scheduler runs requested callbacks on the next frame, in request order.
// Callbacks requested while a frame runs wait for the following frame.
type Scheduler struct {
	nextID  FrameID
	order   []FrameID
	pending map[FrameID]func()
}

// Request schedules fn for the next frame.
func (s *Scheduler) Request(fn func()) FrameID {
	if s.pending == nil {
		s.pending = make(map[FrameID]func())
	}
	s.nextID++
	s.pending[s.nextID] = fn
	s.order = append(s.order, s.nextID)
	return s.nextID
}

// Cancel drops a pending request. Unknown or already-run ids are ignored.
func (s *Scheduler) Cancel(id FrameID) {
	delete(s.pending, id)
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Run executes one frame and returns how many callbacks ran.
func (s *Scheduler) Run() int {
	order := s.order
	s.order = nil
	ran := 0
	for _, id := range order {
		fn, ok := s.pending[id]
		if !ok {
			continue // cancelled, possibly by an earlier callback of this frame
		}
		delete(s.pending, id)
		fn()
		ran++
	}
	return ran
}

// Layers keeps surfaces in paint order; the first item is painted first.
type Layers[T comparable] struct {
	items []T
}

// InsertBottom puts s below everything already mounted.
func (l *Layers[T]) InsertBottom(s T) {
	l.items = append([]T{s}, l.items...)
}

// Remove drops s and reports whether it was mounted.
func (l *Layers[T]) Remove(s T) bool {
	for i, it := range l.items {
		if it == s {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Layers[T]) Len() int {
	return len(l.items)
}

// Items returns the layers bottom to top. The slice must not be modified.
func (l *Layers[T]) Items() []T {
	return l.items
}
