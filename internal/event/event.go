// internal/event/event.go
package event

// EventType names a kind of event.
type EventType string

// Event is what listeners receive.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is implemented by event subscribers.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription is the handle returned by Subscribe. Cancel is safe to call
// more than once.
type Subscription struct {
	d         *Dispatcher
	eventType EventType
	id        uint64
}

// Cancel removes the listener from its dispatcher.
func (s Subscription) Cancel() {
	if s.d != nil {
		s.d.remove(s.eventType, s.id)
	}
}

// active reports whether the subscription is still registered.
func (s Subscription) active() bool {
	if s.d == nil {
		return false
	}
	for _, e := range s.d.listeners[s.eventType] {
		if e.id == s.id {
			return true
		}
	}
	return false
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. It is not safe for concurrent use.
type Dispatcher struct {
	listeners map[EventType][]entry
	nextID    uint64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]entry),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], entry{id: d.nextID, listener: listener})
	return Subscription{d: d, eventType: eventType, id: d.nextID}
}

// SubscribeFunc is Subscribe for a plain function.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) Subscription {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

func (d *Dispatcher) remove(eventType EventType, id uint64) {
	listeners := d.listeners[eventType]
	for i, e := range listeners {
		if e.id == id {
			// Copy instead of shifting in place: a Dispatch in progress may
			// still be ranging over the old slice.
			next := make([]entry, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			next = append(next, listeners[i+1:]...)
			if len(next) == 0 {
				delete(d.listeners, eventType)
			} else {
				d.listeners[eventType] = next
			}
			return
		}
	}
}

// count returns how many listeners are registered for eventType.
func (d *Dispatcher) count(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch sends event to every listener subscribed at the time of the call.
func (d *Dispatcher) Dispatch(event Event) {
	for _, e := range d.listeners[event.Type] {
		e.listener.OnEvent(event)
	}
}
