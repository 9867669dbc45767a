// internal/event/event.go
package event

import "reflect"

// EventType names a kind of game event.
type EventType string

// Event is a notification about something that happened during a tick.
type Event struct {
	Type EventType
	Data interface{} // payload, see types.go
}

// Listener receives the events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. Listeners must not block.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
// Listeners of uncomparable types, such as ListenerFunc, stay subscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch is safe on a nil Dispatcher, which drops every event.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
