// internal/input/input.go
package input

import "go-artillery/pkg/physics"

// EventKind tells which discrete input happened.
type EventKind int

const (
	Unknown EventKind = iota
	Quit
	KeyDown
	PointerDown
	PointerUp
)

type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
)

type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
)

// Event is one discrete input. Key is set for KeyDown, Button for the
// pointer events.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
}

// Snapshot is everything the frontend observed since the previous tick.
type Snapshot struct {
	Events  []Event
	Pointer physics.Vec2
	Focused bool // the pointer is over the window
}

func QuitEvent() Event {
	return Event{Kind: Quit}
}

func KeyEvent(k Key) Event {
	return Event{Kind: KeyDown, Key: k}
}

func PressEvent(b Button) Event {
	return Event{Kind: PointerDown, Button: b}
}

func ReleaseEvent(b Button) Event {
	return Event{Kind: PointerUp, Button: b}
}

// HasQuit reports whether the snapshot carries a Quit event.
func (s Snapshot) HasQuit() bool {
	for _, ev := range s.Events {
		if ev.Kind == Quit {
			return true
		}
	}
	return false
}

// WithoutPointerEvents returns a copy of the snapshot with every press and
// release removed. The pointer position is kept.
func (s Snapshot) WithoutPointerEvents() Snapshot {
	out := s
	out.Events = make([]Event, 0, len(s.Events))
	for _, ev := range s.Events {
		if ev.Kind != PointerDown && ev.Kind != PointerUp {
			out.Events = append(out.Events, ev)
		}
	}
	return out
}
