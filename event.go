package tracer

import "fmt"

// EventKind is the type of a pointer-contact event.
type EventKind uint8

const (
	// EventBegin is a contact being pressed.
	EventBegin EventKind = iota
	// EventMove is a pressed contact changing position.
	EventMove
	// EventEnd is a contact being released.
	EventEnd
	// EventCancel is a contact being lost, e.g. taken over by the system.
	EventCancel
)

// String returns the lower-case name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "begin"
	case EventMove:
		return "move"
	case EventEnd:
		return "end"
	case EventCancel:
		return "cancel"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// ParseEventKind returns the EventKind named by s.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "begin":
		return EventBegin, nil
	case "move":
		return EventMove, nil
	case "end":
		return EventEnd, nil
	case "cancel":
		return EventCancel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}

// Event is one entry of the pointer-contact stream. X and Y are ignored
// for end and cancel events.
type Event struct {
	Kind EventKind
	ID   ContactID
	X, Y float64
}

// Handle dispatches ev to the matching engine operation. Events of an
// unknown kind are ignored.
func (e *Engine) Handle(ev Event) {
	switch ev.Kind {
	case EventBegin:
		e.Begin(ev.ID, ev.X, ev.Y)
	case EventMove:
		e.Move(ev.ID, ev.X, ev.Y)
	case EventEnd:
		e.End(ev.ID)
	case EventCancel:
		e.Cancel(ev.ID)
	}
}
