package tracer

import "slices"

// ContactID identifies one physical pointer or touch contact. It is
// stable from the contact's begin event until its end or cancel event.
type ContactID int64

// Contact is a tracked pointer contact.
type Contact struct {
	ID       ContactID
	Position Point
	Previous Point
}

// GestureState is the mode the engine is in, decided by how many
// contacts were pressed when the baseline was last taken.
type GestureState uint8

const (
	// Idle means no contact is pressed.
	Idle GestureState = iota

	// Dragging means exactly one contact is pressed and moves translate
	// the overlay.
	Dragging

	// Pinching means two or more contacts are pressed. The first two by
	// insertion order scale and rotate the overlay.
	Pinching
)

// String returns a string representation of the gesture state.
func (s GestureState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Pinching:
		return "Pinching"
	default:
		return "Unknown"
	}
}

// DefaultEpsilon is the contact distance below which a two-contact
// baseline is considered degenerate.
const DefaultEpsilon = 1e-6

// session is the baseline captured when the contact count last changed
// (or when a direct override re-based it). All gesture math is relative
// to it, so many small moves never accumulate drift.
type session struct {
	// Dragging
	anchor         ContactID
	start          Point
	startTranslate Point

	// Pinching
	first, second ContactID
	startDistance float64
	startAngle    float64
	startScale    float64
	startRotation float64
}

// Engine turns an ordered stream of pointer-contact events into an
// overlay Transform.
//
// One contact drags. Two contacts pinch: the change in distance scales
// and the change in angle rotates. Additional contacts are tracked but
// do not change the mode while the pinching pair stays pressed.
//
// Engine is not safe for concurrent use. Events must be delivered one
// at a time, in order, from a single goroutine.
type Engine struct {
	contacts  []Contact // insertion order
	state     GestureState
	session   session
	transform Transform
	epsilon   float64
}

// NewEngine creates an idle engine with an identity transform.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		transform: o.initial,
		epsilon:   o.epsilon,
	}
}

// Begin registers a new contact at (x, y) and re-bases the gesture for
// the new contact count. A begin for an id that is already tracked is
// handled as a move.
func (e *Engine) Begin(id ContactID, x, y float64) {
	if e.index(id) >= 0 {
		e.Move(id, x, y)
		return
	}
	p := Pt(x, y)
	e.contacts = append(e.contacts, Contact{ID: id, Position: p, Previous: p})
	e.rebase()
}

// Move updates the position of a tracked contact and recomputes the
// transform. Moves for unknown contacts are ignored.
func (e *Engine) Move(id ContactID, x, y float64) {
	i := e.index(id)
	if i < 0 {
		Logger().Debug("tracer: move for unknown contact ignored", "id", id)
		return
	}
	c := &e.contacts[i]
	c.Previous = c.Position
	c.Position = Pt(x, y)
	e.apply(id)
}

// End removes a contact. Ending an unknown contact is a no-op.
// The transform is left as it is; the remaining contacts get a fresh
// baseline so the next move does not jump.
func (e *Engine) End(id ContactID) {
	i := e.index(id)
	if i < 0 {
		return
	}
	e.contacts = slices.Delete(e.contacts, i, i+1)
	e.rebase()
}

// Cancel removes a contact exactly like End.
func (e *Engine) Cancel(id ContactID) {
	e.End(id)
}

// SetScale overrides the scale directly, for input that does not come
// from a gesture. Values that are not finite and positive are ignored.
// An active gesture continues from the new value.
func (e *Engine) SetScale(v float64) {
	if !isFinite(v) || v <= 0 {
		Logger().Debug("tracer: scale override ignored", "scale", v)
		return
	}
	e.transform.Scale = v
	e.capture()
}

// SetRotation overrides the rotation in degrees. Non-finite values are
// ignored. An active gesture continues from the new value.
func (e *Engine) SetRotation(deg float64) {
	if !isFinite(deg) {
		Logger().Debug("tracer: rotation override ignored", "rotation", deg)
		return
	}
	e.transform.Rotation = deg
	e.capture()
}

// SetTranslation overrides the translation. Non-finite values are
// ignored. An active gesture continues from the new value.
func (e *Engine) SetTranslation(x, y float64) {
	p := Pt(x, y)
	if !p.finite() {
		Logger().Debug("tracer: translation override ignored", "x", x, "y", y)
		return
	}
	e.transform.TranslateX, e.transform.TranslateY = x, y
	e.capture()
}

// Reset restores the identity transform, as when a new reference image
// is loaded. Contacts that are still pressed keep gesturing from there.
func (e *Engine) Reset() {
	e.transform = IdentityTransform()
	e.capture()
}

// Transform returns a snapshot of the current placement.
func (e *Engine) Transform() Transform {
	return e.transform
}

// State returns the current gesture mode.
func (e *Engine) State() GestureState {
	return e.state
}

// Contacts returns the number of tracked contacts.
func (e *Engine) Contacts() int {
	return len(e.contacts)
}

// Contact returns the tracked contact with the given id.
func (e *Engine) Contact(id ContactID) (Contact, bool) {
	i := e.index(id)
	if i < 0 {
		return Contact{}, false
	}
	return e.contacts[i], true
}

func (e *Engine) index(id ContactID) int {
	return slices.IndexFunc(e.contacts, func(c Contact) bool { return c.ID == id })
}

func (e *Engine) position(id ContactID) Point {
	return e.contacts[e.index(id)].Position
}

// rebase picks the gesture mode for the current contact count and
// captures a new baseline.
func (e *Engine) rebase() {
	prev := e.state
	switch n := len(e.contacts); {
	case n == 0:
		e.state = Idle
		e.session = session{}
	case n == 1:
		e.state = Dragging
		e.session = session{anchor: e.contacts[0].ID}
	case n > 2 && e.state == Pinching && e.index(e.session.first) >= 0 && e.index(e.session.second) >= 0:
		// Extra contacts do not disturb a running pinch.
		return
	default:
		e.state = Pinching
		e.session = session{first: e.contacts[0].ID, second: e.contacts[1].ID}
	}
	e.capture()

	if prev != e.state {
		Logger().Debug("tracer: gesture state changed",
			"from", prev, "to", e.state, "contacts", len(e.contacts))
	}
}

// capture snapshots the current positions and transform into the
// session baseline without changing the mode or the tracked pair.
func (e *Engine) capture() {
	switch e.state {
	case Dragging:
		e.session.start = e.position(e.session.anchor)
		e.session.startTranslate = e.transform.Translation()
	case Pinching:
		a, b := e.position(e.session.first), e.position(e.session.second)
		e.session.startDistance = a.Distance(b)
		e.session.startAngle = a.AngleTo(b)
		e.session.startScale = e.transform.Scale
		e.session.startRotation = e.transform.Rotation
	}
}

// apply recomputes the transform after contact id moved.
func (e *Engine) apply(id ContactID) {
	switch e.state {
	case Dragging:
		if id != e.session.anchor {
			return
		}
		d := e.position(id).Sub(e.session.start)
		t := e.session.startTranslate.Add(d)
		e.transform.TranslateX, e.transform.TranslateY = t.X, t.Y

	case Pinching:
		if id != e.session.first && id != e.session.second {
			return
		}
		a, b := e.position(e.session.first), e.position(e.session.second)
		dist := a.Distance(b)
		if dist < e.epsilon {
			return
		}
		// A baseline taken with coincident contacts has no usable
		// distance; scale holds until the next transition.
		ratio := 1.0
		if e.session.startDistance >= e.epsilon {
			ratio = dist / e.session.startDistance
		}
		e.transform.Scale = e.session.startScale * ratio
		e.transform.Rotation = e.session.startRotation + (a.AngleTo(b) - e.session.startAngle)
	}
}
