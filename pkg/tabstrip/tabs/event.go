package tabs

import "github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"

// EventType identifies an event.
type EventType string

const (
	EventKeyDown  EventType = "keydown"
	EventKeyUp    EventType = "keyup"
	EventClick    EventType = "click"
	EventFocusIn  EventType = "focusin"
	EventFocusOut EventType = "focusout"
	EventChange   EventType = "change"
)

// Event is dispatched at a target node and, when Bubbles is set, at every
// ancestor after it.
type Event struct {
	Type    EventType
	Key     constants.Key // keydown and keyup only
	Target  Node
	Bubbles bool

	// CurrentTarget is the node whose listeners are running.
	CurrentTarget Node

	prevented bool
	stopped   bool
}

// NewEvent creates a bubbling event of type typ.
func NewEvent(typ EventType, target Node) *Event {
	return &Event{Type: typ, Target: target, Bubbles: true}
}

// NewKeyEvent creates a bubbling keydown or keyup event.
func NewKeyEvent(typ EventType, key constants.Key, target Node) *Event {
	return &Event{Type: typ, Key: key, Target: target, Bubbles: true}
}

// PreventDefault marks the event as suppressed. Listeners may call it any
// time before the frame after dispatch; the strip checks it then.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// StopPropagation keeps the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles a dispatched event.
type Listener func(e *Event)

type listenerSet struct {
	byType map[EventType][]Listener
}

// AddEventListener registers fn for events of type typ.
func (l *listenerSet) AddEventListener(typ EventType, fn Listener) {
	if fn == nil {
		return
	}
	if l.byType == nil {
		l.byType = make(map[EventType][]Listener)
	}
	l.byType[typ] = append(l.byType[typ], fn)
}

func (l *listenerSet) listeners() *listenerSet {
	return l
}

func (l *listenerSet) fire(e *Event) {
	// Copy so listeners added during dispatch wait for the next event.
	fns := append([]Listener(nil), l.byType[e.Type]...)
	for _, fn := range fns {
		fn(e)
	}
}

type eventTarget interface {
	Node
	listeners() *listenerSet
}

// dispatch runs the listeners of the target and then, for bubbling events,
// of each ancestor.
func dispatch(e *Event) {
	for n := e.Target; n != nil; n = n.ParentNode() {
		if et, ok := n.(eventTarget); ok {
			e.CurrentTarget = n
			et.listeners().fire(e)
		}
		if !e.Bubbles || e.stopped {
			break
		}
	}
	e.CurrentTarget = nil
}
