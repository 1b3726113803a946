package tabs

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/frame"
)

// Document owns focus for a set of strips and is the root of the bubbling
// chain. Input from the presentation layer enters here.
type Document struct {
	listenerSet

	sched  *frame.Scheduler
	log    *slog.Logger
	active *Tab
	strips []*Tabs
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithLogger sets the logger used by the document and its strips.
func WithLogger(logger *slog.Logger) DocumentOption {
	return func(d *Document) {
		if logger != nil {
			d.log = logger
		}
	}
}

// NewDocument creates a document running on sched.
func NewDocument(sched *frame.Scheduler, opts ...DocumentOption) *Document {
	d := &Document{
		sched: sched,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ParentNode returns nil; the document is the root.
func (d *Document) ParentNode() Node {
	return nil
}

// Scheduler returns the loop the document runs on.
func (d *Document) Scheduler() *frame.Scheduler {
	return d.sched
}

// Logger returns the document logger.
func (d *Document) Logger() *slog.Logger {
	return d.log
}

// ActiveElement returns the focused tab, or nil when focus is outside every
// strip.
func (d *Document) ActiveElement() *Tab {
	return d.active
}

// Strips returns the strips created on this document, in creation order.
func (d *Document) Strips() []*Tabs {
	return append([]*Tabs(nil), d.strips...)
}

func (d *Document) register(t *Tabs) {
	d.strips = append(d.strips, t)
}

// setActive moves focus to next, firing focusout on the old element and
// focusin on the new one.
func (d *Document) setActive(next *Tab) {
	prev := d.active
	if prev == next {
		return
	}
	d.active = next
	if prev != nil {
		dispatch(NewEvent(EventFocusOut, prev))
	}
	if next != nil {
		dispatch(NewEvent(EventFocusIn, next))
	}
}

// Blur moves focus out of every strip.
func (d *Document) Blur() {
	d.setActive(nil)
	d.sched.Drain()
}

// KeyDown dispatches a keydown for key at the focused tab, or at the first
// strip when nothing has focus. Tab moves focus sequentially.
func (d *Document) KeyDown(key constants.Key) *Event {
	if key == constants.KeyTab {
		d.FocusNext()
		return nil
	}
	return d.dispatchKey(EventKeyDown, key)
}

// KeyUp dispatches a keyup for key.
func (d *Document) KeyUp(key constants.Key) *Event {
	if key == constants.KeyTab {
		return nil
	}
	return d.dispatchKey(EventKeyUp, key)
}

func (d *Document) dispatchKey(typ EventType, key constants.Key) *Event {
	target := d.keyTarget()
	if target == nil {
		return nil
	}
	e := NewKeyEvent(typ, key, target)
	dispatch(e)
	d.sched.Drain()
	return e
}

func (d *Document) keyTarget() Node {
	if d.active != nil {
		return d.active
	}
	if len(d.strips) > 0 {
		return d.strips[0]
	}
	return nil
}

// Click dispatches a click at target. A nil target is ignored.
func (d *Document) Click(target Node) *Event {
	if target == nil {
		return nil
	}
	e := NewEvent(EventClick, target)
	dispatch(e)
	d.sched.Drain()
	return e
}

// ClickAt hit-tests every strip at the point and clicks what it finds.
func (d *Document) ClickAt(x, y float64) *Event {
	for _, s := range d.strips {
		if n := s.HitTest(x, y); n != nil {
			return d.Click(n)
		}
	}
	return nil
}

// FocusNext moves focus to the next tab reachable by sequential navigation.
// Past the last reachable tab focus leaves every strip.
func (d *Document) FocusNext() {
	reachable := d.sequentialOrder()
	next := -1
	if d.active == nil {
		next = 0
	} else {
		for i, tab := range reachable {
			if tab == d.active {
				next = i + 1
				break
			}
		}
	}
	if next >= 0 && next < len(reachable) {
		reachable[next].Focus()
	} else {
		d.setActive(nil)
	}
	d.sched.Drain()
}

func (d *Document) sequentialOrder() []*Tab {
	var out []*Tab
	for _, s := range d.strips {
		for _, tab := range s.items {
			if tab.TabIndex() >= 0 && !tab.Disabled() {
				out = append(out, tab)
			}
		}
	}
	return out
}
