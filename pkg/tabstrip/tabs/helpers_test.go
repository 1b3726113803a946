package tabs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/frame"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// harness drives a single strip on a manual scheduler.
type harness struct {
	t       *testing.T
	sched   *frame.Scheduler
	doc     *Document
	strip   *Tabs
	items   []*Tab
	now     time.Time
	changes int
}

func newHarness(t *testing.T, labels []string, opts ...TabsOption) *harness {
	t.Helper()
	items := make([]*Tab, len(labels))
	for i, l := range labels {
		items[i] = NewTab(l)
	}
	return newHarnessWith(t, items, opts...)
}

func newHarnessWith(t *testing.T, items []*Tab, opts ...TabsOption) *harness {
	t.Helper()
	SetReducedMotion(false)
	t.Cleanup(func() { SetReducedMotion(false) })

	sched := frame.NewScheduler(epoch)
	doc := NewDocument(sched)
	strip := NewTabs(doc, items, opts...)
	strip.Layout(Rect{W: 600, H: 48}, nil)

	h := &harness{t: t, sched: sched, doc: doc, strip: strip, items: items, now: epoch}
	strip.AddEventListener(EventChange, func(*Event) { h.changes++ })
	sched.Drain()
	h.tick()
	return h
}

func (h *harness) tick() {
	h.now = h.now.Add(16 * time.Millisecond)
	h.sched.Tick(h.now)
}

func (h *harness) settle() {
	for i := 0; i < 4; i++ {
		h.tick()
	}
}

// press sends keydown and keyup for key and runs the frame that commits it.
func (h *harness) press(key constants.Key) {
	h.doc.KeyDown(key)
	h.doc.KeyUp(key)
	h.tick()
}

// assertRoving checks that exactly one item is reachable by sequential
// navigation and that it is the focused item, else the selected item.
func (h *harness) assertRoving() {
	h.t.Helper()
	var reachable []*Tab
	for _, item := range h.strip.Items() {
		if item.TabIndex() >= 0 {
			reachable = append(reachable, item)
		}
	}
	require.Len(h.t, reachable, 1, "exactly one item must be tab-reachable")

	want := h.strip.FocusedItem()
	if want == nil {
		want = h.strip.SelectedItem()
	}
	require.Same(h.t, want, reachable[0])
}
