package tabs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

func fiveTabs(t *testing.T, opts ...TabsOption) *harness {
	h := newHarness(t, []string{"Tab 1", "Tab 2", "Tab 3", "Tab 4", "Tab 5"}, opts...)
	h.strip.Layout(Rect{W: 100, H: 48}, nil)
	return h
}

func TestLayoutFlowsAlongAxis(t *testing.T) {
	h := newHarness(t, []string{"Alpha", "Be"})

	a, b := h.items[0].Bounds(), h.items[1].Bounds()
	assert.Equal(t, Rect{X: 0, Y: 0, W: 72, H: 48}, a)
	assert.Equal(t, Rect{X: 72, Y: 0, W: 48, H: 48}, b)
	assert.Equal(t, 120.0, h.strip.ContentExtent())

	ind := h.items[0].IndicatorRect()
	assert.Equal(t, Rect{X: 16, Y: 45, W: 40, H: 3}, ind)
}

func TestLayoutStacksIconAboveLabel(t *testing.T) {
	items := []*Tab{NewTab("Mail", WithIcon("mail")), NewTab("Chat", WithIcon("chat"), WithInlineIcon())}
	newHarnessWith(t, items)

	stacked := items[0]
	assert.Less(t, stacked.IconRect().Y+stacked.IconRect().H, stacked.LabelRect().Y+1)

	inline := items[1]
	assert.Less(t, inline.IconRect().X+inline.IconRect().W, inline.LabelRect().X+1)
	assert.Greater(t, inline.Bounds().W, stacked.Bounds().W)
}

func TestSecondaryIndicatorSpansItem(t *testing.T) {
	h := newHarness(t, []string{"Alpha"}, WithVariant("secondary"))

	b := h.items[0].Bounds()
	ind := h.items[0].IndicatorRect()
	assert.Equal(t, b.W, ind.W)
	assert.Equal(t, b.Y+b.H, ind.Y+ind.H)
}

func TestScrollItemIntoViewKeepsMargin(t *testing.T) {
	h := fiveTabs(t)
	SetReducedMotion(true)

	// Items are 72 wide; the fourth spans 216..288 in a 100 wide viewport.
	h.strip.SetSelected(3)
	h.sched.Drain()
	assert.Zero(t, h.strip.ScrollOffset(), "scrolling waits for the next frame")

	h.tick()
	assert.Equal(t, 216.0-constants.DefaultScrollMargin, h.strip.ScrollOffset())

	// Back to the first item: the margin would go negative, so clamp to 0.
	h.strip.SetSelected(0)
	h.sched.Drain()
	h.tick()
	assert.Zero(t, h.strip.ScrollOffset())

	// An item that can't fit with both margins keeps its leading margin.
	h.strip.SetSelected(4)
	h.sched.Drain()
	h.tick()
	assert.Equal(t, 288.0-constants.DefaultScrollMargin, h.strip.ScrollOffset())
}

func TestScrollLeavesVisibleItemAlone(t *testing.T) {
	h := fiveTabs(t, WithScrollMargin(0))
	SetReducedMotion(true)

	h.strip.SetSelected(2)
	h.sched.Drain()
	h.tick()
	require.Equal(t, 144.0+72.0-100.0, h.strip.ScrollOffset())

	// Item 2 is fully visible at 140, so nothing moves.
	h.strip.scroll = 140
	h.strip.ScrollItemIntoView(h.items[2])
	h.tick()
	assert.Equal(t, 140.0, h.strip.ScrollOffset())
}

func TestSmoothScrollSteps(t *testing.T) {
	h := fiveTabs(t)

	h.strip.SetSelected(3)
	h.sched.Drain()
	h.tick()

	assert.Equal(t, 168.0, h.strip.ScrollTarget())
	assert.True(t, h.strip.Step(h.now.Add(constants.DefaultScrollDuration/2)))
	mid := h.strip.ScrollOffset()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 168.0)

	assert.False(t, h.strip.Step(h.now.Add(time.Second)))
	assert.Equal(t, 168.0, h.strip.ScrollOffset())
}

func TestKeyUpScrollsFocusedItem(t *testing.T) {
	h := fiveTabs(t)
	SetReducedMotion(true)

	h.press(constants.KeyEnd)
	require.True(t, h.items[4].HasFocus())

	// A repeated keyup scrolls the item that now has focus.
	h.doc.KeyUp(constants.KeyEnd)
	h.tick()
	assert.Equal(t, 288.0-constants.DefaultScrollMargin, h.strip.ScrollOffset())
}

func TestHitTestResolvesParts(t *testing.T) {
	items := []*Tab{NewTab("Alpha"), NewTab("Be", WithIcon("b"))}
	h := newHarnessWith(t, items)

	label := items[0].LabelRect()
	n := h.strip.HitTest(label.X+1, label.Y+1)
	require.IsType(t, &Part{}, n)
	assert.Equal(t, PartLabel, n.(*Part).Name)
	assert.Same(t, items[0], n.(*Part).Tab())

	icon := items[1].IconRect()
	n = h.strip.HitTest(icon.X+1, icon.Y+1)
	require.IsType(t, &Part{}, n)
	assert.Equal(t, PartIcon, n.(*Part).Name)

	b := items[0].ClientBounds()
	assert.Same(t, items[0], h.strip.HitTest(b.X+1, b.Y+1))

	assert.Nil(t, h.strip.HitTest(599, 47))
	assert.Nil(t, h.strip.HitTest(-5, 10))
}

func TestClickAtUsesScrolledGeometry(t *testing.T) {
	h := fiveTabs(t)
	SetReducedMotion(true)
	h.strip.SetSelected(3)
	h.sched.Drain()
	h.tick()

	// The strip is scrolled by 168, so item 2 (144..216) shows at -24..48.
	h.doc.ClickAt(10, 2)
	h.settle()
	assert.True(t, h.items[2].HasFocus())
	assert.Equal(t, 2, h.strip.Selected())
	assert.Equal(t, 1, h.changes)
}
