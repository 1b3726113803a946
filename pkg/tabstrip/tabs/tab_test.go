package tabs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/frame"
)

func TestIndicatorSlidesFromPreviousSelection(t *testing.T) {
	h := newHarness(t, []string{"Alpha", "Be", "Cee"})
	alpha, be := h.items[0], h.items[1]

	h.strip.SetSelected(1)
	h.sched.Drain()

	anim := be.Animation()
	require.NotNil(t, anim)
	assert.InDelta(t, -72.0, anim.From.Transform.TranslateX, 1e-9)
	assert.InDelta(t, 2.5, anim.From.Transform.ScaleX, 1e-9)
	assert.Equal(t, showing, anim.To)
	assert.Nil(t, alpha.Animation(), "only the newly selected item animates")

	h.strip.SetSelected(0)
	h.sched.Drain()

	anim = alpha.Animation()
	require.NotNil(t, anim)
	from := anim.From
	assert.Equal(t, 1.0, from.Opacity)
	assert.InDelta(t, 72.0, from.Transform.TranslateX, 1e-9)
	assert.InDelta(t, 0.4, from.Transform.ScaleX, 1e-9)
	assert.Zero(t, from.Transform.TranslateY)
	assert.Equal(t, 1.0, from.Transform.ScaleY)
	assert.Equal(t, showing, anim.To)
	assert.Equal(t, constants.DefaultAnimationDuration, anim.Duration)

	assert.Nil(t, be.Animation(), "deselection cancels and suppresses the old animation")

	// The slide maps the previous indicator onto the new one.
	prev := be.IndicatorRect()
	got := from.Transform.Apply(alpha.IndicatorRect())
	assert.InDelta(t, prev.X, got.X, 1e-9)
	assert.InDelta(t, prev.W, got.W, 1e-9)
}

func TestIndicatorSlidesVertically(t *testing.T) {
	h := newHarness(t, []string{"A", "B"}, WithVariant("vertical"))
	a, b := h.items[0], h.items[1]

	h.strip.SetSelected(1)
	h.sched.Drain()

	anim := b.Animation()
	require.NotNil(t, anim)
	tr := anim.From.Transform
	assert.Zero(t, tr.TranslateX)
	assert.InDelta(t, a.IndicatorRect().Y-b.IndicatorRect().Y, tr.TranslateY, 1e-9)
	assert.Less(t, tr.TranslateY, 0.0)
	assert.Equal(t, 1.0, tr.ScaleX)
}

func TestIndicatorFadesInWithoutPreviousGeometry(t *testing.T) {
	h := newHarness(t, []string{"A", "B"})

	h.strip.SetSelected(5)
	h.sched.Drain()
	h.strip.SetSelected(1)
	h.sched.Drain()

	anim := h.items[1].Animation()
	require.NotNil(t, anim)
	assert.Equal(t, hidden, anim.From)
	assert.Equal(t, showing, anim.To)
}

func TestNavigationVariantKeyframes(t *testing.T) {
	h := newHarness(t, []string{"A", "B"}, WithVariant("navigation"))
	a, b := h.items[0], h.items[1]

	h.strip.SetSelected(1)
	h.sched.Drain()

	require.NotNil(t, b.Animation())
	assert.Equal(t, scaled, b.Animation().From)
	assert.Equal(t, showing, b.Animation().To)
	assert.Equal(t, 0.5, b.Animation().From.Transform.ScaleX)

	require.NotNil(t, a.Animation())
	assert.Equal(t, showing, a.Animation().From)
	assert.Equal(t, scaled, a.Animation().To)
}

func TestInitialStateDoesNotAnimate(t *testing.T) {
	SetReducedMotion(false)
	sched := frame.NewScheduler(epoch)
	doc := NewDocument(sched)
	items := []*Tab{NewTab("A"), NewTab("B"), NewTab("C")}
	strip := NewTabs(doc, items)
	sched.Drain()

	strip.SetSelected(1)
	sched.Drain()
	assert.Nil(t, items[1].Animation(), "no frame has passed since attach")

	sched.Tick(epoch.Add(16 * time.Millisecond))
	strip.SetSelected(2)
	sched.Drain()
	assert.NotNil(t, items[2].Animation())
}

func TestReducedMotionSkipsAnimation(t *testing.T) {
	h := newHarness(t, []string{"A", "B"})
	SetReducedMotion(true)

	h.strip.SetSelected(1)
	h.sched.Drain()

	assert.True(t, h.items[1].Selected())
	assert.Nil(t, h.items[1].Animation())
}

func TestDisabledItemDoesNotAnimate(t *testing.T) {
	h := newHarness(t, []string{"A", "B"}, WithDisabled())

	h.strip.SetSelected(1)
	h.sched.Drain()

	assert.True(t, h.items[1].Selected())
	assert.Nil(t, h.items[1].Animation())
}

func TestIndicatorFrameSamplesAnimation(t *testing.T) {
	h := newHarness(t, []string{"A", "B"}, WithVariant("navigation"))
	b := h.items[1]

	assert.Equal(t, hidden, b.IndicatorFrame())

	h.strip.SetSelected(1)
	h.sched.Drain()
	h.tick()

	mid := b.IndicatorFrame()
	assert.Greater(t, mid.Opacity, 0.0)
	assert.Less(t, mid.Opacity, 1.0)
	assert.Greater(t, mid.Transform.ScaleX, 0.5)

	h.now = h.now.Add(constants.DefaultAnimationDuration)
	h.sched.Tick(h.now)
	assert.Equal(t, showing, b.IndicatorFrame())
	assert.False(t, h.strip.Step(h.now))
}

func TestTabAttributes(t *testing.T) {
	tab := NewTab("Inbox", WithIcon("inbox"), WithInlineIcon())

	assert.Equal(t, "Inbox", tab.Label())
	assert.Equal(t, "inbox", tab.Icon())
	assert.True(t, tab.InlineIcon())
	assert.Equal(t, "primary", tab.Variant())
	assert.Equal(t, 0, tab.TabIndex())
	assert.Nil(t, tab.ParentNode())

	tab.SetAttribute(AttrDisabled, "")
	assert.True(t, tab.Disabled())
	tab.RemoveAttribute(AttrDisabled)
	assert.False(t, tab.Disabled())

	tab.SetAttribute(AttrTabIndex, "-1")
	assert.Equal(t, -1, tab.TabIndex())

	tab.SetAttribute(AttrVariant, "secondary")
	assert.Equal(t, "secondary", tab.Variant())

	tab.SetAttribute(AttrSelected, "")
	assert.True(t, tab.Selected())
	assert.Nil(t, tab.Animation(), "detached tabs never animate")
}

func TestDisabledTabCannotTakeFocus(t *testing.T) {
	items := []*Tab{NewTab("A"), NewTab("B", WithTabDisabled())}
	h := newHarnessWith(t, items)

	items[1].Focus()
	assert.False(t, items[1].HasFocus())

	items[0].Focus()
	require.True(t, items[0].HasFocus())
	items[0].SetDisabled(true)
	assert.False(t, items[0].HasFocus(), "disabling blurs the tab")
	h.sched.Drain()
}

func TestEaseOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseOut(0))
	assert.Equal(t, 1.0, EaseOut(1))
	assert.Greater(t, EaseOut(0.5), 0.5)

	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := EaseOut(float64(i) / 20)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestAnimationLifecycle(t *testing.T) {
	a := newAnimation([2]Keyframe{hidden, showing}, epoch, 400*time.Millisecond, nil)

	assert.Equal(t, hidden, a.Sample(epoch))
	assert.InDelta(t, 0.5, a.Sample(epoch.Add(200*time.Millisecond)).Opacity, 1e-9)
	assert.False(t, a.Finished(epoch.Add(399*time.Millisecond)))
	assert.True(t, a.Finished(epoch.Add(400*time.Millisecond)))

	a.Cancel()
	assert.True(t, a.Cancelled())
	assert.True(t, a.Finished(epoch))
	assert.Equal(t, showing, a.Sample(epoch))
}
