package tabs

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

// Measurer reports the size of rendered label text.
type Measurer interface {
	MeasureText(text string) (w, h float64)
}

// MonospaceMeasurer measures text as a fixed advance per rune. It is the
// default until a renderer calls Layout with its own Measurer.
type MonospaceMeasurer struct {
	Advance, Height float64
}

func (m MonospaceMeasurer) MeasureText(text string) (float64, float64) {
	return float64(utf8.RuneCountInString(text)) * m.Advance, m.Height
}

// Metrics are the fixed sizes used to lay out items.
type Metrics struct {
	PaddingX, PaddingY float64
	IconSize           float64
	InlineGap          float64 // between an inline icon and the label
	StackGap           float64 // between a stacked icon and the label
	MinExtent          float64 // smallest main-axis extent of an item
	PrimaryThickness   float64
	SecondaryThickness float64
	PillPadding        float64
}

// DefaultMetrics returns the metrics used when none are configured.
func DefaultMetrics() Metrics {
	return Metrics{
		PaddingX:           16,
		PaddingY:           12,
		IconSize:           24,
		InlineGap:          8,
		StackGap:           2,
		MinExtent:          48,
		PrimaryThickness:   3,
		SecondaryThickness: 2,
		PillPadding:        12,
	}
}

type layoutState struct {
	viewport      Rect
	measurer      Measurer
	metrics       Metrics
	contentExtent float64
	scrollMargin  float64

	scroll      float64
	scrollFrom  float64
	scrollTo    float64
	scrollStart time.Time
	scrolling   bool
}

func newLayoutState() layoutState {
	return layoutState{
		measurer:     MonospaceMeasurer{Advance: 8, Height: 16},
		metrics:      DefaultMetrics(),
		scrollMargin: constants.DefaultScrollMargin,
	}
}

// Layout places the items inside viewport, measuring labels with m. A nil m
// keeps the current measurer.
func (t *Tabs) Layout(viewport Rect, m Measurer) {
	t.viewport = viewport
	if m != nil {
		t.measurer = m
	}
	t.relayout()
	t.clampScroll()
}

// SetMetrics replaces the layout metrics. They apply on the next Layout.
func (t *Tabs) SetMetrics(m Metrics) {
	t.metrics = m
}

// Viewport returns the rectangle the strip is drawn in.
func (t *Tabs) Viewport() Rect {
	return t.viewport
}

// ContentExtent returns the total length of the items along the orientation
// axis.
func (t *Tabs) ContentExtent() float64 {
	return t.contentExtent
}

func (t *Tabs) relayout() {
	m := t.metrics
	o := t.orientation

	type sized struct {
		content, icon, label Rect
	}
	boxes := make([]sized, len(t.items))
	cross := 0.0
	for i, item := range t.items {
		lw, lh := t.measurer.MeasureText(item.label)
		var b sized
		switch {
		case item.icon == "":
			b.label = Rect{W: lw, H: lh}
		case item.inlineIcon:
			h := math.Max(m.IconSize, lh)
			b.icon = Rect{Y: (h - m.IconSize) / 2, W: m.IconSize, H: m.IconSize}
			b.label = Rect{X: m.IconSize + m.InlineGap, Y: (h - lh) / 2, W: lw, H: lh}
		default:
			w := math.Max(m.IconSize, lw)
			b.icon = Rect{X: (w - m.IconSize) / 2, W: m.IconSize, H: m.IconSize}
			b.label = Rect{X: (w - lw) / 2, Y: m.IconSize + m.StackGap, W: lw, H: lh}
		}
		b.content = union(b.icon, b.label)
		boxes[i] = b
		if o == Horizontal {
			cross = math.Max(cross, b.content.H+2*m.PaddingY)
		} else {
			cross = math.Max(cross, b.content.W+2*m.PaddingX)
		}
	}
	if o == Horizontal {
		cross = math.Max(cross, t.viewport.H)
	} else {
		cross = math.Max(cross, t.viewport.W)
	}

	pos := 0.0
	for i, item := range t.items {
		b := boxes[i]
		var bounds Rect
		if o == Horizontal {
			bounds = Rect{X: pos, W: math.Max(b.content.W+2*m.PaddingX, m.MinExtent), H: cross}
		} else {
			bounds = Rect{Y: pos, W: cross, H: math.Max(b.content.H+2*m.PaddingY, m.MinExtent)}
		}
		dx := bounds.X + (bounds.W-b.content.W)/2
		dy := bounds.Y + (bounds.H-b.content.H)/2
		item.bounds = bounds
		item.content = b.content.Translate(dx, dy)
		item.iconRect = b.icon.Translate(dx, dy)
		item.labelRect = b.label.Translate(dx, dy)
		item.indicator = t.indicatorFor(bounds, item.content)
		pos += bounds.Extent(o)
	}
	t.contentExtent = pos
}

func (t *Tabs) indicatorFor(bounds, content Rect) Rect {
	m := t.metrics
	switch {
	case strings.Contains(t.variant, "navigation"):
		return Rect{
			X: content.X - m.PillPadding,
			Y: content.Y - m.PillPadding/3,
			W: content.W + 2*m.PillPadding,
			H: content.H + 2*m.PillPadding/3,
		}
	case strings.Contains(t.variant, "secondary"):
		if t.orientation == Vertical {
			return Rect{X: bounds.X + bounds.W - m.SecondaryThickness, Y: bounds.Y, W: m.SecondaryThickness, H: bounds.H}
		}
		return Rect{X: bounds.X, Y: bounds.Y + bounds.H - m.SecondaryThickness, W: bounds.W, H: m.SecondaryThickness}
	default:
		if t.orientation == Vertical {
			return Rect{X: bounds.X + bounds.W - m.PrimaryThickness, Y: content.Y, W: m.PrimaryThickness, H: content.H}
		}
		return Rect{X: content.X, Y: bounds.Y + bounds.H - m.PrimaryThickness, W: content.W, H: m.PrimaryThickness}
	}
}

func union(a, b Rect) Rect {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	x0, y0 := math.Min(a.X, b.X), math.Min(a.Y, b.Y)
	x1, y1 := math.Max(a.X+a.W, b.X+b.W), math.Max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// toClient maps a rectangle in content coordinates to the screen, applying
// the viewport origin and the scroll position.
func (t *Tabs) toClient(r Rect) Rect {
	r = r.Translate(t.viewport.X, t.viewport.Y)
	if t.orientation == Vertical {
		return r.Translate(0, -t.scroll)
	}
	return r.Translate(-t.scroll, 0)
}

// HitTest returns the node under the point: an item part, an item, or nil.
func (t *Tabs) HitTest(x, y float64) Node {
	if !t.viewport.IsEmpty() && !t.viewport.Contains(x, y) {
		return nil
	}
	for _, item := range t.items {
		if !item.ClientBounds().Contains(x, y) {
			continue
		}
		if item.icon != "" && item.IconRect().Contains(x, y) {
			return item.iconPart
		}
		if item.LabelRect().Contains(x, y) {
			return item.labelPart
		}
		return item
	}
	return nil
}

// ScrollOffset returns the current scroll position along the orientation
// axis.
func (t *Tabs) ScrollOffset() float64 {
	return t.scroll
}

// ScrollTarget returns where the current smooth scroll ends.
func (t *Tabs) ScrollTarget() float64 {
	if t.scrolling {
		return t.scrollTo
	}
	return t.scroll
}

// ScrollItemIntoView scrolls so item, plus the scroll margin on both edges,
// is visible. A nil item means the selected item. The offset is computed
// after the next frame.
func (t *Tabs) ScrollItemIntoView(item *Tab) {
	if item == nil {
		item = t.SelectedItem()
	}
	if item == nil {
		return
	}
	t.doc.sched.RequestFrame(func() {
		if item.parent != t || t.viewport.IsEmpty() {
			return
		}
		o := t.orientation
		offset := item.bounds.Pos(o)
		extent := item.bounds.Extent(o)
		host := t.viewport.Extent(o)
		lo := offset - t.scrollMargin
		hi := offset + extent - host + t.scrollMargin
		t.scrollToOffset(math.Min(lo, math.Max(hi, t.scroll)))
	})
}

func (t *Tabs) maxScroll() float64 {
	return math.Max(0, t.contentExtent-t.viewport.Extent(t.orientation))
}

func (t *Tabs) scrollToOffset(to float64) {
	to = math.Max(0, math.Min(to, t.maxScroll()))
	if ReducedMotion() {
		t.scroll = to
		t.scrolling = false
		return
	}
	if to == t.scroll {
		t.scrolling = false
		return
	}
	t.scrollFrom = t.scroll
	t.scrollTo = to
	t.scrollStart = t.doc.sched.Now()
	t.scrolling = true
}

func (t *Tabs) clampScroll() {
	t.scroll = math.Max(0, math.Min(t.scroll, t.maxScroll()))
	if t.scrolling {
		t.scrollTo = math.Max(0, math.Min(t.scrollTo, t.maxScroll()))
	}
}

// Step advances the smooth scroll to now and reports whether the strip still
// has motion in flight, scroll or indicator.
func (t *Tabs) Step(now time.Time) bool {
	if t.scrolling {
		p := float64(now.Sub(t.scrollStart)) / float64(constants.DefaultScrollDuration)
		if p >= 1 {
			t.scroll = t.scrollTo
			t.scrolling = false
		} else if p > 0 {
			t.scroll = lerp(t.scrollFrom, t.scrollTo, EaseOut(p))
		}
	}
	if t.scrolling {
		return true
	}
	for _, item := range t.items {
		if a := item.animation; a != nil && !a.Finished(now) {
			return true
		}
	}
	return false
}
