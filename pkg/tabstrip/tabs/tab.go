package tabs

import (
	"strconv"
	"strings"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

// Attribute names mirrored on a Tab.
const (
	AttrSelected = "selected"
	AttrDisabled = "disabled"
	AttrVariant  = "variant"
	AttrTabIndex = "tabindex"
)

// Tab is one selectable item of a strip. Its selected state, variant and
// inherited disabled state are written by the strip it belongs to.
type Tab struct {
	listenerSet

	label      string
	icon       string
	inlineIcon bool

	variant           string
	selected          bool
	disabled          bool
	inheritedDisabled bool
	attrs             map[string]string

	parent     *Tabs
	attached   bool
	canAnimate bool
	animation  *Animation

	bounds    Rect
	content   Rect
	indicator Rect
	iconRect  Rect
	labelRect Rect
	iconPart  *Part
	labelPart *Part
}

// TabOption configures a Tab.
type TabOption func(*Tab)

// WithIcon sets the name of the icon shown in the icon slot.
func WithIcon(name string) TabOption {
	return func(t *Tab) { t.icon = name }
}

// WithInlineIcon renders the icon beside the label instead of above it.
func WithInlineIcon() TabOption {
	return func(t *Tab) { t.inlineIcon = true }
}

// WithTabDisabled creates the tab disabled.
func WithTabDisabled() TabOption {
	return func(t *Tab) { t.SetDisabled(true) }
}

// NewTab creates a detached tab showing label.
func NewTab(label string, opts ...TabOption) *Tab {
	t := &Tab{
		label:   label,
		variant: "primary",
		attrs:   map[string]string{AttrVariant: "primary"},
	}
	t.iconPart = &Part{Name: PartIcon, tab: t}
	t.labelPart = &Part{Name: PartLabel, tab: t}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ParentNode returns the strip the tab belongs to.
func (t *Tab) ParentNode() Node {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

// Parent returns the strip the tab belongs to, or nil.
func (t *Tab) Parent() *Tabs {
	return t.parent
}

// Label returns the label text.
func (t *Tab) Label() string { return t.label }

// SetLabel replaces the label text. It is measured on the next Layout.
func (t *Tab) SetLabel(l string) { t.label = l }

// Icon returns the icon path, or "" when the tab has none.
func (t *Tab) Icon() string { return t.icon }

// InlineIcon reports whether the icon sits beside the label instead of above it.
func (t *Tab) InlineIcon() bool { return t.inlineIcon }

// SetInlineIcon moves the icon beside the label. It applies on the next Layout.
func (t *Tab) SetInlineIcon(v bool) { t.inlineIcon = v }

// Variant returns the variant pushed down by the strip.
func (t *Tab) Variant() string { return t.variant }

// Selected reports whether the tab carries the selection.
func (t *Tab) Selected() bool { return t.selected }

// Disabled reports whether the tab is disabled on its own or through its
// strip.
func (t *Tab) Disabled() bool {
	return t.disabled || t.inheritedDisabled
}

// SetDisabled sets the tab's own disabled state. The strip moves its
// selection off a tab that becomes disabled.
func (t *Tab) SetDisabled(disabled bool) {
	if disabled == t.disabled {
		return
	}
	t.disabled = disabled
	t.reflectDisabled()
	if t.parent != nil {
		t.parent.requestUpdate(changedDisabled)
	}
}

func (t *Tab) setInheritedDisabled(disabled bool) {
	t.inheritedDisabled = disabled
	t.reflectDisabled()
}

func (t *Tab) reflectDisabled() {
	if t.Disabled() {
		t.attrs[AttrDisabled] = ""
		if t.HasFocus() {
			t.Blur()
		}
	} else {
		delete(t.attrs, AttrDisabled)
	}
}

func (t *Tab) setVariant(v string) {
	t.variant = v
	t.attrs[AttrVariant] = v
}

// Attribute returns the attribute value and whether it is present.
func (t *Tab) Attribute(name string) (string, bool) {
	v, ok := t.attrs[name]
	return v, ok
}

// HasAttribute reports whether the attribute is present.
func (t *Tab) HasAttribute(name string) bool {
	_, ok := t.attrs[name]
	return ok
}

// SetAttribute sets an attribute. selected, disabled and variant update the
// matching property.
func (t *Tab) SetAttribute(name, value string) {
	switch name {
	case AttrSelected:
		t.attrs[name] = value
		t.setSelected(true)
	case AttrDisabled:
		t.SetDisabled(true)
	case AttrVariant:
		t.setVariant(value)
	default:
		t.attrs[name] = value
	}
}

// RemoveAttribute removes an attribute, updating the matching property.
func (t *Tab) RemoveAttribute(name string) {
	switch name {
	case AttrSelected:
		delete(t.attrs, name)
		t.setSelected(false)
	case AttrDisabled:
		t.SetDisabled(false)
	case AttrVariant:
		t.setVariant("")
	default:
		delete(t.attrs, name)
	}
}

// TabIndex returns 0 when the tab is reachable by sequential navigation and
// the tabindex attribute value otherwise.
func (t *Tab) TabIndex() int {
	v, ok := t.attrs[AttrTabIndex]
	if !ok {
		return 0
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return i
}

// Focus gives the tab input focus. Disabled and detached tabs can't take focus.
func (t *Tab) Focus() {
	if t.Disabled() || t.parent == nil {
		return
	}
	t.parent.doc.setActive(t)
}

// Blur removes focus from the tab if it has it.
func (t *Tab) Blur() {
	if t.HasFocus() {
		t.parent.doc.setActive(nil)
	}
}

// HasFocus reports whether the tab is the document's active element.
func (t *Tab) HasFocus() bool {
	return t.parent != nil && t.parent.doc.active == t
}

// Bounds returns the tab rectangle in strip content coordinates.
func (t *Tab) Bounds() Rect { return t.bounds }

// ContentBounds returns the icon+label box in strip content coordinates.
func (t *Tab) ContentBounds() Rect { return t.content }

// ClientBounds returns the tab rectangle as currently shown on screen.
func (t *Tab) ClientBounds() Rect { return t.toClient(t.bounds) }

// IndicatorRect returns the indicator rectangle as currently shown on screen,
// before any animation transform.
func (t *Tab) IndicatorRect() Rect { return t.toClient(t.indicator) }

// IconRect returns the icon slot as currently shown on screen.
func (t *Tab) IconRect() Rect { return t.toClient(t.iconRect) }

// LabelRect returns the label slot as currently shown on screen.
func (t *Tab) LabelRect() Rect { return t.toClient(t.labelRect) }

func (t *Tab) toClient(r Rect) Rect {
	if t.parent == nil {
		return r
	}
	return t.parent.toClient(r)
}

// Animation returns the indicator animation, or nil when none has played.
func (t *Tab) Animation() *Animation {
	return t.animation
}

// IndicatorFrame returns the indicator opacity and transform at the current
// frame, for renderers.
func (t *Tab) IndicatorFrame() Keyframe {
	rest := hidden
	if t.selected {
		rest = showing
	}
	if t.animation == nil || t.parent == nil {
		return rest
	}
	now := t.parent.doc.sched.Now()
	if t.animation.Finished(now) {
		return rest
	}
	return t.animation.Sample(now)
}

// attach runs when the tab joins a strip. Selection changes animate only
// after one frame has passed, so the initial state never animates.
func (t *Tab) attach(parent *Tabs) {
	t.parent = parent
	if t.attached {
		return
	}
	t.attached = true
	parent.doc.sched.RequestFrame(func() {
		t.canAnimate = true
	})
}

func (t *Tab) detach() {
	if t.HasFocus() {
		t.parent.doc.setActive(nil)
	}
	t.parent = nil
}

func (t *Tab) setSelected(selected bool) {
	if t.selected == selected {
		return
	}
	t.selected = selected
	if t.shouldAnimate() {
		t.animateSelected()
	}
}

func (t *Tab) shouldAnimate() bool {
	return t.canAnimate && !t.Disabled() && !ReducedMotion() && t.parent != nil
}

func (t *Tab) animateSelected() {
	if t.animation != nil {
		t.animation.Cancel()
		t.animation = nil
	}
	frames, ok := t.keyframes()
	if !ok {
		return
	}
	t.animation = newAnimation(frames, t.parent.doc.sched.Now(), constants.DefaultAnimationDuration, EaseOut)
	t.parent.doc.log.Debug("tabs: indicator animation",
		"label", t.label,
		"selected", t.selected,
		"from", frames[0],
		"to", frames[1])
}

// keyframes returns the indicator keyframes for the current transition, or
// false when this transition should not animate.
func (t *Tab) keyframes() ([2]Keyframe, bool) {
	unselected := hidden
	if strings.Contains(t.variant, "navigation") {
		unselected = scaled
	} else if t.selected {
		if from, ok := t.previousIndicator(); ok {
			o := Horizontal
			if strings.Contains(t.variant, "vertical") {
				o = Vertical
			}
			to := t.IndicatorRect()
			scale := 1.0
			if to.Extent(o) > 0 {
				scale = from.Extent(o) / to.Extent(o)
			}
			tr := Identity
			if o == Vertical {
				tr.TranslateY = from.Pos(o) - to.Pos(o)
				tr.ScaleY = scale
			} else {
				tr.TranslateX = from.Pos(o) - to.Pos(o)
				tr.ScaleX = scale
			}
			unselected = Keyframe{Opacity: 1, Transform: tr}
		}
	} else {
		return [2]Keyframe{}, false
	}
	if t.selected {
		return [2]Keyframe{unselected, showing}, true
	}
	return [2]Keyframe{showing, unselected}, true
}

// previousIndicator looks up the indicator of the item the strip selected
// before this one.
func (t *Tab) previousIndicator() (Rect, bool) {
	if t.parent == nil {
		return Rect{}, false
	}
	prev := t.parent.PreviousSelectedItem()
	if prev == nil || prev == t {
		return Rect{}, false
	}
	return prev.IndicatorRect(), true
}
