// Package tabs implements an accessible tab strip: a Tabs container managing
// selectable Tab items with keyboard navigation, roving focus, an animated
// selection indicator and scroll-into-view.
//
// Everything runs on a frame.Scheduler. Input enters through a Document,
// which owns focus and routes key and click events to the strips it hosts.
// Interactions wait one frame before they commit so listeners can veto them
// with Event.PreventDefault.
package tabs

import (
	"strings"
)

type changeSet uint8

const (
	changedItems changeSet = 1 << iota
	changedVariant
	changedDisabled
	changedSelected
)

func (c changeSet) has(flags changeSet) bool {
	return c&flags != 0
}

// Tabs is the strip container. It owns its items, the selected index and the
// roving focus assignment.
type Tabs struct {
	listenerSet

	doc *Document

	children []*Tab
	items    []*Tab

	selected         int
	selectedBefore   int
	previousSelected int
	variant          string
	orientation      Orientation
	disabled         bool
	selectOnFocus    bool

	pending      changeSet
	updateQueued bool
	afterUpdate  []func()

	layoutState
}

// TabsOption configures a Tabs.
type TabsOption func(*Tabs)

// WithVariant sets the styling variant.
func WithVariant(variant string) TabsOption {
	return func(t *Tabs) { t.SetVariant(variant) }
}

// WithSelected sets the initially selected index.
func WithSelected(i int) TabsOption {
	return func(t *Tabs) { t.SetSelected(i) }
}

// WithDisabled creates the strip disabled.
func WithDisabled() TabsOption {
	return func(t *Tabs) { t.SetDisabled(true) }
}

// WithSelectOnFocus makes keyboard focus changes select the focused item.
func WithSelectOnFocus() TabsOption {
	return func(t *Tabs) { t.SetSelectOnFocus(true) }
}

// WithScrollMargin overrides the space kept visible around a scrolled-to item.
func WithScrollMargin(margin float64) TabsOption {
	return func(t *Tabs) { t.scrollMargin = margin }
}

// WithMetrics overrides the layout metrics.
func WithMetrics(m Metrics) TabsOption {
	return func(t *Tabs) { t.metrics = m }
}

// NewTabs creates a strip on doc holding items.
func NewTabs(doc *Document, items []*Tab, opts ...TabsOption) *Tabs {
	t := &Tabs{
		doc:              doc,
		previousSelected: -1,
		variant:          "primary",
		layoutState:      newLayoutState(),
	}
	t.AddEventListener(EventKeyDown, t.handleKeyDown)
	t.AddEventListener(EventKeyUp, t.handleKeyUp)
	t.AddEventListener(EventClick, t.handleClick)
	t.AddEventListener(EventFocusIn, t.handleFocusIn)
	t.AddEventListener(EventFocusOut, t.handleFocusOut)
	doc.register(t)

	t.Append(items...)
	for _, opt := range opts {
		opt(t)
	}
	t.SetSelected(t.selected)
	// The initial selection has no predecessor.
	t.selectedBefore = -1
	t.requestUpdate(changedVariant | changedDisabled | changedSelected)
	return t
}

// ParentNode returns the document.
func (t *Tabs) ParentNode() Node {
	return t.doc
}

// Document returns the document the strip lives on.
func (t *Tabs) Document() *Document {
	return t.doc
}

// Items returns a copy of the child list.
func (t *Tabs) Items() []*Tab {
	return append([]*Tab(nil), t.items...)
}

// Len returns the number of items.
func (t *Tabs) Len() int {
	return len(t.items)
}

// Item returns the item at i, or nil when i is out of range.
func (t *Tabs) Item(i int) *Tab {
	if i < 0 || i >= len(t.items) {
		return nil
	}
	return t.items[i]
}

// IndexOf returns the index of item, or -1.
func (t *Tabs) IndexOf(item *Tab) int {
	if item == nil {
		return -1
	}
	for i, it := range t.items {
		if it == item {
			return i
		}
	}
	return -1
}

// Selected returns the selected index.
func (t *Tabs) Selected() int {
	return t.selected
}

// SetSelected selects the item at i. A disabled target is replaced by the
// next enabled item. Programmatic selection never fires change.
func (t *Tabs) SetSelected(i int) {
	if item := t.Item(i); item != nil && item.Disabled() && !t.disabled {
		if next := t.findFocusableItem(i, false); next != nil {
			i = t.IndexOf(next)
		}
	}
	if i == t.selected {
		return
	}
	if !t.pending.has(changedSelected) {
		t.selectedBefore = t.selected
	}
	t.selected = i
	t.requestUpdate(changedSelected)
}

// SelectedItem returns the selected item, or nil.
func (t *Tabs) SelectedItem() *Tab {
	return t.Item(t.selected)
}

// PreviousSelected returns the index selected before the latest reconciled
// change, or -1 before the first one.
func (t *Tabs) PreviousSelected() int {
	return t.previousSelected
}

// PreviousSelectedItem returns the item selected before the latest change,
// or nil.
func (t *Tabs) PreviousSelectedItem() *Tab {
	return t.Item(t.previousSelected)
}

// FocusedItem returns the item that has focus, or nil.
func (t *Tabs) FocusedItem() *Tab {
	for _, item := range t.items {
		if item.HasFocus() {
			return item
		}
	}
	return nil
}

// FocusedIndex returns the index of the focused item, or -1.
func (t *Tabs) FocusedIndex() int {
	return t.IndexOf(t.FocusedItem())
}

// Variant returns the styling variant.
func (t *Tabs) Variant() string {
	return t.variant
}

// SetVariant sets the styling variant. A variant containing "vertical"
// switches the strip to vertical orientation.
func (t *Tabs) SetVariant(variant string) {
	if variant == t.variant {
		return
	}
	t.variant = variant
	t.orientation = Horizontal
	if strings.Contains(variant, "vertical") {
		t.orientation = Vertical
	}
	t.requestUpdate(changedVariant)
}

// Orientation returns the axis derived from the variant.
func (t *Tabs) Orientation() Orientation {
	return t.orientation
}

// Disabled reports whether the whole strip is disabled.
func (t *Tabs) Disabled() bool {
	return t.disabled
}

// SetDisabled disables or enables every item.
func (t *Tabs) SetDisabled(disabled bool) {
	if disabled == t.disabled {
		return
	}
	t.disabled = disabled
	t.requestUpdate(changedDisabled)
}

// SelectOnFocus reports whether keyboard focus changes select.
func (t *Tabs) SelectOnFocus() bool {
	return t.selectOnFocus
}

// SetSelectOnFocus sets whether keyboard focus changes select.
func (t *Tabs) SetSelectOnFocus(v bool) {
	t.selectOnFocus = v
}

// Append adds items to the end of the strip.
func (t *Tabs) Append(items ...*Tab) {
	for _, item := range items {
		t.adopt(item)
		t.children = append(t.children, item)
	}
	t.childrenChanged()
}

// Insert adds item at index i, clamped to the valid range.
func (t *Tabs) Insert(i int, item *Tab) {
	t.adopt(item)
	if i < 0 {
		i = 0
	}
	if i > len(t.children) {
		i = len(t.children)
	}
	t.children = append(t.children, nil)
	copy(t.children[i+1:], t.children[i:])
	t.children[i] = item
	t.childrenChanged()
}

// Remove detaches item from the strip.
func (t *Tabs) Remove(item *Tab) {
	if !t.removeChild(item) {
		return
	}
	item.detach()
	t.childrenChanged()
}

// Move repositions item to index i.
func (t *Tabs) Move(item *Tab, i int) {
	if !t.removeChild(item) {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(t.children) {
		i = len(t.children)
	}
	t.children = append(t.children, nil)
	copy(t.children[i+1:], t.children[i:])
	t.children[i] = item
	t.childrenChanged()
}

func (t *Tabs) adopt(item *Tab) {
	if item.parent != nil && item.parent != t {
		item.parent.Remove(item)
	} else if item.parent == t {
		t.removeChild(item)
	}
	item.attach(t)
}

func (t *Tabs) removeChild(item *Tab) bool {
	for i, c := range t.children {
		if c == item {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return true
		}
	}
	return false
}

// childrenChanged rebuilds the child list. Indices held before the call are
// no longer meaningful.
func (t *Tabs) childrenChanged() {
	t.items = append(t.items[:0:0], t.children...)
	t.relayout()
	t.requestUpdate(changedItems)
}

// requestUpdate batches changes into one reconciliation on the task queue.
func (t *Tabs) requestUpdate(c changeSet) {
	t.pending |= c
	if t.updateQueued {
		return
	}
	t.updateQueued = true
	t.doc.sched.Post(t.performUpdate)
}

// UpdateComplete runs fn once pending updates have been reconciled.
func (t *Tabs) UpdateComplete(fn func()) {
	if !t.updateQueued {
		t.doc.sched.Post(fn)
		return
	}
	t.afterUpdate = append(t.afterUpdate, fn)
}

func (t *Tabs) performUpdate() {
	changed := t.pending
	t.pending = 0
	t.updateQueued = false
	if changed.has(changedSelected) {
		t.previousSelected = t.selectedBefore
	}
	t.updated(changed)

	waiting := t.afterUpdate
	t.afterUpdate = nil
	for _, fn := range waiting {
		fn()
	}
}

func (t *Tabs) updated(changed changeSet) {
	if changed.has(changedItems | changedDisabled) {
		if i := t.resolveSelected(); i != t.selected {
			if !changed.has(changedSelected) {
				t.previousSelected = t.selected
			}
			t.selected = i
			changed |= changedSelected
		}
	}
	if changed.has(changedItems | changedVariant | changedDisabled) {
		for _, item := range t.items {
			item.setVariant(t.variant)
			item.setInheritedDisabled(t.disabled)
		}
		if changed.has(changedItems | changedVariant) {
			t.relayout()
		}
	}
	if changed.has(changedItems | changedVariant | changedDisabled | changedSelected) {
		selected := t.SelectedItem()
		for _, item := range t.items {
			if item != selected && item.HasAttribute(AttrSelected) {
				item.RemoveAttribute(AttrSelected)
			}
		}
		if selected != nil && !selected.HasAttribute(AttrSelected) {
			selected.SetAttribute(AttrSelected, "")
		}
		t.updateFocusableItem()
		t.ScrollItemIntoView(nil)
	}
}

// resolveSelected returns the index selection should rest on after the item
// set or disabled states changed: the selected index clamped into range, then
// moved forward to the nearest enabled item. An empty, disabled or fully
// disabled strip keeps its index.
func (t *Tabs) resolveSelected() int {
	n := len(t.items)
	if n == 0 || t.disabled {
		return t.selected
	}
	i := min(max(t.selected, 0), n-1)
	if item := t.findFocusableItem(i, false); item != nil {
		return t.IndexOf(item)
	}
	return t.selected
}

// FocusableItem returns the item reachable by sequential navigation: the
// focused item, else the selected item, else the first enabled item.
func (t *Tabs) FocusableItem() *Tab {
	if item := t.FocusedItem(); item != nil {
		return item
	}
	if item := t.SelectedItem(); item != nil {
		return item
	}
	return t.findFocusableItem(0, false)
}

// updateFocusableItem makes exactly one item reachable by sequential
// navigation.
func (t *Tabs) updateFocusableItem() {
	target := t.FocusableItem()
	for _, item := range t.items {
		if item == target {
			item.RemoveAttribute(AttrTabIndex)
		} else {
			item.SetAttribute(AttrTabIndex, "-1")
		}
	}
}
