package tabs

import (
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

func (t *Tabs) isNavigationKey(key constants.Key) bool {
	switch key {
	case constants.KeyHome, constants.KeyEnd, constants.KeySpace:
		return true
	case constants.KeyArrowLeft, constants.KeyArrowRight:
		return t.orientation == Horizontal
	case constants.KeyArrowUp, constants.KeyArrowDown:
		return t.orientation == Vertical
	}
	return false
}

// whenNotPrevented runs fn after the next frame unless a listener suppressed
// e by then.
func (t *Tabs) whenNotPrevented(e *Event, fn func()) {
	t.doc.sched.RequestFrame(func() {
		if e.DefaultPrevented() {
			t.doc.log.Debug("tabs: interaction vetoed", "type", e.Type, "key", e.Key)
			return
		}
		fn()
	})
}

func (t *Tabs) handleKeyDown(e *Event) {
	if !t.isNavigationKey(e.Key) {
		return
	}
	key := e.Key
	t.whenNotPrevented(e, func() {
		if t.disabled {
			return
		}
		t.navigate(key)
	})
}

func (t *Tabs) navigate(key constants.Key) {
	n := len(t.items)
	if n == 0 {
		return
	}
	reference := t.FocusedItem()
	if reference == nil {
		reference = t.SelectedItem()
	}
	ref := t.IndexOf(reference)

	target := -1
	switch {
	case key == constants.KeyHome:
		target = 0
	case key == constants.KeyEnd:
		target = n - 1
	case key == constants.KeySpace:
		target = ref
	case key.IsPrevious():
		target = ref - 1
		if target < 0 {
			target = n - 1
		}
	case key.IsNext():
		target = (ref + 1) % n
	}

	item := t.findFocusableItem(target, key == constants.KeyEnd || key.IsPrevious())
	if item == nil {
		return
	}
	// Space also commits when the reference already has focus but isn't
	// selected yet.
	space := key == constants.KeySpace
	if item == reference && !(space && item != t.SelectedItem()) {
		return
	}

	shouldSelect := space || t.selectOnFocus
	before := t.selected
	if shouldSelect {
		t.SetSelected(t.IndexOf(item))
	}
	item.Focus()
	t.updateFocusableItem()
	if shouldSelect && t.selected != before {
		t.dispatchInteraction()
	}
}

// findFocusableItem returns the first enabled item at or after i, searching
// backward when prev is set and wrapping at both ends. It gives up after
// visiting every item once.
func (t *Tabs) findFocusableItem(i int, prev bool) *Tab {
	n := len(t.items)
	if i < 0 || i >= n {
		return nil
	}
	for tries := 0; tries < n; tries++ {
		if !t.items[i].Disabled() {
			return t.items[i]
		}
		if prev {
			i--
		} else {
			i++
		}
		if i >= n {
			i, prev = 0, false
		} else if i < 0 {
			i, prev = n-1, true
		}
	}
	return nil
}

func (t *Tabs) handleKeyUp(e *Event) {
	item := t.FocusedItem()
	if item == nil {
		item = t.SelectedItem()
	}
	t.ScrollItemIntoView(item)
}

// handleClick focuses and selects the clicked item once the veto window has
// passed. A vetoed click changes nothing, focus included.
func (t *Tabs) handleClick(e *Event) {
	target := e.Target
	t.whenNotPrevented(e, func() {
		item := t.closestItem(target)
		if item == nil || item.Disabled() || t.disabled {
			return
		}
		i := t.IndexOf(item)
		changed := i != t.selected
		if changed {
			t.SetSelected(i)
		}
		item.Focus()
		t.updateFocusableItem()
		if changed {
			t.dispatchInteraction()
		}
	})
}

// closestItem walks up from n to the nearest node that is one of the strip's
// own items.
func (t *Tabs) closestItem(n Node) *Tab {
	for ; n != nil; n = n.ParentNode() {
		if item, ok := n.(*Tab); ok && item.parent == t {
			return item
		}
		if n == Node(t) {
			return nil
		}
	}
	return nil
}

func (t *Tabs) handleFocusIn(e *Event) {
	if t.closestItem(e.Target) != nil {
		t.updateFocusableItem()
	}
}

// handleFocusOut hands the roving tab stop back to the selected item once
// focus has left the strip.
func (t *Tabs) handleFocusOut(e *Event) {
	t.UpdateComplete(func() {
		if t.IndexOf(t.doc.ActiveElement()) == -1 {
			t.updateFocusableItem()
		}
	})
}

// dispatchInteraction fires change once the committed state has rendered.
func (t *Tabs) dispatchInteraction() {
	t.doc.sched.RequestFrame(func() {
		t.doc.log.Debug("tabs: selection changed",
			"selected", t.selected,
			"previous", t.previousSelected)
		dispatch(NewEvent(EventChange, t))
	})
}
