package panels

import (
	"fmt"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/tabs"
)

// PanelFunc renders the panel of one tab.
type PanelFunc func(input any) (result any, err error)

// Switcher maps tab indices to panels.
type Switcher struct {
	panels  map[int]PanelFunc
	history *History
	strip   *tabs.Tabs
	current int
	resume  any
	onShow  func(index int)
}

func New() *Switcher {
	return &Switcher{
		panels:  make(map[int]PanelFunc),
		history: NewHistory(),
	}
}

// Register sets the panel shown for tab index.
func (s *Switcher) Register(index int, fn PanelFunc) *Switcher {
	s.panels[index] = fn
	return s
}

// OnChange sets a callback run after a user-driven selection change has been
// recorded.
func (s *Switcher) OnChange(fn func(index int)) *Switcher {
	s.onShow = fn
	return s
}

// Attach follows strip's change events. Only user-driven changes are
// recorded in history.
func (s *Switcher) Attach(strip *tabs.Tabs) *Switcher {
	s.strip = strip
	s.current = strip.Selected()
	strip.AddEventListener(tabs.EventChange, func(*tabs.Event) {
		s.history.Push(s.current, s.resume)
		s.current = strip.Selected()
		s.resume = nil
		if s.onShow != nil {
			s.onShow(s.current)
		}
	})
	return s
}

// Current returns the tab whose panel is showing.
func (s *Switcher) Current() int {
	return s.current
}

// History returns the selection history.
func (s *Switcher) History() *History {
	return s.history
}

// Show runs the panel of the current tab. A result implementing Resumer
// stores its resume state for when the user comes back.
func (s *Switcher) Show(input any) (any, error) {
	fn, ok := s.panels[s.current]
	if !ok {
		return nil, fmt.Errorf("panels: tab %d has no panel", s.current)
	}
	result, err := fn(input)
	if err != nil {
		return nil, fmt.Errorf("panels: tab %d: %w", s.current, err)
	}
	if r, ok := result.(Resumer); ok {
		s.resume = r.Resume()
	}
	return result, nil
}

// Resumer is implemented by panel results that carry position state.
type Resumer interface {
	Resume() any
}

// Back returns to the previously shown tab and reports it. The strip is
// updated without firing change.
func (s *Switcher) Back() (int, bool) {
	e := s.history.Pop()
	if e == nil {
		return s.current, false
	}
	s.current = e.Index
	s.resume = e.Resume
	if s.strip != nil {
		s.strip.SetSelected(e.Index)
	}
	return e.Index, true
}

// ResumeState returns the resume state stored for the current tab, if any.
func (s *Switcher) ResumeState() any {
	return s.resume
}
