package panels

// Entry is one step of selection history: the tab that was shown and any
// state its panel returned for restoring position.
type Entry struct {
	Index  int
	Resume any
}

// History is a stack of previously shown tabs.
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{entries: make([]Entry, 0)}
}

// Push records a shown tab.
func (h *History) Push(index int, resume any) {
	h.entries = append(h.entries, Entry{Index: index, Resume: resume})
}

// Pop removes and returns the latest entry, or nil when empty.
func (h *History) Pop() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	e := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return &e
}

// Peek returns the latest entry without removing it, or nil when empty.
func (h *History) Peek() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	return &h.entries[len(h.entries)-1]
}

func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}
