package editor

// DefaultHistoryCapacity is the number of states History keeps.
const DefaultHistoryCapacity = 20

// Snapshot is an immutable deep copy of a document. It is only read when a
// new document is rebuilt from it.
type Snapshot struct {
	doc *Document
}

// Width returns the canvas width the snapshot recorded.
func (s *Snapshot) Width() int { return s.doc.width }

// Height returns the canvas height the snapshot recorded.
func (s *Snapshot) Height() int { return s.doc.height }

// LayerCount returns the number of layers recorded.
func (s *Snapshot) LayerCount() int { return len(s.doc.layers) }

// Document rebuilds a fresh, independent document from the snapshot.
func (s *Snapshot) Document() *Document {
	return s.doc.Clone()
}

// History is a bounded linear undo stack. The cursor always points at the
// entry for the displayed state.
type History struct {
	entries  []*Snapshot
	cursor   int
	capacity int
}

// NewHistory creates an empty history holding at most capacity entries.
// Capacities below 1 select DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity, cursor: -1}
}

// Checkpoint records doc as the newest state. Entries after the cursor are
// discarded; when full, the oldest entry is evicted. It returns the number
// of entries evicted (0 or 1).
func (h *History) Checkpoint(doc *Document) int {
	clear(h.entries[h.cursor+1:])
	h.entries = append(h.entries[:h.cursor+1], &Snapshot{doc: doc.Clone()})
	evicted := 0
	if len(h.entries) > h.capacity {
		evicted = len(h.entries) - h.capacity
		clear(h.entries[:evicted])
		h.entries = h.entries[evicted:]
	}
	h.cursor = len(h.entries) - 1
	return evicted
}

// Reset discards every entry and records doc as the only one.
func (h *History) Reset(doc *Document) {
	clear(h.entries)
	h.entries = h.entries[:0]
	h.cursor = -1
	h.Checkpoint(doc)
}

// Undo steps back. It returns false at the oldest entry.
func (h *History) Undo() (*Snapshot, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps forward. It returns false at the newest entry.
func (h *History) Redo() (*Snapshot, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Current returns the entry under the cursor, or nil when empty.
func (h *History) Current() *Snapshot {
	if h.cursor < 0 {
		return nil
	}
	return h.entries[h.cursor]
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the index of the current entry, or -1 when empty.
func (h *History) Cursor() int { return h.cursor }

// Capacity returns the maximum number of entries.
func (h *History) Capacity() int { return h.capacity }
