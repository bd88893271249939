// Package history keeps a bounded linear undo/redo stack of page
// snapshots.
package history

import (
	"errors"
	"time"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrOutOfRange    = errors.New("history index out of range")
	ErrEmpty         = errors.New("history is empty")
)

// DefaultCap bounds how many snapshots a history retains.
const DefaultCap = 20

// Entry is one retained snapshot with the label of the change that
// produced it.
type Entry struct {
	Document string
	Label    string
	At       time.Time
}

// History is a linear snapshot stack with a cursor. Pushing while the
// cursor is not at the end discards the redo tail, and the oldest
// entries are evicted once the cap is exceeded. Not safe for
// concurrent use; callers serialize access.
type History struct {
	entries []Entry
	cursor  int
	cap     int
}

// New returns an empty history with the default capacity.
func New() *History {
	return NewWithCap(DefaultCap)
}

// NewWithCap returns an empty history retaining at most cap entries.
func NewWithCap(cap int) *History {
	if cap < 1 {
		cap = 1
	}
	return &History{cursor: -1, cap: cap}
}

// Push appends a snapshot after the cursor, dropping any redo tail,
// then evicts from the front if over capacity. The cursor ends on the
// pushed entry.
func (h *History) Push(document, label string) {
	h.entries = append(h.entries[:h.cursor+1], Entry{
		Document: document,
		Label:    label,
		At:       time.Now(),
	})
	h.cursor = len(h.entries) - 1

	if evicted := len(h.entries) - h.cap; evicted > 0 {
		h.entries = append(h.entries[:0], h.entries[evicted:]...)
		h.cursor -= evicted
	}
}

// Undo moves the cursor one step back and returns that document.
func (h *History) Undo() (string, error) {
	if !h.CanUndo() {
		return "", ErrNothingToUndo
	}
	h.cursor--
	return h.entries[h.cursor].Document, nil
}

// Redo moves the cursor one step forward and returns that document.
func (h *History) Redo() (string, error) {
	if !h.CanRedo() {
		return "", ErrNothingToRedo
	}
	h.cursor++
	return h.entries[h.cursor].Document, nil
}

// JumpTo moves the cursor to index i and returns that document.
func (h *History) JumpTo(i int) (string, error) {
	if i < 0 || i >= len(h.entries) {
		return "", ErrOutOfRange
	}
	h.cursor = i
	return h.entries[i].Document, nil
}

// Current returns the document under the cursor.
func (h *History) Current() (string, error) {
	if h.cursor < 0 {
		return "", ErrEmpty
	}
	return h.entries[h.cursor].Document, nil
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.entries)-1 }

// Len returns the number of retained entries.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the current cursor index, or -1 when empty.
func (h *History) Cursor() int { return h.cursor }

// Entries returns a copy of the retained entries, oldest first.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}
