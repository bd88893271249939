package history

import (
	"errors"
	"fmt"
	"testing"
)

func TestEmptyHistory(t *testing.T) {
	h := New()
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history should allow neither undo nor redo")
	}
	if _, err := h.Current(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Current on empty history: %v", err)
	}
	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on empty history: %v", err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo on empty history: %v", err)
	}
}

func TestUndoRedoWalk(t *testing.T) {
	h := New()
	h.Push("a", "seed")
	h.Push("b", "edit")
	h.Push("c", "edit")

	if got, _ := h.Current(); got != "c" {
		t.Fatalf("current = %q, want c", got)
	}
	if got, err := h.Undo(); err != nil || got != "b" {
		t.Fatalf("Undo = %q, %v", got, err)
	}
	if got, err := h.Undo(); err != nil || got != "a" {
		t.Fatalf("Undo = %q, %v", got, err)
	}
	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("undo past the oldest snapshot: %v", err)
	}
	if got, err := h.Redo(); err != nil || got != "b" {
		t.Fatalf("Redo = %q, %v", got, err)
	}
	if got, err := h.Redo(); err != nil || got != "c" {
		t.Fatalf("Redo = %q, %v", got, err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("redo past the newest snapshot: %v", err)
	}
}

func TestPushDiscardsRedoTail(t *testing.T) {
	h := New()
	h.Push("a", "seed")
	h.Push("b", "edit")
	h.Push("c", "edit")
	if _, err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	h.Push("d", "edit")

	if h.CanRedo() {
		t.Error("push should discard the redo tail")
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3 (a, b, d)", h.Len())
	}
	if got, _ := h.Current(); got != "d" {
		t.Errorf("current = %q, want d", got)
	}
	if got, _ := h.Undo(); got != "b" {
		t.Errorf("undo after push = %q, want b", got)
	}
}

func TestCapEvictsOldest(t *testing.T) {
	h := NewWithCap(3)
	for i := 0; i < 5; i++ {
		h.Push(fmt.Sprintf("v%d", i), "edit")
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	if got, _ := h.Current(); got != "v4" {
		t.Errorf("current = %q, want v4", got)
	}
	// Only the retained snapshots are reachable.
	if got, _ := h.Undo(); got != "v3" {
		t.Errorf("first undo = %q, want v3", got)
	}
	if got, _ := h.Undo(); got != "v2" {
		t.Errorf("second undo = %q, want v2", got)
	}
	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("evicted snapshots should be gone: %v", err)
	}
}

func TestEntriesCarryLabels(t *testing.T) {
	h := New()
	h.Push("a", "seed")
	h.Push("b", "green")

	entries := h.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if entries[0].Label != "seed" || entries[1].Label != "green" {
		t.Errorf("labels = %q, %q", entries[0].Label, entries[1].Label)
	}
	if entries[1].At.IsZero() {
		t.Error("entry timestamp not set")
	}
}

func TestJumpTo(t *testing.T) {
	h := New()
	h.Push("a", "seed")
	h.Push("b", "edit")
	h.Push("c", "edit")

	if got, err := h.JumpTo(0); err != nil || got != "a" {
		t.Fatalf("JumpTo(0) = %q, %v", got, err)
	}
	if !h.CanRedo() {
		t.Error("jump back should leave a redo tail")
	}
	if got, _ := h.Redo(); got != "b" {
		t.Errorf("redo after jump = %q, want b", got)
	}
	if _, err := h.JumpTo(7); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("JumpTo out of range: %v", err)
	}
	if _, err := h.JumpTo(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("JumpTo negative: %v", err)
	}
}
