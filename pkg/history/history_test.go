package history

import (
	"testing"

	"mindcanvas/app/pkg/model"
)

// snap returns a distinct snapshot whose name records its commit order.
func snap(name string) *model.Mindmap {
	return &model.Mindmap{Name: name}
}

func TestEmptyHistory(t *testing.T) {
	h := NewHistory()

	if h.CanUndo() {
		t.Error("empty ledger reports CanUndo")
	}
	if h.CanRedo() {
		t.Error("empty ledger reports CanRedo")
	}
	if h.Current() != nil {
		t.Error("empty ledger has a current snapshot")
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo succeeded on empty ledger")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo succeeded on empty ledger")
	}
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}

func TestCommitAndCurrent(t *testing.T) {
	h := NewHistory()
	a, b := snap("a"), snap("b")

	h.Commit(a)
	if h.Current() != a {
		t.Error("current is not the committed snapshot")
	}
	if h.CanUndo() {
		t.Error("single snapshot reports CanUndo")
	}

	h.Commit(b)
	if h.Current() != b {
		t.Error("current did not advance to latest commit")
	}
	if !h.CanUndo() {
		t.Error("CanUndo false after two commits")
	}
	if h.CanRedo() {
		t.Error("CanRedo true at the head of the ledger")
	}
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
}

func TestUndoRedoWalk(t *testing.T) {
	h := NewHistory()
	a, b, c := snap("a"), snap("b"), snap("c")
	h.Commit(a)
	h.Commit(b)
	h.Commit(c)

	if got, ok := h.Undo(); !ok || got != b {
		t.Fatalf("first undo = %v, %v; want b, true", got, ok)
	}
	if got, ok := h.Undo(); !ok || got != a {
		t.Fatalf("second undo = %v, %v; want a, true", got, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Fatal("undo past the first snapshot succeeded")
	}

	if got, ok := h.Redo(); !ok || got != b {
		t.Fatalf("first redo = %v, %v; want b, true", got, ok)
	}
	if got, ok := h.Redo(); !ok || got != c {
		t.Fatalf("second redo = %v, %v; want c, true", got, ok)
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo past the head succeeded")
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3", h.Len())
	}
}

func TestCommitAfterUndoDiscardsRedoBranch(t *testing.T) {
	h := NewHistory()
	a, b, c, d := snap("a"), snap("b"), snap("c"), snap("d")
	h.Commit(a)
	h.Commit(b)
	h.Commit(c)

	h.Undo()
	h.Undo()
	h.Commit(d)

	if h.Current() != d {
		t.Error("current is not the new commit")
	}
	if h.CanRedo() {
		t.Error("redo branch survived a commit")
	}
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
	if got, ok := h.Undo(); !ok || got != a {
		t.Errorf("undo after branch commit = %v, %v; want a, true", got, ok)
	}
}

func TestReset(t *testing.T) {
	h := NewHistory()
	h.Commit(snap("a"))
	h.Commit(snap("b"))

	h.Reset()

	if h.Len() != 0 || h.Current() != nil || h.CanUndo() || h.CanRedo() {
		t.Error("Reset did not return the ledger to its empty state")
	}
	// Ledger is usable again after a reset
	c := snap("c")
	h.Commit(c)
	if h.Current() != c {
		t.Error("commit after Reset did not become current")
	}
}
