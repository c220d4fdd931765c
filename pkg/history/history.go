// Package history provides the linear undo/redo ledger for mind-map
// snapshots. Each committed mutation stores a full immutable snapshot;
// undo and redo only move an index over the snapshot list.
package history

import "mindcanvas/app/pkg/model"

// History is a sequence of map snapshots with a current index. The index is
// -1 only while the ledger is empty; after the first commit it always points
// at the snapshot representing current state.
type History struct {
	snapshots []*model.Mindmap
	index     int
}

// NewHistory creates an empty history ledger.
func NewHistory() *History {
	return &History{
		snapshots: []*model.Mindmap{},
		index:     -1,
	}
}

// Commit appends a snapshot as the new current state. Any redo branch past
// the current index is discarded permanently; the model is strictly linear.
func (h *History) Commit(snapshot *model.Mindmap) {
	h.snapshots = append(h.snapshots[:h.index+1], snapshot)
	h.index++
}

// Undo moves one step back and returns the snapshot there. It reports false
// without moving when there is nothing to undo.
func (h *History) Undo() (*model.Mindmap, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.index--
	return h.snapshots[h.index], true
}

// Redo moves one step forward and returns the snapshot there. It reports
// false without moving when there is nothing to redo.
func (h *History) Redo() (*model.Mindmap, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.index++
	return h.snapshots[h.index], true
}

// CanUndo reports whether a prior snapshot exists.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

// Current returns the snapshot at the index, or nil while empty.
func (h *History) Current() *model.Mindmap {
	if h.index < 0 {
		return nil
	}
	return h.snapshots[h.index]
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Reset clears the ledger, e.g. when a different map is selected.
func (h *History) Reset() {
	h.snapshots = []*model.Mindmap{}
	h.index = -1
}
