// Package editor aggregates the live editing session: the document store
// and mutation engine, the selection, collapsed hierarchy entries, the
// active drag gesture and the undo history.
package editor

import (
	"fmt"

	"pagestudio/local-app/internal/model"
)

// historyEntry is one undoable step: the full project state on either
// side of a mutation. Whole-state snapshots keep cascading mutations
// (flex normalization, recursive purges) trivially invertible.
type historyEntry struct {
	before *model.Project
	after  *model.Project
}

// History manages the undo/redo stack of project snapshots.
type History struct {
	entries []historyEntry
	index   int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Record appends a step. Recording after an undo discards the redo tail.
func (h *History) Record(before, after *model.Project) {
	if h.index < len(h.entries)-1 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, historyEntry{before: before, after: after})
	h.index++
}

// Undo returns the project state preceding the last recorded step.
func (h *History) Undo() (*model.Project, error) {
	if h.index < 0 {
		return nil, fmt.Errorf("no operations to undo")
	}
	entry := h.entries[h.index]
	h.index--
	return entry.before.Clone(), nil
}

// Redo returns the project state following the last undone step.
func (h *History) Redo() (*model.Project, error) {
	if h.index >= len(h.entries)-1 {
		return nil, fmt.Errorf("no operations to redo")
	}
	h.index++
	return h.entries[h.index].after.Clone(), nil
}

// Reset clears the history, e.g. after loading a different project.
func (h *History) Reset() {
	h.entries = nil
	h.index = -1
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool {
	return h.index >= 0
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}
