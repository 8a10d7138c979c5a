package history

import (
	"fmt"
)

// DefaultMaxEntries bounds the undo stack when no limit is given.
const DefaultMaxEntries = 100

// Serializer is anything that can capture its full state as JSON.
type Serializer interface {
	SerializeJSON() ([]byte, error)
}

// Store manages the undo and redo snapshot stacks.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	undoStack []Snapshot
	redoStack []Snapshot

	maxEntries int
}

// NewStore creates an empty store keeping at most maxEntries undo entries.
func NewStore(maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Store{
		maxEntries: maxEntries,
	}
}

// Insert serializes doc and pushes the result as a new history entry.
// A nil document or an empty serialization is ignored.
func (s *Store) Insert(doc Serializer) error {
	if doc == nil {
		return nil
	}
	data, err := doc.SerializeJSON()
	if err != nil {
		return fmt.Errorf("capture snapshot: %w", err)
	}
	s.Push(NewSnapshot(data))
	return nil
}

// Push adds an already captured snapshot to the undo stack.
// Clears the redo stack. Absent snapshots are ignored.
func (s *Store) Push(snap Snapshot) {
	if snap.IsZero() {
		return
	}

	s.undoStack = append(s.undoStack, snap)

	// Clear redo stack
	s.redoStack = nil

	s.trim()
}

// trim drops the oldest entries beyond maxEntries.
func (s *Store) trim() {
	if len(s.undoStack) > s.maxEntries {
		excess := len(s.undoStack) - s.maxEntries
		clear(s.undoStack[:excess])
		s.undoStack = s.undoStack[excess:]
	}
}

// CanUndo returns true if undo is available.
// The base entry is never an undo target, so two entries are needed.
func (s *Store) CanUndo() bool {
	return len(s.undoStack) >= 2
}

// Undo moves the newest entry to the redo stack and returns the entry
// below it, which is the state to restore. Returns false and changes
// nothing when undo is unavailable.
func (s *Store) Undo() (Snapshot, bool) {
	if !s.CanUndo() {
		return Snapshot{}, false
	}

	top := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, top)

	return s.undoStack[len(s.undoStack)-1], true
}

// CanRedo returns true if redo is available.
func (s *Store) CanRedo() bool {
	return len(s.redoStack) > 0
}

// Redo moves the newest redo entry back onto the undo stack and returns
// it. Returns false and changes nothing when redo is unavailable.
func (s *Store) Redo() (Snapshot, bool) {
	if !s.CanRedo() {
		return Snapshot{}, false
	}

	snap := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = append(s.undoStack, snap)
	s.trim()

	return snap, true
}

// Current returns the newest undo entry, which mirrors the document.
func (s *Store) Current() (Snapshot, bool) {
	if len(s.undoStack) == 0 {
		return Snapshot{}, false
	}
	return s.undoStack[len(s.undoStack)-1], true
}

// UndoCount returns the number of entries on the undo stack, base included.
func (s *Store) UndoCount() int {
	return len(s.undoStack)
}

// RedoCount returns the number of entries on the redo stack.
func (s *Store) RedoCount() int {
	return len(s.redoStack)
}

// Reset discards all history and makes base the only entry.
func (s *Store) Reset(base Snapshot) {
	s.undoStack = nil
	s.redoStack = nil
	s.Push(base)
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (s *Store) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	s.maxEntries = max
	s.trim()
}

// MaxEntries returns the maximum number of undo entries.
func (s *Store) MaxEntries() int {
	return s.maxEntries
}
