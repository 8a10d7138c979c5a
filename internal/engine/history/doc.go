// Package history provides snapshot-based undo/redo for the drawing engine.
//
// The history system uses the Memento pattern: every committed change
// records a full serialized copy of the scene. Navigating history hands
// those copies back to the caller, which applies them to the document.
//
// # Snapshots
//
// A Snapshot is an immutable value. Two snapshots are Equal when their
// serialized bytes match; there is no identity beyond content.
//
// # History Stack
//
// The Store keeps an undo stack and a redo stack:
//
//	store := history.NewStore(100) // keep at most 100 undo entries
//
//	store.Insert(doc)              // record the blank canvas as the base
//	store.Insert(doc)              // record each finished gesture
//
//	if snap, ok := store.Undo(); ok {
//		doc.LoadJSON(snap.Bytes())
//	}
//
// The bottom of the undo stack is the base state. It is never the target
// of an undo, so the undo stack is never emptied by navigation. Any insert
// clears the redo stack.
package history
