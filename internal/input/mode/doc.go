// Package mode implements the drawing tools and the controller that
// switches between them.
//
// Exactly one tool is active at a time. Each tool is a Mode with its own
// gesture state machine, and the Manager routes every pointer event to the
// active tool only, so switching tools can never leave two handler sets
// listening.
//
// # Gesture states
//
//	┌──────┐ press  ┌──────────┐ release ┌──────┐
//	│ idle │ ─────▶ │ dragging │ ──────▶ │ idle │  line, rectangle, square,
//	└──────┘        └──────────┘         └──────┘  circle, ellipse, freehand
//
//	┌──────┐ release ┌─────────────────┐ secondary press ┌──────┐
//	│ idle │ ──────▶ │ closing-polygon │ ──────────────▶ │ idle │  polygon
//	└──────┘         └─────────────────┘                 └──────┘
//	                   │ release: fix segment, new rubber band
//	                   └──────▶ (stays closing-polygon)
//
// # Switching
//
// When switching, the Manager:
//  1. Calls Exit on the current tool, which commits any gesture in progress
//  2. Turns off free drawing and pointer selection, and makes every shape
//     unselectable
//  3. Calls Enter on the new tool
//  4. Notifies change callbacks
//
// Switching to the tool that is already active runs the same steps.
//
// # Commits
//
// A tool calls Context.Commit when a gesture changes the document. The
// application uses this to record an undo snapshot.
package mode
