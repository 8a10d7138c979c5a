// Package keymap maps keyboard shortcuts to named actions.
//
// A Keymap is a list of Bindings, each pairing a key spec such as "Ctrl+Z"
// with an action name such as "history.undo". Parse turns the list into a
// lookup table keyed by the normalized key event; later bindings for the
// same keys replace earlier ones, so user bindings appended after the
// defaults take precedence.
//
// Action names are dotted: the part before the dot names the subsystem
// ("clipboard", "history", "canvas", "mode") and the part after names the
// operation.
package keymap
