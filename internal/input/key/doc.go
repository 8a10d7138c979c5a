// Package key describes keyboard input as delivered by the browser.
//
// An Event pairs a Key (or a character for KeyRune) with the active
// modifiers. Browser KeyboardEvent data converts through FromDOM, and
// human-written specs such as "Ctrl+Z" or "Meta+Shift+Z" parse with Parse.
//
// Letter keys are compared case-insensitively when Ctrl, Alt or Meta is
// held, since browsers report "Z" or "z" for the same chord depending on
// Shift and Caps Lock.
package key
