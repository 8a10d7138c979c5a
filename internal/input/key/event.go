package key

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// FromDOM converts a browser KeyboardEvent.key value and its modifier
// flags into an Event. Unknown multi-character names ("F5", "Shift")
// produce a KeyNone event, which never matches a binding.
func FromDOM(name string, mods Modifier) Event {
	if name == " " {
		return NewRuneEvent(' ', mods)
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods)
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return NewRuneEvent(r, mods)
	}
	return Event{Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChord reports whether a Ctrl, Alt or Meta modifier is held.
func (e Event) IsChord() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
}

// Normalize returns the canonical form used for binding lookup.
// For plain characters Shift is part of the character and is dropped.
// For chords letters are lowercased and Shift is kept.
func (e Event) Normalize() Event {
	if !e.IsRune() {
		return e
	}
	if e.IsChord() {
		e.Rune = unicode.ToLower(e.Rune)
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	return e
}

// Equals reports whether two events denote the same key press.
func (e Event) Equals(other Event) bool {
	a, b := e.Normalize(), other.Normalize()
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

// String returns a spec-style representation such as "Ctrl+Z" or "Enter".
// The output parses back to an equal Event.
func (e Event) String() string {
	e = e.Normalize()

	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune && e.Rune == '+':
		name = "Plus"
	case e.Key == KeyRune:
		name = string(e.Rune)
		if e.IsChord() {
			name = strings.ToUpper(name)
		}
	default:
		name = e.Key.String()
	}

	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
