package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Delete", "Space"
//   - With modifiers: "Ctrl+Z", "Meta+Shift+Z", "Cmd+Y"
//   - The "+" key itself is spelled "Plus".
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	var mods Modifier

	// All but the last part are modifiers
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, strings.TrimSpace(p))
		}
		mods = mods.With(mod)
	}

	ev, err := parseKey(strings.TrimSpace(parts[len(parts)-1]), mods)
	if err != nil {
		return Event{}, err
	}
	return ev.Normalize(), nil
}

// parseKey parses the key part with already-known modifiers.
func parseKey(part string, mods Modifier) (Event, error) {
	if part == "" {
		return Event{}, fmt.Errorf("%w: missing key", ErrInvalidSpec)
	}

	switch strings.ToLower(part) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "plus":
		return NewRuneEvent('+', mods), nil
	}

	if k := KeyFromName(part); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	if utf8.RuneCountInString(part) == 1 {
		r, _ := utf8.DecodeRuneInString(part)
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, part)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
