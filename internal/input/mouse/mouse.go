package mouse

import (
	"fmt"
	"strings"

	"github.com/dshills/paintr/internal/input/key"
	"github.com/dshills/paintr/internal/scene"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// ParseButton accepts the names produced by String and the numeric
// MouseEvent.button values 0, 1 and 2.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ButtonNone, nil
	case "left", "primary", "0":
		return ButtonLeft, nil
	case "middle", "auxiliary", "1":
		return ButtonMiddle, nil
	case "right", "secondary", "2":
		return ButtonRight, nil
	default:
		return ButtonNone, fmt.Errorf("unknown mouse button %q", s)
	}
}

// Action represents the type of pointer action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates pointer movement, with or without a button held.
	ActionMove
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	default:
		return "none"
	}
}

// ParseAction accepts the names produced by String and the DOM event
// names "mousedown", "mouseup" and "mousemove".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "press", "down", "mousedown", "pointerdown":
		return ActionPress, nil
	case "release", "up", "mouseup", "pointerup":
		return ActionRelease, nil
	case "move", "mousemove", "pointermove":
		return ActionMove, nil
	default:
		return ActionNone, fmt.Errorf("unknown pointer action %q", s)
	}
}

// Event is a single pointer event in canvas coordinates.
type Event struct {
	Action    Action
	Button    Button
	Position  scene.Point
	Modifiers key.Modifier
}

// Press returns a primary-button press at p.
func Press(p scene.Point) Event {
	return Event{Action: ActionPress, Button: ButtonLeft, Position: p}
}

// Move returns a move to p.
func Move(p scene.Point) Event {
	return Event{Action: ActionMove, Position: p}
}

// Release returns a primary-button release at p.
func Release(p scene.Point) Event {
	return Event{Action: ActionRelease, Button: ButtonLeft, Position: p}
}

// SecondaryClick returns a secondary-button press at p.
func SecondaryClick(p scene.Point) Event {
	return Event{Action: ActionPress, Button: ButtonRight, Position: p}
}

// IsPrimary reports whether the primary button is involved.
// Moves carry no button and count as primary.
func (e Event) IsPrimary() bool {
	return e.Button == ButtonLeft || e.Button == ButtonNone
}

// IsSecondary reports whether the secondary button is involved.
func (e Event) IsSecondary() bool {
	return e.Button == ButtonRight
}

// String returns a compact description for logs.
func (e Event) String() string {
	return fmt.Sprintf("%s %s (%g,%g)", e.Action, e.Button, e.Position.X, e.Position.Y)
}
