package server

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/paintr/internal/app"
	"github.com/dshills/paintr/internal/input/key"
	"github.com/dshills/paintr/internal/input/mouse"
	"github.com/dshills/paintr/internal/scene"
)

// Message types accepted on /ws.
const (
	msgPointer = "pointer"
	msgKey     = "key"
	msgMode    = "mode"
	msgAction  = "action"
	msgColor   = "color"
	msgSync    = "sync"
)

// message is the request body shared by the event endpoints and the
// WebSocket. Only the fields relevant to Type are read.
type message struct {
	Type string `json:"type,omitempty"`

	// Action is the pointer action for pointer messages and the action
	// name for action messages.
	Action string  `json:"action,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`

	Key  string `json:"key,omitempty"`
	Mode string `json:"mode,omitempty"`

	Color string `json:"color,omitempty"`
	Name  string `json:"name,omitempty"`

	Shift bool `json:"shift,omitempty"`
	Ctrl  bool `json:"ctrl,omitempty"`
	Alt   bool `json:"alt,omitempty"`
	Meta  bool `json:"meta,omitempty"`
}

func (m message) modifiers() key.Modifier {
	var mods key.Modifier
	if m.Shift {
		mods = mods.With(key.ModShift)
	}
	if m.Ctrl {
		mods = mods.With(key.ModCtrl)
	}
	if m.Alt {
		mods = mods.With(key.ModAlt)
	}
	if m.Meta {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

func (m message) pointerEvent() (mouse.Event, error) {
	action, err := mouse.ParseAction(m.Action)
	if err != nil {
		return mouse.Event{}, err
	}
	button, err := mouse.ParseButton(m.Button)
	if err != nil {
		return mouse.Event{}, err
	}
	if button == mouse.ButtonNone && action != mouse.ActionMove {
		button = mouse.ButtonLeft
	}
	return mouse.Event{
		Action:    action,
		Button:    button,
		Position:  scene.Pt(m.X, m.Y),
		Modifiers: m.modifiers(),
	}, nil
}

func (m message) keyEvent() (key.Event, error) {
	if m.Key == "" {
		return key.Event{}, fmt.Errorf("%w: missing key", errBadRequest)
	}
	return key.FromDOM(m.Key, m.modifiers()), nil
}

// reply is sent back for every WebSocket message.
type reply struct {
	Type    string          `json:"type"`
	Scene   json.RawMessage `json:"scene,omitempty"`
	State   *app.State      `json:"state,omitempty"`
	Handled bool            `json:"handled"`
	Error   string          `json:"error,omitempty"`
}
