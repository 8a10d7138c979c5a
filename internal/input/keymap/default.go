package keymap

// Action names understood by the application.
const (
	ActionCopy  = "clipboard.copy"
	ActionCut   = "clipboard.cut"
	ActionPaste = "clipboard.paste"
	ActionUndo  = "history.undo"
	ActionRedo  = "history.redo"
	ActionClear = "canvas.clear"

	// ModeActionPrefix prefixes tool switches, e.g. "mode.rectangle".
	ModeActionPrefix = "mode."
)

// Default returns the built-in shortcuts. Every chord is bound for both
// Ctrl and Cmd so the same keymap works on every platform.
func Default() *Keymap {
	return &Keymap{
		Name: "default",
		Bindings: []Binding{
			{Keys: "Ctrl+C", Action: ActionCopy, Description: "Copy selection"},
			{Keys: "Meta+C", Action: ActionCopy, Description: "Copy selection"},
			{Keys: "Ctrl+X", Action: ActionCut, Description: "Cut selection"},
			{Keys: "Meta+X", Action: ActionCut, Description: "Cut selection"},
			{Keys: "Ctrl+V", Action: ActionPaste, Description: "Paste"},
			{Keys: "Meta+V", Action: ActionPaste, Description: "Paste"},
			{Keys: "Ctrl+Z", Action: ActionUndo, Description: "Undo"},
			{Keys: "Meta+Z", Action: ActionUndo, Description: "Undo"},
			{Keys: "Ctrl+Y", Action: ActionRedo, Description: "Redo"},
			{Keys: "Meta+Y", Action: ActionRedo, Description: "Redo"},
		},
	}
}
