package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/paintr/internal/engine/history"
	"github.com/dshills/paintr/internal/gallery"
	"github.com/dshills/paintr/internal/input/key"
	"github.com/dshills/paintr/internal/input/keymap"
	"github.com/dshills/paintr/internal/input/mode"
	"github.com/dshills/paintr/internal/input/mouse"
	"github.com/dshills/paintr/internal/scene"
)

// ErrUnknownAction is returned for action names nothing handles.
var ErrUnknownAction = errors.New("unknown action")

// actionAliases maps toolbar names onto keymap actions.
var actionAliases = map[string]string{
	"copy":  keymap.ActionCopy,
	"cut":   keymap.ActionCut,
	"paste": keymap.ActionPaste,
	"undo":  keymap.ActionUndo,
	"redo":  keymap.ActionRedo,
	"clear": keymap.ActionClear,
}

// SelectMode switches the active tool. A gesture in progress is committed
// first.
func (a *App) SelectMode(name string) error {
	if err := a.modes.Switch(name); err != nil {
		return NewOperationError("mode", name, err)
	}
	a.log.Debug("mode %s", name)
	return nil
}

// Cut moves the selection to the clipboard.
// Returns false when nothing was selected.
func (a *App) Cut() bool {
	a.settle()
	if !a.clip.Cut(a.doc) {
		return false
	}
	a.snapshot("cut")
	return true
}

// Copy copies the selection to the clipboard.
// Returns false when nothing was selected.
func (a *App) Copy() bool {
	return a.clip.Copy(a.doc)
}

// Paste adds a copy of the clipboard to the document and returns the number
// of shapes added. Pasted shapes are selectable only in select mode.
func (a *App) Paste() int {
	a.settle()
	pasted := a.clip.Paste(a.doc, a.modes.IsMode(mode.ModeSelect))
	if len(pasted) == 0 {
		return 0
	}
	a.snapshot("paste")
	return len(pasted)
}

// Undo restores the previous snapshot. Returns false when there is nothing
// to undo.
func (a *App) Undo() bool {
	snap, ok := a.history.Undo()
	if !ok {
		return false
	}
	if err := a.restore(snap); err != nil {
		a.log.Error("undo: %v", err)
		return false
	}
	return true
}

// Redo reapplies the last undone snapshot. Returns false when there is
// nothing to redo.
func (a *App) Redo() bool {
	snap, ok := a.history.Redo()
	if !ok {
		return false
	}
	if err := a.restore(snap); err != nil {
		a.log.Error("redo: %v", err)
		return false
	}
	return true
}

// Clear removes every shape and records the empty canvas.
func (a *App) Clear() {
	a.doc.Clear()
	a.refreshMode()
	a.snapshot("clear")
}

// SetColor changes the pen and the free-drawing brush colour.
func (a *App) SetColor(color string) error {
	c, err := scene.NormalizeColor(color)
	if err == nil && c == "" {
		err = fmt.Errorf("%w: pen needs a visible colour", scene.ErrBadColor)
	}
	if err != nil {
		return NewOperationError("color", color, err)
	}
	a.pen.Stroke = c
	brush := a.doc.Brush()
	brush.Stroke = c
	a.doc.SetBrush(brush)
	return nil
}

// SetStrokeWidth changes the outline width of new shapes.
func (a *App) SetStrokeWidth(w float64) {
	a.pen.StrokeWidth = float32(orDefault(w, DefaultStrokeWidth))
}

// SetBrushWidth changes the free-drawing brush width.
func (a *App) SetBrushWidth(w float64) {
	brush := a.doc.Brush()
	brush.StrokeWidth = float32(orDefault(w, DefaultBrushWidth))
	a.doc.SetBrush(brush)
}

// Save stores the current document in the gallery under name.
func (a *App) Save(ctx context.Context, name string) (gallery.Entry, error) {
	snap, ok := a.history.Current()
	if !ok {
		data, err := a.doc.SerializeJSON()
		if err != nil {
			return gallery.Entry{}, NewOperationError("save", name, err)
		}
		snap = history.NewSnapshot(data)
	}
	entry, err := a.gallery.Save(ctx, name, snap)
	if err != nil {
		return gallery.Entry{}, NewOperationError("save", name, err)
	}
	a.log.Info("saved canvas %q (%d bytes)", entry.Name, entry.Size)
	return entry, nil
}

// Load replaces the document with a saved canvas and records it as a new
// history entry. A snapshot that fails to decode leaves the document as it
// was.
func (a *App) Load(ctx context.Context, id string) (gallery.Entry, error) {
	entry, snap, err := a.gallery.Load(ctx, id)
	if err != nil {
		return gallery.Entry{}, NewOperationError("load", id, err)
	}
	if err := a.restore(snap); err != nil {
		return gallery.Entry{}, NewOperationError("load", id, err).WithContext(entry.Name)
	}
	a.history.Push(snap)
	a.metrics.RecordSnapshot()
	a.log.Info("loaded canvas %q", entry.Name)
	return entry, nil
}

// Canvases lists the saved canvases, oldest first.
func (a *App) Canvases(ctx context.Context) ([]gallery.Entry, error) {
	entries, err := a.gallery.List(ctx)
	if err != nil {
		return nil, NewOperationError("list", "canvases", err)
	}
	return entries, nil
}

// HandlePointer forwards a pointer event to the active tool.
func (a *App) HandlePointer(ev mouse.Event) {
	a.metrics.RecordPointer()
	a.modes.HandlePointer(ev)
}

// HandleKey runs the action bound to ev. It reports whether ev was bound,
// so the caller can suppress the browser's default for it.
func (a *App) HandleKey(ev key.Event) bool {
	a.metrics.RecordKey()
	b, ok := a.keymap.Lookup(ev)
	if !ok {
		return false
	}
	if _, err := a.Perform(b.Action); err != nil {
		a.log.Warn("key %s: %v", ev, err)
	}
	return true
}

// Perform runs a named action such as "undo" or "history.undo", or
// "mode.<name>" to switch tools. It reports whether the document or the
// clipboard changed.
func (a *App) Perform(action string) (bool, error) {
	if alias, ok := actionAliases[action]; ok {
		action = alias
	}

	switch action {
	case keymap.ActionCopy:
		return a.Copy(), nil
	case keymap.ActionCut:
		return a.Cut(), nil
	case keymap.ActionPaste:
		return a.Paste() > 0, nil
	case keymap.ActionUndo:
		return a.Undo(), nil
	case keymap.ActionRedo:
		return a.Redo(), nil
	case keymap.ActionClear:
		a.Clear()
		return true, nil
	}

	if name, ok := strings.CutPrefix(action, keymap.ModeActionPrefix); ok {
		if err := a.SelectMode(name); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, NewOperationError("action", action, ErrUnknownAction)
}

// SceneJSON serializes the current document.
func (a *App) SceneJSON() ([]byte, error) {
	data, err := a.doc.SerializeJSON()
	if err != nil {
		return nil, NewOperationError("serialize", "scene", err)
	}
	return data, nil
}

// State summarizes the editor for the toolbar.
type State struct {
	Mode        string   `json:"mode"`
	Gesture     string   `json:"gesture"`
	Modes       []string `json:"modes"`
	Shapes      int      `json:"shapes"`
	Undo        int      `json:"undo"`
	Redo        int      `json:"redo"`
	CanUndo     bool     `json:"canUndo"`
	CanRedo     bool     `json:"canRedo"`
	Clipboard   int      `json:"clipboard"`
	Pen         string   `json:"pen"`
	StrokeWidth float32  `json:"strokeWidth"`
	Background  string   `json:"background"`

	// Keys lists the bound key chords in canonical form ("Ctrl+Z").
	Keys []string `json:"keys"`
}

// State returns the current editor state.
func (a *App) State() State {
	return State{
		Mode:        a.modes.CurrentName(),
		Gesture:     a.modes.State().String(),
		Modes:       a.modes.Modes(),
		Shapes:      a.doc.Len(),
		Undo:        a.history.UndoCount(),
		Redo:        a.history.RedoCount(),
		CanUndo:     a.history.CanUndo(),
		CanRedo:     a.history.CanRedo(),
		Clipboard:   a.clip.Len(),
		Pen:         a.pen.Stroke,
		StrokeWidth: a.pen.StrokeWidth,
		Background:  a.doc.Background(),
		Keys:        a.keymap.Chords(),
	}
}

// restore replaces the document with snap and re-enters the active tool so
// it applies its selection rules to the new shapes.
func (a *App) restore(snap history.Snapshot) error {
	if err := a.doc.LoadJSON(snap.Bytes()); err != nil {
		return err
	}
	a.refreshMode()
	return nil
}

// settle commits a gesture in progress before an action edits the document.
func (a *App) settle() {
	if err := a.modes.Settle(); err != nil {
		a.log.Error("settle gesture: %v", err)
	}
}

func (a *App) refreshMode() {
	if err := a.modes.Refresh(); err != nil {
		a.log.Error("refresh mode: %v", err)
	}
}
