package mode

import (
	"github.com/dshills/paintr/internal/input/key"
	"github.com/dshills/paintr/internal/input/mouse"
	"github.com/dshills/paintr/internal/scene"
)

// SelectMode picks and moves existing shapes instead of creating new ones.
type SelectMode struct {
	state   State
	last    scene.Point
	moved   bool
	dragged []*scene.Shape
}

// NewSelectMode creates the selection tool.
func NewSelectMode() *SelectMode {
	return &SelectMode{}
}

// Name returns "select".
func (t *SelectMode) Name() string { return ModeSelect }

// State returns the gesture state.
func (t *SelectMode) State() State { return t.state }

// Enter makes every shape selectable and refreshes its coords.
func (t *SelectMode) Enter(ctx *Context) error {
	t.state = StateIdle
	t.dragged = nil
	ctx.Canvas.SetSelection(true)
	ctx.Canvas.ForEach(func(s *scene.Shape) {
		ctx.Canvas.SetSelectable(s, true)
		s.SetCoords()
	})
	return nil
}

// Exit commits a move still in progress.
func (t *SelectMode) Exit(ctx *Context) error {
	if t.state == StateDragging {
		t.finish(ctx)
	}
	return nil
}

// HandlePointer selects on press and moves the selection while dragging.
// Shift+press toggles a shape in or out of a multi-selection.
func (t *SelectMode) HandlePointer(ev mouse.Event, ctx *Context) {
	switch ev.Action {
	case mouse.ActionPress:
		if !ev.IsPrimary() || t.state == StateDragging {
			return
		}
		hit := ctx.Canvas.HitTest(ev.Position)
		switch {
		case ev.Modifiers.Has(key.ModShift):
			ctx.Canvas.ToggleActive(hit)
		case hit == nil:
			ctx.Canvas.DiscardActive()
		case !hit.Active():
			ctx.Canvas.SetActive(hit)
		}
		if hit == nil || !hit.Active() {
			return
		}
		t.state = StateDragging
		t.last = ev.Position
		t.moved = false
		t.dragged = ctx.Canvas.ActiveSelection()

	case mouse.ActionMove:
		if t.state != StateDragging {
			return
		}
		d := ev.Position.Sub(t.last)
		if d.IsZero() {
			return
		}
		for _, s := range t.dragged {
			s.Translate(d)
		}
		t.last = ev.Position
		t.moved = true

	case mouse.ActionRelease:
		if t.state != StateDragging || !ev.IsPrimary() {
			return
		}
		t.finish(ctx)
	}
}

// finish ends a move. Nothing is committed when the dragged shapes have
// left the canvas in the meantime.
func (t *SelectMode) finish(ctx *Context) {
	moved := t.moved && t.draggedOnCanvas(ctx)
	t.state = StateIdle
	t.moved = false
	t.dragged = nil
	if moved {
		ctx.commit(ModeSelect)
	}
}

func (t *SelectMode) draggedOnCanvas(ctx *Context) bool {
	for _, s := range t.dragged {
		if ctx.Canvas.Contains(s) {
			return true
		}
	}
	return false
}
