package mode

import (
	"github.com/dshills/paintr/internal/input/mouse"
)

// FreehandMode hands point sampling to the canvas's native free drawing.
type FreehandMode struct {
	state State
}

// NewFreehandMode creates the freehand tool.
func NewFreehandMode() *FreehandMode {
	return &FreehandMode{}
}

// Name returns "freehand".
func (t *FreehandMode) Name() string { return ModeFreehand }

// State returns the gesture state.
func (t *FreehandMode) State() State { return t.state }

// Enter turns on free drawing.
func (t *FreehandMode) Enter(ctx *Context) error {
	t.state = StateIdle
	ctx.Canvas.SetFreeDrawing(true)
	return nil
}

// Exit commits a stroke in progress.
func (t *FreehandMode) Exit(ctx *Context) error {
	if t.state == StateDragging {
		t.finish(ctx)
	}
	return nil
}

// HandlePointer forwards the gesture to the canvas.
func (t *FreehandMode) HandlePointer(ev mouse.Event, ctx *Context) {
	switch ev.Action {
	case mouse.ActionPress:
		if !ev.IsPrimary() || t.state == StateDragging {
			return
		}
		if ctx.Canvas.BeginFreeDraw(ev.Position) != nil {
			t.state = StateDragging
		}

	case mouse.ActionMove:
		if t.state == StateDragging {
			ctx.Canvas.ContinueFreeDraw(ev.Position)
		}

	case mouse.ActionRelease:
		if t.state != StateDragging || !ev.IsPrimary() {
			return
		}
		t.finish(ctx)
	}
}

func (t *FreehandMode) finish(ctx *Context) {
	t.state = StateIdle
	if ctx.Canvas.EndFreeDraw() != nil {
		ctx.commit(ModeFreehand)
	}
}
