package mode

import (
	"github.com/dshills/paintr/internal/input/mouse"
	"github.com/dshills/paintr/internal/scene"
)

// PolygonMode builds an outline one segment per click. A secondary click
// closes it into a single group.
type PolygonMode struct {
	state    State
	segments []*scene.Shape
	band     *scene.Shape
}

// NewPolygonMode creates the polygon tool.
func NewPolygonMode() *PolygonMode {
	return &PolygonMode{}
}

// Name returns "polygon".
func (t *PolygonMode) Name() string { return ModePolygon }

// State returns the gesture state.
func (t *PolygonMode) State() State { return t.state }

// Segments returns the number of fixed segments so far.
func (t *PolygonMode) Segments() int { return len(t.segments) }

// Enter starts idle.
func (t *PolygonMode) Enter(_ *Context) error {
	t.discard()
	return nil
}

// Exit closes an outline in progress as if finished by the user.
func (t *PolygonMode) Exit(ctx *Context) error {
	t.finish(ctx)
	return nil
}

// HandlePointer places vertices on release, tracks the rubber band on move
// and closes the outline on a secondary press.
func (t *PolygonMode) HandlePointer(ev mouse.Event, ctx *Context) {
	switch ev.Action {
	case mouse.ActionPress:
		if ev.IsSecondary() {
			t.finish(ctx)
		}

	case mouse.ActionMove:
		if t.state != StateClosingPolygon {
			return
		}
		t.band.X2, t.band.Y2 = ev.Position.X, ev.Position.Y
		t.band.SetCoords()

	case mouse.ActionRelease:
		if !ev.IsPrimary() {
			return
		}
		if t.state == StateClosingPolygon {
			t.band.X2, t.band.Y2 = ev.Position.X, ev.Position.Y
			t.band.SetCoords()
			t.segments = append(t.segments, t.band)
		}
		t.band = scene.NewLine(ev.Position, ev.Position, ctx.pen())
		ctx.Canvas.Add(t.band)
		t.state = StateClosingPolygon
	}
}

// finish replaces the fixed segments with one unselectable group.
func (t *PolygonMode) finish(ctx *Context) {
	if t.state != StateClosingPolygon {
		return
	}
	ctx.Canvas.Remove(t.band)

	segments := t.segments
	t.discard()
	if len(segments) == 0 {
		return
	}

	ctx.Canvas.Remove(segments...)
	group := scene.NewGroup(segments, ctx.pen())
	group.Selectable = false
	ctx.Canvas.Add(group)
	ctx.commit(ModePolygon)
}

func (t *PolygonMode) discard() {
	t.state = StateIdle
	t.segments = nil
	t.band = nil
}
