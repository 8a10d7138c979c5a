package mode

import (
	"github.com/chewxy/math32"
	"github.com/dshills/paintr/internal/input/mouse"
	"github.com/dshills/paintr/internal/scene"
)

// DragMode draws one shape per press-drag-release gesture. The shape is
// created at zero size on press and resized on every move.
type DragMode struct {
	name   string
	create func(origin scene.Point, style scene.Style) *scene.Shape
	resize func(s *scene.Shape, origin, p scene.Point)

	state  State
	origin scene.Point
	shape  *scene.Shape
}

// NewLineMode draws straight lines from the press point.
func NewLineMode() *DragMode {
	return &DragMode{
		name: ModeLine,
		create: func(o scene.Point, st scene.Style) *scene.Shape {
			return scene.NewLine(o, o, st)
		},
		resize: func(s *scene.Shape, _, p scene.Point) {
			s.X2, s.Y2 = p.X, p.Y
		},
	}
}

// NewRectangleMode draws rectangles anchored at the press point.
// Width and height keep the sign of the drag direction.
func NewRectangleMode() *DragMode {
	return &DragMode{
		name: ModeRectangle,
		create: func(o scene.Point, st scene.Style) *scene.Shape {
			return scene.NewRect(o, 0, 0, st)
		},
		resize: func(s *scene.Shape, o, p scene.Point) {
			d := p.Sub(o)
			s.Width, s.Height = d.X, d.Y
		},
	}
}

// NewSquareMode draws rectangles with equal width and height. The side is
// the larger of the two drag deltas; each axis keeps its drag direction.
func NewSquareMode() *DragMode {
	return &DragMode{
		name: ModeSquare,
		create: func(o scene.Point, st scene.Style) *scene.Shape {
			return scene.NewRect(o, 0, 0, st)
		},
		resize: func(s *scene.Shape, o, p scene.Point) {
			d := p.Sub(o)
			side := math32.Max(math32.Abs(d.X), math32.Abs(d.Y))
			s.Width, s.Height = signed(side, d.X), signed(side, d.Y)
		},
	}
}

// NewCircleMode draws circles centred on the press point.
func NewCircleMode() *DragMode {
	return &DragMode{
		name: ModeCircle,
		create: func(o scene.Point, st scene.Style) *scene.Shape {
			return scene.NewCircle(o, 0, st)
		},
		resize: func(s *scene.Shape, o, p scene.Point) {
			s.Radius = o.Distance(p)
		},
	}
}

// NewEllipseMode draws ellipses centred on the press point with
// independent radii.
func NewEllipseMode() *DragMode {
	return &DragMode{
		name: ModeEllipse,
		create: func(o scene.Point, st scene.Style) *scene.Shape {
			return scene.NewEllipse(o, 0, 0, st)
		},
		resize: func(s *scene.Shape, o, p scene.Point) {
			d := p.Sub(o)
			s.RX, s.RY = math32.Abs(d.X), math32.Abs(d.Y)
		},
	}
}

func signed(v, dir float32) float32 {
	if dir < 0 {
		return -v
	}
	return v
}

// Name returns the tool name.
func (t *DragMode) Name() string { return t.name }

// State returns the gesture state.
func (t *DragMode) State() State { return t.state }

// Shape returns the shape being drawn, or nil when idle.
func (t *DragMode) Shape() *scene.Shape { return t.shape }

// Enter starts idle.
func (t *DragMode) Enter(_ *Context) error {
	t.state = StateIdle
	t.shape = nil
	return nil
}

// Exit commits a shape still being dragged at its last extent.
func (t *DragMode) Exit(ctx *Context) error {
	if t.state == StateDragging {
		t.finish(ctx)
	}
	return nil
}

// HandlePointer advances idle → dragging → idle.
func (t *DragMode) HandlePointer(ev mouse.Event, ctx *Context) {
	switch ev.Action {
	case mouse.ActionPress:
		if !ev.IsPrimary() || t.state == StateDragging {
			return
		}
		t.origin = ev.Position
		t.shape = t.create(ev.Position, ctx.pen())
		ctx.Canvas.Add(t.shape)
		t.state = StateDragging

	case mouse.ActionMove:
		if t.state != StateDragging {
			return
		}
		t.resize(t.shape, t.origin, ev.Position)
		t.shape.SetCoords()

	case mouse.ActionRelease:
		if t.state != StateDragging || !ev.IsPrimary() {
			return
		}
		t.finish(ctx)
	}
}

func (t *DragMode) finish(ctx *Context) {
	t.state = StateIdle
	t.shape = nil
	ctx.commit(t.name)
}
