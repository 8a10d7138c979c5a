package mode

import (
	"errors"

	"github.com/dshills/paintr/internal/input/mouse"
	"github.com/dshills/paintr/internal/scene"
)

// ErrUnknownMode is returned when switching to an unregistered tool.
var ErrUnknownMode = errors.New("unknown mode")

// Standard mode names.
const (
	ModeSelect    = "select"
	ModeLine      = "line"
	ModeRectangle = "rectangle"
	ModeSquare    = "square"
	ModeCircle    = "circle"
	ModeEllipse   = "ellipse"
	ModeFreehand  = "freehand"
	ModePolygon   = "polygon"
)

// Mode defines the interface for drawing tools.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "rectangle").
	Name() string

	// Enter is called when the tool becomes active.
	Enter(ctx *Context) error

	// Exit is called when the tool is being replaced. Gestures in
	// progress are committed here.
	Exit(ctx *Context) error

	// HandlePointer advances the tool's gesture state machine.
	HandlePointer(ev mouse.Event, ctx *Context)

	// State returns the current gesture state.
	State() State
}

// State is a tool's gesture state.
type State uint8

const (
	// StateIdle is waiting for a gesture to start.
	StateIdle State = iota

	// StateDragging is between press and release.
	StateDragging

	// StateClosingPolygon has at least one vertex placed and a rubber band
	// following the pointer.
	StateClosingPolygon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateClosingPolygon:
		return "closing-polygon"
	default:
		return "unknown"
	}
}

// Canvas is the part of the scene document the tools drive.
// *scene.Document implements it.
type Canvas interface {
	Add(shapes ...*scene.Shape)
	Remove(shapes ...*scene.Shape) int
	Contains(s *scene.Shape) bool
	ForEach(fn func(*scene.Shape))
	SetSelectable(s *scene.Shape, on bool)
	SetSelection(on bool)
	SetFreeDrawing(on bool)
	BeginFreeDraw(p scene.Point) *scene.Shape
	ContinueFreeDraw(p scene.Point)
	EndFreeDraw() *scene.Shape
	HitTest(p scene.Point) *scene.Shape
	SetActive(shapes ...*scene.Shape)
	ToggleActive(s *scene.Shape)
	DiscardActive()
	ActiveSelection() []*scene.Shape
}

// Context is shared by every tool.
type Context struct {
	// Canvas receives the shapes drawn by the tools.
	Canvas Canvas

	// Pen returns the style for new shapes. Nil means scene.DefaultStyle.
	Pen func() scene.Style

	// Commit is called after a gesture changed the document. May be nil.
	Commit func(tool string)
}

func (c *Context) pen() scene.Style {
	if c.Pen == nil {
		return scene.DefaultStyle()
	}
	return c.Pen()
}

func (c *Context) commit(tool string) {
	if c.Commit != nil {
		c.Commit(tool)
	}
}

// Defaults returns a fresh instance of every built-in tool.
func Defaults() []Mode {
	return []Mode{
		NewSelectMode(),
		NewLineMode(),
		NewRectangleMode(),
		NewSquareMode(),
		NewCircleMode(),
		NewEllipseMode(),
		NewFreehandMode(),
		NewPolygonMode(),
	}
}
