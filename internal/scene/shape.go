package scene

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"
)

// Kind identifies the geometry of a shape.
type Kind string

// Shape kinds.
const (
	KindLine    Kind = "line"
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindEllipse Kind = "ellipse"
	KindPath    Kind = "path"
	KindGroup   Kind = "group"
)

// Valid reports whether k is a known shape kind.
func (k Kind) Valid() bool {
	switch k {
	case KindLine, KindRect, KindCircle, KindEllipse, KindPath, KindGroup:
		return true
	default:
		return false
	}
}

// Style holds the stroke and fill applied to new shapes.
type Style struct {
	Stroke      string
	StrokeWidth float32
	Fill        string
}

// DefaultStyle is a 2px black outline with no fill.
func DefaultStyle() Style {
	return Style{Stroke: "#000000", StrokeWidth: 2}
}

// Shape is one drawable object in a Document.
// Only the fields relevant to Kind are meaningful; see the package docs.
type Shape struct {
	ID   string `json:"id"`
	Kind Kind   `json:"type"`

	Left   float32 `json:"left,omitempty"`
	Top    float32 `json:"top,omitempty"`
	Width  float32 `json:"width,omitempty"`
	Height float32 `json:"height,omitempty"`

	X1 float32 `json:"x1,omitempty"`
	Y1 float32 `json:"y1,omitempty"`
	X2 float32 `json:"x2,omitempty"`
	Y2 float32 `json:"y2,omitempty"`

	Radius float32 `json:"radius,omitempty"`
	RX     float32 `json:"rx,omitempty"`
	RY     float32 `json:"ry,omitempty"`

	Points  []Point  `json:"points,omitempty"`
	Objects []*Shape `json:"objects,omitempty"`

	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float32 `json:"strokeWidth,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	Selectable  bool    `json:"selectable"`

	active bool
	coords Rect
}

func newShape(kind Kind, style Style) *Shape {
	return &Shape{
		ID:          uuid.NewString(),
		Kind:        kind,
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
		Fill:        style.Fill,
	}
}

// NewLine returns a line from a to b.
func NewLine(a, b Point, style Style) *Shape {
	s := newShape(KindLine, style)
	s.X1, s.Y1, s.X2, s.Y2 = a.X, a.Y, b.X, b.Y
	s.SetCoords()
	return s
}

// NewRect returns a rectangle anchored at origin.
func NewRect(origin Point, width, height float32, style Style) *Shape {
	s := newShape(KindRect, style)
	s.Left, s.Top, s.Width, s.Height = origin.X, origin.Y, width, height
	s.SetCoords()
	return s
}

// NewCircle returns a circle centred on c.
func NewCircle(c Point, radius float32, style Style) *Shape {
	s := newShape(KindCircle, style)
	s.Left, s.Top, s.Radius = c.X, c.Y, radius
	s.SetCoords()
	return s
}

// NewEllipse returns an ellipse centred on c.
func NewEllipse(c Point, rx, ry float32, style Style) *Shape {
	s := newShape(KindEllipse, style)
	s.Left, s.Top, s.RX, s.RY = c.X, c.Y, rx, ry
	s.SetCoords()
	return s
}

// NewPath returns a polyline through pts.
func NewPath(pts []Point, style Style) *Shape {
	s := newShape(KindPath, style)
	s.Points = append([]Point(nil), pts...)
	s.SetCoords()
	return s
}

// NewGroup returns a compound shape owning children.
func NewGroup(children []*Shape, style Style) *Shape {
	s := newShape(KindGroup, style)
	s.Objects = children
	s.SetCoords()
	return s
}

// Start returns the first endpoint of a line.
func (s *Shape) Start() Point { return Pt(s.X1, s.Y1) }

// End returns the second endpoint of a line.
func (s *Shape) End() Point { return Pt(s.X2, s.Y2) }

// Active reports whether the shape is part of the active selection.
func (s *Shape) Active() bool { return s.active }

// Coords returns the bounding box computed by the last SetCoords call.
func (s *Shape) Coords() Rect { return s.coords }

// SetCoords recomputes the cached bounding box used for hit testing.
// It must be called after the geometry changes.
func (s *Shape) SetCoords() {
	s.coords = s.Bounds()
}

// Bounds computes the bounding box from the current geometry.
func (s *Shape) Bounds() Rect {
	switch s.Kind {
	case KindLine:
		return RectFromPoints(s.Start(), s.End())
	case KindRect:
		return RectFromPoints(Pt(s.Left, s.Top), Pt(s.Left+s.Width, s.Top+s.Height))
	case KindCircle:
		r := math32.Abs(s.Radius)
		return Rect{Left: s.Left - r, Top: s.Top - r, Width: 2 * r, Height: 2 * r}
	case KindEllipse:
		rx, ry := math32.Abs(s.RX), math32.Abs(s.RY)
		return Rect{Left: s.Left - rx, Top: s.Top - ry, Width: 2 * rx, Height: 2 * ry}
	case KindPath:
		if len(s.Points) == 0 {
			return Rect{}
		}
		b := RectFromPoints(s.Points[0], s.Points[0])
		for _, p := range s.Points[1:] {
			b = b.Union(RectFromPoints(p, p))
		}
		return b
	case KindGroup:
		if len(s.Objects) == 0 {
			return Rect{}
		}
		b := s.Objects[0].Bounds()
		for _, o := range s.Objects[1:] {
			b = b.Union(o.Bounds())
		}
		return b
	default:
		return Rect{}
	}
}

// Contains reports whether p hits the shape's cached coords, padded by
// half the stroke width so thin lines stay clickable.
func (s *Shape) Contains(p Point) bool {
	pad := s.StrokeWidth/2 + 2
	return s.coords.Expand(pad).Contains(p)
}

// Translate moves the shape by d.
func (s *Shape) Translate(d Point) {
	switch s.Kind {
	case KindLine:
		s.X1 += d.X
		s.Y1 += d.Y
		s.X2 += d.X
		s.Y2 += d.Y
	case KindPath:
		for i := range s.Points {
			s.Points[i] = s.Points[i].Add(d)
		}
	case KindGroup:
		for _, o := range s.Objects {
			o.Translate(d)
		}
	default:
		s.Left += d.X
		s.Top += d.Y
	}
	s.SetCoords()
}

// Clone returns a deep copy with fresh ids. The copy is not active.
func (s *Shape) Clone() *Shape {
	c := *s
	c.ID = uuid.NewString()
	c.active = false
	if s.Points != nil {
		c.Points = append([]Point(nil), s.Points...)
	}
	if s.Objects != nil {
		c.Objects = make([]*Shape, len(s.Objects))
		for i, o := range s.Objects {
			c.Objects[i] = o.Clone()
		}
	}
	c.SetCoords()
	return &c
}
