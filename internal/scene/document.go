package scene

import "github.com/google/uuid"

// DefaultBackground is the canvas colour of a new document.
const DefaultBackground = "#ffffff"

// Document is the mutable collection of shapes being drawn.
// It is not safe for concurrent use.
type Document struct {
	shapes     []*Shape
	background string

	// selection enables picking objects with the pointer.
	selection bool

	freeDrawing bool
	brush       Style
	stroke      *Shape
}

// Option configures a Document.
type Option func(*Document)

// WithBackground sets the background colour.
func WithBackground(color string) Option {
	return func(d *Document) {
		d.background = color
	}
}

// WithBrush sets the free-drawing brush.
func WithBrush(style Style) Option {
	return func(d *Document) {
		d.brush = style
	}
}

// NewDocument creates an empty document with group selection enabled.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		background: DefaultBackground,
		selection:  true,
		brush:      DefaultStyle(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Background returns the background colour.
func (d *Document) Background() string { return d.background }

// SetBackground changes the background colour.
func (d *Document) SetBackground(color string) { d.background = color }

// Add appends shapes on top of the stack.
func (d *Document) Add(shapes ...*Shape) {
	for _, s := range shapes {
		if s == nil {
			continue
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.SetCoords()
		d.shapes = append(d.shapes, s)
	}
}

// Remove deletes shapes by identity and returns how many were removed.
func (d *Document) Remove(shapes ...*Shape) int {
	if len(shapes) == 0 {
		return 0
	}
	drop := make(map[*Shape]struct{}, len(shapes))
	for _, s := range shapes {
		drop[s] = struct{}{}
	}

	kept := d.shapes[:0]
	removed := 0
	for _, s := range d.shapes {
		if _, ok := drop[s]; ok {
			s.active = false
			removed++
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(d.shapes); i++ {
		d.shapes[i] = nil
	}
	d.shapes = kept
	return removed
}

// Contains reports whether s is part of the document.
func (d *Document) Contains(s *Shape) bool {
	for _, o := range d.shapes {
		if o == s {
			return true
		}
	}
	return false
}

// ForEach calls fn for every shape, bottom to top.
func (d *Document) ForEach(fn func(*Shape)) {
	for _, s := range d.shapes {
		fn(s)
	}
}

// Len returns the number of top-level shapes.
func (d *Document) Len() int { return len(d.shapes) }

// Shapes returns the shapes bottom to top. The slice is a copy.
func (d *Document) Shapes() []*Shape {
	out := make([]*Shape, len(d.shapes))
	copy(out, d.shapes)
	return out
}

// Get returns the shape with the given id, or nil.
func (d *Document) Get(id string) *Shape {
	for _, s := range d.shapes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Clear removes every shape and abandons any free-drawing stroke.
func (d *Document) Clear() {
	d.shapes = nil
	d.stroke = nil
}

// Selection reports whether pointer selection is enabled.
func (d *Document) Selection() bool { return d.selection }

// SetSelection enables or disables pointer selection. Disabling it also
// drops the active selection.
func (d *Document) SetSelection(on bool) {
	d.selection = on
	if !on {
		d.DiscardActive()
	}
}

// SetSelectable marks a single shape as selectable or not.
func (d *Document) SetSelectable(s *Shape, on bool) {
	s.Selectable = on
}

// SetAllSelectable applies SetSelectable to every shape.
func (d *Document) SetAllSelectable(on bool) {
	for _, s := range d.shapes {
		d.SetSelectable(s, on)
	}
}

// SetCoords recomputes the hit-testing coords of every shape.
func (d *Document) SetCoords() {
	for _, s := range d.shapes {
		s.SetCoords()
	}
}

// SetActive replaces the active selection with shapes.
func (d *Document) SetActive(shapes ...*Shape) {
	d.DiscardActive()
	for _, s := range shapes {
		if s != nil && d.Contains(s) {
			s.active = true
		}
	}
}

// ToggleActive adds s to the active selection, or removes it if present.
func (d *Document) ToggleActive(s *Shape) {
	if s != nil && d.Contains(s) {
		s.active = !s.active
	}
}

// DiscardActive clears the active selection.
func (d *Document) DiscardActive() {
	for _, s := range d.shapes {
		s.active = false
	}
}

// ActiveSelection returns every active shape, bottom to top.
func (d *Document) ActiveSelection() []*Shape {
	var out []*Shape
	for _, s := range d.shapes {
		if s.active {
			out = append(out, s)
		}
	}
	return out
}

// ActiveGroup returns the active shapes when more than one is selected.
func (d *Document) ActiveGroup() []*Shape {
	sel := d.ActiveSelection()
	if len(sel) < 2 {
		return nil
	}
	return sel
}

// ActiveObject returns the active shape when exactly one is selected.
func (d *Document) ActiveObject() *Shape {
	sel := d.ActiveSelection()
	if len(sel) != 1 {
		return nil
	}
	return sel[0]
}

// HitTest returns the topmost selectable shape under p, or nil.
func (d *Document) HitTest(p Point) *Shape {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		s := d.shapes[i]
		if s.Selectable && s.Contains(p) {
			return s
		}
	}
	return nil
}

// Clone returns a detached deep copy of s with fresh ids.
func (d *Document) Clone(s *Shape) *Shape {
	return s.Clone()
}
