// Package clipboard holds shapes cut or copied from a scene document.
//
// The clipboard stores references, not copies. Paste adds clones, so one
// capture can be pasted any number of times and each paste gets fresh ids.
package clipboard

import "github.com/dshills/paintr/internal/scene"

// Source is the document side of a capture.
type Source interface {
	ActiveGroup() []*scene.Shape
	ActiveObject() *scene.Shape
	Remove(shapes ...*scene.Shape) int
	DiscardActive()
}

// Target is the document side of a paste.
type Target interface {
	Add(shapes ...*scene.Shape)
	Clone(s *scene.Shape) *scene.Shape
	SetSelectable(s *scene.Shape, on bool)
}

// Clipboard is an in-process shape clipboard.
// It is not safe for concurrent use.
type Clipboard struct {
	items []*scene.Shape
}

// New creates an empty clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// capture returns the active multi-selection, or the single active shape.
func capture(doc Source) []*scene.Shape {
	if group := doc.ActiveGroup(); len(group) > 0 {
		return group
	}
	if obj := doc.ActiveObject(); obj != nil {
		return []*scene.Shape{obj}
	}
	return nil
}

// Cut moves the active selection into the clipboard, replacing what was
// there, and removes it from doc. Returns false when nothing is selected.
func (c *Clipboard) Cut(doc Source) bool {
	shapes := capture(doc)
	if len(shapes) == 0 {
		return false
	}
	c.items = shapes
	doc.DiscardActive()
	doc.Remove(shapes...)
	return true
}

// Copy captures the active selection without touching doc.
// Returns false when nothing is selected.
func (c *Clipboard) Copy(doc Source) bool {
	shapes := capture(doc)
	if len(shapes) == 0 {
		return false
	}
	c.items = shapes
	return true
}

// Paste adds a clone of every clipboard shape to doc and returns the
// clones. Clones are selectable only when selectable is true. The
// clipboard keeps its contents.
func (c *Clipboard) Paste(doc Target, selectable bool) []*scene.Shape {
	if len(c.items) == 0 {
		return nil
	}
	pasted := make([]*scene.Shape, 0, len(c.items))
	for _, s := range c.items {
		clone := doc.Clone(s)
		clone.SetCoords()
		doc.SetSelectable(clone, selectable)
		doc.Add(clone)
		pasted = append(pasted, clone)
	}
	return pasted
}

// Len returns the number of shapes held.
func (c *Clipboard) Len() int { return len(c.items) }

// Empty reports whether the clipboard holds nothing.
func (c *Clipboard) Empty() bool { return len(c.items) == 0 }

// Items returns a copy of the held references.
func (c *Clipboard) Items() []*scene.Shape {
	return append([]*scene.Shape(nil), c.items...)
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() { c.items = nil }
