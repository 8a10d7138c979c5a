// Package scene provides the retained shape model that paintr draws into.
//
// A Document is an ordered collection of shapes. Later shapes are drawn on
// top of earlier ones, and hit testing walks the list from the top down.
//
// # Shapes
//
// Every Shape carries a Kind that decides which geometry fields are used:
//
//	line     X1, Y1, X2, Y2
//	rect     Left, Top, Width, Height (width and height may be negative)
//	circle   Left, Top (centre), Radius
//	ellipse  Left, Top (centre), RX, RY
//	path     Points
//	group    Objects
//
// # Snapshots
//
// SerializeJSON writes the whole document as a single JSON object:
//
//	{"version":"1","background":"white","objects":[{"type":"rect",...}]}
//
// LoadJSON replaces the document from such an object. Loading is
// all-or-nothing: on any error the document is left untouched and a
// *LoadError is returned.
//
// # Interaction state
//
// Selectability, the active selection and cached bounding coordinates are
// runtime state. Only Selectable is serialized; the active flags and coords
// are recomputed after a load.
package scene
