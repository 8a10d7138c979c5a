package scene

// FreeDrawing reports whether native free drawing is on.
func (d *Document) FreeDrawing() bool { return d.freeDrawing }

// SetFreeDrawing turns native free drawing on or off. Turning it off
// finishes any stroke in progress.
func (d *Document) SetFreeDrawing(on bool) {
	if !on {
		d.EndFreeDraw()
	}
	d.freeDrawing = on
}

// Brush returns the free-drawing brush.
func (d *Document) Brush() Style { return d.brush }

// SetBrush changes the free-drawing brush for subsequent strokes.
func (d *Document) SetBrush(style Style) { d.brush = style }

// BeginFreeDraw starts a stroke at p. The stroke is added to the document
// immediately so it renders while drawing. Returns nil when free drawing
// is off.
func (d *Document) BeginFreeDraw(p Point) *Shape {
	if !d.freeDrawing {
		return nil
	}
	d.EndFreeDraw()
	d.stroke = NewPath([]Point{p}, d.brush)
	d.Add(d.stroke)
	return d.stroke
}

// ContinueFreeDraw extends the current stroke to p. Consecutive duplicate
// points are skipped.
func (d *Document) ContinueFreeDraw(p Point) {
	if d.stroke == nil {
		return
	}
	if n := len(d.stroke.Points); n > 0 && d.stroke.Points[n-1] == p {
		return
	}
	d.stroke.Points = append(d.stroke.Points, p)
	d.stroke.SetCoords()
}

// EndFreeDraw finishes the current stroke and returns it, or nil when no
// stroke was in progress.
func (d *Document) EndFreeDraw() *Shape {
	s := d.stroke
	d.stroke = nil
	return s
}

// Drawing reports whether a free-drawing stroke is in progress.
func (d *Document) Drawing() bool { return d.stroke != nil }
