package clipboard

import (
	"testing"

	"github.com/dshills/paintr/internal/scene"
)

func newDoc(n int) (*scene.Document, []*scene.Shape) {
	doc := scene.NewDocument()
	shapes := make([]*scene.Shape, n)
	for i := range shapes {
		shapes[i] = scene.NewRect(scene.Pt(float32(i*50), 0), 20, 20, scene.DefaultStyle())
		doc.Add(shapes[i])
	}
	return doc, shapes
}

func TestCopyThenPasteTwice(t *testing.T) {
	doc, shapes := newDoc(1)
	doc.SetActive(shapes[0])
	c := New()

	if !c.Copy(doc) {
		t.Fatal("Copy() = false with one shape selected")
	}
	first := c.Paste(doc, false)
	second := c.Paste(doc, false)

	if doc.Len() != 3 {
		t.Errorf("Len() = %d, want original plus two pastes", doc.Len())
	}
	if c.Len() != 1 {
		t.Errorf("clipboard Len() = %d, want 1", c.Len())
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("Paste() returned %d and %d shapes, want 1 each", len(first), len(second))
	}
	if first[0].ID == shapes[0].ID || first[0].ID == second[0].ID {
		t.Error("pasted shapes should get fresh ids")
	}
	if first[0] == shapes[0] {
		t.Error("paste should insert a clone, not the original")
	}
}

func TestCutWithNothingSelected(t *testing.T) {
	doc, _ := newDoc(2)
	c := New()
	c.Copy(doc)

	if c.Cut(doc) {
		t.Error("Cut() = true with nothing selected")
	}
	if doc.Len() != 2 {
		t.Errorf("Len() = %d, want document unchanged", doc.Len())
	}
	if !c.Empty() {
		t.Errorf("clipboard Len() = %d, want unchanged", c.Len())
	}
}

func TestCutRemovesSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected []int
	}{
		{"single", []int{1}},
		{"group", []int{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, shapes := newDoc(3)
			var sel []*scene.Shape
			for _, i := range tt.selected {
				sel = append(sel, shapes[i])
			}
			doc.SetActive(sel...)
			c := New()

			if !c.Cut(doc) {
				t.Fatal("Cut() = false with a selection")
			}
			if doc.Len() != 3-len(sel) {
				t.Errorf("Len() = %d, want %d", doc.Len(), 3-len(sel))
			}
			for _, s := range sel {
				if doc.Contains(s) {
					t.Errorf("shape %s still in document", s.ID)
				}
			}
			if c.Len() != len(sel) {
				t.Errorf("clipboard Len() = %d, want %d", c.Len(), len(sel))
			}
		})
	}
}

func TestCaptureReplacesContents(t *testing.T) {
	doc, shapes := newDoc(3)
	c := New()

	doc.SetActive(shapes[0], shapes[1])
	c.Copy(doc)
	doc.SetActive(shapes[2])
	c.Copy(doc)

	items := c.Items()
	if len(items) != 1 || items[0] != shapes[2] {
		t.Errorf("Items() = %v, want only the latest capture", items)
	}
}

func TestPasteSelectability(t *testing.T) {
	for _, selectable := range []bool{false, true} {
		doc, shapes := newDoc(1)
		shapes[0].Selectable = !selectable
		doc.SetActive(shapes[0])
		c := New()
		c.Copy(doc)

		pasted := c.Paste(doc, selectable)
		if pasted[0].Selectable != selectable {
			t.Errorf("Paste(selectable=%v) gave Selectable=%v", selectable, pasted[0].Selectable)
		}
		if pasted[0].Coords() != pasted[0].Bounds() {
			t.Error("pasted shape should have fresh coords")
		}
	}
}

func TestPasteEmpty(t *testing.T) {
	doc, _ := newDoc(1)
	if got := New().Paste(doc, true); got != nil {
		t.Errorf("Paste() on empty clipboard = %v, want nil", got)
	}
	if doc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", doc.Len())
	}
}
