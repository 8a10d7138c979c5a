package scene

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FormatVersion is written into every serialized document.
const FormatVersion = "1"

// maxGroupDepth bounds nesting when decoding groups.
const maxGroupDepth = 16

// SerializeJSON encodes the whole document.
// The output is deterministic for a given document state.
func (d *Document) SerializeJSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if out, err = sjson.SetBytes(out, "version", FormatVersion); err != nil {
		return nil, fmt.Errorf("encode version: %w", err)
	}
	if out, err = sjson.SetBytes(out, "background", d.background); err != nil {
		return nil, fmt.Errorf("encode background: %w", err)
	}
	if out, err = sjson.SetRawBytes(out, "objects", []byte(`[]`)); err != nil {
		return nil, fmt.Errorf("encode objects: %w", err)
	}

	for i, s := range d.shapes {
		raw, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("encode object %d: %w", i, err)
		}
		if out, err = sjson.SetRawBytes(out, "objects.-1", raw); err != nil {
			return nil, fmt.Errorf("encode object %d: %w", i, err)
		}
	}
	return out, nil
}

// LoadJSON replaces the document with the serialized state in data.
// Nothing is modified unless the whole payload decodes cleanly.
func (d *Document) LoadJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return &LoadError{Message: "invalid JSON", Err: ErrMalformed}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return &LoadError{Message: "top level must be an object", Err: ErrMalformed}
	}

	background := d.background
	if bg := root.Get("background"); bg.Exists() {
		if bg.Type != gjson.String {
			return &LoadError{Path: "background", Message: "must be a string", Err: ErrMalformed}
		}
		background = bg.String()
	}

	objects := root.Get("objects")
	if objects.Exists() && !objects.IsArray() {
		return &LoadError{Path: "objects", Message: "must be an array", Err: ErrMalformed}
	}

	shapes, err := decodeShapes(objects, "objects", 0)
	if err != nil {
		return err
	}

	d.shapes = shapes
	d.background = background
	d.stroke = nil
	return nil
}

func decodeShapes(arr gjson.Result, path string, depth int) ([]*Shape, error) {
	if depth > maxGroupDepth {
		return nil, &LoadError{Path: path, Message: "groups nested too deeply", Err: ErrBadGeometry}
	}

	var (
		shapes []*Shape
		err    error
	)
	i := 0
	arr.ForEach(func(_, v gjson.Result) bool {
		var s *Shape
		s, err = decodeShape(v, path+"."+strconv.Itoa(i), depth)
		if err != nil {
			return false
		}
		shapes = append(shapes, s)
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return shapes, nil
}

func decodeShape(v gjson.Result, path string, depth int) (*Shape, error) {
	if !v.IsObject() {
		return nil, &LoadError{Path: path, Message: "object expected", Err: ErrMalformed}
	}

	kind := Kind(v.Get("type").String())
	if !kind.Valid() {
		return nil, &LoadError{Path: path + ".type", Message: fmt.Sprintf("%q", kind), Err: ErrUnknownShape}
	}

	// Children are decoded separately so each gets validated.
	raw := v.Raw
	if kind == KindGroup {
		var err error
		if raw, err = sjson.Delete(raw, "objects"); err != nil {
			return nil, &LoadError{Path: path, Message: err.Error(), Err: ErrMalformed}
		}
	}

	s := &Shape{}
	if err := json.Unmarshal([]byte(raw), s); err != nil {
		return nil, &LoadError{Path: path, Message: err.Error(), Err: ErrMalformed}
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	switch kind {
	case KindCircle:
		if s.Radius < 0 {
			return nil, &LoadError{Path: path + ".radius", Message: "must be non-negative", Err: ErrBadGeometry}
		}
	case KindEllipse:
		if s.RX < 0 || s.RY < 0 {
			return nil, &LoadError{Path: path, Message: "radii must be non-negative", Err: ErrBadGeometry}
		}
	case KindGroup:
		children := v.Get("objects")
		if children.Exists() && !children.IsArray() {
			return nil, &LoadError{Path: path + ".objects", Message: "must be an array", Err: ErrMalformed}
		}
		objs, err := decodeShapes(children, path+".objects", depth+1)
		if err != nil {
			return nil, err
		}
		s.Objects = objs
	}

	s.SetCoords()
	return s, nil
}
