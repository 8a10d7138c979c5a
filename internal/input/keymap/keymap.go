package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/paintr/internal/input/key"
)

// Keymap holds an ordered list of key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings.
	Bindings []Binding
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Merge appends every binding of other, so they take precedence.
func (k *Keymap) Merge(other *Keymap) *Keymap {
	if other != nil {
		k.Bindings = append(k.Bindings, other.Bindings...)
	}
	return k
}

// FromMap builds a keymap from a keys-to-action table, as found in config
// files. Bindings are sorted by keys so the result is deterministic.
func FromMap(name string, m map[string]string) *Keymap {
	km := NewKeymap(name)
	specs := make([]string, 0, len(m))
	for spec := range m {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	for _, spec := range specs {
		km.Add(spec, m[spec])
	}
	return km
}

// Parse validates every binding and builds the lookup table.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		name:     k.Name,
		bindings: make(map[key.Event]Binding, len(k.Bindings)),
	}

	for i, b := range k.Bindings {
		if b.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		parsed.bindings[ev] = b
	}

	return parsed, nil
}

// ParsedKeymap is a keymap ready for lookups.
type ParsedKeymap struct {
	name     string
	bindings map[key.Event]Binding
}

// Name returns the source keymap's name.
func (p *ParsedKeymap) Name() string {
	return p.name
}

// Lookup returns the binding for ev, if any.
func (p *ParsedKeymap) Lookup(ev key.Event) (Binding, bool) {
	if p == nil {
		return Binding{}, false
	}
	b, ok := p.bindings[ev.Normalize()]
	return b, ok
}

// Len returns the number of distinct bound key events.
func (p *ParsedKeymap) Len() int {
	return len(p.bindings)
}

// Chords returns every bound key event in its canonical spec form, such as
// "Ctrl+Z" or "Shift+Meta+Z", sorted. A page can match its own key events
// against the list without a round trip.
func (p *ParsedKeymap) Chords() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.bindings))
	for ev := range p.bindings {
		out = append(out, ev.String())
	}
	sort.Strings(out)
	return out
}
