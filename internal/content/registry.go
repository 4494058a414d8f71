package content

import (
	"fmt"
)

// Registry is the ordered, immutable set of résumé sections. Accessors return copies.
type Registry struct {
	title   Title
	entries []Descriptor
	byType  map[string]int
}

// New builds a registry from already-bound descriptors. Types must be unique and
// non-empty; every descriptor needs a builder.
func New(title Title, descs []Descriptor) (*Registry, error) {
	r := &Registry{
		title:   title,
		entries: make([]Descriptor, len(descs)),
		byType:  make(map[string]int, len(descs)),
	}
	copy(r.entries, descs)
	for i, d := range r.entries {
		if d.Type == "" || d.Builder == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, d.Type)
		}
		if _, dup := r.byType[d.Type]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateType, d.Type)
		}
		r.byType[d.Type] = i
	}
	return r, nil
}

// Title returns the title panel text.
func (r *Registry) Title() Title { return r.title }

// Len returns the number of sections.
func (r *Registry) Len() int { return len(r.entries) }

// At returns the i-th section in authored order.
func (r *Registry) At(i int) Descriptor { return r.entries[i] }

// All returns a copy of every section in authored order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup returns the section of the given type.
func (r *Registry) Lookup(typ string) (Descriptor, bool) {
	i, ok := r.byType[typ]
	if !ok {
		return Descriptor{}, false
	}
	return r.entries[i], true
}

// Types returns the section types in authored order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.entries))
	for i, d := range r.entries {
		out[i] = d.Type
	}
	return out
}
