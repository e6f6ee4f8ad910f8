package types

import (
	"fmt"
	"sort"

	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/rtabi"
	"github.com/you-not-fish/maga/internal/syntax"
)

// Registry resolves symbolic types. Scalar entries are built once by
// NewRegistry; pointer TypeDefs are synthesized on every lookup.
type Registry struct {
	scalars map[string]*TypeDef
}

// NewRegistry returns a registry seeded with the predeclared scalar types.
func NewRegistry() (*Registry, error) {
	r := &Registry{scalars: make(map[string]*TypeDef, len(predeclared))}
	for _, s := range predeclared {
		h, err := s.handle()
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", s.name, err)
		}
		r.scalars[s.name] = &TypeDef{
			Type:   syntax.Type{Name: s.name},
			Handle: h,
			Size:   s.bits,
			Kind:   s.kind,
		}
	}
	return r, nil
}

// Lookup resolves t. A pointer type resolves to a new word-sized TypeDef
// whose Elem is the base entry; the base entry itself is never returned
// for a pointer.
func (r *Registry) Lookup(t syntax.Type) (*TypeDef, bool) {
	base, ok := r.scalars[t.Name]
	if !ok {
		return nil, false
	}
	if !t.Pointer {
		return base, true
	}

	h, err := backend.PointerTo(base.Handle)
	if err != nil {
		return nil, false
	}
	return &TypeDef{
		Type:   t,
		Handle: h,
		Size:   rtabi.PtrBits,
		Kind:   Pointer,
		Elem:   base,
	}, true
}

// LookupName resolves the non-pointer type called name.
func (r *Registry) LookupName(name string) (*TypeDef, bool) {
	return r.Lookup(syntax.Type{Name: name})
}

// Literal returns the type given to integer literals.
func (r *Registry) Literal() *TypeDef { return r.scalars[rtabi.LiteralTypeName] }

// Bool returns the result type of comparisons.
func (r *Registry) Bool() *TypeDef { return r.scalars[rtabi.BoolTypeName] }

// Void returns the unit type.
func (r *Registry) Void() *TypeDef { return r.scalars[rtabi.VoidTypeName] }

// Names returns the names of the scalar types, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scalars))
	for name := range r.scalars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
