package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/syntax"
	"github.com/you-not-fish/maga/internal/types"
)

// Value is a generated expression: a backend value and its resolved type.
type Value struct {
	Handle backend.Value
	Type   *types.TypeDef
}

// Binding associates a name with the value last generated for it.
type Binding struct {
	Name    string
	Pos     syntax.Pos
	Value   Value
	Mutable bool

	// Slot is the stack address of a mutable binding.
	Slot backend.Value
}

// Scope is a frame of variable bindings. Each function body gets its own
// frame; inside a frame a later binding replaces an earlier one.
type Scope struct {
	parent  *Scope
	elems   map[string]*Binding
	comment string // e.g. "function main"
}

// NewScope creates a frame nested in parent.
func NewScope(parent *Scope, comment string) *Scope {
	return &Scope{
		parent:  parent,
		elems:   make(map[string]*Binding),
		comment: comment,
	}
}

// Parent returns the enclosing frame, or nil.
func (s *Scope) Parent() *Scope { return s.parent }

// Lookup returns the binding for name in s only.
func (s *Scope) Lookup(name string) *Binding {
	return s.elems[name]
}

// LookupParent searches s and then its parents.
func (s *Scope) LookupParent(name string) (*Binding, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if b := scope.elems[name]; b != nil {
			return b, scope
		}
	}
	return nil, nil
}

// Insert binds b.Name in s and returns the binding it replaced, if any.
func (s *Scope) Insert(b *Binding) *Binding {
	prev := s.elems[b.Name]
	s.elems[b.Name] = b
	return prev
}

// Names returns the bound names of s, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings in s.
func (s *Scope) Len() int { return len(s.elems) }

func (s *Scope) String() string {
	var buf strings.Builder
	depth := 0
	for p := s.parent; p != nil; p = p.parent {
		depth++
	}
	prefix := strings.Repeat("  ", depth)
	fmt.Fprintf(&buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		b := s.elems[name]
		kw := "let"
		if b.Mutable {
			kw = "var"
		}
		fmt.Fprintf(&buf, "%s  %s %s: %s\n", prefix, kw, name, b.Value.Type)
	}
	fmt.Fprintf(&buf, "%s}\n", prefix)
	return buf.String()
}
