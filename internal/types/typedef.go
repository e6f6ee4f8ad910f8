// Package types maps the symbolic types of maga source code to backend
// types and bit widths.
package types

import (
	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/syntax"
)

// Kind classifies a TypeDef.
type Kind int

const (
	Invalid Kind = iota

	Void
	Bool
	Signed   // i8 .. i64
	Unsigned // u8 .. u64
	Float    // f32, f64
	Pointer
)

var kindNames = [...]string{
	Invalid:  "invalid",
	Void:     "void",
	Bool:     "bool",
	Signed:   "signed",
	Unsigned: "unsigned",
	Float:    "float",
	Pointer:  "pointer",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// TypeDef is a symbolic type resolved against the backend.
type TypeDef struct {
	Type   syntax.Type
	Handle backend.Type
	Size   int // in bits; pointers are always rtabi.PtrBits wide
	Kind   Kind

	// Elem is the pointee of a Pointer TypeDef.
	Elem *TypeDef
}

// Name returns the source spelling of the type, e.g. "i32" or "*u8".
func (d *TypeDef) Name() string { return d.Type.String() }

func (d *TypeDef) String() string { return d.Name() }

// Equal reports whether d and e denote the same type. Equality is exact:
// both the base name and the pointer flag must match.
func (d *TypeDef) Equal(e *TypeDef) bool {
	if d == nil || e == nil {
		return d == e
	}
	return d.Type == e.Type
}

// IsInteger reports whether d is a signed or unsigned integer type.
func (d *TypeDef) IsInteger() bool { return d.Kind == Signed || d.Kind == Unsigned }

// IsUnsigned reports whether d is an unsigned integer type.
func (d *TypeDef) IsUnsigned() bool { return d.Kind == Unsigned }

// IsFloat reports whether d is f32 or f64.
func (d *TypeDef) IsFloat() bool { return d.Kind == Float }

// IsVoid reports whether d is the unit type.
func (d *TypeDef) IsVoid() bool { return d.Kind == Void }

// IsPointer reports whether d is a pointer type.
func (d *TypeDef) IsPointer() bool { return d.Kind == Pointer }
