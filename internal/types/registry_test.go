package types

import (
	"reflect"
	"testing"

	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/rtabi"
	"github.com/you-not-fish/maga/internal/syntax"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestRegistryScalars(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name string
		kind Kind
		size int
	}{
		{"u8", Unsigned, 8},
		{"i8", Signed, 8},
		{"u16", Unsigned, 16},
		{"i16", Signed, 16},
		{"u32", Unsigned, 32},
		{"i32", Signed, 32},
		{"u64", Unsigned, 64},
		{"i64", Signed, 64},
		{"f32", Float, 32},
		{"f64", Float, 64},
		{"()", Void, 0},
		{"bool", Bool, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := r.LookupName(tt.name)
			if !ok {
				t.Fatalf("Lookup(%s) failed", tt.name)
			}
			if d.Kind != tt.kind || d.Size != tt.size {
				t.Errorf("%s: kind=%s size=%d, want kind=%s size=%d", tt.name, d.Kind, d.Size, tt.kind, tt.size)
			}
			if !d.Handle.IsValid() {
				t.Errorf("%s has no backend handle", tt.name)
			}
			if d.IsInteger() && d.Handle.BitSize() != tt.size {
				t.Errorf("%s backend width = %d, want %d", tt.name, d.Handle.BitSize(), tt.size)
			}
		})
	}
}

func TestRegistryBackendHandles(t *testing.T) {
	r := newTestRegistry(t)
	lookup := func(name string) backend.Type {
		d, ok := r.LookupName(name)
		if !ok {
			t.Fatalf("Lookup(%s) failed", name)
		}
		return d.Handle
	}

	if !lookup("f32").Equal(backend.FloatType()) || !lookup("f64").Equal(backend.DoubleType()) {
		t.Error("float types map to the wrong backend types")
	}
	if !lookup("()").IsVoid() {
		t.Error("() does not map to void")
	}
	if !lookup("bool").Equal(lookup("i8")) {
		t.Error("bool is not stored as a byte")
	}
	if !lookup("u32").Equal(lookup("i32")) {
		t.Error("signedness changed the backend integer type")
	}
}

func TestRegistryPointer(t *testing.T) {
	r := newTestRegistry(t)

	base, _ := r.LookupName("i32")
	p, ok := r.Lookup(syntax.Type{Name: "i32", Pointer: true})
	if !ok {
		t.Fatal("Lookup(*i32) failed")
	}
	if p.Size != 64 || p.Kind != Pointer || !p.IsPointer() {
		t.Errorf("*i32: size=%d kind=%s, want 64 pointer", p.Size, p.Kind)
	}
	if p.Elem != base {
		t.Error("*i32 does not wrap the i32 entry")
	}
	if p == base || p.Equal(base) || base.Size != 32 {
		t.Error("*i32 is not distinct from i32")
	}
	if !p.Handle.IsPointer() {
		t.Errorf("*i32 handle = %s, want a pointer", p.Handle)
	}
	if p.Name() != "*i32" {
		t.Errorf("Name() = %q, want *i32", p.Name())
	}

	q, _ := r.Lookup(syntax.Type{Name: "i32", Pointer: true})
	if q == p {
		t.Error("pointer TypeDefs are cached")
	}
	if !q.Equal(p) {
		t.Error("two lookups of *i32 are not equal")
	}

	big, _ := r.Lookup(syntax.Type{Name: "u8", Pointer: true})
	if big.Size != rtabi.PtrBits {
		t.Errorf("*u8 size = %d, want %d", big.Size, rtabi.PtrBits)
	}

	vp, ok := r.Lookup(syntax.Type{Name: syntax.VoidName, Pointer: true})
	if !ok || !vp.Handle.IsPointer() {
		t.Errorf("*() = %v, %v; want a pointer", vp, ok)
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := newTestRegistry(t)
	for _, typ := range []syntax.Type{{Name: "int"}, {Name: "string", Pointer: true}, {Name: ""}} {
		if d, ok := r.Lookup(typ); ok {
			t.Errorf("Lookup(%s) = %s, want failure", typ, d)
		}
	}
}

func TestRegistryWellKnown(t *testing.T) {
	r := newTestRegistry(t)
	if r.Literal().Name() != "i64" {
		t.Errorf("Literal() = %s, want i64", r.Literal())
	}
	if r.Bool().Kind != Bool {
		t.Errorf("Bool() kind = %s", r.Bool().Kind)
	}
	if !r.Void().IsVoid() || r.Void().Type != syntax.VoidType() {
		t.Errorf("Void() = %s", r.Void())
	}
}

func TestRegistryNames(t *testing.T) {
	r := newTestRegistry(t)
	want := []string{"()", "bool", "f32", "f64", "i16", "i32", "i64", "i8", "u16", "u32", "u64", "u8"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestTypeDefEqual(t *testing.T) {
	r := newTestRegistry(t)
	i32, _ := r.LookupName("i32")
	u32, _ := r.LookupName("u32")
	again, _ := r.LookupName("i32")

	if !i32.Equal(again) {
		t.Error("i32 != i32")
	}
	if i32.Equal(u32) {
		t.Error("i32 == u32 although the names differ")
	}
	var nilDef *TypeDef
	if i32.Equal(nilDef) || !nilDef.Equal(nil) {
		t.Error("Equal mishandles nil")
	}
}

func TestKindString(t *testing.T) {
	if Unsigned.String() != "unsigned" || Kind(99).String() != "invalid" {
		t.Errorf("Kind strings: %s %s", Unsigned, Kind(99))
	}
}
