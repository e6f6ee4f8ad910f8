package types

import (
	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/rtabi"
)

// scalar describes one predeclared entry of the registry.
type scalar struct {
	name   string
	kind   Kind
	bits   int
	handle func() (backend.Type, error)
}

func intHandle(bits int) func() (backend.Type, error) {
	return func() (backend.Type, error) { return backend.IntType(bits) }
}

func fixed(t backend.Type) func() (backend.Type, error) {
	return func() (backend.Type, error) { return t, nil }
}

// predeclared lists the scalar types every registry starts with.
var predeclared = []scalar{
	{"u8", Unsigned, 8, intHandle(8)},
	{"i8", Signed, 8, intHandle(8)},
	{"u16", Unsigned, 16, intHandle(16)},
	{"i16", Signed, 16, intHandle(16)},
	{"u32", Unsigned, 32, intHandle(32)},
	{"i32", Signed, 32, intHandle(32)},
	{"u64", Unsigned, 64, intHandle(64)},
	{"i64", Signed, 64, intHandle(64)},
	{"f32", Float, 32, fixed(backend.FloatType())},
	{"f64", Float, 64, fixed(backend.DoubleType())},
	{rtabi.VoidTypeName, Void, rtabi.VoidBits, fixed(backend.VoidType())},
	{rtabi.BoolTypeName, Bool, rtabi.BoolBits, intHandle(rtabi.BoolBits)},
}
