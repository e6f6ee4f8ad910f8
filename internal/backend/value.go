package backend

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Value is a validated handle to a backend value: a constant, parameter or
// instruction result. The zero Value is invalid.
type Value struct {
	v value.Value
}

// IsValid reports whether v refers to a backend value.
func (v Value) IsValid() bool { return v.v != nil }

// Type returns the type of v.
func (v Value) Type() Type {
	if v.v == nil {
		return Type{}
	}
	return Type{t: v.v.Type()}
}

// String returns v as an instruction operand, e.g. "i64 1" or "i32 %a".
func (v Value) String() string {
	if v.v == nil {
		return "<invalid>"
	}
	return v.v.String()
}

// ConstInt materializes an integer constant of type t.
func ConstInt(t Type, x int64) (Value, error) {
	it, ok := t.t.(*types.IntType)
	if !ok {
		return Value{}, opError("const int", fmt.Errorf("%w: %s is not an integer type", ErrBadType, t))
	}
	return Value{v: constant.NewInt(it, x)}, nil
}
