package backend

import (
	"fmt"

	"github.com/llir/llvm/ir/types"
)

// Type is a validated handle to a backend type. The zero Type is invalid.
type Type struct {
	t types.Type
}

// IsValid reports whether t refers to a backend type.
func (t Type) IsValid() bool { return t.t != nil }

func (t Type) String() string {
	if t.t == nil {
		return "<invalid>"
	}
	return t.t.String()
}

// Equal reports whether t and u denote the same backend type.
func (t Type) Equal(u Type) bool {
	if t.t == nil || u.t == nil {
		return t.t == nil && u.t == nil
	}
	return types.Equal(t.t, u.t)
}

// IsInt reports whether t is an integer type.
func (t Type) IsInt() bool {
	_, ok := t.t.(*types.IntType)
	return ok
}

// IsFloat reports whether t is a floating-point type.
func (t Type) IsFloat() bool {
	_, ok := t.t.(*types.FloatType)
	return ok
}

// IsPointer reports whether t is a pointer type.
func (t Type) IsPointer() bool {
	_, ok := t.t.(*types.PointerType)
	return ok
}

// IsVoid reports whether t is the void type.
func (t Type) IsVoid() bool {
	_, ok := t.t.(*types.VoidType)
	return ok
}

func (t Type) funcType() (*types.FuncType, bool) {
	ft, ok := t.t.(*types.FuncType)
	return ft, ok
}

// IsFunc reports whether t is a function type.
func (t Type) IsFunc() bool {
	_, ok := t.t.(*types.FuncType)
	return ok
}

// BitSize returns the width of an integer type, or 0.
func (t Type) BitSize() int {
	if it, ok := t.t.(*types.IntType); ok {
		return int(it.BitSize)
	}
	return 0
}

// Elem returns the pointee of a pointer type.
func (t Type) Elem() (Type, error) {
	pt, ok := t.t.(*types.PointerType)
	if !ok {
		return Type{}, opError("elem", fmt.Errorf("%w: %s is not a pointer", ErrBadType, t))
	}
	return Type{t: pt.ElemType}, nil
}

// IntType returns the integer type of the given width.
func IntType(bits int) (Type, error) {
	if bits <= 0 {
		return Type{}, opError("int type", fmt.Errorf("%w: width %d", ErrBadType, bits))
	}
	switch bits {
	case 1:
		return Type{t: types.I1}, nil
	case 8:
		return Type{t: types.I8}, nil
	case 16:
		return Type{t: types.I16}, nil
	case 32:
		return Type{t: types.I32}, nil
	case 64:
		return Type{t: types.I64}, nil
	}
	return Type{t: types.NewInt(uint64(bits))}, nil
}

// FloatType returns the IEEE single-precision type.
func FloatType() Type { return Type{t: types.Float} }

// DoubleType returns the IEEE double-precision type.
func DoubleType() Type { return Type{t: types.Double} }

// VoidType returns the void type.
func VoidType() Type { return Type{t: types.Void} }

// PointerTo returns a pointer to elem. A pointer to void is represented
// as a pointer to i8, since the backend has no void pointee.
func PointerTo(elem Type) (Type, error) {
	if elem.t == nil {
		return Type{}, opError("pointer type", ErrNilHandle)
	}
	if elem.IsVoid() {
		return Type{t: types.NewPointer(types.I8)}, nil
	}
	return Type{t: types.NewPointer(elem.t)}, nil
}

// FunctionType returns the type of functions taking params and returning ret.
func FunctionType(ret Type, params ...Type) (Type, error) {
	if ret.t == nil {
		return Type{}, opError("function type", fmt.Errorf("%w: result", ErrNilHandle))
	}
	ps := make([]types.Type, len(params))
	for i, p := range params {
		if p.t == nil {
			return Type{}, opError("function type", fmt.Errorf("%w: parameter %d", ErrNilHandle, i))
		}
		if p.IsVoid() {
			return Type{}, opError("function type", fmt.Errorf("%w: parameter %d is void", ErrBadType, i))
		}
		ps[i] = p.t
	}
	return Type{t: types.NewFunc(ret.t, ps...)}, nil
}

// Result returns the result type of a function type.
func (t Type) Result() (Type, error) {
	ft, ok := t.t.(*types.FuncType)
	if !ok {
		return Type{}, opError("result type", fmt.Errorf("%w: %s is not a function type", ErrBadType, t))
	}
	return Type{t: ft.RetType}, nil
}

// Params returns the parameter types of a function type.
func (t Type) Params() ([]Type, error) {
	ft, ok := t.t.(*types.FuncType)
	if !ok {
		return nil, opError("param types", fmt.Errorf("%w: %s is not a function type", ErrBadType, t))
	}
	ps := make([]Type, len(ft.Params))
	for i, p := range ft.Params {
		ps[i] = Type{t: p}
	}
	return ps, nil
}
