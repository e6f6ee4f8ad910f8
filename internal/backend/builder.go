package backend

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// IntPredicate is an integer comparison condition.
type IntPredicate uint8

const (
	IntEQ IntPredicate = iota
	IntNE
	IntSLT
	IntSLE
	IntSGT
	IntSGE
	IntULT
	IntULE
	IntUGT
	IntUGE
)

var intPreds = [...]enum.IPred{
	IntEQ:  enum.IPredEQ,
	IntNE:  enum.IPredNE,
	IntSLT: enum.IPredSLT,
	IntSLE: enum.IPredSLE,
	IntSGT: enum.IPredSGT,
	IntSGE: enum.IPredSGE,
	IntULT: enum.IPredULT,
	IntULE: enum.IPredULE,
	IntUGT: enum.IPredUGT,
	IntUGE: enum.IPredUGE,
}

// FloatPredicate is an ordered floating-point comparison condition.
type FloatPredicate uint8

const (
	FloatOEQ FloatPredicate = iota
	FloatONE
	FloatOLT
	FloatOLE
	FloatOGT
	FloatOGE
)

var floatPreds = [...]enum.FPred{
	FloatOEQ: enum.FPredOEQ,
	FloatONE: enum.FPredONE,
	FloatOLT: enum.FPredOLT,
	FloatOLE: enum.FPredOLE,
	FloatOGT: enum.FPredOGT,
	FloatOGE: enum.FPredOGE,
}

// Builder appends instructions to the end of one basic block. Once a
// terminator has been emitted every further append fails with ErrTerminated.
type Builder struct {
	fn *Function
	b  *ir.Block
}

// Function returns the function the builder appends to.
func (b *Builder) Function() *Function { return b.fn }

// Terminated reports whether the block already ends in a terminator.
func (b *Builder) Terminated() bool { return b.b != nil && b.b.Term != nil }

// ready validates the builder and the given operands before an append.
func (b *Builder) ready(op string, operands ...Value) error {
	if b == nil || b.b == nil {
		return opError(op, ErrNilHandle)
	}
	if err := b.fn.check(op); err != nil {
		return err
	}
	if b.b.Term != nil {
		return opError(op, ErrTerminated)
	}
	for i, v := range operands {
		if v.v == nil {
			return opError(op, fmt.Errorf("%w: operand %d", ErrNilHandle, i))
		}
	}
	return nil
}

// binary validates a two-operand arithmetic instruction: both operands
// must have the same type and that type must satisfy want.
func (b *Builder) binary(op string, x, y Value, want func(types.Type) bool) error {
	if err := b.ready(op, x, y); err != nil {
		return err
	}
	if !types.Equal(x.v.Type(), y.v.Type()) {
		return opError(op, fmt.Errorf("%w: operand types %s and %s differ", ErrBadType, x.v.Type(), y.v.Type()))
	}
	if !want(x.v.Type()) {
		return opError(op, fmt.Errorf("%w: %s operands", ErrBadType, x.v.Type()))
	}
	return nil
}

func isInt(t types.Type) bool {
	_, ok := t.(*types.IntType)
	return ok
}

func isFloat(t types.Type) bool {
	_, ok := t.(*types.FloatType)
	return ok
}

type arith func(x, y value.Value) value.Value

func (b *Builder) emit(op string, x, y Value, want func(types.Type) bool, f arith) (Value, error) {
	if err := b.binary(op, x, y, want); err != nil {
		return Value{}, err
	}
	return Value{v: f(x.v, y.v)}, nil
}

// Add emits integer addition.
func (b *Builder) Add(x, y Value) (Value, error) {
	return b.emit("add", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewAdd(x, y) })
}

// Sub emits integer subtraction.
func (b *Builder) Sub(x, y Value) (Value, error) {
	return b.emit("sub", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewSub(x, y) })
}

// Mul emits integer multiplication.
func (b *Builder) Mul(x, y Value) (Value, error) {
	return b.emit("mul", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewMul(x, y) })
}

// SDiv emits signed integer division.
func (b *Builder) SDiv(x, y Value) (Value, error) {
	return b.emit("sdiv", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewSDiv(x, y) })
}

// UDiv emits unsigned integer division.
func (b *Builder) UDiv(x, y Value) (Value, error) {
	return b.emit("udiv", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewUDiv(x, y) })
}

// SRem emits signed integer remainder.
func (b *Builder) SRem(x, y Value) (Value, error) {
	return b.emit("srem", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewSRem(x, y) })
}

// URem emits unsigned integer remainder.
func (b *Builder) URem(x, y Value) (Value, error) {
	return b.emit("urem", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewURem(x, y) })
}

// FAdd emits floating-point addition.
func (b *Builder) FAdd(x, y Value) (Value, error) {
	return b.emit("fadd", x, y, isFloat, func(x, y value.Value) value.Value { return b.b.NewFAdd(x, y) })
}

// FSub emits floating-point subtraction.
func (b *Builder) FSub(x, y Value) (Value, error) {
	return b.emit("fsub", x, y, isFloat, func(x, y value.Value) value.Value { return b.b.NewFSub(x, y) })
}

// FMul emits floating-point multiplication.
func (b *Builder) FMul(x, y Value) (Value, error) {
	return b.emit("fmul", x, y, isFloat, func(x, y value.Value) value.Value { return b.b.NewFMul(x, y) })
}

// FDiv emits floating-point division.
func (b *Builder) FDiv(x, y Value) (Value, error) {
	return b.emit("fdiv", x, y, isFloat, func(x, y value.Value) value.Value { return b.b.NewFDiv(x, y) })
}

// FRem emits floating-point remainder.
func (b *Builder) FRem(x, y Value) (Value, error) {
	return b.emit("frem", x, y, isFloat, func(x, y value.Value) value.Value { return b.b.NewFRem(x, y) })
}

// ICmp emits an integer comparison producing an i1.
func (b *Builder) ICmp(pred IntPredicate, x, y Value) (Value, error) {
	if int(pred) >= len(intPreds) {
		return Value{}, opError("icmp", fmt.Errorf("%w: predicate %d", ErrBadType, pred))
	}
	return b.emit("icmp", x, y, isInt, func(x, y value.Value) value.Value { return b.b.NewICmp(intPreds[pred], x, y) })
}

// FCmp emits an ordered floating-point comparison producing an i1.
func (b *Builder) FCmp(pred FloatPredicate, x, y Value) (Value, error) {
	if int(pred) >= len(floatPreds) {
		return Value{}, opError("fcmp", fmt.Errorf("%w: predicate %d", ErrBadType, pred))
	}
	return b.emit("fcmp", x, y, isFloat, func(x, y value.Value) value.Value { return b.b.NewFCmp(floatPreds[pred], x, y) })
}

// ZExt zero-extends the integer x to the wider integer type to.
func (b *Builder) ZExt(x Value, to Type) (Value, error) {
	if err := b.ready("zext", x); err != nil {
		return Value{}, err
	}
	from, ok := x.v.Type().(*types.IntType)
	dst, ok2 := to.t.(*types.IntType)
	if !ok || !ok2 || dst.BitSize <= from.BitSize {
		return Value{}, opError("zext", fmt.Errorf("%w: cannot extend %s to %s", ErrBadType, x.v.Type(), to))
	}
	return Value{v: b.b.NewZExt(x.v, dst)}, nil
}

// Alloca reserves a stack slot for a value of type t and returns its address.
func (b *Builder) Alloca(t Type) (Value, error) {
	if err := b.ready("alloca"); err != nil {
		return Value{}, err
	}
	if t.t == nil || t.IsVoid() || t.IsFunc() {
		return Value{}, opError("alloca", fmt.Errorf("%w: cannot allocate %s", ErrBadType, t))
	}
	return Value{v: b.b.NewAlloca(t.t)}, nil
}

// Store writes v to the address ptr.
func (b *Builder) Store(v, ptr Value) error {
	if err := b.ready("store", v, ptr); err != nil {
		return err
	}
	pt, ok := ptr.v.Type().(*types.PointerType)
	if !ok || !types.Equal(pt.ElemType, v.v.Type()) {
		return opError("store", fmt.Errorf("%w: cannot store %s through %s", ErrBadType, v.v.Type(), ptr.v.Type()))
	}
	b.b.NewStore(v.v, ptr.v)
	return nil
}

// Load reads a value of type t from the address ptr.
func (b *Builder) Load(t Type, ptr Value) (Value, error) {
	if err := b.ready("load", ptr); err != nil {
		return Value{}, err
	}
	pt, ok := ptr.v.Type().(*types.PointerType)
	if !ok || t.t == nil || !types.Equal(pt.ElemType, t.t) {
		return Value{}, opError("load", fmt.Errorf("%w: cannot load %s from %s", ErrBadType, t, ptr.v.Type()))
	}
	return Value{v: b.b.NewLoad(t.t, ptr.v)}, nil
}

// Ret terminates the block by returning v.
func (b *Builder) Ret(v Value) error {
	if err := b.ready("ret", v); err != nil {
		return err
	}
	b.b.NewRet(v.v)
	return nil
}

// RetVoid terminates the block by returning nothing.
func (b *Builder) RetVoid() error {
	if err := b.ready("ret void"); err != nil {
		return err
	}
	b.b.NewRet(nil)
	return nil
}
