package codegen

import (
	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/syntax"
	"github.com/you-not-fish/maga/internal/types"
)

// expr generates x into the current block.
func (g *Generator) expr(x syntax.Expr) (Value, error) {
	switch x := x.(type) {
	case *syntax.ConstantExpr:
		return g.constant(x)
	case *syntax.VariableExpr:
		return g.variable(x)
	case *syntax.BinaryExpr:
		return g.binary(x)
	case *syntax.UnaryExpr:
		return Value{}, &Error{Kind: KindUnimplemented, Pos: x.Pos(), Name: "unary " + x.Op.String() + " expression", Op: x.Op}
	case *syntax.CallExpr:
		return Value{}, &Error{Kind: KindUnimplemented, Pos: x.Pos(), Name: "call of " + x.Name}
	case nil:
		return Value{}, &Error{Kind: KindUnimplemented, Name: "empty expression"}
	}
	return Value{}, &Error{Kind: KindUnimplemented, Pos: x.Pos(), Name: "expression"}
}

// constant materializes a literal. Every literal is an i64; unsigned
// values above the signed range keep their bit pattern.
func (g *Generator) constant(x *syntax.ConstantExpr) (Value, error) {
	lit := g.reg.Literal()
	n := x.Value.Int
	if !x.Value.Signed {
		n = int64(x.Value.UInt)
	}
	v, err := backend.ConstInt(lit.Handle, n)
	if err != nil {
		return Value{}, backendError(x.Pos(), err)
	}
	return Value{Handle: v, Type: lit}, nil
}

// variable yields the value bound to x. No load is emitted.
func (g *Generator) variable(x *syntax.VariableExpr) (Value, error) {
	b, _ := g.scope.LookupParent(x.Name)
	if b == nil {
		return Value{}, &Error{Kind: KindInvalidVariable, Pos: x.Pos(), Name: x.Name}
	}
	return b.Value, nil
}

// binary generates X then Y and combines them. Both operands must have
// exactly the same type.
func (g *Generator) binary(x *syntax.BinaryExpr) (Value, error) {
	lhs, err := g.expr(x.X)
	if err != nil {
		return Value{}, err
	}
	rhs, err := g.expr(x.Y)
	if err != nil {
		return Value{}, err
	}
	if !lhs.Type.Equal(rhs.Type) {
		return Value{}, &Error{Kind: KindTypeMismatch, Pos: x.Pos(), LHS: lhs.Type, RHS: rhs.Type, Op: x.Op}
	}

	t := lhs.Type
	unsupported := &Error{Kind: KindUnsupportedOperator, Pos: x.Pos(), Op: x.Op, Name: t.Name()}
	if x.Op.IsComparison() {
		return g.compare(x, lhs, rhs, unsupported)
	}

	var op func(a, b backend.Value) (backend.Value, error)
	b := g.fn.b
	switch {
	case isIntegral(t):
		switch x.Op {
		case syntax.OpAdd:
			op = b.Add
		case syntax.OpSub:
			op = b.Sub
		case syntax.OpMul:
			op = b.Mul
		case syntax.OpDiv:
			op = pick(isUnsigned(t), b.UDiv, b.SDiv)
		case syntax.OpMod:
			op = pick(isUnsigned(t), b.URem, b.SRem)
		}
	case t.IsFloat():
		switch x.Op {
		case syntax.OpAdd:
			op = b.FAdd
		case syntax.OpSub:
			op = b.FSub
		case syntax.OpMul:
			op = b.FMul
		case syntax.OpDiv:
			op = b.FDiv
		case syntax.OpMod:
			op = b.FRem
		}
	}
	if op == nil {
		return Value{}, unsupported
	}

	v, err := op(lhs.Handle, rhs.Handle)
	if err != nil {
		return Value{}, backendError(x.Pos(), err)
	}
	return Value{Handle: v, Type: t}, nil
}

// compare generates a relational operator. The i1 result is widened to
// the bool type. "<" generates a less-or-equal comparison, like "<=".
func (g *Generator) compare(x *syntax.BinaryExpr, lhs, rhs Value, unsupported error) (Value, error) {
	t := lhs.Type
	b := g.fn.b

	var (
		v   backend.Value
		err error
	)
	switch {
	case isIntegral(t):
		pred, ok := intPredicate(x.Op, isUnsigned(t))
		if !ok {
			return Value{}, unsupported
		}
		v, err = b.ICmp(pred, lhs.Handle, rhs.Handle)
	case t.IsFloat():
		pred, ok := floatPredicate(x.Op)
		if !ok {
			return Value{}, unsupported
		}
		v, err = b.FCmp(pred, lhs.Handle, rhs.Handle)
	default:
		return Value{}, unsupported
	}
	if err != nil {
		return Value{}, backendError(x.Pos(), err)
	}

	res := g.reg.Bool()
	w, err := b.ZExt(v, res.Handle)
	if err != nil {
		return Value{}, backendError(x.Pos(), err)
	}
	return Value{Handle: w, Type: res}, nil
}

func intPredicate(op syntax.Operator, unsigned bool) (backend.IntPredicate, bool) {
	switch op {
	case syntax.OpLess, syntax.OpLessEqual:
		return pickPred(unsigned, backend.IntULE, backend.IntSLE), true
	case syntax.OpGreater:
		return pickPred(unsigned, backend.IntUGT, backend.IntSGT), true
	case syntax.OpGreaterEqual:
		return pickPred(unsigned, backend.IntUGE, backend.IntSGE), true
	}
	return 0, false
}

func floatPredicate(op syntax.Operator) (backend.FloatPredicate, bool) {
	switch op {
	case syntax.OpLess, syntax.OpLessEqual:
		return backend.FloatOLE, true
	case syntax.OpGreater:
		return backend.FloatOGT, true
	case syntax.OpGreaterEqual:
		return backend.FloatOGE, true
	}
	return 0, false
}

// isIntegral reports whether t uses integer instructions. bool is stored
// as an unsigned byte.
func isIntegral(t *types.TypeDef) bool {
	return t.IsInteger() || t.Kind == types.Bool
}

// isUnsigned reports whether t selects the unsigned form of division,
// remainder and comparison.
func isUnsigned(t *types.TypeDef) bool {
	return t.IsUnsigned() || t.Kind == types.Bool
}

func pick(unsigned bool, u, s func(a, b backend.Value) (backend.Value, error)) func(a, b backend.Value) (backend.Value, error) {
	if unsigned {
		return u
	}
	return s
}

func pickPred(unsigned bool, u, s backend.IntPredicate) backend.IntPredicate {
	if unsigned {
		return u
	}
	return s
}
