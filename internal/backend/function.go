package backend

import (
	"fmt"

	"github.com/llir/llvm/ir"
)

// Function is a function of a Module.
type Function struct {
	mod *Module
	ir  *ir.Func
	sig Type
}

// Name returns the function's symbol name.
func (f *Function) Name() string { return f.ir.Name() }

// Signature returns the function type.
func (f *Function) Signature() Type { return f.sig }

// NumParams returns the number of parameters.
func (f *Function) NumParams() int { return len(f.ir.Params) }

// Param returns the i'th parameter value.
func (f *Function) Param(i int) (Value, error) {
	if err := f.check("param"); err != nil {
		return Value{}, err
	}
	if i < 0 || i >= len(f.ir.Params) {
		return Value{}, opError("param", fmt.Errorf("%w: index %d of %d", ErrNilHandle, i, len(f.ir.Params)))
	}
	return Value{v: f.ir.Params[i]}, nil
}

// SetParamName names the i'th parameter in the emitted IR.
func (f *Function) SetParamName(i int, name string) error {
	if err := f.check("param name"); err != nil {
		return err
	}
	if i < 0 || i >= len(f.ir.Params) {
		return opError("param name", fmt.Errorf("%w: index %d of %d", ErrNilHandle, i, len(f.ir.Params)))
	}
	f.ir.Params[i].SetName(name)
	return nil
}

// HasBody reports whether any block has been added to f.
func (f *Function) HasBody() bool { return f.ir != nil && len(f.ir.Blocks) > 0 }

// NewBuilder appends a basic block named label to f and returns a builder
// positioned at its end.
func (f *Function) NewBuilder(label string) (*Builder, error) {
	if err := f.check("new block"); err != nil {
		return nil, err
	}
	return &Builder{fn: f, b: f.ir.NewBlock(label)}, nil
}

func (f *Function) check(op string) error {
	if f == nil || f.ir == nil {
		return opError(op, ErrNilHandle)
	}
	return f.mod.check(op)
}
