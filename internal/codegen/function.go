package codegen

import (
	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/syntax"
	"github.com/you-not-fish/maga/internal/types"
)

// GenerateFunction adds fn to the module. A function without a body is
// emitted as a declaration.
func (g *Generator) GenerateFunction(fn *syntax.Function) (*backend.Function, error) {
	params := make([]*types.TypeDef, len(fn.Params))
	handles := make([]backend.Type, len(fn.Params))
	for i, p := range fn.Params {
		d, err := g.resolve(p.Type, p.Pos())
		if err != nil {
			return nil, err
		}
		if d.IsVoid() {
			return nil, &Error{Kind: KindInvalidType, Pos: p.Pos(), Name: p.Type.String()}
		}
		params[i] = d
		handles[i] = d.Handle
	}
	result, err := g.resolve(fn.Result, fn.Pos())
	if err != nil {
		return nil, err
	}

	sig, err := backend.FunctionType(result.Handle, handles...)
	if err != nil {
		return nil, backendError(fn.Pos(), err)
	}
	bf, err := g.mod.AddFunction(fn.Name, sig)
	if err != nil {
		return nil, backendError(fn.Pos(), err)
	}
	for i, p := range fn.Params {
		if err := bf.SetParamName(i, p.Name); err != nil {
			return nil, backendError(p.Pos(), err)
		}
	}

	if fn.Body == nil {
		return bf, nil
	}
	if err := g.body(fn, bf, params, result); err != nil {
		return nil, err
	}
	return bf, nil
}

// resolve maps a symbolic type through the registry.
func (g *Generator) resolve(t syntax.Type, pos syntax.Pos) (*types.TypeDef, error) {
	d, ok := g.reg.Lookup(t)
	if !ok {
		return nil, &Error{Kind: KindInvalidType, Pos: pos, Name: t.String()}
	}
	return d, nil
}

// body generates the statements of fn into a fresh entry block. Parameters
// are bound in a frame that lives until the body is complete.
func (g *Generator) body(fn *syntax.Function, bf *backend.Function, params []*types.TypeDef, result *types.TypeDef) error {
	b, err := bf.NewBuilder("entry")
	if err != nil {
		return backendError(fn.Body.Pos(), err)
	}

	g.fn = &funcState{decl: fn, fn: bf, b: b, result: result}
	g.scope = NewScope(nil, "function "+fn.Name)
	defer func() {
		g.fn = nil
		g.scope = nil
	}()

	for i, p := range fn.Params {
		v, err := bf.Param(i)
		if err != nil {
			return backendError(p.Pos(), err)
		}
		g.scope.Insert(&Binding{
			Name:  p.Name,
			Pos:   p.Pos(),
			Value: Value{Handle: v, Type: params[i]},
		})
	}

	for _, s := range fn.Body.Stmts {
		if err := g.stmt(s); err != nil {
			return err
		}
	}

	if b.Terminated() {
		return nil
	}
	if !result.IsVoid() {
		return &Error{Kind: KindMissingReturn, Pos: fn.Body.Rbrace, Name: fn.Name, LHS: result}
	}
	if err := b.RetVoid(); err != nil {
		return backendError(fn.Body.Rbrace, err)
	}
	return nil
}
