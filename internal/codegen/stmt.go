package codegen

import (
	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/syntax"
)

// stmt generates s into the current block. Nothing may follow a return.
func (g *Generator) stmt(s syntax.Stmt) error {
	if g.fn.b.Terminated() {
		return backendError(s.Pos(), &backend.Error{Op: "statement", Err: backend.ErrTerminated})
	}

	switch s := s.(type) {
	case *syntax.ReturnStmt:
		return g.returnStmt(s)
	case *syntax.AssignStmt:
		return g.assignStmt(s)
	}
	return &Error{Kind: KindUnimplemented, Pos: s.Pos(), Name: "statement"}
}

// returnStmt checks the returned value against the declared result type.
func (g *Generator) returnStmt(s *syntax.ReturnStmt) error {
	want := g.fn.result
	b := g.fn.b

	if s.Result == nil {
		if !want.IsVoid() {
			return &Error{Kind: KindTypeMismatch, Pos: s.Pos(), LHS: want, RHS: g.reg.Void()}
		}
		if err := b.RetVoid(); err != nil {
			return backendError(s.Pos(), err)
		}
		return nil
	}

	v, err := g.expr(s.Result)
	if err != nil {
		return err
	}
	if !v.Type.Equal(want) {
		return &Error{Kind: KindTypeMismatch, Pos: s.Result.Pos(), LHS: want, RHS: v.Type}
	}
	if err := b.Ret(v.Handle); err != nil {
		return backendError(s.Pos(), err)
	}
	return nil
}

// assignStmt binds the value of the right-hand side. A var binding also
// gets a stack slot holding its initial value.
func (g *Generator) assignStmt(s *syntax.AssignStmt) error {
	v, err := g.expr(s.RHS)
	if err != nil {
		return err
	}

	bind := &Binding{Name: s.Name, Pos: s.Pos(), Value: v, Mutable: s.Mutable}
	if s.Mutable {
		b := g.fn.b
		slot, err := b.Alloca(v.Type.Handle)
		if err != nil {
			return backendError(s.Pos(), err)
		}
		if err := b.Store(v.Handle, slot); err != nil {
			return backendError(s.Pos(), err)
		}
		bind.Slot = slot
	}
	g.scope.Insert(bind)
	return nil
}
