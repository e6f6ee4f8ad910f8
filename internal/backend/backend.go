// Package backend wraps the LLVM IR builder behind validated handles.
//
// Ownership follows the construction order: a Context owns its Modules, a
// Module owns its Functions, and a Builder appends to one block of one
// Function. Closing a Context releases every Module it created; using a
// released handle fails with ErrClosed rather than touching freed state.
package backend

import (
	"fmt"
	"io"
	"strings"

	"github.com/llir/llvm/ir"
)

// Context owns a set of modules.
type Context struct {
	modules []*Module
	closed  bool
}

// NewContext creates an empty backend context.
func NewContext() *Context {
	return &Context{}
}

// NewModule creates a module owned by c.
func (c *Context) NewModule(name string) (*Module, error) {
	if c == nil {
		return nil, opError("new module", ErrNilHandle)
	}
	if c.closed {
		return nil, opError("new module", ErrClosed)
	}
	m := &Module{
		ctx:   c,
		name:  name,
		ir:    ir.NewModule(),
		funcs: make(map[string]*Function),
	}
	m.ir.SourceFilename = name
	c.modules = append(c.modules, m)
	return m, nil
}

// NumModules returns the number of live modules owned by c.
func (c *Context) NumModules() int { return len(c.modules) }

// Close releases c and every module it still owns. It is safe to call
// Close more than once.
func (c *Context) Close() {
	if c == nil || c.closed {
		return
	}
	for _, m := range c.modules {
		m.release()
	}
	c.modules = nil
	c.closed = true
}

// Module is a unit of generated code.
type Module struct {
	ctx    *Context
	name   string
	ir     *ir.Module
	funcs  map[string]*Function
	order  []*Function
	closed bool
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// SetTarget sets the target triple and data layout. Empty strings leave
// the corresponding field unset.
func (m *Module) SetTarget(triple, layout string) error {
	if err := m.check("set target"); err != nil {
		return err
	}
	m.ir.TargetTriple = triple
	m.ir.DataLayout = layout
	return nil
}

// AddFunction declares a function of type sig. The function has no body
// until a Builder is created for it. A name that is already defined is
// made unique with a numeric suffix, as LLVM does.
func (m *Module) AddFunction(name string, sig Type) (*Function, error) {
	if err := m.check("add function"); err != nil {
		return nil, err
	}
	ft, ok := sig.funcType()
	if !ok {
		return nil, opError("add function", fmt.Errorf("%w: %s is not a function type", ErrBadType, sig))
	}

	unique := name
	for i := 1; m.funcs[unique] != nil; i++ {
		unique = fmt.Sprintf("%s.%d", name, i)
	}

	params := make([]*ir.Param, len(ft.Params))
	for i, pt := range ft.Params {
		params[i] = ir.NewParam("", pt)
	}
	f := &Function{mod: m, ir: m.ir.NewFunc(unique, ft.RetType, params...), sig: sig}
	m.funcs[unique] = f
	m.order = append(m.order, f)
	return f, nil
}

// Function returns the function with the given name.
func (m *Module) Function(name string) (*Function, bool) {
	if m == nil || m.closed {
		return nil, false
	}
	f, ok := m.funcs[name]
	return f, ok
}

// Functions returns the module's functions in definition order.
func (m *Module) Functions() []*Function {
	if m == nil || m.closed {
		return nil
	}
	return m.order
}

// Dump writes the textual LLVM IR of m to w. Every block of a defined
// function must be terminated.
func (m *Module) Dump(w io.Writer) (err error) {
	if err := m.check("dump"); err != nil {
		return err
	}
	for _, f := range m.order {
		for _, blk := range f.ir.Blocks {
			if blk.Term == nil {
				return opError("dump", fmt.Errorf("%w: function %s has an unterminated block", ErrBadType, f.Name()))
			}
		}
	}

	// The IR printer panics when it cannot number local values.
	defer func() {
		if r := recover(); r != nil {
			err = opError("dump", fmt.Errorf("%w: %v", ErrBadType, r))
		}
	}()
	if _, err := io.WriteString(w, m.ir.String()); err != nil {
		return opError("dump", err)
	}
	return nil
}

// String returns the textual LLVM IR of m, or "" for a released module.
func (m *Module) String() string {
	var b strings.Builder
	if err := m.Dump(&b); err != nil {
		return ""
	}
	return b.String()
}

// Close releases m. Its context no longer owns it.
func (m *Module) Close() {
	if m == nil || m.closed {
		return
	}
	if c := m.ctx; c != nil {
		for i, o := range c.modules {
			if o == m {
				c.modules = append(c.modules[:i], c.modules[i+1:]...)
				break
			}
		}
	}
	m.release()
}

// IsClosed reports whether m has been released.
func (m *Module) IsClosed() bool { return m == nil || m.closed }

func (m *Module) release() {
	m.ir = nil
	m.funcs = nil
	m.order = nil
	m.closed = true
}

func (m *Module) check(op string) error {
	if m == nil {
		return opError(op, ErrNilHandle)
	}
	if m.closed {
		return opError(op, ErrClosed)
	}
	return nil
}
