package syntax

import "strconv"

// ----------------------------------------------------------------------------
// Interfaces
//
// The tree has three closed classes of nodes: top-level Elements,
// Statements and Expressions. The marker methods keep every implementation
// inside this package, so a type switch over one class lists all of its
// variants.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	aNode()
}

// Element is a top-level unit of a file.
type Element interface {
	Node
	aElement()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type element struct{ node }

func (*element) aElement() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Types

// VoidName is the name of the unit type used when a function declares no
// result.
const VoidName = "()"

// Type is a symbolic type: a base type name with an optional single level
// of pointer indirection. Two Types are equal iff both fields match.
type Type struct {
	Name    string
	Pointer bool
}

// VoidType returns the type of functions without a result annotation.
func VoidType() Type {
	return Type{Name: VoidName}
}

// IsVoid reports whether t is the non-pointer unit type.
func (t Type) IsVoid() bool {
	return t.Name == VoidName && !t.Pointer
}

func (t Type) String() string {
	if t.Pointer {
		return "*" + t.Name
	}
	return t.Name
}

// ----------------------------------------------------------------------------
// Files and elements

// File is the root of a parsed token sequence.
type File struct {
	node
	Elements []Element
}

// Functions returns the function elements of f in source order.
func (f *File) Functions() []*Function {
	var fns []*Function
	for _, e := range f.Elements {
		if fn, ok := e.(*Function); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Function is a function declaration: fun Name(Params) [: Result] [Body].
// Body is nil for a forward declaration.
type Function struct {
	element
	Name   string
	Params []*Param
	Result Type
	Body   *Scope
}

// Param is a function parameter: Name: Type.
type Param struct {
	node
	Name string
	Type Type
}

// ----------------------------------------------------------------------------
// Statements

// Scope is a brace-delimited statement list.
type Scope struct {
	node
	Stmts  []Stmt
	Rbrace Pos // position of the closing brace
}

// ReturnStmt is: return [Result];
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare return
}

// AssignStmt is a declaration binding: (let | var) Name = RHS;
type AssignStmt struct {
	stmt
	Mutable bool // declared with var
	Name    string
	RHS     Expr
}

// ----------------------------------------------------------------------------
// Expressions

// BinaryExpr is X Op Y.
type BinaryExpr struct {
	expr
	Op Operator
	X  Expr
	Y  Expr
}

// UnaryExpr is Op X.
type UnaryExpr struct {
	expr
	Op Operator
	X  Expr
}

// Constant is the value of an integer literal, either signed or unsigned.
type Constant struct {
	Signed bool
	Int    int64  // valid when Signed
	UInt   uint64 // valid when !Signed
}

// IntConst returns a signed constant.
func IntConst(v int64) Constant { return Constant{Signed: true, Int: v} }

// UIntConst returns an unsigned constant.
func UIntConst(v uint64) Constant { return Constant{UInt: v} }

func (c Constant) String() string {
	if c.Signed {
		return strconv.FormatInt(c.Int, 10)
	}
	return strconv.FormatUint(c.UInt, 10)
}

// ConstantExpr is an integer literal.
type ConstantExpr struct {
	expr
	Value Constant
}

// VariableExpr is a reference to a named value.
type VariableExpr struct {
	expr
	Name string
}

// CallExpr is Name(Args...).
type CallExpr struct {
	expr
	Name string
	Args []Expr
}
