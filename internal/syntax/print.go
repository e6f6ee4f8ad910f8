package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, e := range n.Elements {
			p.print(e)
		}
		p.indent--

	case *Function:
		p.printf("Function %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, par := range n.Params {
				p.print(par)
			}
			p.indent--
		}
		p.printf("Result: %s\n", n.Result)
		if n.Body != nil {
			p.printf("Body:\n")
			p.indent++
			p.print(n.Body)
			p.indent--
		}
		p.indent--

	case *Param:
		p.printf("Param %s %s: %s\n", n.pos, n.Name, n.Type)

	case *Scope:
		p.printf("Scope %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *AssignStmt:
		kw := "let"
		if n.Mutable {
			kw = "var"
		}
		p.printf("AssignStmt %s %s %s\n", n.pos, kw, n.Name)
		p.indent++
		p.print(n.RHS)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ConstantExpr:
		p.printf("ConstantExpr %s %s\n", n.pos, n.Value)

	case *VariableExpr:
		p.printf("VariableExpr %s %q\n", n.pos, n.Name)

	case *CallExpr:
		p.printf("CallExpr %s %q\n", n.pos, n.Name)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	default:
		p.printf("%T\n", node)
	}
}

// ExprString returns a compact prefix form of x, e.g. "(- a (* b c))"
// or "foo(1, 2)".
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch x := x.(type) {
	case nil:
		b.WriteString("<nil>")
	case *BinaryExpr:
		fmt.Fprintf(b, "(%s ", x.Op)
		writeExpr(b, x.X)
		b.WriteByte(' ')
		writeExpr(b, x.Y)
		b.WriteByte(')')
	case *UnaryExpr:
		fmt.Fprintf(b, "(%s ", x.Op)
		writeExpr(b, x.X)
		b.WriteByte(')')
	case *ConstantExpr:
		b.WriteString(x.Value.String())
	case *VariableExpr:
		b.WriteString(x.Name)
	case *CallExpr:
		b.WriteString(x.Name)
		b.WriteByte('(')
		for i, a := range x.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, a)
		}
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "%T", x)
	}
}
