package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/you-not-fish/maga/internal/backend"
)

func TestImplicitReturnVoid(t *testing.T) {
	ir := genIR(t, "fun f() {}")
	expectIR(t, ir, "define void @f()", "ret void")
}

func TestExplicitReturnVoid(t *testing.T) {
	ir := genIR(t, "fun f() { return; }")
	if n := strings.Count(ir, "ret void"); n != 1 {
		t.Errorf("got %d ret void, want 1:\n%s", n, ir)
	}
}

func TestReturnParameter(t *testing.T) {
	ir := genIR(t, "fun id(x: u64): u64 { return x; }")
	expectIR(t, ir, "define i64 @id(i64 %x)", "ret i64 %x")
}

func TestReturnTypeChecked(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		lhs, rhs string
	}{
		{"value from void function", "fun f() { return 1; }", "()", "i64"},
		{"bare return from i64 function", "fun f(): i64 { return; }", "i64", "()"},
		{"wrong width", "fun f(a: i32): i64 { return a; }", "i64", "i32"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := genError(t, tt.src, ErrTypeMismatch)
			if e.LHS.Name() != tt.lhs || e.RHS.Name() != tt.rhs {
				t.Errorf("mismatch = %s vs %s, want %s vs %s", e.LHS, e.RHS, tt.lhs, tt.rhs)
			}
		})
	}
}

func TestMissingReturn(t *testing.T) {
	e := genError(t, "fun f(): i32 {\n  let x = 1;\n}", ErrMissingReturn)
	if e.Name != "f" {
		t.Errorf("Name = %q, want f", e.Name)
	}
	if e.Pos.Line() != 3 || e.Pos.Col() != 1 {
		t.Errorf("reported at %v, want the closing brace at 3:1", e.Pos)
	}
}

func TestLetBinding(t *testing.T) {
	ir := genIR(t, "fun f(a: i64): i64 { let b = a * 2; return b; }")
	expectIR(t, ir, "mul i64 %a, 2", "ret i64 %")
	if strings.Contains(ir, "alloca") {
		t.Errorf("let binding allocated a stack slot:\n%s", ir)
	}
}

func TestLetAlias(t *testing.T) {
	ir := genIR(t, "fun f(a: i64): i64 { let b = a; return b; }")
	expectIR(t, ir, "ret i64 %a")
	if strings.Contains(ir, "load") {
		t.Errorf("variable reference emitted a load:\n%s", ir)
	}
}

func TestVarBinding(t *testing.T) {
	ir := genIR(t, "fun f(a: i64): i64 { var c = a - 1; return c; }")
	expectIR(t, ir, "sub i64 %a, 1", "alloca i64", "store i64 %", "ret i64 %")
}

func TestRebindingOverwrites(t *testing.T) {
	ir := genIR(t, "fun f(a: i64): i64 { let a = 5; return a; }")
	expectIR(t, ir, "ret i64 5")

	ir = genIR(t, "fun g(): i64 { let x = 1; let x = x + 2; return x; }")
	expectIR(t, ir, "add i64 1, 2")
}

func TestStatementAfterReturn(t *testing.T) {
	tests := []string{
		"fun f(): i64 { return 1; let x = 2; }",
		"fun f() { return; return; }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := genSource(t, src)
			if !errors.Is(err, ErrBackend) || !errors.Is(err, backend.ErrTerminated) {
				t.Errorf("error = %v, want a backend ErrTerminated", err)
			}
		})
	}
}

func TestForwardDeclaration(t *testing.T) {
	ir := genIR(t, "fun puts(s: *u8): i32")
	expectIR(t, ir, "declare i32 @puts(")
	if strings.Contains(ir, "define") {
		t.Errorf("declaration has a definition:\n%s", ir)
	}
}

func TestMultipleFunctions(t *testing.T) {
	src := `
fun max(a: i64, b: i64): bool {
	return a > b;
}

fun sum(a: i64, b: i64): i64 {
	var s = a + b;
	return s;
}

fun noop() {}
`
	g, err := genSource(t, src)
	if err != nil {
		t.Fatal(err)
	}
	fns := g.Module().Functions()
	if len(fns) != 3 {
		t.Fatalf("got %d functions, want 3", len(fns))
	}
	for i, want := range []string{"max", "sum", "noop"} {
		if fns[i].Name() != want {
			t.Errorf("function %d = %s, want %s", i, fns[i].Name(), want)
		}
	}
	expectIR(t, g.Module().String(),
		"define i8 @max(i64 %a, i64 %b)",
		"icmp sgt i64 %a, %b",
		"define i64 @sum(i64 %a, i64 %b)",
		"define void @noop()",
	)
}

func TestStopsAtFirstError(t *testing.T) {
	g, err := genSource(t, "fun ok() {} fun bad(): i64 { return y; } fun later() {}")
	if !errors.Is(err, ErrInvalidVariable) {
		t.Fatalf("error = %v, want ErrInvalidVariable", err)
	}
	if _, ok := g.Module().Function("later"); ok {
		t.Error("generation continued after the first error")
	}
}
