package backend

import (
	"errors"
	"strings"
	"testing"
)

func newTestBuilder(t *testing.T, m *Module, name string, ret Type, params ...Type) (*Function, *Builder) {
	t.Helper()
	f, err := m.AddFunction(name, mustFunc(t, ret, params...))
	if err != nil {
		t.Fatalf("AddFunction(%s): %v", name, err)
	}
	b, err := f.NewBuilder("entry")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return f, b
}

func TestBuilderArithmetic(t *testing.T) {
	_, m := newTestModule(t)
	i32 := mustInt(t, 32)
	f, b := newTestBuilder(t, m, "arith", i32, i32, i32)
	if err := f.SetParamName(0, "a"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetParamName(1, "b"); err != nil {
		t.Fatal(err)
	}
	x, _ := f.Param(0)
	y, _ := f.Param(1)

	ops := []struct {
		name string
		fn   func(x, y Value) (Value, error)
	}{
		{"add", b.Add},
		{"sub", b.Sub},
		{"mul", b.Mul},
		{"sdiv", b.SDiv},
		{"udiv", b.UDiv},
		{"srem", b.SRem},
		{"urem", b.URem},
	}
	var last Value
	for _, op := range ops {
		v, err := op.fn(x, y)
		if err != nil {
			t.Fatalf("%s: %v", op.name, err)
		}
		if !v.Type().Equal(i32) {
			t.Errorf("%s result type = %s, want i32", op.name, v.Type())
		}
		last = v
	}
	if err := b.Ret(last); err != nil {
		t.Fatal(err)
	}
	if !b.Terminated() || !f.HasBody() {
		t.Error("block not terminated after ret")
	}

	ir := m.String()
	for _, op := range ops {
		if want := op.name + " i32 %a, %b"; !strings.Contains(ir, want) {
			t.Errorf("IR missing %q:\n%s", want, ir)
		}
	}
	if !strings.Contains(ir, "define i32 @arith(i32 %a, i32 %b)") {
		t.Errorf("IR missing definition:\n%s", ir)
	}
}

func TestBuilderFloat(t *testing.T) {
	_, m := newTestModule(t)
	f64 := DoubleType()
	f, b := newTestBuilder(t, m, "fl", f64, f64, f64)
	x, _ := f.Param(0)
	y, _ := f.Param(1)

	for _, fn := range []func(x, y Value) (Value, error){b.FAdd, b.FSub, b.FMul, b.FDiv, b.FRem} {
		if _, err := fn(x, y); err != nil {
			t.Fatal(err)
		}
	}
	c, err := b.FCmp(FloatOLE, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Type().Equal(mustInt(t, 1)) {
		t.Errorf("fcmp result type = %s, want i1", c.Type())
	}
	if _, err := b.Add(x, y); !errors.Is(err, ErrBadType) {
		t.Errorf("integer add on doubles: %v, want ErrBadType", err)
	}
	if err := b.Ret(x); err != nil {
		t.Fatal(err)
	}

	ir := m.String()
	for _, want := range []string{"fadd double", "fsub double", "fmul double", "fdiv double", "frem double", "fcmp ole double"} {
		if !strings.Contains(ir, want) {
			t.Errorf("IR missing %q:\n%s", want, ir)
		}
	}
}

func TestBuilderCompare(t *testing.T) {
	_, m := newTestModule(t)
	i64 := mustInt(t, 64)
	i8 := mustInt(t, 8)
	_, b := newTestBuilder(t, m, "cmp", i8)

	one, _ := ConstInt(i64, 1)
	two, _ := ConstInt(i64, 2)
	c, err := b.ICmp(IntSLE, one, two)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Type().Equal(mustInt(t, 1)) {
		t.Errorf("icmp result type = %s, want i1", c.Type())
	}
	wide, err := b.ZExt(c, i8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.ZExt(wide, mustInt(t, 1)); !errors.Is(err, ErrBadType) {
		t.Errorf("narrowing zext: %v, want ErrBadType", err)
	}
	if err := b.Ret(wide); err != nil {
		t.Fatal(err)
	}

	ir := m.String()
	for _, want := range []string{"icmp sle i64 1, 2", "zext i1 %", "to i8", "ret i8 %"} {
		if !strings.Contains(ir, want) {
			t.Errorf("IR missing %q:\n%s", want, ir)
		}
	}
}

func TestBuilderPredicates(t *testing.T) {
	_, m := newTestModule(t)
	i64 := mustInt(t, 64)
	_, b := newTestBuilder(t, m, "preds", VoidType())
	x, _ := ConstInt(i64, 3)
	y, _ := ConstInt(i64, 4)

	preds := map[IntPredicate]string{
		IntEQ: "eq", IntNE: "ne",
		IntSLT: "slt", IntSLE: "sle", IntSGT: "sgt", IntSGE: "sge",
		IntULT: "ult", IntULE: "ule", IntUGT: "ugt", IntUGE: "uge",
	}
	for p := range preds {
		if _, err := b.ICmp(p, x, y); err != nil {
			t.Fatalf("icmp %s: %v", preds[p], err)
		}
	}
	if _, err := b.ICmp(IntPredicate(200), x, y); !errors.Is(err, ErrBadType) {
		t.Errorf("unknown predicate: %v, want ErrBadType", err)
	}
	if err := b.RetVoid(); err != nil {
		t.Fatal(err)
	}

	ir := m.String()
	for _, name := range preds {
		if want := "icmp " + name + " i64 3, 4"; !strings.Contains(ir, want) {
			t.Errorf("IR missing %q", want)
		}
	}
}

func TestBuilderMemory(t *testing.T) {
	_, m := newTestModule(t)
	i32 := mustInt(t, 32)
	f, b := newTestBuilder(t, m, "mem", i32, i32)
	if err := f.SetParamName(0, "a"); err != nil {
		t.Fatal(err)
	}
	a, _ := f.Param(0)

	slot, err := b.Alloca(i32)
	if err != nil {
		t.Fatal(err)
	}
	if !slot.Type().IsPointer() {
		t.Errorf("alloca type = %s, want a pointer", slot.Type())
	}
	if err := b.Store(a, slot); err != nil {
		t.Fatal(err)
	}
	v, err := b.Load(i32, slot)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.Alloca(VoidType()); !errors.Is(err, ErrBadType) {
		t.Errorf("alloca void: %v, want ErrBadType", err)
	}
	wrong, _ := ConstInt(mustInt(t, 64), 1)
	if err := b.Store(wrong, slot); !errors.Is(err, ErrBadType) {
		t.Errorf("mismatched store: %v, want ErrBadType", err)
	}
	if _, err := b.Load(mustInt(t, 64), slot); !errors.Is(err, ErrBadType) {
		t.Errorf("mismatched load: %v, want ErrBadType", err)
	}
	if err := b.Ret(v); err != nil {
		t.Fatal(err)
	}

	ir := m.String()
	for _, want := range []string{"alloca i32", "store i32 %a, ", "load i32, "} {
		if !strings.Contains(ir, want) {
			t.Errorf("IR missing %q:\n%s", want, ir)
		}
	}
}

func TestBuilderTerminated(t *testing.T) {
	_, m := newTestModule(t)
	i64 := mustInt(t, 64)
	_, b := newTestBuilder(t, m, "f", VoidType())

	if b.Terminated() {
		t.Fatal("fresh block is terminated")
	}
	if err := b.RetVoid(); err != nil {
		t.Fatal(err)
	}
	one, _ := ConstInt(i64, 1)
	if _, err := b.Add(one, one); !errors.Is(err, ErrTerminated) {
		t.Errorf("add after ret: %v, want ErrTerminated", err)
	}
	if err := b.RetVoid(); !errors.Is(err, ErrTerminated) {
		t.Errorf("second ret: %v, want ErrTerminated", err)
	}
	if !strings.Contains(m.String(), "ret void") {
		t.Errorf("IR missing ret void:\n%s", m.String())
	}
}

func TestBuilderOperandChecks(t *testing.T) {
	_, m := newTestModule(t)
	_, b := newTestBuilder(t, m, "f", VoidType())

	one, _ := ConstInt(mustInt(t, 64), 1)
	small, _ := ConstInt(mustInt(t, 32), 1)
	if _, err := b.Add(one, Value{}); !errors.Is(err, ErrNilHandle) {
		t.Errorf("nil operand: %v, want ErrNilHandle", err)
	}
	if _, err := b.Add(one, small); !errors.Is(err, ErrBadType) {
		t.Errorf("mixed widths: %v, want ErrBadType", err)
	}
	if err := b.Ret(Value{}); !errors.Is(err, ErrNilHandle) {
		t.Errorf("ret of nil value: %v, want ErrNilHandle", err)
	}
}

func TestDumpUnterminated(t *testing.T) {
	_, m := newTestModule(t)
	newTestBuilder(t, m, "open", VoidType())

	var sb strings.Builder
	if err := m.Dump(&sb); !errors.Is(err, ErrBadType) {
		t.Errorf("Dump with open block: %v, want ErrBadType", err)
	}
}

func TestBuilderAfterRelease(t *testing.T) {
	ctx, m := newTestModule(t)
	_, b := newTestBuilder(t, m, "f", VoidType())
	ctx.Close()
	if err := b.RetVoid(); !errors.Is(err, ErrClosed) {
		t.Errorf("RetVoid after Context.Close: %v, want ErrClosed", err)
	}
}
