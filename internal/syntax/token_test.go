package syntax

import (
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{_EOF, "EOF"},
		{_Name, "NAME"},
		{_IntLit, "INT"},
		{_UIntLit, "UINT"},
		{_Let, "let"},
		{_Var, "var"},
		{_Fun, "fun"},
		{_Return, "return"},
		{_Loop, "loop"},
		{_Colon, ":"},
		{_Semi, ";"},
		{_AddAssign, "+="},
		{_RemAssign, "%="},
		{_Leq, "<="},
		{_Geq, ">="},
		{_Lbrack, "["},
		{kindCount + 3, fmt.Sprintf("kind(%d)", kindCount+3)},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestKindClasses(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		classes := 0
		for _, is := range []bool{k.IsKeyword(), k.IsLiteral(), k.IsOperator()} {
			if is {
				classes++
			}
		}
		if classes > 1 {
			t.Errorf("%s belongs to %d token classes", k, classes)
		}
	}
	if !_Unsafe.IsKeyword() || _Name.IsKeyword() {
		t.Error("IsKeyword misclassifies unsafe or NAME")
	}
	if !_MulAssign.IsOperator() || _Lparen.IsOperator() {
		t.Error("IsOperator misclassifies *= or (")
	}
}

func TestLookupKeyword(t *testing.T) {
	for word, kind := range keywords {
		if got := LookupKeyword(word); got != kind {
			t.Errorf("LookupKeyword(%q) = %s, want %s", word, got, kind)
		}
	}
	for _, name := range []string{"i32", "bool", "main", "lets", "Fun"} {
		if got := LookupKeyword(name); got != _Name {
			t.Errorf("LookupKeyword(%q) = %s, want NAME", name, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{NewName("foo"), `identifier "foo"`},
		{NewInt(-3), "integer literal -3"},
		{NewUInt(7), "integer literal 7"},
		{NewToken(_Lparen), `"("`},
		{NewToken(_Return), `"return"`},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
