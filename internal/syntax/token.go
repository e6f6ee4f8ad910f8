// Package syntax implements lexical and syntactic analysis for the maga language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind represents the type of a lexical token.
type Kind uint

const (
	_Invalid Kind = iota
	_EOF            // end of input; never part of a token sequence

	// Literals
	_Name    // identifier: foo, i32
	_IntLit  // signed literal: -42
	_UIntLit // unsigned literal: 42

	// Keywords
	_Let
	_Var
	_Fun
	_Unsafe
	_Const
	_Return
	_If
	_While
	_Break
	_Continue
	_Loop

	// Punctuation
	_Colon // :
	_Semi  // ;
	_Dot   // .
	_Comma // ,

	// Operators
	_Assign    // =
	_Add       // +
	_AddAssign // +=
	_Sub       // -
	_SubAssign // -=
	_Mul       // *
	_MulAssign // *=
	_Div       // /
	_DivAssign // /=
	_Rem       // %
	_RemAssign // %=
	_Lss       // <
	_Leq       // <=
	_Gtr       // >
	_Geq       // >=

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Lbrack // [
	_Rbrack // ]

	kindCount
)

var kindNames = [...]string{
	_Invalid: "INVALID",
	_EOF:     "EOF",

	_Name:    "NAME",
	_IntLit:  "INT",
	_UIntLit: "UINT",

	_Let:      "let",
	_Var:      "var",
	_Fun:      "fun",
	_Unsafe:   "unsafe",
	_Const:    "const",
	_Return:   "return",
	_If:       "if",
	_While:    "while",
	_Break:    "break",
	_Continue: "continue",
	_Loop:     "loop",

	_Colon: ":",
	_Semi:  ";",
	_Dot:   ".",
	_Comma: ",",

	_Assign:    "=",
	_Add:       "+",
	_AddAssign: "+=",
	_Sub:       "-",
	_SubAssign: "-=",
	_Mul:       "*",
	_MulAssign: "*=",
	_Div:       "/",
	_DivAssign: "/=",
	_Rem:       "%",
	_RemAssign: "%=",
	_Lss:       "<",
	_Leq:       "<=",
	_Gtr:       ">",
	_Geq:       ">=",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Lbrack: "[",
	_Rbrack: "]",
}

// String returns the string representation of the token kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= _Let && k <= _Loop
}

// IsLiteral reports whether k is an integer literal.
func (k Kind) IsLiteral() bool {
	return k == _IntLit || k == _UIntLit
}

// IsOperator reports whether k is an operator, including the
// compound-assignment forms.
func (k Kind) IsOperator() bool {
	return k >= _Assign && k <= _Geq
}

// Exported kinds for packages that construct tokens directly.
const (
	Name    Kind = _Name
	IntLit  Kind = _IntLit
	UIntLit Kind = _UIntLit
	Fun     Kind = _Fun
	Let     Kind = _Let
	Var     Kind = _Var
	Return  Kind = _Return
	Colon   Kind = _Colon
	Semi    Kind = _Semi
	Comma   Kind = _Comma
	Assign  Kind = _Assign
	Add     Kind = _Add
	Sub     Kind = _Sub
	Mul     Kind = _Mul
	Lss     Kind = _Lss
	Lparen  Kind = _Lparen
	Rparen  Kind = _Rparen
	Lbrace  Kind = _Lbrace
	Rbrace  Kind = _Rbrace
)

// keywords maps keyword strings to their token kind.
// Type names (i32, u8, bool, ...) are not keywords; they are scanned as
// _Name and resolved by the type registry.
var keywords = map[string]Kind{
	"let":      _Let,
	"var":      _Var,
	"fun":      _Fun,
	"unsafe":   _Unsafe,
	"const":    _Const,
	"return":   _Return,
	"if":       _If,
	"while":    _While,
	"break":    _Break,
	"continue": _Continue,
	"loop":     _Loop,
}

// LookupKeyword returns the keyword kind for ident, or _Name.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return _Name
}

// Token is a single lexical token. Identifiers own their text in Lit;
// integer literals carry their decoded value in Int or UInt.
type Token struct {
	Kind Kind
	Lit  string // identifier text or literal source text
	Int  int64  // value of an _IntLit
	UInt uint64 // value of a _UIntLit
	Pos  Pos
}

// NewName returns an identifier token.
func NewName(name string) Token {
	return Token{Kind: _Name, Lit: name}
}

// NewInt returns a signed integer literal token.
func NewInt(v int64) Token {
	return Token{Kind: _IntLit, Lit: strconv.FormatInt(v, 10), Int: v}
}

// NewUInt returns an unsigned integer literal token.
func NewUInt(v uint64) Token {
	return Token{Kind: _UIntLit, Lit: strconv.FormatUint(v, 10), UInt: v}
}

// NewToken returns a payload-free token of kind k.
func NewToken(k Kind) Token {
	return Token{Kind: k, Lit: k.String()}
}

// String renders the token the way diagnostics refer to it.
func (t Token) String() string {
	switch t.Kind {
	case _Name:
		return fmt.Sprintf("identifier %q", t.Lit)
	case _IntLit:
		return fmt.Sprintf("integer literal %d", t.Int)
	case _UIntLit:
		return fmt.Sprintf("integer literal %d", t.UInt)
	}
	return fmt.Sprintf("%q", t.Kind.String())
}
