package syntax

import "fmt"

// Operator is a binary or unary operator of the expression grammar.
type Operator uint8

const (
	OpInvalid Operator = iota

	OpAdd
	OpAddAssign
	OpSub
	OpSubAssign
	OpMul
	OpMulAssign
	OpDiv
	OpDivAssign
	OpMod
	OpModAssign

	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual

	operatorCount
)

var operatorNames = [...]string{
	OpInvalid:      "invalid",
	OpAdd:          "+",
	OpAddAssign:    "+=",
	OpSub:          "-",
	OpSubAssign:    "-=",
	OpMul:          "*",
	OpMulAssign:    "*=",
	OpDiv:          "/",
	OpDivAssign:    "/=",
	OpMod:          "%",
	OpModAssign:    "%=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
}

func (op Operator) String() string {
	if op < operatorCount {
		return operatorNames[op]
	}
	return fmt.Sprintf("operator(%d)", op)
}

// IsCompoundAssign reports whether op is one of the op= forms.
func (op Operator) IsCompoundAssign() bool {
	switch op {
	case OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpModAssign:
		return true
	}
	return false
}

// IsComparison reports whether op is a relational operator.
func (op Operator) IsComparison() bool {
	return op >= OpLess && op <= OpGreaterEqual
}

// operatorOf maps operator token kinds to operators.
var operatorOf = [kindCount]Operator{
	_Add:       OpAdd,
	_AddAssign: OpAddAssign,
	_Sub:       OpSub,
	_SubAssign: OpSubAssign,
	_Mul:       OpMul,
	_MulAssign: OpMulAssign,
	_Div:       OpDiv,
	_DivAssign: OpDivAssign,
	_Rem:       OpMod,
	_RemAssign: OpModAssign,
	_Lss:       OpLess,
	_Leq:       OpLessEqual,
	_Gtr:       OpGreater,
	_Geq:       OpGreaterEqual,
}

// OperatorFromToken returns the operator denoted by tok.
func OperatorFromToken(tok Token) (Operator, error) {
	if tok.Kind < kindCount {
		if op := operatorOf[tok.Kind]; op != OpInvalid {
			return op, nil
		}
	}
	return OpInvalid, unexpected("operator", tok)
}

// precedence is the binding strength of each binary operator; higher binds
// tighter. Subtraction ranks above addition. Operators without an entry,
// including the compound assignments, do not take part in climbing.
var precedence = [operatorCount]int{
	OpLess:         10,
	OpLessEqual:    10,
	OpGreater:      10,
	OpGreaterEqual: 10,
	OpAdd:          20,
	OpSub:          30,
	OpMul:          40,
	OpDiv:          40,
	OpMod:          40,
}

// Precedence returns the binding strength of op, or -1 if op is not a
// binary operator.
func (op Operator) Precedence() int {
	if op >= operatorCount || precedence[op] <= 0 {
		return -1
	}
	return precedence[op]
}

// tokenPrecedence returns the precedence of the operator denoted by tok,
// or -1 for any other token.
func tokenPrecedence(tok Token) int {
	op, err := OperatorFromToken(tok)
	if err != nil {
		return -1
	}
	return op.Precedence()
}
