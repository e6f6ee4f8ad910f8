package codegen

import (
	"fmt"

	"github.com/you-not-fish/maga/internal/syntax"
	"github.com/you-not-fish/maga/internal/types"
)

// ErrorKind classifies code generation failures.
type ErrorKind int

const (
	KindInvalidType ErrorKind = iota + 1
	KindInvalidVariable
	KindTypeMismatch
	KindUnsupportedOperator
	KindUnimplemented
	KindMissingReturn
	KindBackend
)

var kindNames = [...]string{
	KindInvalidType:         "invalid type",
	KindInvalidVariable:     "invalid variable",
	KindTypeMismatch:        "type mismatch",
	KindUnsupportedOperator: "unsupported operator",
	KindUnimplemented:       "unimplemented",
	KindMissingReturn:       "missing return",
	KindBackend:             "backend error",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrInvalidType         = &Error{Kind: KindInvalidType}
	ErrInvalidVariable     = &Error{Kind: KindInvalidVariable}
	ErrTypeMismatch        = &Error{Kind: KindTypeMismatch}
	ErrUnsupportedOperator = &Error{Kind: KindUnsupportedOperator}
	ErrUnimplemented       = &Error{Kind: KindUnimplemented}
	ErrMissingReturn       = &Error{Kind: KindMissingReturn}
	ErrBackend             = &Error{Kind: KindBackend}
)

// Error is a code generation failure. Which detail fields are set depends
// on Kind.
type Error struct {
	Kind ErrorKind
	Pos  syntax.Pos

	// Name is the unresolved type or variable, the function missing a
	// return, or the unimplemented construct.
	Name string

	// LHS and RHS are the conflicting types of a TypeMismatch. For a
	// return statement LHS is the declared result type.
	LHS, RHS *types.TypeDef

	Op  syntax.Operator
	Err error // backend cause of a KindBackend error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindInvalidType:
		msg = fmt.Sprintf("invalid type %s", e.Name)
	case KindInvalidVariable:
		msg = fmt.Sprintf("invalid variable %q", e.Name)
	case KindTypeMismatch:
		msg = fmt.Sprintf("types not equal: %s and %s", e.LHS, e.RHS)
		if e.Op != syntax.OpInvalid {
			msg += fmt.Sprintf(" (operator %s)", e.Op)
		}
	case KindUnsupportedOperator:
		msg = fmt.Sprintf("unsupported operator %s", e.Op)
		if e.Name != "" {
			msg += " on " + e.Name
		}
	case KindUnimplemented:
		msg = fmt.Sprintf("%s is not implemented", e.Name)
	case KindMissingReturn:
		msg = fmt.Sprintf("missing return at end of function %s", e.Name)
	case KindBackend:
		msg = "backend failure"
		if e.Err != nil {
			msg = e.Err.Error()
		}
	default:
		msg = e.Kind.String()
	}
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func backendError(pos syntax.Pos, err error) error {
	return &Error{Kind: KindBackend, Pos: pos, Err: err}
}
