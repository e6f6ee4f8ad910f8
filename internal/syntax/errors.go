package syntax

import (
	"errors"
	"fmt"
)

// ErrExhaustedStream is wrapped by every error raised when a token is
// requested past the end of the token sequence.
var ErrExhaustedStream = errors.New("no more tokens in token stream")

// SyntaxError represents a syntax error. Parsing stops at the first one.
type SyntaxError struct {
	Pos Pos
	Msg string
	Err error // underlying cause, ErrExhaustedStream at end of input

	// Context names the construct being parsed, e.g. "parameter list".
	Context string
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if e.Context != "" {
		msg += " (in " + e.Context + ")"
	}
	if !e.Pos.IsValid() {
		return msg
	}
	return e.Pos.String() + ": " + msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// errorAt builds a SyntaxError at pos.
func errorAt(pos Pos, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// unexpected builds the "expected X, found Y" error for tok.
func unexpected(want string, tok Token) *SyntaxError {
	return errorAt(tok.Pos, "expected %s, found %s", want, tok)
}
