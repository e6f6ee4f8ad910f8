package backend

import "errors"

// ErrBackend is matched by every error this package returns.
var ErrBackend = errors.New("backend error")

// Causes wrapped by Error.
var (
	ErrNilHandle  = errors.New("nil handle")
	ErrClosed     = errors.New("use of released handle")
	ErrTerminated = errors.New("block already terminated")
	ErrBadType    = errors.New("invalid type")
)

// Error reports a failed backend operation.
type Error struct {
	Op  string // operation that failed, e.g. "add" or "new module"
	Err error  // one of the causes above, possibly wrapped with detail
}

func (e *Error) Error() string {
	return "backend: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every *Error match ErrBackend.
func (e *Error) Is(target error) bool {
	return target == ErrBackend
}

func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
