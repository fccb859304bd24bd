package app

import (
	"errors"
	"fmt"

	"github.com/dshills/fuzzyselect/internal/selector"
)

// Application errors.
var (
	// ErrNoInput indicates stdin is an interactive terminal instead of a
	// stream of candidates.
	ErrNoInput = errors.New("no input: pipe candidates on stdin")

	// ErrNoMatch indicates filter mode found nothing.
	ErrNoMatch = errors.New("no matches")

	// ErrCancelled indicates the user quit the picker without selecting.
	ErrCancelled = selector.ErrCancelled
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitCancelled = 1
	ExitError     = 2
)

// ExitCode maps the result of Run to a process exit code. Cancelling the
// picker and an empty filter result both exit with ExitCancelled unless
// zeroOnCancel is set.
func ExitCode(err error, zeroOnCancel bool) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrCancelled), errors.Is(err, ErrNoMatch):
		if zeroOnCancel {
			return ExitOK
		}
		return ExitCancelled
	default:
		return ExitError
	}
}

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op      string // Operation name (e.g., "load config", "read items")
	Target  string // Target of the operation (e.g., file path, "stdin")
	Context string // Additional context
	Err     error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// WithContext adds context to the error.
// Safe to call on nil receiver - returns nil.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = ctx
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	var msg string
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	} else {
		msg = e.Op
	}

	if e.Context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Context)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for OperationError.
// Matches both the wrapper itself and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}
