// Package rerrors is the unified error type for rematch so that pattern,
// budget and input failures can be formatted and inspected in one way.
package rerrors

import (
	"fmt"
)

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures every failure that rematch reports. Not matching is never
	// an error, only malformed patterns in strict mode, exhausted budgets,
	// cancellation and unreadable input are.
	Error struct {
		Kind     ErrorKind
		Err      error
		Pattern  string
		Offset   int
		Filename string
	}
)

const (
	// PatternErr is a malformed pattern rejected in strict mode.
	PatternErr ErrorKind = iota
	// BudgetErr is raised when a step or depth budget ran out mid match.
	BudgetErr
	// CanceledErr is raised when the context of a search was canceled.
	CanceledErr
	// InputErr is raised when a case file could not be read.
	InputErr
)

func (k ErrorKind) String() string {
	switch k {
	case PatternErr:
		return "pattern"
	case BudgetErr:
		return "budget"
	case CanceledErr:
		return "canceled"
	case InputErr:
		return "input"
	default:
		return "unknown"
	}
}

func (err *Error) Error() string {
	switch err.Kind {
	case PatternErr:
		return fmt.Sprintf("Pattern Error: %q:%v %v", err.Pattern, err.Offset, err.Err)
	case BudgetErr:
		return fmt.Sprintf("Budget Error: %q at offset %v: %v", err.Pattern, err.Offset, err.Err)
	case CanceledErr:
		return fmt.Sprintf("Canceled: %q at offset %v: %v", err.Pattern, err.Offset, err.Err)
	case InputErr:
		return fmt.Sprintf("Input Error: %s: %v", err.Filename, err.Err)
	default:
		return err.Err.Error()
	}
}

func (err *Error) Unwrap() error { return err.Err }

// Is reports whether target is a *Error of the same kind, which allows
// errors.Is(err, &rerrors.Error{Kind: rerrors.BudgetErr}).
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Err == nil && t.Kind == err.Kind
}
