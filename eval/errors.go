package eval

import (
	"github.com/pkg/errors"

	"github.com/arclang/arc/value"
)

// Kind identifies one of the seven error kinds of spec §7, in decreasing
// specificity. KindSyntax and KindUnterminated originate in the reader, but
// the kind travels with the error value all the way to the driver, so both
// are declared here alongside the kinds Eval itself raises.
type Kind int

const (
	KindSyntax Kind = iota
	KindUnterminated
	KindUnboundSymbol
	KindWrongArgCount
	KindWrongType
	KindFile
	KindUser
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindUnterminated:
		return "unterminated-input"
	case KindUnboundSymbol:
		return "unbound-symbol"
	case KindWrongArgCount:
		return "wrong-argument-count"
	case KindWrongType:
		return "wrong-type"
	case KindFile:
		return "file"
	case KindUser:
		return "user"
	default:
		return "error"
	}
}

// Error is the value every internal operation returns on failure. Expr is
// the expression the raising code attached, or nil when it attached none
// (Apply, parameter binding and the builtins attach none). The driver
// prints Expr in write form; when Expr is nil the report shows nil, not
// Interp.LastExpr.
type Error struct {
	Kind  Kind
	Cause error
	Expr  value.Value
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, expr value.Value, cause error) *Error {
	return &Error{Kind: kind, Cause: cause, Expr: expr}
}

func errorf(kind Kind, expr value.Value, format string, args ...interface{}) *Error {
	return newError(kind, expr, errors.Errorf(format, args...))
}

// wrongType builds a KindWrongType error reporting the operator name and the
// tag that failed to satisfy it.
func wrongType(expr value.Value, op string, v value.Value) *Error {
	return errorf(KindWrongType, expr, "%s: wrong type %v", op, v.Tag())
}

// wrongArgCount builds a KindWrongArgCount error.
func wrongArgCount(expr value.Value, op string, want, got int) *Error {
	return errorf(KindWrongArgCount, expr, "%s: expected %d argument(s), got %d", op, want, got)
}
