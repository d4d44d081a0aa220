package builtin

import (
	"github.com/pkg/errors"

	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

// errorf builds an eval.Error of the given kind, matching the construction
// style eval itself uses internally (errors.Errorf under the hood so a
// %+v format still prints a stack trace, per the ambient-stack errors
// convention).
func errorf(kind eval.Kind, format string, args ...interface{}) error {
	return &eval.Error{Kind: kind, Cause: errors.Errorf(format, args...)}
}

func wrongType(op string, v value.Value) error {
	return errorf(eval.KindWrongType, "%s: wrong type %v", op, v.Tag())
}

func wrongArgCount(op string, want, got int) error {
	return errorf(eval.KindWrongArgCount, "%s: expected %d argument(s), got %d", op, want, got)
}

func fileError(op string, cause error) error {
	return &eval.Error{Kind: eval.KindFile, Cause: errors.Wrap(cause, op)}
}

func userError(msg string) error {
	return &eval.Error{Kind: eval.KindUser, Cause: errors.New(msg)}
}

func wantNum(op string, v value.Value) (float64, error) {
	if v.Tag() != value.NUM {
		return 0, wrongType(op, v)
	}
	return v.AsNum(), nil
}

func wantStr(op string, v value.Value) (*value.Str, error) {
	if v.Tag() != value.STRING {
		return nil, wrongType(op, v)
	}
	return v.AsStr(), nil
}

func wantSym(op string, v value.Value) (*value.Symbol, error) {
	s := v.AsSymbol()
	if s == nil {
		return nil, wrongType(op, v)
	}
	return s, nil
}
