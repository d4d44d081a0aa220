package builtin

import (
	"bytes"

	"github.com/arclang/arc/value"
)

func init() {
	register("<", builtinLess)
	register(">", builtinGreater)
	register("is", builtinIs)
	register("iso", builtinIso)
}

// chainCompare walks args pairwise, calling less(a, b) for each adjacent
// pair; it returns truthy only if every pair satisfies less, matching
// spec §4.5's "variadic chain" for `<`/`>`.
func chainCompare(name string, args []value.Value, less func(a, b value.Value) (bool, error)) (value.Value, error) {
	for i := 0; i+1 < len(args); i++ {
		ok, err := less(args[i], args[i+1])
		if err != nil {
			return value.Nil, err
		}
		if !ok {
			return value.Nil, nil
		}
	}
	return value.Default.Intern("t"), nil
}

func lessPair(op string, a, b value.Value) (bool, error) {
	switch {
	case a.Tag() == value.NUM && b.Tag() == value.NUM:
		return a.AsNum() < b.AsNum(), nil
	case a.Tag() == value.STRING && b.Tag() == value.STRING:
		return bytes.Compare(a.AsStr().B, b.AsStr().B) < 0, nil
	default:
		return false, wrongType(op, a)
	}
}

func builtinLess(args []value.Value, _ interface{}) (value.Value, error) {
	return chainCompare("<", args, func(a, b value.Value) (bool, error) { return lessPair("<", a, b) })
}

func builtinGreater(args []value.Value, _ interface{}) (value.Value, error) {
	return chainCompare(">", args, func(a, b value.Value) (bool, error) {
		less, err := lessPair(">", b, a)
		return less, err
	})
}

func builtinIs(args []value.Value, _ interface{}) (value.Value, error) {
	return chainCompare("is", args, func(a, b value.Value) (bool, error) { return value.Is(a, b), nil })
}

func builtinIso(args []value.Value, _ interface{}) (value.Value, error) {
	return chainCompare("iso", args, func(a, b value.Value) (bool, error) { return value.Iso(a, b), nil })
}
