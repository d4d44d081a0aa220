package builtin

import "github.com/arclang/arc/value"

func init() {
	register("car", builtinCar)
	register("cdr", builtinCdr)
	register("cons", builtinCons)
	register("scar", builtinScar)
	register("scdr", builtinScdr)
}

// builtinCar implements spec §9's permissive resolution of the `(car nil)`
// question: nil yields nil; anything else that is not a CONS is a type
// error.
func builtinCar(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("car", 1, len(args))
	}
	if args[0].Tag() == value.NIL {
		return value.Nil, nil
	}
	if args[0].Tag() != value.CONS {
		return value.Nil, wrongType("car", args[0])
	}
	return args[0].AsPair().Car, nil
}

func builtinCdr(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("cdr", 1, len(args))
	}
	if args[0].Tag() == value.NIL {
		return value.Nil, nil
	}
	if args[0].Tag() != value.CONS {
		return value.Nil, wrongType("cdr", args[0])
	}
	return args[0].AsPair().Cdr, nil
}

func builtinCons(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("cons", 2, len(args))
	}
	return value.Cons(args[0], args[1]), nil
}

// builtinScar destructively mutates an existing pair's car slot and returns
// the new value (spec §4.5).
func builtinScar(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("scar", 2, len(args))
	}
	if args[0].Tag() != value.CONS {
		return value.Nil, wrongType("scar", args[0])
	}
	args[0].AsPair().Car = args[1]
	return args[1], nil
}

func builtinScdr(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("scdr", 2, len(args))
	}
	if args[0].Tag() != value.CONS {
		return value.Nil, wrongType("scdr", args[0])
	}
	args[0].AsPair().Cdr = args[1]
	return args[1], nil
}
