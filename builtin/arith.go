package builtin

import (
	"math"

	"github.com/arclang/arc/value"
)

func init() {
	register("+", builtinPlus)
	register("-", builtinMinus)
	register("*", builtinTimes)
	register("/", builtinDivide)
	register("mod", builtinMod)
	register("expt", builtinExpt)
	register("log", builtinLog)
	register("sqrt", builtinSqrt)
	register("sin", builtinSin)
	register("cos", builtinCos)
	register("tan", builtinTan)
	register("trunc", builtinTrunc)
	register("floor", builtinFloor)
}

// builtinPlus implements spec §4.5's `+`: the identity element 0 for an
// empty argument list, ordinary numeric sum, or — when the first argument
// is a STRING or a list — string/list concatenation instead.
func builtinPlus(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) == 0 {
		return value.Num(0), nil
	}
	switch args[0].Tag() {
	case value.STRING:
		return plusStrings(args), nil
	case value.CONS, value.NIL:
		return plusLists(args)
	default:
		return plusNums(args)
	}
}

func plusNums(args []value.Value) (value.Value, error) {
	sum := 0.0
	for _, a := range args {
		n, err := wantNum("+", a)
		if err != nil {
			return value.Nil, err
		}
		sum += n
	}
	return value.Num(sum), nil
}

// plusStrings concatenates the display (disp) form of every argument,
// "stringifying the rest" per spec §4.5.
func plusStrings(args []value.Value) value.Value {
	var b []byte
	for _, a := range args {
		b = append(b, value.String(a, false)...)
	}
	return value.StrFromBytes(b)
}

// plusLists appends copies of every argument's elements into one new
// proper list.
func plusLists(args []value.Value) (value.Value, error) {
	var out []value.Value
	for _, a := range args {
		if a.Tag() != value.CONS && a.Tag() != value.NIL {
			return value.Nil, wrongType("+", a)
		}
		out = append(out, value.ListToSlice(a)...)
	}
	return value.SliceToList(out), nil
}

// builtinMinus implements `-`: identity element 0 for zero arguments,
// negation for one argument, left-to-right subtraction otherwise.
func builtinMinus(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) == 0 {
		return value.Num(0), nil
	}
	first, err := wantNum("-", args[0])
	if err != nil {
		return value.Nil, err
	}
	if len(args) == 1 {
		return value.Num(-first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := wantNum("-", a)
		if err != nil {
			return value.Nil, err
		}
		acc -= n
	}
	return value.Num(acc), nil
}

func builtinTimes(args []value.Value, _ interface{}) (value.Value, error) {
	acc := 1.0
	for _, a := range args {
		n, err := wantNum("*", a)
		if err != nil {
			return value.Nil, err
		}
		acc *= n
	}
	return value.Num(acc), nil
}

// builtinDivide implements `/`: identity element 1 for zero arguments,
// reciprocal for one argument, left-to-right division otherwise.
func builtinDivide(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) == 0 {
		return value.Num(1), nil
	}
	first, err := wantNum("/", args[0])
	if err != nil {
		return value.Nil, err
	}
	if len(args) == 1 {
		return value.Num(1 / first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := wantNum("/", a)
		if err != nil {
			return value.Nil, err
		}
		acc /= n
	}
	return value.Num(acc), nil
}

// builtinMod implements floored remainder (spec Testable Property 9): the
// result takes the sign of the divisor, unlike Go's math.Mod which takes
// the sign of the dividend.
func builtinMod(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("mod", 2, len(args))
	}
	x, err := wantNum("mod", args[0])
	if err != nil {
		return value.Nil, err
	}
	y, err := wantNum("mod", args[1])
	if err != nil {
		return value.Nil, err
	}
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return value.Num(r), nil
}

func unaryMath(name string, args []value.Value, fn func(float64) float64) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount(name, 1, len(args))
	}
	n, err := wantNum(name, args[0])
	if err != nil {
		return value.Nil, err
	}
	return value.Num(fn(n)), nil
}

func builtinExpt(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("expt", 2, len(args))
	}
	base, err := wantNum("expt", args[0])
	if err != nil {
		return value.Nil, err
	}
	exp, err := wantNum("expt", args[1])
	if err != nil {
		return value.Nil, err
	}
	return value.Num(math.Pow(base, exp)), nil
}

func builtinLog(args []value.Value, _ interface{}) (value.Value, error) {
	return unaryMath("log", args, math.Log)
}

func builtinSqrt(args []value.Value, _ interface{}) (value.Value, error) {
	return unaryMath("sqrt", args, math.Sqrt)
}

func builtinSin(args []value.Value, _ interface{}) (value.Value, error) {
	return unaryMath("sin", args, math.Sin)
}

func builtinCos(args []value.Value, _ interface{}) (value.Value, error) {
	return unaryMath("cos", args, math.Cos)
}

func builtinTan(args []value.Value, _ interface{}) (value.Value, error) {
	return unaryMath("tan", args, math.Tan)
}

func builtinTrunc(args []value.Value, _ interface{}) (value.Value, error) {
	return unaryMath("trunc", args, math.Trunc)
}

// builtinFloor is the dedicated floor builtin spec §9's Open Questions
// keeps distinct from coerce's truncate-toward-zero `int` conversion.
func builtinFloor(args []value.Value, _ interface{}) (value.Value, error) {
	return unaryMath("floor", args, math.Floor)
}
