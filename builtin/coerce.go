package builtin

import (
	"math"
	"strconv"

	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

func init() {
	register("coerce", builtinCoerce)
}

// builtinCoerce implements spec §6's conversion matrix between char,
// number, integer, string, symbol, and list-of-characters. The `int`
// target resolves spec §9's Open Question toward atol-style
// truncate-toward-zero for every source (including NUM, where it
// differs from the dedicated `floor` builtin) rather than rounding.
func builtinCoerce(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("coerce", 2, len(args))
	}
	obj := args[0]
	target, err := wantSym("coerce", args[1])
	if err != nil {
		return value.Nil, err
	}
	switch target.Name {
	case "char":
		return coerceChar(obj)
	case "num":
		return coerceNum(obj)
	case "int":
		return coerceInt(obj)
	case "string":
		return coerceString(obj)
	case "sym":
		return coerceSym(obj)
	case "cons":
		return coerceCons(obj)
	default:
		return value.Nil, errorf(eval.KindWrongType, "coerce: unknown target type %s", target.Name)
	}
}

func coerceChar(obj value.Value) (value.Value, error) {
	switch obj.Tag() {
	case value.CHAR:
		return obj, nil
	case value.NUM:
		return value.Char(byte(int64(obj.AsNum()))), nil
	case value.STRING:
		b := obj.AsStr().B
		if len(b) != 1 {
			return value.Nil, wrongType("coerce", obj)
		}
		return value.Char(b[0]), nil
	default:
		return value.Nil, wrongType("coerce", obj)
	}
}

func coerceNum(obj value.Value) (value.Value, error) {
	switch obj.Tag() {
	case value.NUM:
		return obj, nil
	case value.CHAR:
		return value.Num(float64(obj.AsChar())), nil
	case value.STRING:
		f, err := strconv.ParseFloat(string(obj.AsStr().B), 64)
		if err != nil {
			return value.Nil, wrongType("coerce", obj)
		}
		return value.Num(f), nil
	case value.SYM:
		f, err := strconv.ParseFloat(obj.AsSym().Name, 64)
		if err != nil {
			return value.Nil, wrongType("coerce", obj)
		}
		return value.Num(f), nil
	default:
		return value.Nil, wrongType("coerce", obj)
	}
}

func coerceInt(obj value.Value) (value.Value, error) {
	switch obj.Tag() {
	case value.NUM:
		return value.Num(math.Trunc(obj.AsNum())), nil
	case value.CHAR:
		return value.Num(float64(obj.AsChar())), nil
	case value.STRING:
		return truncFromText(string(obj.AsStr().B))
	case value.SYM:
		return truncFromText(obj.AsSym().Name)
	default:
		return value.Nil, wrongType("coerce", obj)
	}
}

// truncFromText parses text as a float (ignoring a trailing fractional
// part the way atol would) and truncates it toward zero.
func truncFromText(text string) (value.Value, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Nil, errorf(eval.KindWrongType, "coerce: %q is not numeric", text)
	}
	return value.Num(math.Trunc(f)), nil
}

func coerceString(obj value.Value) (value.Value, error) {
	switch obj.Tag() {
	case value.STRING:
		return value.NewStr(string(obj.AsStr().B)), nil
	case value.NUM, value.CHAR, value.SYM:
		return value.NewStr(value.String(obj, false)), nil
	case value.CONS, value.NIL:
		elems := value.ListToSlice(obj)
		b := make([]byte, 0, len(elems))
		for _, e := range elems {
			if e.Tag() != value.CHAR {
				return value.Nil, wrongType("coerce", e)
			}
			b = append(b, e.AsChar())
		}
		return value.StrFromBytes(b), nil
	default:
		return value.Nil, wrongType("coerce", obj)
	}
}

func coerceSym(obj value.Value) (value.Value, error) {
	switch obj.Tag() {
	case value.SYM:
		return obj, nil
	case value.STRING:
		return value.Default.Intern(string(obj.AsStr().B)), nil
	default:
		return value.Default.Intern(value.String(obj, false)), nil
	}
}

func coerceCons(obj value.Value) (value.Value, error) {
	if obj.Tag() != value.STRING {
		return value.Nil, wrongType("coerce", obj)
	}
	b := obj.AsStr().B
	out := make([]value.Value, len(b))
	for i, c := range b {
		out[i] = value.Char(c)
	}
	return value.SliceToList(out), nil
}
