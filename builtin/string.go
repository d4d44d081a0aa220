package builtin

import (
	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

func init() {
	register("string", builtinString)
	register("newstring", builtinNewstring)
	register("string-sref", builtinStringSref)
	register("sym", builtinSym)
}

// builtinString concatenates the display-rendering of every argument into
// one new STRING (spec §4.5).
func builtinString(args []value.Value, _ interface{}) (value.Value, error) {
	var b []byte
	for _, a := range args {
		b = append(b, value.String(a, false)...)
	}
	return value.StrFromBytes(b), nil
}

// builtinNewstring allocates a mutable STRING of the given length, filled
// with fill (default the nul character).
func builtinNewstring(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return value.Nil, wrongArgCount("newstring", 1, len(args))
	}
	n, err := wantNum("newstring", args[0])
	if err != nil {
		return value.Nil, err
	}
	fill := byte(0)
	if len(args) == 2 {
		if args[1].Tag() != value.CHAR {
			return value.Nil, wrongType("newstring", args[1])
		}
		fill = args[1].AsChar()
	}
	b := make([]byte, int(n))
	for i := range b {
		b[i] = fill
	}
	return value.StrFromBytes(b), nil
}

// builtinStringSref mutates one byte of an existing STRING in place and
// returns the new character.
func builtinStringSref(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 3 {
		return value.Nil, wrongArgCount("string-sref", 3, len(args))
	}
	s, err := wantStr("string-sref", args[0])
	if err != nil {
		return value.Nil, err
	}
	idx, err := wantNum("string-sref", args[1])
	if err != nil {
		return value.Nil, err
	}
	if args[2].Tag() != value.CHAR {
		return value.Nil, wrongType("string-sref", args[2])
	}
	i := int(idx)
	if i < 0 || i >= len(s.B) {
		return value.Nil, errorf(eval.KindWrongType, "string-sref: index %d out of range", i)
	}
	s.B[i] = args[2].AsChar()
	return args[2], nil
}

// builtinSym interns a new symbol from arg's string form: a STRING is used
// verbatim, a SYM returns itself, anything else is rendered with disp form
// first.
func builtinSym(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("sym", 1, len(args))
	}
	if args[0].Tag() == value.SYM {
		return args[0], nil
	}
	var name string
	if args[0].Tag() == value.STRING {
		name = string(args[0].AsStr().B)
	} else {
		name = value.String(args[0], false)
	}
	return value.Default.Intern(name), nil
}
