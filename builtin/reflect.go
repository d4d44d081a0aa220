package builtin

import "github.com/arclang/arc/value"

func init() {
	register("type", builtinType)
}

// typeNames maps every tag to spec §4.5's canonical type-name set. NIL and
// CONS both report "sym"/"cons" per that set (nil itself reports "sym" in
// the classic Arc sense that it is also the symbol nil — but since spec
// explicitly lists "cons sym fn string num mac table char input input-pipe
// output" with no separate nil entry, nil is classified with sym).
var typeNames = map[value.Tag]string{
	value.NIL:          "sym",
	value.CONS:         "cons",
	value.SYM:          "sym",
	value.NUM:          "num",
	value.CHAR:         "char",
	value.STRING:       "string",
	value.TABLE:        "table",
	value.BUILTIN:      "fn",
	value.CLOSURE:      "fn",
	value.MACRO:        "mac",
	value.INPUT:        "input",
	value.INPUTPIPE:    "input-pipe",
	value.OUTPUT:       "output",
	value.CONTINUATION: "fn",
}

func builtinType(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("type", 1, len(args))
	}
	name, ok := typeNames[args[0].Tag()]
	if !ok {
		return value.Nil, wrongType("type", args[0])
	}
	return value.Default.Intern(name), nil
}
