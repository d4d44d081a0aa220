package builtin

import (
	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

func init() {
	register("table", builtinTable)
	register("table-sref", builtinTableSref)
	register("maptable", builtinMaptable)
}

func builtinTable(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 0 {
		return value.Nil, wrongArgCount("table", 0, len(args))
	}
	return value.NewTable(), nil
}

func builtinTableSref(args []value.Value, _ interface{}) (value.Value, error) {
	if len(args) != 3 {
		return value.Nil, wrongArgCount("table-sref", 3, len(args))
	}
	if args[0].Tag() != value.TABLE {
		return value.Nil, wrongType("table-sref", args[0])
	}
	args[0].AsTable().Set(args[1], args[2])
	return args[2], nil
}

// builtinMaptable invokes fn(key, value) over every table entry, in the
// unspecified-but-stable-within-process order spec §5 "Ordering" allows.
func builtinMaptable(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("maptable", 2, len(args))
	}
	t := args[0]
	fn := args[1]
	if t.Tag() != value.TABLE {
		return value.Nil, wrongType("maptable", t)
	}
	ip := interp.(*eval.Interp)
	var callErr error
	t.AsTable().Each(func(k, v value.Value) {
		if callErr != nil {
			return
		}
		_, callErr = ip.Apply(fn, []value.Value{k, v})
	})
	if callErr != nil {
		return value.Nil, callErr
	}
	return t, nil
}
