package eval

import "github.com/arclang/arc/value"

// bindParams implements spec §4.4's "Parameter binding (destructuring)": a
// parameter form is a symbol (binds the entire remaining argument list), a
// nested list (destructured recursively against the corresponding
// argument), or an optional form (o name) / (o name default). Optional
// defaults are evaluated in frame, the new frame being built, so a later
// default expression can see earlier parameters; this is why optionals are
// handled by bindParams itself rather than resolved ahead of time.
func (ip *Interp) bindParams(frame *value.Env, params value.Value, args []value.Value) error {
	i := 0
	for params.Tag() == value.CONS {
		p := params.AsPair()
		param := p.Car
		if err := ip.bindOne(frame, param, args, &i); err != nil {
			return err
		}
		params = p.Cdr
	}
	if params.Tag() == value.SYM {
		// Improper tail / whole-list symbol: binds the remaining arguments.
		frame.Bind(params.AsSym(), value.SliceToList(args[min(i, len(args)):]))
		return nil
	}
	if i < len(args) {
		return wrongArgCount(value.Nil, "fn", i, len(args))
	}
	return nil
}

// bindOne binds a single parameter form (symbol, nested list, or optional)
// against args[*i], advancing *i by one on success.
func (ip *Interp) bindOne(frame *value.Env, param value.Value, args []value.Value, i *int) error {
	if param.Tag() == value.CONS {
		pp := param.AsPair()
		if pp.Car.AsSymbol() == value.SymO.AsSymbol() {
			return ip.bindOptional(frame, pp.Cdr, args, i)
		}
		// Nested destructuring: the argument at this position must itself
		// be a list, recursively bound against the nested parameter list.
		if *i >= len(args) {
			return wrongArgCount(value.Nil, "fn", *i+1, len(args))
		}
		arg := args[*i]
		*i++
		if arg.Tag() != value.CONS && arg.Tag() != value.NIL {
			return wrongType(value.Nil, "fn", arg)
		}
		return ip.bindParams(frame, param, value.ListToSlice(arg))
	}
	sym := param.AsSymbol()
	if sym == nil {
		return wrongType(value.Nil, "fn", param)
	}
	if *i >= len(args) {
		return wrongArgCount(value.Nil, "fn", *i+1, len(args))
	}
	frame.Bind(sym, args[*i])
	*i++
	return nil
}

// bindOptional binds an (o name) or (o name default) form. rest is the CDR
// following the "o" head: (name) or (name default).
func (ip *Interp) bindOptional(frame *value.Env, rest value.Value, args []value.Value, i *int) error {
	if rest.Tag() != value.CONS {
		return wrongType(value.Nil, "fn", rest)
	}
	rp := rest.AsPair()
	sym := rp.Car.AsSymbol()
	if sym == nil {
		return wrongType(value.Nil, "fn", rp.Car)
	}
	if *i < len(args) {
		frame.Bind(sym, args[*i])
		*i++
		return nil
	}
	*i++
	if rp.Cdr.Tag() == value.CONS {
		def := rp.Cdr.AsPair().Car
		v, err := ip.Eval(def, frame)
		if err != nil {
			return err
		}
		frame.Bind(sym, v)
		return nil
	}
	frame.Bind(sym, value.Nil)
	return nil
}
