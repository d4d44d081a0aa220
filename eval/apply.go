package eval

import "github.com/arclang/arc/value"

// Apply dispatches a call by the tag of fn, exactly per spec §4.4's
// "Application by tag of the callee" table. It is the join point between
// eval (ordinary calls), the expand package (macro invocation, which calls
// Apply directly on a retagged closure with the unevaluated argument list),
// and the apply/ccc builtins.
func (ip *Interp) Apply(fn value.Value, args []value.Value) (value.Value, error) {
	switch fn.Tag() {
	case value.BUILTIN:
		_, f := fn.AsBuiltin()
		return f(args, ip)
	case value.CLOSURE, value.MACRO:
		return ip.applyClosure(fn, args)
	case value.CONTINUATION:
		if len(args) != 1 {
			return value.Nil, wrongArgCount(value.Nil, "continuation", 1, len(args))
		}
		return ip.invokeContinuation(fn, args[0])
	case value.STRING:
		if len(args) != 1 || args[0].Tag() != value.NUM {
			return value.Nil, wrongArgCount(value.Nil, "string", 1, len(args))
		}
		s := fn.AsStr()
		idx := int(args[0].AsNum())
		if idx < 0 || idx >= len(s.B) {
			return value.Nil, errorf(KindWrongType, value.Nil, "string index %d out of range", idx)
		}
		return value.Char(s.B[idx]), nil
	case value.CONS:
		if !value.IsProperList(fn) {
			return value.Nil, wrongType(value.Nil, "apply", fn)
		}
		if len(args) != 1 || args[0].Tag() != value.NUM {
			return value.Nil, wrongArgCount(value.Nil, "list", 1, len(args))
		}
		idx := int(args[0].AsNum())
		cur := fn
		for n := 0; cur.Tag() == value.CONS; n++ {
			p := cur.AsPair()
			if n == idx {
				return p.Car, nil
			}
			cur = p.Cdr
		}
		return value.Nil, nil
	case value.TABLE:
		t := fn.AsTable()
		switch len(args) {
		case 1:
			v, ok := t.Get(args[0])
			if !ok {
				return value.Nil, nil
			}
			return v, nil
		case 2:
			if v, ok := t.Get(args[0]); ok {
				return v, nil
			}
			return args[1], nil
		default:
			return value.Nil, wrongArgCount(value.Nil, "table", 1, len(args))
		}
	default:
		return value.Nil, wrongType(value.Nil, "apply", fn)
	}
}

// applyClosure builds a new frame under the closure's captured environment,
// binds parameters, and evaluates the body with the last expression in
// tail position — by delegating to Eval's own tail-call loop rather than
// recursing here, a chain of closure calls in tail position still costs no
// Go stack.
func (ip *Interp) applyClosure(fn value.Value, args []value.Value) (value.Value, error) {
	c := fn.AsClosure()
	frame := c.Env.NewChild()
	if err := ip.bindParams(frame, c.Params, args); err != nil {
		return value.Nil, err
	}
	if len(c.Body) == 0 {
		return value.Nil, nil
	}
	for _, expr := range c.Body[:len(c.Body)-1] {
		if _, err := ip.Eval(expr, frame); err != nil {
			return value.Nil, err
		}
	}
	return ip.Eval(c.Body[len(c.Body)-1], frame)
}
