package eval

import "github.com/arclang/arc/value"

// Special-form heads, resolved once to their canonical *Symbol so dispatch
// is a pointer comparison, matching spec §4.4's "head matched by symbol
// identity."
var (
	symQuote  = value.SymQuote.AsSymbol()
	symIf     = value.SymIf.AsSymbol()
	symAssign = value.SymAssign.AsSymbol()
	symFn     = value.SymFn.AsSymbol()
	symMac    = value.SymMac.AsSymbol()
	symDo     = value.SymDo.AsSymbol()
)

// Eval evaluates v in env, following spec §4.4's dispatch table. It is
// structured as an explicit loop that rebinds v/env and continues instead
// of recursing for every tail position — directly grounded on vm/core.go's
// Run, which rewrites i.PC in place inside its `for i.PC < len(i.Image)`
// loop rather than ever recursing into itself for OpJump/OpLoop/OpReturn.
// Non-tail positions (argument evaluation, if-test evaluation, anything not
// named in spec's "Tail-call contract") make an ordinary recursive call to
// Eval.
func (ip *Interp) Eval(v value.Value, env *value.Env) (value.Value, error) {
	for {
		ip.note(v)
		switch v.Tag() {
		case value.SYM:
			bound, err := env.Lookup(v.AsSym())
			if err != nil {
				return value.Nil, newError(KindUnboundSymbol, v, err)
			}
			return bound, nil
		case value.CONS:
			// fall through to form dispatch below
		default:
			// Self-evaluating: NUM, CHAR, STRING, NIL, and every other
			// non-CONS, non-SYM tag.
			return v, nil
		}

		if !value.IsProperList(v) {
			return value.Nil, errorf(KindSyntax, v, "cannot evaluate improper list")
		}
		p := v.AsPair()
		head := p.Car
		args := p.Cdr

		if sym := head.AsSymbol(); sym != nil {
			switch sym {
			case symQuote:
				return args.AsPair().Car, nil
			case symIf:
				nv, nenv, done, result, err := ip.evalIf(args, env)
				if err != nil {
					return value.Nil, err
				}
				if done {
					return result, nil
				}
				v, env = nv, nenv
				continue
			case symAssign:
				return ip.evalAssign(args, env)
			case symFn:
				return ip.evalFn(args, env, "")
			case symMac:
				return ip.evalMac(args, env)
			case symDo:
				forms := value.ListToSlice(args)
				if len(forms) == 0 {
					return value.Nil, nil
				}
				for _, f := range forms[:len(forms)-1] {
					if _, err := ip.Eval(f, env); err != nil {
						return value.Nil, err
					}
				}
				v = forms[len(forms)-1]
				continue
			}
		}

		// Ordinary call: evaluate head, evaluate arguments left-to-right,
		// apply.
		fn, err := ip.Eval(head, env)
		if err != nil {
			return value.Nil, err
		}
		argv, err := ip.evalArgs(args, env)
		if err != nil {
			return value.Nil, err
		}

		if fn.Tag() == value.CLOSURE {
			// The call itself is in tail position: bind into a new frame
			// and loop on the closure's last body expression instead of
			// recursing into Apply, per spec's tail-call contract.
			c := fn.AsClosure()
			frame := c.Env.NewChild()
			if err := ip.bindParams(frame, c.Params, argv); err != nil {
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
			v, env = c.Body[len(c.Body)-1], frame
			continue
		}

		return ip.Apply(fn, argv)
	}
}

// evalArgs evaluates a CONS chain of argument expressions left to right.
func (ip *Interp) evalArgs(args value.Value, env *value.Env) ([]value.Value, error) {
	var out []value.Value
	for args.Tag() == value.CONS {
		p := args.AsPair()
		av, err := ip.Eval(p.Car, env)
		if err != nil {
			return nil, err
		}
		out = append(out, av)
		args = p.Cdr
	}
	return out, nil
}

// evalIf implements the (if c1 t1 c2 t2 ... e?) chain. It returns either a
// tail-position (nv, nenv) pair for the caller's loop to continue on, or a
// done result when the form itself yields a value (the no-match, no-else
// case).
func (ip *Interp) evalIf(args value.Value, env *value.Env) (value.Value, *value.Env, bool, value.Value, error) {
	for {
		if args.Tag() != value.CONS {
			return value.Nil, nil, true, value.Nil, nil
		}
		p := args.AsPair()
		if p.Cdr.Tag() != value.CONS {
			// Trailing else, evaluated in tail position.
			return p.Car, env, false, value.Nil, nil
		}
		test, err := ip.Eval(p.Car, env)
		if err != nil {
			return value.Nil, nil, true, value.Nil, err
		}
		branch := p.Cdr.AsPair()
		if test.Truthy() {
			return branch.Car, env, false, value.Nil, nil
		}
		args = branch.Cdr
	}
}

func (ip *Interp) evalAssign(args value.Value, env *value.Env) (value.Value, error) {
	if args.Tag() != value.CONS {
		return value.Nil, wrongArgCount(args, "assign", 2, 0)
	}
	p := args.AsPair()
	sym := p.Car.AsSymbol()
	if sym == nil {
		return value.Nil, wrongType(args, "assign", p.Car)
	}
	if p.Cdr.Tag() != value.CONS {
		return value.Nil, wrongArgCount(args, "assign", 2, 1)
	}
	v, err := ip.Eval(p.Cdr.AsPair().Car, env)
	if err != nil {
		return value.Nil, err
	}
	env.Assign(sym, v)
	return v, nil
}

// evalFn builds a CLOSURE from (params body...), capturing env.
func (ip *Interp) evalFn(args value.Value, env *value.Env, name string) (value.Value, error) {
	if args.Tag() != value.CONS {
		return value.Nil, wrongArgCount(args, "fn", 1, 0)
	}
	p := args.AsPair()
	params := p.Car
	body := value.ListToSlice(p.Cdr)
	return value.NewClosure(env, params, body, name), nil
}

// evalMac builds a closure exactly as evalFn does, re-tags it MACRO, binds
// it under name in the global environment, and returns name, per spec
// §4.4's `mac` row.
func (ip *Interp) evalMac(args value.Value, env *value.Env) (value.Value, error) {
	if args.Tag() != value.CONS {
		return value.Nil, wrongArgCount(args, "mac", 3, 0)
	}
	p := args.AsPair()
	nameSym := p.Car.AsSymbol()
	if nameSym == nil {
		return value.Nil, wrongType(args, "mac", p.Car)
	}
	fn, err := ip.evalFn(p.Cdr, env, nameSym.Name)
	if err != nil {
		return value.Nil, err
	}
	ip.Global.Bind(nameSym, fn.Retag(value.MACRO))
	return p.Car, nil
}
