// Package expand implements the macro-expansion pass of spec §4.3: a
// pre-evaluation tree rewrite that repeatedly applies macro-tagged closures
// until no top-level operator names one.
package expand

import (
	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

// Expand rewrites v, replacing every macro call with the result of applying
// the macro to its unevaluated argument list and recursively expanding that
// result. It is mutually recursive with eval.Apply: expanding a macro call
// means applying a CLOSURE-tagged (temporarily retagged) value exactly the
// way an ordinary function call would be applied, per spec §4.3's "MACRO and
// CLOSURE share a representation" design.
func Expand(ip *eval.Interp, v value.Value) (value.Value, error) {
	if v.Tag() != value.CONS {
		return v, nil
	}
	if !value.IsProperList(v) {
		return v, nil
	}
	p := v.AsPair()
	head := p.Car

	if sym := head.AsSymbol(); sym != nil {
		if sym == value.SymQuote.AsSymbol() {
			// Do not descend into quoted material.
			return v, nil
		}
		if macro, ok := lookupMacro(ip, sym); ok {
			closure := macro.Retag(value.CLOSURE)
			args := value.ListToSlice(p.Cdr)
			result, err := ip.Apply(closure, args)
			if err != nil {
				return value.Nil, err
			}
			return Expand(ip, result)
		}
	}

	return expandElements(ip, v)
}

// lookupMacro reports whether sym is bound in the global environment to a
// MACRO-tagged value, returning that value if so. A local shadow (e.g. a
// parameter named the same as a macro) is invisible here because expansion
// only ever consults the global environment, matching spec §4.3's "a symbol
// whose global binding is a MACRO".
func lookupMacro(ip *eval.Interp, sym *value.Symbol) (value.Value, bool) {
	if !ip.Global.Bound(sym) {
		return value.Nil, false
	}
	v, err := ip.Global.Lookup(sym)
	if err != nil || v.Tag() != value.MACRO {
		return value.Nil, false
	}
	return v, true
}

// expandElements expands each element of the list v and returns a new list
// of the results; v itself is not modified. Expand only calls it on proper
// lists; a non-CONS tail would be returned unchanged.
func expandElements(ip *eval.Interp, v value.Value) (value.Value, error) {
	if v.Tag() != value.CONS {
		return v, nil
	}
	p := v.AsPair()
	car, err := Expand(ip, p.Car)
	if err != nil {
		return value.Nil, err
	}
	cdr, err := expandElements(ip, p.Cdr)
	if err != nil {
		return value.Nil, err
	}
	return value.Cons(car, cdr), nil
}
