package value

import "github.com/pkg/errors"

// Env is a single lexical frame: a mapping from interned symbol to value,
// plus an optional parent frame. Every closure application creates a new
// Env whose Parent is the closure's captured environment (spec §4.2).
type Env struct {
	vars   map[*Symbol]Value
	Parent *Env
}

// NewEnv returns a fresh, parentless frame; used once at startup to build
// the global environment.
func NewEnv() *Env {
	return &Env{vars: make(map[*Symbol]Value)}
}

// NewChild returns a new frame whose Parent is e.
func (e *Env) NewChild() *Env {
	return &Env{vars: make(map[*Symbol]Value), Parent: e}
}

// UnboundSymbolError is returned by Lookup when no frame in the parent
// chain binds the requested symbol.
type UnboundSymbolError struct {
	Name string
}

func (e *UnboundSymbolError) Error() string {
	return "unbound symbol: " + e.Name
}

// Lookup walks e and its parents, returning the bound value for sym or an
// *UnboundSymbolError.
func (e *Env) Lookup(sym *Symbol) (Value, error) {
	for f := e; f != nil; f = f.Parent {
		if v, ok := f.vars[sym]; ok {
			return v, nil
		}
	}
	return Nil, errors.WithStack(&UnboundSymbolError{Name: sym.Name})
}

// Bind writes sym = v in e itself, shadowing any binding for sym in a
// parent frame.
func (e *Env) Bind(sym *Symbol, v Value) {
	e.vars[sym] = v
}

// Bound reports whether sym is bound anywhere in e's parent chain.
func (e *Env) Bound(sym *Symbol) bool {
	for f := e; f != nil; f = f.Parent {
		if _, ok := f.vars[sym]; ok {
			return true
		}
	}
	return false
}

// Assign implements the `assign` special form's semantics: walk the parent
// chain for an existing binding of sym and overwrite it in place; if none is
// found anywhere, bind sym in e (the innermost/current frame).
func (e *Env) Assign(sym *Symbol, v Value) {
	for f := e; f != nil; f = f.Parent {
		if _, ok := f.vars[sym]; ok {
			f.vars[sym] = v
			return
		}
	}
	e.vars[sym] = v
}

// Root walks up the parent chain and returns the outermost frame, i.e. the
// global environment for any frame created during evaluation.
func (e *Env) Root() *Env {
	f := e
	for f.Parent != nil {
		f = f.Parent
	}
	return f
}

// Each calls fn once per binding held directly in e, in unspecified order.
// It does not walk e's parent chain; callers wanting the full chain follow
// Parent themselves, as lang/arc.DumpEnv does for -dump.
func (e *Env) Each(fn func(sym *Symbol, v Value)) {
	for s, v := range e.vars {
		fn(s, v)
	}
}

// Len reports the number of bindings held directly in e.
func (e *Env) Len() int {
	return len(e.vars)
}
