package value

import "os/exec"

// Tag identifies the variant held by a Value.
type Tag uint8

// The fourteen value variants of the data model, plus an internal unbound
// sentinel never exposed to user code (fifteen tags in all).
const (
	NIL Tag = iota
	CONS
	SYM
	NUM
	CHAR
	STRING
	TABLE
	BUILTIN
	CLOSURE
	MACRO
	INPUT
	INPUTPIPE
	OUTPUT
	CONTINUATION
	unbound
)

// Value is the universal atom: a tag plus a payload. Inline variants (NUM,
// CHAR) carry their payload directly, SYM carries its *Symbol in sym, NIL
// carries none, and everything else carries a pointer to a heap-allocated
// struct reached through ptr.
type Value struct {
	tag Tag
	num float64
	ch  byte
	sym *Symbol
	ptr interface{}
}

// Nil is the singleton NIL value. It is the only falsy value in the
// language; every other Value, including 0, "", and an empty table, is
// truthy.
var Nil = Value{tag: NIL}

// Tag returns the variant held by v.
func (v Value) Tag() Tag { return v.tag }

// Truthy reports whether v is considered true. NIL is the only falsy value.
func (v Value) Truthy() bool { return v.tag != NIL }

// Num builds a NUM value.
func Num(f float64) Value { return Value{tag: NUM, num: f} }

// AsNum returns the float64 held by a NUM value. Callers must check Tag()
// first; it panics otherwise.
func (v Value) AsNum() float64 {
	if v.tag != NUM {
		panic("value: AsNum on non-NUM value")
	}
	return v.num
}

// Char builds a CHAR value from a single byte.
func Char(b byte) Value { return Value{tag: CHAR, ch: b} }

// AsChar returns the byte held by a CHAR value.
func (v Value) AsChar() byte {
	if v.tag != CHAR {
		panic("value: AsChar on non-CHAR value")
	}
	return v.ch
}

// Sym wraps an interned symbol as a SYM value.
func Sym(s *Symbol) Value { return Value{tag: SYM, sym: s} }

// AsSym returns the interned symbol held by a SYM value.
func (v Value) AsSym() *Symbol {
	if v.tag != SYM {
		panic("value: AsSym on non-SYM value")
	}
	return v.sym
}

// Pair is the CONS payload: a mutable two-slot record. Exported fields let
// the scar/scdr builtins mutate a pair's slots in place, the same direct
// field-mutation style used throughout the evaluator core.
type Pair struct {
	Car, Cdr Value
}

// Cons builds a CONS value from the given car/cdr.
func Cons(car, cdr Value) Value {
	return Value{tag: CONS, ptr: &Pair{Car: car, Cdr: cdr}}
}

// AsPair returns the pair payload of a CONS value.
func (v Value) AsPair() *Pair {
	if v.tag != CONS {
		panic("value: AsPair on non-CONS value")
	}
	return v.ptr.(*Pair)
}

// Str is the mutable STRING payload.
type Str struct {
	B []byte
}

// NewStr builds a STRING value from the given string, copying its bytes
// into a fresh slice owned by the Value.
func NewStr(s string) Value {
	b := make([]byte, len(s))
	copy(b, s)
	return Value{tag: STRING, ptr: &Str{B: b}}
}

// StrFromBytes wraps b directly as a STRING value without copying.
func StrFromBytes(b []byte) Value {
	return Value{tag: STRING, ptr: &Str{B: b}}
}

// AsStr returns the string payload of a STRING value.
func (v Value) AsStr() *Str {
	if v.tag != STRING {
		panic("value: AsStr on non-STRING value")
	}
	return v.ptr.(*Str)
}

// tkey is the comparable hash key a Value is reduced to before indexing a
// Table. STRING values hash by content (so two distinct STRING values
// holding "a" collide, matching how Arc programs actually use strings as
// table keys); every other tag hashes by its own identity rule, which for
// NUM/CHAR/SYM already is content equality and for CONS/TABLE/etc. is
// pointer identity.
type tkey struct {
	tag Tag
	num float64
	ch  byte
	sym *Symbol
	str string
	ptr interface{}
}

func keyOf(v Value) tkey {
	if v.tag == STRING {
		return tkey{tag: STRING, str: string(v.AsStr().B)}
	}
	return tkey{tag: v.tag, num: v.num, ch: v.ch, sym: v.sym, ptr: v.ptr}
}

// Table is the mapping payload backing TABLE values. keys records insertion
// order so that two successive disp calls in one process print the same
// entries in the same order; map iteration order itself remains
// unspecified, per spec.
type Table struct {
	m    map[tkey]Value
	keys []Value
}

// NewTable builds an empty TABLE value.
func NewTable() Value {
	return Value{tag: TABLE, ptr: &Table{m: make(map[tkey]Value)}}
}

// AsTable returns the table payload of a TABLE value.
func (v Value) AsTable() *Table {
	if v.tag != TABLE {
		panic("value: AsTable on non-TABLE value")
	}
	return v.ptr.(*Table)
}

// Get looks up key, returning the bound value and true, or Nil and false.
func (t *Table) Get(key Value) (Value, bool) {
	v, ok := t.m[keyOf(key)]
	return v, ok
}

// Set binds key to v, recording key's first-seen position for stable
// iteration.
func (t *Table) Set(key, v Value) {
	k := keyOf(key)
	if _, ok := t.m[k]; !ok {
		t.keys = append(t.keys, key)
	}
	t.m[k] = v
}

// Each calls fn for every entry in insertion order.
func (t *Table) Each(fn func(k, v Value)) {
	for _, k := range t.keys {
		if v, ok := t.m[keyOf(k)]; ok {
			fn(k, v)
		}
	}
}

// Len returns the number of entries in t.
func (t *Table) Len() int { return len(t.m) }

// Closure is the payload shared by CLOSURE and MACRO values; only the Tag
// distinguishes a macro from an ordinary function, per spec: Retag yields a
// new Value that shares the same *Closure payload, which is never copied.
type Closure struct {
	Env    *Env
	Params Value
	Body   []Value
	Name   string
}

// NewClosure builds a CLOSURE value.
func NewClosure(env *Env, params Value, body []Value, name string) Value {
	return Value{tag: CLOSURE, ptr: &Closure{Env: env, Params: params, Body: body, Name: name}}
}

// AsClosure returns the closure payload of a CLOSURE or MACRO value.
func (v Value) AsClosure() *Closure {
	if v.tag != CLOSURE && v.tag != MACRO {
		panic("value: AsClosure on non-CLOSURE value")
	}
	return v.ptr.(*Closure)
}

// Retag returns a copy of v with its tag replaced; used by the macro
// expander to turn a CLOSURE into a MACRO (or back) without copying the
// underlying Closure payload.
func (v Value) Retag(t Tag) Value {
	v.tag = t
	return v
}

// BuiltinFunc is a native operator. Args is the already-evaluated argument
// vector; Interp is an interface{} to avoid an import cycle with the eval
// package (eval.Interp satisfies it).
type BuiltinFunc func(args []Value, interp interface{}) (Value, error)

type builtinPayload struct {
	name string
	fn   BuiltinFunc
}

// Builtin builds a BUILTIN value wrapping fn under the given name (used
// only for the opaque print form, e.g. "#<builtin:car>").
func Builtin(name string, fn BuiltinFunc) Value {
	return Value{tag: BUILTIN, ptr: &builtinPayload{name: name, fn: fn}}
}

// AsBuiltin returns the name and callable of a BUILTIN value.
func (v Value) AsBuiltin() (string, BuiltinFunc) {
	if v.tag != BUILTIN {
		panic("value: AsBuiltin on non-BUILTIN value")
	}
	p := v.ptr.(*builtinPayload)
	return p.name, p.fn
}

// Port is the payload shared by INPUT, INPUTPIPE and OUTPUT values. Raw
// holds the underlying *bufio.Reader/*bufio.Writer (typed as interface{}
// here to avoid an import cycle; the builtin package type-asserts it).
type Port struct {
	Name   string
	Raw    interface{}
	Cmd    *exec.Cmd
	Closed bool
}

// NewPort wraps raw (a *bufio.Reader or *bufio.Writer) as a port value of
// the given tag.
func NewPort(tag Tag, name string, raw interface{}, cmd *exec.Cmd) Value {
	return Value{tag: tag, ptr: &Port{Name: name, Raw: raw, Cmd: cmd}}
}

// AsPort returns the port payload of an INPUT, INPUTPIPE or OUTPUT value.
func (v Value) AsPort() *Port {
	switch v.tag {
	case INPUT, INPUTPIPE, OUTPUT:
		return v.ptr.(*Port)
	}
	panic("value: AsPort on non-port value")
}

// Continuation is the payload of CONTINUATION values: an opaque token
// compared by pointer identity. The eval package owns the unwind mechanism;
// this package only stores the token.
type Continuation struct {
	Token interface{}
}

// NewContinuation wraps token as a CONTINUATION value.
func NewContinuation(token interface{}) Value {
	return Value{tag: CONTINUATION, ptr: &Continuation{Token: token}}
}

// AsContinuation returns the continuation payload of a CONTINUATION value.
func (v Value) AsContinuation() *Continuation {
	if v.tag != CONTINUATION {
		panic("value: AsContinuation on non-CONTINUATION value")
	}
	return v.ptr.(*Continuation)
}

// Is implements shallow identity (the `is` builtin / spec invariant): two
// values are Is-equal when they hold the same tag and the same payload
// identity (same float, same byte, same interned symbol pointer, same heap
// pointer). NIL is Is itself trivially.
func Is(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case NIL:
		return true
	case NUM:
		return a.num == b.num
	case CHAR:
		return a.ch == b.ch
	case SYM:
		return a.sym == b.sym
	default:
		return a.ptr == b.ptr
	}
}

// Iso implements recursive structural equality over CONS chains, compares
// two STRINGs by content, and falls back to Is for everything else.
func Iso(a, b Value) bool {
	if a.tag == CONS && b.tag == CONS {
		pa, pb := a.AsPair(), b.AsPair()
		return Iso(pa.Car, pb.Car) && Iso(pa.Cdr, pb.Cdr)
	}
	if a.tag == STRING && b.tag == STRING {
		sa, sb := a.AsStr(), b.AsStr()
		if len(sa.B) != len(sb.B) {
			return false
		}
		for i := range sa.B {
			if sa.B[i] != sb.B[i] {
				return false
			}
		}
		return true
	}
	return Is(a, b)
}

// IsProperList reports whether v is a NIL-terminated CONS chain.
func IsProperList(v Value) bool {
	for v.tag == CONS {
		v = v.AsPair().Cdr
	}
	return v.tag == NIL
}

// ListToSlice converts a proper list to a Go slice. Callers must check
// IsProperList first if they need to distinguish an improper list from a
// short one; ListToSlice simply stops at the first non-CONS cdr.
func ListToSlice(v Value) []Value {
	var out []Value
	for v.tag == CONS {
		p := v.AsPair()
		out = append(out, p.Car)
		v = p.Cdr
	}
	return out
}

// SliceToList builds a proper list from a Go slice.
func SliceToList(vs []Value) Value {
	out := Nil
	for i := len(vs) - 1; i >= 0; i-- {
		out = Cons(vs[i], out)
	}
	return out
}
