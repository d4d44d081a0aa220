package eval

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclang/arc/reader"
	"github.com/arclang/arc/value"
)

func read(t *testing.T, src string) value.Value {
	t.Helper()
	p := reader.NewParser(bufio.NewReader(strings.NewReader(src)), value.Default)
	v, err := p.ReadOne()
	require.NoError(t, err)
	return v
}

func newInterp() *Interp {
	return NewInterp(value.Default)
}

func evalStr(t *testing.T, ip *Interp, src string) value.Value {
	t.Helper()
	v, err := ip.Eval(read(t, src), ip.Global)
	require.NoError(t, err)
	return v
}

func TestEvalSelfEvaluating(t *testing.T) {
	ip := newInterp()
	assert.Equal(t, "42", value.String(evalStr(t, ip, "42"), true))
	assert.Equal(t, `"hi"`, value.String(evalStr(t, ip, `"hi"`), true))
	assert.Equal(t, "nil", value.String(evalStr(t, ip, "nil"), true))
}

func TestEvalSymbolLookup(t *testing.T) {
	ip := newInterp()
	ip.Global.Bind(value.Default.Intern("x").AsSym(), value.Num(7))
	assert.Equal(t, float64(7), evalStr(t, ip, "x").AsNum())
}

func TestEvalUnboundSymbol(t *testing.T) {
	ip := newInterp()
	_, err := ip.Eval(read(t, "undefined-thing"), ip.Global)
	require.Error(t, err)
}

func TestEvalQuote(t *testing.T) {
	ip := newInterp()
	assert.Equal(t, "(1 2)", value.String(evalStr(t, ip, "(quote (1 2))"), true))
}

func TestEvalIfChain(t *testing.T) {
	ip := newInterp()
	assert.Equal(t, float64(3), evalStr(t, ip, "(if nil 1 nil 2 3)").AsNum())
	assert.Equal(t, value.NIL, evalStr(t, ip, "(if nil 1 nil 2)").Tag())
}

func TestEvalAssignCreatesOrOverwrites(t *testing.T) {
	ip := newInterp()
	evalStr(t, ip, "(assign x 1)")
	assert.Equal(t, float64(1), evalStr(t, ip, "x").AsNum())
	evalStr(t, ip, "(assign x 2)")
	assert.Equal(t, float64(2), evalStr(t, ip, "x").AsNum())
}

func TestEvalDo(t *testing.T) {
	ip := newInterp()
	v := evalStr(t, ip, "(do (assign x 1) (assign x 2) x)")
	assert.Equal(t, float64(2), v.AsNum())
}

func TestEvalFnAndApply(t *testing.T) {
	ip := newInterp()
	evalStr(t, ip, "(assign identity (fn (n) n))")
	fn := evalStr(t, ip, "identity")
	v, err := ip.Apply(fn, []value.Value{value.Num(5)})
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.AsNum())
}

// TestEvalDestructuring pins down invariant 5 of spec §8: ((fn ((a b) c)
// (+ a b c)) '(1 2) 3) yields 6; here the closure returns a alone instead of
// summing with the + builtin, so the test exercises only binding, not
// arithmetic.
func TestEvalDestructuring(t *testing.T) {
	ip := newInterp()
	evalStr(t, ip, "(assign f (fn ((a b) c) a))")
	fn := evalStr(t, ip, "f")
	pair := value.Cons(value.Num(1), value.Cons(value.Num(2), value.Nil))
	v, err := ip.Apply(fn, []value.Value{pair, value.Num(3)})
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.AsNum())
}

func TestEvalOptionalArgsWithDefault(t *testing.T) {
	ip := newInterp()
	evalStr(t, ip, "(assign f (fn (x (o y 10)) y))")
	fn := evalStr(t, ip, "f")

	v, err := ip.Apply(fn, []value.Value{value.Num(5)})
	require.NoError(t, err)
	assert.Equal(t, float64(10), v.AsNum())

	v, err = ip.Apply(fn, []value.Value{value.Num(5), value.Num(99)})
	require.NoError(t, err)
	assert.Equal(t, float64(99), v.AsNum())
}

func TestEvalOptionalDefaultSeesPriorParam(t *testing.T) {
	ip := newInterp()
	evalStr(t, ip, "(assign f (fn (x (o y x)) y))")
	fn := evalStr(t, ip, "f")
	v, err := ip.Apply(fn, []value.Value{value.Num(5)})
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.AsNum())
}

func TestEvalMacCreatesMacroAndReturnsName(t *testing.T) {
	ip := newInterp()
	v := evalStr(t, ip, "(mac always1 () 1)")
	assert.Equal(t, "always1", value.String(v, true))
	sym := value.Default.Intern("always1").AsSym()
	bound, err := ip.Global.Lookup(sym)
	require.NoError(t, err)
	assert.Equal(t, value.MACRO, bound.Tag())
}

// TestEvalTailRecursionDoesNotGrowStack pins down invariant 3: a
// million-deep self-tail-call completes without exhausting the Go stack.
func TestEvalTailRecursionDoesNotGrowStack(t *testing.T) {
	ip := newInterp()
	evalStr(t, ip, "(assign self (fn (n) (if (is n 0) 'ok (self (- n 1)))))")
	ip.Global.Bind(value.Default.Intern("is").AsSym(), value.Builtin("is", func(args []value.Value, _ interface{}) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, wrongArgCount(value.Nil, "is", 2, len(args))
		}
		if value.Is(args[0], args[1]) {
			return value.Default.Intern("t"), nil
		}
		return value.Nil, nil
	}))
	ip.Global.Bind(value.Default.Intern("-").AsSym(), value.Builtin("-", func(args []value.Value, _ interface{}) (value.Value, error) {
		return value.Num(args[0].AsNum() - args[1].AsNum()), nil
	}))
	self := evalStr(t, ip, "self")
	v, err := ip.Apply(self, []value.Value{value.Num(1000000)})
	require.NoError(t, err)
	assert.Equal(t, "ok", value.String(v, true))
}

func TestCallCCEscape(t *testing.T) {
	ip := newInterp()
	ip.Global.Bind(value.Default.Intern("+").AsSym(), value.Builtin("+", func(args []value.Value, _ interface{}) (value.Value, error) {
		sum := 0.0
		for _, a := range args {
			sum += a.AsNum()
		}
		return value.Num(sum), nil
	}))
	ip.Global.Bind(value.Default.Intern("ccc").AsSym(), value.Builtin("ccc", func(args []value.Value, interp interface{}) (value.Value, error) {
		return interp.(*Interp).Ccc(args[0])
	}))
	v := evalStr(t, ip, "(+ 1 (ccc (fn (k) (k 10) 99)))")
	assert.Equal(t, float64(11), v.AsNum())
}
