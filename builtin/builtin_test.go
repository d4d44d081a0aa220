package builtin

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/expand"
	"github.com/arclang/arc/reader"
	"github.com/arclang/arc/value"
)

func newInterp(t *testing.T) *eval.Interp {
	t.Helper()
	ip := eval.NewInterp(value.Default)
	Register(ip)
	return ip
}

func read(t *testing.T, src string) value.Value {
	t.Helper()
	p := reader.NewParser(bufio.NewReader(strings.NewReader(src)), value.Default)
	v, err := p.ReadOne()
	require.NoError(t, err)
	return v
}

// runExpr expands and evaluates src the way the `eval` builtin does,
// exercising the full reader -> expand -> eval pipeline with every
// registered builtin available.
func runExpr(t *testing.T, ip *eval.Interp, src string) value.Value {
	t.Helper()
	form := read(t, src)
	expanded, err := expand.Expand(ip, form)
	require.NoError(t, err)
	v, err := ip.Eval(expanded, ip.Global)
	require.NoError(t, err)
	return v
}

func TestArithIdentitiesAndOverloads(t *testing.T) {
	ip := newInterp(t)
	assert.Equal(t, "0", value.String(runExpr(t, ip, "(+)"), true))
	assert.Equal(t, "1", value.String(runExpr(t, ip, "(*)"), true))
	assert.Equal(t, `"abcd"`, value.String(runExpr(t, ip, `(+ "ab" "cd")`), true))
	assert.Equal(t, "(1 2 3)", value.String(runExpr(t, ip, "(+ '(1 2) '(3))"), true))
}

func TestFlooredMod(t *testing.T) {
	ip := newInterp(t)
	assert.Equal(t, float64(2), runExpr(t, ip, "(mod -7 3)").AsNum())
	assert.Equal(t, float64(-2), runExpr(t, ip, "(mod 7 -3)").AsNum())
}

func TestCarCdrOnNilArePermissive(t *testing.T) {
	ip := newInterp(t)
	assert.Equal(t, value.NIL, runExpr(t, ip, "(car nil)").Tag())
	assert.Equal(t, value.NIL, runExpr(t, ip, "(cdr nil)").Tag())
	_, err := ip.Eval(read(t, "(car 1)"), ip.Global)
	require.Error(t, err)
}

func TestTypeReflection(t *testing.T) {
	ip := newInterp(t)
	assert.Equal(t, "cons", value.String(runExpr(t, ip, "(type '(1 2))"), true))
	assert.Equal(t, "num", value.String(runExpr(t, ip, "(type 1)"), true))
	assert.Equal(t, "string", value.String(runExpr(t, ip, `(type "x")`), true))
	assert.Equal(t, "table", value.String(runExpr(t, ip, "(type (table))"), true))
}

func TestCoerceMatrix(t *testing.T) {
	ip := newInterp(t)
	assert.Equal(t, float64(42), runExpr(t, ip, "(coerce \"42\" 'int)").AsNum())
	assert.Equal(t, `"hi"`, value.String(runExpr(t, ip, "(coerce '(#\\h #\\i) 'string)"), true))
}

func TestTableAsFunctionAndSref(t *testing.T) {
	ip := newInterp(t)
	v := runExpr(t, ip, "(do (assign tt (table)) (table-sref tt 'a 1) (tt 'a))")
	assert.Equal(t, float64(1), v.AsNum())
	v = runExpr(t, ip, "(tt 'b 99)")
	assert.Equal(t, float64(99), v.AsNum())
}

func TestDispWritesToExplicitPort(t *testing.T) {
	ip := newInterp(t)
	var buf bytes.Buffer
	port := value.NewPort(value.OUTPUT, "buf", bufio.NewWriter(&buf), nil)
	ip.Global.Bind(value.Default.Intern("out").AsSym(), port)
	runExpr(t, ip, `(do (disp "hi" out) (write #\a out) (flushout out))`)
	assert.Equal(t, `hi#\a`, buf.String())
}

func TestReadRoundTripsThroughString(t *testing.T) {
	ip := newInterp(t)
	v := runExpr(t, ip, `(read "(1 2 . 3)")`)
	assert.Equal(t, "(1 2 . 3)", value.String(v, true))
}

func TestErrRaisesUserError(t *testing.T) {
	ip := newInterp(t)
	_, err := ip.Eval(read(t, `(err "boom")`), ip.Global)
	require.Error(t, err)
	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.KindUser, evalErr.Kind)
}

func TestBoundReportsGlobalBindings(t *testing.T) {
	ip := newInterp(t)
	assert.Equal(t, value.NIL, runExpr(t, ip, "(bound 'nonesuch)").Tag())
	runExpr(t, ip, "(assign something 1)")
	assert.Equal(t, "t", value.String(runExpr(t, ip, "(bound 'something)"), true))
}

func TestMacexExpandsWithoutEvaluating(t *testing.T) {
	ip := newInterp(t)
	runExpr(t, ip, "(mac always1 () 1)")
	v := runExpr(t, ip, "(macex '(always1))")
	assert.Equal(t, "1", value.String(v, true))
}

func TestApplyCallsFunctionWithArgList(t *testing.T) {
	ip := newInterp(t)
	v := runExpr(t, ip, "(apply + '(1 2 3))")
	assert.Equal(t, float64(6), v.AsNum())
}
