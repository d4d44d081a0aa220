package expand

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclang/arc/eval"
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

func newInterp() *eval.Interp {
	return eval.NewInterp(value.Default)
}

func TestExpandSelfEvaluatingPassesThrough(t *testing.T) {
	ip := newInterp()
	v, err := Expand(ip, read(t, "42"))
	require.NoError(t, err)
	assert.Equal(t, "42", value.String(v, true))
}

func TestExpandDoesNotDescendIntoQuote(t *testing.T) {
	ip := newInterp()
	_, err := ip.Eval(read(t, "(mac twice (x) (list 'quote x))"), ip.Global)
	require.NoError(t, err)
	v, err := Expand(ip, read(t, "(quote (twice 1))"))
	require.NoError(t, err)
	assert.Equal(t, "'(twice 1)", value.String(v, true))
}

// TestExpandMacroCallDoesNotEvaluateArguments pins down invariant 7 of spec
// §8: macros receive the unevaluated argument list.
func TestExpandMacroCallDoesNotEvaluateArguments(t *testing.T) {
	ip := newInterp()
	bindListBuiltin(t, ip)
	_, err := ip.Eval(read(t, "(mac twice (x) (list '+ x x))"), ip.Global)
	require.NoError(t, err)

	expanded, err := Expand(ip, read(t, "(twice 5)"))
	require.NoError(t, err)
	// The macro body builds (+ 5 5); the argument 5 was never evaluated (a
	// side-effecting argument would only ever have run once, inside the
	// expanded call, not during expansion itself).
	assert.Equal(t, "(+ 5 5)", value.String(expanded, true))
}

func TestExpandRecursesIntoResultAndSubforms(t *testing.T) {
	ip := newInterp()
	bindListBuiltin(t, ip)
	_, err := ip.Eval(read(t, "(mac wrap (x) (list 'list x))"), ip.Global)
	require.NoError(t, err)

	expanded, err := Expand(ip, read(t, "(do (wrap 1))"))
	require.NoError(t, err)
	assert.Equal(t, "(do (list 1))", value.String(expanded, true))
}

func bindListBuiltin(t *testing.T, ip *eval.Interp) {
	t.Helper()
	ip.Global.Bind(value.Default.Intern("list").AsSym(), value.Builtin("list", func(args []value.Value, _ interface{}) (value.Value, error) {
		return value.SliceToList(args), nil
	}))
}
