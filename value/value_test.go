package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Nil.Truthy())
	assert.True(t, Num(0).Truthy())
	assert.True(t, NewStr("").Truthy())
	assert.True(t, NewTable().Truthy())
}

func TestIsShallow(t *testing.T) {
	a := Cons(Num(1), Nil)
	b := Cons(Num(1), Nil)
	assert.True(t, Is(a, a))
	assert.False(t, Is(a, b), "Is must not recurse into CONS")
	assert.True(t, Iso(a, b), "Iso must recurse into CONS")
}

func TestIsoStrings(t *testing.T) {
	a := NewStr("hi")
	b := NewStr("hi")
	assert.False(t, Is(a, b))
	assert.True(t, Iso(a, b))
}

func TestSymbolIdentity(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	assert.True(t, Is(a, b), "equal names must intern to the same symbol")
}

func TestProperAndImproperLists(t *testing.T) {
	proper := Cons(Num(1), Cons(Num(2), Nil))
	require.True(t, IsProperList(proper))

	improper := Cons(Num(1), Cons(Num(2), Num(3)))
	require.False(t, IsProperList(improper))
	assert.Equal(t, "(1 2 . 3)", String(improper, true))
}

func TestSliceRoundTrip(t *testing.T) {
	vs := []Value{Num(1), Num(2), Num(3)}
	l := SliceToList(vs)
	got := ListToSlice(l)
	require.Len(t, got, 3)
	for i := range vs {
		assert.True(t, Is(vs[i], got[i]))
	}
}

func TestTableStringKeysCollideByContent(t *testing.T) {
	tbl := NewTable().AsTable()
	tbl.Set(NewStr("a"), Num(1))
	v, ok := tbl.Get(NewStr("a"))
	require.True(t, ok)
	assert.Equal(t, float64(1), v.AsNum())
}

func TestTableNilIsLegalKey(t *testing.T) {
	tbl := NewTable().AsTable()
	tbl.Set(Nil, Num(42))
	v, ok := tbl.Get(Nil)
	require.True(t, ok)
	assert.Equal(t, float64(42), v.AsNum())
}

func TestRetagClosureToMacro(t *testing.T) {
	env := NewEnv()
	c := NewClosure(env, Nil, nil, "f")
	m := c.Retag(MACRO)
	assert.Equal(t, CLOSURE, c.Tag())
	assert.Equal(t, MACRO, m.Tag())
	// retagging shares the same underlying payload pointer
	assert.Same(t, c.AsClosure(), m.AsClosure())
}
