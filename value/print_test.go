package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteQuoteForms(t *testing.T) {
	in := NewInterner()
	_ = in
	q := Cons(SymQuote, Cons(Num(1), Nil))
	assert.Equal(t, "'1", String(q, true))

	qq := Cons(SymQuasiquote, Cons(Num(1), Nil))
	assert.Equal(t, "`1", String(qq, true))
}

func TestWriteStringsAndChars(t *testing.T) {
	assert.Equal(t, `"ab"`, String(NewStr("ab"), true))
	assert.Equal(t, "ab", String(NewStr("ab"), false))
	assert.Equal(t, `#\newline`, String(Char('\n'), true))
	assert.Equal(t, "\n", String(Char('\n'), false))
	assert.Equal(t, `#\a`, String(Char('a'), true))
}

func TestWriteTable(t *testing.T) {
	tv := NewTable()
	tv.AsTable().Set(Num(1), Num(2))
	assert.Equal(t, "#<table:((1 . 2))>", String(tv, true))
}

func TestWriteImproperList(t *testing.T) {
	v := Cons(Num(1), Cons(Num(2), Num(3)))
	assert.Equal(t, "(1 2 . 3)", String(v, true))
}
