package reader

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclang/arc/value"
)

func read(t *testing.T, src string) value.Value {
	t.Helper()
	in := value.NewInterner()
	p := NewParser(bufio.NewReader(strings.NewReader(src)), in)
	v, err := p.ReadOne()
	require.NoError(t, err)
	return v
}

func TestParserSimpleList(t *testing.T) {
	v := read(t, "(1 2 3)")
	assert.Equal(t, "(1 2 3)", value.String(v, true))
}

func TestParserDottedList(t *testing.T) {
	v := read(t, "(1 2 . 3)")
	assert.Equal(t, "(1 2 . 3)", value.String(v, true))
}

func TestParserMismatchedClose(t *testing.T) {
	in := value.NewInterner()
	p := NewParser(bufio.NewReader(strings.NewReader("(1 2]")), in)
	_, err := p.ReadOne()
	require.Error(t, err)
	assert.False(t, IsUnterminated(err))
}

func TestParserUnterminatedList(t *testing.T) {
	in := value.NewInterner()
	p := NewParser(bufio.NewReader(strings.NewReader("(1 2")), in)
	_, err := p.ReadOne()
	assert.True(t, IsUnterminated(err))
}

func TestParserEmptyInputIsEOF(t *testing.T) {
	in := value.NewInterner()
	p := NewParser(bufio.NewReader(strings.NewReader("   ")), in)
	_, err := p.ReadOne()
	assert.Equal(t, ErrEOF, err)
}

func TestParserBracketDesugarsToFn(t *testing.T) {
	v := read(t, "[+ _ 1]")
	assert.Equal(t, "(fn (_) (+ _ 1))", value.String(v, true))
}

func TestParserQuoteForms(t *testing.T) {
	assert.Equal(t, "'a", value.String(read(t, "'a"), true))
	assert.Equal(t, "`a", value.String(read(t, "`a"), true))
	assert.Equal(t, ",a", value.String(read(t, ",a"), true))
	assert.Equal(t, ",@a", value.String(read(t, ",@a"), true))
}

func TestParserNumbersAndNil(t *testing.T) {
	assert.Equal(t, "42", value.String(read(t, "42"), true))
	assert.Equal(t, "-1.5", value.String(read(t, "-1.5"), true))
	assert.Equal(t, "nil", value.String(read(t, "nil"), true))
}

func TestParserInfixDotCall(t *testing.T) {
	assert.Equal(t, "(a b)", value.String(read(t, "a.b"), true))
}

func TestParserInfixBangQuotesArg(t *testing.T) {
	assert.Equal(t, "(a 'b)", value.String(read(t, "a!b"), true))
}

func TestParserInfixColonComposes(t *testing.T) {
	assert.Equal(t, "(compose a b)", value.String(read(t, "a:b"), true))
}

func TestParserInfixComplement(t *testing.T) {
	assert.Equal(t, "(complement a)", value.String(read(t, "~a"), true))
}

// TestParserInfixWorkedExample pins down the exact nesting from the
// documented precedence: ':' splits outermost, then '.', then '!' splits
// innermost.
func TestParserInfixWorkedExample(t *testing.T) {
	v := read(t, "a.b!c:d")
	assert.Equal(t, "(compose (a (b 'c)) d)", value.String(v, true))
}

func TestParserInfixEmptyOperandIsSyntaxError(t *testing.T) {
	in := value.NewInterner()
	p := NewParser(bufio.NewReader(strings.NewReader(".a")), in)
	_, err := p.ReadOne()
	require.Error(t, err)
	assert.False(t, IsUnterminated(err))
}

func TestParserDotTokenInsideListIsNotInfix(t *testing.T) {
	v := read(t, "(a . b)")
	assert.Equal(t, "(a . b)", value.String(v, true))
}
