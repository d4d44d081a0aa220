package reader

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(bufio.NewReader(strings.NewReader(src)))
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok.Kind == TokEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerPunctuation(t *testing.T) {
	toks := lexAll(t, "( ) [ ] ' ` , ,@")
	kinds := make([]TokKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokKind{
		TokLParen, TokRParen, TokLBracket, TokRBracket,
		TokQuote, TokQuasiquote, TokUnquote, TokUnquoteSplicing,
	}, kinds)
}

func TestLexerSkipsLineComments(t *testing.T) {
	toks := lexAll(t, "foo ; this is a comment\nbar")
	require.Len(t, toks, 2)
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, "bar", toks[1].Text)
}

func TestLexerStringEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb\tc\\d\"e"`)
	require.Len(t, toks, 1)
	assert.Equal(t, TokString, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\\d\"e", toks[0].Text)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader(`"abc`)))
	_, err := l.Next()
	assert.True(t, IsUnterminated(err))
}

func TestLexerCharLiterals(t *testing.T) {
	toks := lexAll(t, `#\a #\space #\newline #\tab #\return #\nul`)
	require.Len(t, toks, 6)
	want := []byte{'a', ' ', '\n', '\t', '\r', 0}
	for i, tok := range toks {
		assert.Equal(t, TokChar, tok.Kind)
		assert.Equal(t, want[i], tok.Ch)
	}
}

func TestLexerCharLiteralBeforeDelimiter(t *testing.T) {
	toks := lexAll(t, `(#\a)`)
	require.Len(t, toks, 3)
	assert.Equal(t, TokLParen, toks[0].Kind)
	assert.Equal(t, TokChar, toks[1].Kind)
	assert.Equal(t, byte('a'), toks[1].Ch)
	assert.Equal(t, TokRParen, toks[2].Kind)
}

func TestLexerAtomRuns(t *testing.T) {
	toks := lexAll(t, "foo bar-baz a.b!c:d 123 -1.5e10")
	require.Len(t, toks, 5)
	for _, tok := range toks {
		assert.Equal(t, TokAtom, tok.Kind)
	}
	assert.Equal(t, "a.b!c:d", toks[2].Text)
}

func TestLexerUnquoteVsUnquoteSplicing(t *testing.T) {
	toks := lexAll(t, ",a ,@b")
	require.Len(t, toks, 4)
	assert.Equal(t, TokUnquote, toks[0].Kind)
	assert.Equal(t, TokAtom, toks[1].Kind)
	assert.Equal(t, TokUnquoteSplicing, toks[2].Kind)
	assert.Equal(t, TokAtom, toks[3].Kind)
}
