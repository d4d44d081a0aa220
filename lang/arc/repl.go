package arc

import (
	"bufio"
	"strings"

	"github.com/arclang/arc/reader"
)

// Balanced reports whether src contains at least one complete top-level
// form: every opening paren/bracket has a matching close, and no string or
// character literal was left unterminated. The REPL calls this after each
// line the user types to decide whether to keep reading continuation lines
// or hand the buffered text to the reader.
func Balanced(src []byte) bool {
	if len(strings.TrimSpace(string(src))) == 0 {
		return false
	}
	lex := reader.NewLexer(bufio.NewReader(strings.NewReader(string(src))))
	depth := 0
	saw := false
	pendingPrefix := false
	for {
		tok, err := lex.Next()
		if err != nil {
			// An unterminated string or malformed char literal means the
			// form isn't finished yet; ask for another line.
			return false
		}
		if tok.Kind == reader.TokEOF {
			break
		}
		saw = true
		switch tok.Kind {
		case reader.TokLParen, reader.TokLBracket:
			depth++
			pendingPrefix = false
		case reader.TokRParen, reader.TokRBracket:
			depth--
			pendingPrefix = false
		case reader.TokQuote, reader.TokQuasiquote, reader.TokUnquote, reader.TokUnquoteSplicing:
			pendingPrefix = true
		default:
			pendingPrefix = false
		}
	}
	return saw && depth <= 0 && !pendingPrefix
}
