package reader

import (
	"bufio"
	"strconv"

	"github.com/arclang/arc/value"
)

// Parser is a recursive-descent parser over a Lexer, producing value.Value
// trees. It is grounded on the same "bundle scanning state plus an error
// list" shape as the teacher's asm.parser, minus the error list: a syntax
// error here always aborts the current Read immediately rather than
// accumulating, since the reader has no equivalent of "keep assembling
// after a bad instruction".
type Parser struct {
	lex *Lexer
	in  *value.Interner
}

// NewParser returns a Parser reading tokens from r and interning symbols
// with in.
func NewParser(r *bufio.Reader, in *value.Interner) *Parser {
	return &Parser{lex: NewLexer(r), in: in}
}

// ReadOne parses exactly one S-expression from the underlying stream,
// leaving the cursor positioned immediately after it so that a subsequent
// call continues where this one left off (spec §9, "Reader re-entry").
//
// At end of input with nothing yet parsed, it returns (value.Nil, ErrEOF);
// an expression left open returns ErrUnterminated. ErrEOF is itself an
// *UnterminatedError, so IsUnterminated reports true for both: callers
// tell "nothing left to read" from "an expression was left open" by
// comparing err == ErrEOF first.
func (p *Parser) ReadOne() (value.Value, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return value.Nil, err
	}
	return p.parseFrom(tok)
}

// eof is returned by ReadOne when the stream ends before any expression
// starts.
var eof = &UnterminatedError{}

// ErrEOF is the sentinel error ReadOne returns on a clean end of input
// (no partial expression pending).
var ErrEOF error = eof

func (p *Parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *Parser) parseFrom(tok Token) (value.Value, error) {
	switch tok.Kind {
	case TokEOF:
		return value.Nil, ErrEOF
	case TokLParen:
		return p.parseList(TokRParen)
	case TokLBracket:
		return p.parseBracket()
	case TokRParen, TokRBracket:
		return value.Nil, syntaxErrorf("unexpected %s", tokKindName(tok.Kind))
	case TokQuote:
		return p.parseWrapped(value.SymQuote)
	case TokQuasiquote:
		return p.parseWrapped(value.SymQuasiquote)
	case TokUnquote:
		return p.parseWrapped(value.SymUnquote)
	case TokUnquoteSplicing:
		return p.parseWrapped(value.SymUnquoteSplicing)
	case TokString:
		return value.NewStr(tok.Text), nil
	case TokChar:
		return value.Char(tok.Ch), nil
	case TokAtom:
		return p.parseAtom(tok.Text)
	default:
		return value.Nil, syntaxErrorf("unexpected token")
	}
}

func tokKindName(k TokKind) string {
	switch k {
	case TokRParen:
		return "')'"
	case TokRBracket:
		return "']'"
	default:
		return "token"
	}
}

func (p *Parser) parseWrapped(head value.Value) (value.Value, error) {
	tok, err := p.next()
	if err != nil {
		return value.Nil, err
	}
	if tok.Kind == TokEOF {
		return value.Nil, ErrUnterminated
	}
	inner, err := p.parseFrom(tok)
	if err != nil {
		return value.Nil, err
	}
	return value.Cons(head, value.Cons(inner, value.Nil)), nil
}

// parseBracket desugars [...] into (fn (_) (...)).
func (p *Parser) parseBracket() (value.Value, error) {
	body, err := p.parseList(TokRBracket)
	if err != nil {
		return value.Nil, err
	}
	params := value.Cons(value.SymUnderscore, value.Nil)
	return value.Cons(value.SymFn, value.Cons(params, value.Cons(body, value.Nil))), nil
}

// parseList parses the elements of a list up to and including close, which
// is either TokRParen or TokRBracket. A "." token with at least one
// preceding element starts an improper tail.
func (p *Parser) parseList(close TokKind) (value.Value, error) {
	var elems []value.Value
	for {
		tok, err := p.next()
		if err != nil {
			return value.Nil, err
		}
		if tok.Kind == TokEOF {
			return value.Nil, ErrUnterminated
		}
		if tok.Kind == close {
			return value.SliceToList(elems), nil
		}
		if tok.Kind == TokRParen || tok.Kind == TokRBracket {
			return value.Nil, syntaxErrorf("mismatched %s", tokKindName(tok.Kind))
		}
		if tok.Kind == TokAtom && tok.Text == "." && len(elems) > 0 {
			tail, err := p.ReadOne()
			if err != nil {
				if err == ErrEOF {
					return value.Nil, ErrUnterminated
				}
				return value.Nil, err
			}
			closeTok, err := p.next()
			if err != nil {
				return value.Nil, err
			}
			if closeTok.Kind != close {
				return value.Nil, syntaxErrorf("malformed dotted list")
			}
			out := tail
			for i := len(elems) - 1; i >= 0; i-- {
				out = value.Cons(elems[i], out)
			}
			return out, nil
		}
		v, err := p.parseFrom(tok)
		if err != nil {
			return value.Nil, err
		}
		elems = append(elems, v)
	}
}

// parseAtom implements spec §4.1's atom priority order: numeric literal,
// nil, or symbol (string and character literals are already distinct token
// kinds by the time we get here).
func (p *Parser) parseAtom(text string) (value.Value, error) {
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return value.Num(f), nil
	}
	if text == "nil" {
		return value.Nil, nil
	}
	return infixRewrite(p, text)
}
