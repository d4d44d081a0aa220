package reader

import "github.com/arclang/arc/value"

// infixRewrite implements spec §4.1's "symbol-level infix rewriting": before
// treating an atom token as a plain symbol, check it for the infix
// characters below, by precedence, and rewrite. The literal token "." is
// kept as a symbol (it is handled earlier, by the list parser, as the
// improper-tail marker).
//
//	a.b  -> (a b)
//	a!b  -> (a (quote b))
//	a:b  -> (compose a b)
//	~a   -> (complement a)   (leading ~ only)
//
// ':' binds loosest (splits outermost), then '.', then '!' binds tightest
// (splits innermost): for "a.b!c:d" the outermost split is the ':', giving
// (compose <rewrite of "a.b!c"> d); "a.b!c" in turn splits on '.' before
// '!', giving (a (b (quote c))) — the full result is
// (compose (a (b (quote c))) d). Each side of a split recurses through this
// same rewrite, so a run of several infix characters nests rather than
// flattening. Both sides of a binary rewrite must be non-empty.
func infixRewrite(p *Parser, text string) (value.Value, error) {
	if text == "." {
		return p.in.Intern("."), nil
	}
	if text[0] == '~' {
		if len(text) == 1 {
			return value.Value{}, syntaxErrorf("empty infix operand in %q", text)
		}
		rest, err := p.parseAtom(text[1:])
		if err != nil {
			return value.Value{}, err
		}
		return value.Cons(value.SymComplement, value.Cons(rest, value.Nil)), nil
	}
	// Check for the infix characters by precedence, not by raw position:
	// ':' binds loosest, so if it appears anywhere in the token it wins the
	// split (at its rightmost occurrence), before '.' is even considered;
	// only when no ':' is present does '.' get to split (at its rightmost
	// occurrence), and only when neither ':' nor '.' is present does '!'
	// split. This is what gives "a.b!c:d" its outermost split on ':'.
	bestIdx, bestOp := -1, byte(0)
	for _, op := range [...]byte{':', '.', '!'} {
		if i := lastIndexByte(text, op); i >= 0 {
			bestIdx, bestOp = i, op
			break
		}
	}
	if bestIdx >= 0 {
		left, right := text[:bestIdx], text[bestIdx+1:]
		if left == "" || right == "" {
			return value.Value{}, syntaxErrorf("empty infix operand in %q", text)
		}
		lv, err := p.parseAtom(left)
		if err != nil {
			return value.Value{}, err
		}
		rv, err := p.parseAtom(right)
		if err != nil {
			return value.Value{}, err
		}
		switch bestOp {
		case '.':
			return value.Cons(lv, value.Cons(rv, value.Nil)), nil
		case '!':
			quoted := value.Cons(value.SymQuote, value.Cons(rv, value.Nil))
			return value.Cons(lv, value.Cons(quoted, value.Nil)), nil
		case ':':
			return value.Cons(value.SymCompose, value.Cons(lv, value.Cons(rv, value.Nil))), nil
		}
	}
	return p.in.Intern(text), nil
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}
