package reader

import "github.com/pkg/errors"

// SyntaxError reports a malformed token or construct: a stray ')' or ']',
// empty infix operands, or an unknown character name. It is distinct from
// ErrUnterminated, which signals "need more input," not "this is wrong."
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Msg }

func syntaxErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&SyntaxError{Msg: errors.Errorf(format, args...).Error()})
}

// UnterminatedError reports that the reader reached end of text while
// inside a string or a list. The driver uses this to prompt for more input
// rather than reporting a hard error.
type UnterminatedError struct{}

func (e *UnterminatedError) Error() string { return "unterminated input" }

// ErrUnterminated is the sentinel instance returned by the lexer/parser on
// end of input inside an open construct.
var ErrUnterminated error = &UnterminatedError{}

// IsUnterminated reports whether err is (or wraps) an *UnterminatedError.
func IsUnterminated(err error) bool {
	_, ok := errors.Cause(err).(*UnterminatedError)
	return ok
}
