// Package ngx holds small helpers used by the builtin package, named in the
// same "ng" + short disambiguator style the teacher uses for its own
// internal package.
package ngx

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and remembers the first write error,
// returning it on every subsequent Write instead of letting callers check
// every single call — used by the disp/write builtins so a broken
// output pipe mid-print surfaces once as a single wrapped error.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter returns a new ErrWriter wrapping w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}
