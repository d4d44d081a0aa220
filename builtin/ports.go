package builtin

import (
	"bufio"

	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

// outPort resolves the output port argument at args[idx], falling back to
// interp's default stdout port when absent — spec §4.5's "All I/O builtins
// default to standard streams when the port argument is omitted."
func outPort(op string, args []value.Value, idx int, ip *eval.Interp) (*bufio.Writer, error) {
	v := ip.Stdout
	if idx < len(args) {
		v = args[idx]
	}
	if v.Tag() != value.OUTPUT {
		return nil, wrongType(op, v)
	}
	w, ok := v.AsPort().Raw.(*bufio.Writer)
	if !ok {
		return nil, fileError(op, errBadPort)
	}
	return w, nil
}

// inPort resolves the input port argument at args[idx], falling back to
// interp's default stdin port when absent. INPUTPIPE ports (from
// pipe-from) read the same way as INPUT ports.
func inPort(op string, args []value.Value, idx int, ip *eval.Interp) (*bufio.Reader, error) {
	v := ip.Stdin
	if idx < len(args) {
		v = args[idx]
	}
	if v.Tag() != value.INPUT && v.Tag() != value.INPUTPIPE {
		return nil, wrongType(op, v)
	}
	r, ok := v.AsPort().Raw.(*bufio.Reader)
	if !ok {
		return nil, fileError(op, errBadPort)
	}
	return r, nil
}

var errBadPort = errBadPortSentinel{}

type errBadPortSentinel struct{}

func (errBadPortSentinel) Error() string { return "port has no underlying stream" }
