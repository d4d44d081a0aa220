package builtin

import (
	"bufio"
	"io"
	"strings"

	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/internal/ngx"
	"github.com/arclang/arc/reader"
	"github.com/arclang/arc/value"
)

func init() {
	register("disp", builtinDisp)
	register("write", builtinWrite)
	register("readb", builtinReadb)
	register("writeb", builtinWriteb)
	register("readline", builtinReadline)
	register("read", builtinRead)
	register("sread", builtinSread)
	register("flushout", builtinFlushout)
}

func writeForm(op string, args []value.Value, portIdx int, interp interface{}, write bool) (value.Value, error) {
	if len(args) == 0 {
		return value.Nil, wrongArgCount(op, 1, 0)
	}
	ip := interp.(*eval.Interp)
	w, err := outPort(op, args, portIdx, ip)
	if err != nil {
		return value.Nil, err
	}
	ew := ngx.NewErrWriter(w)
	if err := value.Write(ew, args[0], write); err != nil {
		return value.Nil, fileError(op, err)
	}
	return args[0], nil
}

func builtinDisp(args []value.Value, interp interface{}) (value.Value, error) {
	return writeForm("disp", args, 1, interp, false)
}

func builtinWrite(args []value.Value, interp interface{}) (value.Value, error) {
	return writeForm("write", args, 1, interp, true)
}

func builtinReadb(args []value.Value, interp interface{}) (value.Value, error) {
	ip := interp.(*eval.Interp)
	r, err := inPort("readb", args, 0, ip)
	if err != nil {
		return value.Nil, err
	}
	b, err := r.ReadByte()
	if err == io.EOF {
		return value.Nil, nil
	}
	if err != nil {
		return value.Nil, fileError("readb", err)
	}
	return value.Num(float64(b)), nil
}

func builtinWriteb(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) == 0 {
		return value.Nil, wrongArgCount("writeb", 1, 0)
	}
	n, err := wantNum("writeb", args[0])
	if err != nil {
		return value.Nil, err
	}
	ip := interp.(*eval.Interp)
	w, err := outPort("writeb", args, 1, ip)
	if err != nil {
		return value.Nil, err
	}
	if err := w.WriteByte(byte(n)); err != nil {
		return value.Nil, fileError("writeb", err)
	}
	return args[0], nil
}

func builtinReadline(args []value.Value, interp interface{}) (value.Value, error) {
	ip := interp.(*eval.Interp)
	r, err := inPort("readline", args, 0, ip)
	if err != nil {
		return value.Nil, err
	}
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return value.Nil, fileError("readline", err)
	}
	if err == io.EOF && line == "" {
		return value.Nil, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return value.NewStr(line), nil
}

// readForm parses one S-expression from r, translating the reader's
// distinct end-of-input / unterminated / syntax signals into eval.Error
// kinds; a clean end-of-input (reader.ErrEOF) is reported to the caller via
// the ok=false return rather than an error, so read/sread can substitute
// their caller-supplied eof sentinel.
func readForm(in *value.Interner, r *bufio.Reader) (v value.Value, ok bool, err error) {
	p := reader.NewParser(r, in)
	v, err = p.ReadOne()
	if err == nil {
		return v, true, nil
	}
	if err == reader.ErrEOF {
		return value.Nil, false, nil
	}
	if reader.IsUnterminated(err) {
		return value.Nil, false, &eval.Error{Kind: eval.KindUnterminated, Cause: err}
	}
	return value.Nil, false, &eval.Error{Kind: eval.KindSyntax, Cause: err}
}

// builtinRead implements `read`: (read [src [eof]]). src may be a STRING
// (parsed fresh each call — no continuation across calls) or an input
// port (continuation falls out of sharing that port's *bufio.Reader); with
// src omitted, it reads from the interpreter's default stdin port. eof
// defaults to nil.
func builtinRead(args []value.Value, interp interface{}) (value.Value, error) {
	ip := interp.(*eval.Interp)
	eofVal := value.Nil
	if len(args) > 1 {
		eofVal = args[1]
	}
	var r *bufio.Reader
	if len(args) > 0 && args[0].Tag() == value.STRING {
		r = bufio.NewReader(strings.NewReader(string(args[0].AsStr().B)))
	} else {
		var err error
		r, err = inPort("read", args, 0, ip)
		if err != nil {
			return value.Nil, err
		}
	}
	v, ok, err := readForm(ip.Interner, r)
	if err != nil {
		return value.Nil, err
	}
	if !ok {
		return eofVal, nil
	}
	return v, nil
}

// builtinSread is `read` specialized to a port (spec §4.5): the first
// argument must be an input port, never a string.
func builtinSread(args []value.Value, interp interface{}) (value.Value, error) {
	ip := interp.(*eval.Interp)
	eofVal := value.Nil
	if len(args) > 1 {
		eofVal = args[1]
	}
	r, err := inPort("sread", args, 0, ip)
	if err != nil {
		return value.Nil, err
	}
	v, ok, err := readForm(ip.Interner, r)
	if err != nil {
		return value.Nil, err
	}
	if !ok {
		return eofVal, nil
	}
	return v, nil
}

func builtinFlushout(args []value.Value, interp interface{}) (value.Value, error) {
	ip := interp.(*eval.Interp)
	w, err := outPort("flushout", args, 0, ip)
	if err != nil {
		return value.Nil, err
	}
	if err := w.Flush(); err != nil {
		return value.Nil, fileError("flushout", err)
	}
	return value.Nil, nil
}
