package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arclang/arc/builtin"
	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/expand"
	"github.com/arclang/arc/lang/arc"
	"github.com/arclang/arc/reader"
	"github.com/arclang/arc/value"
)

// repl runs the read-eval-print loop on in/out, buffering input lines until
// lang/arc.Balanced reports a complete top-level form, then running it
// through the reader -> expand -> eval pipeline and printing the result in
// write form. A single malformed or failing form reports its error and
// resumes at the next prompt rather than exiting, per spec §7.
func repl(ip *eval.Interp, in *bufio.Reader, out io.Writer) error {
	var buf []byte
	prompt := "arc> "
	for {
		fmt.Fprint(out, prompt)
		line, err := in.ReadBytes('\n')
		if len(line) > 0 {
			buf = append(buf, line...)
		}
		if err != nil {
			if err == io.EOF && len(buf) == 0 {
				fmt.Fprintln(out)
				return nil
			}
			if err != io.EOF {
				return err
			}
		}
		if !arc.Balanced(buf) {
			if err == io.EOF {
				fmt.Fprintln(out, "\nunterminated input at end of file")
				return nil
			}
			prompt = "  > "
			continue
		}
		runForms(ip, buf, out)
		buf = buf[:0]
		prompt = "arc> "
	}
}

// runForms reads and evaluates every complete form in src in turn, printing
// each result (or reporting the first error) to out.
func runForms(ip *eval.Interp, src []byte, out io.Writer) {
	p := reader.NewParser(bufio.NewReader(bytes.NewReader(src)), ip.Interner)
	for {
		form, err := p.ReadOne()
		if err == reader.ErrEOF {
			return
		}
		if err != nil {
			fmt.Fprint(out, formatError(err))
			return
		}
		expanded, err := expand.Expand(ip, form)
		if err != nil {
			reportError(out, err)
			return
		}
		result, err := ip.Eval(expanded, ip.Global)
		if err != nil {
			reportError(out, err)
			return
		}
		value.Write(out, result, true)
		fmt.Fprintln(out)
	}
}

func reportError(out io.Writer, err error) {
	if debug {
		fmt.Fprintf(out, "%+v\n", err)
		return
	}
	fmt.Fprint(out, formatError(err))
}

// formatError renders err per spec §7 "Propagation": the error kind, then
// " : ", then the offending expression in write form, then a newline. A
// KindUser error prints only its message, with no kind prefix. Errors that
// aren't *eval.Error (a raw reader or file-open failure, say) fall back to
// the Go error string.
func formatError(err error) string {
	e, ok := err.(*eval.Error)
	if !ok {
		return fmt.Sprintf("error: %v\n", err)
	}
	if e.Kind == eval.KindUser {
		return fmt.Sprintf("%v\n", e)
	}
	return fmt.Sprintf("%s : %s\n", e.Kind, value.String(e.Expr, true))
}

// loadFile feeds path through builtin.Load, the same loop the `load`
// builtin and the embedded prelude use.
func loadFile(ip *eval.Interp, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = builtin.Load(ip, bufio.NewReader(f))
	return err
}
