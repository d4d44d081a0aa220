package main

import (
	"fmt"
	"os"

	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

// dumpDiagnostics prints -debug diagnostics on a failing exit: the
// controlling terminal's size (0, 0 when stdin isn't a terminal) and the
// last sub-expression the evaluator was working on, mirroring the PC/stack
// line a crashed VM would print.
func dumpDiagnostics(ip *eval.Interp) {
	cols, rows := consoleSize(os.Stdin)
	fmt.Fprintf(os.Stderr, "terminal: %dx%d\n", cols, rows)
	fmt.Fprintf(os.Stderr, "last expr: %s\n", value.String(ip.LastExpr(), true))
}
