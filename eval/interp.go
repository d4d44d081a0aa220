package eval

import (
	"bufio"
	"os"

	"github.com/arclang/arc/value"
)

// Interp bundles the explicit collaborators a running program shares: the
// global environment, the symbol interner, the default I/O ports, and the
// "current error expression" slot used to annotate error output (spec §5
// "Shared state"). Design Notes asks that this state be threaded through as
// an explicit instance rather than kept in package-level globals; cmd/arc
// builds one Interp per process as the allowed single-instance convenience
// wrapper.
type Interp struct {
	Global   *value.Env
	Interner *value.Interner

	// Stdin/Stdout/Stderr are the ports the I/O builtins fall back to when
	// their port argument is omitted (spec §4.5: "All I/O builtins default
	// to standard streams"). The builtin package owns the Raw type
	// assertions (*bufio.Reader/*bufio.Writer); eval only wires the
	// defaults so every Interp, not just cmd/arc's, gets working I/O.
	Stdin  value.Value
	Stdout value.Value
	Stderr value.Value

	lastExpr value.Value
}

// NewInterp returns an Interp with a fresh global environment rooted at no
// parent, using in for symbol interning (normally value.Default), and
// default ports wired to the process's real stdin/stdout/stderr.
func NewInterp(in *value.Interner) *Interp {
	return &Interp{
		Global:   value.NewEnv(),
		Interner: in,
		Stdin:    value.NewPort(value.INPUT, "stdin", bufio.NewReader(os.Stdin), nil),
		Stdout:   value.NewPort(value.OUTPUT, "stdout", bufio.NewWriter(os.Stdout), nil),
		Stderr:   value.NewPort(value.OUTPUT, "stderr", bufio.NewWriter(os.Stderr), nil),
	}
}

// LastExpr returns the most recently evaluated sub-expression, recorded for
// the driver's error report (spec §7 "Propagation").
func (ip *Interp) LastExpr() value.Value { return ip.lastExpr }

func (ip *Interp) note(v value.Value) { ip.lastExpr = v }
