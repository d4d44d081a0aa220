// Command arc is a REPL and file-loading front end for the interpreter
// built in github.com/arclang/arc's value/reader/expand/eval/builtin
// packages.
//
// Usage:
//
//	arc [-debug] [-dump] [-noprelude] [-noraw] [file ...]
//
// With no file arguments, arc starts an interactive REPL on stdin/stdout.
// With one or more file arguments, each is loaded in turn (as the `load`
// builtin would) and arc exits instead of entering the REPL.
//
// -debug: print the full error cause chain and a terminal/last-expression
// diagnostic dump on a failing exit, instead of a one-line error message.
//
// -dump: write every binding in the global environment (and its parents) to
// stdout on exit, in "name = value" form.
//
// -noprelude: skip loading the embedded standard library. Useful for
// inspecting the interpreter's native builtins in isolation.
//
// -noraw: don't switch the terminal to raw mode before starting the REPL.
// Raw mode is what lets the REPL see each keystroke immediately; disable it
// when stdin is redirected from a file or pipe that doesn't behave like a
// terminal.
package main
