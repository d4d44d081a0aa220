package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/arclang/arc/builtin"
	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/lang/arc"
	"github.com/arclang/arc/value"
)

const version = "arc 0.1.0"

var (
	debug       bool
	dump        bool
	noPrelude   bool
	noRawIO     bool
	showVersion bool
)

func atExit(ip *eval.Interp, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprint(os.Stderr, "\n"+formatError(err))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	dumpDiagnostics(ip)
	os.Exit(1)
}

func main() {
	var err error

	flag.BoolVar(&debug, "debug", false, "print full error causes and terminal/last-expression diagnostics on a failing exit")
	flag.BoolVar(&dump, "dump", false, "dump global environment bindings to stdout on exit")
	flag.BoolVar(&noPrelude, "noprelude", false, "skip loading the bundled standard library")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO in the REPL")
	flag.BoolVar(&showVersion, "v", false, "print the version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	ip := eval.NewInterp(value.Default)

	defer func() {
		if dump {
			arc.DumpEnv(os.Stdout, ip.Global)
		}
		atExit(ip, err)
	}()

	if !noPrelude {
		if err = arc.LoadPrelude(ip); err != nil {
			return
		}
	} else {
		builtin.Register(ip)
	}

	files := flag.Args()
	if len(files) > 0 {
		for _, f := range files {
			if err = loadFile(ip, f); err != nil {
				return
			}
		}
		return
	}

	_, tearDown := setupIO()
	if tearDown != nil {
		defer tearDown()
	}

	fmt.Println(version + " -- ^D to exit")
	err = repl(ip, bufio.NewReader(os.Stdin), os.Stdout)
}

func setupIO() (raw bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}
