package builtin

import (
	"bufio"
	"os"
	"strings"

	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/expand"
	"github.com/arclang/arc/reader"
	"github.com/arclang/arc/value"
)

func init() {
	register("apply", builtinApply)
	register("ccc", builtinCcc)
	register("eval", builtinEval)
	register("load", builtinLoad)
	register("err", builtinErr)
	register("quit", builtinQuit)
	register("bound", builtinBound)
	register("macex", builtinMacex)
}

func builtinApply(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArgCount("apply", 2, len(args))
	}
	if !value.IsProperList(args[1]) {
		return value.Nil, wrongType("apply", args[1])
	}
	ip := interp.(*eval.Interp)
	return ip.Apply(args[0], value.ListToSlice(args[1]))
}

func builtinCcc(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("ccc", 1, len(args))
	}
	ip := interp.(*eval.Interp)
	return ip.Ccc(args[0])
}

// builtinEval implements `eval`: expand then evaluate in the global
// environment, per spec §4.5.
func builtinEval(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("eval", 1, len(args))
	}
	ip := interp.(*eval.Interp)
	expanded, err := expand.Expand(ip, args[0])
	if err != nil {
		return value.Nil, err
	}
	return ip.Eval(expanded, ip.Global)
}

// builtinLoad reads path through the same reader -> expand -> eval loop
// used to load the bundled standard library, per spec §2's "Data flow" and
// §4.5's `load` contract.
func builtinLoad(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("load", 1, len(args))
	}
	s, err := wantStr("load", args[0])
	if err != nil {
		return value.Nil, err
	}
	ip := interp.(*eval.Interp)
	f, err := os.Open(string(s.B))
	if err != nil {
		return value.Nil, fileError("load", err)
	}
	defer f.Close()
	return Load(ip, bufio.NewReader(f))
}

// Load reads every form from r in turn, expanding and evaluating each one
// in the global environment, exactly the loop spec §2 describes for
// "source text -> reader -> value -> expander -> value -> evaluator ->
// value." It is exported so cmd/arc can feed the embedded prelude and
// command-line file arguments through the identical loop the `load`
// builtin itself uses, rather than duplicating it.
func Load(ip *eval.Interp, r *bufio.Reader) (value.Value, error) {
	p := reader.NewParser(r, ip.Interner)
	result := value.Nil
	for {
		form, err := p.ReadOne()
		if err == reader.ErrEOF {
			return result, nil
		}
		if err != nil {
			return value.Nil, &eval.Error{Kind: kindForReadErr(err), Cause: err}
		}
		expanded, err := expand.Expand(ip, form)
		if err != nil {
			return value.Nil, err
		}
		result, err = ip.Eval(expanded, ip.Global)
		if err != nil {
			return value.Nil, err
		}
	}
}

// LoadString is Load specialized to an in-memory source string, used by
// cmd/arc to load the embedded standard-library text.
func LoadString(ip *eval.Interp, src string) (value.Value, error) {
	return Load(ip, bufio.NewReader(strings.NewReader(src)))
}

func kindForReadErr(err error) eval.Kind {
	if reader.IsUnterminated(err) {
		return eval.KindUnterminated
	}
	return eval.KindSyntax
}

func builtinErr(args []value.Value, _ interface{}) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.String(a, false)
	}
	return value.Nil, userError(strings.Join(parts, " "))
}

func builtinQuit(args []value.Value, _ interface{}) (value.Value, error) {
	code := 0
	if len(args) == 1 {
		n, err := wantNum("quit", args[0])
		if err == nil {
			code = int(n)
		}
	}
	os.Exit(code)
	return value.Nil, nil
}

func builtinBound(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("bound", 1, len(args))
	}
	sym, err := wantSym("bound", args[0])
	if err != nil {
		return value.Nil, err
	}
	ip := interp.(*eval.Interp)
	if ip.Global.Bound(sym) {
		return value.Default.Intern("t"), nil
	}
	return value.Nil, nil
}

func builtinMacex(args []value.Value, interp interface{}) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArgCount("macex", 1, len(args))
	}
	ip := interp.(*eval.Interp)
	return expand.Expand(ip, args[0])
}
