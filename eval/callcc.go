package eval

import "github.com/arclang/arc/value"

// unwind is panicked by invokeContinuation and caught only by the Ccc frame
// that created the matching token; any other panic (including another
// ccc frame's unwind) propagates untouched, mirroring vm/core.go's Run
// deferred recover, which re-panics anything its own switch does not
// recognize.
type unwind struct {
	token interface{}
	value value.Value
}

// Ccc implements `ccc`: it builds a CONTINUATION-tagged value wrapping a
// fresh token, calls fn with that continuation as its argument, and catches
// only the unwind carrying its own token. Design Notes §9 explicitly rules
// out multi-shot or upward-then-downward continuations; this one-shot
// escape is exactly what a single panic/recover pair can express. Invoking
// a continuation whose frame already returned finds no matching recover
// anywhere on the Go call stack; the driver does not recover that panic
// either, so it ends the process.
func (ip *Interp) Ccc(fn value.Value) (result value.Value, err error) {
	tok := new(byte)
	k := value.NewContinuation(tok)

	defer func() {
		if e := recover(); e != nil {
			if u, ok := e.(unwind); ok && u.token == tok {
				result, err = u.value, nil
				return
			}
			panic(e)
		}
	}()

	return ip.Apply(fn, []value.Value{k})
}

// invokeContinuation stores v as the thrown value and performs the
// non-local jump back to the ccc frame that created k, per spec §4.4's
// CONTINUATION application rule.
func (ip *Interp) invokeContinuation(k value.Value, v value.Value) (value.Value, error) {
	tok := k.AsContinuation().Token
	panic(unwind{token: tok, value: v})
}
