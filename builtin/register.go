// Package builtin implements spec §4.5's built-in library: the native
// operators exposed as first-class BUILTIN values in the global
// environment. Each file below covers one of the groups spec §4.5 itself
// divides the library into.
package builtin

import (
	"github.com/arclang/arc/eval"
	"github.com/arclang/arc/value"
)

// entry pairs a builtin's global name with its native implementation,
// mirroring asm/asm.go's opcodes slice plus opcodeIndex map: a flat table
// built once, then indexed by name during registration.
type entry struct {
	name string
	fn   value.BuiltinFunc
}

// table accumulates every builtin registered by this package's init()
// functions (one per file, by group). Using per-file init()s instead of one
// giant literal keeps each group's registration next to its
// implementation, the way asm.go keeps opcodeIndex's construction next to
// the opcodes slice it is built from.
var table []entry

func register(name string, fn value.BuiltinFunc) {
	table = append(table, entry{name: name, fn: fn})
}

// Register binds every native operator in this package into ip's global
// environment as a BUILTIN-tagged value, named per spec §4.5.
func Register(ip *eval.Interp) {
	for _, e := range table {
		ip.Global.Bind(ip.Interner.Intern(e.name).AsSym(), value.Builtin(e.name, e.fn))
	}
}
