// Package arc assembles the pieces in value, reader, expand, eval, and
// builtin into a runnable language: the bundled standard library text, the
// REPL's multi-line read loop, and an environment dump used for
// diagnostics.
package arc

import (
	_ "embed"

	"github.com/arclang/arc/builtin"
	"github.com/arclang/arc/eval"
)

//go:embed prelude.arc
var preludeSrc string

// LoadPrelude registers every native builtin on ip and then evaluates the
// embedded standard-library source, the same reader -> expand -> eval loop
// spec §2 describes for any other source file. Call it once per Interp
// before handing the REPL or a user file to it.
func LoadPrelude(ip *eval.Interp) error {
	builtin.Register(ip)
	_, err := builtin.LoadString(ip, preludeSrc)
	return err
}
