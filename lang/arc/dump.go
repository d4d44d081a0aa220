package arc

import (
	"io"
	"sort"

	"github.com/arclang/arc/value"
)

// DumpEnv writes every binding reachable from env (env itself and its
// parent chain, innermost first) to w, one "name = value" line per
// binding. It backs cmd/arc's -dump flag, the way DumpVM dumped VM stacks
// and memory on a crash.
func DumpEnv(w io.Writer, env *value.Env) error {
	for f := env; f != nil; f = f.Parent {
		names := make([]string, 0, f.Len())
		vals := make(map[string]value.Value, f.Len())
		f.Each(func(sym *value.Symbol, v value.Value) {
			names = append(names, sym.Name)
			vals[sym.Name] = v
		})
		sort.Strings(names)
		for _, name := range names {
			if _, err := io.WriteString(w, name); err != nil {
				return err
			}
			if _, err := io.WriteString(w, " = "); err != nil {
				return err
			}
			if err := value.Write(w, vals[name], true); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
