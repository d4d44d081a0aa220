package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupWalksParents(t *testing.T) {
	root := NewEnv()
	sym := Default.Intern("x").AsSym()
	root.Bind(sym, Num(1))
	child := root.NewChild()
	v, err := child.Lookup(sym)
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.AsNum())
}

func TestLookupUnbound(t *testing.T) {
	env := NewEnv()
	sym := Default.Intern("never-bound-xyz").AsSym()
	_, err := env.Lookup(sym)
	require.Error(t, err)
	var ube *UnboundSymbolError
	assert.ErrorAs(t, err, &ube)
}

func TestBindShadowsParent(t *testing.T) {
	root := NewEnv()
	sym := Default.Intern("y").AsSym()
	root.Bind(sym, Num(1))
	child := root.NewChild()
	child.Bind(sym, Num(2))

	v, _ := child.Lookup(sym)
	assert.Equal(t, float64(2), v.AsNum())
	v, _ = root.Lookup(sym)
	assert.Equal(t, float64(1), v.AsNum())
}

func TestAssignOverwritesAncestor(t *testing.T) {
	root := NewEnv()
	sym := Default.Intern("z").AsSym()
	root.Bind(sym, Num(1))
	child := root.NewChild()
	child.Assign(sym, Num(99))

	v, _ := root.Lookup(sym)
	assert.Equal(t, float64(99), v.AsNum(), "assign must overwrite the ancestor binding, not shadow it")
	_, localBound := child.vars[sym]
	assert.False(t, localBound, "assign must not also bind in the child frame")
}

func TestAssignBindsLocallyWhenUnbound(t *testing.T) {
	env := NewEnv()
	sym := Default.Intern("w").AsSym()
	env.Assign(sym, Num(7))
	v, err := env.Lookup(sym)
	require.NoError(t, err)
	assert.Equal(t, float64(7), v.AsNum())
}

func TestRoot(t *testing.T) {
	root := NewEnv()
	child := root.NewChild().NewChild()
	assert.Same(t, root, child.Root())
}
