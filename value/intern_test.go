package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternerReturnsCanonicalPointer(t *testing.T) {
	in := NewInterner()
	a := in.Intern("hello")
	b := in.Intern("hello")
	assert.Same(t, a.AsSym(), b.AsSym())
}

func TestInternerLookupMiss(t *testing.T) {
	in := NewInterner()
	_, ok := in.Lookup("never-interned")
	assert.False(t, ok)
	in.Intern("never-interned")
	s, ok := in.Lookup("never-interned")
	require.True(t, ok)
	assert.Equal(t, "never-interned", s.Name)
}

func TestWellKnownSymbolsDistinct(t *testing.T) {
	assert.False(t, Is(SymQuote, SymIf))
	assert.True(t, Is(SymQuote, Default.Intern("quote")))
}
