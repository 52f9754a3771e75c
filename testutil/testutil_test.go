package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeProtein(t *testing.T) {
	s := MakeProtein(30)

	require.NotNil(t, s)
	assert.Equal(t, 150, s.AtomCount())
	assert.Equal(t, 30, s.ResidueCount())
	assert.Equal(t, 1, s.ChainCount())
	assert.Equal(t, 1, s.ModelCount())

	// Serials are assigned in build order starting at 1.
	first := s.AtomProxy(0)
	assert.Equal(t, int32(1), first.Serial())
	last := s.AtomProxy(149)
	assert.Equal(t, int32(150), last.Serial())
}

func TestMakeSystem(t *testing.T) {
	s := MakeSystem(4)

	assert.Equal(t, 24, s.AtomCount())
	assert.Equal(t, 8, s.ResidueCount())
	assert.Equal(t, 2, s.ChainCount())

	water := s.ResidueProxy(4)
	assert.Equal(t, "HOH", water.Resname())
	assert.True(t, water.IsHetero())
}

func TestTemplates(t *testing.T) {
	ala := AlanineTemplate()
	assert.Equal(t, "ALA", ala.Resname)
	assert.Len(t, ala.Atoms, 5)

	gly := GlycineTemplate()
	assert.Equal(t, "GLY", gly.Resname)
	assert.Len(t, gly.Atoms, 4)
}
