package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQualifierChunk(t *testing.T) {
	r := Parse("15^C:A.N%A/0")
	require.NoError(t, r.Error)
	require.True(t, r.IsLeaf())

	assert.True(t, r.HasResno)
	assert.Equal(t, [2]int32{15, 15}, r.Resno)
	assert.True(t, r.HasInscode)
	assert.Equal(t, "C", r.Inscode)
	assert.True(t, r.HasChain)
	assert.Equal(t, "A", r.Chainname)
	assert.True(t, r.HasAtomname)
	assert.Equal(t, "N", r.Atomname)
	assert.True(t, r.HasAltloc)
	assert.Equal(t, "A", r.Altloc)
	assert.True(t, r.HasModel)
	assert.Equal(t, 0, r.Model)
}

func TestParseRanges(t *testing.T) {
	r := Parse("10-15")
	require.NoError(t, r.Error)
	assert.Equal(t, [2]int32{10, 15}, r.Resno)

	r = Parse("-5--1")
	require.NoError(t, r.Error)
	assert.Equal(t, [2]int32{-5, -1}, r.Resno)

	r = Parse("-12")
	require.NoError(t, r.Error)
	assert.Equal(t, [2]int32{-12, -12}, r.Resno)
}

func TestParseErrors(t *testing.T) {
	assert.ErrorIs(t, Parse("").Error, ErrEmptySelection)
	assert.ErrorIs(t, Parse("10-15-20").Error, ErrBadRange)
	assert.ErrorIs(t, Parse("20-10").Error, ErrBadRange)
	assert.ErrorIs(t, Parse("10-x").Error, ErrBadInteger)
	assert.ErrorIs(t, Parse("/abc").Error, ErrBadInteger)
	assert.ErrorIs(t, Parse(".TOOLONG").Error, ErrAtomNameLength)
	assert.ErrorIs(t, Parse("( )").Error, ErrEmptyGroup)
	assert.ErrorIs(t, Parse("( 10-15").Error, ErrUnbalancedParens)
	assert.ErrorIs(t, Parse("10 )").Error, ErrUnexpectedToken)
	assert.ErrorIs(t, Parse("@1,x").Error, ErrBadInteger)
}

func TestPrecedenceAndBindsTighter(t *testing.T) {
	// "10-15 or backbone and 30-35" => OR(resno[10,15], AND(backbone, resno[30,35]))
	r := Parse("10-15 or backbone and 30-35")
	require.NoError(t, r.Error)
	require.Equal(t, OpOr, r.Operator)
	require.Len(t, r.Rules, 2)

	left := r.Rules[0]
	assert.True(t, left.IsLeaf())
	assert.Equal(t, [2]int32{10, 15}, left.Resno)

	right := r.Rules[1]
	require.Equal(t, OpAnd, right.Operator)
	require.Len(t, right.Rules, 2)
	assert.Equal(t, KwBackbone, right.Rules[0].Keyword)
	assert.Equal(t, [2]int32{30, 35}, right.Rules[1].Resno)
}

func TestPrecedenceParenGroup(t *testing.T) {
	// "(10-15 or backbone)" is a single OR group, no enclosing AND.
	r := Parse("(10-15 or backbone)")
	require.NoError(t, r.Error)
	assert.Equal(t, OpOr, r.Operator)
	assert.Len(t, r.Rules, 2)
}

func TestNotConsumesSingleOperand(t *testing.T) {
	// "not water and protein" => AND(NOT(water), protein)
	r := Parse("not water and protein")
	require.NoError(t, r.Error)
	require.Equal(t, OpAnd, r.Operator)
	require.Len(t, r.Rules, 2)
	assert.True(t, r.Rules[0].Negate)
	assert.Equal(t, KwWater, r.Rules[0].Keyword)
	assert.Equal(t, KwProtein, r.Rules[1].Keyword)

	// Double negation cancels structurally.
	r = Parse("not not water")
	require.NoError(t, r.Error)
	assert.False(t, r.Negate)
	assert.Equal(t, KwWater, r.Keyword)

	// "not ( water or ion )" negates the whole group.
	r = Parse("not ( water or ion )")
	require.NoError(t, r.Error)
	assert.True(t, r.Negate)
	assert.Equal(t, OpOr, r.Operator)
}

func TestImplicitAnd(t *testing.T) {
	r := Parse(":A .CA")
	require.NoError(t, r.Error)
	require.Equal(t, OpAnd, r.Operator)
	require.Len(t, r.Rules, 2)
	assert.Equal(t, "A", r.Rules[0].Chainname)
	assert.Equal(t, "CA", r.Rules[1].Atomname)
}

func TestParseLists(t *testing.T) {
	r := Parse("@12,3,7")
	require.NoError(t, r.Error)
	assert.Equal(t, []int{3, 7, 12}, r.AtomIndices)

	r = Parse("[ALA,CYS,GLY]")
	require.NoError(t, r.Error)
	assert.Equal(t, []string{"ALA", "CYS", "GLY"}, r.Resnames)

	// Bracketed single number is an exact residue-number match.
	r = Parse("[123]")
	require.NoError(t, r.Error)
	assert.True(t, r.HasResno)
	assert.Equal(t, [2]int32{123, 123}, r.Resno)
}

func TestBareTokens(t *testing.T) {
	// Bare short alphabetic word that is not a keyword: residue name.
	r := Parse("ala")
	require.NoError(t, r.Error)
	assert.Equal(t, []string{"ALA"}, r.Resnames)

	// Keywords win over residue names.
	assert.Equal(t, KwTurn, Parse("turn").Keyword)

	// Element sigil.
	r = Parse("_ZN")
	require.NoError(t, r.Error)
	assert.True(t, r.HasElement)
	assert.Equal(t, "ZN", r.Element)

	// Star selects everything.
	assert.Equal(t, KwAll, Parse("*").Keyword)
}

func TestClassKeywordExpansion(t *testing.T) {
	r := Parse("acidic")
	require.NoError(t, r.Error)
	assert.Equal(t, []string{"ASP", "GLU"}, r.Resnames)
	assert.Equal(t, KwUnset, r.Keyword)
}

func TestLigandExpansion(t *testing.T) {
	r := Parse("ligand")
	require.NoError(t, r.Error)
	// ( not polymer or hetero ) and not ( water or ion )
	require.Equal(t, OpAnd, r.Operator)
	require.Len(t, r.Rules, 2)
	assert.Equal(t, OpOr, r.Rules[0].Operator)
	assert.True(t, r.Rules[1].Negate)
}
