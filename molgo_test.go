package molgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	molgo "github.com/hupe1980/molgo"
	"github.com/hupe1980/molgo/selection"
	"github.com/hupe1980/molgo/testutil"
)

func TestNewRequiresStructure(t *testing.T) {
	_, err := molgo.New(nil)
	assert.ErrorIs(t, err, molgo.ErrNilStructure)
}

func TestSelectAtoms(t *testing.T) {
	eng, err := molgo.New(testutil.MakeProtein(46))
	require.NoError(t, err)

	bits, err := eng.Select(".CA")
	require.NoError(t, err)
	assert.Equal(t, 46, bits.Count())

	bits, err = eng.Select("1-10 and backbone")
	require.NoError(t, err)
	assert.Equal(t, 40, bits.Count())
}

func TestSelectMalformedDegrades(t *testing.T) {
	eng, err := molgo.New(testutil.MakeProtein(5))
	require.NoError(t, err)

	bits, err := eng.Select("10-15-20")
	require.Error(t, err)
	assert.ErrorIs(t, err, selection.ErrBadRange)
	assert.Zero(t, bits.Count())
}

func TestFastPathMatchesFullScan(t *testing.T) {
	metrics := &molgo.BasicMetricsCollector{}
	eng, err := molgo.New(testutil.MakeSystem(10),
		molgo.WithMetricsCollector(metrics),
		molgo.WithoutSelectionCache(),
	)
	require.NoError(t, err)

	// ".CA" takes the name-index fast path; the padded variant forces the
	// scan. Both must agree.
	fast, err := eng.Select(".CA")
	require.NoError(t, err)
	slow, err := eng.Select("all and .CA")
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow))

	fast, err = eng.Select("_O")
	require.NoError(t, err)
	slow, err = eng.Select("all and _O")
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow))
	assert.Equal(t, 13, fast.Count()) // 10 carbonyl O + 3 water O

	assert.Equal(t, int64(4), metrics.GetStats().SelectCount)
}

func TestSelectionCacheInvalidatesOnEdit(t *testing.T) {
	metrics := &molgo.BasicMetricsCollector{}
	eng, err := molgo.New(testutil.MakeProtein(5), molgo.WithMetricsCollector(metrics))
	require.NoError(t, err)

	first, err := eng.Select(".CA")
	require.NoError(t, err)
	assert.Equal(t, 5, first.Count())

	// Second evaluation hits the cache.
	_, err = eng.Select(".CA")
	require.NoError(t, err)
	assert.Equal(t, int64(1), metrics.GetStats().SelectCacheHits)

	// An edit moves the version; the cache entry no longer applies.
	eng.Structure().RemoveResidue(4)
	second, err := eng.Select(".CA")
	require.NoError(t, err)
	assert.Equal(t, 4, second.Count())
}

func TestProxyAccessorsBoundsChecked(t *testing.T) {
	eng, err := molgo.New(testutil.MakeProtein(2))
	require.NoError(t, err)

	atom, err := eng.Atom(0)
	require.NoError(t, err)
	assert.Equal(t, "N", atom.Atomname())

	var oob *molgo.ErrIndexOutOfRange
	_, err = eng.Atom(-1)
	require.ErrorAs(t, err, &oob)
	_, err = eng.Atom(10)
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 10, oob.Index)
	assert.Equal(t, 10, oob.Count)

	_, err = eng.Residue(2)
	assert.ErrorAs(t, err, &oob)
	_, err = eng.Chain(1)
	assert.ErrorAs(t, err, &oob)

	chain, err := eng.Chain(0)
	require.NoError(t, err)
	assert.Equal(t, "A", chain.Chainname())
}

func TestSelectionCacheBounded(t *testing.T) {
	metrics := &molgo.BasicMetricsCollector{}
	eng, err := molgo.New(testutil.MakeProtein(5),
		molgo.WithMetricsCollector(metrics),
		molgo.WithSelectionCacheSize(1),
	)
	require.NoError(t, err)

	_, err = eng.Select(".CA")
	require.NoError(t, err)
	_, err = eng.Select(".CB")
	require.NoError(t, err)

	// ".CB" displaced ".CA"; only the resident entry can hit.
	_, err = eng.Select(".CB")
	require.NoError(t, err)
	_, err = eng.Select(".CA")
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(4), stats.SelectCount)
	assert.Equal(t, int64(1), stats.SelectCacheHits)
}

func TestEnsureFresh(t *testing.T) {
	eng, err := molgo.New(testutil.MakeProtein(3))
	require.NoError(t, err)

	v := eng.Version()
	require.NoError(t, eng.EnsureFresh(v))

	eng.Structure().RemoveResidue(0)

	var stale *molgo.ErrStaleSelection
	assert.ErrorAs(t, eng.EnsureFresh(v), &stale)
}

func TestSelectResiduesAndChains(t *testing.T) {
	eng, err := molgo.New(testutil.MakeSystem(4))
	require.NoError(t, err)

	res, err := eng.SelectResidues("water")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count())

	chains, err := eng.SelectChains(":W")
	require.NoError(t, err)
	assert.Equal(t, 1, chains.Count())
}

func TestRemoveSelected(t *testing.T) {
	eng, err := molgo.New(testutil.MakeSystem(4))
	require.NoError(t, err)

	removed, err := eng.RemoveSelected("water or ion")
	require.NoError(t, err)
	assert.Equal(t, 4, removed)

	s := eng.Structure()
	assert.Equal(t, 20, s.AtomCount())
	assert.Equal(t, 1, s.ChainCount())

	// Removing a scattered selection across residues.
	removed, err = eng.RemoveSelected(".CB")
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	assert.Equal(t, 16, s.AtomCount())
	assert.Equal(t, 4, s.ResidueCount())
}
