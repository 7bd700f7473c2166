package symmetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molalign/builder"
	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/symmetry"
)

// side returns the resolver view of m.
func side(m *core.Molecule) symmetry.Side {
	return symmetry.Side{Numbers: m.AtomicNumbers(), Graph: m.Graph()}
}

func mustBuild(t *testing.T, con builder.Constructor) *core.Molecule {
	t.Helper()
	m, err := builder.Build(con)
	require.NoError(t, err)
	return m
}

func mustGraph(t *testing.T, n int, bonds []core.Bond) *core.BondGraph {
	t.Helper()
	g, err := core.NewBondGraph(n, bonds)
	require.NoError(t, err)
	return g
}

// assertDistinct fails if any two candidates are equal.
func assertDistinct(t *testing.T, cs []symmetry.Correspondence) {
	t.Helper()
	seen := map[string]bool{}
	for _, c := range cs {
		k := ""
		for _, j := range c {
			k += string(rune('a' + j))
		}
		assert.False(t, seen[k], "duplicate candidate %v", c)
		seen[k] = true
	}
}

func TestResolve_MethaneFullEnumeration(t *testing.T) {
	m := mustBuild(t, builder.Methane())
	res, err := symmetry.Resolve(side(m), side(m), symmetry.WithMaxCandidates(24))
	require.NoError(t, err)

	assert.True(t, res.Graphs)
	assert.True(t, res.Exhaustive)
	require.Len(t, res.Candidates, 24)
	assert.True(t, res.Candidates[0].IsIdentity())
	assertDistinct(t, res.Candidates)
	for _, c := range res.Candidates {
		assert.Equal(t, 0, c[0], "carbon must map to carbon")
	}
}

func TestResolve_CapMarksNonExhaustive(t *testing.T) {
	m := mustBuild(t, builder.Methane())
	res, err := symmetry.Resolve(side(m), side(m), symmetry.WithMaxCandidates(23))
	require.NoError(t, err)

	assert.False(t, res.Exhaustive)
	assert.Len(t, res.Candidates, 23)
	assertDistinct(t, res.Candidates)
}

func TestResolve_BudgetSpreadsAcrossBranches(t *testing.T) {
	m := mustBuild(t, builder.Methane())
	res, err := symmetry.Resolve(side(m), side(m), symmetry.WithMaxCandidates(4))
	require.NoError(t, err)
	require.Len(t, res.Candidates, 4)
	assert.False(t, res.Exhaustive)

	// a capped search samples every image of the first hydrogen instead of
	// exhausting one subtree
	images := map[int]bool{}
	for _, c := range res.Candidates {
		images[c[1]] = true
	}
	assert.Len(t, images, 4)
}

func TestResolve_EthanePermuted(t *testing.T) {
	a := mustBuild(t, builder.Ethane())
	perm := []int{2, 0, 3, 4, 1, 5, 6, 7}
	b, err := builder.Permute(a, perm)
	require.NoError(t, err)

	res, err := symmetry.Resolve(side(a), side(b))
	require.NoError(t, err)

	// 3! per methyl group times the C-C swap
	assert.Len(t, res.Candidates, 72)
	assert.True(t, res.Exhaustive)
	assert.True(t, res.Graphs)
	assert.False(t, res.Candidates[0].IsIdentity(), "identity pairs C with H here and must be absent")

	want := symmetry.Correspondence(perm).Inverse()
	found := false
	for _, c := range res.Candidates {
		require.NoError(t, symmetry.Validate(c, a.AtomicNumbers(), b.AtomicNumbers()))
		if c.Equal(want) {
			found = true
		}
	}
	assert.True(t, found, "inverse permutation %v missing", want)
}

func TestResolve_IdentityFirstEvenIfNotIsomorphism(t *testing.T) {
	a := mustBuild(t, builder.Ethane())
	// swap one hydrogen of each methyl: elements stay in place, bonds do not
	b, err := builder.Permute(a, []int{0, 1, 5, 3, 4, 2, 6, 7})
	require.NoError(t, err)

	res, err := symmetry.Resolve(side(a), side(b))
	require.NoError(t, err)
	require.Len(t, res.Candidates, 73)
	assert.True(t, res.Candidates[0].IsIdentity())
	assertDistinct(t, res.Candidates)
}

func TestResolve_FormicAcidOxygenSwap(t *testing.T) {
	a := mustBuild(t, builder.FormicAcid())
	b, err := builder.Permute(a, []int{0, 2, 1, 3, 4})
	require.NoError(t, err)

	res, err := symmetry.Resolve(side(a), side(b))
	require.NoError(t, err)
	assert.True(t, res.Graphs)
	assert.True(t, res.Exhaustive)
	assert.Equal(t, []symmetry.Correspondence{
		{0, 1, 2, 3, 4},
		{0, 2, 1, 3, 4},
	}, res.Candidates)
}

func TestResolve_BenzeneAutomorphisms(t *testing.T) {
	m := mustBuild(t, builder.Benzene())
	res, err := symmetry.Resolve(side(m), side(m))
	require.NoError(t, err)
	assert.Len(t, res.Candidates, 12)
	assert.True(t, res.Exhaustive)
}

func TestResolve_NonIsomorphicFallsBackToIdentity(t *testing.T) {
	nums := []int{6, 6, 8, 1, 1, 1, 1, 1, 1}
	ethanol := symmetry.Side{Numbers: nums, Graph: mustGraph(t, 9, []core.Bond{
		{I: 0, J: 1, Order: 1}, {I: 1, J: 2, Order: 1}, {I: 2, J: 3, Order: 1},
		{I: 0, J: 4, Order: 1}, {I: 0, J: 5, Order: 1}, {I: 0, J: 6, Order: 1},
		{I: 1, J: 7, Order: 1}, {I: 1, J: 8, Order: 1},
	})}
	ether := symmetry.Side{Numbers: nums, Graph: mustGraph(t, 9, []core.Bond{
		{I: 0, J: 2, Order: 1}, {I: 1, J: 2, Order: 1},
		{I: 0, J: 3, Order: 1}, {I: 0, J: 4, Order: 1}, {I: 0, J: 5, Order: 1},
		{I: 1, J: 6, Order: 1}, {I: 1, J: 7, Order: 1}, {I: 1, J: 8, Order: 1},
	})}

	res, err := symmetry.Resolve(ethanol, ether)
	require.NoError(t, err)
	assert.False(t, res.Graphs)
	assert.True(t, res.Exhaustive)
	assert.Equal(t, []symmetry.Correspondence{symmetry.Identity(9)}, res.Candidates)
}

func TestResolve_NoBonds(t *testing.T) {
	a := symmetry.Side{Numbers: []int{8, 1, 1}}

	res, err := symmetry.Resolve(a, symmetry.Side{Numbers: []int{8, 1, 1}})
	require.NoError(t, err)
	assert.False(t, res.Graphs)
	assert.Equal(t, []symmetry.Correspondence{{0, 1, 2}}, res.Candidates)

	_, err = symmetry.Resolve(a, symmetry.Side{Numbers: []int{1, 8, 1}})
	assert.True(t, errors.Is(err, core.ErrStructureMismatch))
}

func TestResolve_Errors(t *testing.T) {
	_, err := symmetry.Resolve(
		symmetry.Side{Numbers: []int{8, 1, 1}},
		symmetry.Side{Numbers: []int{8, 1}},
	)
	assert.True(t, errors.Is(err, core.ErrShapeMismatch))

	_, err = symmetry.Resolve(
		symmetry.Side{Numbers: []int{8, 1, 1}},
		symmetry.Side{Numbers: []int{8, 1, 9}},
	)
	assert.True(t, errors.Is(err, core.ErrStructureMismatch))

	_, err = symmetry.Resolve(
		symmetry.Side{Numbers: []int{8, 1, 1}, Graph: mustGraph(t, 2, []core.Bond{{I: 0, J: 1, Order: 1}})},
		symmetry.Side{Numbers: []int{8, 1, 1}},
	)
	assert.True(t, errors.Is(err, core.ErrShapeMismatch))

	_, err = symmetry.Resolve(symmetry.Side{}, symmetry.Side{}, symmetry.WithMaxCandidates(0))
	assert.True(t, errors.Is(err, symmetry.ErrOptionViolation))
}

func TestResolve_Empty(t *testing.T) {
	res, err := symmetry.Resolve(symmetry.Side{}, symmetry.Side{})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Empty(t, res.Candidates[0])
}

func TestResolve_Deterministic(t *testing.T) {
	a := mustBuild(t, builder.Alkane(3))
	b, _, err := builder.Shuffle(a, 9)
	require.NoError(t, err)

	r1, err := symmetry.Resolve(side(a), side(b), symmetry.WithMaxCandidates(50))
	require.NoError(t, err)
	r2, err := symmetry.Resolve(side(a), side(b), symmetry.WithMaxCandidates(50))
	require.NoError(t, err)
	assert.Equal(t, r1.Candidates, r2.Candidates)
}

func TestResolve_UntypedBondsMatchConnectivity(t *testing.T) {
	a := mustBuild(t, builder.Ethane())
	perm := []int{2, 0, 3, 4, 1, 5, 6, 7}
	b, err := builder.Permute(a, perm)
	require.NoError(t, err)

	// B carries the same bonds with no orders
	untyped := symmetry.Side{Numbers: b.AtomicNumbers(), Graph: b.Graph().Untyped()}
	res, err := symmetry.Resolve(side(a), untyped)
	require.NoError(t, err)
	assert.True(t, res.Graphs, "untyped bonds must not force the identity fallback")
	assert.True(t, res.Exhaustive)
	assert.Len(t, res.Candidates, 72)

	want := symmetry.Correspondence(perm).Inverse()
	found := false
	for _, c := range res.Candidates {
		if c.Equal(want) {
			found = true
		}
	}
	assert.True(t, found, "inverse permutation %v missing", want)

	// one untyped bond is enough to drop orders on both sides
	bonds := a.Graph().Bonds()
	bonds[0].Order = 0
	mixed := symmetry.Side{Numbers: a.AtomicNumbers(), Graph: mustGraph(t, a.Len(), bonds)}
	res, err = symmetry.Resolve(side(a), mixed)
	require.NoError(t, err)
	assert.True(t, res.Graphs)
	assert.Len(t, res.Candidates, 72)
}

func TestResolve_ContextCancelled(t *testing.T) {
	m := mustBuild(t, builder.Methane())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := symmetry.Resolve(side(m), side(m), symmetry.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// without graphs there is nothing to search and the context is not consulted
	res, err := symmetry.Resolve(symmetry.Side{Numbers: []int{8, 1, 1}}, symmetry.Side{Numbers: []int{8, 1, 1}},
		symmetry.WithContext(ctx))
	require.NoError(t, err)
	assert.Len(t, res.Candidates, 1)
}
