package align_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/molalign/align"
	"github.com/katalvlaran/molalign/builder"
	"github.com/katalvlaran/molalign/config"
	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/geometry"
	"github.com/katalvlaran/molalign/matrix"
	"github.com/katalvlaran/molalign/symmetry"
)

const tol = 1e-6

func mustMol(t *testing.T, con builder.Constructor, opts ...builder.BuilderOption) *core.Molecule {
	t.Helper()
	m, err := builder.Build(con, append([]builder.BuilderOption{builder.WithUnit(core.Bohr)}, opts...)...)
	require.NoError(t, err)
	return m
}

func mustRotated(t *testing.T, m *core.Molecule, axis string, deg float64, shift core.Vec3) *core.Molecule {
	t.Helper()
	r, err := builder.Rotated(m, axis, deg, shift)
	require.NoError(t, err)
	return r
}

// noisyEthane is ethane with reproducible distortion, so RMSDs are non-zero.
func noisyEthane(t *testing.T, seed int64) *core.Molecule {
	return mustMol(t, builder.Ethane(), builder.WithSeed(seed), builder.WithJitter(0.08))
}

func TestRMSD_NonNegativeAndSymmetric(t *testing.T) {
	a, b := noisyEthane(t, 1), noisyEthane(t, 2)
	for _, sym := range []bool{false, true} {
		ab, err := align.RMSD(a, b, align.WithSymmetry(sym))
		require.NoError(t, err)
		ba, err := align.RMSD(b, a, align.WithSymmetry(sym))
		require.NoError(t, err)

		assert.Greater(t, ab.RMSD, 0.0)
		assert.InDelta(t, ab.RMSD, ba.RMSD, tol, "symmetry=%v", sym)
		assert.True(t, ab.Rotation.IsRotation(matrix.WithEpsilon(tol)))
	}
}

func TestRMSD_SelfIsZero(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"water": builder.Water(), "methane": builder.Methane(),
		"benzene": builder.Benzene(), "butane": builder.Alkane(4),
	} {
		m := mustMol(t, con)
		res, err := align.RMSD(m, m)
		require.NoError(t, err, name)
		assert.InDelta(t, 0, res.RMSD, tol, name)
		assert.True(t, res.Exhaustive, name)
	}
}

func TestRMSD_TiesKeepEarlierCandidate(t *testing.T) {
	m := mustMol(t, builder.Methane())
	// every proper symmetry operation of methane scores within rounding of 0
	res, err := align.RMSD(m, m)
	require.NoError(t, err)
	assert.Equal(t, 24, res.Candidates)
	assert.True(t, res.Correspondence.IsIdentity(), "got %v", res.Correspondence)
}

func TestRMSD_RigidImageKeepsIdentity(t *testing.T) {
	shapes := map[string]builder.Constructor{
		"methane": builder.Methane(), "ethane": builder.Ethane(),
		"benzene": builder.Benzene(), "water": builder.Water(),
	}
	motions := []struct {
		axis  string
		deg   float64
		shift core.Vec3
	}{
		{"x", 43, core.Vec3{1.5, -2, 0.25}},
		{"y", 17, core.Vec3{0, 0, 9}},
		{"z", 120, core.Vec3{-3, 4, -5}},
		{"x", -97, core.Vec3{}},
		{"z", 251, core.Vec3{0.1, 0.2, 0.3}},
	}
	for name, con := range shapes {
		a := mustMol(t, con)
		for _, mv := range motions {
			// a second turn about z takes the axis off the coordinate frame
			b := mustRotated(t, a, mv.axis, mv.deg, mv.shift)
			b = mustRotated(t, b, "z", mv.deg/3, core.Vec3{})

			res, err := align.RMSD(a, b)
			require.NoError(t, err, name)
			assert.InDelta(t, 0, res.RMSD, tol, "%s %s%.0f", name, mv.axis, mv.deg)
			assert.True(t, res.Correspondence.IsIdentity(),
				"%s %s%.0f: got %v", name, mv.axis, mv.deg, res.Correspondence)
		}
	}
}

func TestRMSD_ContextCancelled(t *testing.T) {
	m := mustMol(t, builder.Methane())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := align.New().RMSDContext(ctx, m, m)
	assert.ErrorIs(t, err, context.Canceled)
	_, _, err = align.New().AlignContext(ctx, m, m)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = align.New().RMSDContext(context.Background(), m, m)
	assert.NoError(t, err)
}

func TestRMSD_RigidInvariance(t *testing.T) {
	a, b := noisyEthane(t, 3), noisyEthane(t, 4)
	base, err := align.RMSD(a, b)
	require.NoError(t, err)

	moved := mustRotated(t, b, "x", 73, core.Vec3{-4, 2.5, 11})
	moved = mustRotated(t, moved, "z", -141, core.Vec3{})
	res, err := align.RMSD(a, moved)
	require.NoError(t, err)
	assert.InDelta(t, base.RMSD, res.RMSD, tol)

	res, err = align.RMSD(mustRotated(t, a, "y", 12, core.Vec3{1, 1, 1}), b)
	require.NoError(t, err)
	assert.InDelta(t, base.RMSD, res.RMSD, tol)
}

func TestRMSD_SymmetricNeverWorse(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 5; k++ {
		a := noisyEthane(t, rng.Int63())
		b, _, err := builder.Shuffle(noisyEthane(t, rng.Int63()), rng.Int63())
		require.NoError(t, err)
		if !core.SameElements(a.AtomicNumbers(), b.AtomicNumbers()) {
			t.Fatal("fixture elements differ")
		}

		sym, err := align.RMSD(a, b)
		require.NoError(t, err)
		plain, err := align.RMSD(a, b, align.WithSymmetry(false))
		require.NoError(t, err)
		assert.LessOrEqual(t, sym.RMSD, plain.RMSD+tol)
	}
}

func TestRMSD_RecoversRigidMotion(t *testing.T) {
	a := mustMol(t, builder.FormicAcid())
	rot, err := geometry.RotationAbout("y", 40)
	require.NoError(t, err)
	shift := core.Vec3{3, -1, 7}
	b, err := builder.Transformed(a, geometry.Transform{Rotation: rot, Translation: shift})
	require.NoError(t, err)

	res, err := align.RMSD(a, b, align.WithSymmetry(false))
	require.NoError(t, err)
	assert.InDelta(t, 0, res.RMSD, tol)
	// b = R·a + t, so a = Rᵗ·b − Rᵗ·t
	inv := geometry.Transform{Rotation: rot, Translation: shift}.Inverse()
	assert.True(t, res.Rotation.AllClose(inv.Rotation, matrix.WithEpsilon(tol)), "got %v", res.Rotation)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, inv.Translation[k], res.Translation[k], tol)
	}
}

func TestRMSD_LinearRotatedTranslated(t *testing.T) {
	a, err := core.NewMolecule([]string{"C", "C", "C"}, []core.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	require.NoError(t, err)
	b := mustRotated(t, a, "z", 90, core.Vec3{5, 5, 5})

	res, err := align.RMSD(a, b, align.WithSymmetry(false))
	require.NoError(t, err)
	assert.InDelta(t, 0, res.RMSD, tol)
	assert.True(t, res.Rotation.IsRotation(matrix.WithEpsilon(tol)))
}

func TestRMSD_SwappedMethylHydrogens(t *testing.T) {
	a := noisyEthane(t, 8)
	// atoms 6 and 7 are both hydrogens on C1
	b, err := builder.Permute(a, []int{0, 1, 2, 3, 4, 5, 7, 6})
	require.NoError(t, err)

	plain, err := align.RMSD(a, b, align.WithSymmetry(false))
	require.NoError(t, err)
	assert.Greater(t, plain.RMSD, 0.1)

	sym, err := align.RMSD(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0, sym.RMSD, tol)
	assert.Equal(t, symmetry.Correspondence{0, 1, 2, 3, 4, 5, 7, 6}, sym.Correspondence)
	assert.Equal(t, 72, sym.Candidates)
}

func TestRMSD_Errors(t *testing.T) {
	water := mustMol(t, builder.Water())
	methane := mustMol(t, builder.Methane())

	_, err := align.RMSD(water, methane)
	assert.True(t, errors.Is(err, core.ErrShapeMismatch))

	h2o2, err := core.NewMolecule([]string{"O", "O", "H"}, []core.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	_, err = align.RMSD(water, h2o2)
	assert.True(t, errors.Is(err, core.ErrStructureMismatch))
	_, err = align.RMSD(water, h2o2, align.WithSymmetry(false))
	assert.True(t, errors.Is(err, core.ErrStructureMismatch))

	empty, err := core.NewMolecule(nil, nil)
	require.NoError(t, err)
	_, err = align.RMSD(empty, empty)
	assert.True(t, errors.Is(err, core.ErrDegenerateGeometry))

	_, err = align.RMSD(nil, water)
	assert.Error(t, err)
}

func TestRMSD_ReorderedWithoutBonds(t *testing.T) {
	a, err := core.NewMolecule([]string{"O", "H", "H"}, []core.Vec3{{0, 0, 0}, {1.4, 1.1, 0}, {-1.4, 1.1, 0}})
	require.NoError(t, err)
	b, err := core.NewMolecule([]string{"H", "O", "H"}, []core.Vec3{{1.4, 1.1, 0}, {0, 0, 0}, {-1.4, 1.1, 0}})
	require.NoError(t, err)

	// no connectivity: a reordered atom list cannot be resolved
	_, err = align.RMSD(a, b)
	assert.True(t, errors.Is(err, core.ErrStructureMismatch))
}

func TestRMSD_Units(t *testing.T) {
	a, b := noisyEthane(t, 5), noisyEthane(t, 6)
	bohr, err := align.RMSD(a, b)
	require.NoError(t, err)
	ang, err := align.RMSD(a, b, align.WithLengthUnit(core.Angstrom))
	require.NoError(t, err)

	assert.Equal(t, core.Bohr, bohr.Unit)
	assert.Equal(t, core.Angstrom, ang.Unit)
	assert.InDelta(t, bohr.RMSD*core.BohrToAngstrom, ang.RMSD, tol)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, bohr.Translation[k]*core.BohrToAngstrom, ang.Translation[k], tol)
	}

	// mixed input units are converted before comparison
	bAng, err := b.InUnit(core.Angstrom)
	require.NoError(t, err)
	mixed, err := align.RMSD(a, bAng)
	require.NoError(t, err)
	assert.InDelta(t, bohr.RMSD, mixed.RMSD, tol)
}

func TestRMSD_WithoutSuperposition(t *testing.T) {
	a := mustMol(t, builder.Methane())
	b := mustRotated(t, a, "z", 0, core.Vec3{3, 4, 0})

	res, err := align.RMSD(a, b, align.WithSuperposition(false))
	require.NoError(t, err)
	assert.InDelta(t, 5, res.RMSD, tol)
	assert.Equal(t, matrix.Identity(), res.Rotation)
	assert.Equal(t, core.Vec3{}, res.Translation)

	fitted, err := align.RMSD(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0, fitted.RMSD, tol)
}

func TestRMSD_CappedSearchDeterministic(t *testing.T) {
	a := mustMol(t, builder.Alkane(4))
	c := mustRotated(t, a, "x", 30, core.Vec3{})
	e := align.New(align.WithMaxCandidates(5), align.WithLogger(zaptest.NewLogger(t)))
	r1, err := e.RMSD(a, c)
	require.NoError(t, err)
	r2, err := e.RMSD(a, c)
	require.NoError(t, err)

	assert.False(t, r1.Exhaustive)
	assert.Equal(t, 5, r1.Candidates)
	assert.Equal(t, r1, r2)
}

func TestAlign_MovesMobileOntoReference(t *testing.T) {
	ref := mustMol(t, builder.FormicAcid())
	mobileBohr := mustRotated(t, ref, "x", 120, core.Vec3{-2, 0, 9})
	mobile, err := mobileBohr.InUnit(core.Angstrom)
	require.NoError(t, err)

	moved, res, err := align.Align(mobile, ref)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.RMSD, tol)

	m, ok := moved.(*core.Molecule)
	require.True(t, ok)
	assert.Equal(t, core.Angstrom, m.LengthUnit(), "mobile keeps its unit")
	assert.Equal(t, mobile.AtomicNumbers(), m.AtomicNumbers(), "mobile keeps its atom order")
	assert.Equal(t, mobile.Bonds(), m.Bonds())

	refAng, err := ref.InUnit(core.Angstrom)
	require.NoError(t, err)
	want, got := refAng.Coordinates(), m.Coordinates()
	for i := range want {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, want[i][k], got[i][k], tol, "atom %d", i)
		}
	}
	assert.NotEqual(t, mobile.Coordinates(), got, "input must not be mutated")
}

func TestAlign_SymmetricMobileKeepsOrder(t *testing.T) {
	ref := mustMol(t, builder.Ethane())
	swapped, err := builder.Permute(ref, []int{0, 1, 3, 2, 4, 5, 6, 7})
	require.NoError(t, err)
	mobile := mustRotated(t, swapped, "y", 55, core.Vec3{1, 2, 3})

	moved, res, err := align.Align(mobile, ref)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.RMSD, tol)

	// moved atom j sits on the reference atom paired with it
	got, want := moved.Coordinates(), ref.Coordinates()
	for i, j := range res.Correspondence {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, want[i][k], got[j][k], tol)
		}
	}
}

func TestEngine_Options(t *testing.T) {
	assert.Panics(t, func() { align.WithMaxCandidates(0) })
	assert.Panics(t, func() { align.WithTieTolerance(-1) })
	assert.Panics(t, func() { align.WithTieTolerance(math.NaN()) })
	assert.Panics(t, func() { align.WithLengthUnit("parsec") })

	bad := config.Default()
	bad.MaxCandidates = 0
	assert.Panics(t, func() { align.WithConfig(bad) })

	cfg := config.Default()
	cfg.Symmetry = false
	cfg.LengthUnit = "angstrom"
	cfg.MaxCandidates = 7
	o := align.New(align.WithConfig(cfg), align.WithLogger(nil)).Options()
	assert.False(t, o.Symmetry)
	assert.True(t, o.Superposition)
	assert.Equal(t, core.Angstrom, o.Unit)
	assert.Equal(t, 7, o.MaxCandidates)
	assert.NotNil(t, o.Logger)

	d := align.New().Options()
	assert.Equal(t, align.DefaultTieTolerance, d.TieTolerance)
	assert.Equal(t, symmetry.DefaultMaxCandidates, d.MaxCandidates)
	assert.Equal(t, core.Bohr, d.Unit)
}
