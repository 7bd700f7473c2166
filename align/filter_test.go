package align_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molalign/align"
	"github.com/katalvlaran/molalign/builder"
	"github.com/katalvlaran/molalign/config"
	"github.com/katalvlaran/molalign/core"
)

// conformerSet returns ethane, a rigid copy of it, a stretched ethane and a
// slightly perturbed copy of the stretched one.
func conformerSet(t *testing.T) []core.Structure {
	t.Helper()
	e0 := mustMol(t, builder.Ethane())
	e1 := mustRotated(t, e0, "x", 64, core.Vec3{2, -3, 1})
	e2 := mustMol(t, builder.Ethane(), builder.WithBondScale(2))
	e3, err := builder.Jittered(e2, 0.01, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	return []core.Structure{e0, e1, e2, e3}
}

func TestFilterConformerIndices(t *testing.T) {
	confs := conformerSet(t)

	keep, err := align.FilterConformerIndices(confs, align.DefaultFilterThreshold)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, keep)

	// the same threshold expressed in Angstrom
	keep, err = align.FilterConformerIndices(confs, 0.5, align.WithLengthUnit(core.Angstrom))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, keep)

	// nothing is within a zero threshold, strictly
	keep, err = align.FilterConformerIndices(confs[2:], 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, keep)

	// a generous threshold keeps only the first
	keep, err = align.FilterConformerIndices(confs, 100)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, keep)
}

func TestFilterConformers_KeepsOrder(t *testing.T) {
	confs := conformerSet(t)
	out, err := align.FilterConformers(confs, align.DefaultFilterThreshold)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Same(t, confs[0], out[0])
	assert.Same(t, confs[2], out[1])

	out, err = align.FilterConformers(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilterConformers_Errors(t *testing.T) {
	confs := conformerSet(t)
	for _, th := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := align.FilterConformerIndices(confs, th)
		assert.True(t, errors.Is(err, align.ErrOptionViolation), "threshold %v", th)
	}

	water := mustMol(t, builder.Water())
	_, err := align.FilterConformers(append(confs, water), 1)
	assert.True(t, errors.Is(err, core.ErrShapeMismatch))
	assert.Contains(t, err.Error(), "conformers 0 and 4")
}

// constantBackend reports the same RMSD for every pair.
type constantBackend struct {
	rmsd float64
	unit core.LengthUnit
}

func (c constantBackend) RMSD(_, _ core.Structure) (*align.Result, error) {
	return &align.Result{RMSD: c.rmsd, Unit: c.unit}, nil
}

func (c constantBackend) Align(_, _ core.Structure) (core.Structure, *align.Result, error) {
	return nil, nil, errors.New("constantBackend: Align not supported")
}

func TestFilterConformerIndicesWith_ConvertsUnits(t *testing.T) {
	confs := conformerSet(t)
	b := constantBackend{rmsd: 0.9, unit: core.Bohr}

	// 0.9 Bohr is about 0.476 Angstrom
	keep, err := align.FilterConformerIndicesWith(b, confs, 0.5, core.Angstrom)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, keep)

	keep, err = align.FilterConformerIndicesWith(b, confs, 0.45, core.Angstrom)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, keep)

	_, err = align.FilterConformerIndicesWith(nil, confs, 1, core.Bohr)
	assert.ErrorIs(t, err, align.ErrOptionViolation)
	_, err = align.FilterConformerIndicesWith(b, confs, 1, core.LengthUnit("parsec"))
	assert.ErrorIs(t, err, align.ErrOptionViolation)
}

func TestFilterConformerIndicesConfig(t *testing.T) {
	confs := conformerSet(t)

	cfg := config.Default()
	cfg.LengthUnit = "angstrom"
	cfg.FilterThreshold = 0.5
	keep, err := align.FilterConformerIndicesConfig(confs, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, keep)

	// the backend named in the configuration is the one consulted
	err = align.Register("constant-0.9-bohr", constantBackend{rmsd: 0.9, unit: core.Bohr})
	if !errors.Is(err, align.ErrBackendExists) {
		require.NoError(t, err)
	}
	cfg.Backend = "constant-0.9-bohr"
	keep, err = align.FilterConformerIndicesConfig(confs, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, keep)

	cfg.Backend = "no-such-backend"
	_, err = align.FilterConformerIndicesConfig(confs, cfg)
	assert.ErrorIs(t, err, align.ErrUnknownBackend)

	bad := config.Default()
	bad.MaxCandidates = 0
	_, err = align.FilterConformerIndicesConfig(confs, bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
