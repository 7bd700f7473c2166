// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// variants.go - derived copies of an existing molecule: relabelled, moved or
// perturbed. Every function returns a fresh *core.Molecule and never mutates
// its input.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/geometry"
)

// Permute relabels m so that new atom i is old atom perm[i]. Elements,
// coordinates and bonds travel together; unit, charge and multiplicity stay.
//
// Errors:
//   - core.ErrShapeMismatch if len(perm) != m.Len().
//   - core.ErrAtomOutOfRange if perm is not a permutation of 0..n-1.
func Permute(m *core.Molecule, perm []int) (*core.Molecule, error) {
	n := m.Len()
	if len(perm) != n {
		return nil, fmt.Errorf("Permute: %d indices for %d atoms: %w", len(perm), n, core.ErrShapeMismatch)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("Permute: index %d: %w", p, core.ErrAtomOutOfRange)
		}
		seen[p] = true
	}

	nums := m.AtomicNumbers()
	outNums := make([]int, n)
	for i, p := range perm {
		outNums[i] = nums[p]
	}
	opts := []core.MoleculeOption{
		core.WithUnit(m.LengthUnit()),
		core.WithCharge(m.Charge()),
		core.WithMultiplicity(m.Multiplicity()),
	}
	if g := m.Graph(); g != nil {
		pg, err := g.Permute(perm)
		if err != nil {
			return nil, fmt.Errorf("Permute: %w", err)
		}
		opts = append(opts, core.WithBonds(pg.Bonds()))
	}

	return core.FromNumbers(outNums, geometry.Reorder(m.Coordinates(), perm), opts...)
}

// Shuffle applies a seeded random permutation and returns it alongside the
// relabelled molecule (new atom i is old atom perm[i]).
func Shuffle(m *core.Molecule, seed int64) (*core.Molecule, []int, error) {
	perm := rand.New(rand.NewSource(seed)).Perm(m.Len())
	out, err := Permute(m, perm)
	if err != nil {
		return nil, nil, err
	}

	return out, perm, nil
}

// Transformed returns m moved rigidly by t (translation in m's unit).
func Transformed(m *core.Molecule, t geometry.Transform) (*core.Molecule, error) {
	return m.Moved(t.Apply(m.Coordinates()))
}

// Rotated returns m rotated by degrees about a Cartesian axis and then
// translated by shift (in m's unit).
//
// Errors:
//   - geometry.ErrUnknownAxis for an axis other than x, y, z.
func Rotated(m *core.Molecule, axis string, degrees float64, shift core.Vec3) (*core.Molecule, error) {
	r, err := geometry.RotationAbout(axis, degrees)
	if err != nil {
		return nil, err
	}

	return Transformed(m, geometry.Transform{Rotation: r, Translation: shift})
}

// Jittered returns m with N(0, sigma²) noise (in m's unit) on every coordinate.
//
// Errors:
//   - ErrNeedRandSource if sigma > 0 and rng is nil.
func Jittered(m *core.Molecule, sigma float64, rng *rand.Rand) (*core.Molecule, error) {
	if sigma > 0 && rng == nil {
		return nil, fmt.Errorf("Jittered: %w", ErrNeedRandSource)
	}
	coords := m.Coordinates()
	if sigma > 0 {
		for i := range coords {
			coords[i] = coords[i].Add(core.Vec3{
				sigma * rng.NormFloat64(),
				sigma * rng.NormFloat64(),
				sigma * rng.NormFloat64(),
			})
		}
	}

	return m.Moved(coords)
}
