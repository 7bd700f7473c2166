// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMolecule(bopts, cons...). Resolves cfg, runs cons
//     in order into one fragment, then post-processes (scale, jitter, unit).
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical molecules.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose several constructors (with Shifted) to assemble clusters.
//   - Use WithSeed(...) together with WithJitter(...) for reproducible noise.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molalign/core"
)

// fragment accumulates atoms and bonds while constructors run. Coordinates
// are in Angstrom until BuildMolecule converts them.
type fragment struct {
	symbols []string
	coords  []core.Vec3
	bonds   []core.Bond
}

// addAtom appends an atom and returns its index.
func (f *fragment) addAtom(symbol string, at core.Vec3) int {
	f.symbols = append(f.symbols, symbol)
	f.coords = append(f.coords, at)

	return len(f.symbols) - 1
}

// addBond appends a bond of the given order.
func (f *fragment) addBond(i, j int, order float64) {
	f.bonds = append(f.bonds, core.Bond{I: i, J: j, Order: order})
}

// Constructor appends a deterministic set of atoms and bonds to the fragment
// using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only reference atoms they added themselves (indices >= len at entry).
//   - Preserve determinism for the same config and call order.
type Constructor func(f *fragment, cfg builderConfig) error

// BuildMolecule resolves the builder configuration from bopts, applies all
// constructors in order, and returns the resulting molecule.
//
// Implementation:
//   - Stage 1: Run constructors into a shared fragment (Angstrom).
//   - Stage 2: Scale by cfg.bondScale and add cfg.jitter noise (seeded RNG).
//   - Stage 3: Convert to cfg.unit and build a core.Molecule with bonds.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or an empty result.
//   - ErrNeedRandSource if jitter is requested without WithSeed/WithRand.
//   - Constructor sentinels (ErrTooFewAtoms) and core validation errors, wrapped.
func BuildMolecule(bopts []BuilderOption, cons ...Constructor) (*core.Molecule, error) {
	cfg := newBuilderConfig(bopts...)
	f := &fragment{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMolecule: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("BuildMolecule: %w", err)
		}
	}
	if len(f.symbols) == 0 {
		return nil, fmt.Errorf("BuildMolecule: no atoms: %w", ErrConstructFailed)
	}

	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("BuildMolecule: jitter %.3g: %w", cfg.jitter, ErrNeedRandSource)
	}
	factor, err := core.Angstrom.Factor(cfg.unit)
	if err != nil {
		return nil, fmt.Errorf("BuildMolecule: %w", err)
	}
	for i := range f.coords {
		p := f.coords[i].Scale(cfg.bondScale)
		if cfg.jitter > 0 {
			p = p.Add(core.Vec3{
				cfg.jitter * cfg.rng.NormFloat64(),
				cfg.jitter * cfg.rng.NormFloat64(),
				cfg.jitter * cfg.rng.NormFloat64(),
			})
		}
		f.coords[i] = p.Scale(factor)
	}

	m, err := core.NewMolecule(f.symbols, f.coords,
		core.WithUnit(cfg.unit),
		core.WithBonds(f.bonds),
	)
	if err != nil {
		return nil, fmt.Errorf("BuildMolecule: %w", err)
	}

	return m, nil
}

// Build is BuildMolecule for a single constructor with options.
func Build(con Constructor, bopts ...BuilderOption) (*core.Molecule, error) {
	return BuildMolecule(bopts, con)
}

// =============================================================================
// Factories - implemented in impl_*.go
// =============================================================================
//
// Water()              H2O, atoms O, H, H.
// Methane()            CH4, C first then four H (tetrahedral).
// Ethane()             C2H6 staggered; C0, C1, H on C0, H on C1.
// FormicAcid()         HCOOH with a C=O double bond (orders 2 and 1).
// Alkane(n)            CnH2n+2 zigzag chain, carbons first then hydrogens.
// Ring(n)              planar CnHn ring with aromatic (1.5) ring bonds.
// Star(c, l, n)        centre c with n ligands l on a sphere.
// Shifted(t, con)      translate the atoms con adds by t (Angstrom).
