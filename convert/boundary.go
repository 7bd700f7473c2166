// SPDX-License-Identifier: MIT
// File: boundary.go
// Role: adapt external structure objects to the numeric view used by the
// kernel and resolver, and back.
// Policy:
//   - Inputs are never mutated; every returned slice is a copy.

package convert

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/molalign/core"
)

// Extract returns the validated numeric view of s and its bond graph. The
// graph is nil unless s implements core.Bonded with at least one bond.
//
// Errors:
//   - ErrNilStructure for a nil s.
//   - AtomSet validation errors (core.ErrShapeMismatch, core.ErrUnknownElement,
//     core.ErrNonFinite, core.ErrUnknownUnit).
//   - BondGraph errors (core.ErrAtomOutOfRange, core.ErrLoopNotAllowed,
//     core.ErrMultiBondNotAllowed).
func Extract(s core.Structure) (*core.AtomSet, *core.BondGraph, error) {
	if s == nil {
		return nil, nil, ErrNilStructure
	}
	set, err := core.NewAtomSet(s.AtomicNumbers(), s.Coordinates(), s.LengthUnit())
	if err != nil {
		return nil, nil, fmt.Errorf("convert: extract: %w", err)
	}
	if m, ok := s.(*core.Molecule); ok {
		return set, m.Graph(), nil
	}
	b, ok := s.(core.Bonded)
	if !ok {
		return set, nil, nil
	}
	bonds := b.Bonds()
	if len(bonds) == 0 {
		return set, nil, nil
	}
	g, err := core.NewBondGraph(set.Len(), bonds)
	if err != nil {
		return nil, nil, fmt.Errorf("convert: extract bonds: %w", err)
	}

	return set, g, nil
}

// Rebuild returns a structure like s but carrying coords (same unit, same
// atom order). It defers to core.Rebuilder when s implements it and
// otherwise builds a *core.Molecule, keeping bonds when s is core.Bonded.
//
// Errors:
//   - ErrNilStructure for a nil s.
//   - core.ErrShapeMismatch if len(coords) differs from the atom count.
//   - whatever the Rebuilder or core.FromNumbers returns.
func Rebuild(s core.Structure, coords []core.Vec3) (core.Structure, error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	if r, ok := s.(core.Rebuilder); ok {
		return r.WithCoordinates(coords)
	}
	opts := []core.MoleculeOption{core.WithUnit(s.LengthUnit())}
	if b, ok := s.(core.Bonded); ok {
		opts = append(opts, core.WithBonds(b.Bonds()))
	}
	m, err := core.FromNumbers(s.AtomicNumbers(), coords, opts...)
	if err != nil {
		return nil, fmt.Errorf("convert: rebuild: %w", err)
	}

	return m, nil
}

// Formula renders atomic numbers in Hill order: C, then H, then the other
// elements alphabetically; counts of 1 are omitted. Without carbon every
// element is alphabetical. Unknown numbers render as "Z<n>".
func Formula(numbers []int) string {
	counts := make(map[string]int)
	for _, z := range numbers {
		sym, err := core.SymbolOf(z)
		if err != nil {
			sym = "Z" + strconv.Itoa(z)
		}
		counts[sym]++
	}
	syms := make([]string, 0, len(counts))
	for s := range counts {
		syms = append(syms, s)
	}
	_, hasC := counts["C"]
	rank := func(s string) int {
		if !hasC {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}

		return 2
	}
	sort.Slice(syms, func(i, j int) bool {
		ri, rj := rank(syms[i]), rank(syms[j])
		if ri != rj {
			return ri < rj
		}

		return syms[i] < syms[j]
	})

	var sb strings.Builder
	for _, s := range syms {
		sb.WriteString(s)
		if c := counts[s]; c > 1 {
			sb.WriteString(strconv.Itoa(c))
		}
	}

	return sb.String()
}
