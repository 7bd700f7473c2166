// SPDX-License-Identifier: MIT
// Package core: coordinates, atom sets and capability interfaces.

package core

import (
	"fmt"
	"math"
)

// Vec3 is a Cartesian point or displacement.
type Vec3 [3]float64

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s*v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v[0], s * v[1], s * v[2]} }

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Norm2 returns |v|².
func (v Vec3) Norm2() float64 { return v.Dot(v) }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Bond is an undirected chemical bond between atoms I and J.
// Order is the bond order; 0 means "untyped". When either structure of a pair
// has an untyped bond, the symmetry resolver drops orders on both sides and
// matches connectivity only.
type Bond struct {
	I, J  int
	Order float64
}

// Structure is the minimal capability an external structure object must
// expose to be aligned: element identities, coordinates and their unit.
// Implementations must return slices of equal length.
type Structure interface {
	AtomicNumbers() []int
	Coordinates() []Vec3
	LengthUnit() LengthUnit
}

// Bonded is an optional capability: structures exposing connectivity enable
// symmetry-aware correspondence search.
type Bonded interface {
	Bonds() []Bond
}

// Rebuilder is an optional capability: structures that can clone themselves
// with replaced coordinates (same unit, same atom order).
type Rebuilder interface {
	WithCoordinates(coords []Vec3) (Structure, error)
}

// AtomSet is the plain numeric view of a structure used by the kernel and
// resolver. Index position is the atom identity within the structure.
type AtomSet struct {
	Numbers []int
	Coords  []Vec3
	Unit    LengthUnit
}

// NewAtomSet copies numbers and coords into a validated AtomSet.
//
// Errors:
//   - ErrShapeMismatch if len(numbers) != len(coords).
//   - ErrUnknownElement for an atomic number outside 1..118.
//   - ErrNonFinite for a NaN/Inf coordinate.
//   - ErrUnknownUnit for an unsupported unit.
func NewAtomSet(numbers []int, coords []Vec3, unit LengthUnit) (*AtomSet, error) {
	a := &AtomSet{
		Numbers: append([]int(nil), numbers...),
		Coords:  append([]Vec3(nil), coords...),
		Unit:    unit,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Len returns the number of atoms.
func (a *AtomSet) Len() int { return len(a.Numbers) }

// Validate checks the AtomSet invariants.
func (a *AtomSet) Validate() error {
	if len(a.Numbers) != len(a.Coords) {
		return fmt.Errorf("core: %d atomic numbers vs %d coordinates: %w",
			len(a.Numbers), len(a.Coords), ErrShapeMismatch)
	}
	if err := a.Unit.Validate(); err != nil {
		return err
	}
	for i, z := range a.Numbers {
		if _, err := SymbolOf(z); err != nil {
			return fmt.Errorf("core: atom %d: %w", i, err)
		}
	}
	for i, c := range a.Coords {
		if !c.IsFinite() {
			return fmt.Errorf("core: atom %d coordinate %v: %w", i, c, ErrNonFinite)
		}
	}

	return nil
}

// InUnit returns a copy of the coordinates expressed in unit u.
func (a *AtomSet) InUnit(u LengthUnit) ([]Vec3, error) {
	f, err := a.Unit.Factor(u)
	if err != nil {
		return nil, err
	}
	out := make([]Vec3, len(a.Coords))
	for i, c := range a.Coords {
		out[i] = c.Scale(f)
	}

	return out, nil
}

// ElementCounts returns the element multiset as atomic number -> count.
func (a *AtomSet) ElementCounts() map[int]int {
	counts := make(map[int]int, len(a.Numbers))
	for _, z := range a.Numbers {
		counts[z]++
	}

	return counts
}

// SameElements reports whether a and b carry the same element multiset.
func SameElements(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, z := range a {
		counts[z]++
	}
	for _, z := range b {
		counts[z]--
		if counts[z] < 0 {
			return false
		}
	}

	return true
}
