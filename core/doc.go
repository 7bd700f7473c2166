// SPDX-License-Identifier: MIT

// Package core defines the molecular data model shared by every molalign
// package: coordinates, atom sets, bond graphs and the narrow capability
// interfaces through which external structure objects are consumed.
//
// The model is deliberately small:
//
//   - Vec3       - a Cartesian point, [3]float64.
//   - LengthUnit - Bohr (default) or Angstrom; declared once per AtomSet.
//   - AtomSet    - atomic numbers + coordinates + unit, index = atom identity.
//   - Bond       - an undirected edge (I, J) with an optional bond order.
//   - BondGraph  - immutable undirected graph over atom indices 0..n-1.
//   - Molecule   - concrete in-memory structure implementing Structure,
//     Bonded and Rebuilder.
//
// Capability interfaces:
//
//	Structure  AtomicNumbers() []int; Coordinates() []Vec3; LengthUnit() LengthUnit
//	Bonded     Bonds() []Bond
//	Rebuilder  WithCoordinates([]Vec3) (Structure, error)
//
// External structure libraries only need to satisfy Structure; Bonded and
// Rebuilder are optional and discovered with type assertions.
//
// Determinism:
//
//	BondGraph.Neighbors and BondGraph.Bonds return sorted results so every
//	algorithm built on top of them iterates in a stable order.
//
// Concurrency:
//
//	Every type in this package is immutable after construction (constructors
//	copy their inputs, accessors return copies). Values may be shared across
//	goroutines without locking.
//
// Errors:
//
//	ErrShapeMismatch        atom counts (or coordinate arrays) differ
//	ErrStructureMismatch    element multisets differ
//	ErrDegenerateGeometry   no atoms, or an undecomposable covariance
//	ErrConversionFailure    external toolkit failure
//	ErrUnknownUnit          unsupported LengthUnit
//	ErrUnknownElement       unknown element symbol or atomic number
//	ErrAtomOutOfRange       bond endpoint outside 0..n-1
//	ErrLoopNotAllowed       bond from an atom to itself
//	ErrMultiBondNotAllowed  duplicate bond between the same pair
//	ErrNonFinite            NaN or Inf coordinate
//	ErrInvalidMultiplicity  spin multiplicity below 1
package core
