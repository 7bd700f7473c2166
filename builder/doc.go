// Package builder provides reusable “functional-options”-style molecule
// fixtures for the alignment, symmetry and conversion packages. It keeps test
// geometries in one place so every package measures against the same atoms.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  RNG, output unit, uniform scale, jitter.
//   - Constructors (Constructor implementations, Angstrom geometry):
//     – Water, Methane, Ethane, FormicAcid: fixed small molecules with
//     documented atom order.
//     – Alkane(n):       zigzag CnH2n+2, carbons first.
//     – Ring(n), Benzene: planar aromatic CnHn (ring bond order 1.5).
//     – Star(c, l, n):   centre with n ligands on a Fibonacci sphere.
//     – Shifted(t, con): translate a sub-fragment to build clusters.
//   - Variants of an existing molecule:
//     – Permute, Shuffle: relabel atoms (bonds follow).
//     – Transformed, Rotated: rigid motions.
//     – Jittered:        Gaussian coordinate noise.
//
// Guarantees:
//
//   - Deterministic output for identical options, seed and constructor order.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel runtime errors (ErrTooFewAtoms, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with the constructor name.
//
// Example:
//
//	m, err := builder.Build(builder.Ethane(), builder.WithUnit(core.Bohr))
//	shuffled, perm, err := builder.Shuffle(m, 42)
package builder
