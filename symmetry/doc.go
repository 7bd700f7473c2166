// Package symmetry resolves atom correspondences between two structures of
// the same molecule whose atoms may be listed in different orders, or whose
// symmetric groups (a rotating -CH3, the two oxygens of a carboxylate) may be
// labelled differently.
//
// A Correspondence c maps A onto B: c[i] is the atom of B paired with atom i
// of A. Resolve enumerates the correspondences that preserve elements and,
// when both structures carry bond graphs, bonds and bond orders: the
// isomorphisms between the two labelled graphs.
//
// Algorithm
//
//   - Colour refinement partitions atoms by element, degree, bond orders and,
//     iteratively, the colours of their neighbours. Only equally coloured atoms
//     may correspond, which collapses the search to genuinely symmetric atoms.
//   - Atoms of A are mapped in breadth-first order (package bfs) starting from
//     the rarest colour class. Every non-root atom is then adjacent to an
//     already-mapped one, so its image must be a neighbour of that image.
//   - Consistency of bonds to mapped atoms is checked incrementally.
//   - The enumeration uses an explicit work-list and a deterministic budget:
//     each branch receives ⌈remaining/siblings⌉ of its parent's budget and
//     returns what it does not use, so a capped search samples the whole tree
//     instead of exhausting its first subtree.
//
// Degradation
//
//	Without a bond graph on either side, same-element permutations have no
//	chemical justification, so only the identity is returned, and only if it
//	pairs equal elements. The same identity-only result is produced when the
//	graphs turn out not to be isomorphic.
//
// Options
//
//   - WithMaxCandidates(n): cap on returned correspondences (default 4096).
//     Result.Exhaustive reports whether the cap cut the enumeration short.
//
// Errors
//
//   - core.ErrShapeMismatch      atom counts (or graph sizes) differ.
//   - core.ErrStructureMismatch  element multisets differ, or no
//     element-preserving correspondence can be justified.
//   - ErrInvalidCorrespondence   Validate rejects a mapping.
//   - ErrOptionViolation         bad option value.
package symmetry
