// Package bfs provides a deterministic breadth-first search over a
// core.BondGraph, returning bond-count distances, parent links, and visit order.
//
// What
//
//   - Explore atoms in non-decreasing distance (bond count) from a start atom.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-atom distance from its tree root (-1 if unreached)
//   - Parent: per-atom predecessor in the BFS tree (NoParent for roots)
//   - Roots: tree roots in exploration order
//   - Forest runs the search from a list of seeds, opening a new tree for
//     every seed not yet reached, so disconnected fragments are covered.
//   - Honors context cancellation via WithContext; the resolver threads its
//     caller's context through here.
//
// Why
//
//   - The correspondence resolver maps atoms in BFS order so that every atom
//     after a tree root has an already-mapped neighbour (its parent); the
//     candidates for it are then confined to neighbours of the parent's image.
//
// Determinism
//
//	core.BondGraph.Neighbors returns atoms sorted ascending, and BFS enqueues
//	neighbours in that order, so the visit sequence is fully reproducible.
//
// Complexity (N = atoms, B = bonds)
//
//   - Time:   O(N + B)
//   - Memory: O(N)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	res, err := bfs.Forest(g, seeds, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartAtomOutOfRange  if a start atom or seed is not in 0..n-1.
//   - ErrOptionViolation      if invalid Option (e.g. nil context).
//   - context errors on cancellation.
package bfs
