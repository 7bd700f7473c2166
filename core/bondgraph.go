// SPDX-License-Identifier: MIT
// File: bondgraph.go
// Role: Immutable undirected bond graph over atom indices.
// Determinism:
//   - Neighbors(i) returns indices sorted ascending.
//   - Bonds() returns canonical bonds (I<J) sorted by (I, J).
// Concurrency:
//   - No mutation after NewBondGraph; all queries are lock-free.

package core

import (
	"fmt"
	"sort"
)

// bondKey is a canonical (min, max) atom pair.
type bondKey struct {
	i, j int
}

func keyOf(i, j int) bondKey {
	if i > j {
		i, j = j, i
	}

	return bondKey{i: i, j: j}
}

// BondGraph is an undirected, loop-free, simple graph over atoms 0..n-1.
//
// adjacency[i] holds the sorted neighbours of i; orders maps each canonical
// pair to its bond order (0 = untyped).
type BondGraph struct {
	n         int
	adjacency [][]int
	orders    map[bondKey]float64
}

// NewBondGraph builds a BondGraph over n atoms from the given bonds.
//
// Implementation:
//   - Stage 1: Validate n >= 0 and every endpoint in 0..n-1.
//   - Stage 2: Reject self-bonds and duplicate pairs (in either orientation).
//   - Stage 3: Populate adjacency buckets and sort each one ascending.
//
// Errors:
//   - ErrAtomOutOfRange: endpoint < 0 or >= n (or n < 0).
//   - ErrLoopNotAllowed: b.I == b.J.
//   - ErrMultiBondNotAllowed: a pair bonded twice.
//
// Complexity:
//   - Time O(n + B log B), Space O(n + B).
func NewBondGraph(n int, bonds []Bond) (*BondGraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("core: NewBondGraph(n=%d): %w", n, ErrAtomOutOfRange)
	}
	g := &BondGraph{
		n:         n,
		adjacency: make([][]int, n),
		orders:    make(map[bondKey]float64, len(bonds)),
	}

	var k bondKey
	for idx, b := range bonds {
		if b.I < 0 || b.I >= n || b.J < 0 || b.J >= n {
			return nil, fmt.Errorf("core: bond %d (%d-%d) with %d atoms: %w", idx, b.I, b.J, n, ErrAtomOutOfRange)
		}
		if b.I == b.J {
			return nil, fmt.Errorf("core: bond %d (%d-%d): %w", idx, b.I, b.J, ErrLoopNotAllowed)
		}
		k = keyOf(b.I, b.J)
		if _, dup := g.orders[k]; dup {
			return nil, fmt.Errorf("core: bond %d (%d-%d): %w", idx, b.I, b.J, ErrMultiBondNotAllowed)
		}
		g.orders[k] = b.Order
		g.adjacency[b.I] = append(g.adjacency[b.I], b.J)
		g.adjacency[b.J] = append(g.adjacency[b.J], b.I)
	}
	for i := range g.adjacency {
		sort.Ints(g.adjacency[i])
	}

	return g, nil
}

// Len returns the number of atoms the graph spans.
func (g *BondGraph) Len() int { return g.n }

// BondCount returns the number of bonds.
func (g *BondGraph) BondCount() int { return len(g.orders) }

// HasBond reports whether i and j are bonded. Out-of-range indices yield false.
func (g *BondGraph) HasBond(i, j int) bool {
	_, ok := g.orders[keyOf(i, j)]

	return ok
}

// BondOrder returns the order of bond i-j and whether it exists.
func (g *BondGraph) BondOrder(i, j int) (float64, bool) {
	o, ok := g.orders[keyOf(i, j)]

	return o, ok
}

// Neighbors returns a copy of the sorted neighbours of atom i.
//
// Errors:
//   - ErrAtomOutOfRange if i is not in 0..n-1.
func (g *BondGraph) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= g.n {
		return nil, fmt.Errorf("core: Neighbors(%d) with %d atoms: %w", i, g.n, ErrAtomOutOfRange)
	}

	return append([]int(nil), g.adjacency[i]...), nil
}

// Degree returns the number of bonds on atom i, or 0 if i is out of range.
func (g *BondGraph) Degree(i int) int {
	if i < 0 || i >= g.n {
		return 0
	}

	return len(g.adjacency[i])
}

// Bonds returns every bond in canonical form (I < J), sorted by (I, J).
//
// Complexity:
//   - Time O(n + B), Space O(B).
func (g *BondGraph) Bonds() []Bond {
	out := make([]Bond, 0, len(g.orders))
	for i := 0; i < g.n; i++ {
		for _, j := range g.adjacency[i] {
			if j > i {
				out = append(out, Bond{I: i, J: j, Order: g.orders[keyOf(i, j)]})
			}
		}
	}

	return out
}

// HasUntyped reports whether any bond carries order 0.
func (g *BondGraph) HasUntyped() bool {
	for _, o := range g.orders {
		if o == 0 {
			return true
		}
	}

	return false
}

// Untyped returns a copy of g with every bond order set to 0, keeping only
// connectivity.
func (g *BondGraph) Untyped() *BondGraph {
	orders := make(map[bondKey]float64, len(g.orders))
	for k := range g.orders {
		orders[k] = 0
	}

	return &BondGraph{n: g.n, adjacency: g.AdjacencyList(), orders: orders}
}

// AdjacencyList returns an independent copy of the neighbour lists.
func (g *BondGraph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for i, nbrs := range g.adjacency {
		out[i] = append([]int(nil), nbrs...)
	}

	return out
}

// Permute returns the graph relabelled by perm, where new atom i is old atom
// perm[i]. perm must be a permutation of 0..n-1.
func (g *BondGraph) Permute(perm []int) (*BondGraph, error) {
	if len(perm) != g.n {
		return nil, fmt.Errorf("core: Permute: %d indices for %d atoms: %w", len(perm), g.n, ErrShapeMismatch)
	}
	inv := make([]int, g.n)
	seen := make([]bool, g.n)
	for newIdx, old := range perm {
		if old < 0 || old >= g.n || seen[old] {
			return nil, fmt.Errorf("core: Permute: index %d: %w", old, ErrAtomOutOfRange)
		}
		seen[old] = true
		inv[old] = newIdx
	}
	bonds := g.Bonds()
	for k := range bonds {
		bonds[k].I, bonds[k].J = inv[bonds[k].I], inv[bonds[k].J]
	}

	return NewBondGraph(g.n, bonds)
}
