// SPDX-License-Identifier: MIT
// File: search.go
// Role: Budgeted enumeration of colour-respecting bond-graph isomorphisms A → B.
// Determinism:
//   - Atoms of A are mapped in a fixed BFS order; candidates in B are tried
//     in ascending index order; the budget split depends only on counts.
// Memory:
//   - An explicit frame stack replaces recursion; depth is at most n.

package symmetry

import (
	"context"
	"sort"

	"github.com/katalvlaran/molalign/bfs"
	"github.com/katalvlaran/molalign/core"
)

// frame is one level of the work-list: atom order[k] of A is being mapped.
type frame struct {
	k       int   // position in the BFS order
	cands   []int // feasible images in B, ascending
	next    int   // index of the next candidate to try
	budget  int   // correspondences this subtree may still produce
	yielded int   // correspondences produced so far by this subtree
	current int   // image currently assigned to order[k], or -1
}

// cancelCheckEvery is the number of frame steps between context checks.
const cancelCheckEvery = 1024

// searcher holds the transient state of one enumeration.
type searcher struct {
	ctx        context.Context
	ga, gb     *core.BondGraph
	colA, colB []int
	order      []int // atoms of A in mapping order
	parent     []int // BFS parent of each atom of A (bfs.NoParent for roots)
	mapAB      []int // A → B, -1 if unmapped
	usedB      []bool
	out        []Correspondence
	exhaustive bool
}

// newSearcher prepares the mapping order: BFS over A seeded from the rarest
// colour class, ties broken by colour id then atom index.
func newSearcher(ctx context.Context, a, b Side, col colouring) (*searcher, error) {
	n := len(a.Numbers)
	sizes := col.classSizes()
	seeds := make([]int, n)
	for i := range seeds {
		seeds[i] = i
	}
	sort.SliceStable(seeds, func(x, y int) bool {
		cx, cy := col.a[seeds[x]], col.a[seeds[y]]
		if sizes[cx] != sizes[cy] {
			return sizes[cx] < sizes[cy]
		}
		if cx != cy {
			return cx < cy
		}

		return seeds[x] < seeds[y]
	})

	res, err := bfs.Forest(a.Graph, seeds, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	s := &searcher{
		ctx:        ctx,
		ga:         a.Graph,
		gb:         b.Graph,
		colA:       col.a,
		colB:       col.b,
		order:      res.Order,
		parent:     res.Parent,
		mapAB:      make([]int, n),
		usedB:      make([]bool, n),
		exhaustive: true,
	}
	for i := range s.mapAB {
		s.mapAB[i] = -1
	}

	return s, nil
}

// candidates returns the feasible images for position k under the current
// partial mapping, in ascending order.
func (s *searcher) candidates(k int) []int {
	atom := s.order[k]
	var pool []int
	if p := s.parent[atom]; p != bfs.NoParent {
		pool, _ = s.gb.Neighbors(s.mapAB[p])
	} else {
		pool = make([]int, 0, len(s.colB))
		for j := range s.colB {
			pool = append(pool, j)
		}
	}

	out := make([]int, 0, len(pool))
	for _, j := range pool {
		if s.feasible(atom, j) {
			out = append(out, j)
		}
	}

	return out
}

// feasible checks colour equality and that every bond between atom and an
// already-mapped atom of A has an equal-order counterpart in B, and vice versa.
func (s *searcher) feasible(atom, img int) bool {
	if s.usedB[img] || s.colA[atom] != s.colB[img] {
		return false
	}
	nbrsA, _ := s.ga.Neighbors(atom)
	mappedA := 0
	for _, x := range nbrsA {
		y := s.mapAB[x]
		if y < 0 {
			continue
		}
		mappedA++
		ob, ok := s.gb.BondOrder(img, y)
		if !ok {
			return false
		}
		oa, _ := s.ga.BondOrder(atom, x)
		if oa != ob {
			return false
		}
	}
	nbrsB, _ := s.gb.Neighbors(img)
	mappedB := 0
	for _, y := range nbrsB {
		if s.usedB[y] {
			mappedB++
		}
	}

	return mappedA == mappedB
}

func (s *searcher) assign(atom, img int) {
	s.mapAB[atom] = img
	s.usedB[img] = true
}

func (s *searcher) unassign(atom, img int) {
	s.mapAB[atom] = -1
	s.usedB[img] = false
}

// ceilDiv returns ⌈a/b⌉ for a >= 0, b > 0.
func ceilDiv(a, b int) int { return (a + b - 1) / b }

// run enumerates isomorphisms under the given budget.
//
// Implementation:
//   - Stage 1: Push the root frame with the full budget.
//   - Stage 2: At each frame, hand the next candidate ⌈remaining/siblingsLeft⌉
//     of the frame's remaining budget; whatever a child does not use flows
//     back to its later siblings.
//   - Stage 3: A complete mapping yields one correspondence. A frame that
//     still has untried candidates when its budget is spent marks the
//     search non-exhaustive.
//
// Once the budget is tight, deep frames receive a budget of 1 and keep only
// their lowest-index image, so a truncated run samples the isomorphisms
// unevenly. Callers minimising over the output get an upper bound.
//
// Errors:
//   - s.ctx.Err() if the context is cancelled mid-search.
//
// Complexity:
//   - Time O(budget · n · Δ²) for the productive part plus pruned dead ends,
//     where Δ is the maximum degree. Space O(n).
func (s *searcher) run(budget int) error {
	n := len(s.order)
	if n == 0 {
		s.out = append(s.out, Correspondence{})
		return nil
	}

	stack := []*frame{{k: 0, cands: s.candidates(0), budget: budget, current: -1}}
	ret := 0
	for step := 1; len(stack) > 0; step++ {
		if step%cancelCheckEvery == 0 {
			if err := s.ctx.Err(); err != nil {
				return err
			}
		}
		f := stack[len(stack)-1]
		atom := s.order[f.k]

		// Returning from a child: collect its yield and release the image.
		if f.current >= 0 {
			f.yielded += ret
			s.unassign(atom, f.current)
			f.current = -1
			ret = 0
		}

		remaining := f.budget - f.yielded
		if f.next >= len(f.cands) || remaining <= 0 {
			if f.next < len(f.cands) {
				s.exhaustive = false
			}
			stack = stack[:len(stack)-1]
			ret = f.yielded
			continue
		}

		child := ceilDiv(remaining, len(f.cands)-f.next)
		img := f.cands[f.next]
		f.next++
		s.assign(atom, img)
		f.current = img

		if f.k+1 == n {
			s.out = append(s.out, append(Correspondence(nil), s.mapAB...))
			ret = 1
			continue
		}
		stack = append(stack, &frame{
			k:       f.k + 1,
			cands:   s.candidates(f.k + 1),
			budget:  child,
			current: -1,
		})
	}

	return nil
}
