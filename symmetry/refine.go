// SPDX-License-Identifier: MIT
// File: refine.go
// Role: Joint colour refinement (1-dimensional Weisfeiler-Leman) over two
// bond graphs, producing atom colours comparable across both structures.
// Determinism:
//   - Colour ids are assigned in lexicographic order of their signatures, so
//     the same pair of inputs always yields the same colours.

package symmetry

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/molalign/core"
)

// colouring holds per-atom colours for both sides and the class sizes.
type colouring struct {
	a, b    []int
	classes int
}

// formatOrder renders a bond order compactly ("1", "1.5", "0").
func formatOrder(o float64) string { return strconv.FormatFloat(o, 'g', -1, 64) }

// initialSignature is (element, degree, sorted bond orders).
func initialSignature(z int, g *core.BondGraph, i int) string {
	nbrs, _ := g.Neighbors(i)
	orders := make([]string, len(nbrs))
	for k, j := range nbrs {
		o, _ := g.BondOrder(i, j)
		orders[k] = formatOrder(o)
	}
	sort.Strings(orders)

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(z))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(len(nbrs)))
	sb.WriteByte('|')
	sb.WriteString(strings.Join(orders, ","))

	return sb.String()
}

// refinedSignature is (own colour, sorted multiset of (neighbour colour, bond order)).
func refinedSignature(colour []int, g *core.BondGraph, i int) string {
	nbrs, _ := g.Neighbors(i)
	parts := make([]string, len(nbrs))
	for k, j := range nbrs {
		o, _ := g.BondOrder(i, j)
		parts[k] = strconv.Itoa(colour[j]) + ":" + formatOrder(o)
	}
	sort.Strings(parts)

	return strconv.Itoa(colour[i]) + "|" + strings.Join(parts, ",")
}

// assignIDs maps the signatures of both sides onto dense ids 0..k-1 in sorted
// signature order and returns the per-atom ids and k.
func assignIDs(sigA, sigB []string) ([]int, []int, int) {
	uniq := make(map[string]struct{}, len(sigA))
	for _, s := range sigA {
		uniq[s] = struct{}{}
	}
	for _, s := range sigB {
		uniq[s] = struct{}{}
	}
	keys := make([]string, 0, len(uniq))
	for s := range uniq {
		keys = append(keys, s)
	}
	sort.Strings(keys)
	id := make(map[string]int, len(keys))
	for k, s := range keys {
		id[s] = k
	}

	ca := make([]int, len(sigA))
	cb := make([]int, len(sigB))
	for i, s := range sigA {
		ca[i] = id[s]
	}
	for i, s := range sigB {
		cb[i] = id[s]
	}

	return ca, cb, len(keys)
}

// refine runs joint colour refinement until the partition stops splitting.
//
// Implementation:
//   - Stage 1: Seed colours from (element, degree, bond-order multiset).
//   - Stage 2: Repeatedly recolour by (colour, neighbour colours + orders)
//     over the union of both atom sets.
//   - Stage 3: Stop when the class count is unchanged (at most n rounds).
//
// Complexity:
//   - Time O(n · B log B) in the worst case, Space O(n + B).
func refine(a, b Side) colouring {
	n := len(a.Numbers)
	sigA := make([]string, n)
	sigB := make([]string, n)
	for i := 0; i < n; i++ {
		sigA[i] = initialSignature(a.Numbers[i], a.Graph, i)
		sigB[i] = initialSignature(b.Numbers[i], b.Graph, i)
	}
	ca, cb, classes := assignIDs(sigA, sigB)

	for round := 0; round < n; round++ {
		for i := 0; i < n; i++ {
			sigA[i] = refinedSignature(ca, a.Graph, i)
			sigB[i] = refinedSignature(cb, b.Graph, i)
		}
		na, nb, next := assignIDs(sigA, sigB)
		ca, cb = na, nb
		if next == classes {
			break
		}
		classes = next
	}

	return colouring{a: ca, b: cb, classes: classes}
}

// histogramsMatch reports whether every colour occurs equally often on both sides.
func (c colouring) histogramsMatch() bool {
	counts := make([]int, c.classes)
	for _, x := range c.a {
		counts[x]++
	}
	for _, x := range c.b {
		counts[x]--
	}
	for _, v := range counts {
		if v != 0 {
			return false
		}
	}

	return true
}

// classSizes returns how many atoms of A carry each colour.
func (c colouring) classSizes() []int {
	sizes := make([]int, c.classes)
	for _, x := range c.a {
		sizes[x]++
	}

	return sizes
}
