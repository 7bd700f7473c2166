// SPDX-License-Identifier: MIT
// File: resolver.go
// Role: Resolve, the entry point enumerating admissible correspondences.

package symmetry

import (
	"fmt"

	"github.com/katalvlaran/molalign/core"
)

// Resolve returns the correspondences between A and B that are consistent
// with the element types and, when both bond graphs are present, with the
// bonding pattern (graph isomorphisms preserving element and bond order).
// If either graph has an untyped bond (order 0), orders are dropped on both
// sides and only connectivity is matched.
//
// When the MaxCandidates budget is spent before the enumeration finishes,
// Result.Exhaustive is false and the candidates are a deterministic sample;
// an RMSD minimised over them is an upper bound, not the true minimum.
//
// Implementation:
//   - Stage 1: Equal atom counts (core.ErrShapeMismatch) and equal element
//     multisets (core.ErrStructureMismatch).
//   - Stage 2: Without both graphs, return the identity only; it must pair
//     equal elements or the atom order cannot be trusted (ErrStructureMismatch).
//   - Stage 3: Joint colour refinement; unequal colour histograms mean the
//     graphs are not isomorphic, so degrade to identity only.
//   - Stage 4: Budgeted isomorphism enumeration (see searcher.run), checking
//     Options.Ctx as it goes.
//   - Stage 5: Identity first when element-preserving, de-duplicate, cap at
//     MaxCandidates, validate every candidate.
//
// Errors:
//   - core.ErrShapeMismatch, core.ErrStructureMismatch as above.
//   - ErrOptionViolation for invalid options.
//   - ErrInvalidCorrespondence if an internal candidate fails validation.
//   - The wrapped ctx.Err() when Options.Ctx is cancelled.
//
// Determinism:
//   - Output depends only on the inputs and MaxCandidates.
func Resolve(a, b Side, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(a.Numbers)
	if n != len(b.Numbers) {
		return nil, fmt.Errorf("symmetry: %d vs %d atoms: %w", n, len(b.Numbers), core.ErrShapeMismatch)
	}
	if !core.SameElements(a.Numbers, b.Numbers) {
		return nil, fmt.Errorf("symmetry: element multisets differ: %w", core.ErrStructureMismatch)
	}
	for _, s := range []Side{a, b} {
		if s.Graph != nil && s.Graph.Len() != n {
			return nil, fmt.Errorf("symmetry: bond graph spans %d atoms, structure has %d: %w",
				s.Graph.Len(), n, core.ErrShapeMismatch)
		}
	}

	identityOK := elementPreserving(Identity(n), a.Numbers, b.Numbers)

	if a.Graph == nil || b.Graph == nil || a.Graph.BondCount() != b.Graph.BondCount() {
		return identityOnly(n, identityOK)
	}

	if a.Graph.HasUntyped() || b.Graph.HasUntyped() {
		a.Graph, b.Graph = a.Graph.Untyped(), b.Graph.Untyped()
	}

	col := refine(a, b)
	if !col.histogramsMatch() {
		return identityOnly(n, identityOK)
	}

	s, err := newSearcher(o.Ctx, a, b, col)
	if err != nil {
		return nil, fmt.Errorf("symmetry: search order: %w", err)
	}
	if err = s.run(o.MaxCandidates); err != nil {
		return nil, fmt.Errorf("symmetry: search: %w", err)
	}
	if len(s.out) == 0 {
		return identityOnly(n, identityOK)
	}

	res := &Result{Exhaustive: s.exhaustive, Graphs: true}
	seen := make(map[string]struct{}, len(s.out)+1)
	if identityOK {
		id := Identity(n)
		res.Candidates = append(res.Candidates, id)
		seen[id.key()] = struct{}{}
	}
	for _, c := range s.out {
		k := c.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		res.Candidates = append(res.Candidates, c)
	}
	if len(res.Candidates) > o.MaxCandidates {
		res.Candidates = res.Candidates[:o.MaxCandidates]
		res.Exhaustive = false
	}
	for _, c := range res.Candidates {
		if err = Validate(c, a.Numbers, b.Numbers); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// identityOnly is the designed degradation when connectivity cannot narrow
// the search.
func identityOnly(n int, identityOK bool) (*Result, error) {
	if !identityOK {
		return nil, fmt.Errorf("symmetry: no bond graph to resolve a reordered atom list: %w", core.ErrStructureMismatch)
	}

	return &Result{Candidates: []Correspondence{Identity(n)}, Exhaustive: true}, nil
}
