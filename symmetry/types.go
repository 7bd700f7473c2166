// SPDX-License-Identifier: MIT
// Package symmetry: public types, options and sentinels.

package symmetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/molalign/core"
)

// Sentinel errors for the resolver.
var (
	// ErrInvalidCorrespondence indicates a mapping that is not a bijection
	// over 0..n-1 or pairs atoms of different elements.
	ErrInvalidCorrespondence = errors.New("symmetry: invalid correspondence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("symmetry: invalid option supplied")
)

// DefaultMaxCandidates bounds the number of correspondences one Resolve call
// may return.
const DefaultMaxCandidates = 4096

// Correspondence maps atoms of A onto atoms of B: c[i] is the index in B
// paired with atom i of A.
type Correspondence []int

// Identity returns the correspondence i ↦ i over n atoms.
func Identity(n int) Correspondence {
	c := make(Correspondence, n)
	for i := range c {
		c[i] = i
	}

	return c
}

// IsIdentity reports whether c maps every atom to itself.
func (c Correspondence) IsIdentity() bool {
	for i, j := range c {
		if i != j {
			return false
		}
	}

	return true
}

// Inverse returns the correspondence from B back to A. c must be a bijection.
func (c Correspondence) Inverse() Correspondence {
	inv := make(Correspondence, len(c))
	for i, j := range c {
		inv[j] = i
	}

	return inv
}

// Equal reports element-wise equality.
func (c Correspondence) Equal(d Correspondence) bool {
	if len(c) != len(d) {
		return false
	}
	for i := range c {
		if c[i] != d[i] {
			return false
		}
	}

	return true
}

// key renders c as a map key for de-duplication.
func (c Correspondence) key() string { return fmt.Sprint([]int(c)) }

// Side is one of the two structures handed to Resolve: atomic numbers in
// atom order and an optional bond graph over the same atoms.
type Side struct {
	Numbers []int
	Graph   *core.BondGraph
}

// Result is the outcome of one Resolve call.
type Result struct {
	// Candidates holds the admissible correspondences, identity first when
	// the identity is element-preserving. Never empty on success.
	Candidates []Correspondence

	// Exhaustive is false when the MaxCandidates budget cut the search short.
	// The candidates are then a sample of the isomorphisms, and the minimum
	// RMSD over them is only an upper bound on the true minimum.
	Exhaustive bool

	// Graphs is true when the candidates came from the bond-graph isomorphism
	// search, false when the resolver degraded to identity only.
	Graphs bool
}

// Option configures Resolve via functional arguments.
type Option func(*Options)

// Options holds resolver parameters.
type Options struct {
	// MaxCandidates caps the number of returned correspondences (>= 1).
	MaxCandidates int

	// Ctx cancels the isomorphism search; nil means context.Background().
	Ctx context.Context

	err error
}

// DefaultOptions returns MaxCandidates = DefaultMaxCandidates and a
// background context.
func DefaultOptions() Options {
	return Options{MaxCandidates: DefaultMaxCandidates, Ctx: context.Background()}
}

// WithMaxCandidates sets the candidate cap. n < 1 is recorded and surfaced as
// ErrOptionViolation when Resolve runs.
func WithMaxCandidates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxCandidates must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCandidates = n
	}
}

// WithContext sets the context checked by the search order walk and the
// isomorphism enumeration. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
