// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewAtoms indicates that a size parameter (chain length, ring size,
// ligand count) is below the constructor's minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic knob requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that no valid molecule could be produced
// (nil constructor, empty result, invalid permutation).
var ErrConstructFailed = errors.New("builder: construction failed")
