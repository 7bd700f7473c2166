// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil        (pure/deterministic unless seeded)
//   • unit       = Angstrom
//   • bondScale  = 1.0
//   • jitter     = 0.0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/molalign/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Output unit of the built molecule.
	unit core.LengthUnit
	// Uniform geometry scale applied after construction.
	bondScale float64
	// Gaussian noise stdev (Angstrom) added to every coordinate.
	jitter float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultBondScale = 1.0
	defaultJitter    = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		unit:      core.Angstrom,
		bondScale: defaultBondScale,
		jitter:    defaultJitter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
