// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/molalign/core"
)

// BuilderOption customizes construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic knobs. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithUnit sets the unit of the built molecule's coordinates.
// Panics on an unsupported unit.
func WithUnit(u core.LengthUnit) BuilderOption {
	if err := u.Validate(); err != nil {
		panic("builder: WithUnit: " + err.Error())
	}

	return func(c *builderConfig) { c.unit = u.Normalize() }
}

// WithBondScale multiplies every coordinate by s (> 0, finite).
func WithBondScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithBondScale: scale must be finite and > 0")
	}

	return func(c *builderConfig) { c.bondScale = s }
}

// WithJitter adds N(0, sigma²) noise (Angstrom) to every coordinate.
// Requires WithSeed or WithRand. Panics on negative or non-finite sigma.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithJitter: sigma must be finite and >= 0")
	}

	return func(c *builderConfig) { c.jitter = sigma }
}
