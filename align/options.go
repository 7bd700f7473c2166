// SPDX-License-Identifier: MIT
// Package: molalign/align
//
// options.go - functional options for the alignment engine.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs, so a
//     constructed Engine is always usable.
//   • Later options override earlier ones; WithConfig sets every field it covers.

package align

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/molalign/config"
	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/symmetry"
)

// DefaultTieTolerance is the RMSD difference (Bohr) under which two
// candidates count as equal; the earlier one is kept.
const DefaultTieTolerance = 1e-9

// DefaultFilterThreshold is the conformer de-duplication RMSD in Bohr.
const DefaultFilterThreshold = 1.0

// Option configures an Engine.
type Option func(*Options)

// Options holds engine parameters.
type Options struct {
	// Symmetry enables the correspondence search; false uses the identity.
	Symmetry bool
	// Superposition fits the optimal rotation; false compares coordinates as given.
	Superposition bool
	// Unit is the unit RMSD, Translation and filter thresholds are expressed in.
	Unit core.LengthUnit
	// MaxCandidates caps the correspondences evaluated per call.
	MaxCandidates int
	// TieTolerance is compared against RMSD differences in Bohr.
	TieTolerance float64
	// Logger receives one debug line per alignment.
	Logger *zap.Logger
}

// DefaultOptions returns symmetry and superposition on, Bohr, the resolver's
// default cap, DefaultTieTolerance and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Symmetry:      true,
		Superposition: true,
		Unit:          core.Bohr,
		MaxCandidates: symmetry.DefaultMaxCandidates,
		TieTolerance:  DefaultTieTolerance,
		Logger:        zap.NewNop(),
	}
}

// WithSymmetry toggles the correspondence search.
func WithSymmetry(on bool) Option {
	return func(o *Options) { o.Symmetry = on }
}

// WithSuperposition toggles rotation fitting. Off, RMSD is computed on the
// coordinates as given (after reordering) and the transform is the identity.
func WithSuperposition(on bool) Option {
	return func(o *Options) { o.Superposition = on }
}

// WithLengthUnit sets the output unit. Panics on an unknown unit.
func WithLengthUnit(u core.LengthUnit) Option {
	if err := u.Validate(); err != nil {
		panic(fmt.Sprintf("align: WithLengthUnit: %v", err))
	}

	return func(o *Options) { o.Unit = u.Normalize() }
}

// WithMaxCandidates caps the candidates evaluated. Panics if n < 1.
func WithMaxCandidates(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("align: WithMaxCandidates(%d): must be >= 1", n))
	}

	return func(o *Options) { o.MaxCandidates = n }
}

// WithTieTolerance sets the tie tolerance in Bohr. Panics if tol < 0 or not finite.
func WithTieTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("align: WithTieTolerance(%v): must be finite and >= 0", tol))
	}

	return func(o *Options) { o.TieTolerance = tol }
}

// WithLogger sets the logger. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithConfig applies the engine fields of cfg. Panics if cfg does not validate.
// Backend and FilterThreshold are not engine fields; BackendFromConfig and
// FilterConformerIndicesConfig read them.
func WithConfig(cfg config.Config) Option {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("align: WithConfig: %v", err))
	}
	u, _ := cfg.Unit()

	return func(o *Options) {
		o.Symmetry = cfg.Symmetry
		o.Superposition = cfg.Superposition
		o.Unit = u
		o.MaxCandidates = cfg.MaxCandidates
		o.TieTolerance = cfg.TieTolerance
	}
}
