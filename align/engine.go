// SPDX-License-Identifier: MIT
// File: engine.go
// Role: the alignment engine. Drives the symmetry resolver and the geometry
// kernel and reports the best candidate.
// Determinism:
//   - Candidates are scored in resolver order; ties within TieTolerance keep
//     the earlier one.
// Units:
//   - Both inputs are converted to Bohr before any arithmetic; results are
//     converted to Options.Unit on the way out.

package align

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/molalign/convert"
	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/geometry"
	"github.com/katalvlaran/molalign/matrix"
	"github.com/katalvlaran/molalign/metrics"
	"github.com/katalvlaran/molalign/symmetry"
)

// Result is the outcome of one alignment. Rotation and Translation map B onto
// A under Correspondence: aᵢ ≈ Rotation·b_{c[i]} + Translation.
type Result struct {
	// RMSD is the minimum over the evaluated candidates, in Unit. When
	// Exhaustive is false it is an upper bound on the true minimum.
	RMSD float64
	// Rotation is a proper rotation (det +1).
	Rotation matrix.Mat3
	// Translation is expressed in Unit.
	Translation core.Vec3
	// Correspondence pairs atom i of A with atom Correspondence[i] of B.
	Correspondence symmetry.Correspondence
	// Unit of RMSD and Translation.
	Unit core.LengthUnit
	// Candidates is the number of correspondences evaluated.
	Candidates int
	// Exhaustive is false when the candidate cap cut the search short; a
	// skipped correspondence might have scored lower than RMSD.
	Exhaustive bool
}

// Transform returns Rotation and Translation as a geometry.Transform.
func (r *Result) Transform() geometry.Transform {
	return geometry.Transform{Rotation: r.Rotation, Translation: r.Translation}
}

// Engine evaluates RMSD and alignments with a fixed set of Options.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	opts Options
}

var _ Backend = (*Engine)(nil)

// New returns an Engine configured by opts over DefaultOptions.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Engine{opts: o}
}

// Options returns a copy of the engine's options.
func (e *Engine) Options() Options { return e.opts }

// fit is the internal result, in Bohr.
type fit struct {
	rmsd       float64
	transform  geometry.Transform
	corr       symmetry.Correspondence
	candidates int
	exhaustive bool
}

// RMSD returns the minimum RMSD between a and b and the motion of b onto a
// achieving it.
//
// Implementation:
//   - Stage 1: Extract both structures, check counts and element multisets,
//     convert coordinates to Bohr.
//   - Stage 2: Candidates: the resolver's list when Symmetry is on, else the identity.
//   - Stage 3: For each candidate reorder B, then Superpose onto A and
//     score the residual of the moved coordinates (RMSDFixed alone without
//     superposition); keep the strict minimum.
//   - Stage 4: Convert RMSD and translation to Options.Unit.
//
// Errors:
//   - core.ErrShapeMismatch if the atom counts differ.
//   - core.ErrStructureMismatch if the element multisets differ, or the
//     resolver cannot justify any pairing.
//   - core.ErrDegenerateGeometry for empty structures or a failed SVD.
//   - Extraction errors for malformed inputs.
func (e *Engine) RMSD(a, b core.Structure) (*Result, error) {
	return e.RMSDContext(context.Background(), a, b)
}

// RMSDContext is RMSD with cancellation. ctx is checked by the resolver's
// search and between candidates; on cancellation the wrapped ctx.Err() is
// returned.
func (e *Engine) RMSDContext(ctx context.Context, a, b core.Structure) (*Result, error) {
	start := time.Now()
	f, err := e.evaluate(ctx, a, b)
	if err != nil {
		metrics.AlignmentErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		e.opts.Logger.Debug("alignment failed", zap.Error(err))
		return nil, err
	}
	res, err := e.result(f)
	if err != nil {
		return nil, err
	}
	e.observe(res, time.Since(start))

	return res, nil
}

// Align moves mobile onto reference and returns it with mobile's own atom
// order, unit and attributes, along with the alignment of mobile onto
// reference (A = reference, B = mobile).
//
// Errors:
//   - everything RMSD returns, and convert.Rebuild errors.
func (e *Engine) Align(mobile, reference core.Structure) (core.Structure, *Result, error) {
	return e.AlignContext(context.Background(), mobile, reference)
}

// AlignContext is Align with cancellation, as in RMSDContext.
func (e *Engine) AlignContext(ctx context.Context, mobile, reference core.Structure) (core.Structure, *Result, error) {
	start := time.Now()
	f, err := e.evaluate(ctx, reference, mobile)
	if err != nil {
		metrics.AlignmentErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		e.opts.Logger.Debug("alignment failed", zap.Error(err))
		return nil, nil, err
	}
	res, err := e.result(f)
	if err != nil {
		return nil, nil, err
	}

	// the fit is in Bohr; move mobile in its own unit
	unit := mobile.LengthUnit()
	k, err := core.Bohr.Factor(unit)
	if err != nil {
		return nil, nil, err
	}
	moved, err := convert.Rebuild(mobile, f.transform.Scaled(k).Apply(mobile.Coordinates()))
	if err != nil {
		return nil, nil, err
	}
	e.observe(res, time.Since(start))

	return moved, res, nil
}

// evaluate runs stages 1 to 3 of RMSD.
func (e *Engine) evaluate(ctx context.Context, a, b core.Structure) (*fit, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	setA, ga, err := convert.Extract(a)
	if err != nil {
		return nil, fmt.Errorf("align: structure A: %w", err)
	}
	setB, gb, err := convert.Extract(b)
	if err != nil {
		return nil, fmt.Errorf("align: structure B: %w", err)
	}
	n := setA.Len()
	if n != setB.Len() {
		return nil, fmt.Errorf("align: %d vs %d atoms: %w", n, setB.Len(), core.ErrShapeMismatch)
	}
	if n == 0 {
		return nil, fmt.Errorf("align: no atoms: %w", core.ErrDegenerateGeometry)
	}
	if !core.SameElements(setA.Numbers, setB.Numbers) {
		return nil, fmt.Errorf("align: element multisets differ: %w", core.ErrStructureMismatch)
	}
	xa, err := setA.InUnit(core.Bohr)
	if err != nil {
		return nil, err
	}
	xb, err := setB.InUnit(core.Bohr)
	if err != nil {
		return nil, err
	}

	cands := []symmetry.Correspondence{symmetry.Identity(n)}
	exhaustive := true
	if e.opts.Symmetry {
		res, err := symmetry.Resolve(
			symmetry.Side{Numbers: setA.Numbers, Graph: ga},
			symmetry.Side{Numbers: setB.Numbers, Graph: gb},
			symmetry.WithMaxCandidates(e.opts.MaxCandidates),
			symmetry.WithContext(ctx),
		)
		if err != nil {
			return nil, fmt.Errorf("align: %w", err)
		}
		cands, exhaustive = res.Candidates, res.Exhaustive
	}

	var best *fit
	for _, c := range cands {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("align: %w", err)
		}
		tr, r, err := e.score(geometry.Reorder(xb, c), xa)
		if err != nil {
			return nil, fmt.Errorf("align: %w", err)
		}
		if best == nil || r < best.rmsd-e.opts.TieTolerance {
			best = &fit{rmsd: r, transform: tr, corr: c}
		}
	}
	best.candidates = len(cands)
	best.exhaustive = exhaustive

	return best, nil
}

// score fits pb onto xa and returns the residual RMSD of the fitted
// coordinates. The singular-value shortcut of geometry.Superpose cancels
// to about 1e-8 for exact images, which would let rounding decide ties
// between symmetry-equivalent candidates; the explicit residual does not.
func (e *Engine) score(pb, xa []core.Vec3) (geometry.Transform, float64, error) {
	if !e.opts.Superposition {
		r, err := geometry.RMSDFixed(pb, xa)
		return geometry.IdentityTransform(), r, err
	}
	tr, _, err := geometry.Superpose(pb, xa)
	if err != nil {
		return geometry.Transform{}, 0, err
	}
	r, err := geometry.RMSDFixed(tr.Apply(pb), xa)

	return tr, r, err
}

// result converts an internal fit to the output unit.
func (e *Engine) result(f *fit) (*Result, error) {
	k, err := core.Bohr.Factor(e.opts.Unit)
	if err != nil {
		return nil, err
	}

	return &Result{
		RMSD:           f.rmsd * k,
		Rotation:       f.transform.Rotation,
		Translation:    f.transform.Translation.Scale(k),
		Correspondence: append(symmetry.Correspondence(nil), f.corr...),
		Unit:           e.opts.Unit,
		Candidates:     f.candidates,
		Exhaustive:     f.exhaustive,
	}, nil
}

// observe records metrics and the debug line for a successful call.
func (e *Engine) observe(res *Result, elapsed time.Duration) {
	mode, fitLabel := "plain", "fixed"
	if e.opts.Symmetry {
		mode = "symmetric"
	}
	if e.opts.Superposition {
		fitLabel = "superpose"
	}
	metrics.AlignmentsTotal.WithLabelValues(mode, fitLabel).Inc()
	metrics.CandidatesEvaluated.Observe(float64(res.Candidates))
	metrics.AlignDurationSeconds.Observe(elapsed.Seconds())
	if !res.Exhaustive {
		metrics.TruncatedSearchesTotal.Inc()
	}
	e.opts.Logger.Debug("alignment",
		zap.Float64("rmsd", res.RMSD),
		zap.String("unit", string(res.Unit)),
		zap.Int("candidates", res.Candidates),
		zap.Bool("exhaustive", res.Exhaustive),
		zap.Bool("identity", res.Correspondence.IsIdentity()),
		zap.Duration("elapsed", elapsed),
	)
}

// errorKind labels a failure for metrics.
func errorKind(err error) string {
	switch {
	case errors.Is(err, core.ErrShapeMismatch):
		return "shape_mismatch"
	case errors.Is(err, core.ErrStructureMismatch):
		return "structure_mismatch"
	case errors.Is(err, core.ErrDegenerateGeometry):
		return "degenerate_geometry"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "invalid_input"
	}
}

// RMSD evaluates a against b with a one-off Engine.
func RMSD(a, b core.Structure, opts ...Option) (*Result, error) {
	return New(opts...).RMSD(a, b)
}

// Align moves mobile onto reference with a one-off Engine.
func Align(mobile, reference core.Structure, opts ...Option) (core.Structure, *Result, error) {
	return New(opts...).Align(mobile, reference)
}
