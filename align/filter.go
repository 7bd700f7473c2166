// SPDX-License-Identifier: MIT
// File: filter.go
// Role: conformer de-duplication by pairwise RMSD.

package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molalign/config"
	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/metrics"
)

// FilterConformerIndices returns the indices of confs that survive greedy
// de-duplication: walking in order, every conformer that is still kept
// removes each later conformer within RMSD < threshold of it. The first
// conformer is always kept. threshold is in the engine's output unit
// (Bohr unless WithLengthUnit says otherwise).
//
// Complexity:
//   - O(k²) RMSD evaluations in the worst case for k conformers.
//
// Errors:
//   - ErrOptionViolation for a negative or non-finite threshold.
//   - the first RMSD error, annotated with the pair of indices.
func FilterConformerIndices(confs []core.Structure, threshold float64, opts ...Option) ([]int, error) {
	e := New(opts...)

	return FilterConformerIndicesWith(e, confs, threshold, e.opts.Unit)
}

// FilterConformerIndicesWith is FilterConformerIndices over an arbitrary
// Backend. threshold is in unit; each Result.RMSD is converted from the
// Result's own Unit before the comparison, so backends may report in any
// unit.
//
// Errors:
//   - ErrOptionViolation for a nil backend, an invalid unit, or a negative
//     or non-finite threshold.
//   - the first RMSD error, annotated with the pair of indices.
func FilterConformerIndicesWith(b Backend, confs []core.Structure, threshold float64, unit core.LengthUnit) ([]int, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrOptionViolation)
	}
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: threshold %v", ErrOptionViolation, threshold)
	}
	if err := unit.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}

	dropped := make([]bool, len(confs))
	for i := range confs {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(confs); j++ {
			if dropped[j] {
				continue
			}
			res, err := b.RMSD(confs[i], confs[j])
			if err != nil {
				return nil, fmt.Errorf("align: conformers %d and %d: %w", i, j, err)
			}
			d, err := res.Unit.Convert(res.RMSD, unit)
			if err != nil {
				return nil, fmt.Errorf("align: conformers %d and %d: %w", i, j, err)
			}
			if d < threshold {
				dropped[j] = true
			}
		}
	}

	keep := make([]int, 0, len(confs))
	for i, d := range dropped {
		if !d {
			keep = append(keep, i)
			continue
		}
		metrics.ConformersDroppedTotal.Inc()
	}

	return keep, nil
}

// FilterConformerIndicesConfig de-duplicates confs with the backend named by
// cfg.Backend and cfg.FilterThreshold, read in cfg.LengthUnit.
//
// Errors:
//   - config.ErrInvalidConfig if cfg does not validate.
//   - ErrUnknownBackend for an unregistered backend name.
//   - everything FilterConformerIndicesWith returns.
func FilterConformerIndicesConfig(confs []core.Structure, cfg config.Config) ([]int, error) {
	b, err := BackendFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	u, err := cfg.Unit()
	if err != nil {
		return nil, err
	}

	return FilterConformerIndicesWith(b, confs, cfg.FilterThreshold, u)
}

// FilterConformers returns the conformers FilterConformerIndices keeps, in order.
func FilterConformers(confs []core.Structure, threshold float64, opts ...Option) ([]core.Structure, error) {
	idx, err := FilterConformerIndices(confs, threshold, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]core.Structure, len(idx))
	for k, i := range idx {
		out[k] = confs[i]
	}

	return out, nil
}
