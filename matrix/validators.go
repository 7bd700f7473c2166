// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating finite/rotation checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFinite returns ErrNaNInf if any entry of m is NaN or ±Inf.
// Complexity: O(9).
func ValidateFinite(m Mat3) error {
	if !m.IsFinite() {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// ValidateRotation checks that m is a proper rotation: mᵗ·m = I and
// det(m) = +1, both within eps.
//
// Errors:
//   - ErrNaNInf for non-finite entries.
//   - ErrNotRotation otherwise.
//
// AI-Hints:
//   - Use eps ~1e-9 for rotations produced by SVD; rotations built from
//     trigonometric functions stay well inside that band.
func ValidateRotation(m Mat3, opts ...Option) error {
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateRotation", err)
	}
	o := gatherOptions(opts...)
	if !m.Transpose().Mul(m).AllClose(Identity(), WithEpsilon(o.eps)) {
		return validatorErrorf("ValidateRotation: orthonormality", ErrNotRotation)
	}
	if math.Abs(m.Det()-1) > o.eps {
		return validatorErrorf("ValidateRotation: determinant", ErrNotRotation)
	}

	return nil
}
