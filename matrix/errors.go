// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (wrapped with a tag via
// matrixErrorf) and tests check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. If context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary;
// callers will still use errors.Is to match.

var (
	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible operand lengths, e.g. two
	// point lists of different size fed into a covariance accumulation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSVDFailed indicates the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("matrix: SVD factorization failed")

	// ErrNotRotation indicates a matrix that is not orthonormal with det +1
	// within the configured epsilon.
	ErrNotRotation = errors.New("matrix: not a proper rotation within eps")
)
