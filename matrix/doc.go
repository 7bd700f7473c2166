// Package matrix provides the small, fixed-size linear algebra the alignment
// engine needs: a 3×3 row-major Mat3 with product, transpose, determinant and
// matrix-vector kernels, the cross-covariance accumulation Pᵗ·Q, and a full
// singular value decomposition (SVD3) delegated to gonum.org/v1/gonum/mat.
//
// Numeric policy is configured with functional options (WithEpsilon,
// WithNoValidateNaNInf). Validators (ValidateFinite, ValidateRotation)
// return tagged errors wrapping the package sentinels; match them with
// errors.Is.
//
// All kernels are value-typed: a Mat3 is copied, never aliased, so results
// can be shared across goroutines freely.
package matrix
