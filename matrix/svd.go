// SPDX-License-Identifier: MIT
// File: svd.go
// Role: Singular value decomposition of a Mat3 through gonum's LAPACK port.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// SVD holds a full decomposition m = U·diag(Values)·Vᵗ with Values sorted
// in non-increasing order.
type SVD struct {
	U      Mat3
	V      Mat3
	Values [3]float64
}

// Dense converts m into a gonum *mat.Dense (fresh backing slice).
func (m Mat3) Dense() *mat.Dense {
	data := make([]float64, 9)
	copy(data, m[:])

	return mat.NewDense(3, 3, data)
}

// FromDense copies a 3×3 gonum matrix into a Mat3.
//
// Errors:
//   - ErrDimensionMismatch if d is not 3×3.
func FromDense(d mat.Matrix) (Mat3, error) {
	r, c := d.Dims()
	if r != 3 || c != 3 {
		return Mat3{}, matrixErrorf("FromDense", ErrDimensionMismatch)
	}
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = d.At(i, j)
		}
	}

	return out, nil
}

// SVD3 factorizes m with a full SVD.
//
// Implementation:
//   - Stage 1: Reject NaN/Inf input (unless WithNoValidateNaNInf).
//   - Stage 2: mat.SVD.Factorize(m, SVDFull).
//   - Stage 3: Extract U, V and the singular values into fixed-size arrays.
//
// Errors:
//   - ErrNaNInf for non-finite input.
//   - ErrSVDFailed when the factorization does not converge.
//
// Determinism:
//   - gonum's Householder/QR path is deterministic for identical input.
//
// Notes:
//   - The zero matrix factorizes fine (all singular values 0); callers
//     decide how to interpret rank deficiency.
func SVD3(m Mat3, opts ...Option) (SVD, error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf && !m.IsFinite() {
		return SVD{}, matrixErrorf("SVD3", ErrNaNInf)
	}

	var svd mat.SVD
	if ok := svd.Factorize(m.Dense(), mat.SVDFull); !ok {
		return SVD{}, matrixErrorf("SVD3", ErrSVDFailed)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	out := SVD{}
	var err error
	if out.U, err = FromDense(&u); err != nil {
		return SVD{}, matrixErrorf("SVD3", err)
	}
	if out.V, err = FromDense(&v); err != nil {
		return SVD{}, matrixErrorf("SVD3", err)
	}
	copy(out.Values[:], svd.Values(nil))

	return out, nil
}

// Reconstruct returns U·diag(Values)·Vᵗ.
func (s SVD) Reconstruct() Mat3 {
	return s.U.Mul(Diag(s.Values[0], s.Values[1], s.Values[2])).Mul(s.V.Transpose())
}
