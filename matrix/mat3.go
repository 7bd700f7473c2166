// SPDX-License-Identifier: MIT
// File: mat3.go
// Role: Fixed-size 3×3 matrix kernels used by the geometry package.
// Storage:
//   - Row-major [9]float64; element (i,j) lives at index 3*i+j.
// Determinism:
//   - Every kernel uses fixed i→j→k loop orders; results are bitwise stable.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molalign/core"
)

// Mat3 is a 3×3 real matrix in row-major order. The zero value is the zero matrix.
type Mat3 [9]float64

// matrixErrorf wraps err with a kernel tag so callers see "<tag>: <cause>"
// while errors.Is still matches the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Identity returns I₃.
func Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Diag returns diag(a, b, c).
func Diag(a, b, c float64) Mat3 {
	return Mat3{a, 0, 0, 0, b, 0, 0, 0, c}
}

// FromRows builds a matrix from three row vectors.
func FromRows(r0, r1, r2 core.Vec3) Mat3 {
	return Mat3{r0[0], r0[1], r0[2], r1[0], r1[1], r1[2], r2[0], r2[1], r2[2]}
}

// At returns element (i, j). Indices must be in 0..2.
func (m Mat3) At(i, j int) float64 { return m[3*i+j] }

// Row returns row i as a vector.
func (m Mat3) Row(i int) core.Vec3 { return core.Vec3{m[3*i], m[3*i+1], m[3*i+2]} }

// Mul returns the product m·b.
//
// Complexity:
//   - 27 multiply-adds, no allocation.
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	var s float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s = 0
			for k := 0; k < 3; k++ {
				s += m[3*i+k] * b[3*k+j]
			}
			out[3*i+j] = s
		}
	}

	return out
}

// MulVec returns m·v.
func (m Mat3) MulVec(v core.Vec3) core.Vec3 {
	return core.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose returns mᵗ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Trace returns the sum of the diagonal.
func (m Mat3) Trace() float64 { return m[0] + m[4] + m[8] }

// Scale returns alpha·m.
func (m Mat3) Scale(alpha float64) Mat3 {
	for i := range m {
		m[i] *= alpha
	}

	return m
}

// IsFinite reports whether every entry is finite.
func (m Mat3) IsFinite() bool {
	for _, x := range m {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// AllClose reports whether |m[i]-b[i]| <= eps for every entry (eps from opts).
func (m Mat3) AllClose(b Mat3, opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

// IsRotation reports whether m is orthonormal with det +1 within eps.
func (m Mat3) IsRotation(opts ...Option) bool {
	return ValidateRotation(m, opts...) == nil
}

// CrossCovariance accumulates C = Pᵗ·Q, i.e. C[j][k] = Σᵢ P[i][j]·Q[i][k].
//
// Errors:
//   - ErrDimensionMismatch if len(p) != len(q).
//
// Complexity:
//   - Time O(9N), Space O(1).
func CrossCovariance(p, q []core.Vec3) (Mat3, error) {
	if len(p) != len(q) {
		return Mat3{}, matrixErrorf("CrossCovariance", ErrDimensionMismatch)
	}
	var c Mat3
	for i := range p {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[3*j+k] += p[i][j] * q[i][k]
			}
		}
	}

	return c, nil
}
