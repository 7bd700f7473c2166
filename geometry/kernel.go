// SPDX-License-Identifier: MIT
// File: kernel.go
// Role: Centroid, centering, Kabsch rotation fitting and RMSD evaluation.
// Policy:
//   - Inputs are never mutated; every transform allocates a new slice.
//   - All loops run in index order; results are deterministic.

package geometry

import (
	"math"

	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/matrix"
)

// Centroid returns the arithmetic mean of coords.
//
// Errors:
//   - core.ErrDegenerateGeometry if coords is empty.
func Centroid(coords []core.Vec3) (core.Vec3, error) {
	if len(coords) == 0 {
		return core.Vec3{}, geometryErrorf("Centroid", core.ErrDegenerateGeometry)
	}
	var sum core.Vec3
	for _, c := range coords {
		sum = sum.Add(c)
	}

	return sum.Scale(1 / float64(len(coords))), nil
}

// Center returns coords translated so their centroid is the origin, together
// with the centroid that was removed.
func Center(coords []core.Vec3) ([]core.Vec3, core.Vec3, error) {
	c, err := Centroid(coords)
	if err != nil {
		return nil, core.Vec3{}, err
	}

	return Translate(coords, c.Scale(-1)), c, nil
}

// Translate returns coords shifted by t.
func Translate(coords []core.Vec3, t core.Vec3) []core.Vec3 {
	out := make([]core.Vec3, len(coords))
	for i, c := range coords {
		out[i] = c.Add(t)
	}

	return out
}

// checkPair enforces equal, non-zero lengths for a pair of point lists.
func checkPair(tag string, p, q []core.Vec3) error {
	if len(p) != len(q) {
		return geometryErrorf(tag, core.ErrShapeMismatch)
	}
	if len(p) == 0 {
		return geometryErrorf(tag, core.ErrDegenerateGeometry)
	}

	return nil
}

// OptimalRotation returns the proper rotation R minimising Σ|R·pᵢ − qᵢ|² for
// two centered point lists with P[i] paired to Q[i], and the RMSD it achieves.
//
// Implementation:
//   - Stage 1: C = Pᵗ·Q (matrix.CrossCovariance).
//   - Stage 2: C = U·Σ·Vᵗ (matrix.SVD3, gonum LAPACK path).
//   - Stage 3: d = sign(det(V·Uᵗ)); R = V·diag(1, 1, d)·Uᵗ.
//   - Stage 4: rmsd = sqrt(max(0, (ΣP² + ΣQ² − 2(σ₁ + σ₂ + d·σ₃)) / N)).
//
// Errors:
//   - core.ErrShapeMismatch if len(P) != len(Q).
//   - core.ErrDegenerateGeometry if P is empty or the SVD fails.
//
// Complexity:
//   - Time O(N), Space O(1) beyond the 3×3 workspace.
//
// Notes:
//   - N = 1 and coincident inputs yield a zero covariance; the SVD still
//     succeeds and the RMSD evaluates to 0.
//   - The reflection correction keeps det(R) = +1 for planar and linear inputs.
func OptimalRotation(p, q []core.Vec3) (matrix.Mat3, float64, error) {
	if err := checkPair("OptimalRotation", p, q); err != nil {
		return matrix.Mat3{}, 0, err
	}
	c, err := matrix.CrossCovariance(p, q)
	if err != nil {
		return matrix.Mat3{}, 0, geometryErrorf("OptimalRotation", err)
	}
	svd, err := matrix.SVD3(c)
	if err != nil {
		return matrix.Mat3{}, 0, geometryErrorf("OptimalRotation", core.ErrDegenerateGeometry)
	}

	d := 1.0
	if svd.V.Mul(svd.U.Transpose()).Det() < 0 {
		d = -1
	}
	r := svd.V.Mul(matrix.Diag(1, 1, d)).Mul(svd.U.Transpose())

	var sp, sq float64
	for i := range p {
		sp += p[i].Norm2()
		sq += q[i].Norm2()
	}
	e := sp + sq - 2*(svd.Values[0]+svd.Values[1]+d*svd.Values[2])

	return r, math.Sqrt(math.Max(0, e/float64(len(p)))), nil
}

// RMSDFixed returns sqrt(Σ|pᵢ − qᵢ|² / N) without any fitting.
//
// Errors:
//   - core.ErrShapeMismatch if len(P) != len(Q).
//   - core.ErrDegenerateGeometry if P is empty.
func RMSDFixed(p, q []core.Vec3) (float64, error) {
	if err := checkPair("RMSDFixed", p, q); err != nil {
		return 0, err
	}
	var s float64
	for i := range p {
		s += p[i].Sub(q[i]).Norm2()
	}

	return math.Sqrt(s / float64(len(p))), nil
}

// Superpose fits uncentered P onto uncentered Q. The returned transform maps
// every pᵢ to approximately qᵢ; the float is the RMSD after fitting.
func Superpose(p, q []core.Vec3) (Transform, float64, error) {
	if err := checkPair("Superpose", p, q); err != nil {
		return Transform{}, 0, err
	}
	pc, cp, err := Center(p)
	if err != nil {
		return Transform{}, 0, err
	}
	qc, cq, err := Center(q)
	if err != nil {
		return Transform{}, 0, err
	}
	r, rmsd, err := OptimalRotation(pc, qc)
	if err != nil {
		return Transform{}, 0, err
	}

	return Transform{Rotation: r, Translation: cq.Sub(r.MulVec(cp))}, rmsd, nil
}
