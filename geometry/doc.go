// Package geometry is the numeric kernel of molalign: centroids, centering,
// optimal rotation fitting (Kabsch via SVD) and RMSD evaluation over plain
// []core.Vec3 point lists.
//
// Conventions:
//
//	OptimalRotation(P, Q) expects centered inputs with P[i] paired to Q[i]
//	and returns R such that R·pᵢ ≈ qᵢ. Superpose accepts raw coordinates
//	and returns a Transform (R, t) with R·pᵢ + t ≈ qᵢ.
//
// Numerics:
//
//	The covariance C = Pᵗ·Q is decomposed with gonum's SVD (matrix.SVD3),
//	never an eigen-solve of CᵗC. A reflection is corrected by flipping the
//	sign of the smallest singular direction when det(V·Uᵗ) < 0, so R is
//	always a proper rotation. The RMSD is read directly from the singular
//	values and clamped at zero against round-off.
//
// Errors:
//
//	core.ErrShapeMismatch       P and Q differ in length
//	core.ErrDegenerateGeometry  empty input, or the SVD failed
//	ErrUnknownAxis              RotationAbout with an axis other than x/y/z
//
// Every function is pure: inputs are never mutated and the results are
// freshly allocated.
package geometry
