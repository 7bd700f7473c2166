// SPDX-License-Identifier: MIT

package geometry

import (
	"math"
	"strings"

	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/matrix"
)

// Transform is a rigid-body motion x ↦ Rotation·x + Translation.
type Transform struct {
	Rotation    matrix.Mat3
	Translation core.Vec3
}

// IdentityTransform returns the motion that leaves every point in place.
func IdentityTransform() Transform {
	return Transform{Rotation: matrix.Identity()}
}

// ApplyPoint moves a single point.
func (t Transform) ApplyPoint(x core.Vec3) core.Vec3 {
	return t.Rotation.MulVec(x).Add(t.Translation)
}

// Apply returns a new slice with every point moved by t.
func (t Transform) Apply(coords []core.Vec3) []core.Vec3 {
	out := make([]core.Vec3, len(coords))
	for i, c := range coords {
		out[i] = t.ApplyPoint(c)
	}

	return out
}

// Inverse returns the motion undoing t.
func (t Transform) Inverse() Transform {
	rt := t.Rotation.Transpose()

	return Transform{Rotation: rt, Translation: rt.MulVec(t.Translation).Scale(-1)}
}

// Scaled returns t with its translation multiplied by f (a unit change).
func (t Transform) Scaled(f float64) Transform {
	return Transform{Rotation: t.Rotation, Translation: t.Translation.Scale(f)}
}

// RotationAbout returns the right-handed rotation by degrees about a
// Cartesian axis ('x', 'y' or 'z', case-insensitive).
//
// Errors:
//   - ErrUnknownAxis for any other axis.
func RotationAbout(axis string, degrees float64) (matrix.Mat3, error) {
	theta := degrees * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)

	switch strings.ToLower(axis) {
	case "x":
		return matrix.Mat3{1, 0, 0, 0, c, -s, 0, s, c}, nil
	case "y":
		return matrix.Mat3{c, 0, s, 0, 1, 0, -s, 0, c}, nil
	case "z":
		return matrix.Mat3{c, -s, 0, s, c, 0, 0, 0, 1}, nil
	}

	return matrix.Mat3{}, geometryErrorf("RotationAbout("+axis+")", ErrUnknownAxis)
}

// Rotate returns coords rotated by r about the origin.
func Rotate(coords []core.Vec3, r matrix.Mat3) []core.Vec3 {
	return Transform{Rotation: r}.Apply(coords)
}

// Reorder returns coords permuted so out[i] = coords[perm[i]].
// perm must index into coords; callers validate it beforehand.
func Reorder(coords []core.Vec3, perm []int) []core.Vec3 {
	out := make([]core.Vec3, len(perm))
	for i, j := range perm {
		out[i] = coords[j]
	}

	return out
}
