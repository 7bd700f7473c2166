// SPDX-License-Identifier: MIT
// Package geometry: sentinel error set.
//
// Shape, emptiness and decomposition failures reuse the core sentinels
// (core.ErrShapeMismatch, core.ErrDegenerateGeometry) so callers match a single
// error vocabulary across packages.

package geometry

import (
	"errors"
	"fmt"
)

// ErrUnknownAxis indicates a rotation axis other than 'x', 'y' or 'z'.
var ErrUnknownAxis = errors.New("geometry: axis must be 'x', 'y' or 'z'")

// geometryErrorf wraps err with an operation tag.
func geometryErrorf(tag string, err error) error {
	return fmt.Errorf("geometry: %s: %w", tag, err)
}
