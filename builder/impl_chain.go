// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// impl_chain.go - linear alkanes CnH2n+2.
//
// Layout:
//   - Carbons 0..n-1 on a planar zigzag in the xy-plane.
//   - Hydrogens follow, carbon by carbon: two out-of-plane H (±z) each, and
//     one extra in-plane H on each terminal carbon (two on a lone carbon).
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/molalign/core"
)

// Zigzag step: |(dx, dy)| = lenCC.
const (
	zigDX = 1.26
	zigDY = 0.885
)

// Alkane returns the straight-chain alkane with n carbons.
//
// Errors:
//   - ErrTooFewAtoms if n < 1.
func Alkane(n int) Constructor {
	return func(f *fragment, _ builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Alkane(%d): %w", n, ErrTooFewAtoms)
		}
		carbons := make([]int, n)
		for k := 0; k < n; k++ {
			carbons[k] = f.addAtom("C", core.Vec3{float64(k) * zigDX, float64(k%2) * zigDY, 0})
			if k > 0 {
				f.addBond(carbons[k-1], carbons[k], 1)
			}
		}
		for k, c := range carbons {
			x := float64(k) * zigDX
			y := float64(k%2) * zigDY
			// out-of-plane hydrogens point away from the neighbours' side
			dy := -0.51
			if k%2 == 1 {
				dy = 0.51
			}
			for _, z := range []float64{0.89, -0.89} {
				f.addBond(c, f.addAtom("H", core.Vec3{x, y + dy, z}), 1)
			}
			if k == 0 {
				f.addBond(c, f.addAtom("H", core.Vec3{x - 1.03, y, 0}), 1)
			}
			if k == n-1 {
				f.addBond(c, f.addAtom("H", core.Vec3{x + 1.03, y, 0}), 1)
			}
		}

		return nil
	}
}
