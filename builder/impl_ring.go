// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// impl_ring.go - planar aromatic rings CnHn.
//
// Layout: carbons 0..n-1 on a circle in the xy-plane (counter-clockwise from
// +x), then hydrogen n+k radially outside carbon k. Ring bonds carry the
// aromatic order 1.5, C-H bonds order 1.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molalign/core"
)

const lenAromatic = 1.39

// Ring returns the planar CnHn ring. Ring(6) is benzene.
//
// Errors:
//   - ErrTooFewAtoms if n < 3.
func Ring(n int) Constructor {
	return func(f *fragment, _ builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Ring(%d): %w", n, ErrTooFewAtoms)
		}
		radius := lenAromatic / (2 * math.Sin(math.Pi/float64(n)))
		carbons := make([]int, n)
		for k := 0; k < n; k++ {
			t := 2 * math.Pi * float64(k) / float64(n)
			carbons[k] = f.addAtom("C", core.Vec3{radius * math.Cos(t), radius * math.Sin(t), 0})
		}
		for k := 0; k < n; k++ {
			f.addBond(carbons[k], carbons[(k+1)%n], 1.5)
		}
		for k := 0; k < n; k++ {
			t := 2 * math.Pi * float64(k) / float64(n)
			r := radius + lenCH
			f.addBond(carbons[k], f.addAtom("H", core.Vec3{r * math.Cos(t), r * math.Sin(t), 0}), 1)
		}

		return nil
	}
}

// Benzene returns Ring(6).
func Benzene() Constructor { return Ring(6) }
