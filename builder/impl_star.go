// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// impl_star.go - Star (centre + n ligands) and Shifted (translated fragment).
//
// Star:
//   - Atom 0 is the centre; ligands 1..n sit at distance starRadius along
//     Fibonacci-sphere directions, each bonded to the centre with order 1.
//   - Fibonacci points are deterministic and well spread for any n.
//
// Shifted:
//   - Runs another constructor and translates only the atoms it added.
//
// Complexity: O(n).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molalign/core"
)

const starRadius = 1.5

// Star returns a centre atom with n identical ligands.
//
// Errors:
//   - ErrTooFewAtoms if n < 1.
//   - core.ErrUnknownElement for an unknown centre or ligand symbol.
func Star(center, ligand string, n int) Constructor {
	return func(f *fragment, _ builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Star(%d): %w", n, ErrTooFewAtoms)
		}
		for _, s := range []string{center, ligand} {
			if _, err := core.AtomicNumber(s); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}
		c := f.addAtom(center, core.Vec3{0, 0, 0})
		golden := math.Pi * (3 - math.Sqrt(5))
		for i := 0; i < n; i++ {
			y := 1 - 2*(float64(i)+0.5)/float64(n)
			r := math.Sqrt(1 - y*y)
			t := golden * float64(i)
			d := core.Vec3{r * math.Cos(t), y, r * math.Sin(t)}
			f.addBond(c, f.addAtom(ligand, d.Scale(starRadius)), 1)
		}

		return nil
	}
}

// Shifted wraps con so that every atom it adds is translated by t (Angstrom).
//
// Errors:
//   - ErrConstructFailed if con is nil; otherwise whatever con returns.
func Shifted(t core.Vec3, con Constructor) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("Shifted: %w", ErrConstructFailed)
		}
		start := len(f.coords)
		if err := con(f, cfg); err != nil {
			return err
		}
		for i := start; i < len(f.coords); i++ {
			f.coords[i] = f.coords[i].Add(t)
		}

		return nil
	}
}
