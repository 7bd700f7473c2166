// SPDX-License-Identifier: MIT
// Package: molalign/builder
//
// impl_small.go - fixed small molecules with hand-placed geometries.
//
// Atom order is part of the contract: tests rely on the indices documented
// on each constructor. Coordinates are in Angstrom, roughly experimental.

package builder

import (
	"math"

	"github.com/katalvlaran/molalign/core"
)

// Bond lengths (Angstrom) shared by the small-molecule constructors.
const (
	lenCC = 1.54
	lenCH = 1.09
	lenOH = 0.96
	lenCO = 1.34
	lenCd = 1.21 // C=O
)

// tetraCos is cos(180° - 109.47°): the axial offset of a tetrahedral substituent.
const tetraCos = 1.0 / 3.0

// Water returns H2O: 0=O, 1=H, 2=H; bonds O-H1, O-H2.
func Water() Constructor {
	return func(f *fragment, _ builderConfig) error {
		o := f.addAtom("O", core.Vec3{0, 0, 0})
		h1 := f.addAtom("H", core.Vec3{0.7572, 0.5865, 0})
		h2 := f.addAtom("H", core.Vec3{-0.7572, 0.5865, 0})
		f.addBond(o, h1, 1)
		f.addBond(o, h2, 1)

		return nil
	}
}

// Methane returns CH4: 0=C, 1..4=H on alternating cube corners.
func Methane() Constructor {
	return func(f *fragment, _ builderConfig) error {
		s := lenCH / math.Sqrt(3)
		c := f.addAtom("C", core.Vec3{0, 0, 0})
		for _, d := range []core.Vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}} {
			f.addBond(c, f.addAtom("H", d.Scale(s)), 1)
		}

		return nil
	}
}

// Ethane returns staggered C2H6 along z: 0=C, 1=C, 2..4=H on C0, 5..7=H on C1.
func Ethane() Constructor {
	return func(f *fragment, _ builderConfig) error {
		c0 := f.addAtom("C", core.Vec3{0, 0, 0})
		c1 := f.addAtom("C", core.Vec3{0, 0, lenCC})
		f.addBond(c0, c1, 1)

		axial := lenCH * tetraCos
		radial := lenCH * math.Sqrt(1-tetraCos*tetraCos)
		for k := 0; k < 3; k++ {
			phi := float64(k) * 2 * math.Pi / 3
			h := f.addAtom("H", core.Vec3{radial * math.Cos(phi), radial * math.Sin(phi), -axial})
			f.addBond(c0, h, 1)
		}
		for k := 0; k < 3; k++ {
			phi := float64(k)*2*math.Pi/3 + math.Pi/3
			h := f.addAtom("H", core.Vec3{radial * math.Cos(phi), radial * math.Sin(phi), lenCC + axial})
			f.addBond(c1, h, 1)
		}

		return nil
	}
}

// FormicAcid returns planar HCOOH: 0=C, 1=O (C=O), 2=O (C-O), 3=H on O2,
// 4=H on C.
func FormicAcid() Constructor {
	return func(f *fragment, _ builderConfig) error {
		c := f.addAtom("C", core.Vec3{0, 0, 0})
		o1 := f.addAtom("O", core.Vec3{0, lenCd, 0})
		o2 := f.addAtom("O", polar(lenCO, -30))
		h3 := f.addAtom("H", polar(lenCO, -30).Add(polar(lenOH, 15)))
		h4 := f.addAtom("H", polar(lenCH, 210))
		f.addBond(c, o1, 2)
		f.addBond(c, o2, 1)
		f.addBond(o2, h3, 1)
		f.addBond(c, h4, 1)

		return nil
	}
}

// polar returns the in-plane (z = 0) point at distance r and angle deg from +x.
func polar(r, deg float64) core.Vec3 {
	t := deg * math.Pi / 180

	return core.Vec3{r * math.Cos(t), r * math.Sin(t), 0}
}
