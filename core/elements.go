// SPDX-License-Identifier: MIT
// Package core: periodic table lookups.

package core

import (
	"fmt"
	"strings"
)

// symbols[z] is the symbol of atomic number z; index 0 is unused.
var symbols = [...]string{
	"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// numbers maps lower-cased symbols to atomic numbers.
var numbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z := 1; z < len(symbols); z++ {
		m[strings.ToLower(symbols[z])] = z
	}

	return m
}()

// MaxAtomicNumber is the largest atomic number known to this package.
const MaxAtomicNumber = len(symbols) - 1

// AtomicNumber returns the atomic number for a symbol (case-insensitive).
func AtomicNumber(symbol string) (int, error) {
	z, ok := numbers[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return 0, fmt.Errorf("core: symbol %q: %w", symbol, ErrUnknownElement)
	}

	return z, nil
}

// SymbolOf returns the canonical symbol for atomic number z.
func SymbolOf(z int) (string, error) {
	if z < 1 || z > MaxAtomicNumber {
		return "", fmt.Errorf("core: atomic number %d: %w", z, ErrUnknownElement)
	}

	return symbols[z], nil
}
