// SPDX-License-Identifier: MIT
// Package core: length units.

package core

import (
	"fmt"
	"strings"
)

// BohrToAngstrom is the CODATA 2018 Bohr radius in Angstrom.
const BohrToAngstrom = 0.529177210903

// LengthUnit names the unit of a coordinate array. The zero value is Bohr.
type LengthUnit string

const (
	Bohr     LengthUnit = "bohr"
	Angstrom LengthUnit = "angstrom"
)

// ParseLengthUnit accepts "bohr", "angstrom" (case-insensitive) and the
// common short forms "a0", "au", "a", "ang". The empty string maps to Bohr.
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bohr", "a0", "au":
		return Bohr, nil
	case "angstrom", "a", "ang":
		return Angstrom, nil
	}

	return "", fmt.Errorf("core: %q: %w", s, ErrUnknownUnit)
}

// Validate returns ErrUnknownUnit for anything but Bohr, Angstrom or "".
func (u LengthUnit) Validate() error {
	switch u {
	case "", Bohr, Angstrom:
		return nil
	}

	return fmt.Errorf("core: %q: %w", string(u), ErrUnknownUnit)
}

// Normalize maps the zero value to Bohr.
func (u LengthUnit) Normalize() LengthUnit {
	if u == "" {
		return Bohr
	}

	return u
}

// Factor returns the multiplier converting a length in u into a length in to.
func (u LengthUnit) Factor(to LengthUnit) (float64, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}
	from, dst := u.Normalize(), to.Normalize()
	switch {
	case from == dst:
		return 1, nil
	case from == Bohr:
		return BohrToAngstrom, nil
	default:
		return 1 / BohrToAngstrom, nil
	}
}

// Convert expresses x (given in u) in unit to.
func (u LengthUnit) Convert(x float64, to LengthUnit) (float64, error) {
	f, err := u.Factor(to)
	if err != nil {
		return 0, err
	}

	return x * f, nil
}
