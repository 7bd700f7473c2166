// SPDX-License-Identifier: MIT
// File: molecule.go
// Role: Concrete in-memory structure implementing Structure, Bonded and Rebuilder.
// Policy:
//   - Constructors copy every input slice; no method returns internal storage.
//   - WithCoordinates never mutates the receiver.

package core

import "fmt"

// Molecule is an immutable collection of atoms with geometry, optional
// connectivity, total charge and spin multiplicity.
type Molecule struct {
	numbers      []int
	coords       []Vec3
	unit         LengthUnit
	charge       int
	multiplicity int
	graph        *BondGraph
}

// MoleculeOptions holds the optional Molecule attributes.
type MoleculeOptions struct {
	Unit         LengthUnit
	Charge       int
	Multiplicity int
	Bonds        []Bond
}

// MoleculeOption configures a Molecule at construction.
type MoleculeOption func(*MoleculeOptions)

// DefaultMoleculeOptions returns Bohr units, neutral charge, singlet, no bonds.
func DefaultMoleculeOptions() MoleculeOptions {
	return MoleculeOptions{Unit: Bohr, Multiplicity: 1}
}

// WithUnit sets the unit the coordinates are given in.
func WithUnit(u LengthUnit) MoleculeOption {
	return func(o *MoleculeOptions) { o.Unit = u }
}

// WithCharge sets the total molecular charge.
func WithCharge(q int) MoleculeOption {
	return func(o *MoleculeOptions) { o.Charge = q }
}

// WithMultiplicity sets the spin multiplicity (2S+1).
func WithMultiplicity(m int) MoleculeOption {
	return func(o *MoleculeOptions) { o.Multiplicity = m }
}

// WithBonds attaches connectivity. A nil or empty list means "no bond graph".
func WithBonds(bonds []Bond) MoleculeOption {
	return func(o *MoleculeOptions) { o.Bonds = append([]Bond(nil), bonds...) }
}

// NewMolecule builds a Molecule from element symbols and coordinates.
//
// Errors:
//   - ErrUnknownElement for an unrecognised symbol.
//   - everything FromNumbers returns.
func NewMolecule(symbols []string, coords []Vec3, opts ...MoleculeOption) (*Molecule, error) {
	nums := make([]int, len(symbols))
	for i, s := range symbols {
		z, err := AtomicNumber(s)
		if err != nil {
			return nil, fmt.Errorf("core: atom %d: %w", i, err)
		}
		nums[i] = z
	}

	return FromNumbers(nums, coords, opts...)
}

// FromNumbers builds a Molecule from atomic numbers and coordinates.
//
// Errors:
//   - ErrShapeMismatch, ErrUnknownElement, ErrNonFinite, ErrUnknownUnit from AtomSet validation.
//   - ErrAtomOutOfRange, ErrLoopNotAllowed, ErrMultiBondNotAllowed from the bond list.
//   - ErrInvalidMultiplicity if Multiplicity < 1.
func FromNumbers(numbers []int, coords []Vec3, opts ...MoleculeOption) (*Molecule, error) {
	o := DefaultMoleculeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	set, err := NewAtomSet(numbers, coords, o.Unit.Normalize())
	if err != nil {
		return nil, err
	}
	if o.Multiplicity < 1 {
		return nil, fmt.Errorf("core: multiplicity %d: %w", o.Multiplicity, ErrInvalidMultiplicity)
	}
	m := &Molecule{
		numbers:      set.Numbers,
		coords:       set.Coords,
		unit:         set.Unit,
		charge:       o.Charge,
		multiplicity: o.Multiplicity,
	}
	if len(o.Bonds) > 0 {
		if m.graph, err = NewBondGraph(len(numbers), o.Bonds); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Len returns the number of atoms.
func (m *Molecule) Len() int { return len(m.numbers) }

// AtomicNumbers returns a copy of the atomic numbers.
func (m *Molecule) AtomicNumbers() []int { return append([]int(nil), m.numbers...) }

// Symbols returns the element symbols in atom order.
func (m *Molecule) Symbols() []string {
	out := make([]string, len(m.numbers))
	for i, z := range m.numbers {
		out[i] = symbols[z]
	}

	return out
}

// Coordinates returns a copy of the geometry in LengthUnit().
func (m *Molecule) Coordinates() []Vec3 { return append([]Vec3(nil), m.coords...) }

// LengthUnit returns the unit of Coordinates().
func (m *Molecule) LengthUnit() LengthUnit { return m.unit }

// Charge returns the total molecular charge.
func (m *Molecule) Charge() int { return m.charge }

// Multiplicity returns the spin multiplicity.
func (m *Molecule) Multiplicity() int { return m.multiplicity }

// Bonds returns the canonical bond list, or nil when no connectivity is known.
func (m *Molecule) Bonds() []Bond {
	if m.graph == nil {
		return nil
	}

	return m.graph.Bonds()
}

// Graph returns the bond graph, or nil when no connectivity is known.
func (m *Molecule) Graph() *BondGraph { return m.graph }

// AtomSet returns an independent numeric view of the molecule.
func (m *Molecule) AtomSet() *AtomSet {
	return &AtomSet{
		Numbers: m.AtomicNumbers(),
		Coords:  m.Coordinates(),
		Unit:    m.unit,
	}
}

// WithCoordinates returns a copy of m carrying coords (same unit and atom order).
func (m *Molecule) WithCoordinates(coords []Vec3) (Structure, error) {
	return m.Moved(coords)
}

// Moved is WithCoordinates with a concrete return type.
func (m *Molecule) Moved(coords []Vec3) (*Molecule, error) {
	if len(coords) != len(m.numbers) {
		return nil, fmt.Errorf("core: %d coordinates for %d atoms: %w", len(coords), len(m.numbers), ErrShapeMismatch)
	}
	for i, c := range coords {
		if !c.IsFinite() {
			return nil, fmt.Errorf("core: atom %d coordinate %v: %w", i, c, ErrNonFinite)
		}
	}
	out := *m
	out.coords = append([]Vec3(nil), coords...)

	return &out, nil
}

// InUnit returns a copy of m with coordinates re-expressed in u.
func (m *Molecule) InUnit(u LengthUnit) (*Molecule, error) {
	f, err := m.unit.Factor(u)
	if err != nil {
		return nil, err
	}
	out := *m
	out.unit = u.Normalize()
	out.coords = make([]Vec3, len(m.coords))
	for i, c := range m.coords {
		out.coords[i] = c.Scale(f)
	}

	return &out, nil
}

// String renders a short formula-like summary, e.g. "Molecule(3 atoms, 2 bonds, bohr)".
func (m *Molecule) String() string {
	bonds := 0
	if m.graph != nil {
		bonds = m.graph.BondCount()
	}

	return fmt.Sprintf("Molecule(%d atoms, %d bonds, %s)", len(m.numbers), bonds, m.unit)
}

var (
	_ Structure = (*Molecule)(nil)
	_ Bonded    = (*Molecule)(nil)
	_ Rebuilder = (*Molecule)(nil)
)
