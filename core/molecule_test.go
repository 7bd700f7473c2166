// SPDX-License-Identifier: MIT
// Package core_test verifies Molecule construction, immutability and capabilities.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molalign/core"
)

func TestNewMolecule(t *testing.T) {
	m := mustWater(t, core.WithCharge(-1), core.WithMultiplicity(2))

	assert.Equal(t, NWater, m.Len())
	assert.Equal(t, []int{ZO, ZH, ZH}, m.AtomicNumbers())
	assert.Equal(t, []string{"O", "H", "H"}, m.Symbols())
	assert.Equal(t, core.Bohr, m.LengthUnit())
	assert.Equal(t, -1, m.Charge())
	assert.Equal(t, 2, m.Multiplicity())
	assert.Len(t, m.Bonds(), 2)
	require.NotNil(t, m.Graph())
	assert.Equal(t, "Molecule(3 atoms, 2 bonds, bohr)", m.String())
}

func TestNewMolecule_Errors(t *testing.T) {
	_, err := core.NewMolecule([]string{"O", "Qq", "H"}, waterCoords)
	assert.ErrorIs(t, err, core.ErrUnknownElement)

	_, err = core.NewMolecule([]string{"O", "H"}, waterCoords)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)

	_, err = core.NewMolecule([]string{"O", "H", "H"}, waterCoords, core.WithMultiplicity(0))
	assert.ErrorIs(t, err, core.ErrInvalidMultiplicity)

	_, err = core.NewMolecule([]string{"O", "H", "H"}, waterCoords, core.WithBonds([]core.Bond{{I: 0, J: 3}}))
	assert.ErrorIs(t, err, core.ErrAtomOutOfRange)
}

func TestMolecule_NoBonds(t *testing.T) {
	m, err := core.FromNumbers([]int{ZO, ZH, ZH}, waterCoords)
	require.NoError(t, err)
	assert.Nil(t, m.Bonds())
	assert.Nil(t, m.Graph())
}

func TestMolecule_Immutability(t *testing.T) {
	coords := append([]core.Vec3(nil), waterCoords...)
	m, err := core.NewMolecule([]string{"O", "H", "H"}, coords)
	require.NoError(t, err)

	// Mutating the constructor input does not leak in.
	coords[0] = core.Vec3{9, 9, 9}
	assert.Equal(t, waterCoords[0], m.Coordinates()[0])

	// Mutating an accessor result does not leak in.
	got := m.Coordinates()
	got[1] = core.Vec3{}
	assert.Equal(t, waterCoords[1], m.Coordinates()[1])
	nums := m.AtomicNumbers()
	nums[0] = ZC
	assert.Equal(t, ZO, m.AtomicNumbers()[0])
}

func TestMolecule_WithCoordinates(t *testing.T) {
	m := mustWater(t)
	shifted := make([]core.Vec3, NWater)
	for i, c := range waterCoords {
		shifted[i] = c.Add(core.Vec3{1, 0, 0})
	}

	s, err := m.WithCoordinates(shifted)
	require.NoError(t, err)
	assert.Equal(t, shifted, s.Coordinates())
	assert.Equal(t, waterCoords, m.Coordinates())

	moved, ok := s.(*core.Molecule)
	require.True(t, ok)
	assert.Equal(t, m.Bonds(), moved.Bonds())

	_, err = m.WithCoordinates(shifted[:2])
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestMolecule_InUnit(t *testing.T) {
	m := mustWater(t)
	ang, err := m.InUnit(core.Angstrom)
	require.NoError(t, err)
	assert.Equal(t, core.Angstrom, ang.LengthUnit())
	assert.InDelta(t, waterCoords[1][1]*core.BohrToAngstrom, ang.Coordinates()[1][1], Eps)

	back, err := ang.InUnit(core.Bohr)
	require.NoError(t, err)
	for i := range waterCoords {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, waterCoords[i][k], back.Coordinates()[i][k], Eps)
		}
	}
}
