// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molalign/core"
)

// Atomic numbers used across core tests.
const (
	ZH = 1
	ZC = 6
	ZO = 8
)

// Common sizes and tolerances.
const (
	NWater   = 3
	NMethane = 5
	Eps      = 1e-12
)

// waterCoords is a bent water geometry in Bohr (O first).
var waterCoords = []core.Vec3{
	{0.0253397, 0.01939466, -0.00696322},
	{0.22889176, 1.84438441, 0.16251426},
	{1.41760224, -0.62610794, -1.02954938},
}

// mustWater returns a bonded water molecule O-H, O-H.
func mustWater(t *testing.T, opts ...core.MoleculeOption) *core.Molecule {
	t.Helper()
	opts = append([]core.MoleculeOption{core.WithBonds([]core.Bond{{I: 0, J: 1, Order: 1}, {I: 0, J: 2, Order: 1}})}, opts...)
	m, err := core.NewMolecule([]string{"O", "H", "H"}, waterCoords, opts...)
	require.NoError(t, err)

	return m
}
