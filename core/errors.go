// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
//
// All packages built on core return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and callers branch with errors.Is.

package core

import "errors"

var (
	// ErrShapeMismatch indicates two structures (or coordinate arrays) that must
	// be compared atom-for-atom have different lengths.
	ErrShapeMismatch = errors.New("core: shape mismatch")

	// ErrStructureMismatch indicates the element multisets of two structures
	// differ, or no element-preserving correspondence exists between them.
	ErrStructureMismatch = errors.New("core: structure mismatch")

	// ErrDegenerateGeometry indicates an empty atom set or a covariance matrix
	// the decomposition could not resolve.
	ErrDegenerateGeometry = errors.New("core: degenerate geometry")

	// ErrConversionFailure indicates the external notation toolkit rejected an
	// input or returned a malformed structure.
	ErrConversionFailure = errors.New("core: conversion failure")

	// ErrUnknownUnit indicates an unsupported LengthUnit value.
	ErrUnknownUnit = errors.New("core: unknown length unit")

	// ErrUnknownElement indicates an element symbol or atomic number outside
	// the periodic table.
	ErrUnknownElement = errors.New("core: unknown element")

	// ErrAtomOutOfRange indicates a bond endpoint outside 0..n-1.
	ErrAtomOutOfRange = errors.New("core: atom index out of range")

	// ErrLoopNotAllowed indicates a bond from an atom to itself.
	ErrLoopNotAllowed = errors.New("core: self-bond not allowed")

	// ErrMultiBondNotAllowed indicates a second bond between the same pair.
	ErrMultiBondNotAllowed = errors.New("core: duplicate bond not allowed")

	// ErrNonFinite indicates a NaN or Inf coordinate.
	ErrNonFinite = errors.New("core: NaN or Inf coordinate")

	// ErrInvalidMultiplicity indicates a spin multiplicity below 1.
	ErrInvalidMultiplicity = errors.New("core: multiplicity must be >= 1")
)
