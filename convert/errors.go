// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/molalign/core"
)

// Sentinel errors for the conversion boundary.
var (
	// ErrNilStructure is returned when a nil structure crosses the boundary.
	ErrNilStructure = errors.New("convert: nil structure")

	// ErrNilToolkit is returned when no Toolkit is supplied.
	ErrNilToolkit = errors.New("convert: nil toolkit")

	// ErrInvalidOptions wraps Options validation failures.
	ErrInvalidOptions = errors.New("convert: invalid options")

	// ErrEmptyNotation reports an empty SMILES string, given or returned.
	ErrEmptyNotation = errors.New("convert: empty notation")

	// ErrMalformedStructure reports a toolkit result that is not a usable
	// structure (no atoms, missing or non-finite coordinates).
	ErrMalformedStructure = errors.New("convert: malformed structure")
)

// ConversionError is returned for every failed toolkit conversion. It
// carries the input for diagnosis and matches core.ErrConversionFailure
// under errors.Is.
type ConversionError struct {
	// Op is "smiles_to_structure" or "structure_to_smiles".
	Op string
	// Input is the SMILES given, or a formula summary of the structure given.
	Input string
	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert: %s %q: %v", e.Op, e.Input, e.Err)
}

// Unwrap exposes the cause.
func (e *ConversionError) Unwrap() error { return e.Err }

// Is reports a match against core.ErrConversionFailure.
func (e *ConversionError) Is(target error) bool { return target == core.ErrConversionFailure }
