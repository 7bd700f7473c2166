// Package convert is the boundary between external structure objects and
// the numeric arrays the geometry kernel and symmetry resolver work on, and
// the seam to an external SMILES toolkit.
//
// Boundary
//
//   - Extract(s): validated core.AtomSet plus an optional core.BondGraph
//     (present only when s implements core.Bonded).
//   - Rebuild(s, coords): a copy of s with new coordinates, through
//     core.Rebuilder when available, otherwise as a *core.Molecule.
//
// Toolkit seam
//
//   - Toolkit is the capability interface a backend implements (see
//     package convert/obabel for one backed by the Open Babel CLI).
//   - SMILESToStructure and StructureToSMILES wrap a Toolkit call with
//     option validation, well-formedness checks on the result, metrics,
//     and *ConversionError on failure.
//
// Errors
//
//   - *ConversionError matches core.ErrConversionFailure under errors.Is and
//     carries Op, Input and the cause (Unwrap).
//   - ErrNilStructure, ErrNilToolkit, ErrInvalidOptions are caller mistakes
//     and are returned directly.
package convert
