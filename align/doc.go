// Package align computes the root-mean-square deviation between two
// structures of the same molecule and the rigid motion that achieves it.
//
// An Engine combines two lower layers:
//
//   - symmetry.Resolve proposes atom correspondences (or only the identity
//     when symmetry handling is off);
//   - geometry.Superpose scores each candidate with the Kabsch fit
//     (or geometry.RMSDFixed when superposition is off).
//
// The lowest RMSD wins; candidates within TieTolerance of the current best
// keep the earlier one, so the identity wins ties whenever it is a candidate.
//
// Units
//
//	Inputs may be in Bohr or Angstrom, independently. All arithmetic happens
//	in Bohr. Result.RMSD, Result.Translation and filter thresholds are in
//	Options.Unit (Bohr by default).
//
// Result convention
//
//	For RMSD(a, b): aᵢ ≈ Rotation·b_{Correspondence[i]} + Translation.
//	Align(mobile, reference) evaluates RMSD(reference, mobile) and applies
//	that motion to mobile, keeping mobile's atom order, unit and bonds.
//
// Backends
//
//	Register/Lookup map names to Backend implementations. "molalign"
//	is always present and is a default Engine. BackendFromConfig resolves
//	config.Config.Backend, building the Engine from the configuration when
//	the name is "molalign".
//
// Conformers
//
//	FilterConformers removes every conformer that lies within a threshold
//	RMSD of an earlier kept one. FilterConformerIndicesWith runs the same
//	walk over any Backend, and FilterConformerIndicesConfig takes backend,
//	threshold and unit from a config.Config.
//
// Search limits
//
//	With symmetry on, MaxCandidates bounds the correspondences scored. When
//	the bound is hit Result.Exhaustive is false and Result.RMSD is an upper
//	bound on the true minimum. RMSDContext and AlignContext stop the search
//	when their context is cancelled.
//
// Observability
//
//	Each call updates the collectors in package metrics and emits one debug
//	line on Options.Logger.
//
// Example:
//
//	res, err := align.RMSD(a, b, align.WithLengthUnit(core.Angstrom))
//	moved, res, err := align.Align(mobile, reference)
package align
