// Package molalign measures how far apart two 3D structures of the same
// molecule are, and finds the rigid motion that brings one onto the other.
//
// What is in the box?
//
//	• RMSD with or without Kabsch superposition, in Bohr or Angstrom
//	• Symmetry-aware atom correspondence: relabelled atoms and
//	  interchangeable groups (methyl hydrogens, carboxylate oxygens) are
//	  matched through the bond graph before scoring
//	• Alignment that returns the moved structure in its own order and unit
//	• Conformer de-duplication by pairwise RMSD
//	• A SMILES ↔ 3D seam with an Open Babel backed toolkit
//
// Layout
//
//	core/      - elements, units, Vec3, AtomSet, BondGraph, Molecule
//	matrix/    - 3×3 matrices, cross-covariance and SVD (gonum)
//	geometry/  - centroids, rigid transforms, Kabsch fit, RMSD kernels
//	bfs/       - breadth-first traversal of bond graphs
//	symmetry/  - colour refinement and budgeted correspondence search
//	align/     - the Engine, backend registry and conformer filter
//	convert/   - Toolkit interface, structure boundary helpers
//	  obabel/  - Toolkit implementation over the obabel CLI, XYZ codec
//	builder/   - deterministic molecule fixtures for tests and benchmarks
//	config/    - envconfig + YAML configuration with validation
//	logging/   - zap logger construction
//	metrics/   - Prometheus collectors
//
// Quick example:
//
//	a, _ := builder.Build(builder.Ethane())
//	b, _, _ := builder.Shuffle(a, 42)
//	res, err := align.RMSD(a, b, align.WithLengthUnit(core.Angstrom))
//	// res.RMSD ≈ 0, res.Correspondence undoes the shuffle
//
//	go get github.com/katalvlaran/molalign
package molalign
