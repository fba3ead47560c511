// Package crystal provides the crystallographic primitives shared by the
// ferrox analysis packages: lattices, sites, structures, and the
// pseudopotential valence (zval) tables used for ionic dipole sums.
//
// What:
//
//   - Lattice wraps a 3×3 row-vector matrix (rows a, b, c, in Å).
//   - Site pairs a species symbol with fractional coordinates.
//   - Structure is a Lattice plus an ordered list of Sites.
//   - ZvalTable maps species symbol → valence electron count.
//
// Why:
//
//   - Polarization quanta need lattice lengths and the cell volume.
//   - Ionic dipoles need per-site species lookups against one zval table.
//   - Strain deformations act on the lattice matrix.
//
// Complexity:
//
//   - Volume, Lengths, Cartesian: O(1).
//   - ZvalTable.Covers: O(#sites).
//
// Errors:
//
//   - ErrSingularLattice: lattice vectors are coplanar (zero cell volume).
//   - ErrUnknownSpecies: a structure contains a species absent from the
//     zval table.
//
// All types are plain values; once constructed they are never mutated by
// any ferrox package.
package crystal
