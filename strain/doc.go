// Package strain enumerates the symmetric strain directions needed to
// fit second- and third-order elastic tensors, and expands them into
// deformation matrices for the calling workflow.
//
// What:
//
//   - StrainState is a Voigt-notation 6-tuple (xx, yy, zz, yz, xz, xy)
//     marking the relative nonzero components of one strain direction.
//   - States(order) returns the canonical probe basis: 6 single-component
//     states for order 2, those plus 8 coupled states for order 3.
//   - (StrainState).Tensor and Deformations expand states into symmetric
//     3×3 strain matrices at caller-chosen magnitudes.
//
// Why:
//
//   - A general (triclinic) 2nd-order elastic tensor has 21 independent
//     entries; symmetric finite differences along the 6 singles probe all
//     of them.
//   - 3rd-order constants couple strain components; the 8 two-component
//     states expose the cross terms that singles cannot reach.
//
// Complexity:
//
//   - States: O(1) — fixed literal tables.
//   - Tensor: O(1). Deformations: O(#states · #magnitudes).
//
// Errors:
//
//   - ErrUnsupportedOrder: order outside {2, 3}. No default, no clamp.
//
// The tables are literal on purpose: they are the minimal basis from
// elastic-tensor symmetry theory, validated upstream, and must be
// reproduced verbatim rather than derived at runtime.
package strain
