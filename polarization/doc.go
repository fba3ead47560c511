// Package polarization recovers the same-branch macroscopic polarization
// along an ordered nonpolar→polar chain of engine calculations, together
// with lattice quanta, the net polarization change, and spline-based
// smoothness diagnostics.
//
// What:
//
//   - Step is one calculation record: structure, energies, electronic
//     dipole, optional zval table and provenance identifiers.
//   - Chain is the ordered nonpolar→polar sequence of Steps.
//   - Analyze walks the chain once and returns an immutable Result with
//     per-axis series (a, b, c), the net change vector and its norm,
//     per-step lattice quanta, spline discontinuity maxima, and
//     branch-continuity warnings.
//   - IonicDipole, Quanta, SameBranch and MaxSplineJump expose the
//     building blocks for callers that assemble their own pipelines.
//
// Why:
//
//   - Under periodic boundary conditions the computed dipole is defined
//     only modulo a lattice quantum per axis; adjacent images on a smooth
//     path must be placed on one continuous branch before the
//     spontaneous polarization ΔP can be read off the endpoints.
//
// Algorithm:
//
//  1. Extract per-step energies, structures and electronic dipoles.
//  2. Sum the ionic dipole per step from the shared zval table.
//  3. Convert to μC/cm² and walk the chain greedily: at each step pick,
//     among all quantum-equivalent values, the one nearest the previous
//     step's choice (the nonpolar start is anchored at zero).
//  4. Flag any consecutive branch distance above a configurable fraction
//     of the quantum — the greedy walk assumes path continuity, so a
//     large residual jump means the interpolation is too coarse.
//  5. Fit leave-one-out natural cubic splines through the branch values
//     and the energies per atom; report the maximum prediction residual
//     as a non-smoothness diagnostic.
//
// Complexity:
//
//   - Analyze: O(n·s) time for n steps of s sites, plus O(n²) for the
//     leave-one-out splines. Memory: O(n).
//
// Errors:
//
//   - ErrChainTooShort: fewer than two steps.
//   - ErrMissingStructure, ErrMissingDipole, ErrBadEnergy: malformed step.
//   - ErrMissingZval: no zval table on any step or in Options.
//   - crystal.ErrUnknownSpecies, crystal.ErrSingularLattice propagate
//     from geometry.
//
// The caller owns the chain ordering. A reversed or shuffled chain is
// not detectable here and silently produces wrong physics.
package polarization
