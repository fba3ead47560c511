// Package ferrox post-processes batches of first-principles total-energy
// calculations into physically meaningful quantities for crystalline
// materials.
//
// 🚀 What is ferrox?
//
//	A small, stateless analysis library that brings together:
//		• Strain-state enumeration: the minimal Voigt-notation probe set
//		  for fitting 2nd- and 3rd-order elastic tensors
//		• Polarization branch recovery: same-branch unwrapping of the
//		  lattice-quantum ambiguity along a nonpolar→polar path
//		• Lattice quanta, net polarization change and spline-based
//		  smoothness diagnostics
//
// ✨ Why choose ferrox?
//
//   - Pure computation – no I/O, no engine orchestration, no hidden state
//   - Fail-fast – sentinel errors for every malformed input, no defaults
//   - Deterministic – same chain in, same result out, safe to call
//     concurrently across independent workflows
//
// Everything is organized under three subpackages:
//
//	crystal/      — lattices, sites, structures, pseudopotential zval tables
//	strain/       — Voigt strain states and deformation expansion
//	polarization/ — the nonpolar→polar chain analyzer
//
// The caller owns ordering: polarization chains must arrive sorted from
// the nonpolar endpoint to the polar endpoint, the way the upstream
// workflow produced them.
//
//	go get github.com/katalvlaran/ferrox
package ferrox
