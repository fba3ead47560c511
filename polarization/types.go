// Package polarization defines the chain record types and options for
// the polarization subpackage of github.com/katalvlaran/ferrox.
package polarization

import "github.com/katalvlaran/ferrox/crystal"

// Step is one calculation record in the interpolation chain. It is
// constructed once from an engine run's parsed output, never mutated,
// and discarded after Analyze returns.
//
// PElec is the raw electronic dipole in e·Å per lattice axis, the
// convention engines report when run with the polarization flag on.
// Zvals, TaskLabel, JobDir and UUID are optional.
type Step struct {
	Structure     *crystal.Structure
	Energy        float64
	EnergyPerAtom float64
	PElec         []float64
	Zvals         crystal.ZvalTable
	TaskLabel     string
	JobDir        string
	UUID          string
}

// Chain is the ordered sequence of Steps, strictly nonpolar→polar.
// Ordering is a caller invariant: Analyze performs no reordering and
// cannot detect a shuffled chain.
type Chain []Step

// DefaultBranchTolerance is the fraction of the lattice quantum above
// which a consecutive branch distance is flagged as a warning. The
// greedy walk can never move more than half a quantum per step, so a
// distance approaching 0.5·q means the branch pick was nearly ambiguous;
// a quarter quantum is the flagging threshold.
const DefaultBranchTolerance = 0.25

// Options configures Analyze.
//
// Fields:
//   - Zvals           — chain-level zval table. When set it is
//     authoritative; otherwise the table of the last step carrying one
//     (the polar endpoint, by the upstream convention) is used.
//   - BranchTolerance — warning threshold as a fraction of the quantum.
//     Zero or negative means DefaultBranchTolerance.
type Options struct {
	Zvals           crystal.ZvalTable
	BranchTolerance float64
}

// DefaultOptions returns Options with BranchTolerance=0.25 and no
// chain-level zval table.
func DefaultOptions() Options {
	return Options{BranchTolerance: DefaultBranchTolerance}
}

// AxisSeries holds one per-step value sequence for each lattice axis,
// aligned with chain order.
type AxisSeries struct {
	A, B, C []float64
}

// axis returns the series for axis index 0..2.
func (s *AxisSeries) axis(ax int) []float64 {
	switch ax {
	case 0:
		return s.A
	case 1:
		return s.B
	default:
		return s.C
	}
}

// BranchWarning flags one consecutive pair whose chosen branch distance
// exceeded the tolerance fraction of the quantum — a sign the path is
// too coarse for the continuity assumption the greedy walk relies on.
type BranchWarning struct {
	Step     int     // index of the later step of the pair
	Axis     int     // 0=a, 1=b, 2=c
	Distance float64 // |ΔP| between the chosen branch values, μC/cm²
	Quantum  float64 // quantum along the axis, μC/cm²
}

// Result is the immutable aggregate of one Analyze call. Series fields
// are aligned with chain order; polarization values are in μC/cm², raw
// dipole series in e·Å.
type Result struct {
	// SameBranch is the branch-corrected total polarization per axis.
	SameBranch AxisSeries
	// RawElectronic and RawIonic are the unscaled dipole contributions.
	RawElectronic AxisSeries
	RawIonic      AxisSeries
	// Quanta holds each step's own lattice quanta per axis.
	Quanta AxisSeries

	// Change is the polar-endpoint branch value minus the nonpolar one,
	// per axis; ChangeNorm is its Euclidean norm.
	Change     [3]float64
	ChangeNorm float64

	// MaxSplineJump is the largest leave-one-out spline residual of the
	// same-branch series per axis; EnergySplineJump is the same
	// diagnostic for the energy-per-atom series.
	MaxSplineJump    [3]float64
	EnergySplineJump float64

	// Warnings lists consecutive pairs whose branch distance exceeded
	// the tolerance. An empty slice means the path looked continuous.
	Warnings []BranchWarning

	// Pass-through identifying data for the caller's result record.
	Energies        []float64
	EnergiesPerAtom []float64
	Structures      []crystal.Structure
	TaskLabels      []string
	JobDirs         []string
	UUIDs           []string
	Zvals           crystal.ZvalTable
}
