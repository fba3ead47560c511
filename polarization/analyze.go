package polarization

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ferrox/crystal"
)

// Analyze walks the nonpolar→polar chain once and returns the immutable
// aggregate Result. See the package documentation for the algorithm.
//
// Fail-fast: any malformed step (nil structure, missing dipole, NaN
// energy) aborts with a sentinel error naming the step; no partial
// result is ever returned. Pass DefaultOptions() unless a chain-level
// zval table or a custom warning tolerance is needed.
func Analyze(chain Chain, opts Options) (*Result, error) {
	n := len(chain)
	if n < 2 {
		return nil, ErrChainTooShort
	}
	tol := opts.BranchTolerance
	if tol <= 0 {
		tol = DefaultBranchTolerance
	}

	res := &Result{
		Energies:        make([]float64, 0, n),
		EnergiesPerAtom: make([]float64, 0, n),
		Structures:      make([]crystal.Structure, 0, n),
		TaskLabels:      make([]string, 0, n),
		JobDirs:         make([]string, 0, n),
		UUIDs:           make([]string, 0, n),
	}

	// Extraction pass. The zval table follows the last step carrying
	// one — the polar endpoint under the caller's ordering invariant —
	// unless the options supply a chain-level table.
	zvals := opts.Zvals
	for i, step := range chain {
		if step.Structure == nil {
			return nil, fmt.Errorf("step %d: %w", i, ErrMissingStructure)
		}
		if len(step.PElec) != 3 {
			return nil, fmt.Errorf("step %d: %w", i, ErrMissingDipole)
		}
		if math.IsNaN(step.Energy) || math.IsNaN(step.EnergyPerAtom) {
			return nil, fmt.Errorf("step %d: %w", i, ErrBadEnergy)
		}

		label := step.TaskLabel
		if label == "" {
			label = strconv.Itoa(i)
		}
		if opts.Zvals == nil && step.Zvals != nil {
			zvals = step.Zvals
		}

		res.Energies = append(res.Energies, step.Energy)
		res.EnergiesPerAtom = append(res.EnergiesPerAtom, step.EnergyPerAtom)
		res.Structures = append(res.Structures, *step.Structure)
		res.TaskLabels = append(res.TaskLabels, label)
		res.JobDirs = append(res.JobDirs, step.JobDir)
		res.UUIDs = append(res.UUIDs, step.UUID)
	}
	if zvals == nil {
		return nil, ErrMissingZval
	}
	res.Zvals = zvals

	// All steps share the polar endpoint's quanta and unit factor for
	// the branch walk; per-step quanta are reported alongside for the
	// caller's record.
	polar := chain[n-1].Structure
	walkQuanta, err := Quanta(polar.Lattice)
	if err != nil {
		return nil, fmt.Errorf("polar endpoint: %w", err)
	}
	unit := dipoleUnit(polar.Lattice.Volume())

	raw := make([][3]float64, n)
	for i, step := range chain {
		ionic, err := IonicDipole(step.Structure, zvals)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		stepQuanta, err := Quanta(step.Structure.Lattice)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		for ax := 0; ax < 3; ax++ {
			raw[i][ax] = (step.PElec[ax] + ionic[ax]) * unit
		}
		appendAxes(&res.RawElectronic, [3]float64{step.PElec[0], step.PElec[1], step.PElec[2]})
		appendAxes(&res.RawIonic, ionic)
		appendAxes(&res.Quanta, stepQuanta)
	}

	branch := SameBranch(raw, walkQuanta)
	for _, b := range branch {
		appendAxes(&res.SameBranch, b)
	}
	res.Warnings = branchWarnings(branch, walkQuanta, tol)

	for ax := 0; ax < 3; ax++ {
		res.Change[ax] = branch[n-1][ax] - branch[0][ax]
		res.MaxSplineJump[ax] = MaxSplineJump(res.SameBranch.axis(ax))
	}
	res.ChangeNorm = floats.Norm(res.Change[:], 2)
	res.EnergySplineJump = MaxSplineJump(res.EnergiesPerAtom)

	return res, nil
}

// appendAxes pushes one per-axis triple onto the series.
func appendAxes(s *AxisSeries, v [3]float64) {
	s.A = append(s.A, v[0])
	s.B = append(s.B, v[1])
	s.C = append(s.C, v[2])
}
