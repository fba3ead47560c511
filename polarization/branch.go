package polarization

import (
	"math"

	"github.com/katalvlaran/ferrox/crystal"
)

// Unit-conversion constants for e·Å dipoles in an Å³ cell → μC/cm².
const (
	eChargeMuC = 1.6021766e-13 // elementary charge, μC
	cm2PerA2   = 1e16          // Å⁻² → cm⁻²
)

// Quanta returns the polarization quantum |e|·|L_i| / V per lattice
// axis, in μC/cm². Computed polarization is physical only modulo these
// values. A singular lattice yields crystal.ErrSingularLattice.
func Quanta(l crystal.Lattice) ([3]float64, error) {
	var q [3]float64
	v := l.Volume()
	if v == 0 {
		return q, crystal.ErrSingularLattice
	}

	lengths := l.Lengths()
	for ax := 0; ax < 3; ax++ {
		q[ax] = eChargeMuC * cm2PerA2 * lengths[ax] / v
	}

	return q, nil
}

// dipoleUnit is the signed e·Å → μC/cm² factor for a cell of volume v.
// The sign follows the electron-counting convention of the raw dipoles.
func dipoleUnit(v float64) float64 {
	return -eChargeMuC * cm2PerA2 / v
}

// SameBranch places raw per-step polarization values (μC/cm², aligned
// with chain order) on one continuous branch. The walk starts anchored
// at zero on the nonpolar endpoint; each subsequent step picks, among
// raw + n·quantum per axis, the value nearest the previous step's pick.
//
// Correct only under path continuity: if the true polarization moves by
// more than half a quantum between adjacent steps, the nearest pick is
// the wrong branch and no error can be raised here — Analyze surfaces
// suspect pairs as BranchWarnings instead.
func SameBranch(raw [][3]float64, quanta [3]float64) [][3]float64 {
	out := make([][3]float64, len(raw))
	var prev [3]float64 // nonpolar anchor: zero polarization
	for i, p := range raw {
		for ax := 0; ax < 3; ax++ {
			v := p[ax]
			if q := quanta[ax]; q != 0 {
				v += math.Round((prev[ax]-v)/q) * q
			}
			out[i][ax] = v
		}
		prev = out[i]
	}

	return out
}

// branchWarnings flags consecutive pairs whose branch distance exceeds
// tol·quantum on any axis.
func branchWarnings(branch [][3]float64, quanta [3]float64, tol float64) []BranchWarning {
	warnings := []BranchWarning{}
	for i := 1; i < len(branch); i++ {
		for ax := 0; ax < 3; ax++ {
			d := math.Abs(branch[i][ax] - branch[i-1][ax])
			if q := quanta[ax]; q > 0 && d > tol*q {
				warnings = append(warnings, BranchWarning{
					Step:     i,
					Axis:     ax,
					Distance: d,
					Quantum:  q,
				})
			}
		}
	}

	return warnings
}
