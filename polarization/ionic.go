package polarization

import (
	"github.com/katalvlaran/ferrox/crystal"
)

// IonicDipole sums the ionic contribution to the dipole moment of st in
// e·Å per lattice axis: each site contributes −zval · frac_i · |L_i|.
// The minus sign keeps the electron-counting convention of the
// electronic dipole, so electronic and ionic parts add directly.
//
// Engine-reported ionic dipoles are not used on purpose: they are
// branch-shifted inconsistently between runs, while this geometric sum
// is single-valued given the structure and one shared zval table.
func IonicDipole(st *crystal.Structure, zvals crystal.ZvalTable) ([3]float64, error) {
	var total [3]float64
	if err := zvals.Covers(st); err != nil {
		return total, err
	}

	lengths := st.Lattice.Lengths()
	for _, site := range st.Sites {
		z := zvals[site.Species]
		for ax := 0; ax < 3; ax++ {
			total[ax] -= z * site.Frac[ax] * lengths[ax]
		}
	}

	return total, nil
}
