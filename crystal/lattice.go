package crystal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lengths returns the Euclidean lengths |a|, |b|, |c| of the three
// lattice vectors, in Å.
func (l Lattice) Lengths() [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = math.Hypot(math.Hypot(l.Matrix[i][0], l.Matrix[i][1]), l.Matrix[i][2])
	}

	return out
}

// Volume returns the cell volume |det(M)| in Å³. A value of zero means
// the lattice vectors are coplanar; see Validate.
func (l Lattice) Volume() float64 {
	return math.Abs(mat.Det(l.dense()))
}

// Validate checks that the lattice spans a cell of nonzero volume,
// returning ErrSingularLattice otherwise.
func (l Lattice) Validate() error {
	if l.Volume() == 0 {
		return ErrSingularLattice
	}

	return nil
}

// Cartesian converts fractional coordinates in the lattice basis to
// Cartesian Å coordinates: cart = fracᵀ · M.
func (l Lattice) Cartesian(frac [3]float64) [3]float64 {
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[j] = frac[0]*l.Matrix[0][j] + frac[1]*l.Matrix[1][j] + frac[2]*l.Matrix[2][j]
	}

	return out
}

// dense copies the row-vector matrix into a gonum dense matrix.
func (l Lattice) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		l.Matrix[0][0], l.Matrix[0][1], l.Matrix[0][2],
		l.Matrix[1][0], l.Matrix[1][1], l.Matrix[1][2],
		l.Matrix[2][0], l.Matrix[2][1], l.Matrix[2][2],
	})
}
