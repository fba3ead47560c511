package strain

import "gonum.org/v1/gonum/mat"

// Tensor expands the state into a symmetric 3×3 strain matrix at the
// given amplitude. Normal markers map straight onto the diagonal;
// engineering-shear markers (which already carry the factor 2) are
// halved into the off-diagonal tensor components, so a shear state at
// amplitude δ produces tensor shear ε_ij = δ.
func (s StrainState) Tensor(amplitude float64) *mat.SymDense {
	v := [6]float64{}
	for i, marker := range s {
		v[i] = float64(marker) * amplitude
	}

	t := mat.NewSymDense(3, nil)
	t.SetSym(0, 0, v[XX])
	t.SetSym(1, 1, v[YY])
	t.SetSym(2, 2, v[ZZ])
	t.SetSym(1, 2, v[YZ]/2)
	t.SetSym(0, 2, v[XZ]/2)
	t.SetSym(0, 1, v[XY]/2)

	return t
}

// Deformations expands every state at every amplitude into the full set
// of strain matrices a workflow feeds to its simulation engine, ordered
// state-major (all amplitudes of state 0, then state 1, ...).
func Deformations(states []StrainState, amplitudes []float64) []*mat.SymDense {
	out := make([]*mat.SymDense, 0, len(states)*len(amplitudes))
	for _, s := range states {
		for _, a := range amplitudes {
			out = append(out, s.Tensor(a))
		}
	}

	return out
}
