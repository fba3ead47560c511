// Package strain defines the StrainState type and sentinel errors for
// the strain subpackage of github.com/katalvlaran/ferrox.
package strain

import "errors"

// ErrUnsupportedOrder indicates a tensor order outside {2, 3}; only
// deformation sets for 2nd- and 3rd-order elastic tensors exist.
var ErrUnsupportedOrder = errors.New("strain: only 2nd- and 3rd-order elastic tensors are supported")

// Voigt component indices within a StrainState.
const (
	XX = iota // ε₁₁
	YY        // ε₂₂
	ZZ        // ε₃₃
	YZ        // 2·ε₂₃ (engineering shear)
	XZ        // 2·ε₁₃
	XY        // 2·ε₁₂
)

// StrainState is one strain direction in Voigt notation, ordered
// (xx, yy, zz, yz, xz, xy). Entries are relative markers, not absolute
// magnitudes: 1 for a normal component, 2 for an engineering shear
// component, 0 for an untouched component. The absolute strain amplitude
// is supplied by the caller when deformations are generated.
type StrainState [6]int
