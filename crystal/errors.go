package crystal

import "errors"

var (
	// ErrSingularLattice indicates the three lattice vectors do not span a
	// cell of nonzero volume.
	ErrSingularLattice = errors.New("crystal: lattice vectors are linearly dependent (zero volume)")
	// ErrUnknownSpecies indicates a structure carries a species with no
	// entry in the zval table.
	ErrUnknownSpecies = errors.New("crystal: species missing from zval table")
)
