// Package crystal defines the value types shared by the ferrox
// subpackages of github.com/katalvlaran/ferrox.
package crystal

import "fmt"

// Lattice is a crystal lattice as a 3×3 row-vector matrix:
// row 0 is the a vector, row 1 is b, row 2 is c, all in Å.
// A Lattice is a plain value and is never mutated after construction.
type Lattice struct {
	Matrix [3][3]float64
}

// NewLattice returns a Lattice with the given row-vector matrix.
func NewLattice(m [3][3]float64) Lattice {
	return Lattice{Matrix: m}
}

// Cubic returns a cubic lattice with edge length a (Å).
func Cubic(a float64) Lattice {
	return Orthorhombic(a, a, a)
}

// Orthorhombic returns an axis-aligned lattice with edge lengths
// a, b, c (Å).
func Orthorhombic(a, b, c float64) Lattice {
	return Lattice{Matrix: [3][3]float64{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, c},
	}}
}

// Site is one atom in a structure: a species symbol (e.g. "Ti", "O")
// and fractional coordinates in the lattice basis.
type Site struct {
	Species string
	Frac    [3]float64
}

// Structure is a lattice together with its ordered list of sites.
// Site order is meaningful to callers and is preserved everywhere.
type Structure struct {
	Lattice Lattice
	Sites   []Site
}

// NumSites reports the number of atoms in the structure.
func (s *Structure) NumSites() int { return len(s.Sites) }

// ZvalTable maps a species symbol to its pseudopotential valence
// electron count. One table is shared across a whole calculation family.
type ZvalTable map[string]float64

// Covers reports whether the table has an entry for every species in s.
// The first uncovered species is reported via ErrUnknownSpecies.
func (z ZvalTable) Covers(s *Structure) error {
	for _, site := range s.Sites {
		if _, ok := z[site.Species]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSpecies, site.Species)
		}
	}

	return nil
}
