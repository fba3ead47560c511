package polarization

import "errors"

var (
	// ErrChainTooShort indicates fewer than two steps; branch correction
	// needs at least the nonpolar and polar endpoints.
	ErrChainTooShort = errors.New("polarization: chain needs at least the nonpolar and polar endpoints")
	// ErrMissingStructure indicates a step without a structure.
	ErrMissingStructure = errors.New("polarization: step has no structure")
	// ErrMissingDipole indicates a step whose electronic dipole is not a
	// 3-component vector.
	ErrMissingDipole = errors.New("polarization: step has no 3-component electronic dipole")
	// ErrBadEnergy indicates a NaN energy or energy-per-atom on a step.
	ErrBadEnergy = errors.New("polarization: step energy is not a number")
	// ErrMissingZval indicates no zval table was found on any step or in
	// the options.
	ErrMissingZval = errors.New("polarization: no zval table supplied")
)
