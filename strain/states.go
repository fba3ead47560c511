package strain

// secondOrder probes each Voigt component on its own: magnitude marker 1
// for the three normal strains, 2 for the three engineering shears.
var secondOrder = []StrainState{
	{1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0},
	{0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 2, 0},
	{0, 0, 0, 0, 0, 2},
}

// thirdOrderExtra are the coupled two-component states that expose the
// cross terms of the 3rd-order expansion: normal-normal pairs,
// normal-shear pairs, and shear-shear pairs. The enumeration follows
// the minimal basis of de Jong et al., "Charting the complete elastic
// properties of inorganic crystalline compounds" — fixed, not derived.
var thirdOrderExtra = []StrainState{
	{1, 1, 0, 0, 0, 0},
	{1, 0, 1, 0, 0, 0},
	{1, 0, 0, 2, 0, 0},
	{1, 0, 0, 0, 2, 0},
	{0, 1, 1, 0, 0, 0},
	{0, 0, 0, 2, 2, 0},
	{0, 0, 0, 2, 0, 2},
	{0, 0, 0, 0, 2, 2},
}

// States returns the canonical list of strain directions sufficient to
// fit an elastic tensor of the given expansion order: 6 states for
// order 2, 14 for order 3. Any other order yields ErrUnsupportedOrder.
// The order-2 set recurs verbatim as the head of the order-3 set.
//
// The returned slice is freshly allocated on every call; callers may
// reorder or mutate it freely.
func States(order int) ([]StrainState, error) {
	switch order {
	case 2:
		out := make([]StrainState, len(secondOrder))
		copy(out, secondOrder)

		return out, nil
	case 3:
		out := make([]StrainState, 0, len(secondOrder)+len(thirdOrderExtra))
		out = append(out, secondOrder...)
		out = append(out, thirdOrderExtra...)

		return out, nil
	default:
		return nil, ErrUnsupportedOrder
	}
}
