package polarization_test

import (
	"testing"

	"github.com/katalvlaran/ferrox/crystal"
	"github.com/katalvlaran/ferrox/polarization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eMuCcm is |e| in μC scaled by the Å²→cm² factor, as used for quanta.
const eMuCcm = 1.6021766e3

// TestQuanta_Cubic verifies q_i = |e|·L_i/V for a cubic cell.
func TestQuanta_Cubic(t *testing.T) {
	q, err := polarization.Quanta(crystal.Cubic(4))
	require.NoError(t, err)

	want := eMuCcm * 4 / 64
	for ax := 0; ax < 3; ax++ {
		assert.InDelta(t, want, q[ax], 1e-9, "axis %d", ax)
	}
}

// TestQuanta_Orthorhombic verifies per-axis quanta differ with the
// lattice lengths.
func TestQuanta_Orthorhombic(t *testing.T) {
	q, err := polarization.Quanta(crystal.Orthorhombic(2, 3, 4))
	require.NoError(t, err)

	const vol = 24.0
	assert.InDelta(t, eMuCcm*2/vol, q[0], 1e-9)
	assert.InDelta(t, eMuCcm*3/vol, q[1], 1e-9)
	assert.InDelta(t, eMuCcm*4/vol, q[2], 1e-9)
}

// TestQuanta_SingularLattice ensures a zero-volume cell is rejected.
func TestQuanta_SingularLattice(t *testing.T) {
	flat := crystal.NewLattice([3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	})

	_, err := polarization.Quanta(flat)
	assert.ErrorIs(t, err, crystal.ErrSingularLattice)
}

// TestSameBranch_Idempotent verifies that values already within half a
// quantum of their predecessor pass through unchanged: 0, 0.1, 0.2 with
// quantum 1.0 along a needs no correction.
func TestSameBranch_Idempotent(t *testing.T) {
	quanta := [3]float64{1, 1, 1}
	raw := [][3]float64{
		{0, 0, 0},
		{0.1, 0, 0},
		{0.2, 0, 0},
	}

	branch := polarization.SameBranch(raw, quanta)
	assert.Equal(t, raw, branch, "a continuous chain needs no correction")
}

// TestSameBranch_Wraparound verifies the nearest-branch pick: after 0.1,
// a raw 0.9 with quantum 1.0 must land on −0.1 (distance 0.2), not stay
// at 0.9 (distance 0.8).
func TestSameBranch_Wraparound(t *testing.T) {
	quanta := [3]float64{1, 1, 1}
	raw := [][3]float64{
		{0, 0, 0},
		{0.1, 0, 0},
		{0.9, 0, 0},
	}

	branch := polarization.SameBranch(raw, quanta)
	assert.InDelta(t, -0.1, branch[2][0], 1e-12, "0.9 must wrap to −0.1")

	net := branch[2][0] - branch[0][0]
	assert.InDelta(t, -0.1, net, 1e-12, "net change follows the endpoint branch values")
}

// TestSameBranch_AnchoredAtZero verifies the nonpolar endpoint is folded
// onto the branch nearest zero polarization.
func TestSameBranch_AnchoredAtZero(t *testing.T) {
	quanta := [3]float64{1, 1, 1}
	raw := [][3]float64{
		{2.3, 0, 0},
		{2.4, 0, 0},
	}

	branch := polarization.SameBranch(raw, quanta)
	assert.InDelta(t, 0.3, branch[0][0], 1e-12)
	assert.InDelta(t, 0.4, branch[1][0], 1e-12)
}

// TestSameBranch_QuantumOffsetInvariant verifies that shifting every raw
// value by an exact quantum multiple leaves the branch output identical.
func TestSameBranch_QuantumOffsetInvariant(t *testing.T) {
	quanta := [3]float64{1, 1, 1}
	raw := [][3]float64{
		{0, 0, 0},
		{0.1, 0, 0},
		{0.2, 0, 0},
	}
	shifted := [][3]float64{
		{2, 0, 0},
		{2.1, 0, 0},
		{2.2, 0, 0},
	}

	assert.Equal(t, polarization.SameBranch(raw, quanta), polarization.SameBranch(shifted, quanta))
}

// TestSameBranch_NonQuantumOffsetRemainder verifies that a constant
// offset that is not a quantum multiple shifts every branch value by
// exactly its non-quantum remainder, while the endpoint difference
// cancels the shift.
func TestSameBranch_NonQuantumOffsetRemainder(t *testing.T) {
	quanta := [3]float64{1, 1, 1}
	raw := [][3]float64{
		{0, 0, 0},
		{0.1, 0, 0},
		{0.2, 0, 0},
	}
	base := polarization.SameBranch(raw, quanta)

	// Offset 2.3 = 2 quanta + remainder 0.3.
	shifted := [][3]float64{
		{2.3, 0, 0},
		{2.4, 0, 0},
		{2.5, 0, 0},
	}
	moved := polarization.SameBranch(shifted, quanta)

	for i := range moved {
		assert.InDelta(t, base[i][0]+0.3, moved[i][0], 1e-12, "step %d carries the remainder", i)
	}
	netBase := base[2][0] - base[0][0]
	netMoved := moved[2][0] - moved[0][0]
	assert.InDelta(t, netBase, netMoved, 1e-12, "endpoint difference is offset-free")
}

// TestSameBranch_RoundTrip verifies a path returning to its start yields
// zero net change.
func TestSameBranch_RoundTrip(t *testing.T) {
	quanta := [3]float64{1, 1, 1}
	raw := [][3]float64{
		{0, 0, 0},
		{0.3, 0.1, 0},
		{0.45, 0.2, 0},
		{0.3, 0.1, 0},
		{0, 0, 0},
	}

	branch := polarization.SameBranch(raw, quanta)
	for ax := 0; ax < 3; ax++ {
		assert.InDelta(t, 0.0, branch[4][ax]-branch[0][ax], 1e-12, "axis %d", ax)
	}
}

// TestSameBranch_ZeroQuantumPassThrough verifies axes with a zero
// quantum are left untouched.
func TestSameBranch_ZeroQuantumPassThrough(t *testing.T) {
	quanta := [3]float64{1, 0, 0}
	raw := [][3]float64{
		{0.9, 7, -3},
		{1.8, 8, -4},
	}

	branch := polarization.SameBranch(raw, quanta)
	assert.InDelta(t, 7.0, branch[0][1], 1e-12)
	assert.InDelta(t, 8.0, branch[1][1], 1e-12)
	assert.InDelta(t, -3.0, branch[0][2], 1e-12)
	assert.InDelta(t, -4.0, branch[1][2], 1e-12)
}
