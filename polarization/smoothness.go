package polarization

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// MaxSplineJump measures how far the series departs from a smooth curve:
// for every interior point, a natural cubic spline is fitted through all
// other points and the absolute prediction residual at the left-out
// index is taken; the maximum residual is returned. Endpoints are kept
// as knots so no prediction is an extrapolation.
//
// A smooth path yields residuals near zero; a branch-correction mistake
// or a bad engine run shows up as one large jump. Series shorter than
// three points have no interior and report zero.
func MaxSplineJump(series []float64) float64 {
	n := len(series)
	if n < 3 {
		return 0
	}

	xs := make([]float64, 0, n-1)
	ys := make([]float64, 0, n-1)
	var maxJump float64
	for i := 1; i < n-1; i++ {
		xs, ys = xs[:0], ys[:0]
		for j, y := range series {
			if j == i {
				continue
			}
			xs = append(xs, float64(j))
			ys = append(ys, y)
		}

		var spline interp.NaturalCubic
		if err := spline.Fit(xs, ys); err != nil {
			// Unreachable: xs is strictly increasing with ≥2 knots.
			continue
		}
		if jump := math.Abs(series[i] - spline.Predict(float64(i))); jump > maxJump {
			maxJump = jump
		}
	}

	return maxJump
}
