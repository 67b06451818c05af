package growth

import (
	"fmt"
	"math"
)

// lmsZeroTol is the threshold below which the Box-Cox power parameter is
// treated as zero and the logarithmic branch applies.
const lmsZeroTol = 1e-10

// MeasurementFromZScore converts a z-score to a measurement value using the
// Box-Cox LMS formula. Used to derive smooth percentile curves from LMS
// parameters; band classification compares against the published SD fields
// directly and never round-trips through here.
func MeasurementFromZScore(l, m, s, z float64) (float64, error) {
	if math.Abs(l) < lmsZeroTol {
		return m * math.Exp(s*z), nil
	}
	base := 1 + l*s*z
	if base <= 0 {
		return math.NaN(), fmt.Errorf("%w: non-positive power base %g", ErrInvalidNumeric, base)
	}
	return m * math.Pow(base, 1/l), nil
}

// ZScoreFromMeasurement is the inverse of MeasurementFromZScore.
func ZScoreFromMeasurement(l, m, s, x float64) (float64, error) {
	ratio := x / m
	if ratio <= 0 {
		return math.NaN(), fmt.Errorf("%w: non-positive ratio %g", ErrInvalidNumeric, ratio)
	}
	if math.Abs(l) < lmsZeroTol {
		return math.Log(ratio) / s, nil
	}
	return (math.Pow(ratio, l) - 1) / (l * s), nil
}
