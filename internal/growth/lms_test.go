package growth

import (
	"errors"
	"math"
	"testing"
)

func TestLMSRoundTrip(t *testing.T) {
	// Representative (l, m, s) triples in the range of the shipped tables,
	// including an l close enough to zero for the logarithmic branch.
	triples := []struct{ l, m, s float64 }{
		{0.3809, 3.3464, 0.14602},
		{-0.3833, 2.4607, 0.09029},
		{1, 49.8842, 0.03795},
		{0, 9.4761, 0.12267},
		{1e-12, 16.1, 0.1},
	}
	zs := []float64{-3, -2, -1, 0, 1, 2, 3}
	for _, tr := range triples {
		for _, z := range zs {
			x, err := MeasurementFromZScore(tr.l, tr.m, tr.s, z)
			if err != nil {
				t.Fatalf("measurement from z=%g (l=%g): %v", z, tr.l, err)
			}
			back, err := ZScoreFromMeasurement(tr.l, tr.m, tr.s, x)
			if err != nil {
				t.Fatalf("z from measurement %g (l=%g): %v", x, tr.l, err)
			}
			if math.Abs(back-z) > 1e-6 {
				t.Fatalf("round trip drift for l=%g z=%g: got %g", tr.l, z, back)
			}
		}
	}
}

func TestLMSZeroBranchMatchesLimit(t *testing.T) {
	// The l->0 limit of the power branch is the exponential branch.
	xPow, err := MeasurementFromZScore(1e-11, 10, 0.1, 2)
	if err != nil {
		t.Fatalf("near-zero l: %v", err)
	}
	want := 10 * math.Exp(0.1*2)
	if math.Abs(xPow-want) > 1e-6 {
		t.Fatalf("expected %g near l=0, got %g", want, xPow)
	}
}

func TestLMSInvalidNumeric(t *testing.T) {
	// Strongly negative z with l*s large enough pushes the power base
	// non-positive.
	x, err := MeasurementFromZScore(2, 10, 0.2, -3)
	if !errors.Is(err, ErrInvalidNumeric) {
		t.Fatalf("expected ErrInvalidNumeric, got %v (x=%g)", err, x)
	}
	if !math.IsNaN(x) {
		t.Fatalf("expected NaN value alongside the error, got %g", x)
	}

	z, err := ZScoreFromMeasurement(0.5, 10, 0.1, -1)
	if !errors.Is(err, ErrInvalidNumeric) {
		t.Fatalf("expected ErrInvalidNumeric for negative measurement, got %v (z=%g)", err, z)
	}
}
