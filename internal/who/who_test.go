package who

import (
	"math"
	"testing"
	"time"

	"github.com/hungknow/community-nutriition-interface/internal/growth"
)

func TestRegistryBuilds(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	for _, sex := range []growth.Sex{growth.SexFemale, growth.SexMale} {
		for _, key := range []struct {
			kind growth.Kind
			axis growth.Axis
		}{
			{growth.WeightForAge, growth.AxisWeeks},
			{growth.WeightForAge, growth.AxisMonths},
			{growth.LengthForAge, growth.AxisMonths},
			{growth.WeightForLength, growth.AxisLengthCm},
		} {
			ds, err := reg.Dataset(key.kind, sex, key.axis)
			if err != nil {
				t.Fatalf("missing dataset %s/%s/%s: %v", key.kind, sex, key.axis, err)
			}
			if len(ds.Rows) == 0 {
				t.Fatalf("dataset %s/%s/%s is empty", key.kind, sex, key.axis)
			}
		}
	}
}

func TestBandsMonotonePerRow(t *testing.T) {
	for _, rows := range [][]growth.ReferenceRow{
		weightForAgeWeeksGirls, weightForAgeWeeksBoys,
		weightForAgeMonthsGirls, weightForAgeMonthsBoys,
		lengthForAgeMonthsGirls, lengthForAgeMonthsBoys,
		weightForLengthGirls, weightForLengthBoys,
	} {
		for _, r := range rows {
			bands := []float64{r.SD3Neg, r.SD2Neg, r.SD1Neg, r.SD0, r.SD1, r.SD2, r.SD3}
			for i := 1; i < len(bands); i++ {
				if bands[i] < bands[i-1] {
					t.Fatalf("bands not monotone at x=%g: %v", r.X, bands)
				}
			}
		}
	}
}

func TestBandsConsistentWithLMS(t *testing.T) {
	// The published band columns are the LMS curve sampled at whole z-scores.
	for _, r := range weightForLengthGirls {
		for _, probe := range []struct {
			z    float64
			band float64
		}{
			{-3, r.SD3Neg}, {-2, r.SD2Neg}, {0, r.SD0}, {2, r.SD2}, {3, r.SD3},
		} {
			v, err := growth.MeasurementFromZScore(r.L, r.M, r.S, probe.z)
			if err != nil {
				t.Fatalf("lms at x=%g z=%g: %v", r.X, probe.z, err)
			}
			if math.Abs(v-probe.band) > 5e-4 {
				t.Fatalf("band at x=%g z=%g drifts from LMS: %g vs %g", r.X, probe.z, v, probe.band)
			}
		}
	}
}

func TestNewbornWeightEvaluates(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	dob := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	status, err := reg.Evaluate(growth.Request{
		Kind:        growth.WeightForAge,
		Sex:         growth.SexFemale,
		DateOfBirth: dob,
		Value:       3.2,
		At:          dob.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("evaluate newborn: %v", err)
	}
	if status < growth.BetweenSD2NegAndSD1Neg || status > growth.BetweenSD0AndSD1 {
		t.Fatalf("3.2 kg newborn girl should sit near the median, got %s", status)
	}
}
