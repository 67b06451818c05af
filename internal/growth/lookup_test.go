package growth

import (
	"errors"
	"math"
	"testing"
)

func wflDataset() *Dataset {
	return &Dataset{
		Kind: WeightForLength,
		Sex:  SexFemale,
		Axis: AxisLengthCm,
		Rows: []ReferenceRow{
			{X: 45, L: -0.3833, M: 2.4607, S: 0.09029, SD3Neg: 1.9, SD2Neg: 2.1, SD1Neg: 2.3, SD0: 2.5, SD1: 2.7, SD2: 3.0, SD3: 3.3},
			{X: 45.5, L: -0.3833, M: 2.5457, S: 0.09033, SD3Neg: 2.0, SD2Neg: 2.2, SD1Neg: 2.4, SD0: 2.6, SD1: 2.8, SD2: 3.1, SD3: 3.4},
			{X: 46, L: -0.3833, M: 2.6306, S: 0.09037, SD3Neg: 2.1, SD2Neg: 2.3, SD1Neg: 2.5, SD0: 2.7, SD1: 2.9, SD2: 3.2, SD3: 3.5},
		},
	}
}

func TestFindEntryExactMatch(t *testing.T) {
	ds := wflDataset()
	row, err := FindEntry(ds, 45.5)
	if err != nil {
		t.Fatalf("find entry: %v", err)
	}
	if row != ds.Rows[1] {
		t.Fatalf("expected exact row at x=45.5, got %+v", row)
	}
}

func TestFindEntryInterpolatesMidpoint(t *testing.T) {
	row, err := FindEntry(wflDataset(), 45.25)
	if err != nil {
		t.Fatalf("find entry: %v", err)
	}
	if math.Abs(row.SD0-2.55) > 1e-9 {
		t.Fatalf("expected sd0 2.55 at midpoint, got %g", row.SD0)
	}
	if math.Abs(row.X-45.25) > 1e-9 {
		t.Fatalf("expected x 45.25, got %g", row.X)
	}
	if math.Abs(row.M-(2.4607+2.5457)/2) > 1e-9 {
		t.Fatalf("expected interpolated M, got %g", row.M)
	}
}

func TestFindEntryClampsToEdges(t *testing.T) {
	ds := wflDataset()

	low, err := FindEntry(ds, 40)
	if err != nil {
		t.Fatalf("find entry below range: %v", err)
	}
	if low != ds.Rows[0] {
		t.Fatalf("expected first row unmodified, got %+v", low)
	}

	high, err := FindEntry(ds, 120)
	if err != nil {
		t.Fatalf("find entry above range: %v", err)
	}
	if high != ds.Rows[len(ds.Rows)-1] {
		t.Fatalf("expected last row unmodified, got %+v", high)
	}
}

func TestFindEntryEmptyDataset(t *testing.T) {
	_, err := FindEntry(&Dataset{}, 45)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
	_, err = FindEntry(nil, 45)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset for nil dataset, got %v", err)
	}
}
