package growth

import (
	"errors"
	"testing"
	"time"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	weekRows := make([]ReferenceRow, 0, 14)
	for w := 0; w <= 13; w++ {
		m := 3.2 + 0.2*float64(w)
		weekRows = append(weekRows, ReferenceRow{
			X: float64(w), L: 0.35, M: m, S: 0.13,
			SD3Neg: m - 1.2, SD2Neg: m - 0.8, SD1Neg: m - 0.4,
			SD0: m, SD1: m + 0.5, SD2: m + 1.0, SD3: m + 1.6,
		})
	}
	monthRows := make([]ReferenceRow, 0, 25)
	for mo := 0; mo <= 24; mo++ {
		m := 3.2 + 0.4*float64(mo)
		monthRows = append(monthRows, ReferenceRow{
			X: float64(mo), L: 0.3, M: m, S: 0.12,
			SD3Neg: m - 1.5, SD2Neg: m - 1.0, SD1Neg: m - 0.5,
			SD0: m, SD1: m + 0.6, SD2: m + 1.2, SD3: m + 2.0,
		})
	}
	reg, err := NewRegistry([]*Dataset{
		{Kind: WeightForAge, Sex: SexFemale, Axis: AxisWeeks, Rows: weekRows},
		{Kind: WeightForAge, Sex: SexFemale, Axis: AxisMonths, Rows: monthRows},
		{Kind: WeightForLength, Sex: SexFemale, Axis: AxisLengthCm, Rows: wflDataset().Rows},
		{Kind: WeightForLength, Sex: SexMale, Axis: AxisLengthCm, Rows: nil},
	})
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func TestClassifyBands(t *testing.T) {
	row := wflDataset().Rows[0]

	cases := []struct {
		value float64
		want  Status
	}{
		{1.5, BelowSD3Neg},
		{2.0, BetweenSD3NegAndSD2Neg},
		{2.45, BetweenSD1NegAndSD0},
		{2.6, BetweenSD0AndSD1},
		{3.1, BetweenSD2AndSD3},
		{4.0, AboveSD3},
	}
	for _, tc := range cases {
		if got := Classify(row, tc.value); got != tc.want {
			t.Fatalf("classify %g: expected %s, got %s", tc.value, tc.want, got)
		}
	}
}

func TestClassifyBoundaryTieBreak(t *testing.T) {
	row := wflDataset().Rows[0]

	// A value equal to a boundary belongs to the band above it.
	cases := []struct {
		value float64
		want  Status
	}{
		{row.SD3Neg, BetweenSD3NegAndSD2Neg},
		{row.SD2Neg, BetweenSD2NegAndSD1Neg},
		{row.SD1Neg, BetweenSD1NegAndSD0},
		{row.SD0, BetweenSD0AndSD1},
		{row.SD1, BetweenSD1AndSD2},
		{row.SD2, BetweenSD2AndSD3},
		{row.SD3, AboveSD3},
	}
	for _, tc := range cases {
		if got := Classify(row, tc.value); got != tc.want {
			t.Fatalf("classify boundary %g: expected %s, got %s", tc.value, tc.want, got)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	row := wflDataset().Rows[0]
	prev := BelowSD3Neg
	for v := 1.0; v <= 4.5; v += 0.01 {
		got := Classify(row, v)
		if got < prev {
			t.Fatalf("band order regressed at %g: %s after %s", v, got, prev)
		}
		prev = got
	}
}

func TestEvaluateWeightForLength(t *testing.T) {
	reg := testRegistry(t)
	dob := date(2024, time.May, 1)

	req := Request{
		Kind:        WeightForLength,
		Sex:         SexFemale,
		DateOfBirth: dob,
		Value:       1.5,
		Length:      45,
		At:          date(2024, time.June, 1),
	}
	status, err := reg.Evaluate(req)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if status != BelowSD3Neg {
		t.Fatalf("1.5 kg at 45 cm: expected %s, got %s", BelowSD3Neg, status)
	}

	req.Value = 2.5
	status, err = reg.Evaluate(req)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if status != BetweenSD0AndSD1 {
		t.Fatalf("2.5 kg at 45 cm: expected %s, got %s", BetweenSD0AndSD1, status)
	}

	req.Value = 4.0
	status, err = reg.Evaluate(req)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if status != AboveSD3 {
		t.Fatalf("4.0 kg at 45 cm: expected %s, got %s", AboveSD3, status)
	}
}

func TestEvaluateSelectsWeekBracketFirst(t *testing.T) {
	reg := testRegistry(t)
	dob := date(2024, time.January, 1)

	// 13 weeks exactly stays on the by-week table.
	at := dob.Add(13 * 7 * 24 * time.Hour)
	ds, err := reg.SelectDataset(WeightForAge, SexFemale, dob, at)
	if err != nil {
		t.Fatalf("select at 13 weeks: %v", err)
	}
	if ds.Axis != AxisWeeks {
		t.Fatalf("expected weeks axis at 13 weeks, got %s", ds.Axis)
	}

	// One week past the bracket moves to the by-month table.
	at = at.Add(7 * 24 * time.Hour)
	ds, err = reg.SelectDataset(WeightForAge, SexFemale, dob, at)
	if err != nil {
		t.Fatalf("select at 14 weeks: %v", err)
	}
	if ds.Axis != AxisMonths {
		t.Fatalf("expected months axis at 14 weeks, got %s", ds.Axis)
	}
}

func TestEvaluateBeyondBracketsFails(t *testing.T) {
	reg := testRegistry(t)
	dob := date(2020, time.January, 1)

	_, err := reg.Evaluate(Request{
		Kind:        WeightForAge,
		Sex:         SexFemale,
		DateOfBirth: dob,
		Value:       12,
		At:          date(2023, time.June, 1),
	})
	if !errors.Is(err, ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset past 24 months, got %v", err)
	}

	_, err = reg.Evaluate(Request{
		Kind:        WeightForAge,
		Sex:         SexFemale,
		DateOfBirth: date(2024, time.June, 1),
		Value:       3,
		At:          date(2024, time.May, 1),
	})
	if !errors.Is(err, ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset before birth, got %v", err)
	}
}

func TestEvaluateEmptyDatasetFails(t *testing.T) {
	reg := testRegistry(t)

	_, err := reg.Evaluate(Request{
		Kind:        WeightForLength,
		Sex:         SexMale,
		DateOfBirth: date(2024, time.May, 1),
		Value:       3,
		Length:      50,
		At:          date(2024, time.June, 1),
	})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestStatusStringsRoundTrip(t *testing.T) {
	for s := BelowSD3Neg; s <= AboveSD3; s++ {
		parsed, err := ParseStatus(s.String())
		if err != nil {
			t.Fatalf("parse %q: %v", s.String(), err)
		}
		if parsed != s {
			t.Fatalf("%q parsed to %s", s.String(), parsed)
		}
	}
	if _, err := ParseStatus("mystery"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestResolveMatchesEvaluatePath(t *testing.T) {
	reg := testRegistry(t)
	req := Request{
		Kind:        WeightForLength,
		Sex:         SexFemale,
		DateOfBirth: date(2024, time.May, 1),
		Value:       2.55,
		Length:      45.25,
		At:          date(2024, time.June, 1),
	}
	row, ds, err := reg.Resolve(req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ds.Axis != AxisLengthCm {
		t.Fatalf("expected length axis, got %s", ds.Axis)
	}
	status, err := reg.Evaluate(req)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := Classify(row, req.Value); got != status {
		t.Fatalf("marker row classification %s disagrees with evaluation %s", got, status)
	}
}
