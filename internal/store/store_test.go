package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/hungknow/community-nutriition-interface/internal/growth"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "growthchart.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestChildRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	dob := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	id, err := st.AddChild(ctx, Child{Name: "mira", Sex: growth.SexFemale, DateOfBirth: dob})
	if err != nil {
		t.Fatalf("add child: %v", err)
	}

	child, err := st.GetChildByName(ctx, "mira")
	if err != nil {
		t.Fatalf("get child: %v", err)
	}
	if child.ID != id {
		t.Fatalf("expected id %d, got %d", id, child.ID)
	}
	if child.Sex != growth.SexFemale {
		t.Fatalf("expected female, got %s", child.Sex)
	}
	if !child.DateOfBirth.Equal(dob) {
		t.Fatalf("expected dob %v, got %v", dob, child.DateOfBirth)
	}

	children, err := st.ListChildren(ctx)
	if err != nil {
		t.Fatalf("list children: %v", err)
	}
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
}

func TestMeasurementHistory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	dob := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	childID, err := st.AddChild(ctx, Child{Name: "tom", Sex: growth.SexMale, DateOfBirth: dob})
	if err != nil {
		t.Fatalf("add child: %v", err)
	}

	for i := 0; i < 4; i++ {
		_, err := st.InsertMeasurement(ctx, Measurement{
			ChildID:    childID,
			Kind:       growth.WeightForAge,
			Value:      3.5 + 0.5*float64(i),
			MeasuredAt: dob.AddDate(0, i, 0),
			Status:     growth.BetweenSD0AndSD1,
		})
		if err != nil {
			t.Fatalf("insert measurement %d: %v", i, err)
		}
	}
	_, err = st.InsertMeasurement(ctx, Measurement{
		ChildID:    childID,
		Kind:       growth.LengthForAge,
		Value:      58,
		MeasuredAt: dob.AddDate(0, 2, 0),
		Status:     growth.BetweenSD1NegAndSD0,
	})
	if err != nil {
		t.Fatalf("insert length measurement: %v", err)
	}

	kind := growth.WeightForAge
	got, err := st.ListMeasurements(ctx, childID, HistoryFilter{Kind: &kind})
	if err != nil {
		t.Fatalf("list measurements: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 weight measurements, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].MeasuredAt.Before(got[i-1].MeasuredAt) {
			t.Fatalf("measurements not ordered oldest first")
		}
	}
	if got[0].Status != growth.BetweenSD0AndSD1 {
		t.Fatalf("status did not round-trip: %s", got[0].Status)
	}

	got, err = st.ListMeasurements(ctx, childID, HistoryFilter{Kind: &kind, Last: 2})
	if err != nil {
		t.Fatalf("list last 2: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 measurements, got %d", len(got))
	}
	if got[1].Value != 5.0 {
		t.Fatalf("expected newest value 5.0, got %g", got[1].Value)
	}

	since := dob.AddDate(0, 2, 0)
	got, err = st.ListMeasurements(ctx, childID, HistoryFilter{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 measurements since month 2, got %d", len(got))
	}
}
