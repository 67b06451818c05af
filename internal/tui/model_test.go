package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/hungknow/community-nutriition-interface/internal/growth"
	"github.com/hungknow/community-nutriition-interface/internal/who"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	reg, err := who.Registry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return NewModel(reg, nil, Options{})
}

func TestBuildRequestParsesFields(t *testing.T) {
	m := newTestModel(t)
	m.inputs[fieldSex].SetValue("male")
	m.inputs[fieldBirth].SetValue("2024-03-20")
	m.inputs[fieldKind].SetValue("weight")
	m.inputs[fieldValue].SetValue("4.2")
	m.inputs[fieldDate].SetValue("2024-05-01")

	req, err := m.buildRequest()
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if req.Sex != growth.SexMale {
		t.Fatalf("expected male, got %s", req.Sex)
	}
	if req.Kind != growth.WeightForAge {
		t.Fatalf("expected weight-for-age, got %s", req.Kind)
	}
	if req.Value != 4.2 {
		t.Fatalf("expected value 4.2, got %g", req.Value)
	}
	want := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.Local)
	if !req.DateOfBirth.Equal(want) {
		t.Fatalf("expected dob %v, got %v", want, req.DateOfBirth)
	}
	if req.At.IsZero() {
		t.Fatalf("expected explicit evaluation date")
	}
}

func TestBuildRequestRequiresLengthForWFL(t *testing.T) {
	m := newTestModel(t)
	m.inputs[fieldSex].SetValue("female")
	m.inputs[fieldBirth].SetValue("2024-03-20")
	m.inputs[fieldKind].SetValue("weight-for-length")
	m.inputs[fieldValue].SetValue("2.5")

	if _, err := m.buildRequest(); err == nil {
		t.Fatalf("expected error without length")
	}

	m.inputs[fieldLength].SetValue("45")
	req, err := m.buildRequest()
	if err != nil {
		t.Fatalf("build request with length: %v", err)
	}
	if req.Length != 45 {
		t.Fatalf("expected length 45, got %g", req.Length)
	}
}

func TestBuildRequestRejectsBadDate(t *testing.T) {
	m := newTestModel(t)
	m.inputs[fieldSex].SetValue("female")
	m.inputs[fieldBirth].SetValue("not-a-date")
	m.inputs[fieldKind].SetValue("weight")
	m.inputs[fieldValue].SetValue("4")

	if _, err := m.buildRequest(); err == nil {
		t.Fatalf("expected error for malformed date of birth")
	}
}

func TestSubmitSurfacesNoDataset(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 100, 40
	m.inputs[fieldSex].SetValue("female")
	m.inputs[fieldBirth].SetValue("2018-01-01")
	m.inputs[fieldKind].SetValue("weight")
	m.inputs[fieldValue].SetValue("20")
	m.inputs[fieldDate].SetValue("2024-01-01")

	m.submit()
	if m.errMsg == "" {
		t.Fatalf("expected out-of-range error message")
	}
	if req, err := m.buildRequest(); err == nil {
		if _, evalErr := m.reg.Evaluate(req); !errors.Is(evalErr, growth.ErrNoDataset) {
			t.Fatalf("expected ErrNoDataset, got %v", evalErr)
		}
	}
}
