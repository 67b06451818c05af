package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hungknow/community-nutriition-interface/internal/growth"
	"github.com/hungknow/community-nutriition-interface/internal/store"
)

func sampleRow() growth.ReferenceRow {
	return growth.ReferenceRow{
		X: 45, L: -0.3833, M: 2.4607, S: 0.09029,
		SD3Neg: 1.9, SD2Neg: 2.1, SD1Neg: 2.3, SD0: 2.5, SD1: 2.7, SD2: 3.0, SD3: 3.3,
	}
}

func TestRenderEvaluation(t *testing.T) {
	var buf bytes.Buffer
	ev := Evaluation{
		Request: growth.Request{
			Kind:  growth.WeightForLength,
			Sex:   growth.SexFemale,
			Value: 2.5,
		},
		Row:    sampleRow(),
		Status: growth.BetweenSD0AndSD1,
	}
	if err := RenderEvaluation(&buf, ev, nil); err != nil {
		t.Fatalf("render evaluation: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "weight-for-length") {
		t.Fatalf("expected kind in output:\n%s", out)
	}
	if !strings.Contains(out, "Measured: 2.50 kg") {
		t.Fatalf("expected measured value in output:\n%s", out)
	}
	if !strings.Contains(out, "slightly above median") {
		t.Fatalf("expected default label in output:\n%s", out)
	}
	if !strings.Contains(out, "<- you") {
		t.Fatalf("expected band marker in output:\n%s", out)
	}
}

func TestRenderEvaluationInjectedLabels(t *testing.T) {
	var buf bytes.Buffer
	ev := Evaluation{
		Request: growth.Request{Kind: growth.WeightForAge, Sex: growth.SexMale, Value: 4},
		Row:     sampleRow(),
		Status:  growth.AboveSD3,
	}
	custom := Labels(func(s growth.Status) string { return "[" + s.String() + "]" })
	if err := RenderEvaluation(&buf, ev, custom); err != nil {
		t.Fatalf("render evaluation: %v", err)
	}
	if !strings.Contains(buf.String(), "[above-sd3]") {
		t.Fatalf("expected injected label in output:\n%s", buf.String())
	}
}

func TestRenderHistory(t *testing.T) {
	dob := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	child := store.Child{Name: "mira", Sex: growth.SexFemale, DateOfBirth: dob}
	measurements := []store.Measurement{
		{Kind: growth.WeightForAge, Value: 3.4, MeasuredAt: dob.AddDate(0, 1, 0), Status: growth.BetweenSD1NegAndSD0},
		{Kind: growth.WeightForAge, Value: 4.2, MeasuredAt: dob.AddDate(0, 2, 0), Status: growth.BetweenSD0AndSD1},
		{Kind: growth.WeightForAge, Value: 5.1, MeasuredAt: dob.AddDate(0, 3, 0), Status: growth.BetweenSD0AndSD1},
	}

	var buf bytes.Buffer
	if err := RenderHistory(&buf, child, measurements, 2, nil); err != nil {
		t.Fatalf("render history: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "History for mira") {
		t.Fatalf("expected header in output:\n%s", out)
	}
	if !strings.Contains(out, "2024-02-01") {
		t.Fatalf("expected measurement date in output:\n%s", out)
	}
	if !strings.Contains(out, "Trend:") {
		t.Fatalf("expected trend sparkline in output:\n%s", out)
	}
	if !strings.Contains(out, "Latest:") {
		t.Fatalf("expected latest status in output:\n%s", out)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, store.Child{Name: "x"}, nil, 1, nil); err != nil {
		t.Fatalf("render empty history: %v", err)
	}
	if !strings.Contains(buf.String(), "No measurements recorded.") {
		t.Fatalf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Band", "Boundary"}
	rows := [][]string{
		{"-3 SD", "1.900"},
		{"median", "2.500"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Band   Boundary" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "-3 SD     1.900" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "median    2.500" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{1, 2, 3})
	if len(out) != 3 {
		t.Fatalf("expected 3 characters, got %q", out)
	}
	if out[0] != ' ' || out[2] != '@' {
		t.Fatalf("expected extremes at the ends, got %q", out)
	}
	flat := Sparkline([]float64{2, 2, 2})
	if flat != "+++" {
		t.Fatalf("expected flat sparkline, got %q", flat)
	}
}

func TestMovingAverage(t *testing.T) {
	out := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("window 2 at %d: expected %g, got %g", i, want[i], out[i])
		}
	}
	passthrough := MovingAverage([]float64{5, 6}, 1)
	if passthrough[0] != 5 || passthrough[1] != 6 {
		t.Fatalf("window 1 should copy values, got %v", passthrough)
	}
}
