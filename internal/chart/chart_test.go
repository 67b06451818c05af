package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hungknow/community-nutriition-interface/internal/growth"
)

func testDataset() *growth.Dataset {
	rows := make([]growth.ReferenceRow, 0, 10)
	for i := 0; i <= 9; i++ {
		m := 3.0 + 0.5*float64(i)
		rows = append(rows, growth.ReferenceRow{
			X: float64(i), L: 0.3, M: m, S: 0.12,
			SD3Neg: m - 1.5, SD2Neg: m - 1.0, SD1Neg: m - 0.5,
			SD0: m, SD1: m + 0.5, SD2: m + 1.0, SD3: m + 1.5,
		})
	}
	return &growth.Dataset{Kind: growth.WeightForAge, Sex: growth.SexFemale, Axis: growth.AxisMonths, Rows: rows}
}

func TestRenderBandChart(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testDataset(), &Point{X: 4.5, Y: 5.2}, Options{
		Title:  "Weight-for-age",
		Width:  30,
		Height: 8,
		YUnit:  "kg",
		XUnit:  "months",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Weight-for-age") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	if !strings.Contains(out, "you are here") {
		t.Fatalf("expected marker legend entry in output")
	}
	if !strings.Contains(out, "median") {
		t.Fatalf("expected median band in legend")
	}
	if !strings.Contains(out, "months") {
		t.Fatalf("expected x axis unit in output")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Title + 8 plot rows + x axis + legend + unit note.
	if len(lines) < 12 {
		t.Fatalf("expected at least 12 lines, got %d", len(lines))
	}
}

func TestRenderWithoutMarker(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testDataset(), nil, Options{Width: 20, Height: 6}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "you are here") {
		t.Fatalf("did not expect marker legend entry")
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, &growth.Dataset{}, nil, Options{})
	if !errors.Is(err, growth.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestChartWidthFor(t *testing.T) {
	if got := ChartWidthFor(80); got != 80-axisLabelWidth-3 {
		t.Fatalf("unexpected width for 80 columns: %d", got)
	}
	if got := ChartWidthFor(5); got != minChartWidth {
		t.Fatalf("expected clamp to minimum, got %d", got)
	}
	if got := ChartWidthFor(0); got != minChartWidth {
		t.Fatalf("expected minimum for zero, got %d", got)
	}
}
