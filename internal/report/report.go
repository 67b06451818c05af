package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/hungknow/community-nutriition-interface/internal/growth"
	"github.com/hungknow/community-nutriition-interface/internal/store"
)

const sparkChars = " .:-=+*#%@"

// Evaluation bundles everything needed to print one evaluation result.
type Evaluation struct {
	Request growth.Request
	Row     growth.ReferenceRow
	Status  growth.Status
}

// RenderEvaluation prints an evaluation summary with the resolved band
// boundaries.
func RenderEvaluation(w io.Writer, ev Evaluation, labels Labels) error {
	if labels == nil {
		labels = DefaultLabels()
	}
	unit := ev.Request.Kind.Unit()
	if _, err := fmt.Fprintf(w, "%s (%s)\n", ev.Request.Kind, ev.Request.Sex); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Measured: %.2f %s\n", ev.Request.Value, unit); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Band: %s\n", labels(ev.Status)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return renderBandTable(w, ev.Row, ev.Status, unit)
}

func renderBandTable(w io.Writer, row growth.ReferenceRow, status growth.Status, unit string) error {
	names := []string{"-3 SD", "-2 SD", "-1 SD", "median", "+1 SD", "+2 SD", "+3 SD"}
	values := []float64{row.SD3Neg, row.SD2Neg, row.SD1Neg, row.SD0, row.SD1, row.SD2, row.SD3}

	headers := []string{"Band", fmt.Sprintf("Boundary (%s)", unit), ""}
	tableRows := make([][]string, 0, len(names))
	for i, name := range names {
		mark := ""
		// Mark the lower boundary of the band the value fell into.
		if int(status) == i+1 {
			mark = "<- you"
		}
		tableRows = append(tableRows, []string{name, fmt.Sprintf("%.3f", values[i]), mark})
	}
	rightAlign := map[int]bool{1: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// RenderHistory prints a child's measurement history as a table plus a trend
// sparkline over the smoothed values.
func RenderHistory(w io.Writer, child store.Child, measurements []store.Measurement, window int, labels Labels) error {
	if labels == nil {
		labels = DefaultLabels()
	}
	if len(measurements) == 0 {
		_, err := fmt.Fprintln(w, "No measurements recorded.")
		return err
	}

	if _, err := fmt.Fprintf(w, "History for %s (%s, born %s)\n",
		child.Name, child.Sex, child.DateOfBirth.Format("2006-01-02")); err != nil {
		return err
	}

	headers := []string{"Date", "Kind", "Value", "Band"}
	tableRows := make([][]string, 0, len(measurements))
	values := make([]float64, 0, len(measurements))
	for _, m := range measurements {
		tableRows = append(tableRows, []string{
			m.MeasuredAt.Format("2006-01-02"),
			m.Kind.String(),
			fmt.Sprintf("%.2f %s", m.Value, m.Kind.Unit()),
			labels(m.Status),
		})
		values = append(values, m.Value)
	}
	rightAlign := map[int]bool{2: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	smoothed := MovingAverage(values, window)
	if _, err := fmt.Fprintf(w, "\nTrend: %s\n", Sparkline(smoothed)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Latest: %s\n", labels(measurements[len(measurements)-1].Status)); err != nil {
		return err
	}
	return nil
}
