// Package chart renders WHO percentile band charts as braille-cell plots.
package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/hungknow/community-nutriition-interface/internal/growth"
)

type lineStyle struct {
	name   string
	period int
	on     int
}

type ansiColor struct {
	name string
	code string
}

const (
	defaultChartHeight  = 12
	minChartWidth       = 10
	axisLabelWidth      = 7
	axisSeparator       = " │ "
	colorReset          = "\x1b[0m"
	markerColor         = "\x1b[31m"
	terminalWidthBackup = 80
)

var bandNames = []string{"-3SD", "-2SD", "-1SD", "median", "+1SD", "+2SD", "+3SD"}

var lineStyles = []lineStyle{
	{name: "dotted", period: 4, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dashed", period: 6, on: 3},
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
}

var colorPalette = []ansiColor{
	{name: "yellow", code: "\x1b[33m"},
	{name: "magenta", code: "\x1b[35m"},
	{name: "cyan", code: "\x1b[36m"},
	{name: "green", code: "\x1b[32m"},
	{name: "cyan", code: "\x1b[36m"},
	{name: "magenta", code: "\x1b[35m"},
	{name: "yellow", code: "\x1b[33m"},
}

// Point is a marker position in the chart's value domain.
type Point struct {
	X float64
	Y float64
}

// Render draws the seven SD band curves of a dataset, with an optional
// measurement marker. Every plotted coordinate, marker included, is resolved
// through growth.FindEntry so the chart and the evaluator always agree.
// All series share one value scale; bands are never rescaled per series.
func Render(w io.Writer, ds *growth.Dataset, marker *Point, opts Options) error {
	if ds == nil || len(ds.Rows) == 0 {
		return growth.ErrEmptyDataset
	}
	opts = opts.normalized()

	xMin := ds.Rows[0].X
	xMax := ds.Rows[len(ds.Rows)-1].X

	bands := make([][]float64, len(bandNames))
	for i := range bands {
		bands[i] = make([]float64, opts.Width)
	}
	for col := 0; col < opts.Width; col++ {
		x := xMin
		if opts.Width > 1 {
			x = xMin + (xMax-xMin)*float64(col)/float64(opts.Width-1)
		}
		row, err := growth.FindEntry(ds, x)
		if err != nil {
			return err
		}
		bands[0][col] = row.SD3Neg
		bands[1][col] = row.SD2Neg
		bands[2][col] = row.SD1Neg
		bands[3][col] = row.SD0
		bands[4][col] = row.SD1
		bands[5][col] = row.SD2
		bands[6][col] = row.SD3
	}

	yMin, yMax := bandsMinMax(bands)
	if marker != nil {
		if marker.Y < yMin {
			yMin = marker.Y
		}
		if marker.Y > yMax {
			yMax = marker.Y
		}
	}
	if math.Abs(yMax-yMin) < 1e-9 {
		yMin--
		yMax++
	}

	dotRows := opts.Height * 4
	cells := make([][][]uint8, len(bands))
	for i := range cells {
		cells[i] = makeCells(opts.Height, opts.Width)
	}
	for si, values := range bands {
		style := lineStyles[si%len(lineStyles)]
		prevX, prevY := -1, -1
		for col, v := range values {
			px := col * 2
			py := valueToDotRow(v, yMin, yMax, dotRows)
			if prevX >= 0 {
				drawLine(prevX, prevY, px, py, func(dx, dy int) {
					if style.shouldPlot(dx) {
						setBrailleDot(cells[si], dx, dy)
					}
				})
			} else if style.shouldPlot(px) {
				setBrailleDot(cells[si], px, py)
			}
			prevX, prevY = px, py
		}
	}

	markerCells := makeCells(opts.Height, opts.Width)
	if marker != nil {
		mx := marker.X
		if mx < xMin {
			mx = xMin
		}
		if mx > xMax {
			mx = xMax
		}
		col := 0
		if xMax > xMin {
			col = int(math.Round((mx - xMin) / (xMax - xMin) * float64(opts.Width-1)))
		}
		py := valueToDotRow(marker.Y, yMin, yMax, dotRows)
		px := col * 2
		// A 2x2 dot block reads as a point against the thin band lines.
		for _, d := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			setBrailleDot(markerCells, px+d[0], py+d[1])
		}
	}

	useColor := shouldUseColor(w, opts.ForceColor)
	if opts.Title != "" {
		if _, err := fmt.Fprintln(w, opts.Title); err != nil {
			return err
		}
	}

	yLabels := makeAxisLabels(opts.Height, yMin, yMax)
	for y := 0; y < opts.Height; y++ {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", axisLabelWidth, yLabels[y], axisSeparator))
		for x := 0; x < opts.Width; x++ {
			if mask := markerCells[y][x]; mask != 0 {
				writeCell(&row, brailleFromMask(mask), markerColor, useColor)
				continue
			}
			mask, colorIdx := composeCell(cells, x, y)
			ch := brailleFromMask(mask)
			if colorIdx >= 0 {
				writeCell(&row, ch, colorPalette[colorIdx%len(colorPalette)].code, useColor)
			} else {
				row.WriteRune(ch)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	xLine := fmt.Sprintf("%*s%s%s", axisLabelWidth, "", axisSeparator,
		xAxisLine(xMin, xMax, opts.Width, opts.XUnit))
	if _, err := fmt.Fprintln(w, xLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, renderLegend(marker != nil, useColor)); err != nil {
		return err
	}
	if opts.YUnit != "" {
		if _, err := fmt.Fprintf(w, "Values in %s.\n", opts.YUnit); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(b *strings.Builder, ch rune, color string, useColor bool) {
	if useColor {
		b.WriteString(color)
		b.WriteRune(ch)
		b.WriteString(colorReset)
		return
	}
	b.WriteRune(ch)
}

func bandsMinMax(bands [][]float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, values := range bands {
		for _, v := range values {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if minVal == math.Inf(1) {
		minVal = 0
	}
	if maxVal == math.Inf(-1) {
		maxVal = 0
	}
	return minVal, maxVal
}

func autoChartWidth() int {
	return ChartWidthFor(terminalWidth())
}

// ChartWidthFor computes a plot width that fits within the total available width.
func ChartWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minChartWidth
	}
	axisWidth := axisLabelWidth + utf8.RuneCountInString(axisSeparator)
	plotWidth := totalWidth - axisWidth
	if plotWidth < minChartWidth {
		plotWidth = minChartWidth
	}
	return plotWidth
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func makeAxisLabels(height int, yMin, yMax float64) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = formatAxisValue(yMax)
	if height > 2 {
		labels[height/2] = formatAxisValue((yMin + yMax) / 2)
	}
	if height > 1 {
		labels[height-1] = formatAxisValue(yMin)
	}
	return labels
}

func formatAxisValue(v float64) string {
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func xAxisLine(xMin, xMax float64, width int, unit string) string {
	left := formatAxisValue(xMin)
	right := formatAxisValue(xMax)
	if unit != "" {
		right += " " + unit
	}
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]uint8, width)
	}
	return cells
}

func composeCell(seriesCells [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	colorIdx := -1
	for i, cells := range seriesCells {
		if y < 0 || y >= len(cells) {
			continue
		}
		if x < 0 || x >= len(cells[y]) {
			continue
		}
		cellMask := cells[y][x]
		if cellMask == 0 {
			continue
		}
		if colorIdx == -1 {
			colorIdx = i
		}
		mask |= cellMask
	}
	return mask, colorIdx
}

func (ls lineStyle) shouldPlot(x int) bool {
	if ls.period <= 1 {
		return true
	}
	if x < 0 {
		x = -x
	}
	return x%ls.period < ls.on
}

func valueToDotRow(v, minVal, maxVal float64, dotRows int) int {
	if dotRows <= 1 {
		return 0
	}
	pos := (v - minVal) / (maxVal - minVal)
	row := int(math.Round((1 - pos) * float64(dotRows-1)))
	if row < 0 {
		row = 0
	}
	if row >= dotRows {
		row = dotRows - 1
	}
	return row
}

func renderLegend(withMarker bool, useColor bool) string {
	parts := make([]string, 0, len(bandNames)+1)
	dot := brailleFromMask(0x01)
	for i, name := range bandNames {
		label := fmt.Sprintf("%c %s (%s)", dot, name, lineStyles[i%len(lineStyles)].name)
		if useColor {
			label = colorPalette[i%len(colorPalette)].code + label + colorReset
		}
		parts = append(parts, label)
	}
	if withMarker {
		label := fmt.Sprintf("%c you are here", brailleFromMask(0xFF))
		if useColor {
			label = markerColor + label + colorReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if y < 0 || x < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY < 0 || cellY >= len(cells) {
		return
	}
	if cellX < 0 || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
