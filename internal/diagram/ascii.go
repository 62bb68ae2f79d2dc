package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// CapacityData holds the totals compared in a verification run (L/s)
type CapacityData struct {
	RequiredFlow    float64
	VerticalTotal   float64
	HorizontalTotal float64
}

// SweepData holds total capacities over a range of diameters
type SweepData struct {
	Diameters    []float64 // m, ascending
	Vertical     []float64 // L/s, all branches
	Horizontal   []float64 // L/s, all branches
	RequiredFlow float64   // L/s
}

// PipeSectionData describes a partially filled pipe cross-section
type PipeSectionData struct {
	Label         string
	Diameter      float64 // m
	FillingDegree float64 // wetted fraction
	Velocity      float64 // m/s
	Capacity      float64 // L/s
}

// DrawCapacityBars draws horizontal bars of each total capacity against the
// required flow. The required flow is marked with │ on every bar.
func DrawCapacityBars(data CapacityData) string {
	var sb strings.Builder

	width := 40
	maxFlow := math.Max(data.RequiredFlow, math.Max(data.VerticalTotal, data.HorizontalTotal))
	if maxFlow <= 0 {
		return ""
	}
	scale := float64(width) / maxFlow
	reqMark := int(data.RequiredFlow * scale)

	sb.WriteString("\n")
	sb.WriteString("  CAPACITY VS REQUIRED FLOW\n")
	sb.WriteString("  ─────────────────────────\n\n")

	rows := []struct {
		name string
		flow float64
	}{
		{"Required", data.RequiredFlow},
		{"Vertical", data.VerticalTotal},
		{"Horizontal", data.HorizontalTotal},
	}

	for _, row := range rows {
		barLen := int(row.flow * scale)
		bar := []rune(strings.Repeat("█", barLen) + strings.Repeat(" ", width-barLen+1))
		if reqMark < len(bar) && row.name != "Required" {
			bar[reqMark] = '│'
		}
		status := ""
		if row.name != "Required" {
			status = " ✓"
			if row.flow < data.RequiredFlow {
				status = " ✗"
			}
		}
		sb.WriteString(fmt.Sprintf("  %-10s %s %8.3f L/s%s\n", row.name, string(bar), row.flow, status))
	}

	return sb.String()
}

// DrawPipeSection draws a pipe cross-section with the wetted part shaded.
// The filling degree is an area fraction, so the water line is placed
// where the shaded rows reach that share of the circle's area.
func DrawPipeSection(data PipeSectionData) string {
	var sb strings.Builder

	rows := 11
	cols := 22
	r := float64(rows) / 2

	// Row widths of the circle, bottom row last
	widths := make([]int, rows)
	total := 0
	for i := range widths {
		y := r - (float64(i) + 0.5)
		w := int(math.Round(2 * math.Sqrt(math.Max(r*r-y*y, 0)) * float64(cols) / float64(rows)))
		widths[i] = w
		total += w
	}

	target := int(math.Round(data.FillingDegree * float64(total)))
	wetFrom := rows
	acc := 0
	for i := rows - 1; i >= 0 && acc < target; i-- {
		acc += widths[i]
		wetFrom = i
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s PIPE, D = %.0f mm\n", strings.ToUpper(data.Label), data.Diameter*1000))
	sb.WriteString("  " + strings.Repeat("─", len(data.Label)+17) + "\n\n")

	for i, w := range widths {
		pad := (cols - w) / 2
		fill := strings.Repeat(" ", w)
		if i >= wetFrom {
			fill = strings.Repeat("░", w)
		}
		line := fmt.Sprintf("  %s(%s)%s", strings.Repeat(" ", pad), fill, strings.Repeat(" ", cols-w-pad))
		if i == wetFrom {
			line += fmt.Sprintf("  ◄─ water line, filling %.0f%%", data.FillingDegree*100)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  v = %.3f m/s, Q = %.3f L/s per branch\n", data.Velocity, data.Capacity))

	return sb.String()
}

// DrawSweepChart plots total vertical and horizontal capacity against
// diameter, with the required flow as a flat line
func DrawSweepChart(data SweepData) string {
	if len(data.Diameters) < 2 {
		return ""
	}

	required := make([]float64, len(data.Diameters))
	for i := range required {
		required[i] = data.RequiredFlow
	}

	caption := fmt.Sprintf("Total capacity (L/s), D = %.0f…%.0f mm: vertical, horizontal, required",
		data.Diameters[0]*1000, data.Diameters[len(data.Diameters)-1]*1000)

	graph := asciigraph.PlotMany(
		[][]float64{data.Vertical, data.Horizontal, required},
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(caption),
	)

	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
