package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSweep() SweepData {
	return SweepData{
		Diameters:    []float64{0.1, 0.125, 0.15, 0.175},
		Vertical:     []float64{112.5, 175.7, 253.1, 344.5},
		Horizontal:   []float64{18.4, 31.9, 50.2, 73.5},
		RequiredFlow: 38,
	}
}

func TestDrawCapacityBars(t *testing.T) {
	t.Parallel()

	out := DrawCapacityBars(CapacityData{RequiredFlow: 38, VerticalTotal: 112.5, HorizontalTotal: 18.4})
	assert.Contains(t, out, "Required")
	assert.Contains(t, out, "112.500 L/s ✓")
	assert.Contains(t, out, "18.400 L/s ✗")

	assert.Empty(t, DrawCapacityBars(CapacityData{}))
}

func TestDrawPipeSection(t *testing.T) {
	t.Parallel()

	out := DrawPipeSection(PipeSectionData{Label: "Vertical", Diameter: 0.1, FillingDegree: 0.33, Velocity: 10.85, Capacity: 28.12})
	assert.Contains(t, out, "VERTICAL PIPE, D = 100 mm")
	assert.Contains(t, out, "filling 33%")
	assert.Contains(t, out, "░")

	full := DrawPipeSection(PipeSectionData{Label: "Horizontal", Diameter: 0.1, FillingDegree: 1})
	empty := strings.Count(full, "( ")
	assert.Zero(t, empty, "a full pipe has no dry rows")
}

func TestDrawSweepChart(t *testing.T) {
	t.Parallel()

	out := DrawSweepChart(sampleSweep())
	assert.Contains(t, out, "D = 100…175 mm")
	assert.Empty(t, DrawSweepChart(SweepData{Diameters: []float64{0.1}}))
}

func TestDrawSummaryBox(t *testing.T) {
	t.Parallel()

	out := DrawSummaryBox("RESULT", []string{"Q = 11.400 L/s", "Sufficient"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestExportSweepChart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "charts", "sweep.png")
	require.NoError(t, ExportSweepChart(sampleSweep(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportSweepChart_MismatchedSeries(t *testing.T) {
	t.Parallel()

	data := sampleSweep()
	data.Horizontal = data.Horizontal[:2]
	assert.Error(t, ExportSweepChart(data, filepath.Join(t.TempDir(), "bad.png")))
}

func TestExportCapacityChart_SVG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capacity.svg")
	require.NoError(t, ExportCapacityChart(CapacityData{RequiredFlow: 11.4, VerticalTotal: 112.5, HorizontalTotal: 18.4}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<svg")
}
