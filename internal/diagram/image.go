package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	verticalColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	horizontalColor = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	requiredColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSweepChart exports total capacity against diameter to an image file
func ExportSweepChart(data SweepData, filename string) error {
	if len(data.Diameters) == 0 {
		return errors.New("sweep chart needs at least one diameter")
	}
	if len(data.Vertical) != len(data.Diameters) || len(data.Horizontal) != len(data.Diameters) {
		return errors.Errorf("sweep chart series lengths differ: %d diameters, %d vertical, %d horizontal",
			len(data.Diameters), len(data.Vertical), len(data.Horizontal))
	}

	p := plot.New()
	p.Title.Text = "Drainage Capacity vs Pipe Diameter"
	p.X.Label.Text = "Diameter (mm)"
	p.Y.Label.Text = "Total capacity (L/s)"

	vertical := make(plotter.XYs, len(data.Diameters))
	horizontal := make(plotter.XYs, len(data.Diameters))
	for i, d := range data.Diameters {
		vertical[i] = plotter.XY{X: d * 1000, Y: data.Vertical[i]}
		horizontal[i] = plotter.XY{X: d * 1000, Y: data.Horizontal[i]}
	}

	vLine, vPoints, err := plotter.NewLinePoints(vertical)
	if err != nil {
		return err
	}
	vLine.LineStyle.Width = vg.Points(2)
	vLine.LineStyle.Color = verticalColor
	vPoints.GlyphStyle.Color = verticalColor
	p.Add(vLine, vPoints)
	p.Legend.Add("Vertical", vLine)

	hLine, hPoints, err := plotter.NewLinePoints(horizontal)
	if err != nil {
		return err
	}
	hLine.LineStyle.Width = vg.Points(2)
	hLine.LineStyle.Color = horizontalColor
	hPoints.GlyphStyle.Color = horizontalColor
	p.Add(hLine, hPoints)
	p.Legend.Add("Horizontal", hLine)

	// Required flow as a dashed reference line
	first, last := data.Diameters[0]*1000, data.Diameters[len(data.Diameters)-1]*1000
	reqLine, err := plotter.NewLine(plotter.XYs{
		{X: first, Y: data.RequiredFlow},
		{X: last, Y: data.RequiredFlow},
	})
	if err != nil {
		return err
	}
	reqLine.LineStyle.Width = vg.Points(1.5)
	reqLine.LineStyle.Color = requiredColor
	reqLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(reqLine)
	p.Legend.Add("Required", reqLine)

	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportCapacityChart exports a bar chart of required flow and total capacities
func ExportCapacityChart(data CapacityData, filename string) error {
	p := plot.New()
	p.Title.Text = "Pipe System Verification"
	p.Y.Label.Text = "Flow (L/s)"

	barWidth := vg.Points(40)
	values := []struct {
		name  string
		flow  float64
		color color.Color
	}{
		{"Required", data.RequiredFlow, requiredColor},
		{"Vertical", data.VerticalTotal, verticalColor},
		{"Horizontal", data.HorizontalTotal, horizontalColor},
	}

	names := make([]string, len(values))
	for i, v := range values {
		bars, err := plotter.NewBarChart(plotter.Values{v.flow}, barWidth)
		if err != nil {
			return err
		}
		bars.Color = v.color
		bars.LineStyle.Width = vg.Length(0)
		bars.XMin = float64(i)
		p.Add(bars)
		names[i] = v.name
	}
	p.NominalX(names...)

	return save(p, 6*vg.Inch, 5*vg.Inch, filename)
}

// save writes the plot using the format implied by the file extension
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
