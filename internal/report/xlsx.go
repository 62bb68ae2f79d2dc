package report

import (
	"fmt"

	"github.com/alexiusacademia/godrain/internal/drainage"
	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet      = "Summary"
	VerificationSheet = "Verification"
	SweepSheet        = "Diameter Sweep"
)

// ExportXLSX writes the verification report to a workbook. Sweep points are
// written to a third sheet when present.
func ExportXLSX(path string, r *drainage.Report, sweep []drainage.SweepPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return errors.Wrap(err, "renaming default sheet")
	}
	if err := writeRows(f, SummarySheet, summaryRows(r)); err != nil {
		return err
	}

	if _, err := f.NewSheet(VerificationSheet); err != nil {
		return errors.Wrapf(err, "creating sheet %s", VerificationSheet)
	}
	if err := writeRows(f, VerificationSheet, verificationRows(r)); err != nil {
		return err
	}

	if len(sweep) > 0 {
		if _, err := f.NewSheet(SweepSheet); err != nil {
			return errors.Wrapf(err, "creating sheet %s", SweepSheet)
		}
		if err := writeRows(f, SweepSheet, sweepRows(sweep)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "saving workbook %s", path)
	}
	return nil
}

func summaryRows(r *drainage.Report) [][]interface{} {
	rain := r.Config.Rainfall
	return [][]interface{}{
		{"Parameter", "Value", "Units"},
		{"Catchment area", rain.CatchmentArea, "m²"},
		{"Rain intensity", r.IntensityMMH, "mm/h"},
		{"Rain duration", rain.DurationMinutes, "min"},
		{"Tray volume", r.TrayVolume, "L"},
		{"Runoff coefficient", rain.RunoffCoefficient, "-"},
		{"Total rain volume", r.RainVolume, "L"},
		{"Required OWS capacity", r.RequiredFlow, "L/s"},
	}
}

func verificationRows(r *drainage.Report) [][]interface{} {
	row := func(name string, s *hydraulics.Sufficiency) []interface{} {
		return []interface{}{name, s.FlowPerBranch, s.BranchCapacity, s.TotalCapacity, s.IsSufficient}
	}
	return [][]interface{}{
		{"Section", "Flow per branch (L/s)", "Per branch (L/s)", "Total capacity (L/s)", "Sufficient"},
		row("Vertical", r.VerticalCheck),
		row("Horizontal", r.HorizontalCheck),
		{},
		{"Branches", r.Config.Pipe.BranchCount},
		{"Reynolds number", r.Horizontal.Reynolds},
		{"Flow regime", r.Horizontal.Regime.String()},
		{"Friction factor", r.Horizontal.FrictionFactor},
		{"Overall", r.IsSufficient},
		{"Verdict", r.Message},
	}
}

func sweepRows(points []drainage.SweepPoint) [][]interface{} {
	rows := [][]interface{}{
		{"Diameter (mm)", "Required (L/s)", "Vertical (L/s)", "Horizontal (L/s)", "Sufficient"},
	}
	for _, p := range points {
		rows = append(rows, []interface{}{p.Diameter * 1000, p.RequiredFlow, p.VerticalTotal, p.HorizontalTotal, p.IsSufficient})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "writing %s row %d", sheet, i+1)
		}
	}
	return f.SetColWidth(sheet, "A", "A", float64(widest(rows)+2))
}

func widest(rows [][]interface{}) int {
	n := 10
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if s := fmt.Sprint(row[0]); len(s) > n {
			n = len(s)
		}
	}
	return n
}
