package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/godrain/internal/diagram"
	"github.com/alexiusacademia/godrain/internal/drainage"
	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/alexiusacademia/godrain/internal/report"
	"github.com/spf13/cobra"
)

var (
	sweepFrom       float64
	sweepTo         float64
	sweepStep       float64
	sweepShowChart  bool
	sweepExportFile string
	sweepXLSXFile   string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Check a range of pipe diameters and find the smallest sufficient one",
	Long: `Repeat the system verification for a range of pipe diameters,
keeping every other parameter of the site unchanged.

Examples:
  godrain sweep
  godrain sweep --from 0.1 --to 0.3 --step 0.025 --chart
  godrain sweep --intensity 0.1 -o sweep.svg --xlsx sweep.xlsx`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	addRainfallFlags(sweepCmd.Flags())
	addBranchFlag(sweepCmd.Flags())

	sweepCmd.Flags().Float64Var(&sweepFrom, "from", hydraulics.MinDiameter, "Smallest diameter (m)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.3, "Largest diameter (m)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0.025, "Diameter increment (m)")
	sweepCmd.Flags().BoolVar(&sweepShowChart, "chart", false, "Show ASCII capacity chart")
	sweepCmd.Flags().StringVarP(&sweepExportFile, "output", "o", "", "Export capacity chart to file (png, svg, pdf)")
	sweepCmd.Flags().StringVar(&sweepXLSXFile, "xlsx", "", "Export report workbook to file")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadSite(cmd.Flags())
	if err != nil {
		return err
	}

	diameters, err := drainage.DiameterRange(sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}

	checker := drainage.NewChecker(cfg, logger)
	points, err := checker.Sweep(diameters)
	if err != nil {
		return err
	}

	report.Header(os.Stdout, "PIPE DIAMETER SWEEP")
	fmt.Printf("  Required OWS flow: %.3f L/s over %d branches\n\n", points[0].RequiredFlow, cfg.Pipe.BranchCount)
	report.WriteSweep(os.Stdout, points)

	if best, ok := drainage.SmallestSufficient(points); ok {
		fmt.Print(diagram.DrawSummaryBox("SMALLEST SUFFICIENT DIAMETER", []string{
			fmt.Sprintf("D = %.0f mm", best.Diameter*1000),
			fmt.Sprintf("Vertical total   %.3f L/s", best.VerticalTotal),
			fmt.Sprintf("Horizontal total %.3f L/s", best.HorizontalTotal),
		}))
	} else {
		fmt.Printf("  ❌ No diameter up to %.0f mm is sufficient.\n", sweepTo*1000)
	}
	fmt.Println()

	data := diagram.SweepData{
		Diameters:    diameters,
		Vertical:     make([]float64, len(points)),
		Horizontal:   make([]float64, len(points)),
		RequiredFlow: points[0].RequiredFlow,
	}
	for i, p := range points {
		data.Vertical[i] = p.VerticalTotal
		data.Horizontal[i] = p.HorizontalTotal
	}

	if sweepShowChart {
		fmt.Println(diagram.DrawSweepChart(data))
	}

	if sweepExportFile != "" {
		if err := diagram.ExportSweepChart(data, sweepExportFile); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Printf("Chart exported to: %s\n", sweepExportFile)
	}

	if sweepXLSXFile != "" {
		r, err := checker.Run()
		if err != nil {
			return err
		}
		if err := report.ExportXLSX(sweepXLSXFile, r, points); err != nil {
			return err
		}
		fmt.Printf("Workbook exported to: %s\n", sweepXLSXFile)
	}
	return nil
}
