package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/godrain/internal/diagram"
	"github.com/alexiusacademia/godrain/internal/drainage"
	"github.com/alexiusacademia/godrain/internal/report"
	"github.com/spf13/cobra"
)

var (
	verifyShowDetails bool
	verifyShowDiagram bool
	verifyExportFile  string
	verifyXLSXFile    string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the whole drainage system against the design storm",
	Long: `Calculate the required OWS flow and check that both the vertical
and the horizontal branches can carry it.

Each branch type is checked on its own: the capacity of one branch is
multiplied by the branch count and compared to the required flow. The
system is sufficient only when both branch types are.

Examples:
  # Reference site
  godrain verify

  # Site file with solver details and an ASCII chart
  godrain verify -c site.ini --details --diagram

  # Export a chart and a workbook
  godrain verify -o verification.png --xlsx verification.xlsx`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	addRainfallFlags(verifyCmd.Flags())
	addVerticalFlags(verifyCmd.Flags())
	addHorizontalFlags(verifyCmd.Flags())
	addBranchFlag(verifyCmd.Flags())

	verifyCmd.Flags().BoolVar(&verifyShowDetails, "details", false, "Show intermediate solver values")
	verifyCmd.Flags().BoolVar(&verifyShowDiagram, "diagram", false, "Show ASCII capacity chart and pipe sections")
	verifyCmd.Flags().StringVarP(&verifyExportFile, "output", "o", "", "Export capacity chart to file (png, svg, pdf)")
	verifyCmd.Flags().StringVar(&verifyXLSXFile, "xlsx", "", "Export report workbook to file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadSite(cmd.Flags())
	if err != nil {
		return err
	}

	r, err := drainage.NewChecker(cfg, logger).Run()
	if err != nil {
		return err
	}

	report.Header(os.Stdout, "DRAINAGE CAPACITY VERIFICATION - OWS INFLOW")
	report.WriteSummary(os.Stdout, r)
	if verifyShowDetails {
		report.WritePipeDetails(os.Stdout, r)
	}
	report.WriteVerification(os.Stdout, r)

	capacity := diagram.CapacityData{
		RequiredFlow:    r.RequiredFlow,
		VerticalTotal:   r.VerticalCheck.TotalCapacity,
		HorizontalTotal: r.HorizontalCheck.TotalCapacity,
	}

	if verifyShowDiagram {
		fmt.Println(diagram.DrawCapacityBars(capacity))
		fmt.Println(diagram.DrawPipeSection(diagram.PipeSectionData{
			Label:         "Vertical",
			Diameter:      cfg.Pipe.Diameter,
			FillingDegree: cfg.Flow.FillingVertical,
			Velocity:      r.Vertical.Velocity,
			Capacity:      r.Vertical.Capacity,
		}))
		fmt.Println(diagram.DrawPipeSection(diagram.PipeSectionData{
			Label:         "Horizontal",
			Diameter:      cfg.Pipe.Diameter,
			FillingDegree: cfg.Flow.FillingHorizontal,
			Velocity:      r.Horizontal.Velocity,
			Capacity:      r.Horizontal.Capacity,
		}))
	}

	if verifyExportFile != "" {
		if err := diagram.ExportCapacityChart(capacity, verifyExportFile); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Printf("Chart exported to: %s\n", verifyExportFile)
	}

	if verifyXLSXFile != "" {
		if err := report.ExportXLSX(verifyXLSXFile, r, nil); err != nil {
			return err
		}
		fmt.Printf("Workbook exported to: %s\n", verifyXLSXFile)
	}
	return nil
}
