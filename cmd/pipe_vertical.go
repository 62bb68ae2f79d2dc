package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/godrain/internal/diagram"
	"github.com/alexiusacademia/godrain/internal/drainage"
	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/alexiusacademia/godrain/internal/report"
	"github.com/spf13/cobra"
)

var verticalShowDiagram bool

var pipeVerticalCmd = &cobra.Command{
	Use:   "vertical",
	Short: "Capacity of a vertical drop pipe",
	Long: `Estimate the capacity of one vertical branch with a simplified
free-fall (Wyly–Eaton) approximation. Wall friction is ignored.

  A = π·D²/4 · filling
  v = √(2·g·h)
  Q = A · v · 1000   (L/s)

Examples:
  godrain pipe vertical
  godrain pipe vertical --diameter 0.125 --height 4.5 --fill-vertical 0.25 -n 6`,
	RunE: runPipeVertical,
}

func init() {
	pipeCmd.AddCommand(pipeVerticalCmd)

	addVerticalFlags(pipeVerticalCmd.Flags())
	addBranchFlag(pipeVerticalCmd.Flags())
	pipeVerticalCmd.Flags().BoolVar(&verticalShowDiagram, "diagram", false, "Show ASCII pipe cross-section")
}

func runPipeVertical(cmd *cobra.Command, args []string) error {
	cfg, err := loadSite(cmd.Flags())
	if err != nil {
		return err
	}
	p := cfg.Pipe

	result, err := hydraulics.NewVerticalPipe(p.Diameter, p.VerticalHeight, cfg.Flow.FillingVertical).Evaluate()
	if err != nil {
		return err
	}
	demand, err := drainage.NewChecker(cfg, logger).Demand()
	if err != nil {
		return err
	}
	check, err := hydraulics.Verify(demand.RequiredFlow, result.Capacity, p.BranchCount)
	if err != nil {
		return err
	}

	report.Header(os.Stdout, "VERTICAL PIPE CAPACITY - FREE FALL")

	report.Section(os.Stdout, "INPUT DATA")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter (D):\t%.0f mm\n", p.Diameter*1000)
	fmt.Fprintf(w, "  Drop height (h):\t%.2f m\n", p.VerticalHeight)
	fmt.Fprintf(w, "  Filling degree:\t%.2f\n", cfg.Flow.FillingVertical)
	fmt.Fprintf(w, "  Branches:\t%d\n", p.BranchCount)
	w.Flush()
	fmt.Println()

	report.Section(os.Stdout, "CAPACITY")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wetted area (A):\t%.6f m²\n", result.Area)
	fmt.Fprintf(w, "  Velocity (v):\t%.3f m/s\n", result.Velocity)
	fmt.Fprintf(w, "  Capacity per branch:\t%.3f L/s\n", result.Capacity)
	fmt.Fprintf(w, "  Total capacity:\t%.3f L/s\n", check.TotalCapacity)
	fmt.Fprintf(w, "  Required OWS flow:\t%.3f L/s\n", demand.RequiredFlow)
	w.Flush()
	fmt.Println()

	printCheckStatus("Vertical", demand.RequiredFlow, check)

	if verticalShowDiagram {
		fmt.Println(diagram.DrawPipeSection(diagram.PipeSectionData{
			Label:         "Vertical",
			Diameter:      p.Diameter,
			FillingDegree: cfg.Flow.FillingVertical,
			Velocity:      result.Velocity,
			Capacity:      result.Capacity,
		}))
	}
	return nil
}

func printCheckStatus(section string, required float64, check *hydraulics.Sufficiency) {
	report.Section(os.Stdout, "STATUS")
	if check.IsSufficient {
		fmt.Printf("  ✅ %s branches carry %.3f L/s ≥ %.3f L/s required\n",
			section, check.TotalCapacity, required)
	} else {
		fmt.Printf("  ❌ %s branches carry only %.3f L/s of %.3f L/s required\n",
			section, check.TotalCapacity, required)
	}
	fmt.Println()
}
