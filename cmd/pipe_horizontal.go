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

var horizontalShowDiagram bool

var pipeHorizontalCmd = &cobra.Command{
	Use:   "horizontal",
	Short: "Capacity of a sloped horizontal pipe",
	Long: `Estimate the capacity of one horizontal branch with Darcy–Weisbach.

The estimate runs two fixed steps:
  1. hf = slope × L,  v0 = √(2·g·hf)  (friction ignored)
  2. Re from v0, friction factor f from Re,
     v = √(2·g·hf / (1 + f·L/D))
The flow is Q = v · π·D²/4 · filling · 1000 (L/s).

Examples:
  godrain pipe horizontal
  godrain pipe horizontal --diameter 0.15 --length 25 --slope 0.005`,
	RunE: runPipeHorizontal,
}

func init() {
	pipeCmd.AddCommand(pipeHorizontalCmd)

	addHorizontalFlags(pipeHorizontalCmd.Flags())
	addBranchFlag(pipeHorizontalCmd.Flags())
	pipeHorizontalCmd.Flags().BoolVar(&horizontalShowDiagram, "diagram", false, "Show ASCII pipe cross-section")
}

func runPipeHorizontal(cmd *cobra.Command, args []string) error {
	cfg, err := loadSite(cmd.Flags())
	if err != nil {
		return err
	}
	p := cfg.Pipe

	pipe := hydraulics.NewHorizontalPipe(p.Diameter, p.HorizontalLength, p.Slope, p.Roughness, p.Viscosity, cfg.Flow.FillingHorizontal)
	result, err := pipe.Evaluate()
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

	report.Header(os.Stdout, "HORIZONTAL PIPE CAPACITY - DARCY–WEISBACH")

	report.Section(os.Stdout, "INPUT DATA")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter (D):\t%.0f mm\n", p.Diameter*1000)
	fmt.Fprintf(w, "  Length (L):\t%.2f m\n", p.HorizontalLength)
	fmt.Fprintf(w, "  Slope:\t%.4f m/m\n", p.Slope)
	fmt.Fprintf(w, "  Roughness (ε):\t%.4f mm\n", p.Roughness*1000)
	fmt.Fprintf(w, "  Kinematic viscosity (ν):\t%.3e m²/s\n", p.Viscosity)
	fmt.Fprintf(w, "  Filling degree:\t%.2f\n", cfg.Flow.FillingHorizontal)
	fmt.Fprintf(w, "  Branches:\t%d\n", p.BranchCount)
	w.Flush()
	fmt.Println()

	report.Section(os.Stdout, "FIRST PASS (friction ignored)")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Head loss (hf):\t%.4f m\n", result.HeadLoss)
	fmt.Fprintf(w, "  Velocity (v0):\t%.3f m/s\n", result.InitialVelocity)
	fmt.Fprintf(w, "  Reynolds number (Re):\t%.0f\n", result.Reynolds)
	fmt.Fprintf(w, "  Flow regime:\t%s\n", result.Regime)
	fmt.Fprintf(w, "  Friction factor (f):\t%.5f\n", result.FrictionFactor)
	w.Flush()
	fmt.Println()

	report.Section(os.Stdout, "CORRECTED CAPACITY")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wetted area (A):\t%.6f m²\n", result.Area)
	fmt.Fprintf(w, "  Velocity (v):\t%.3f m/s\n", result.Velocity)
	fmt.Fprintf(w, "  Capacity per branch:\t%.3f L/s\n", result.Capacity)
	fmt.Fprintf(w, "  Total capacity:\t%.3f L/s\n", check.TotalCapacity)
	fmt.Fprintf(w, "  Required OWS flow:\t%.3f L/s\n", demand.RequiredFlow)
	w.Flush()
	fmt.Println()

	printCheckStatus("Horizontal", demand.RequiredFlow, check)

	if horizontalShowDiagram {
		fmt.Println(diagram.DrawPipeSection(diagram.PipeSectionData{
			Label:         "Horizontal",
			Diameter:      p.Diameter,
			FillingDegree: cfg.Flow.FillingHorizontal,
			Velocity:      result.Velocity,
			Capacity:      result.Capacity,
		}))
	}
	return nil
}
