package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/alexiusacademia/godrain/internal/report"
	"github.com/spf13/cobra"
)

var (
	frictionReynolds  float64
	frictionDiameter  float64
	frictionRoughness float64
)

var frictionCmd = &cobra.Command{
	Use:   "friction",
	Short: "Calculate the Darcy friction factor for a Reynolds number",
	Long: `Calculate the Darcy friction factor used by the horizontal pipe check.

  Re < 2000   laminar     f = 64 / Re
  Re ≥ 2000   turbulent   f = 0.25 / log10(ε/(3.7·D) + 5.74/Re^0.9)²

The turbulent branch is the explicit Swamee–Jain approximation of
Colebrook–White, evaluated once without iteration.

Examples:
  godrain friction --reynolds 1999
  godrain friction --reynolds 1e5 --diameter 0.1 --roughness 0.0000053`,
	RunE: runFriction,
}

func init() {
	rootCmd.AddCommand(frictionCmd)

	frictionCmd.Flags().Float64VarP(&frictionReynolds, "reynolds", "r", 0, "Reynolds number [required]")
	frictionCmd.Flags().Float64VarP(&frictionDiameter, "diameter", "d", 0.1, "Internal pipe diameter (m)")
	frictionCmd.Flags().Float64Var(&frictionRoughness, "roughness", 0.0000053, "Absolute wall roughness (m)")

	frictionCmd.MarkFlagRequired("reynolds")
}

func runFriction(cmd *cobra.Command, args []string) error {
	f, err := hydraulics.FrictionFactor(frictionReynolds, frictionDiameter, frictionRoughness)
	if err != nil {
		return err
	}
	regime := hydraulics.RegimeOf(frictionReynolds)

	report.Header(os.Stdout, "DARCY FRICTION FACTOR")

	report.Section(os.Stdout, "INPUT DATA")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Reynolds number (Re):\t%.0f\n", frictionReynolds)
	fmt.Fprintf(w, "  Diameter (D):\t%.0f mm\n", frictionDiameter*1000)
	fmt.Fprintf(w, "  Roughness (ε):\t%.4f mm\n", frictionRoughness*1000)
	fmt.Fprintf(w, "  Relative roughness (ε/D):\t%.3e\n", frictionRoughness/frictionDiameter)
	w.Flush()
	fmt.Println()

	report.Section(os.Stdout, "RESULT")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flow regime:\t%s\n", regime)
	if regime == hydraulics.Laminar {
		fmt.Fprintf(w, "  Formula:\t64 / Re\n")
	} else {
		fmt.Fprintf(w, "  Formula:\tSwamee–Jain (explicit Colebrook–White)\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════╗\n")
	fmt.Printf("  ║  %-35s║\n", fmt.Sprintf("FRICTION FACTOR f = %.5f", f))
	fmt.Printf("  ╚═════════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
