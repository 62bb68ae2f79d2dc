package cmd

import (
	"os"

	"github.com/alexiusacademia/godrain/internal/drainage"
	"github.com/alexiusacademia/godrain/internal/report"
	"github.com/spf13/cobra"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Calculate the required OWS flow rate",
	Long: `Calculate the flow rate the oil-water separator must sustain
during the design storm.

  volume   = intensity × area × 60 × duration × runoff   (L)
  Q_req    = volume / (duration × 60)                     (L/s)

Examples:
  # Reference site (0.03 L/s/m² over 380 m²)
  godrain flow

  # Larger deck, partly pervious
  godrain flow --area 520 --runoff 0.9`,
	RunE: runFlow,
}

func init() {
	rootCmd.AddCommand(flowCmd)
	addRainfallFlags(flowCmd.Flags())
}

func runFlow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSite(cmd.Flags())
	if err != nil {
		return err
	}

	r, err := drainage.NewChecker(cfg, logger).Demand()
	if err != nil {
		return err
	}

	report.Header(os.Stdout, "OWS REQUIRED FLOW RATE")
	report.WriteSummary(os.Stdout, r)
	return nil
}
