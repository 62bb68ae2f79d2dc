package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/godrain/internal/drainage"
	"github.com/alexiusacademia/godrain/internal/hydraulics"
)

const (
	rule   = "───────────────────────────────────────────────────────────────"
	banner = "═══════════════════════════════════════════════════════════════"
)

// Header prints a report title between double rules
func Header(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}

// Section prints a section heading
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, rule)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteSummary prints the design storm and the required separator capacity
func WriteSummary(w io.Writer, r *drainage.Report) {
	rain := r.Config.Rainfall

	Section(w, "OWS CAPACITY CALCULATION")
	t := newTable(w)
	fmt.Fprintf(t, "  Parameter\tValue\tUnits\n")
	fmt.Fprintf(t, "  ─────────\t─────\t─────\n")
	fmt.Fprintf(t, "  Catchment area\t%.1f\tm²\n", rain.CatchmentArea)
	fmt.Fprintf(t, "  Rain intensity\t%.1f\tmm/h\n", r.IntensityMMH)
	fmt.Fprintf(t, "  Rain duration\t%.0f\tmin\n", rain.DurationMinutes)
	fmt.Fprintf(t, "  Tray volume\t%.0f\tL\n", r.TrayVolume)
	fmt.Fprintf(t, "  Runoff coefficient\t%.2f\t-\n", rain.RunoffCoefficient)
	fmt.Fprintf(t, "  Total rain volume\t%.2f\tL\n", r.RainVolume)
	fmt.Fprintf(t, "  Required OWS capacity\t%.3f\tL/s\n", r.RequiredFlow)
	t.Flush()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  ✅ OWS shall be sized to maintain as minimum such flow rate: %.3f L/s\n", r.RequiredFlow)
	fmt.Fprintln(w)
}

// WritePipeDetails prints the intermediate values of both capacity solvers
func WritePipeDetails(w io.Writer, r *drainage.Report) {
	p := r.Config.Pipe

	Section(w, "VERTICAL BRANCH (free fall)")
	t := newTable(w)
	fmt.Fprintf(t, "  Diameter:\t%.0f mm\n", p.Diameter*1000)
	fmt.Fprintf(t, "  Drop height:\t%.2f m\n", p.VerticalHeight)
	fmt.Fprintf(t, "  Filling degree:\t%.2f\n", r.Config.Flow.FillingVertical)
	fmt.Fprintf(t, "  Wetted area:\t%.6f m²\n", r.Vertical.Area)
	fmt.Fprintf(t, "  Velocity √(2gh):\t%.3f m/s\n", r.Vertical.Velocity)
	fmt.Fprintf(t, "  Capacity per branch:\t%.3f L/s\n", r.Vertical.Capacity)
	t.Flush()
	fmt.Fprintln(w)

	h := r.Horizontal
	Section(w, "HORIZONTAL BRANCH (Darcy–Weisbach)")
	t = newTable(w)
	fmt.Fprintf(t, "  Diameter:\t%.0f mm\n", p.Diameter*1000)
	fmt.Fprintf(t, "  Length:\t%.2f m\n", p.HorizontalLength)
	fmt.Fprintf(t, "  Slope:\t%.4f m/m\n", p.Slope)
	fmt.Fprintf(t, "  Filling degree:\t%.2f\n", r.Config.Flow.FillingHorizontal)
	fmt.Fprintf(t, "  Wetted area:\t%.6f m²\n", h.Area)
	fmt.Fprintf(t, "  Head loss hf:\t%.4f m\n", h.HeadLoss)
	fmt.Fprintf(t, "  Initial velocity v0:\t%.3f m/s\n", h.InitialVelocity)
	fmt.Fprintf(t, "  Reynolds number:\t%.0f (%s)\n", h.Reynolds, h.Regime)
	fmt.Fprintf(t, "  Friction factor f:\t%.5f\n", h.FrictionFactor)
	fmt.Fprintf(t, "  Corrected velocity v:\t%.3f m/s\n", h.Velocity)
	fmt.Fprintf(t, "  Capacity per branch:\t%.3f L/s\n", h.Capacity)
	t.Flush()
	fmt.Fprintln(w)
}

// WriteVerification prints the per-section sufficiency table and the verdict
func WriteVerification(w io.Writer, r *drainage.Report) {
	Section(w, "PIPE SYSTEM VERIFICATION")
	t := newTable(w)
	fmt.Fprintf(t, "  Section\tFlow/Branch\tPer Branch\tTotal Capacity\tUsage\tSufficient?\n")
	fmt.Fprintf(t, "  ───────\t───────────\t──────────\t──────────────\t─────\t───────────\n")
	writeRow(t, "Vertical", r.VerticalCheck)
	writeRow(t, "Horizontal", r.HorizontalCheck)
	t.Flush()
	fmt.Fprintln(w)

	if r.IsSufficient {
		fmt.Fprintf(w, "  ✅ %s\n", r.Message)
	} else {
		fmt.Fprintf(w, "  ❌ %s\n", r.Message)
	}
	fmt.Fprintln(w)
}

func writeRow(w io.Writer, name string, s *hydraulics.Sufficiency) {
	fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\t%s\t%s\n",
		name, s.FlowPerBranch, s.BranchCapacity, s.TotalCapacity, usage(s.Utilisation()), yesNo(s.IsSufficient))
}

// usage formats a utilisation ratio, "-" when there is no capacity
func usage(u float64) string {
	if math.IsInf(u, 0) {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", u*100)
}

// WriteSweep prints one row per candidate diameter
func WriteSweep(w io.Writer, points []drainage.SweepPoint) {
	Section(w, "DIAMETER SWEEP")
	t := newTable(w)
	fmt.Fprintf(t, "  D (mm)\tRequired (L/s)\tVertical (L/s)\tHorizontal (L/s)\tSufficient?\n")
	fmt.Fprintf(t, "  ──────\t──────────────\t──────────────\t────────────────\t───────────\n")
	for _, p := range points {
		fmt.Fprintf(t, "  %.0f\t%.3f\t%.3f\t%.3f\t%s\n",
			p.Diameter*1000, p.RequiredFlow, p.VerticalTotal, p.HorizontalTotal, yesNo(p.IsSufficient))
	}
	t.Flush()
	fmt.Fprintln(w)
}

func yesNo(ok bool) string {
	if ok {
		return "✅ Yes"
	}
	return "❌ No"
}
