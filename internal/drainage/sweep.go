package drainage

import (
	"math"

	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/pkg/errors"
)

// SweepPoint is the verification outcome for one candidate diameter
type SweepPoint struct {
	Diameter        float64 // m
	RequiredFlow    float64 // L/s
	VerticalTotal   float64 // L/s, all branches
	HorizontalTotal float64 // L/s, all branches
	IsSufficient    bool
}

// Sweep reruns the verification for each diameter, all other parameters unchanged
func (c *Checker) Sweep(diameters []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(diameters))
	for _, d := range diameters {
		cfg := c.cfg
		cfg.Pipe.Diameter = d

		report, err := (&Checker{cfg: cfg, log: c.log}).Run()
		if err != nil {
			return nil, errors.Wrapf(err, "diameter %.3f m", d)
		}
		points = append(points, SweepPoint{
			Diameter:        d,
			RequiredFlow:    report.RequiredFlow,
			VerticalTotal:   report.VerticalCheck.TotalCapacity,
			HorizontalTotal: report.HorizontalCheck.TotalCapacity,
			IsSufficient:    report.IsSufficient,
		})
	}
	return points, nil
}

// SmallestSufficient returns the first sufficient point of an ascending sweep
func SmallestSufficient(points []SweepPoint) (SweepPoint, bool) {
	for _, p := range points {
		if p.IsSufficient {
			return p, true
		}
	}
	return SweepPoint{}, false
}

// diameterResolution is the rounding applied to sweep diameters (m)
const diameterResolution = 1e-4

// DiameterRange lists diameters from..to (inclusive) in step increments.
// Steps finer than 0.1 mm are rejected.
func DiameterRange(from, to, step float64) ([]float64, error) {
	if from < hydraulics.MinDiameter {
		return nil, errors.Wrapf(hydraulics.ErrInvalidParameter, "sweep start %.3f m is below the site minimum %.3f m", from, hydraulics.MinDiameter)
	}
	if math.IsNaN(step) || step < diameterResolution {
		return nil, errors.Wrapf(hydraulics.ErrInvalidParameter, "sweep step must be at least %g m, got %g", diameterResolution, step)
	}
	if to < from {
		return nil, errors.Wrapf(hydraulics.ErrInvalidParameter, "sweep end %.3f m is below start %.3f m", to, from)
	}

	n := int(math.Floor((to-from)/step+1e-9)) + 1
	diameters := make([]float64, n)
	for i := range diameters {
		// Rounded to 0.1 mm so repeated steps don't drift
		diameters[i] = math.Round((from+float64(i)*step)*1e4) / 1e4
	}
	return diameters, nil
}
