package hydraulics

import (
	"math"

	"github.com/pkg/errors"
)

// Regime is the flow regime selected by Reynolds number
type Regime int

const (
	Laminar Regime = iota
	Turbulent
)

func (r Regime) String() string {
	if r == Laminar {
		return "laminar"
	}
	return "turbulent"
}

// Reynolds calculates the Reynolds number for a velocity (m/s), pipe
// diameter (m) and kinematic viscosity (m²/s)
func Reynolds(velocity, diameter, viscosity float64) (float64, error) {
	if err := nonNegative("velocity", velocity); err != nil {
		return 0, err
	}
	if err := positive("diameter", diameter); err != nil {
		return 0, err
	}
	if err := positive("kinematic viscosity", viscosity); err != nil {
		return 0, err
	}
	return velocity * diameter / viscosity, nil
}

// RegimeOf returns Laminar below LaminarLimit and Turbulent at or above it
func RegimeOf(reynolds float64) Regime {
	if reynolds < LaminarLimit {
		return Laminar
	}
	return Turbulent
}

// FrictionFactor returns the Darcy friction factor.
//
// Laminar flow uses 64/Re. Turbulent flow uses the explicit Swamee–Jain
// approximation of Colebrook–White, evaluated once:
//
//	f = 0.25 / log10(ε/(3.7·D) + 5.74/Re^0.9)²
//
// The two branches are not blended at Re = 2000.
func FrictionFactor(reynolds, diameter, roughness float64) (float64, error) {
	if math.IsNaN(reynolds) || reynolds <= 0 {
		return 0, errors.Wrapf(ErrNumericDegenerate, "reynolds number must be positive, got %g", reynolds)
	}
	if err := positive("diameter", diameter); err != nil {
		return 0, err
	}
	if err := positive("roughness", roughness); err != nil {
		return 0, err
	}

	if RegimeOf(reynolds) == Laminar {
		return 64 / reynolds, nil
	}

	relativeRoughness := roughness / diameter
	logTerm := math.Log10(relativeRoughness/3.7 + 5.74/math.Pow(reynolds, 0.9))
	if logTerm == 0 || math.IsInf(logTerm, 0) || math.IsNaN(logTerm) {
		return 0, errors.Wrapf(ErrNumericDegenerate, "swamee-jain log term is %g (Re=%g, ε/D=%g)", logTerm, reynolds, relativeRoughness)
	}
	return 0.25 / math.Pow(logTerm, 2), nil
}
