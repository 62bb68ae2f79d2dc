package hydraulics

import (
	"math"

	"github.com/pkg/errors"
)

// HorizontalPipe represents one sloped, partially filled horizontal branch
type HorizontalPipe struct {
	// Geometry
	Diameter float64 // internal diameter (m)
	Length   float64 // segment length (m)
	Slope    float64 // hydraulic gradient (m/m)

	// Wall and fluid
	Roughness float64 // absolute wall roughness (m)
	Viscosity float64 // kinematic viscosity (m²/s)

	FillingDegree float64 // wetted fraction of the cross-section
}

// HorizontalResult holds every stage of the horizontal capacity estimate
type HorizontalResult struct {
	Area     float64 // wetted area (m²)
	HeadLoss float64 // hf = slope × length (m)

	// First pass, friction ignored
	InitialVelocity float64 // m/s
	Reynolds        float64
	Regime          Regime
	FrictionFactor  float64

	// Second pass, friction corrected
	Velocity float64 // m/s

	Capacity float64 // L/s per branch
}

// NewHorizontalPipe creates a horizontal branch description
func NewHorizontalPipe(diameter, length, slope, roughness, viscosity, fillingDegree float64) *HorizontalPipe {
	return &HorizontalPipe{
		Diameter:      diameter,
		Length:        length,
		Slope:         slope,
		Roughness:     roughness,
		Viscosity:     viscosity,
		FillingDegree: fillingDegree,
	}
}

// Evaluate estimates the branch capacity with Darcy–Weisbach in two fixed
// steps: a frictionless velocity sets the Reynolds number and friction
// factor, then one friction-corrected velocity gives the flow.
func (p *HorizontalPipe) Evaluate() (*HorizontalResult, error) {
	if err := positive("diameter", p.Diameter); err != nil {
		return nil, err
	}
	if err := positive("horizontal length", p.Length); err != nil {
		return nil, err
	}
	if err := nonNegative("slope", p.Slope); err != nil {
		return nil, err
	}
	if err := positive("roughness", p.Roughness); err != nil {
		return nil, err
	}
	if err := positive("kinematic viscosity", p.Viscosity); err != nil {
		return nil, err
	}

	area, err := WettedArea(p.Diameter, p.FillingDegree)
	if err != nil {
		return nil, err
	}

	result := &HorizontalResult{Area: area}

	// Slope is taken directly as head loss per metre
	result.HeadLoss = p.Slope * p.Length
	if result.HeadLoss <= 0 {
		return nil, errors.Wrapf(ErrNumericDegenerate, "head loss must be positive, got %g (slope=%g, length=%g)", result.HeadLoss, p.Slope, p.Length)
	}

	// v0 = √(2·g·hf)
	result.InitialVelocity = math.Sqrt(2 * G * result.HeadLoss)

	result.Reynolds, err = Reynolds(result.InitialVelocity, p.Diameter, p.Viscosity)
	if err != nil {
		return nil, err
	}
	result.Regime = RegimeOf(result.Reynolds)

	result.FrictionFactor, err = FrictionFactor(result.Reynolds, p.Diameter, p.Roughness)
	if err != nil {
		return nil, err
	}

	// v = √(2·g·hf / (1 + f·L/D))
	result.Velocity = math.Sqrt(2 * G * result.HeadLoss / (1 + result.FrictionFactor*p.Length/p.Diameter))

	result.Capacity = ToLitres(result.Velocity * area)

	return result, nil
}

// HorizontalCapacity returns the maximum flow (L/s) one horizontal branch can carry
func HorizontalCapacity(diameter, length, slope, roughness, viscosity, fillingDegree float64) (float64, error) {
	result, err := NewHorizontalPipe(diameter, length, slope, roughness, viscosity, fillingDegree).Evaluate()
	if err != nil {
		return 0, err
	}
	return result.Capacity, nil
}
