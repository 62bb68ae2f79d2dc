package hydraulics

import "math"

// Physical and unit constants used by the capacity solvers

const (
	// Gravitational acceleration (m/s²)
	G = 9.81

	// Reynolds number at which flow is treated as turbulent
	LaminarLimit = 2000.0

	// Unit conversions
	LitresPerCubicMetre = 1000.0
	SecondsPerMinute    = 60.0
	SecondsPerHour      = 3600.0

	// MinDiameter is the smallest internal pipe diameter allowed on site (m)
	MinDiameter = 0.1
)

// WettedArea returns the flowing cross-section of a circular pipe (m²)
// for the given internal diameter (m) and filling degree.
func WettedArea(diameter, fillingDegree float64) (float64, error) {
	if err := positive("diameter", diameter); err != nil {
		return 0, err
	}
	if err := fraction("filling degree", fillingDegree); err != nil {
		return 0, err
	}
	return math.Pi * math.Pow(diameter, 2) / 4 * fillingDegree, nil
}

// ToLitres converts a flow rate from m³/s to L/s
func ToLitres(cubicMetresPerSecond float64) float64 {
	return cubicMetresPerSecond * LitresPerCubicMetre
}

// IntensityMillimetresPerHour converts a rainfall intensity in L/s/m² to mm/h.
// One litre spread over one square metre is one millimetre of rain.
func IntensityMillimetresPerHour(litresPerSecondPerM2 float64) float64 {
	return litresPerSecondPerM2 * SecondsPerHour
}
