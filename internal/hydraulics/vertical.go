package hydraulics

import "math"

// VerticalPipe represents one vertical drop from the deck to the main pipe
type VerticalPipe struct {
	Diameter      float64 // internal diameter (m)
	Height        float64 // drop height (m)
	FillingDegree float64 // wetted fraction of the cross-section
}

// VerticalResult holds the free-fall capacity estimate of a vertical branch
type VerticalResult struct {
	Area     float64 // wetted area (m²)
	Velocity float64 // m/s
	Capacity float64 // L/s per branch
}

// NewVerticalPipe creates a vertical branch description
func NewVerticalPipe(diameter, height, fillingDegree float64) *VerticalPipe {
	return &VerticalPipe{
		Diameter:      diameter,
		Height:        height,
		FillingDegree: fillingDegree,
	}
}

// Evaluate applies the Wyly–Eaton style free-fall approximation, v = √(2·g·h).
// Wall friction is ignored.
func (p *VerticalPipe) Evaluate() (*VerticalResult, error) {
	if err := positive("vertical height", p.Height); err != nil {
		return nil, err
	}
	area, err := WettedArea(p.Diameter, p.FillingDegree)
	if err != nil {
		return nil, err
	}

	velocity := math.Sqrt(2 * G * p.Height)

	return &VerticalResult{
		Area:     area,
		Velocity: velocity,
		Capacity: ToLitres(area * velocity),
	}, nil
}

// VerticalCapacity returns the maximum flow (L/s) one vertical branch can carry
func VerticalCapacity(diameter, height, fillingDegree float64) (float64, error) {
	result, err := NewVerticalPipe(diameter, height, fillingDegree).Evaluate()
	if err != nil {
		return 0, err
	}
	return result.Capacity, nil
}
