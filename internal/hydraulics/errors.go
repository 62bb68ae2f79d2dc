package hydraulics

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is returned when an input violates its physical domain
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNumericDegenerate is returned when an intermediate value would force
	// a non-real result (square root of a non-positive head, log of a
	// non-positive Reynolds number)
	ErrNumericDegenerate = errors.New("numerically degenerate")
)

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s must be positive, got %g", name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s must be non-negative, got %g", name, v)
	}
	return nil
}

// fraction accepts values in (0, 1]
func fraction(name string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v > 1 {
		return errors.Wrapf(ErrInvalidParameter, "%s must be in (0, 1], got %g", name, v)
	}
	return nil
}
