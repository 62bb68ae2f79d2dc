package hydraulics

import (
	"math"

	"github.com/pkg/errors"
)

// Sufficiency compares the capacity of identical parallel branches to the demand
type Sufficiency struct {
	RequiredFlow   float64 // total required flow (L/s)
	FlowPerBranch  float64 // required flow carried by each branch (L/s)
	BranchCapacity float64 // capacity of one branch (L/s)
	TotalCapacity  float64 // BranchCapacity × branch count (L/s)
	IsSufficient   bool
}

// Verify spreads the required flow over branchCount identical branches and
// checks that their summed capacity covers it.
func Verify(totalRequiredFlow, perBranchCapacity float64, branchCount int) (*Sufficiency, error) {
	if err := nonNegative("required flow", totalRequiredFlow); err != nil {
		return nil, err
	}
	if err := nonNegative("branch capacity", perBranchCapacity); err != nil {
		return nil, err
	}
	if branchCount < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "branch count must be at least 1, got %d", branchCount)
	}

	n := float64(branchCount)
	total := perBranchCapacity * n

	return &Sufficiency{
		RequiredFlow:   totalRequiredFlow,
		FlowPerBranch:  totalRequiredFlow / n,
		BranchCapacity: perBranchCapacity,
		TotalCapacity:  total,
		IsSufficient:   total >= totalRequiredFlow,
	}, nil
}

// Utilisation returns the share of total capacity the demand uses. No
// demand on no capacity is 0; any demand on no capacity is +Inf.
func (s *Sufficiency) Utilisation() float64 {
	if s.TotalCapacity == 0 {
		if s.RequiredFlow == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return s.RequiredFlow / s.TotalCapacity
}
