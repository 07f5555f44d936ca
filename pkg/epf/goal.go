package epf

import (
	"fmt"

	"github.com/Amanile/epf-calculator/pkg/constants"
	"github.com/Amanile/epf-calculator/pkg/mathutil"
)

const maxIterations = 100

// GoalResult describes the outcome of a contribution-rate search.
type GoalResult struct {
	RequiredRate float64 `json:"required_rate"`
	Maturity     float64 `json:"projected_maturity"`
	Iterations   int     `json:"iterations"`
	Converged    bool    `json:"converged"`
}

// SolveContributionRate finds the contribution rate in [0, 100] whose
// projected maturity lands within one rupee of target, bisecting on the rate.
// Maturity grows with the rate, so the search is monotonic. When even a 100%
// rate falls short the result carries that projection with Converged false.
func SolveContributionRate(in Input, target float64) (GoalResult, error) {
	if target <= 0 {
		return GoalResult{}, fmt.Errorf("target amount must be positive, got %.2f", target)
	}
	if in.RetirementAge-in.CurrentAge <= 0 {
		return GoalResult{}, fmt.Errorf("no contribution years between age %d and retirement age %d", in.CurrentAge, in.RetirementAge)
	}

	maturityAt := func(rate float64) float64 {
		trial := in
		trial.ContributionRate = rate
		return Project(trial).Maturity
	}

	lower := 0.0
	upper := constants.MaxRatePercent
	rate := upper
	maturity := maturityAt(upper)
	if maturity+constants.ToleranceForComparison < target {
		return GoalResult{RequiredRate: rate, Maturity: maturity}, nil
	}

	iterations := 0
	for iterations < maxIterations && !mathutil.WithinTolerance(maturity, target, constants.ToleranceForComparison) {
		mid := lower + (upper-lower)/2
		iterations++
		rate = mid
		maturity = maturityAt(mid)
		if maturity < target {
			lower = mid
		} else {
			upper = mid
		}
	}

	return GoalResult{
		RequiredRate: rate,
		Maturity:     maturity,
		Iterations:   iterations,
		Converged:    mathutil.WithinTolerance(maturity, target, constants.ToleranceForComparison),
	}, nil
}
