package loan

import (
	"math"

	"github.com/calcsuite/loan-engine/pkg/constants"
)

// EffectiveAnnualRate computes the annualized internal rate of return of the
// full cost stream, expressed as a percentage: the periodic rate at which the
// payment stream (principal+interest plus insurance and escrow) discounts to
// the net loan proceeds (loan amount minus upfront fees), annualized by
// compounding.
//
// Degenerate inputs (non-positive net proceeds or payment) return 0 without
// iterating. A non-convergent iteration returns the last computed rate;
// callers treat the result as an estimate.
func EffectiveAnnualRate(loanAmount, upfrontFees, periodicPayment float64, periods int, periodsPerYear float64) float64 {
	netProceeds := loanAmount - upfrontFees
	if netProceeds <= 0 || periodicPayment <= 0 || periods <= 0 {
		return 0
	}

	rate := constants.SolverInitialAnnualRate / periodsPerYear
	for i := 0; i < constants.SolverMaxIterations; i++ {
		npv, derivative := npvAtRate(netProceeds, periodicPayment, rate, periods)
		if derivative == 0 {
			break
		}
		delta := npv / derivative
		rate -= delta
		if 1+rate <= 0 {
			// Newton overshot below the pole of the discount factor; the
			// previous iterate is the best available answer.
			rate += delta
			break
		}
		if math.Abs(delta) < constants.SolverTolerance {
			break
		}
	}

	return (math.Pow(1+rate, periodsPerYear) - 1) * constants.PercentageMultiplier
}

// npvAtRate evaluates the net present value of the cost stream and its
// derivative with respect to the periodic rate.
func npvAtRate(netProceeds, payment, rate float64, periods int) (npv, derivative float64) {
	npv = -netProceeds
	for t := 1; t <= periods; t++ {
		discount := math.Pow(1+rate, -float64(t))
		npv += payment * discount
		derivative -= payment * float64(t) * discount / (1 + rate)
	}
	return npv, derivative
}
