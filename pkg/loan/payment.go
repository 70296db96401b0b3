package loan

import "math"

// PeriodicPayment calculates the fixed principal+interest payment for a loan
// using the standard annuity formula. A zero periodic rate is branched to the
// straight-line case rather than computed through the general formula, whose
// denominator vanishes at r=0.
func PeriodicPayment(principal, periodicRate float64, periods int) float64 {
	if principal <= 0 || periods <= 0 {
		return 0
	}
	if periodicRate == 0 {
		return principal / float64(periods)
	}

	power := math.Pow(1.00+periodicRate, float64(periods))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// InterestPortion calculates the interest accrued on the remaining balance
// over one period. The result is not rounded; the schedule generator rounds
// before accumulating.
func InterestPortion(balance, periodicRate float64) float64 {
	return balance * periodicRate
}
