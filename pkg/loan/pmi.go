package loan

import (
	"github.com/calcsuite/loan-engine/pkg/constants"
	"github.com/calcsuite/loan-engine/pkg/mathutil"
)

// PMI describes the mortgage insurance obligations of a loan.
type PMI struct {
	// Required is true when the down payment is below the conventional 20%
	// cutoff and a positive insurance rate was supplied.
	Required bool `json:"required"`

	// MonthlyPremium is the conventional monthly quote
	// (loanAmount × rate/100 / 12).
	MonthlyPremium float64 `json:"monthlyPremium"`

	// PeriodicPremium is the premium charged per payment period; equal to
	// MonthlyPremium for monthly cadence.
	PeriodicPremium float64 `json:"periodicPremium"`

	// RemovalPeriod is the first 1-based period at which the balance has
	// crossed the 80% loan-to-value threshold, or 0 when removal never occurs
	// within the simulation cap.
	RemovalPeriod int `json:"removalPeriod,omitempty"`
}

// EvaluatePMI determines whether mortgage insurance applies and, if so, when
// it drops off. The removal period has to come from a forward simulation of
// the schedule because the LTV threshold is relative to the original home
// price while the balance decays against the loan amount.
func EvaluatePMI(homePrice float64, dp DownPayment, loanAmount, pmiRate, payment, periodicRate float64, frequency Frequency) PMI {
	var pmi PMI
	if dp.Percentage >= constants.PMIDownPaymentCutoff || pmiRate <= 0 {
		return pmi
	}

	pmi.Required = true
	annualPremium := mathutil.ApplyPercentage(loanAmount, pmiRate)
	pmi.MonthlyPremium = mathutil.RoundToCents(annualPremium / constants.MonthsPerYear)
	pmi.PeriodicPremium = mathutil.RoundToCents(annualPremium / frequency.PeriodsPerYear())
	pmi.RemovalPeriod = pmiRemovalPeriod(homePrice, loanAmount, payment, periodicRate)
	return pmi
}

// pmiRemovalPeriod simulates the amortization forward until the balance
// reaches 80% of the original home price, using the same stepping function as
// the schedule generator. Returns 0 when the safety cap is hit first.
func pmiRemovalPeriod(homePrice, loanAmount, payment, periodicRate float64) int {
	threshold := homePrice * constants.PMIRemovalLTV
	balance := mathutil.RoundToCents(loanAmount)
	if balance <= threshold {
		return 1
	}

	for period := 1; period <= constants.PMIRemovalPeriodCap; period++ {
		_, _, balance = amortizeStep(balance, payment, periodicRate, false)
		if balance <= threshold {
			return period + 1
		}
		if balance == 0 {
			return period + 1
		}
	}
	return 0
}
