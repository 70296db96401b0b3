package loan

import (
	"math"

	"github.com/calcsuite/loan-engine/pkg/constants"
)

// Frequency is the payment cadence of a loan.
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyWeekly   Frequency = "weekly"
)

// Valid reports whether f is a supported payment cadence.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyBiweekly, FrequencyWeekly:
		return true
	}
	return false
}

// PeriodsPerYear returns the number of payment periods in a year. Monthly is
// exactly 12; biweekly and weekly use a 365-day year and are deliberately
// non-integer (365/14 and 365/7).
func (f Frequency) PeriodsPerYear() float64 {
	switch f {
	case FrequencyBiweekly:
		return constants.DaysPerYear / constants.DaysPerBiweek
	case FrequencyWeekly:
		return constants.DaysPerYear / constants.DaysPerWeek
	default:
		return constants.MonthsPerYear
	}
}

// TotalPeriods converts a term in months into a whole number of payment
// periods, rounding to the nearest period for non-integer cadences.
func (f Frequency) TotalPeriods(termMonths int) int {
	years := float64(termMonths) / constants.MonthsPerYear
	return int(math.Round(years * f.PeriodsPerYear()))
}

// PeriodicRate converts a nominal annual rate in percent into the per-period
// rate for the given cadence. Callers must branch on a zero annual rate
// themselves; this function only scales it.
func PeriodicRate(annualRatePercent float64, f Frequency) float64 {
	return annualRatePercent / constants.PercentageMultiplier / f.PeriodsPerYear()
}
