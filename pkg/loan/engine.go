package loan

import (
	"github.com/calcsuite/loan-engine/pkg/constants"
	"github.com/calcsuite/loan-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// MonthlyBreakdown itemizes the monthly cost of the loan. For non-monthly
// cadences the principal-and-interest component is the monthly equivalent of
// the periodic payment.
type MonthlyBreakdown struct {
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	Tax                  float64 `json:"tax"`
	Insurance            float64 `json:"insurance"`
	PMI                  float64 `json:"pmi"`
	HOA                  float64 `json:"hoa"`
	Total                float64 `json:"total"`
}

// Totals aggregates the lifetime cost of the loan.
type Totals struct {
	Interest        float64 `json:"interest"`
	PMI             float64 `json:"pmi"`
	Payments        float64 `json:"payments"`
	UpfrontFees     float64 `json:"upfrontFees"`
	CostOfOwnership float64 `json:"costOfOwnership"`
}

// Result is the immutable snapshot returned to the caller. It is constructed
// once per calculation and never mutated; every recomputation derives a fresh
// Result.
type Result struct {
	LoanAmount      float64          `json:"loanAmount"`
	DownPayment     DownPayment      `json:"downPayment"`
	PeriodicPayment float64          `json:"periodicPayment"`
	PeriodsPerYear  float64          `json:"periodsPerYear"`
	TotalPeriods    int              `json:"totalPeriods"`
	Monthly         MonthlyBreakdown `json:"monthly"`
	Totals          Totals           `json:"totals"`
	NominalRate     float64          `json:"nominalRate"`
	EffectiveRate   float64          `json:"effectiveRate"`
	PMI             PMI              `json:"pmi"`
	Schedule        []Entry          `json:"schedule"`
}

// Engine ties the component calculations together behind the single entry
// point the UI layer consumes. The engine is stateless; one instance may be
// shared across calls.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger is replaced with a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Calculate derives the full Result for validated Terms. Callers are
// responsible for running validation first; Calculate only surfaces the
// reconciliation errors it cannot proceed without.
func (e *Engine) Calculate(terms Terms) (*Result, error) {
	dp, err := ResolveDownPayment(terms.HomePrice, terms.DownPayment)
	if err != nil {
		return nil, err
	}

	frequency := terms.Frequency
	if !frequency.Valid() {
		frequency = FrequencyMonthly
	}

	loanAmount := mathutil.RoundToCents(terms.HomePrice - dp.Amount)
	periodsPerYear := frequency.PeriodsPerYear()
	periods := frequency.TotalPeriods(terms.TermMonths)
	periodicRate := PeriodicRate(terms.InterestRate, frequency)
	payment := mathutil.RoundToCents(PeriodicPayment(loanAmount, periodicRate, periods))

	pmi := EvaluatePMI(terms.HomePrice, dp, loanAmount, terms.PMIRate, payment, periodicRate, frequency)

	generator := NewScheduleGenerator(e.logger)
	schedule := generator.Generate(ScheduleParams{
		LoanAmount:       loanAmount,
		Payment:          payment,
		PeriodicRate:     periodicRate,
		Periods:          periods,
		PeriodicPMI:      pmi.PeriodicPremium,
		PMIRemovalPeriod: pmi.RemovalPeriod,
		FirstPaymentDate: terms.FirstPaymentDate,
		Frequency:        frequency,
	})

	totalInterest := 0.00
	totalPayments := 0.00
	totalPMI := 0.00
	for _, entry := range schedule {
		totalPayments = mathutil.RoundToCents(totalPayments + entry.Payment)
		totalPMI = mathutil.RoundToCents(totalPMI + entry.PMI)
	}
	if n := len(schedule); n > 0 {
		totalInterest = schedule[n-1].CumulativeInterest
	}

	upfrontFees := mathutil.RoundToCents(
		mathutil.ApplyPercentage(loanAmount, terms.OriginationFeeRate) + terms.ClosingCosts + terms.OtherFees)

	termYears := float64(terms.TermMonths) / constants.MonthsPerYear
	escrowLifetime := mathutil.RoundToCents(
		(terms.PropertyTaxAnnual+terms.InsuranceAnnual)*termYears + terms.HOAMonthly*float64(terms.TermMonths))

	escrowPerPeriod := (terms.PropertyTaxAnnual + terms.InsuranceAnnual + terms.HOAMonthly*constants.MonthsPerYear) / periodsPerYear
	effectiveRate := EffectiveAnnualRate(loanAmount, upfrontFees,
		payment+pmi.PeriodicPremium+escrowPerPeriod, periods, periodsPerYear)

	monthly := MonthlyBreakdown{
		PrincipalAndInterest: mathutil.RoundToCents(payment * periodsPerYear / constants.MonthsPerYear),
		Tax:                  mathutil.RoundToCents(terms.PropertyTaxAnnual / constants.MonthsPerYear),
		Insurance:            mathutil.RoundToCents(terms.InsuranceAnnual / constants.MonthsPerYear),
		PMI:                  pmi.MonthlyPremium,
		HOA:                  mathutil.RoundToCents(terms.HOAMonthly),
	}
	monthly.Total = mathutil.RoundToCents(
		monthly.PrincipalAndInterest + monthly.Tax + monthly.Insurance + monthly.PMI + monthly.HOA)

	result := &Result{
		LoanAmount:      loanAmount,
		DownPayment:     dp,
		PeriodicPayment: payment,
		PeriodsPerYear:  periodsPerYear,
		TotalPeriods:    periods,
		Monthly:         monthly,
		Totals: Totals{
			Interest:        totalInterest,
			PMI:             totalPMI,
			Payments:        totalPayments,
			UpfrontFees:     upfrontFees,
			CostOfOwnership: mathutil.RoundToCents(dp.Amount + upfrontFees + totalPayments + totalPMI + escrowLifetime),
		},
		NominalRate:   terms.InterestRate,
		EffectiveRate: effectiveRate,
		PMI:           pmi,
		Schedule:      schedule,
	}

	e.logger.Debug("calculated loan result",
		zap.String("op", "loan.Calculate"),
		zap.Float64("loanAmount", loanAmount),
		zap.Float64("payment", payment),
		zap.Int("periods", periods),
		zap.Float64("effectiveRate", effectiveRate),
	)

	return result, nil
}
