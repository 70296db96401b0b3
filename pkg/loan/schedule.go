package loan

import (
	"fmt"

	"github.com/calcsuite/loan-engine/pkg/constants"
	"github.com/calcsuite/loan-engine/pkg/datetime"
	"github.com/calcsuite/loan-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// Entry is one row of an amortization schedule. Entries are append-only;
// nothing mutates an Entry after the generator emits it.
type Entry struct {
	Period              int     `json:"period"`
	Date                string  `json:"date,omitempty"`
	Payment             float64 `json:"payment"`
	Principal           float64 `json:"principal"`
	Interest            float64 `json:"interest"`
	Balance             float64 `json:"balance"`
	CumulativePrincipal float64 `json:"cumulativePrincipal"`
	CumulativeInterest  float64 `json:"cumulativeInterest"`
	PMI                 float64 `json:"pmi"`
}

// ScheduleParams describes one schedule generation run.
type ScheduleParams struct {
	LoanAmount   float64
	Payment      float64
	PeriodicRate float64
	Periods      int
	// PeriodicPMI is the mortgage insurance charge per period; zero when PMI
	// does not apply.
	PeriodicPMI float64
	// PMIRemovalPeriod is the first 1-based period with PMI removed, or 0 when
	// PMI is never removed within the term.
	PMIRemovalPeriod int
	// FirstPaymentDate anchors entry dates (YYYY-MM); only honored for
	// monthly frequency.
	FirstPaymentDate string
	Frequency        Frequency
}

// ScheduleGenerator walks a loan period-by-period, splitting each payment into
// interest and principal and zeroing the balance exactly at the final payment.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// amortizeStep advances the balance by one period. Interest and principal are
// rounded to cents before accumulating so rounding error cannot compound over
// a 360-period schedule. When the remaining balance after the principal
// portion would drop below one cent, or when force is set (the final period),
// the whole balance is absorbed into the principal portion and the new
// balance is exactly zero. This is the single stepping function shared by the
// schedule generator and the PMI-removal simulation so the two can never
// disagree on rounding.
func amortizeStep(balance, payment, periodicRate float64, force bool) (interest, principal, newBalance float64) {
	interest = mathutil.RoundToCents(InterestPortion(balance, periodicRate))
	principal = mathutil.RoundToCents(payment - interest)
	if force || balance-principal < constants.CurrencyTolerance {
		principal = mathutil.RoundToCents(balance)
		newBalance = 0
		return interest, principal, newBalance
	}
	newBalance = mathutil.RoundToCents(balance - principal)
	return interest, principal, newBalance
}

// Generate produces the full ordered amortization schedule.
func (g *ScheduleGenerator) Generate(params ScheduleParams) []Entry {
	if params.LoanAmount <= 0 || params.Periods <= 0 {
		return nil
	}

	schedule := make([]Entry, 0, params.Periods)
	balance := mathutil.RoundToCents(params.LoanAmount)
	cumulativePrincipal := 0.00
	cumulativeInterest := 0.00

	date := ""
	if params.Frequency == FrequencyMonthly && datetime.ValidDate(params.FirstPaymentDate) {
		date = params.FirstPaymentDate
	}

	for period := 1; period <= params.Periods; period++ {
		final := period == params.Periods
		interest, principal, newBalance := amortizeStep(balance, params.Payment, params.PeriodicRate, final)

		entry := Entry{
			Period:    period,
			Date:      date,
			Principal: principal,
			Interest:  interest,
			Balance:   newBalance,
			PMI:       params.PeriodicPMI,
		}
		if newBalance == 0 {
			// The final payment absorbs residual rounding error so the
			// principal column sums exactly to the loan amount.
			entry.Payment = mathutil.RoundToCents(principal + interest)
		} else {
			entry.Payment = mathutil.RoundToCents(params.Payment)
		}
		if params.PMIRemovalPeriod > 0 && period >= params.PMIRemovalPeriod {
			entry.PMI = 0
		}

		cumulativePrincipal = mathutil.RoundToCents(cumulativePrincipal + entry.Principal)
		cumulativeInterest = mathutil.RoundToCents(cumulativeInterest + entry.Interest)
		entry.CumulativePrincipal = cumulativePrincipal
		entry.CumulativeInterest = cumulativeInterest

		schedule = append(schedule, entry)
		balance = newBalance

		if balance == 0 {
			if !final {
				g.logger.Debug(fmt.Sprintf("balance reached zero at period %d of %d", period, params.Periods),
					zap.String("op", "loan.Generate"),
				)
			}
			break
		}

		if date != "" {
			next, err := datetime.OffsetDate(date, datetime.DateTimeLayout, 1)
			if err != nil {
				date = ""
			} else {
				date = next
			}
		}
	}

	return schedule
}
