package loan

import (
	"math"
	"reflect"
	"testing"
)

func standardTerms() Terms {
	return Terms{
		HomePrice:    300000,
		DownPayment:  DownPaymentSpec{Type: DownPaymentPercentage, Value: 10},
		InterestRate: 6.0,
		TermMonths:   360,
		Frequency:    FrequencyMonthly,
		PMIRate:      0.5,
	}
}

func TestCalculateStandardMortgage(t *testing.T) {
	engine := NewEngine(nil)
	result, err := engine.Calculate(standardTerms())
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}

	if math.Abs(result.LoanAmount-270000) > 0.01 {
		t.Errorf("LoanAmount = %.2f, expected 270000", result.LoanAmount)
	}
	if math.Abs(result.DownPayment.Amount-30000) > 0.01 {
		t.Errorf("DownPayment.Amount = %.2f, expected 30000", result.DownPayment.Amount)
	}
	if result.TotalPeriods != 360 {
		t.Errorf("TotalPeriods = %d, expected 360", result.TotalPeriods)
	}
	if !result.PMI.Required {
		t.Error("PMI.Required = false, expected true for 10% down")
	}
	if math.Abs(result.PMI.MonthlyPremium-112.50) > 0.01 {
		t.Errorf("PMI.MonthlyPremium = %.2f, expected 112.50", result.PMI.MonthlyPremium)
	}
	if result.PMI.RemovalPeriod == 0 {
		t.Error("PMI.RemovalPeriod = 0, expected removal within term")
	}
	if result.NominalRate != 6.0 {
		t.Errorf("NominalRate = %v, expected input echo 6.0", result.NominalRate)
	}
	if result.EffectiveRate <= 6.0 {
		t.Errorf("EffectiveRate = %.4f, expected above nominal with PMI in the stream", result.EffectiveRate)
	}
	if len(result.Schedule) != 360 {
		t.Errorf("len(Schedule) = %d, expected 360", len(result.Schedule))
	}
	if result.Schedule[len(result.Schedule)-1].Balance != 0 {
		t.Errorf("final balance = %v, expected 0", result.Schedule[len(result.Schedule)-1].Balance)
	}
}

func TestCalculateNoPMIAboveCutoff(t *testing.T) {
	terms := standardTerms()
	terms.DownPayment.Value = 25

	result, err := NewEngine(nil).Calculate(terms)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if result.PMI.Required {
		t.Error("PMI.Required = true, expected false for 25% down")
	}
	if result.PMI.RemovalPeriod != 0 {
		t.Errorf("PMI.RemovalPeriod = %d, expected 0", result.PMI.RemovalPeriod)
	}
	for _, entry := range result.Schedule {
		if entry.PMI != 0 {
			t.Fatalf("period %d: PMI = %v, expected 0 for every period", entry.Period, entry.PMI)
		}
	}
	if result.Totals.PMI != 0 {
		t.Errorf("Totals.PMI = %v, expected 0", result.Totals.PMI)
	}
}

func TestCalculatePMIBoundary(t *testing.T) {
	result, err := NewEngine(nil).Calculate(standardTerms())
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	removal := result.PMI.RemovalPeriod
	if removal == 0 {
		t.Fatal("RemovalPeriod = 0, expected removal within term")
	}
	for _, entry := range result.Schedule {
		if entry.Period < removal && entry.PMI == 0 {
			t.Errorf("period %d: PMI = 0, expected charge before removal", entry.Period)
		}
		if entry.Period >= removal && entry.PMI != 0 {
			t.Errorf("period %d: PMI = %v, expected 0 at/after removal", entry.Period, entry.PMI)
		}
	}
}

func TestCalculateZeroRate(t *testing.T) {
	terms := Terms{
		HomePrice:    12000,
		DownPayment:  DownPaymentSpec{Type: DownPaymentAmount, Value: 0},
		InterestRate: 0,
		TermMonths:   12,
		Frequency:    FrequencyMonthly,
	}

	result, err := NewEngine(nil).Calculate(terms)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if result.PeriodicPayment != 1000.00 {
		t.Errorf("PeriodicPayment = %v, expected exactly 1000", result.PeriodicPayment)
	}
	if result.Totals.Interest != 0 {
		t.Errorf("Totals.Interest = %v, expected 0", result.Totals.Interest)
	}
	for _, entry := range result.Schedule {
		if entry.Payment != 1000.00 {
			t.Errorf("period %d: payment = %v, expected exactly 1000", entry.Period, entry.Payment)
		}
	}
}

func TestCalculateIdempotence(t *testing.T) {
	engine := NewEngine(nil)
	terms := standardTerms()
	terms.PropertyTaxAnnual = 3600
	terms.InsuranceAnnual = 1200
	terms.HOAMonthly = 50
	terms.OriginationFeeRate = 1.0
	terms.ClosingCosts = 2500

	first, err := engine.Calculate(terms)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	second, err := engine.Calculate(terms)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical terms produced differing results")
	}
}

func TestCalculateMonthlyBreakdown(t *testing.T) {
	terms := standardTerms()
	terms.PropertyTaxAnnual = 3600
	terms.InsuranceAnnual = 1200
	terms.HOAMonthly = 50

	result, err := NewEngine(nil).Calculate(terms)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if math.Abs(result.Monthly.Tax-300) > 0.01 {
		t.Errorf("Monthly.Tax = %.2f, expected 300", result.Monthly.Tax)
	}
	if math.Abs(result.Monthly.Insurance-100) > 0.01 {
		t.Errorf("Monthly.Insurance = %.2f, expected 100", result.Monthly.Insurance)
	}
	if math.Abs(result.Monthly.HOA-50) > 0.01 {
		t.Errorf("Monthly.HOA = %.2f, expected 50", result.Monthly.HOA)
	}

	expectedTotal := result.Monthly.PrincipalAndInterest + result.Monthly.Tax +
		result.Monthly.Insurance + result.Monthly.PMI + result.Monthly.HOA
	if math.Abs(result.Monthly.Total-expectedTotal) > 0.011 {
		t.Errorf("Monthly.Total = %.2f, expected sum of components %.2f", result.Monthly.Total, expectedTotal)
	}
}

func TestCalculateUpfrontFees(t *testing.T) {
	terms := standardTerms()
	terms.OriginationFeeRate = 1.0
	terms.ClosingCosts = 2500
	terms.OtherFees = 300

	result, err := NewEngine(nil).Calculate(terms)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	// 1% of the $270,000 loan plus flat fees.
	if math.Abs(result.Totals.UpfrontFees-5500) > 0.01 {
		t.Errorf("Totals.UpfrontFees = %.2f, expected 5500", result.Totals.UpfrontFees)
	}

	baseline, err := NewEngine(nil).Calculate(standardTerms())
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if result.EffectiveRate <= baseline.EffectiveRate {
		t.Errorf("EffectiveRate with fees = %.4f, expected above fee-free %.4f",
			result.EffectiveRate, baseline.EffectiveRate)
	}
}

func TestCalculateDownPaymentError(t *testing.T) {
	terms := standardTerms()
	terms.DownPayment = DownPaymentSpec{Type: DownPaymentAmount, Value: 400000}

	if _, err := NewEngine(nil).Calculate(terms); err == nil {
		t.Fatal("Calculate() error = nil, expected down payment reconciliation error")
	}
}

func TestCalculateBiweekly(t *testing.T) {
	terms := standardTerms()
	terms.Frequency = FrequencyBiweekly

	result, err := NewEngine(nil).Calculate(terms)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if result.TotalPeriods != 782 {
		t.Errorf("TotalPeriods = %d, expected 782", result.TotalPeriods)
	}
	if result.PeriodsPerYear <= 26.07 || result.PeriodsPerYear >= 26.08 {
		t.Errorf("PeriodsPerYear = %v, expected ~26.0714", result.PeriodsPerYear)
	}
	last := result.Schedule[len(result.Schedule)-1]
	if last.Balance != 0 {
		t.Errorf("final balance = %v, expected 0", last.Balance)
	}
	// More frequent payments amortize faster against the same nominal rate,
	// so lifetime interest falls below the monthly cadence.
	monthly, err := NewEngine(nil).Calculate(standardTerms())
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if result.Totals.Interest >= monthly.Totals.Interest {
		t.Errorf("biweekly interest = %.2f, expected below monthly %.2f",
			result.Totals.Interest, monthly.Totals.Interest)
	}
}
