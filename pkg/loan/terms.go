// Package loan implements the unified loan/mortgage amortization and
// effective-rate engine. All calculations are pure and deterministic:
// identical Terms always produce an identical Result.
package loan

// DownPaymentType selects how a down payment value is interpreted.
type DownPaymentType string

const (
	// DownPaymentPercentage means the value is a percentage of the home price.
	DownPaymentPercentage DownPaymentType = "percentage"

	// DownPaymentAmount means the value is an absolute currency amount.
	DownPaymentAmount DownPaymentType = "amount"
)

// DownPaymentSpec is the raw down payment as entered by the user.
type DownPaymentSpec struct {
	Type  DownPaymentType `json:"type" yaml:"type" mapstructure:"type"`
	Value float64         `json:"value" yaml:"value" mapstructure:"value"`
}

// Terms is the immutable input to a calculation. Recurring costs and fees are
// optional; a plain loan (no escrow, no mortgage insurance, no fees) leaves
// them at zero and degrades to a pure principal-and-interest amortization.
type Terms struct {
	HomePrice    float64         `json:"homePrice" yaml:"homePrice" mapstructure:"homePrice"`
	DownPayment  DownPaymentSpec `json:"downPayment" yaml:"downPayment" mapstructure:"downPayment"`
	InterestRate float64         `json:"interestRate" yaml:"interestRate" mapstructure:"interestRate"` // nominal annual, percent
	TermMonths   int             `json:"termMonths" yaml:"termMonths" mapstructure:"termMonths"`
	Frequency    Frequency       `json:"frequency" yaml:"frequency" mapstructure:"frequency"`

	// Recurring costs
	PropertyTaxAnnual float64 `json:"propertyTaxAnnual,omitempty" yaml:"propertyTaxAnnual,omitempty" mapstructure:"propertyTaxAnnual"`
	InsuranceAnnual   float64 `json:"insuranceAnnual,omitempty" yaml:"insuranceAnnual,omitempty" mapstructure:"insuranceAnnual"`
	HOAMonthly        float64 `json:"hoaMonthly,omitempty" yaml:"hoaMonthly,omitempty" mapstructure:"hoaMonthly"`

	// Mortgage insurance rate, percent of loan amount per year
	PMIRate float64 `json:"pmiRate,omitempty" yaml:"pmiRate,omitempty" mapstructure:"pmiRate"`

	// One-time fees
	OriginationFeeRate float64 `json:"originationFeeRate,omitempty" yaml:"originationFeeRate,omitempty" mapstructure:"originationFeeRate"` // percent of loan amount
	ClosingCosts       float64 `json:"closingCosts,omitempty" yaml:"closingCosts,omitempty" mapstructure:"closingCosts"`
	OtherFees          float64 `json:"otherFees,omitempty" yaml:"otherFees,omitempty" mapstructure:"otherFees"`

	// FirstPaymentDate optionally anchors the schedule to calendar months
	// (YYYY-MM). Only meaningful for monthly frequency; schedule entries for
	// other cadences carry no dates.
	FirstPaymentDate string `json:"firstPaymentDate,omitempty" yaml:"firstPaymentDate,omitempty" mapstructure:"firstPaymentDate"`
}
