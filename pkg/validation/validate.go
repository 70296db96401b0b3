// Package validation provides input validation for loan terms.
package validation

import (
	"fmt"

	"github.com/calcsuite/loan-engine/pkg/constants"
	"github.com/calcsuite/loan-engine/pkg/datetime"
	"github.com/calcsuite/loan-engine/pkg/loan"
)

// FieldError pairs an offending field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Outcome is the result of validating loan terms. All violated rules are
// collected rather than short-circuited so a UI can display every error at
// once.
type Outcome struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Validate checks terms against the engine's input ranges and cross-field
// rules. A calculation must never run against terms for which
// Validate(terms).Valid is false; that contract belongs to the caller.
func Validate(terms loan.Terms) Outcome {
	var errs []FieldError
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if terms.HomePrice <= 0 {
		add("homePrice", "price must be greater than 0")
	} else if terms.HomePrice > constants.MaxHomePrice {
		add("homePrice", "price must not exceed %.0f", constants.MaxHomePrice)
	}

	if terms.InterestRate < 0 || terms.InterestRate > constants.MaxInterestRate {
		add("interestRate", "interest rate must be between 0 and %.0f percent", constants.MaxInterestRate)
	}

	if terms.TermMonths <= 0 || terms.TermMonths > constants.MaxTermMonths {
		add("termMonths", "term must be between 1 and %d months", constants.MaxTermMonths)
	}

	if !terms.Frequency.Valid() && terms.Frequency != "" {
		add("frequency", "frequency must be monthly, biweekly, or weekly")
	}

	switch terms.DownPayment.Type {
	case loan.DownPaymentPercentage:
		if terms.DownPayment.Value < 0 || terms.DownPayment.Value > 100 {
			add("downPayment", "down payment percentage must be between 0 and 100")
		}
	case loan.DownPaymentAmount, "":
		if terms.DownPayment.Value < 0 {
			add("downPayment", "down payment must not be negative")
		} else if terms.DownPayment.Value > terms.HomePrice {
			add("downPayment", "down payment must not exceed price")
		}
	default:
		add("downPayment", "down payment type must be percentage or amount")
	}

	if terms.PMIRate < 0 || terms.PMIRate > constants.MaxPMIRate {
		add("pmiRate", "mortgage insurance rate must be between 0 and %.0f percent", constants.MaxPMIRate)
	}

	if terms.PropertyTaxAnnual < 0 {
		add("propertyTaxAnnual", "property tax must not be negative")
	}
	if terms.InsuranceAnnual < 0 {
		add("insuranceAnnual", "insurance must not be negative")
	}
	if terms.HOAMonthly < 0 {
		add("hoaMonthly", "HOA dues must not be negative")
	}

	if terms.OriginationFeeRate < 0 {
		add("originationFeeRate", "origination fee rate must not be negative")
	}
	if terms.ClosingCosts < 0 {
		add("closingCosts", "closing costs must not be negative")
	}
	if terms.OtherFees < 0 {
		add("otherFees", "other fees must not be negative")
	}

	if terms.FirstPaymentDate != "" && !datetime.ValidDate(terms.FirstPaymentDate) {
		add("firstPaymentDate", "first payment date must use the %s format", datetime.DateTimeLayout)
	}

	return Outcome{Valid: len(errs) == 0, Errors: errs}
}
