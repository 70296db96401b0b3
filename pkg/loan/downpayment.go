package loan

import (
	"errors"

	"github.com/calcsuite/loan-engine/pkg/mathutil"
)

// ErrDownPaymentExceedsPrice signals a down payment amount larger than the
// home price.
var ErrDownPaymentExceedsPrice = errors.New("down payment exceeds home price")

// ErrNegativeDownPayment signals a negative down payment value.
var ErrNegativeDownPayment = errors.New("down payment is negative")

// DownPayment is the reconciled down payment, with both representations
// populated regardless of which one the user provided. Downstream PMI and
// loan-to-value logic rely on the two staying consistent.
type DownPayment struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ResolveDownPayment normalizes a raw down payment specification against the
// home price into a canonical amount/percentage pair.
func ResolveDownPayment(price float64, spec DownPaymentSpec) (DownPayment, error) {
	if spec.Value < 0 {
		return DownPayment{}, ErrNegativeDownPayment
	}

	var dp DownPayment
	switch spec.Type {
	case DownPaymentPercentage:
		dp.Percentage = spec.Value
		dp.Amount = mathutil.RoundToCents(mathutil.ApplyPercentage(price, spec.Value))
	default:
		dp.Amount = mathutil.RoundToCents(spec.Value)
		dp.Percentage = mathutil.CalculatePercentage(spec.Value, price)
	}

	if dp.Amount > price {
		return DownPayment{}, ErrDownPaymentExceedsPrice
	}
	return dp, nil
}
