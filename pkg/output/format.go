// Package output provides utilities for formatting and displaying loan results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/calcsuite/loan-engine/pkg/format"
	"github.com/calcsuite/loan-engine/pkg/loan"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable summary
// and amortization table.
func PrettyFormat(w io.Writer, name string, result *loan.Result) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Results for %s ---\n", name)
	fmt.Fprintf(w, "Loan amount:       %s\n", format.Currency(result.LoanAmount))
	fmt.Fprintf(w, "Down payment:      %s (%s)\n", format.Currency(result.DownPayment.Amount), format.Percent(result.DownPayment.Percentage))
	fmt.Fprintf(w, "Periodic payment:  %s (%d periods)\n", format.Currency(result.PeriodicPayment), result.TotalPeriods)
	fmt.Fprintf(w, "Monthly total:     %s\n", format.Currency(result.Monthly.Total))
	fmt.Fprintf(w, "Nominal rate:      %s\n", format.Percent(result.NominalRate))
	fmt.Fprintf(w, "Effective rate:    %s\n", format.Percent(result.EffectiveRate))
	fmt.Fprintf(w, "Total interest:    %s\n", format.Currency(result.Totals.Interest))
	if result.PMI.Required {
		fmt.Fprintf(w, "Monthly PMI:       %s", format.Currency(result.PMI.MonthlyPremium))
		if result.PMI.RemovalPeriod > 0 {
			fmt.Fprintf(w, " (removed at period %d)", result.PMI.RemovalPeriod)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "Cost of ownership: %s\n", format.Currency(result.Totals.CostOfOwnership))

	fmt.Fprintf(w, "\nPeriod | Payment       | Principal     | Interest      | Balance\n")
	fmt.Fprintf(w, "______ | _____________ | _____________ | _____________ | _____________\n")
	for _, entry := range result.Schedule {
		_, _ = p.Fprintf(w, "%6d | $%.2f | $%.2f | $%.2f | $%.2f\n",
			entry.Period, entry.Payment, entry.Principal, entry.Interest, entry.Balance)
	}
}

// CsvString renders the amortization schedule in comma-separated value format.
func CsvString(result *loan.Result) string {
	var builder strings.Builder
	builder.WriteString(`"period","date","payment","principal","interest","balance","cumulative principal","cumulative interest","pmi"` + "\n")
	for _, entry := range result.Schedule {
		builder.WriteString(fmt.Sprintf(`"%d","%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`+"\n",
			entry.Period, entry.Date, entry.Payment, entry.Principal, entry.Interest,
			entry.Balance, entry.CumulativePrincipal, entry.CumulativeInterest, entry.PMI))
	}
	return builder.String()
}

// CsvFormat writes the amortization schedule in comma-separated value format.
func CsvFormat(w io.Writer, result *loan.Result) {
	_, _ = io.WriteString(w, CsvString(result))
}
