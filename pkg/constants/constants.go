// Package constants provides shared constants for the loan-engine.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day-count basis for non-monthly payment cadences
	DaysPerYear = 365.0

	// DaysPerBiweek is the length of a biweekly payment period in days
	DaysPerBiweek = 14.0

	// DaysPerWeek is the length of a weekly payment period in days
	DaysPerWeek = 7.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Mortgage insurance constants
const (
	// PMIDownPaymentCutoff is the down payment percentage at or above which
	// mortgage insurance is never required
	PMIDownPaymentCutoff = 20.0

	// PMIRemovalLTV is the loan-to-value ratio (balance over original home
	// price) at or below which mortgage insurance drops off
	PMIRemovalLTV = 0.80

	// PMIRemovalPeriodCap bounds the forward simulation used to locate the
	// removal period
	PMIRemovalPeriodCap = 360
)

// Effective-rate solver constants
const (
	// SolverMaxIterations bounds the Newton-Raphson iteration
	SolverMaxIterations = 100

	// SolverTolerance is the convergence threshold on the rate update
	SolverTolerance = 1e-7

	// SolverInitialAnnualRate seeds the iteration before annualization
	SolverInitialAnnualRate = 0.05
)

// Validation bounds
const (
	// MaxHomePrice is the largest price accepted by validation
	MaxHomePrice = 100000000.0

	// MaxInterestRate is the largest nominal annual rate (percent) accepted
	MaxInterestRate = 30.0

	// MaxTermMonths is the longest loan term accepted
	MaxTermMonths = 360

	// MaxPMIRate is the largest mortgage insurance rate (percent) accepted
	MaxPMIRate = 5.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// DateTimeLayout is the format for optional payment dates in configs and in
// schedule output.
const DateTimeLayout = "2006-01"
