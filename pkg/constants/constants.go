// Package constants provides shared constants for the estimator application.
package constants

// Quantity take-off coefficients, applied to effective area (area × floors).
const (
	// CementBagsPerSqft is the cement consumption in bags per square foot
	CementBagsPerSqft = 0.40

	// SteelKgPerSqft is the steel consumption in kilograms per square foot
	SteelKgPerSqft = 3.50

	// BricksPerSqft is the brick consumption in pieces per square foot
	BricksPerSqft = 8.0

	// SandCftPerSqft is the sand consumption in cubic feet per square foot
	SandCftPerSqft = 1.20

	// CrushCftPerSqft is the crushed-stone consumption in cubic feet per square foot
	CrushCftPerSqft = 0.90
)

// Cost model percentages
const (
	// EquipmentPctOfLabor derives equipment cost from labor cost
	EquipmentPctOfLabor = 0.18

	// OtherCostsPctOfSubtotal derives miscellaneous cost from the category subtotal
	OtherCostsPctOfSubtotal = 0.12
)

// Schedule constants
const (
	// MinDurationDays is the floor on the estimated construction duration
	MinDurationDays = 45

	// DurationDaysPer1000Sqft is the per-floor duration for every 1000 sqft
	DurationDaysPer1000Sqft = 45
)

// AccuracyLevel describes the confidence band of a material take-off estimate.
const AccuracyLevel = "±7–9% (material take-off based)"

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

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the estimate API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for comparing rounded currency amounts
	// (one whole currency unit)
	CurrencyTolerance = 1.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
