// Package constants provides shared constants for the salarymoon application.
package constants

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default application configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment overrides of the application config
	EnvPrefix = "SALARYMOON"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxFormSizeBytes is the default maximum size of an evaluate form body (64 KB)
	DefaultMaxFormSizeBytes int64 = 64 * 1024
)

// Comparison constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Chart constants
const (
	// ChartTitle is the fixed title of the comparison chart
	ChartTitle = "Employee vs Freelancer Income Comparison"

	// ChartYAxisLabel labels the amount axis
	ChartYAxisLabel = "Amount ($)"

	// ChartWidthInches and ChartHeightInches size the rendered figure
	ChartWidthInches  = 10
	ChartHeightInches = 6

	// ChartDPI is the raster resolution of the rendered figure
	ChartDPI = 100
)
