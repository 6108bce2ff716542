// Package constants provides shared constants for the pesa-dashboard application.
package constants

// Financial assumptions used by the impact calculator when no override is
// configured.
const (
	// DefaultTotalStudents is the enrolled student base used for retention estimates
	DefaultTotalStudents = 15000

	// DefaultMonthlyTuition is the average monthly tuition in BRL
	DefaultMonthlyTuition = 1200.0

	// DefaultCAC is the customer acquisition cost per student in BRL
	DefaultCAC = 2500.0

	// DefaultProgramCost is the annual cost of the program in BRL
	DefaultProgramCost = 635000.0

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Selection defaults for a freshly opened dashboard.
const (
	DefaultYear     = "2029"
	DefaultScenario = "Moderado"
	DefaultSection  = "growth"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Export format constants
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
	ExportFormatYAML = "yaml"
	ExportFormatCSV  = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment overrides of the application config
	EnvPrefix = "PESA"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultReadTimeout is the default HTTP read timeout
	DefaultReadTimeout = "10s"

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server
	DefaultShutdownTimeoutSeconds = 5

	// DefaultMaxHeaderBytes is the default limit on request header size (1 MiB)
	DefaultMaxHeaderBytes int64 = 1 << 20

	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"
)
