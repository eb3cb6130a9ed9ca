package config

// Output defaults.
const (
	DefaultOutputFormat = FormatJSON
	DefaultOutputIndent = 2
)

// Conversion defaults.
const (
	DefaultCookTemplates = false
	DefaultWorkers       = 4
)

// Logging defaults.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false
)

// Telemetry defaults.
const (
	DefaultOTLPInsecure = false
	DefaultSampleRatio  = 1.0
)

const (
	maxIndent  = 8
	maxWorkers = 256
)
