package logging

// These constants are used to identify the various services that may do some logging
const (
	// COMPILATION_SERVICE is the constant used to identify the compilation package
	COMPILATION_SERVICE = "compilation"
	// BUILDER_SERVICE is the constant used to identify the builder package
	BUILDER_SERVICE = "builder"
	// CLI_SERVICE is the constant used to identify the cmd package
	CLI_SERVICE = "cli"
)

// DefaultLogFileName is the name of the structured log file created within a configured log directory.
const DefaultLogFileName = "abibin.log"
