package config

import (
	"github.com/crytic/abibin/compilation"
	"github.com/rs/zerolog"
)

// GetDefaultProjectConfig obtains a default configuration for a project which compiles the provided target and
// writes its artifacts to the working directory.
func GetDefaultProjectConfig(target string) *ProjectConfig {
	return &ProjectConfig{
		Compilation: compilation.NewCompilationConfig(target),
		Output: OutputConfig{
			Directory: ".",
		},
		Logging: LoggingConfig{
			Level:        zerolog.InfoLevel,
			LogDirectory: "",
			NoColor:      false,
		},
	}
}
