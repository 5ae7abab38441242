package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/crytic/abibin/compilation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ProjectConfig describes the configuration of a build: what to compile, where to write the artifacts and how to log.
type ProjectConfig struct {
	// Compilation describes the configuration used to compile the source file.
	Compilation *compilation.CompilationConfig `json:"compilation"`

	// Output describes where the artifacts are written.
	Output OutputConfig `json:"output"`

	// Logging describes the configuration used for logging.
	Logging LoggingConfig `json:"logging"`
}

// OutputConfig describes the configuration options used to write artifacts
type OutputConfig struct {
	// Directory describes the directory the artifacts are written to. Relative paths are resolved against the working
	// directory.
	Directory string `json:"directory"`

	// AbiFileName describes the file name of the ABI artifact. If empty, "<contract>.abi" is used.
	AbiFileName string `json:"abiFileName,omitempty"`

	// BytecodeFileName describes the file name of the bytecode artifact. If empty, "<contract>.bin" is used.
	BytecodeFileName string `json:"bytecodeFileName,omitempty"`
}

// LoggingConfig describes the configuration options used for logging
type LoggingConfig struct {
	// Level describes whether logs of certain severity levels (eg info, warning, etc.) will be emitted or discarded.
	// Increasing level values represent more severe logs
	Level zerolog.Level `json:"level"`

	// LogDirectory describes the directory where a structured log file will be written. If the string is empty, then
	// no log file is kept.
	LogDirectory string `json:"logDirectory"`

	// NoColor indicates whether log messages should be displayed with colored formatting.
	NoColor bool `json:"noColor"`
}

// ArtifactPaths returns the artifact paths for the given contract.
func (o *OutputConfig) ArtifactPaths(contractName string) compilation.ArtifactPaths {
	paths := compilation.DefaultArtifactPaths(o.Directory, contractName)
	if o.AbiFileName != "" {
		paths.AbiPath = filepath.Join(o.Directory, o.AbiFileName)
	}
	if o.BytecodeFileName != "" {
		paths.BytecodePath = filepath.Join(o.Directory, o.BytecodeFileName)
	}
	return paths
}

// ReadProjectConfigFromFile reads a JSON-serialized ProjectConfig from a provided file path. Values absent from the
// file keep their defaults.
// Returns the ProjectConfig if it succeeds, or an error if one occurs.
func ReadProjectConfigFromFile(path string) (*ProjectConfig, error) {
	// Read our project configuration file data
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Parse the project configuration over the defaults
	projectConfig := GetDefaultProjectConfig("")
	err = json.Unmarshal(b, projectConfig)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return projectConfig, nil
}

// WriteToFile writes the ProjectConfig to a provided file path in a JSON-serialized format.
// Returns an error if one occurs.
func (p *ProjectConfig) WriteToFile(path string) error {
	// Serialize the configuration
	b, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}

	// Save it to the provided output path and return the result
	err = os.WriteFile(path, b, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Validate validates that the ProjectConfig meets certain requirements.
// Returns an error if one occurs.
func (p *ProjectConfig) Validate() error {
	if p.Compilation == nil {
		return errors.New("project configuration must specify a compilation configuration")
	}
	if err := p.Compilation.Validate(); err != nil {
		return err
	}

	// The two artifacts must not overwrite each other
	paths := p.Output.ArtifactPaths(p.Compilation.GetContractName())
	if filepath.Clean(paths.AbiPath) == filepath.Clean(paths.BytecodePath) {
		return errors.Errorf("the abi and bytecode artifacts cannot share the same path '%s'", paths.AbiPath)
	}

	return nil
}
