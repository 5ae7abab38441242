package compilation

import (
	"path/filepath"

	"github.com/crytic/abibin/compilation/platforms"
	"github.com/crytic/abibin/compilation/types"
	"github.com/crytic/abibin/utils"
	"github.com/pkg/errors"
)

// CompilationConfig describes the configuration options used to compile a single smart contract source file.
type CompilationConfig struct {
	// Platform references an identifier indicating which compiler backend to use (see platforms.GetSupportedPlatforms).
	Platform string `json:"platform"`

	// CompilerPath describes the path to the compiler executable. If empty, the platform executable is looked up on
	// PATH.
	CompilerPath string `json:"compilerPath,omitempty"`

	// Target describes the path to the source file to compile.
	Target string `json:"target"`

	// SourceName describes the source unit name the source is registered and looked up under. If empty, the file
	// name of Target is used.
	SourceName string `json:"sourceName,omitempty"`

	// ContractName describes the contract whose artifacts are extracted. If empty, the file name of Target without
	// its extension is used.
	ContractName string `json:"contractName,omitempty"`

	// OutputSelection describes which artifacts are requested from the compiler.
	OutputSelection types.OutputSelectionMode `json:"outputSelection"`

	// Optimizer describes the optimizer settings. If nil, the compiler defaults are used.
	Optimizer *types.OptimizerSettings `json:"optimizer,omitempty"`

	// EVMVersion describes the EVM version to target. If empty, the compiler default is used.
	EVMVersion string `json:"evmVersion,omitempty"`
}

// NewCompilationConfig returns a CompilationConfig with default values for the provided target.
func NewCompilationConfig(target string) *CompilationConfig {
	return &CompilationConfig{
		Platform:        platforms.SolcPlatform,
		Target:          target,
		OutputSelection: types.OutputSelectionAll,
	}
}

// GetSourceName returns the source unit name to compile under.
func (c *CompilationConfig) GetSourceName() string {
	if c.SourceName != "" {
		return c.SourceName
	}
	return filepath.Base(c.Target)
}

// GetContractName returns the name of the contract to extract.
func (c *CompilationConfig) GetContractName() string {
	if c.ContractName != "" {
		return c.ContractName
	}
	return utils.GetFileNameWithoutExtension(c.Target)
}

// CompileOptions returns the CompileOptions described by the configuration.
func (c *CompilationConfig) CompileOptions() CompileOptions {
	return CompileOptions{
		OutputSelection: c.OutputSelection,
		Optimizer:       c.Optimizer,
		EVMVersion:      c.EVMVersion,
	}
}

// NewCompiler creates the platforms.Compiler described by the configuration.
func (c *CompilationConfig) NewCompiler() (platforms.Compiler, error) {
	return platforms.NewCompiler(c.Platform, c.CompilerPath)
}

// Validate validates that the CompilationConfig meets certain requirements.
// Returns an error if one occurs.
func (c *CompilationConfig) Validate() error {
	if !platforms.IsSupportedPlatform(c.Platform) {
		return errors.Errorf("compilation platform '%s' is unsupported", c.Platform)
	}
	if c.Target == "" {
		return errors.New("a compilation target must be provided")
	}
	if _, err := c.OutputSelection.OutputSelection(); err != nil {
		return errors.WithStack(err)
	}
	if c.Optimizer != nil && c.Optimizer.Runs < 0 {
		return errors.New("optimizer runs cannot be negative")
	}
	if c.GetContractName() == "" {
		return errors.New("a contract name could not be determined from the compilation target")
	}
	return nil
}
