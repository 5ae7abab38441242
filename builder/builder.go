package builder

import (
	"github.com/crytic/abibin/builder/config"
	"github.com/crytic/abibin/compilation"
	"github.com/crytic/abibin/compilation/abiutils"
	"github.com/crytic/abibin/compilation/platforms"
	"github.com/crytic/abibin/compilation/types"
	"github.com/crytic/abibin/logging"
	"github.com/crytic/abibin/logging/colors"
	"github.com/crytic/abibin/logging/formatters"
	"github.com/crytic/abibin/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Builder compiles the configured source file and writes the ABI and bytecode artifacts of the configured contract.
type Builder struct {
	// config describes the project configuration the builder operates with.
	config config.ProjectConfig

	// compiler describes the compiler backend used to compile the source.
	compiler platforms.Compiler

	// logger describes the Builder's log object that can be used to log important events
	logger *logging.Logger

	// Events describes the event system for the Builder.
	Events BuilderEvents
}

// BuildResult describes the outcome of a successful Builder.Build.
type BuildResult struct {
	// BuildId uniquely identifies the build. It is attached to every log line the build emitted.
	BuildId uuid.UUID

	// Contract describes the compiled contract the artifacts were written for.
	Contract *types.CompiledContract

	// Paths describes where the artifacts were written.
	Paths compilation.ArtifactPaths

	// Summary describes properties of the compiled contract.
	Summary compilation.ArtifactSummary
}

// NewBuilder returns a new Builder for the provided project configuration. If compiler is nil, the compiler described
// by the compilation configuration is used.
// Returns the Builder or an error if one occurred.
func NewBuilder(projectConfig config.ProjectConfig, compiler platforms.Compiler) (*Builder, error) {
	// Validate our provided config
	err := projectConfig.Validate()
	if err != nil {
		return nil, err
	}

	// Create our compiler backend from the configuration unless one was provided
	if compiler == nil {
		compiler, err = projectConfig.Compilation.NewCompiler()
		if err != nil {
			return nil, err
		}
	}

	return &Builder{
		config:   projectConfig,
		compiler: compiler,
		logger:   logging.GlobalLogger.NewSubLogger("module", logging.BUILDER_SERVICE),
	}, nil
}

// Build reads the source file, compiles it and writes both artifacts. Artifacts are written only if compilation and
// extraction succeeded, and either both are written or neither is.
// Returns the BuildResult, or an error if one occurred.
func (b *Builder) Build() (*BuildResult, error) {
	compilationConfig := b.config.Compilation
	sourceName := compilationConfig.GetSourceName()
	contractName := compilationConfig.GetContractName()

	// Tag every log line of this build so builds can be told apart within a shared log file
	buildId := uuid.New()
	logger := b.logger.NewSubLogger("build", buildId.String())

	// Read our source file in full
	sourceText, err := utils.ReadTextFile(compilationConfig.Target)
	if err != nil {
		logger.Error("Failed to read the source file ", colors.Bold, compilationConfig.Target, colors.Reset, err)
		return nil, err
	}

	// Compile the source and extract our contract
	logger.Info("Compiling ", colors.Bold, compilationConfig.Target, colors.Reset, " as ", colors.Bold, sourceName, colors.Reset,
		" using ", colors.Bold, b.compiler.Platform(), colors.Reset)
	contract, err := compilation.CompileContract(b.compiler, sourceText, sourceName, contractName, compilationConfig.CompileOptions())
	if err != nil {
		logCompileError(logger, err)
		return nil, err
	}

	// Relay warnings verbatim
	for _, warning := range contract.Warnings {
		logger.Warn(formatters.DiagnosticColorFunc, warning.String())
	}

	// Give subscribers a chance to inspect, or reject, the contract before anything is written
	err = b.Events.ContractCompiled.Publish(ContractCompiledEvent{Contract: contract})
	if err != nil {
		logger.Error("Artifacts of ", colors.Bold, contractName, colors.Reset, " were rejected", err)
		return nil, err
	}

	// Write both artifacts
	paths := b.config.Output.ArtifactPaths(contractName)
	err = compilation.WriteArtifacts(contract, paths)
	if err != nil {
		logger.Error("Failed to write the artifacts of ", colors.Bold, contractName, colors.Reset, err)
		return nil, err
	}

	summary := compilation.SummarizeContract(contract)
	logSummary(logger, contract, summary, paths)

	err = b.Events.ArtifactsWritten.Publish(ArtifactsWrittenEvent{Contract: contract, Paths: paths, Summary: summary})
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		BuildId:  buildId,
		Contract: contract,
		Paths:    paths,
		Summary:  summary,
	}, nil
}

// logCompileError logs a compilation error, relaying compiler diagnostics verbatim.
func logCompileError(logger *logging.Logger, err error) {
	var compilationFailedErr *compilation.CompilationFailedError
	var contractNotFoundErr *compilation.ContractNotFoundError
	var malformedOutputErr *compilation.MalformedOutputError

	switch {
	case errors.As(err, &compilationFailedErr):
		logger.Error("Compilation of ", colors.Bold, compilationFailedErr.SourceName, colors.Reset, " failed with ",
			len(compilationFailedErr.Diagnostics), " error(s)")
		for _, diagnostic := range compilationFailedErr.Diagnostics {
			logger.Error(formatters.DiagnosticColorFunc, diagnostic.String())
		}
	case errors.As(err, &contractNotFoundErr):
		logger.Error("Failed to extract the contract artifacts", err)
	case errors.As(err, &malformedOutputErr):
		logger.Error("The compiler returned output which could not be understood", err)
	default:
		logger.Error("Failed to invoke the compiler", err)
	}
}

// logSummary logs where the artifacts were written along with properties of the compiled contract.
func logSummary(logger *logging.Logger, contract *types.CompiledContract, summary compilation.ArtifactSummary, paths compilation.ArtifactPaths) {
	logger.Info("ABI written to ", colors.Bold, paths.AbiPath, colors.Reset)
	logger.Info("Bytecode written to ", colors.Bold, paths.BytecodePath, colors.Reset)

	info := logging.StructuredLogInfo{"contract": summary.ContractName}
	if summary.AbiParsed {
		info["methods"] = summary.Methods
		info["events"] = summary.Events
		info["errors"] = summary.Errors
	}
	if summary.BytecodeSize >= 0 {
		info["bytecodeSize"] = summary.BytecodeSize
		info["bytecodeHash"] = summary.BytecodeHash
	}
	if summary.CompilerVersion != "" {
		info["compilerVersion"] = summary.CompilerVersion
	}
	if summary.AbiParsed {
		logger.Info("Compiled ", colors.Bold, summary.ContractName, colors.Reset, ": ",
			summary.Methods, " method(s), ", summary.Events, " event(s), ", summary.Errors, " error(s)", info)
	} else {
		logger.Info("Compiled ", colors.Bold, summary.ContractName, colors.Reset, info)
		logger.Debug("The abi of ", summary.ContractName, " could not be parsed, skipping its method and event counts")
	}

	if summary.BytecodeSize > 0 {
		logger.Info("Bytecode is ", summary.BytecodeSize, " bytes with keccak256 ", colors.Bold, "0x", summary.BytecodeHash, colors.Reset)
	}
	if summary.BytecodeSize == 0 {
		logger.Warn("Contract ", colors.Bold, summary.ContractName, colors.Reset,
			" has no bytecode, it is likely an interface or an abstract contract")
	}
	if len(summary.LibraryPlaceholders) > 0 {
		logger.Warn("Contract ", colors.Bold, summary.ContractName, colors.Reset, " contains ", len(summary.LibraryPlaceholders),
			" unlinked library placeholder(s), the bytecode must be linked before deployment")
	}

	if contract.ParsedAbi == nil {
		return
	}
	for _, signature := range abiutils.GetMethodSignatures(*contract.ParsedAbi) {
		logger.Debug("method ", signature)
	}
	for _, signature := range abiutils.GetEventSignatures(*contract.ParsedAbi) {
		logger.Debug("event ", signature)
	}
}
