package compilation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/crytic/abibin/compilation/platforms"
	"github.com/crytic/abibin/compilation/types"
	"github.com/pkg/errors"
)

// CompileOptions describes the optional compiler settings used when building a CompilationRequest.
type CompileOptions struct {
	// OutputSelection describes which artifacts are requested from the compiler.
	OutputSelection types.OutputSelectionMode

	// Optimizer describes the optimizer settings. If nil, the compiler defaults are used.
	Optimizer *types.OptimizerSettings

	// EVMVersion describes the EVM version to target. If empty, the compiler default is used.
	EVMVersion string
}

// DefaultCompileOptions returns CompileOptions requesting every artifact with compiler default settings.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{OutputSelection: types.OutputSelectionAll}
}

// NewCompilationRequest builds the CompilationRequest registering sourceText under sourceName.
func NewCompilationRequest(sourceText string, sourceName string, options CompileOptions) (*types.CompilationRequest, error) {
	selection, err := options.OutputSelection.OutputSelection()
	if err != nil {
		return nil, err
	}
	request := types.NewCompilationRequest(sourceName, sourceText, selection)
	request.Settings.Optimizer = options.Optimizer
	request.Settings.EVMVersion = options.EVMVersion
	return request, nil
}

// CompileContract compiles sourceText with the provided compiler and extracts the ABI and bytecode of contractName.
// sourceName is both the key the source is registered under and the key results are looked up under.
// Returns a *CompilationFailedError, *ContractNotFoundError or *MalformedOutputError for the respective failures, or
// the compiler's error if it could not be invoked. This function performs no file I/O and no logging.
func CompileContract(compiler platforms.Compiler, sourceText string, sourceName string, contractName string, options CompileOptions) (*types.CompiledContract, error) {
	if sourceName == "" {
		return nil, errors.New("a source name is required to compile a contract")
	}
	if contractName == "" {
		return nil, errors.New("a contract name is required to compile a contract")
	}

	// Build and serialize our request
	request, err := NewCompilationRequest(sourceText, sourceName, options)
	if err != nil {
		return nil, err
	}
	input, err := json.Marshal(request)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Invoke the compiler
	rawOutput, err := compiler.CompileStandardJSON(input)
	if err != nil {
		return nil, err
	}

	// Parse the output and extract our contract from it
	output, err := ParseCompilationOutput(rawOutput)
	if err != nil {
		return nil, err
	}
	return ExtractContract(output, sourceName, contractName)
}

// ParseCompilationOutput deserializes the compiler's standard JSON output, returning a *MalformedOutputError if it
// does not have the expected shape.
func ParseCompilationOutput(rawOutput []byte) (*types.CompilationOutput, error) {
	// Decoding a non-object such as null would silently yield an empty output
	trimmed := bytes.TrimLeft(rawOutput, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &MalformedOutputError{Reason: "the standard JSON output is not a JSON object"}
	}

	var output types.CompilationOutput
	if err := json.Unmarshal(rawOutput, &output); err != nil {
		return nil, &MalformedOutputError{Reason: "could not parse the standard JSON output", Err: err}
	}
	for i, diagnostic := range output.Errors {
		if diagnostic.Severity == "" {
			return nil, &MalformedOutputError{Reason: fmt.Sprintf("diagnostic %d has no severity", i)}
		}
	}
	return &output, nil
}

// ExtractContract extracts the contract named contractName in source unit sourceName from a parsed compilation output.
// Error diagnostics take precedence over the contract lookup, so no artifacts are extracted from a failed
// compilation.
func ExtractContract(output *types.CompilationOutput, sourceName string, contractName string) (*types.CompiledContract, error) {
	if errorDiagnostics := output.ErrorDiagnostics(); len(errorDiagnostics) > 0 {
		return nil, &CompilationFailedError{SourceName: sourceName, Diagnostics: errorDiagnostics}
	}

	contractOutput, ok := output.Contract(sourceName, contractName)
	if !ok {
		return nil, &ContractNotFoundError{
			SourceName:   sourceName,
			ContractName: contractName,
			Available:    output.ContractNames(sourceName),
		}
	}

	// Both artifacts must be present. The ABI is passed through as-is, so it only has to be a JSON array
	if len(contractOutput.Abi) == 0 || string(contractOutput.Abi) == "null" {
		return nil, &MalformedOutputError{Reason: fmt.Sprintf("contract '%s' has no abi", contractName)}
	}
	var abiEntries []json.RawMessage
	if err := json.Unmarshal(contractOutput.Abi, &abiEntries); err != nil {
		return nil, &MalformedOutputError{Reason: fmt.Sprintf("contract '%s' has an abi which is not a JSON array", contractName), Err: err}
	}
	if contractOutput.EVM == nil || contractOutput.EVM.Bytecode == nil || contractOutput.EVM.Bytecode.Object == nil {
		return nil, &MalformedOutputError{Reason: fmt.Sprintf("contract '%s' has no evm.bytecode.object", contractName)}
	}

	// Library functions may declare parameter types the ABI parser does not know, which leaves ParsedAbi unset
	parsedAbi, _ := types.ParseABI(contractOutput.Abi)

	return &types.CompiledContract{
		Name:       contractName,
		SourceName: sourceName,
		Abi:        contractOutput.Abi,
		ParsedAbi:  parsedAbi,
		Bytecode:   *contractOutput.EVM.Bytecode.Object,
		Warnings:   output.WarningDiagnostics(),
	}, nil
}
