package types

import (
	"encoding/json"

	"golang.org/x/exp/slices"
)

// SolidityLanguage is the language identifier used in standard JSON compilation requests for Solidity sources.
const SolidityLanguage = "Solidity"

// CompilationRequest describes a solc standard JSON input descriptor. It is constructed once per compilation and is
// not modified after it is built.
type CompilationRequest struct {
	// Language describes the source language of all sources in the request.
	Language string `json:"language"`

	// Sources maps a source unit name to its content. The source unit name is also the key under which results are
	// reported in the CompilationOutput.
	Sources map[string]SourceInput `json:"sources"`

	// Settings describes the compiler settings, most notably which artifacts should be emitted.
	Settings CompilationSettings `json:"settings"`
}

// SourceInput describes a single source unit provided inline within a CompilationRequest.
type SourceInput struct {
	// Content is the full source text of the source unit.
	Content string `json:"content"`
}

// CompilationSettings describes the settings object of a CompilationRequest.
type CompilationSettings struct {
	// Optimizer describes the optimizer settings. If nil, the compiler defaults are used.
	Optimizer *OptimizerSettings `json:"optimizer,omitempty"`

	// EVMVersion describes the EVM version to target. If empty, the compiler default is used.
	EVMVersion string `json:"evmVersion,omitempty"`

	// OutputSelection describes which artifacts the compiler should emit, per source file and per contract.
	OutputSelection OutputSelection `json:"outputSelection"`
}

// OptimizerSettings describes the optimizer settings object of a CompilationRequest.
type OptimizerSettings struct {
	// Enabled describes whether the optimizer is enabled.
	Enabled bool `json:"enabled"`

	// Runs describes how many times the deployed code is expected to be executed, which guides the optimizer.
	Runs int `json:"runs"`
}

// NewCompilationRequest creates a CompilationRequest for a single Solidity source unit, registered under sourceName,
// with the provided output selection.
func NewCompilationRequest(sourceName string, sourceText string, selection OutputSelection) *CompilationRequest {
	return &CompilationRequest{
		Language: SolidityLanguage,
		Sources: map[string]SourceInput{
			sourceName: {Content: sourceText},
		},
		Settings: CompilationSettings{
			OutputSelection: selection,
		},
	}
}

// CompilationOutput describes a solc standard JSON output descriptor.
type CompilationOutput struct {
	// Errors describes all diagnostics reported by the compiler, including warnings and informational messages.
	Errors []Diagnostic `json:"errors,omitempty"`

	// Contracts maps a source unit name to a mapping of contract names to their artifacts.
	Contracts map[string]map[string]ContractOutput `json:"contracts,omitempty"`
}

// ContractOutput describes the artifacts emitted for a single contract within a CompilationOutput.
type ContractOutput struct {
	// Abi describes the contract's application binary interface as emitted by the compiler. It is passed through
	// unmodified.
	Abi json.RawMessage `json:"abi,omitempty"`

	// EVM describes the EVM-related artifacts of the contract.
	EVM *EVMOutput `json:"evm,omitempty"`
}

// EVMOutput describes the "evm" object of a ContractOutput.
type EVMOutput struct {
	// Bytecode describes the creation (init) bytecode of the contract.
	Bytecode *BytecodeOutput `json:"bytecode,omitempty"`

	// DeployedBytecode describes the runtime bytecode of the contract.
	DeployedBytecode *BytecodeOutput `json:"deployedBytecode,omitempty"`
}

// BytecodeOutput describes a bytecode object emitted by the compiler.
type BytecodeOutput struct {
	// Object is the hex-encoded bytecode, without a 0x prefix. It may contain unlinked library placeholders.
	Object *string `json:"object,omitempty"`

	// SourceMap describes the source mapping for the bytecode, if requested.
	SourceMap string `json:"sourceMap,omitempty"`
}

// Contract looks up the artifacts for the given contract within the given source unit. The boolean indicates whether
// the contract was present.
func (o *CompilationOutput) Contract(sourceName string, contractName string) (ContractOutput, bool) {
	contracts, ok := o.Contracts[sourceName]
	if !ok {
		return ContractOutput{}, false
	}
	contract, ok := contracts[contractName]
	return contract, ok
}

// ContractNames returns the sorted names of all contracts emitted for the given source unit.
func (o *CompilationOutput) ContractNames(sourceName string) []string {
	names := make([]string, 0, len(o.Contracts[sourceName]))
	for name := range o.Contracts[sourceName] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ErrorDiagnostics returns all diagnostics with an error severity.
func (o *CompilationOutput) ErrorDiagnostics() []Diagnostic {
	return o.diagnosticsWithSeverity(SeverityError)
}

// WarningDiagnostics returns all diagnostics with a warning severity.
func (o *CompilationOutput) WarningDiagnostics() []Diagnostic {
	return o.diagnosticsWithSeverity(SeverityWarning)
}

// diagnosticsWithSeverity returns all diagnostics of the given severity, in the order the compiler reported them.
func (o *CompilationOutput) diagnosticsWithSeverity(severity string) []Diagnostic {
	diagnostics := make([]Diagnostic, 0)
	for _, diagnostic := range o.Errors {
		if diagnostic.Severity == severity {
			diagnostics = append(diagnostics, diagnostic)
		}
	}
	return diagnostics
}
