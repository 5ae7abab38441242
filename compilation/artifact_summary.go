package compilation

import (
	"encoding/hex"

	"github.com/crytic/abibin/compilation/types"
	"golang.org/x/crypto/sha3"
)

// ArtifactSummary describes the properties of a compiled contract reported once its artifacts are written.
type ArtifactSummary struct {
	// ContractName is the name of the contract.
	ContractName string

	// AbiParsed indicates whether the ABI could be parsed. Methods, Events and Errors are only counted if so.
	AbiParsed bool

	// Methods is the number of functions declared in the ABI.
	Methods int

	// Events is the number of events declared in the ABI.
	Events int

	// Errors is the number of custom errors declared in the ABI.
	Errors int

	// BytecodeSize is the size of the bytecode in bytes, or -1 if the bytecode could not be decoded.
	BytecodeSize int

	// BytecodeHash is the hex-encoded keccak256 hash of the bytecode, or empty if it could not be decoded.
	BytecodeHash string

	// CompilerVersion is the compiler version embedded in the bytecode metadata, if any.
	CompilerVersion string

	// LibraryPlaceholders lists the unlinked library placeholders present in the bytecode.
	LibraryPlaceholders []string
}

// ComputeBytecodeHash computes the keccak256 hash of the provided bytecode and returns it hex-encoded.
func ComputeBytecodeHash(bytecode []byte) string {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(bytecode)
	return hex.EncodeToString(hasher.Sum(nil))
}

// SummarizeContract computes an ArtifactSummary for the provided contract.
func SummarizeContract(contract *types.CompiledContract) ArtifactSummary {
	summary := ArtifactSummary{
		ContractName:        contract.Name,
		BytecodeSize:        -1,
		LibraryPlaceholders: contract.LibraryPlaceholders(),
	}
	if contract.ParsedAbi != nil {
		summary.AbiParsed = true
		summary.Methods = len(contract.ParsedAbi.Methods)
		summary.Events = len(contract.ParsedAbi.Events)
		summary.Errors = len(contract.ParsedAbi.Errors)
	}

	// Bytecode with unlinked libraries is not valid hex, so it can only be measured once linked
	bytecode, err := contract.BytecodeBytes()
	if err != nil {
		return summary
	}
	summary.BytecodeSize = len(bytecode)
	summary.BytecodeHash = ComputeBytecodeHash(bytecode)
	if metadata := types.ExtractContractMetadata(bytecode); metadata != nil {
		summary.CompilerVersion = metadata.CompilerVersion()
	}
	return summary
}
