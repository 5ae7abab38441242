package builder

import (
	"github.com/crytic/abibin/compilation"
	"github.com/crytic/abibin/compilation/types"
	"github.com/crytic/abibin/events"
)

// BuilderEvents defines event emitters for a Builder.
type BuilderEvents struct {
	// ContractCompiled emits events when the contract was compiled and extracted, before its artifacts are written.
	// A handler returning an error aborts the build without writing artifacts.
	ContractCompiled events.EventEmitter[ContractCompiledEvent]

	// ArtifactsWritten emits events once both artifacts of the contract were written.
	ArtifactsWritten events.EventEmitter[ArtifactsWrittenEvent]
}

// ContractCompiledEvent describes an event where a Builder extracted the requested contract from the compiler output.
type ContractCompiledEvent struct {
	// Contract represents the compiled contract for which the event occurred.
	Contract *types.CompiledContract
}

// ArtifactsWrittenEvent describes an event where a Builder wrote the artifacts of a contract.
type ArtifactsWrittenEvent struct {
	// Contract represents the compiled contract for which the event occurred.
	Contract *types.CompiledContract

	// Paths describes where the artifacts were written.
	Paths compilation.ArtifactPaths

	// Summary describes properties of the compiled contract.
	Summary compilation.ArtifactSummary
}
