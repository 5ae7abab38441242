package compilation

import (
	"fmt"
	"strings"

	"github.com/crytic/abibin/compilation/types"
)

// CompilationFailedError is returned when the compiler reports one or more diagnostics of error severity. No
// artifacts are extracted in this case.
type CompilationFailedError struct {
	// SourceName is the source unit name the source was compiled under.
	SourceName string

	// Diagnostics contains every error-severity diagnostic, in the order reported by the compiler.
	Diagnostics []types.Diagnostic
}

// Error returns the error message string, implementing the `error` interface. Diagnostics are included verbatim.
func (e *CompilationFailedError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation of '%s' failed with %d error(s)", e.SourceName, len(e.Diagnostics)))
	for _, diagnostic := range e.Diagnostics {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(diagnostic.String(), "\n"))
	}
	return sb.String()
}

// ContractNotFoundError is returned when the requested contract is absent from the compiled output for the source
// unit.
type ContractNotFoundError struct {
	// SourceName is the source unit name the contract was looked up under.
	SourceName string

	// ContractName is the name of the requested contract.
	ContractName string

	// Available lists the contracts the compiler did emit for the source unit, sorted by name.
	Available []string
}

// Error returns the error message string, implementing the `error` interface.
func (e *ContractNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("contract '%s' was not found in '%s': the source defines no contracts", e.ContractName, e.SourceName)
	}
	return fmt.Sprintf("contract '%s' was not found in '%s' (available: %s)", e.ContractName, e.SourceName, strings.Join(e.Available, ", "))
}

// MalformedOutputError is returned when the compiler's response does not conform to the standard JSON output shape.
type MalformedOutputError struct {
	// Reason describes which part of the output was malformed.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the error message string, implementing the `error` interface.
func (e *MalformedOutputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed compiler output: %s", e.Reason)
	}
	return fmt.Sprintf("malformed compiler output: %s: %v", e.Reason, e.Err)
}

// Unwrap returns the underlying error.
func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
