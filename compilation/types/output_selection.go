package types

import "fmt"

// OutputSelection describes the compiler output selection: source unit name (or "*") -> contract name (or "*") ->
// artifact kinds.
type OutputSelection map[string]map[string][]string

// OutputSelectionMode identifies a predefined OutputSelection.
type OutputSelectionMode string

const (
	// OutputSelectionAll requests every artifact kind for every source unit and contract.
	OutputSelectionAll OutputSelectionMode = "all"

	// OutputSelectionMinimal requests only the ABI and the creation bytecode object for every source unit and
	// contract.
	OutputSelectionMinimal OutputSelectionMode = "minimal"
)

// wildcard is the output selection key matching every source unit or contract.
const wildcard = "*"

// OutputSelection returns the OutputSelection for the given mode, or an error if the mode is unknown.
func (m OutputSelectionMode) OutputSelection() (OutputSelection, error) {
	var artifacts []string
	switch m {
	case OutputSelectionAll:
		artifacts = []string{wildcard}
	case OutputSelectionMinimal:
		artifacts = []string{"abi", "evm.bytecode.object"}
	default:
		return nil, fmt.Errorf("unknown output selection mode '%s' (options: %s, %s)", m, OutputSelectionAll, OutputSelectionMinimal)
	}
	return OutputSelection{
		wildcard: {
			wildcard: artifacts,
		},
	}, nil
}
