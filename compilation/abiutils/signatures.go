package abiutils

import (
	"encoding/hex"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// GetMethodSignatures returns the canonical signatures of all methods in the ABI, each prefixed by its hex-encoded
// selector (e.g. "a9059cbb transfer(address,uint256)"). The result is sorted by signature.
func GetMethodSignatures(contractAbi abi.ABI) []string {
	methods := make([]abi.Method, 0, len(contractAbi.Methods))
	for _, method := range contractAbi.Methods {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Sig < methods[j].Sig
	})

	signatures := make([]string, len(methods))
	for i, method := range methods {
		signatures[i] = hex.EncodeToString(method.ID) + " " + method.Sig
	}
	return signatures
}

// GetEventSignatures returns the canonical signatures of all events in the ABI, sorted.
func GetEventSignatures(contractAbi abi.ABI) []string {
	signatures := make([]string, 0, len(contractAbi.Events))
	for _, event := range contractAbi.Events {
		signatures = append(signatures, event.Sig)
	}
	sort.Strings(signatures)
	return signatures
}
