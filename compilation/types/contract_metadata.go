package types

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor"
)

// ContractMetadata is the CBOR-encoded map which the Solidity compiler appends to bytecode (unless explicitly directed
// not to). It carries the compiler version and a hash of the contract's metadata JSON.
// Reference: https://docs.soliditylang.org/en/latest/metadata.html
type ContractMetadata map[string]any

// metadataPrefixes are the CBOR map headers which start the metadata trailer, by compiler generation.
var metadataPrefixes = [][]byte{
	{0xa1, 0x65, 'b', 'z', 'z', 'r', '0', 0x58, 0x20}, // solc <= 0.5.8
	{0xa2, 0x65, 'b', 'z', 'z', 'r', '0', 0x58, 0x20}, // solc >= 0.5.9
	{0xa2, 0x65, 'b', 'z', 'z', 'r', '1', 0x58, 0x20}, // solc >= 0.5.11
	{0xa2, 0x64, 'i', 'p', 'f', 's', 0x58, 0x22},      // solc >= 0.6.0
}

// metadataHashKeys are the keys of ContractMetadata which may hold the metadata hash.
var metadataHashKeys = [...]string{"ipfs", "bzzr1", "bzzr0"}

// ExtractContractMetadata locates and decodes the metadata trailer of the provided bytecode. If no trailer could be
// decoded, nil is returned.
func ExtractContractMetadata(bytecode []byte) ContractMetadata {
	for _, prefix := range metadataPrefixes {
		offset := bytes.LastIndex(bytecode, prefix)
		if offset == -1 {
			continue
		}

		// The trailer ends with a two byte big-endian length, which cbor.Unmarshal treats as trailing data.
		var metadata ContractMetadata
		if err := cbor.Unmarshal(bytecode[offset:], &metadata); err != nil {
			continue
		}
		return metadata
	}
	return nil
}

// MetadataHash returns the metadata hash embedded in the trailer and the key it was stored under. If none is present,
// nil and an empty key are returned.
func (m ContractMetadata) MetadataHash() ([]byte, string) {
	for _, key := range metadataHashKeys {
		if value, ok := m[key]; ok {
			if hash, ok := value.([]byte); ok {
				return hash, key
			}
		}
	}
	return nil, ""
}

// CompilerVersion returns the compiler version embedded in the trailer as "major.minor.patch". Release builds of
// solc embed three version bytes under the "solc" key; prereleases embed a string. An empty string is returned if
// no version is present.
func (m ContractMetadata) CompilerVersion() string {
	value, ok := m["solc"]
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 3 {
			return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
		}
	case string:
		return v
	}
	return ""
}
