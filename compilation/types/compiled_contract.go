package types

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// libraryPlaceholderRegex matches unlinked library placeholders within hex bytecode, either "__$<hash>$__" (solc >=
// 0.5.0) or "__<name>__" (older compilers).
var libraryPlaceholderRegex = regexp.MustCompile(`__(\$[0-9a-zA-Z]*\$|\w*)__`)

// CompiledContract represents a single contract extracted from a CompilationOutput.
type CompiledContract struct {
	// Name is the name of the contract definition within the source unit.
	Name string

	// SourceName is the source unit name the contract was compiled and looked up under.
	SourceName string

	// Abi describes the contract's application binary interface exactly as the compiler emitted it.
	Abi json.RawMessage

	// ParsedAbi is the parsed form of Abi, used to inspect constructor, method and event definitions. It is nil if the
	// ABI uses types which cannot be parsed, such as the storage reference parameters of library functions.
	ParsedAbi *abi.ABI

	// Bytecode is the hex-encoded creation bytecode object exactly as the compiler emitted it (no 0x prefix). It is
	// empty for interfaces and abstract contracts.
	Bytecode string

	// Warnings describes the non-fatal diagnostics reported by the compiler for the compilation.
	Warnings []Diagnostic
}

// ParseABI parses a raw ABI descriptor into an abi.ABI, or returns an error if it is not a valid descriptor.
func ParseABI(raw json.RawMessage) (*abi.ABI, error) {
	result, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CompactAbi returns the ABI descriptor with insignificant whitespace removed.
func (c *CompiledContract) CompactAbi() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, c.Abi); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsLinked returns a boolean indicating whether the bytecode is free of unlinked library placeholders.
func (c *CompiledContract) IsLinked() bool {
	return len(c.LibraryPlaceholders()) == 0
}

// LibraryPlaceholders returns the unique library placeholders found in the bytecode, in order of first appearance.
// The placeholders are returned with their surrounding delimiters stripped.
func (c *CompiledContract) LibraryPlaceholders() []string {
	matches := libraryPlaceholderRegex.FindAllString(c.Bytecode, -1)
	placeholders := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		placeholder := strings.Trim(match, "_$")
		if _, exists := seen[placeholder]; exists {
			continue
		}
		seen[placeholder] = struct{}{}
		placeholders = append(placeholders, placeholder)
	}
	return placeholders
}

// BytecodeBytes decodes the hex-encoded bytecode. An error is returned if the bytecode contains unlinked library
// placeholders or is otherwise not valid hex.
func (c *CompiledContract) BytecodeBytes() ([]byte, error) {
	if c.Bytecode == "" {
		return []byte{}, nil
	}
	if placeholders := c.LibraryPlaceholders(); len(placeholders) > 0 {
		return nil, errors.Errorf("bytecode of contract '%s' contains %d unlinked library placeholder(s): %s",
			c.Name, len(placeholders), strings.Join(placeholders, ", "))
	}
	return hexutil.Decode("0x" + strings.TrimPrefix(c.Bytecode, "0x"))
}
