package compilation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComputeBytecodeHash verifies the keccak256 hash of known inputs.
func TestComputeBytecodeHash(t *testing.T) {
	assert.EqualValues(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ComputeBytecodeHash(nil))
	assert.EqualValues(t, "bc36789e7a1e281436464229828f817d6612f7b477d66591ff96a9e064bcc98a", ComputeBytecodeHash([]byte{0x00}))
}

// TestSummarizeContract verifies ABI entries are counted and the compiler version is read from the metadata trailer.
func TestSummarizeContract(t *testing.T) {
	// ipfs metadata trailer declaring solc 0.8.20, followed by its two byte length
	trailer := "a2646970667358221220" + strings.Repeat("11", 32) + "64736f6c63430008140033"
	contract := newTestContract(t, "6080604052"+trailer)

	summary := SummarizeContract(contract)
	assert.EqualValues(t, "A", summary.ContractName)
	assert.True(t, summary.AbiParsed)
	assert.EqualValues(t, 1, summary.Methods)
	assert.EqualValues(t, 0, summary.Events)
	assert.EqualValues(t, 0, summary.Errors)
	assert.EqualValues(t, 5+len(trailer)/2, summary.BytecodeSize)
	assert.Len(t, summary.BytecodeHash, 64)
	assert.EqualValues(t, "0.8.20", summary.CompilerVersion)
	assert.Empty(t, summary.LibraryPlaceholders)
}

// TestSummarizeUnlinkedContract verifies bytecode with library placeholders is summarized without a size or hash.
func TestSummarizeUnlinkedContract(t *testing.T) {
	placeholder := "__$" + strings.Repeat("ab", 17) + "$__"
	contract := newTestContract(t, "73"+placeholder+"6001")

	summary := SummarizeContract(contract)
	assert.EqualValues(t, -1, summary.BytecodeSize)
	assert.Empty(t, summary.BytecodeHash)
	assert.EqualValues(t, []string{strings.Repeat("ab", 17)}, summary.LibraryPlaceholders)
}
