package compilation

import (
	"os/exec"
	"regexp"
	"testing"

	"github.com/crytic/abibin/compilation/platforms"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireSolc skips the test if no solc executable is available on PATH, and otherwise returns a compiler using it.
func requireSolc(t *testing.T) platforms.Compiler {
	if _, err := exec.LookPath(platforms.SolcPlatform); err != nil {
		t.Skip("solc was not found on PATH")
	}
	return platforms.NewSolcCompiler("")
}

const exchangeSource = `// SPDX-License-Identifier: MIT
pragma solidity >=0.5.0;

contract Exchange {
    event Traded(uint256 amount);

    function trade(uint256 amount) public {
        emit Traded(amount);
    }
}
`

// TestSolcCompileDeterministic verifies compiling the same source twice yields identical artifacts.
func TestSolcCompileDeterministic(t *testing.T) {
	solc := requireSolc(t)

	first, err := CompileContract(solc, exchangeSource, "Exchange.sol", "Exchange", DefaultCompileOptions())
	require.NoError(t, err)
	second, err := CompileContract(solc, exchangeSource, "Exchange.sol", "Exchange", DefaultCompileOptions())
	require.NoError(t, err)

	assert.NotEmpty(t, first.Bytecode)
	assert.EqualValues(t, first.Bytecode, second.Bytecode)
	assert.EqualValues(t, first.Abi, second.Abi)
	require.NotNil(t, first.ParsedAbi)
	assert.Contains(t, first.ParsedAbi.Methods, "trade")
	assert.Contains(t, first.ParsedAbi.Events, "Traded")
}

// TestSolcCompileSelectsContract verifies only the requested contract is extracted from a source defining two.
func TestSolcCompileSelectsContract(t *testing.T) {
	solc := requireSolc(t)
	source := `// SPDX-License-Identifier: MIT
pragma solidity >=0.5.0;

contract A {
    function f() public pure returns (uint256) { return 1; }
}

contract B {
    function g() public pure returns (uint256) { return 2; }
}
`
	contract, err := CompileContract(solc, source, "AB.sol", "B", DefaultCompileOptions())
	require.NoError(t, err)
	assert.EqualValues(t, "B", contract.Name)
	assert.NotEmpty(t, contract.Bytecode)
	require.NotNil(t, contract.ParsedAbi)
	assert.Contains(t, contract.ParsedAbi.Methods, "g")
	assert.NotContains(t, contract.ParsedAbi.Methods, "f")

	_, err = CompileContract(solc, source, "AB.sol", "C", DefaultCompileOptions())
	var notFoundErr *ContractNotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.EqualValues(t, []string{"A", "B"}, notFoundErr.Available)
}

// TestSolcCompileSyntaxError verifies a syntax error is reported with the compiler's formatted message, including
// the location of the error.
func TestSolcCompileSyntaxError(t *testing.T) {
	solc := requireSolc(t)

	_, err := CompileContract(solc, "contract A {\n    function f( public {}\n}\n", "A.sol", "A", DefaultCompileOptions())
	var failedErr *CompilationFailedError
	require.True(t, errors.As(err, &failedErr))
	require.NotEmpty(t, failedErr.Diagnostics)
	assert.EqualValues(t, "ParserError", failedErr.Diagnostics[0].Type)
	assert.Regexp(t, regexp.MustCompile(`A\.sol:\d+:\d+`), failedErr.Diagnostics[0].FormattedMessage)
}

// TestSolcCompileLibraryWithStorageParameter verifies a library taking a storage mapping compiles, even though its
// ABI cannot be parsed.
func TestSolcCompileLibraryWithStorageParameter(t *testing.T) {
	solc := requireSolc(t)
	source := `// SPDX-License-Identifier: MIT
pragma solidity >=0.5.0;

library Balances {
    function get(mapping(uint256 => uint256) storage m, uint256 key) public view returns (uint256) {
        return m[key];
    }
}
`
	contract, err := CompileContract(solc, source, "Balances.sol", "Balances", DefaultCompileOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, contract.Bytecode)
	assert.Contains(t, string(contract.Abi), "mapping(uint256 => uint256)")

	// Artifacts are still written
	paths := DefaultArtifactPaths(t.TempDir(), contract.Name)
	require.NoError(t, WriteArtifacts(contract, paths))
	assert.FileExists(t, paths.AbiPath)
	assert.FileExists(t, paths.BytecodePath)
}
