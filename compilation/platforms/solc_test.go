package platforms

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireSolc skips the test if no solc executable is available on PATH.
func requireSolc(t *testing.T) {
	if _, err := exec.LookPath(SolcPlatform); err != nil {
		t.Skip("solc was not found on PATH")
	}
}

func TestSolcVersion(t *testing.T) {
	requireSolc(t)

	// Obtain our solc version and ensure we didn't encounter an error
	solc := NewSolcCompiler("")
	version, err := solc.Version()
	require.NoError(t, err)
	assert.False(t, version.LessThan(minimumStandardJSONVersion))
}

func TestSolcMissingExecutable(t *testing.T) {
	solc := NewSolcCompiler("abibin-solc-does-not-exist")
	_, err := solc.CompileStandardJSON([]byte("{}"))
	assert.Error(t, err)
}

func TestSimpleSolcStandardJSON(t *testing.T) {
	requireSolc(t)

	// Define our contract source code
	request := map[string]any{
		"language": "Solidity",
		"sources": map[string]any{
			"simple_solc_compilation.sol": map[string]any{
				"content": `
contract SimpleSolcCompilation {
    uint x1;

    function setx1(uint val) public {
        x1 = val;
    }
}`,
			},
		},
		"settings": map[string]any{
			"outputSelection": map[string]any{
				"*": map[string]any{"*": []string{"abi", "evm.bytecode.object"}},
			},
		},
	}
	input, err := json.Marshal(request)
	require.NoError(t, err)

	// Compile and ensure the contract is present in the output
	output, err := NewSolcCompiler("").CompileStandardJSON(input)
	require.NoError(t, err)

	var parsed struct {
		Contracts map[string]map[string]json.RawMessage `json:"contracts"`
	}
	require.NoError(t, json.Unmarshal(output, &parsed))
	assert.Contains(t, parsed.Contracts["simple_solc_compilation.sol"], "SimpleSolcCompilation")
}

func TestSupportedPlatforms(t *testing.T) {
	// Each supported platform should construct a compiler reporting its own identifier
	for _, platform := range GetSupportedPlatforms() {
		compiler, err := NewCompiler(platform, "")
		require.NoError(t, err)
		assert.Equal(t, platform, compiler.Platform())
	}

	_, err := NewCompiler("brownie", "")
	assert.Error(t, err)
}
