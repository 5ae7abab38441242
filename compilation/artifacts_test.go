package compilation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/crytic/abibin/compilation/types"
	"github.com/crytic/abibin/utils/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContract creates a CompiledContract with the test ABI and the provided bytecode.
func newTestContract(t *testing.T, bytecode string) *types.CompiledContract {
	parsedAbi, err := types.ParseABI(json.RawMessage(testAbi))
	require.NoError(t, err)
	return &types.CompiledContract{
		Name:       "A",
		SourceName: "A.sol",
		Abi:        json.RawMessage(testAbi),
		ParsedAbi:  parsedAbi,
		Bytecode:   bytecode,
	}
}

// TestWriteArtifacts verifies the ABI file parses back to the same ABI and the bytecode file holds the bytecode
// object verbatim.
func TestWriteArtifacts(t *testing.T) {
	directory := t.TempDir()
	paths := DefaultArtifactPaths(directory, "A")
	assert.EqualValues(t, filepath.Join(directory, "A.abi"), paths.AbiPath)
	assert.EqualValues(t, filepath.Join(directory, "A.bin"), paths.BytecodePath)

	contract := newTestContract(t, testBytecode)
	require.NoError(t, WriteArtifacts(contract, paths))

	abiData, err := os.ReadFile(paths.AbiPath)
	require.NoError(t, err)
	assert.JSONEq(t, testAbi, string(abiData))
	_, err = types.ParseABI(abiData)
	assert.NoError(t, err)

	bytecodeData, err := os.ReadFile(paths.BytecodePath)
	require.NoError(t, err)
	assert.EqualValues(t, testBytecode, string(bytecodeData))

	// Only the two artifacts remain, with no staged files left behind
	assert.ElementsMatch(t, []string{"A.abi", "A.bin"}, testutils.ListDirectory(t, directory))
}

// TestWriteArtifactsOverwrite verifies existing artifacts are replaced and writing is idempotent.
func TestWriteArtifactsOverwrite(t *testing.T) {
	directory := t.TempDir()
	paths := DefaultArtifactPaths(directory, "A")
	require.NoError(t, os.WriteFile(paths.AbiPath, []byte("stale abi contents which are much longer than the new ones"), 0644))
	require.NoError(t, os.WriteFile(paths.BytecodePath, []byte("stale"), 0644))

	contract := newTestContract(t, "6001")
	require.NoError(t, WriteArtifacts(contract, paths))
	firstAbi, err := os.ReadFile(paths.AbiPath)
	require.NoError(t, err)
	assert.JSONEq(t, testAbi, string(firstAbi))

	require.NoError(t, WriteArtifacts(contract, paths))
	secondAbi, err := os.ReadFile(paths.AbiPath)
	require.NoError(t, err)
	secondBytecode, err := os.ReadFile(paths.BytecodePath)
	require.NoError(t, err)
	assert.EqualValues(t, firstAbi, secondAbi)
	assert.EqualValues(t, "6001", string(secondBytecode))
}

// TestWriteArtifactsCreatesDirectory verifies a missing output directory is created.
func TestWriteArtifactsCreatesDirectory(t *testing.T) {
	directory := filepath.Join(t.TempDir(), "build", "contracts")
	paths := DefaultArtifactPaths(directory, "A")

	require.NoError(t, WriteArtifacts(newTestContract(t, ""), paths))
	bytecodeData, err := os.ReadFile(paths.BytecodePath)
	require.NoError(t, err)
	assert.Empty(t, bytecodeData)
}

// TestWriteArtifactsFailure verifies that if one artifact cannot be written, neither is.
func TestWriteArtifactsFailure(t *testing.T) {
	directory := t.TempDir()

	// The bytecode artifact's directory is a regular file, so it cannot be staged
	blocker := filepath.Join(directory, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte{}, 0644))
	paths := ArtifactPaths{
		AbiPath:      filepath.Join(directory, "A.abi"),
		BytecodePath: filepath.Join(blocker, "A.bin"),
	}

	err := WriteArtifacts(newTestContract(t, "6001"), paths)
	require.Error(t, err)
	assert.NoFileExists(t, paths.AbiPath)
	assert.ElementsMatch(t, []string{"blocker"}, testutils.ListDirectory(t, directory))
}

// TestWriteArtifactsBytecodeMoveFailure verifies that if the bytecode cannot be moved into place after the ABI was,
// the previous ABI is restored and no staged files are left behind.
func TestWriteArtifactsBytecodeMoveFailure(t *testing.T) {
	for _, previousAbi := range []string{"", "previous abi"} {
		directory := t.TempDir()
		paths := DefaultArtifactPaths(directory, "A")
		if previousAbi != "" {
			require.NoError(t, os.WriteFile(paths.AbiPath, []byte(previousAbi), 0644))
		}

		// A non-empty directory occupies the bytecode path, so the staged bytecode cannot be renamed over it
		require.NoError(t, os.Mkdir(paths.BytecodePath, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(paths.BytecodePath, "keep"), []byte{}, 0644))

		err := WriteArtifacts(newTestContract(t, "6001"), paths)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not write the bytecode")

		if previousAbi == "" {
			assert.NoFileExists(t, paths.AbiPath)
			assert.ElementsMatch(t, []string{"A.bin"}, testutils.ListDirectory(t, directory))
		} else {
			abiData, err := os.ReadFile(paths.AbiPath)
			require.NoError(t, err)
			assert.EqualValues(t, previousAbi, string(abiData))
			assert.ElementsMatch(t, []string{"A.abi", "A.bin"}, testutils.ListDirectory(t, directory))
		}
	}
}
