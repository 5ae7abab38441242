package utils

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommandWithInput(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat was not found on PATH")
	}

	result, err := RunCommand(exec.Command("cat"), []byte(`{"language":"Solidity"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"language":"Solidity"}`, string(result.Stdout))
	assert.Empty(t, result.Stderr)
	assert.Equal(t, result.Stdout, result.Combined)
}

func TestRunCommandMissingExecutable(t *testing.T) {
	_, err := RunCommand(exec.Command("abibin-executable-does-not-exist"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abibin-executable-does-not-exist")
}
