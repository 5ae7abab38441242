package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileNameWithoutExtension(t *testing.T) {
	assert.Equal(t, "Exchange", GetFileNameWithoutExtension("contracts/Exchange.sol"))
	assert.Equal(t, "Exchange", GetFileNameWithoutExtension("Exchange"))
	assert.Equal(t, "contracts/Exchange", GetFilePathWithoutExtension("contracts/Exchange.sol"))
}

func TestMakeDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, MakeDirectory(dir))
	require.NoError(t, MakeDirectory(dir))

	// A file in the way should be reported
	filePath := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
	assert.Error(t, MakeDirectory(filePath))
}

func TestMoveFileReplacesTarget(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	target := filepath.Join(dir, "nested", "target")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(source, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

	require.NoError(t, MoveFile(source, target))

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
	_, err = os.Stat(source)
	assert.True(t, os.IsNotExist(err))
}

func TestReadTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Exchange.sol")
	require.NoError(t, os.WriteFile(path, []byte("contract Exchange {}"), 0644))

	text, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "contract Exchange {}", text)

	_, err = ReadTextFile(dir)
	assert.Error(t, err)
	_, err = ReadTextFile(filepath.Join(dir, "missing.sol"))
	assert.Error(t, err)
}
