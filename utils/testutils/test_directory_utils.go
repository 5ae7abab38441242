package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteToTestDirectory writes the provided source to a file with the given name within an ephemeral directory used
// for unit tests, returning the absolute path of the written file.
func WriteToTestDirectory(t *testing.T, fileName string, content string) string {
	targetDirectory := filepath.Join(t.TempDir(), "abibinTest")
	require.NoError(t, os.MkdirAll(targetDirectory, 0755))

	targetPath := filepath.Join(targetDirectory, fileName)
	require.NoError(t, os.WriteFile(targetPath, []byte(content), 0644))

	// Get a normalized absolute path
	targetPath, err := filepath.Abs(targetPath)
	require.NoError(t, err)
	return targetPath
}

// ExecuteInDirectory executes the given method in a given test directory. It changes the current working directory
// to the directory specified, runs the provided method, then restores the working directory. This wraps tests so
// any file artifacts generated do not end up in the codebase directories.
func ExecuteInDirectory(t *testing.T, testPath string, method func()) {
	// Backup our old working directory
	cwd, err := os.Getwd()
	require.NoError(t, err)

	// Check if the test path refers to a file or directory, as we'll want to change our working directory to a
	// directory path.
	testPathInfo, err := os.Stat(testPath)
	require.NoError(t, err)
	testDirectory := testPath
	if !testPathInfo.IsDir() {
		testDirectory = filepath.Dir(testPath)
	}

	// Change our working directory to the test directory and restore it afterwards, even if the method fails
	require.NoError(t, os.Chdir(testDirectory))
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()

	method()
}

// ListDirectory returns the names of all entries within the provided directory.
func ListDirectory(t *testing.T, directory string) []string {
	entries, err := os.ReadDir(directory)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
