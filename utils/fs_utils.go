package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CreateFile creates (or truncates) the file fileName within directory, creating the directory if needed. An empty
// directory refers to the working directory.
func CreateFile(directory string, fileName string) (*os.File, error) {
	if directory != "" {
		if err := MakeDirectory(directory); err != nil {
			return nil, err
		}
	}

	file, err := os.Create(filepath.Join(directory, fileName))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return file, nil
}

// ReadTextFile reads the full contents of the regular file at path as text.
func ReadTextFile(path string) (string, error) {
	if err := requireRegularFile(path); err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(b), nil
}

// MoveFile renames the file at sourcePath to targetPath, replacing any existing target. The target directory is
// created if needed. Both paths should reside on the same file system.
func MoveFile(sourcePath string, targetPath string) error {
	if err := requireRegularFile(sourcePath); err != nil {
		return err
	}
	if err := MakeDirectory(filepath.Dir(targetPath)); err != nil {
		return err
	}
	return errors.WithStack(os.Rename(sourcePath, targetPath))
}

// GetFileNameWithoutExtension obtains a filename without the extension. This does not contain any preceding directory
// paths.
func GetFileNameWithoutExtension(filePath string) string {
	return GetFilePathWithoutExtension(filepath.Base(filePath))
}

// GetFilePathWithoutExtension obtains a file path without the extension. This retains all preceding directory paths.
func GetFilePathWithoutExtension(filePath string) string {
	return filePath[:len(filePath)-len(filepath.Ext(filePath))]
}

// MakeDirectory creates a directory at the given path, including any missing parents. It is a no-op if the directory
// already exists, and an error if a file exists at the path.
func MakeDirectory(directory string) error {
	info, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return errors.WithStack(os.MkdirAll(directory, 0755))
	}
	if err != nil {
		return errors.WithStack(err)
	}
	if !info.IsDir() {
		return errors.Errorf("could not create directory '%s' because a file with the same name exists", directory)
	}
	return nil
}

// requireRegularFile returns an error if path does not exist or refers to a directory.
func requireRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if info.IsDir() {
		return errors.Errorf("'%s' refers to a directory, not a file", path)
	}
	return nil
}
