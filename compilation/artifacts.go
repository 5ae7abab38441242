package compilation

import (
	"os"
	"path/filepath"

	"github.com/crytic/abibin/compilation/types"
	"github.com/crytic/abibin/utils"
	"github.com/pkg/errors"
)

const (
	// AbiFileExtension is the extension of the ABI artifact file.
	AbiFileExtension = ".abi"
	// BytecodeFileExtension is the extension of the bytecode artifact file.
	BytecodeFileExtension = ".bin"
)

// ArtifactPaths describes where the artifacts of a compiled contract are written.
type ArtifactPaths struct {
	// AbiPath is the path of the ABI file, containing the ABI as JSON text.
	AbiPath string

	// BytecodePath is the path of the bytecode file, containing the bytecode object verbatim.
	BytecodePath string
}

// DefaultArtifactPaths returns the ArtifactPaths for a contract within the given directory, named after the contract:
// "<contract>.abi" and "<contract>.bin".
func DefaultArtifactPaths(directory string, contractName string) ArtifactPaths {
	return ArtifactPaths{
		AbiPath:      filepath.Join(directory, contractName+AbiFileExtension),
		BytecodePath: filepath.Join(directory, contractName+BytecodeFileExtension),
	}
}

// WriteArtifacts writes the ABI and bytecode of the contract to the provided paths, overwriting existing files. Both
// files are staged next to their destination first and only moved into place once both were written, so a failure
// while writing leaves neither artifact behind.
func WriteArtifacts(contract *types.CompiledContract, paths ArtifactPaths) error {
	abiData, err := contract.CompactAbi()
	if err != nil {
		return errors.Wrap(err, "could not serialize the abi")
	}

	// Stage both artifacts
	stagedAbiPath, err := stageFile(paths.AbiPath, abiData)
	if err != nil {
		return err
	}
	stagedBytecodePath, err := stageFile(paths.BytecodePath, []byte(contract.Bytecode))
	if err != nil {
		_ = os.Remove(stagedAbiPath)
		return err
	}

	// Set the existing ABI aside, so it can be restored if the bytecode cannot be moved into place
	backupAbiPath, err := backupFile(paths.AbiPath)
	if err != nil {
		_ = os.Remove(stagedAbiPath)
		_ = os.Remove(stagedBytecodePath)
		return err
	}

	// Move them into place
	if err = utils.MoveFile(stagedAbiPath, paths.AbiPath); err != nil {
		_ = os.Remove(stagedAbiPath)
		_ = os.Remove(stagedBytecodePath)
		return errors.Wrap(restoreFile(backupAbiPath, paths.AbiPath, err), "could not write the abi")
	}
	if err = utils.MoveFile(stagedBytecodePath, paths.BytecodePath); err != nil {
		_ = os.Remove(stagedBytecodePath)
		return errors.Wrap(restoreFile(backupAbiPath, paths.AbiPath, err), "could not write the bytecode")
	}
	if backupAbiPath != "" {
		_ = os.Remove(backupAbiPath)
	}
	return nil
}

// backupFile moves an existing file at path to a new file next to it and returns the backup's path. An empty path is
// returned if no file exists at path.
func backupFile(path string) (string, error) {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", errors.WithStack(err)
	}
	if info.IsDir() {
		return "", errors.Errorf("cannot write an artifact to '%s' as it is a directory", path)
	}

	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.bak")
	if err != nil {
		return "", errors.WithStack(err)
	}
	backupPath := file.Name()
	_ = file.Close()

	if err = os.Rename(path, backupPath); err != nil {
		_ = os.Remove(backupPath)
		return "", errors.WithStack(err)
	}
	return backupPath, nil
}

// restoreFile returns path to its state before backupFile was called, removing it if there was no backup. cause is
// returned, annotated with a warning if path could not be restored.
func restoreFile(backupPath string, path string, cause error) error {
	var err error
	if backupPath == "" {
		err = os.Remove(path)
		if os.IsNotExist(err) {
			err = nil
		}
	} else {
		err = os.Rename(backupPath, path)
	}
	if err != nil {
		return errors.Wrapf(cause, "%s may not match the other artifact and could not be restored (%v)", path, err)
	}
	return cause
}

// stageFile writes data to a new temporary file within the directory of targetPath and returns the temporary file's
// path. The directory is created if it does not exist.
func stageFile(targetPath string, data []byte) (string, error) {
	directory := filepath.Dir(targetPath)
	if err := utils.MakeDirectory(directory); err != nil {
		return "", err
	}

	file, err := os.CreateTemp(directory, "."+filepath.Base(targetPath)+".*.tmp")
	if err != nil {
		return "", errors.WithStack(err)
	}
	stagedPath := file.Name()

	if _, err = file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(stagedPath)
		return "", errors.WithStack(err)
	}
	if err = file.Close(); err != nil {
		_ = os.Remove(stagedPath)
		return "", errors.WithStack(err)
	}

	// Temporary files are created with 0600, artifacts are meant to be shared
	if err = os.Chmod(stagedPath, 0644); err != nil {
		_ = os.Remove(stagedPath)
		return "", errors.WithStack(err)
	}
	return stagedPath, nil
}
