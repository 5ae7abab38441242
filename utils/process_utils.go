package utils

import (
	"bytes"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// CommandResult describes the output captured from a command run with RunCommand.
type CommandResult struct {
	// Stdout is everything the command wrote to its standard output.
	Stdout []byte

	// Stderr is everything the command wrote to its standard error.
	Stderr []byte

	// Combined is the interleaved standard output and standard error.
	Combined []byte
}

// RunCommand runs a given exec.Cmd, writing stdin (if non-nil) to its standard input, and captures its output.
// Returns the captured output, along with an error describing the command and its combined output if the command
// could not be started or exited with a non-zero status.
func RunCommand(command *exec.Cmd, stdin []byte) (*CommandResult, error) {
	// Create our buffers to capture output and errors.
	var bStdout, bStderr, bCombined bytes.Buffer

	// Create a synchronized writer over bCombined to avoid data race.
	var combinedWriter io.Writer = &synchronizedWriter{writer: &bCombined}

	command.Stdout = io.MultiWriter(&bStdout, combinedWriter)
	command.Stderr = io.MultiWriter(&bStderr, combinedWriter)
	if stdin != nil {
		command.Stdin = bytes.NewReader(stdin)
	}

	err := command.Run()
	result := &CommandResult{
		Stdout:   bStdout.Bytes(),
		Stderr:   bStderr.Bytes(),
		Combined: bCombined.Bytes(),
	}
	if err != nil {
		return result, errors.Errorf("error while executing %s:\n%s\n\nCommand Output:\n%s\n",
			strings.Join(command.Args, " "), err.Error(), string(result.Combined))
	}
	return result, nil
}

// synchronizedWriter wraps an io.Writer to avoid a data race when writing.
type synchronizedWriter struct {
	writer io.Writer
	mutex  sync.Mutex
}

func (s *synchronizedWriter) Write(p []byte) (n int, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.writer.Write(p)
}
