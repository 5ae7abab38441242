package exitcodes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetInnerErrorAndExitCode(t *testing.T) {
	err, exitCode := GetInnerErrorAndExitCode(nil)
	assert.NoError(t, err)
	assert.Equal(t, ExitCodeSuccess, exitCode)

	generalErr := errors.New("general")
	err, exitCode = GetInnerErrorAndExitCode(generalErr)
	assert.Equal(t, generalErr, err)
	assert.Equal(t, ExitCodeGeneralError, exitCode)

	innerErr := errors.New("compilation failed")
	err, exitCode = GetInnerErrorAndExitCode(NewErrorWithExitCode(innerErr, ExitCodeCompilationFailed))
	assert.Equal(t, innerErr, err)
	assert.Equal(t, ExitCodeCompilationFailed, exitCode)

	// Exit codes survive wrapping
	err, exitCode = GetInnerErrorAndExitCode(errors.WithMessage(NewErrorWithExitCode(innerErr, ExitCodeContractNotFound), "build"))
	assert.Equal(t, innerErr, err)
	assert.Equal(t, ExitCodeContractNotFound, exitCode)
	assert.True(t, IsHandledExitCode(exitCode))
	assert.False(t, IsHandledExitCode(ExitCodeGeneralError))
}
