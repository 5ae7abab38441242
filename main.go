package main

import (
	"fmt"
	"os"

	"github.com/crytic/abibin/cmd"
	"github.com/crytic/abibin/cmd/exitcodes"
)

func main() {
	// Run our root CLI command, which contains all underlying command logic and will handle parsing/invocation.
	err := cmd.Execute()

	// Obtain the actual error and exit code from the error, if any.
	var exitCode int
	err, exitCode = exitcodes.GetInnerErrorAndExitCode(err)

	// If we have an error which was not reported yet, print it.
	if err != nil && !exitcodes.IsHandledExitCode(exitCode) {
		fmt.Println(err)
	}

	// If we have a non-success exit code, exit with it.
	if exitCode != exitcodes.ExitCodeSuccess {
		os.Exit(exitCode)
	}
}
