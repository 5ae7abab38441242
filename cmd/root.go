package cmd

import (
	"github.com/crytic/abibin/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "abibin",
	Short:   "Compiles a Solidity contract into its ABI and bytecode artifacts",
	Long:    "abibin compiles a Solidity source file with solc and writes the ABI (.abi) and creation bytecode (.bin) of a contract",
	Version: version.GetInfo().Short(),
}

// Execute runs the root command, parsing the command line arguments and invoking the requested sub-command.
func Execute() error {
	return rootCmd.Execute()
}
