package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/crytic/abibin/builder"
	"github.com/crytic/abibin/builder/config"
	"github.com/crytic/abibin/cmd/exitcodes"
	"github.com/crytic/abibin/compilation"
	"github.com/crytic/abibin/logging/colors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// compileCmd represents the command provider for compilation
var compileCmd = &cobra.Command{
	Use:               "compile [target]",
	Short:             "Compiles a contract and writes its ABI and bytecode",
	Long:              `Compiles a Solidity source file and writes the ABI (<contract>.abi) and creation bytecode (<contract>.bin) of a contract`,
	Args:              cmdValidateCompileArgs,
	ValidArgsFunction: cmdValidCompileArgs,
	RunE:              cmdRunCompile,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add all the flags allowed for the compile command
	err := addCompileFlags()
	if err != nil {
		cmdLogger.Panic("Failed to initialize the compile command", err)
	}

	// Add the compile command and its associated flags to the root command
	rootCmd.AddCommand(compileCmd)
}

// cmdValidCompileArgs will return which flags are valid for dynamic completion for the compile command. Solidity
// files are offered for the positional target.
func cmdValidCompileArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Gather a list of flags that are available to be used in the current command but have not been used yet
	var unusedFlags []string
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			unusedFlags = append(unusedFlags, "--"+flag.Name)
		}
	})

	// Offer Solidity sources until a target was provided
	if len(args) == 0 && !cmd.Flags().Changed("target") {
		matches, _ := filepath.Glob(toComplete + "*.sol")
		unusedFlags = append(unusedFlags, matches...)
	}
	return unusedFlags, cobra.ShellCompDirectiveNoFileComp
}

// cmdValidateCompileArgs makes sure at most one positional target is provided, and not alongside --target.
func cmdValidateCompileArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 1)(cmd, args); err != nil {
		err = fmt.Errorf("compile accepts at most 1 target argument")
		cmdLogger.Error("Failed to validate args to the compile command", err)
		return err
	}
	if len(args) == 1 && cmd.Flags().Changed("target") {
		err := fmt.Errorf("compile was provided a target both as an argument and with --target")
		cmdLogger.Error("Failed to validate args to the compile command", err)
		return err
	}
	return nil
}

// cmdRunCompile executes the CLI compile command and navigates through the following possibilities:
// #1: We will search for either a custom config file (via --config) or the default (abibin.json).
// If we find it, read it. If we can't read it, throw an error.
// #2: If a custom file was provided (--config was used), and we can't find the file, throw an error.
// #3: If abibin.json can't be found, use the default project configuration.
func cmdRunCompile(cmd *cobra.Command, args []string) error {
	var projectConfig *config.ProjectConfig

	// Check to see if --config flag was used and store the value of --config flag
	configFlagUsed := cmd.Flags().Changed("config")
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		cmdLogger.Error("Failed to run the compile command", err)
		return err
	}

	// If --config was not used, look for `abibin.json` in the current work directory
	if !configFlagUsed {
		workingDirectory, err := os.Getwd()
		if err != nil {
			cmdLogger.Error("Failed to run the compile command", err)
			return err
		}
		configPath = filepath.Join(workingDirectory, DefaultProjectConfigFilename)
	}

	// Check to see if the file exists at configPath
	_, existenceError := os.Stat(configPath)

	// Possibility #1: File was found
	if existenceError == nil {
		cmdLogger.Info("Reading the configuration file at: ", colors.Bold, configPath, colors.Reset)
		projectConfig, err = config.ReadProjectConfigFromFile(configPath)
		if err != nil {
			cmdLogger.Error("Failed to run the compile command", err)
			return err
		}
	}

	// Possibility #2: If the --config flag was used, and we couldn't find the file, we'll throw an error
	if configFlagUsed && existenceError != nil {
		cmdLogger.Error("Failed to run the compile command", existenceError)
		return existenceError
	}

	// Possibility #3: --config flag was not used and abibin.json was not found, so use the default project config
	if !configFlagUsed && existenceError != nil {
		cmdLogger.Debug("No configuration file was found at ", configPath, ", using the default project configuration")
		projectConfig = config.GetDefaultProjectConfig("")
	}

	// Update the project configuration given whatever flags and arguments were set using the CLI
	err = updateProjectConfigWithCompileFlags(cmd, args, projectConfig)
	if err != nil {
		cmdLogger.Error("Failed to run the compile command", err)
		return err
	}

	// Paths within the configuration file are relative to the file, so we compile from its directory. Paths given on
	// the command line were already made absolute.
	if existenceError == nil {
		err = os.Chdir(filepath.Dir(configPath))
		if err != nil {
			cmdLogger.Error("Failed to run the compile command", err)
			return err
		}
	}

	// Set up logging for the build
	closeLogs, err := configureLogging(projectConfig.Logging)
	if err != nil {
		cmdLogger.Error("Failed to run the compile command", err)
		return err
	}
	defer closeLogs()

	// Create our builder and run it
	b, err := builder.NewBuilder(*projectConfig, nil)
	if err != nil {
		cmdLogger.Error("Failed to run the compile command", err)
		return err
	}
	_, err = b.Build()
	if err != nil {
		// The builder already logged the failure
		return exitcodes.NewErrorWithExitCode(err, exitCodeForBuildError(err))
	}
	return nil
}

// exitCodeForBuildError obtains the exit code the application should exit with for an error returned by the builder.
func exitCodeForBuildError(err error) int {
	var compilationFailedErr *compilation.CompilationFailedError
	var contractNotFoundErr *compilation.ContractNotFoundError
	switch {
	case errors.As(err, &compilationFailedErr):
		return exitcodes.ExitCodeCompilationFailed
	case errors.As(err, &contractNotFoundErr):
		return exitcodes.ExitCodeContractNotFound
	default:
		return exitcodes.ExitCodeHandledError
	}
}
