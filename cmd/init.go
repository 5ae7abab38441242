package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crytic/abibin/builder/config"
	"github.com/crytic/abibin/compilation/platforms"
	"github.com/crytic/abibin/logging/colors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Get supported platforms for customized static completions of "init" flag `$ abibin init <tab> <tab>`
// and to cache supported platforms for CLI arguments validation
var supportedPlatforms = platforms.GetSupportedPlatforms()

// initCmd represents the command provider for init
var initCmd = &cobra.Command{
	Use:               "init [platform]",
	Short:             "Initializes a project configuration",
	Long:              `Initializes a project configuration`,
	Args:              cmdValidateInitArgs,
	ValidArgsFunction: cmdValidInitArgs,
	RunE:              cmdRunInit,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add flags to init command
	err := addInitFlags()
	if err != nil {
		cmdLogger.Panic("Failed to initialize the init command", err)
	}

	// Add the init command and its associated flags to the root command
	rootCmd.AddCommand(initCmd)
}

// cmdValidInitArgs will return which flags and sub-commands are valid for dynamic completion for the init command
func cmdValidInitArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Gather a list of flags that are available to be used in the current command but have not been used yet
	var unusedFlags []string

	// Examine all the flags, and add any flags that have not been set in the current command line
	// to a list of unused flags
	flagUsed := false
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			unusedFlags = append(unusedFlags, "--"+flag.Name)
		} else {
			flagUsed = true
		}
	})

	// If no platform was specified yet, offer the supported platforms as well
	if len(args) == 0 && !flagUsed {
		unusedFlags = append(unusedFlags, supportedPlatforms...)
	}

	return unusedFlags, cobra.ShellCompDirectiveNoFileComp
}

// cmdValidateInitArgs validates CLI arguments
func cmdValidateInitArgs(cmd *cobra.Command, args []string) error {
	// Make sure we have no more than 1 arg
	if err := cobra.RangeArgs(0, 1)(cmd, args); err != nil {
		err = fmt.Errorf("init accepts at most 1 platform argument (options: %s). "+
			"default platform is %v", strings.Join(supportedPlatforms, ", "), platforms.SolcPlatform)
		cmdLogger.Error("Failed to validate args to the init command", err)
		return err
	}

	// Ensure the optional provided argument refers to a supported platform
	if len(args) == 1 && !platforms.IsSupportedPlatform(args[0]) {
		err := fmt.Errorf("init was provided invalid platform argument '%s' (options: %s)", args[0], strings.Join(supportedPlatforms, ", "))
		cmdLogger.Error("Failed to validate args to the init command", err)
		return err
	}

	return nil
}

// cmdRunInit executes the init CLI command and writes a default project configuration updated with any flags
func cmdRunInit(cmd *cobra.Command, args []string) error {
	// Check to see if --out flag was used and store the value of --out flag
	outputFlagUsed := cmd.Flags().Changed("out")
	outputPath, err := cmd.Flags().GetString("out")
	if err != nil {
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}
	// If we weren't provided an output path (flag was not used), we use our working directory
	if !outputFlagUsed {
		workingDirectory, err := os.Getwd()
		if err != nil {
			cmdLogger.Error("Failed to run the init command", err)
			return err
		}
		outputPath = filepath.Join(workingDirectory, DefaultProjectConfigFilename)
	}

	// Create the default project configuration, using the provided platform if any
	projectConfig := config.GetDefaultProjectConfig("")
	if len(args) == 1 {
		projectConfig.Compilation.Platform = args[0]
	}

	// Update the project configuration given whatever flags were set using the CLI
	err = updateProjectConfigWithInitFlags(cmd, projectConfig)
	if err != nil {
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}

	// Refuse to overwrite an existing configuration unless forced
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}
	if _, err = os.Stat(outputPath); err == nil && !force {
		err = fmt.Errorf("a project configuration already exists at '%s', use --force to overwrite it", outputPath)
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}

	// Write our project configuration
	err = projectConfig.WriteToFile(outputPath)
	if err != nil {
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}

	// Print a success message
	if absoluteOutputPath, err := filepath.Abs(outputPath); err == nil {
		outputPath = absoluteOutputPath
	}
	cmdLogger.Info("Project configuration successfully output to: ", colors.Bold, outputPath, colors.Reset)
	return nil
}
