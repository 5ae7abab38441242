package cmd

import (
	"github.com/crytic/abibin/builder/config"
	"github.com/spf13/cobra"
)

// addInitFlags adds the various flags for the init command
func addInitFlags() error {
	// Output path for configuration
	initCmd.Flags().String("out", "", "output path for the new project configuration file")

	// Target file
	initCmd.Flags().String("target", "", TargetFlagDescription)

	// Contract name
	initCmd.Flags().String("contract", "", "name of the contract to extract (default is the target file name without its extension)")

	// Overwrite
	initCmd.Flags().Bool("force", false, "overwrite an existing project configuration file")

	return nil
}

// updateProjectConfigWithInitFlags will update the given projectConfig with any CLI arguments that were provided to
// the init command. Paths are stored as provided, so they remain relative to the configuration file.
func updateProjectConfigWithInitFlags(cmd *cobra.Command, projectConfig *config.ProjectConfig) error {
	var err error

	// Update target if necessary
	if cmd.Flags().Changed("target") {
		if projectConfig.Compilation.Target, err = cmd.Flags().GetString("target"); err != nil {
			return err
		}
	}

	// Update the contract name if necessary
	if cmd.Flags().Changed("contract") {
		if projectConfig.Compilation.ContractName, err = cmd.Flags().GetString("contract"); err != nil {
			return err
		}
	}

	return nil
}
