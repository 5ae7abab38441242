package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/crytic/abibin/builder/config"
	"github.com/crytic/abibin/compilation/platforms"
	"github.com/crytic/abibin/compilation/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// addCompileFlags adds the various flags for the compile command
func addCompileFlags() error {
	defaultConfig := config.GetDefaultProjectConfig("")

	// Prevent alphabetical sorting of usage message
	compileCmd.Flags().SortFlags = false

	// Config file
	compileCmd.Flags().String("config", "", "path to config file")

	// Target
	compileCmd.Flags().String("target", "", TargetFlagDescription)

	// Contract name
	compileCmd.Flags().String("contract", "",
		"name of the contract to extract (unless a config file is provided, default is the target file name without its extension)")

	// Source unit name
	compileCmd.Flags().String("source-name", "",
		"source unit name the target is compiled under (unless a config file is provided, default is the target file name)")

	// Output directory
	compileCmd.Flags().String("out", "",
		fmt.Sprintf("directory the artifacts are written to (unless a config file is provided, default is %q)", defaultConfig.Output.Directory))

	// Compiler platform
	compileCmd.Flags().String("platform", "",
		fmt.Sprintf("compiler backend to use (options: %s; unless a config file is provided, default is %s)",
			strings.Join(platforms.GetSupportedPlatforms(), ", "), defaultConfig.Compilation.Platform))

	// Compiler path
	compileCmd.Flags().String("solc", "", "path to the compiler executable (default is looked up on PATH)")

	// Output selection
	compileCmd.Flags().String("output-selection", "",
		fmt.Sprintf("artifacts to request from the compiler (options: %s, %s; unless a config file is provided, default is %s)",
			types.OutputSelectionAll, types.OutputSelectionMinimal, defaultConfig.Compilation.OutputSelection))

	// Optimizer
	compileCmd.Flags().Bool("optimize", false, "enable the optimizer")
	compileCmd.Flags().Int("optimize-runs", 200, "number of optimizer runs, used with --optimize")

	// EVM version
	compileCmd.Flags().String("evm-version", "", "EVM version to target (default is the compiler default)")

	// Logging
	compileCmd.Flags().String("log-level", "",
		fmt.Sprintf("log level (unless a config file is provided, default is %s)", defaultConfig.Logging.Level))
	compileCmd.Flags().String("log-dir", "", "directory a structured log file is written to")
	compileCmd.Flags().Bool("no-color", false, "disable colored terminal output")

	return nil
}

// updateProjectConfigWithCompileFlags will update the given projectConfig with any CLI arguments that were provided to
// the compile command. Paths provided on the command line are made absolute.
func updateProjectConfigWithCompileFlags(cmd *cobra.Command, args []string, projectConfig *config.ProjectConfig) error {
	var err error
	flags := cmd.Flags()

	// Update the target from the positional argument or --target
	target := ""
	if len(args) == 1 {
		target = args[0]
	} else if flags.Changed("target") {
		if target, err = flags.GetString("target"); err != nil {
			return err
		}
	}
	if target != "" {
		if projectConfig.Compilation.Target, err = filepath.Abs(target); err != nil {
			return err
		}
	}

	// Update the contract name
	if flags.Changed("contract") {
		if projectConfig.Compilation.ContractName, err = flags.GetString("contract"); err != nil {
			return err
		}
	}

	// Update the source unit name
	if flags.Changed("source-name") {
		if projectConfig.Compilation.SourceName, err = flags.GetString("source-name"); err != nil {
			return err
		}
	}

	// Update the output directory
	if flags.Changed("out") {
		directory, err := flags.GetString("out")
		if err != nil {
			return err
		}
		if projectConfig.Output.Directory, err = filepath.Abs(directory); err != nil {
			return err
		}
	}

	// Update the compiler backend
	if flags.Changed("platform") {
		if projectConfig.Compilation.Platform, err = flags.GetString("platform"); err != nil {
			return err
		}
	}
	if flags.Changed("solc") {
		compilerPath, err := flags.GetString("solc")
		if err != nil {
			return err
		}
		// Bare executable names are looked up on PATH, so only paths are made absolute
		if strings.ContainsRune(compilerPath, filepath.Separator) {
			if compilerPath, err = filepath.Abs(compilerPath); err != nil {
				return err
			}
		}
		projectConfig.Compilation.CompilerPath = compilerPath
	}

	// Update the compiler settings
	if flags.Changed("output-selection") {
		selection, err := flags.GetString("output-selection")
		if err != nil {
			return err
		}
		projectConfig.Compilation.OutputSelection = types.OutputSelectionMode(selection)
	}
	if flags.Changed("optimize") || flags.Changed("optimize-runs") {
		enabled, err := flags.GetBool("optimize")
		if err != nil {
			return err
		}
		runs, err := flags.GetInt("optimize-runs")
		if err != nil {
			return err
		}
		projectConfig.Compilation.Optimizer = &types.OptimizerSettings{Enabled: enabled, Runs: runs}
	}
	if flags.Changed("evm-version") {
		if projectConfig.Compilation.EVMVersion, err = flags.GetString("evm-version"); err != nil {
			return err
		}
	}

	// Update the logging configuration
	if flags.Changed("log-level") {
		levelStr, err := flags.GetString("log-level")
		if err != nil {
			return err
		}
		if projectConfig.Logging.Level, err = zerolog.ParseLevel(levelStr); err != nil {
			return err
		}
	}
	if flags.Changed("log-dir") {
		directory, err := flags.GetString("log-dir")
		if err != nil {
			return err
		}
		if projectConfig.Logging.LogDirectory, err = filepath.Abs(directory); err != nil {
			return err
		}
	}
	if flags.Changed("no-color") {
		if projectConfig.Logging.NoColor, err = flags.GetBool("no-color"); err != nil {
			return err
		}
	}

	return nil
}
