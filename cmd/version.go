package cmd

import (
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/crytic/abibin/compilation/platforms"
	"github.com/crytic/abibin/version"
	"github.com/spf13/cobra"
)

// versionedCompiler is implemented by compiler backends which can report their version.
type versionedCompiler interface {
	Version() (*semver.Version, error)
}

// versionCmd represents the version command that displays build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Long: `Print detailed version and build information for abibin.

This includes the semantic version, git commit hash, build timestamp,
and Go version used to compile the binary, followed by the versions of
the compiler backends found on PATH.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetInfo()
		fmt.Print(info.String())

		// Report which compiler backends are available
		for _, platform := range platforms.GetSupportedPlatforms() {
			compiler, err := platforms.NewCompiler(platform, "")
			if err != nil {
				continue
			}
			status := "not found"
			if versioned, ok := compiler.(versionedCompiler); ok {
				if compilerVersion, err := versioned.Version(); err == nil {
					status = compilerVersion.String()
				}
			}
			fmt.Printf("  %-11s %s\n", platform+":", status)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
