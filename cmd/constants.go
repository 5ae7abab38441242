package cmd

// DefaultProjectConfigFilename describes the default config filename for a given project folder.
const DefaultProjectConfigFilename = "abibin.json"

// TargetFlagDescription describes the description of the target flag
const TargetFlagDescription = "path to the Solidity source file to compile"
