package platforms

import (
	"fmt"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver"
	"github.com/crytic/abibin/logging"
	"github.com/crytic/abibin/logging/colors"
	"github.com/crytic/abibin/utils"
	"github.com/pkg/errors"
)

const (
	// SolcPlatform identifies the native solc executable backend.
	SolcPlatform = "solc"
	// SolcJSPlatform identifies the solc-js (npm "solc" package) command-line backend.
	SolcJSPlatform = "solcjs"
)

// minimumStandardJSONVersion is the first solc release which supports --standard-json.
var minimumStandardJSONVersion = semver.MustParse("0.4.11")

// solcVersionRegex extracts the semantic version from `solc --version` output.
var solcVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+`)

// SolcCompiler invokes a solc executable (native or solc-js) in standard JSON mode.
type SolcCompiler struct {
	// Path is the path to, or name of, the compiler executable.
	Path string

	// platform is the backend identifier, which is also the executable looked up on PATH by default.
	platform string

	// version caches the result of Version once it succeeded.
	version *semver.Version
}

// NewSolcCompiler returns a SolcCompiler for a native solc executable. If path is empty, "solc" is looked up on PATH.
func NewSolcCompiler(path string) *SolcCompiler {
	return newSolcCompiler(SolcPlatform, path)
}

// NewSolcJSCompiler returns a SolcCompiler for the solc-js command-line wrapper. If path is empty, "solcjs" is looked
// up on PATH.
func NewSolcJSCompiler(path string) *SolcCompiler {
	return newSolcCompiler(SolcJSPlatform, path)
}

func newSolcCompiler(platform string, path string) *SolcCompiler {
	if path == "" {
		path = platform
	}
	return &SolcCompiler{Path: path, platform: platform}
}

// Platform returns the identifier of the compiler backend.
func (s *SolcCompiler) Platform() string {
	return s.platform
}

// Version runs `solc --version` and returns the parsed compiler version.
func (s *SolcCompiler) Version() (*semver.Version, error) {
	if s.version != nil {
		return s.version, nil
	}

	result, err := utils.RunCommand(exec.Command(s.Path, "--version"), nil)
	if err != nil {
		return nil, err
	}

	// Parse the compiler version out of the output
	versionStr := solcVersionRegex.FindString(string(result.Combined))
	if versionStr == "" {
		return nil, errors.Errorf("could not parse solc version using '%s --version'", s.Path)
	}
	version, err := semver.NewVersion(versionStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.version = version
	return version, nil
}

// CompileStandardJSON runs `solc --standard-json`, providing the request on stdin and returning stdout.
func (s *SolcCompiler) CompileStandardJSON(input []byte) ([]byte, error) {
	// Standard JSON mode is not available on older compilers
	version, err := s.Version()
	if err != nil {
		return nil, err
	}
	if version.LessThan(minimumStandardJSONVersion) {
		return nil, fmt.Errorf("solc %s does not support standard JSON compilation (requires %s or later)", version, minimumStandardJSONVersion)
	}

	logger := logging.GlobalLogger.NewSubLogger("module", logging.COMPILATION_SERVICE)
	logger.Debug("Running ", colors.Bold, s.Path, " --standard-json", colors.Reset, " (", s.platform, " ", version.String(), ")")

	result, err := utils.RunCommand(exec.Command(s.Path, "--standard-json"), input)
	if err != nil {
		return nil, err
	}
	return result.Stdout, nil
}
