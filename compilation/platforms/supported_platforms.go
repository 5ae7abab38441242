package platforms

import (
	"fmt"
	"sort"
	"strings"
)

// compilerGenerators is a mapping of platform identifier to constructors for the Compiler of that platform. Each
// platform in this mapping is considered a supported compilation platform. Items are populated in the init method.
var compilerGenerators map[string]func(path string) Compiler

// init populates compilerGenerators with the supported platforms.
func init() {
	generators := []func(path string) Compiler{
		func(path string) Compiler { return NewSolcCompiler(path) },
		func(path string) Compiler { return NewSolcJSCompiler(path) },
	}

	compilerGenerators = make(map[string]func(path string) Compiler)
	for _, generator := range generators {
		// Each platform should have a unique identifier
		platform := generator("").Platform()
		if _, exists := compilerGenerators[platform]; exists {
			panic(fmt.Errorf("the compilation platform '%s' is registered with more than one provider", platform))
		}
		compilerGenerators[platform] = generator
	}
}

// GetSupportedPlatforms obtains the sorted list of supported platform identifiers.
func GetSupportedPlatforms() []string {
	platforms := make([]string, 0, len(compilerGenerators))
	for platform := range compilerGenerators {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	return platforms
}

// IsSupportedPlatform returns a boolean status indicating if a platform identifier is supported.
func IsSupportedPlatform(platform string) bool {
	_, ok := compilerGenerators[platform]
	return ok
}

// NewCompiler creates the Compiler for the given platform, using the provided executable path (or the platform
// default if empty).
func NewCompiler(platform string, path string) (Compiler, error) {
	generator, ok := compilerGenerators[platform]
	if !ok {
		return nil, fmt.Errorf("compilation platform '%s' is unsupported (options: %s)", platform, strings.Join(GetSupportedPlatforms(), ", "))
	}
	return generator(path), nil
}
