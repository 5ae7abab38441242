package formatters

import "github.com/crytic/abibin/logging/colors"

// The list of constants below are used to search and replace various elements of a compiler diagnostic with a
// colorized, formatted version for console output
const (
	// errorRegex is the regex to find the "Error" kind prefix of a diagnostic, e.g. "ParserError:" or "TypeError:"
	errorRegex = `(?m)^(\w*Error:)`
	// warningRegex is the regex to find the "Warning:" prefix of a diagnostic
	warningRegex = `(?m)^(Warning:)`
	// infoRegex is the regex to find the "Info:" prefix of a diagnostic
	infoRegex = `(?m)^(Info:)`
	// locationRegex is the regex to find the "--> file:line:column:" source location line of a diagnostic
	locationRegex = `(?m)(-->\s*\S+:\d+:\d+:)`
	// caretRegex is the regex to find the caret markers pointing at the offending source
	caretRegex = `(\^+)`
)

// The list of constants below are used to map a specific color to a specific type of text for console output
const (
	// errorColor is the color to use for error prefixes
	errorColor = colors.RED
	// warningColor is the color to use for warning prefixes
	warningColor = colors.YELLOW
	// infoColor is the color to use for info prefixes
	infoColor = colors.BLUE
	// locationColor is the color to use for source locations
	locationColor = colors.CYAN
	// caretColor is the color to use for caret markers
	caretColor = colors.RED
)
