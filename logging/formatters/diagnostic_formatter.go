package formatters

import (
	"fmt"
	"regexp"

	"github.com/crytic/abibin/logging/colors"
)

var (
	errorPattern    = regexp.MustCompile(errorRegex)
	warningPattern  = regexp.MustCompile(warningRegex)
	infoPattern     = regexp.MustCompile(infoRegex)
	locationPattern = regexp.MustCompile(locationRegex)
	caretPattern    = regexp.MustCompile(caretRegex)
)

// DiagnosticFormatter will colorize a formatted compiler diagnostic for console output. The text itself is left intact
// so line and column information is relayed verbatim.
func DiagnosticFormatter(msg string) string {
	// Colorize the diagnostic kind
	msg = errorPattern.ReplaceAllString(msg, colors.Colorize(colors.Colorize(`$1`, errorColor), colors.BOLD))
	msg = warningPattern.ReplaceAllString(msg, colors.Colorize(colors.Colorize(`$1`, warningColor), colors.BOLD))
	msg = infoPattern.ReplaceAllString(msg, colors.Colorize(colors.Colorize(`$1`, infoColor), colors.BOLD))

	// Colorize the source location and carets
	msg = locationPattern.ReplaceAllString(msg, colors.Colorize(`$1`, locationColor))
	msg = caretPattern.ReplaceAllString(msg, colors.Colorize(`$1`, caretColor))

	return msg
}

// DiagnosticColorFunc is a colors.ColorFunc which applies DiagnosticFormatter. Passing it to a Logger before a
// diagnostic colorizes the console output only, leaving structured output untouched.
func DiagnosticColorFunc(s any) string {
	return DiagnosticFormatter(fmt.Sprintf("%v", s))
}
