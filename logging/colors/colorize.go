package colors

import (
	"fmt"
	"os"
)

// enabled describes whether Colorize emits ANSI escape codes
var enabled bool

// init detects whether the console supports coloring. Coloring is also disabled when the NO_COLOR environment
// variable is set (https://no-color.org).
func init() {
	_, noColor := os.LookupEnv("NO_COLOR")
	enabled = !noColor && consoleSupportsColor()
}

// EnableColor turns on ANSI coloring for every subsequent Colorize call.
func EnableColor() {
	enabled = true
}

// DisableColor turns off ANSI coloring for every subsequent Colorize call.
func DisableColor() {
	enabled = false
}

// Colorize returns the string form of s wrapped in the ANSI escape code for c, or the plain string form if coloring
// is disabled.
func Colorize(s any, c Color) string {
	if !enabled {
		return fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}
