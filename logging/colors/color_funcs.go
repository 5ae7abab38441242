package colors

import "fmt"

// ColorFunc is an alias type for a coloring function that accepts anything and returns a colorized string
type ColorFunc = func(s any) string

// Reset is a ColorFunc that simply returns the input as a string. It is used for resetting the color context during
// complex logging operations.
func Reset(s any) string {
	return fmt.Sprintf("%v", s)
}

// Bold is a ColorFunc that returns a bolded string of the provided input
func Bold(s any) string {
	return Colorize(s, BOLD)
}

// boldColor returns a ColorFunc rendering its input bold in the given color.
func boldColor(c Color) ColorFunc {
	return func(s any) string {
		return Colorize(Colorize(s, c), BOLD)
	}
}

// Bold colored ColorFuncs, used for log level markers
var (
	RedBold    = boldColor(RED)
	GreenBold  = boldColor(GREEN)
	YellowBold = boldColor(YELLOW)
	BlueBold   = boldColor(BLUE)
	CyanBold   = boldColor(CYAN)
)
