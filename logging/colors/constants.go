package colors

// Color describes an ANSI SGR (select graphic rendition) parameter
type Color int

// Foreground colors follow the SGR numbering (30 + n), matching zerolog's console writer
const (
	RED Color = iota + 31
	GREEN
	YELLOW
	BLUE
	MAGENTA
	CYAN
)

// BOLD is the SGR parameter for bold text
const BOLD Color = 1

// LEFT_ARROW is the glyph used as the info level marker on the console
const LEFT_ARROW = "⇾"
