//go:build !windows

package colors

// consoleSupportsColor reports whether the console understands ANSI escape codes, which unix terminals do.
func consoleSupportsColor() bool {
	return true
}
