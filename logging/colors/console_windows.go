//go:build windows

package colors

import (
	"os"

	"golang.org/x/sys/windows"
)

// consoleSupportsColor reports whether the stdout console processes ANSI escape codes. Virtual terminal processing is
// switched on if the console supports it but has it disabled.
func consoleSupportsColor() bool {
	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
