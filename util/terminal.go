package util

import (
	"golang.org/x/term"
)

// TerminalWidth returns the column count of the terminal attached to fd,
// or 0 when fd is not a terminal (pipes, files, test writers).
func TerminalWidth(fd uintptr) int {
	if !term.IsTerminal(int(fd)) {
		return 0
	}

	width, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0
	}

	return width
}
