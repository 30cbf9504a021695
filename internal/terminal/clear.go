// Package terminal provides small terminal helpers: clearing prompt lines
// and reading the terminal size for chart rendering.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// Size returns the width and height of stdout, or the fallbacks when stdout
// is not a terminal.
func Size(fallbackWidth, fallbackHeight int) (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return fallbackWidth, fallbackHeight
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecret reads a line from stdin without echo.
func ReadSecret() (string, error) {
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LinesFor returns how many terminal lines textLength characters occupy at width.
func LinesFor(textLength, width int) int {
	if width <= 0 {
		width = 80
	}
	lines := int(math.Ceil(float64(textLength) / float64(width)))
	if lines < 1 {
		lines = 1
	}
	return lines
}

// ClearPreviousLines clears the prompt that was just answered. textLength is
// the number of characters printed (prompt plus input); one extra line is
// cleared for the newline left by Enter.
func ClearPreviousLines(textLength int) {
	width, _ := Size(80, 24)
	linesToClear := LinesFor(textLength, width) + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}
