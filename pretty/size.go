package pretty

import (
	"os"

	"golang.org/x/term"

	"github.com/joshyorko/menukit/common"
)

// TerminalWidth returns the terminal width in columns.
// Uses golang.org/x/term.GetSize() with fallback to 80 columns if detection fails.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	return width
}

// TerminalHeight returns the terminal height in rows.
// Uses golang.org/x/term.GetSize() with fallback to 24 rows if detection fails.
func TerminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 0 {
		common.Trace("Failed to get terminal height, using fallback: %v", err)
		return 24
	}
	return height
}
