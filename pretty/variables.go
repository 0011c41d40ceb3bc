package pretty

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/joshyorko/menukit/common"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Black       string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Magenta     string
	Cyan        string
	Reset       string
	Home        string
	Clear       string
	Bold        string
	Faint       string
	Italic      string
	Underline   string
)

// Setup detects terminal capabilities and populates the escape variables.
// Safe to call again after flags change (for example --colorless):
// Colorless is recomputed from the environment and every escape variable
// is reassigned on each call. Disabled is caller-owned and only read.
func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	Colorless = DetectColorMode() == ColorModeNone

	// Interactive requires all three streams to be a TTY, so prompts and
	// their answers stay on the same terminal.
	Interactive = stdin && stdout && stderr

	visual := stdout && !Colorless && !Disabled

	common.Trace("Interactive mode enabled: %v; colors enabled: %v.", Interactive, visual)

	White = ""
	Grey = ""
	Black = ""
	Red = ""
	Green = ""
	Yellow = ""
	Blue = ""
	Magenta = ""
	Cyan = ""
	Reset = ""
	Home = ""
	Clear = ""
	Bold = ""
	Faint = ""
	Italic = ""
	Underline = ""

	if visual {
		White = csi("97m")
		Grey = csi("90m")
		Black = csi("30m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Blue = csi("94m")
		Magenta = csi("95m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
		Italic = csi("3m")
		Underline = csi("4m")
	}

	// Cursor movement and erasing track TTY-ness alone: NO_COLOR turns
	// colors off, not screen clearing.
	if stdout {
		Home = csi("1;1H")
		Clear = csi("0J")
	}
}

// Color Conventions:
// - Green: Success messages
// - Yellow: Warnings
// - Red: Errors
// - Bold: Section headers

// Success outputs a success message in Green with a newline.
func Success(message string) {
	common.Stdout("%s%s%s\n", Green, message, Reset)
}

// Warning outputs a warning message in Yellow with a newline.
func Warning(message string) {
	common.Stdout("%s%s%s\n", Yellow, message, Reset)
}

// Error outputs an error message in Red with a newline.
func Error(message string) {
	common.Stdout("%s%s%s\n", Red, message, Reset)
}

// Header outputs a header text in Bold with a newline.
func Header(text string) {
	common.Stdout("%s%s%s\n", Bold, text, Reset)
}
