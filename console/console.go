// Package console is the terminal collaborator behind interactive menus:
// screen clearing, numeric choice reading with retry, and pause-for-enter
// prompts, all over injectable streams so tests never need a real TTY.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/joshyorko/menukit/common"
	"github.com/joshyorko/menukit/pretty"
)

const DefaultPauseMessage = "Press enter to continue..."

// Terminal is a line-oriented console over arbitrary streams.
type Terminal struct {
	source *bufio.Reader
	out    io.Writer
	errout io.Writer
	tty    bool
}

// New builds a Terminal over the given streams. Screen clearing is only
// active when out is a real terminal.
func New(in io.Reader, out, errout io.Writer) *Terminal {
	return &Terminal{
		source: bufio.NewReader(in),
		out:    out,
		errout: errout,
		tty:    isTerminal(out),
	}
}

var (
	shared     *Terminal
	sharedOnce sync.Once
)

// Default returns the shared Terminal over the process standard streams.
func Default() *Terminal {
	sharedOnce.Do(func() {
		shared = New(os.Stdin, os.Stdout, os.Stderr)
	})
	return shared
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func (it *Terminal) Printf(format string, details ...interface{}) {
	fmt.Fprintf(it.out, format, details...)
}

func (it *Terminal) Errorf(format string, details ...interface{}) {
	message := fmt.Sprintf(format, details...)
	fmt.Fprintf(it.errout, "%s%s%s", pretty.Red, message, pretty.Reset)
}

// ClearScreen homes the cursor and erases the visible buffer, using the
// escape variables pretty.Setup detected. Outside a real terminal it does
// nothing, keeping piped output readable.
func (it *Terminal) ClearScreen() {
	if !it.tty {
		return
	}
	fmt.Fprint(it.out, pretty.Home+pretty.Clear)
}

// ReadInteger prompts and reads lines until one parses as an integer.
// It never surfaces a parse failure to the caller. End of input reads as
// the 0 sentinel, so a closed stdin unwinds menus instead of spinning.
func (it *Terminal) ReadInteger(prompt string) int {
	for {
		it.Printf("%s", prompt)
		line, err := it.source.ReadString('\n')
		reply := strings.TrimSpace(line)
		if err != nil && reply == "" {
			common.Debug("Console input closed (%v), treating as 0.", err)
			return 0
		}
		value, failure := strconv.Atoi(reply)
		if failure != nil {
			it.Errorf("Invalid choice! Please enter a number.\n")
			common.Trace("Rejected console input %q.", reply)
			continue
		}
		return value
	}
}

// ReadLine prompts and reads one line of input, surrounding space trimmed.
func (it *Terminal) ReadLine(prompt string) (string, error) {
	it.Printf("%s", prompt)
	line, err := it.source.ReadString('\n')
	reply := strings.TrimSpace(line)
	if err != nil && reply == "" {
		return "", err
	}
	return reply, nil
}

// Pause blocks until the user presses enter. Buffered unread input is
// discarded first so a stray typed-ahead line cannot satisfy the wait.
func (it *Terminal) Pause(message string) {
	if message == "" {
		message = DefaultPauseMessage
	}
	it.Printf("\n%s", message)
	for it.source.Buffered() > 0 {
		it.source.Discard(it.source.Buffered())
	}
	it.source.ReadString('\n')
}
