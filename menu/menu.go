package menu

import (
	"errors"
	"fmt"

	"github.com/joshyorko/menukit/common"
	"github.com/joshyorko/menukit/console"
)

const (
	choicePrompt = "\nChoice >> "
	exitLabel    = "0. Exit"
	backLabel    = "0. Go back."

	errorPauseMessage = "Please read the error message, then press enter to continue..."
)

// ErrCycle means an attach would make a menu its own descendant, which
// would recurse forever at execute time.
var ErrCycle = errors.New("menu cannot become its own descendant")

// Option configures a Menu at construction time.
type Option func(*Menu)

// Root marks the menu as the tree root; its zero choice reads "Exit"
// instead of "Go back."
func Root() Option {
	return func(it *Menu) {
		it.root = true
	}
}

// WithConsole injects the terminal collaborator. Submenus attached later
// inherit it unless they carry their own.
func WithConsole(terminal Console) Option {
	return func(it *Menu) {
		it.terminal = terminal
	}
}

// WithPause controls the pause-for-enter after dispatched actions and
// rejected choices. Presentation only; navigation is unaffected.
func WithPause(pause bool) Option {
	return func(it *Menu) {
		it.pause = pause
	}
}

// Menu is the composite node: an ordered list of children plus the
// interactive loop over them. Children are appended during setup and the
// tree is treated as read-only while a loop runs.
type Menu struct {
	title    string
	root     bool
	pause    bool
	items    []Node
	terminal Console
}

func New(title string, options ...Option) *Menu {
	it := &Menu{title: title, pause: true}
	for _, option := range options {
		option(it)
	}
	return it
}

func (it *Menu) Title() string {
	return it.title
}

// Items returns the children in display order. Choice 1 maps to the first
// entry; choice 0 never maps to a child.
func (it *Menu) Items() []Node {
	return it.items
}

// AddItem appends any node as the last child.
func (it *Menu) AddItem(item Node) {
	it.items = append(it.items, item)
}

// AddAction constructs an Action leaf and appends it.
func (it *Menu) AddAction(title string, callback Callback) {
	action := NewAction(title, callback)
	action.terminal = it.terminal
	it.AddItem(action)
}

// AddSubMenu appends a nested menu. It refuses, with ErrCycle, to attach a
// subtree that already contains the receiver, since executing such a tree
// would never terminate.
func (it *Menu) AddSubMenu(sub *Menu) error {
	if sub == nil {
		return errors.New("cannot attach a nil submenu")
	}
	if sub.contains(it) {
		return fmt.Errorf("cannot attach %q under %q: %w", sub.title, it.title, ErrCycle)
	}
	sub.adopt(it.terminal)
	it.AddItem(sub)
	return nil
}

// adopt pushes a console through the whole subtree, so menus and actions
// wired up before the attach still reach the injected console instead of
// falling back to the process terminal. An explicitly injected console is
// never overridden.
func (it *Menu) adopt(terminal Console) {
	if it.terminal == nil {
		it.terminal = terminal
	}
	if it.terminal == nil {
		return
	}
	for _, item := range it.items {
		switch child := item.(type) {
		case *Menu:
			child.adopt(it.terminal)
		case *Action:
			if child.terminal == nil {
				child.terminal = it.terminal
			}
		}
	}
}

func (it *Menu) contains(target *Menu) bool {
	if it == target {
		return true
	}
	for _, item := range it.items {
		if child, ok := item.(*Menu); ok && child.contains(target) {
			return true
		}
	}
	return false
}

// Execute drives the interactive loop: clear, render, read a choice, and
// dispatch, until the user picks 0. The false return tells the caller one
// level up that the user navigated out; at the root it means the program
// is done. A dispatched child's own return value never terminates this
// loop.
func (it *Menu) Execute() bool {
	terminal := it.console()
	for {
		terminal.ClearScreen()
		it.render(terminal)
		choice := terminal.ReadInteger(choicePrompt)
		if choice == 0 {
			common.Debug("Leaving menu %q.", it.title)
			return false
		}
		if choice < 1 || choice > len(it.items) {
			terminal.Errorf("Invalid choice!\n")
			it.rest(terminal, "")
			continue
		}
		it.dispatch(terminal, it.items[choice-1])
	}
}

func (it *Menu) render(terminal Console) {
	if it.title != "" {
		terminal.Printf("%s\n\n", it.title)
	}
	for at, item := range it.items {
		terminal.Printf("%d. %s\n", at+1, item.Title())
	}
	if it.root {
		terminal.Printf("%s\n", exitLabel)
	} else {
		terminal.Printf("%s\n", backLabel)
	}
}

// dispatch runs one child. Action leaves contain their own failures; the
// recover here only shields the loop from foreign Node implementations
// that let a panic escape.
func (it *Menu) dispatch(terminal Console, item Node) {
	defer func() {
		if caught := recover(); caught != nil {
			terminal.Errorf("%v\n", caught)
			it.rest(terminal, errorPauseMessage)
		}
	}()
	common.Debug("Dispatching menu item %q.", item.Title())
	item.Execute()
	if _, ok := item.(*Menu); !ok {
		it.rest(terminal, "")
	}
}

func (it *Menu) rest(terminal Console, message string) {
	if it.pause {
		terminal.Pause(message)
	}
}

func (it *Menu) console() Console {
	if it.terminal != nil {
		return it.terminal
	}
	return console.Default()
}
