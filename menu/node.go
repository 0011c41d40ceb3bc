// Package menu implements a tree of selectable console menus: composite
// menus hold ordered children, action leaves invoke bound callbacks, and
// a blocking read-render-dispatch loop drives the navigation.
package menu

// Node is one selectable entry in a menu tree. Both variants satisfy it:
// Action leaves run their callback, Menu composites run their own loop.
// Execute returning false is the navigational signal to unwind exactly one
// menu level; it is never produced by leaves.
type Node interface {
	Title() string
	Execute() bool
}

// Callback is the work bound to an action entry. A nil Callback is a safe
// no-op. A returned error is reported at the action boundary and swallowed
// there; it never aborts the owning menu loop.
type Callback func() error

// Console is the terminal collaborator the loop drives. console.Terminal
// is the production implementation; tests substitute a scripted one.
type Console interface {
	ClearScreen()
	Printf(format string, details ...interface{})
	Errorf(format string, details ...interface{})
	ReadInteger(prompt string) int
	Pause(message string)
}
