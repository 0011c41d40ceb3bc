package menu

import (
	"fmt"

	"github.com/joshyorko/menukit/common"
	"github.com/joshyorko/menukit/console"
)

// Action is a leaf node that invokes its bound callback once per
// selection, synchronously on the calling goroutine.
type Action struct {
	title    string
	callback Callback
	terminal Console
}

func NewAction(title string, callback Callback) *Action {
	return &Action{title: title, callback: callback}
}

func (it *Action) Title() string {
	return it.title
}

// Execute runs the bound callback. Failures, both returned errors and
// recovered panics, are reported on the console error channel and stop
// here. Execute always reports completion, never a navigation signal.
func (it *Action) Execute() bool {
	if it.callback == nil {
		common.Trace("Action %q has no callback, skipping.", it.title)
		return true
	}
	common.Debug("Running action %q.", it.title)
	if err := it.invoke(); err != nil {
		it.console().Errorf("%v\n", err)
	}
	return true
}

func (it *Action) invoke() (failure error) {
	defer func() {
		if caught := recover(); caught != nil {
			failure = fmt.Errorf("action %q panicked: %v", it.title, caught)
		}
	}()
	return it.callback()
}

func (it *Action) console() Console {
	if it.terminal != nil {
		return it.terminal
	}
	return console.Default()
}
