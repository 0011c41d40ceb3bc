package pretty

import (
	"fmt"

	"github.com/joshyorko/menukit/common"
)

func csi(body string) string {
	return "\x1b[" + body
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

// Ok prints the green end-of-command marker. Returned error is always nil,
// so cobra RunE bodies can end with "return pretty.Ok()".
func Ok() error {
	common.Stdout("%sOK.%s\n", Green, Reset)
	return nil
}

// Exit panics with a common.ExitCode carrying the given code and message.
// ExitProtection in main converts it into a clean process exit.
func Exit(code int, format string, rest ...interface{}) {
	message := format
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	}
	panic(common.ExitCode{Code: code, Message: fmt.Sprintf("%s%s%s", Red, message, Reset)})
}

// Guard is an assert-like helper: when the condition does not hold, exit
// with the given code and message.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

// Note prints a red-bang annotated remark.
func Note(form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	common.Stdout("%s! %s%s%s\n", Red, White, message, Reset)
}
