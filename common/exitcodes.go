package common

// ExitCode is the panic payload used for controlled process termination.
// It unwinds through ExitProtection in main, which shows the message and
// exits with the given code.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	Stdout("%s\n", it.Message)
}
