package common

var (
	// Version is set at build time via -ldflags "-X github.com/joshyorko/menukit/common.Version=..."
	Version = `v0.4.2`

	silentFlag bool
	debugFlag  bool
	traceFlag  bool

	// LogLinenumbers prefixes plain log output with running line numbers.
	LogLinenumbers bool
)

// DefineVerbosity sets the process-wide verbosity levels. Trace implies
// debug, and debug wins over silent.
func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent && !debug && !trace
	debugFlag = debug
	traceFlag = trace
	Trace("Verbosity: silent=%v, debug=%v, trace=%v.", silentFlag, debugFlag, traceFlag)
}

func Silent() bool {
	return silentFlag
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}
