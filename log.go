package docquiz

import "log"

// verboseMode gates VerboseLog for the whole package.
var verboseMode bool

// SetVerbose turns verbose diagnostics on or off.
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// VerboseLog writes to the standard logger only while verbose mode is on.
func VerboseLog(format string, v ...interface{}) {
	if !verboseMode {
		return
	}
	log.Printf(format, v...)
}
