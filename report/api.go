package report

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportICE reports an internal compiler error.  These are errors that
// specifically result for a bug or unexpected condition occurring with the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	ensureReporter()

	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a malformed config
// file, an unwritable output path, etc.
func ReportFatal(message string, args ...interface{}) {
	ensureReporter()

	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error: ie. an erroneous input
// expression.  The src is the full source text of the expression.
func ReportCompileError(src string, cerr *CompileError) {
	ensureReporter()

	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayCompileError(src, cerr)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(tag string, err error) {
	ensureReporter()

	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayStdError(tag, err)
	}
}

// ReportError dispatches any error produced while compiling src to the
// appropriate report function.  Internal invariant violations are reported as
// internal compiler errors and exit the program.
func ReportError(src string, err error) {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		if cerr.Kind == InternalInvariantViolation {
			ReportICE("%s", cerr.Message)
		}

		ReportCompileError(src, cerr)
	} else {
		ReportStdError("Error", err)
	}
}

// ReportInfo reports an informational message.
func ReportInfo(tag, msg string) {
	ensureReporter()

	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfoMessage(tag, msg)
	}
}

// -----------------------------------------------------------------------------

// EnablePhaseDisplay turns on the phase spinner.  The spinner draws on
// standard out, so it should only be enabled when compilation output is not
// being written there.
func EnablePhaseDisplay() {
	ensureReporter()
	rep.showPhases = true
}

// ReportBeginPhase reports the beginning of a compilation phase.
func ReportBeginPhase(phase string) {
	ensureReporter()

	if rep.showPhases && rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayBeginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current compilation phase.
func ReportEndPhase() {
	ensureReporter()

	if rep.showPhases && rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(!rep.isErr)
	}
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished(outputPath string) {
	ensureReporter()

	if rep.showPhases && rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompilationFinished(!rep.isErr, outputPath, time.Since(rep.startTime))
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	return rep != nil && rep.isErr
}
