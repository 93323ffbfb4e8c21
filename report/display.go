package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// All diagnostics are written to standard error: standard out is reserved for
// compilation output.
var diagOut = os.Stderr

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Fprint(diagOut, ErrorStyleBG.Sprint("Internal Error"), " ", ErrorColorFG.Sprint(message), "\n")
	fmt.Fprint(diagOut, InfoColorFG.Sprint("This error was not supposed to happen: please open an issue with the expression that caused it."), "\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Fprint(diagOut, ErrorStyleBG.Sprint("Fatal Error"), " ", ErrorColorFG.Sprint(message), "\n\n")
}

// displayStdError displays a standard Go error under the given tag.
func displayStdError(tag string, err error) {
	fmt.Fprint(diagOut, ErrorStyleBG.Sprint(tag), " ", ErrorColorFG.Sprint(err.Error()), "\n")
}

// displayInfoMessage displays an informational message.
func displayInfoMessage(tag, msg string) {
	fmt.Fprint(diagOut, InfoStyleBG.Sprint(tag), " ", InfoColorFG.Sprint(msg), "\n")
}

// displayCompileError displays a compile error and, if the error has a span,
// the erroneous source text.
func displayCompileError(src string, cerr *CompileError) {
	label := KindName(cerr.Kind)

	if cerr.Span == nil {
		fmt.Fprintf(diagOut, "%s %s\n\n", ErrorStyleBG.Sprint(label), cerr.Message)
		return
	}

	fmt.Fprintf(diagOut, "%s %s: %s\n\n", ErrorStyleBG.Sprint(label), cerr.Span, cerr.Message)
	displaySourceText(src, cerr.Span)
}

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(src string, span *TextSpan) {
	srcLines := strings.Split(src, "\n")
	if span.StartLine >= len(srcLines) {
		return
	}

	endLine := span.EndLine
	if endLine >= len(srcLines) {
		endLine = len(srcLines) - 1
	}

	// Tabs are expanded so carets line up with what the terminal shows.
	var lines []string
	for ln := span.StartLine; ln <= endLine; ln++ {
		lines = append(lines, strings.ReplaceAll(srcLines[ln], "\t", "    "))
	}

	maxLineNumLen := len(strconv.Itoa(endLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Fprint(diagOut, InfoColorFG.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Fprintln(diagOut, line)

		fmt.Fprint(diagOut, strings.Repeat(" ", maxLineNumLen), " | ")

		// Underlining starts at the start column on the first line only and
		// stops at the end column on the last line only.
		carretStart := 0
		if i == 0 {
			carretStart = span.StartCol
		}

		carretEnd := len(line)
		if i == len(lines)-1 {
			carretEnd = span.EndCol
		}

		// A span at end of input still gets a single carret.
		if carretEnd <= carretStart {
			carretEnd = carretStart + 1
		}

		fmt.Fprint(diagOut, strings.Repeat(" ", carretStart))
		fmt.Fprintln(diagOut, ErrorColorFG.Sprint(strings.Repeat("^", carretEnd-carretStart)))
	}

	fmt.Fprintln(diagOut)
}

// -----------------------------------------------------------------------------

// phaseSpinner stores the current phase spinner.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Generating")

// displayBeginPhase displays the beginning of a compilation phase.
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a compilation phase.
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(success bool, outputPath string, elapsed time.Duration) {
	if success {
		fmt.Fprint(diagOut, SuccessColorFG.Sprint("All done! "))
		fmt.Fprintf(diagOut, "wrote %s (%.3fs)\n", outputPath, elapsed.Seconds())
	} else {
		fmt.Fprintln(diagOut, ErrorColorFG.Sprint("Oh no! "), "compilation failed")
	}
}
