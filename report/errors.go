package report

import (
	"errors"
	"fmt"
)

// Enumeration of compile error kinds.
const (
	UnexpectedCharacter = iota // A character that cannot begin any token.
	NumericOverflow            // A literal that does not fit in 32 bits.
	SyntaxError                // A token sequence outside the grammar.

	// InternalInvariantViolation is a bug in the compiler: it can never be
	// triggered by well-formed input.
	InternalInvariantViolation
)

// kindNames maps error kinds to their display names.
var kindNames = map[int]string{
	UnexpectedCharacter:        "unexpected character",
	NumericOverflow:            "numeric overflow",
	SyntaxError:                "syntax error",
	InternalInvariantViolation: "internal invariant violation",
}

// KindName returns the display name of an error kind.
func KindName(kind int) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}

	return "error"
}

// CompileError is an error produced by one of the compilation stages.
type CompileError struct {
	// The kind of the error.  This must be one of the enumerated error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil if no position
	// information is available.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	if ce.Span == nil {
		return fmt.Sprintf("%s: %s", KindName(ce.Kind), ce.Message)
	}

	return fmt.Sprintf("%s at %s: %s", KindName(ce.Kind), ce.Span, ce.Message)
}

// Raise creates a new compile error.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}

// IsKind returns whether err is a compile error of the given kind.
func IsKind(err error, kind int) bool {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}

	return false
}

// -----------------------------------------------------------------------------

// CatchErrors catches any compile errors thrown by a `panic` during a stage of
// compilation and stores them in the error pointed to by errp.  Any other
// panic value continues to propagate.
// NB: This function must ALWAYS be deferred.
func CatchErrors(errp *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			*errp = cerr
		} else {
			panic(x)
		}
	}
}
