package errors

import (
	stderrors "errors"
	"fmt"
)

// New raises a new PipelineError originating at the caller's frame.
// The returned error does not wrap another error.
//
// Example:
//
//	if len(rows) == 0 {
//	    return errors.New("ingestion produced no rows")
//	}
func New(message string) PipelineError {
	return newAt(message, 2)
}

// Newf raises a new PipelineError with a formatted message.
//
// Example:
//
//	err := errors.Newf("schema has %d columns, expected %d", got, want)
func Newf(format string, args ...interface{}) PipelineError {
	return newAt(fmt.Sprintf(format, args...), 2)
}

// newAt builds a PipelineError whose origin is skip frames above newAt.
// It panics with ErrNoActiveFailure when no such frame exists.
func newAt(message string, skip int) PipelineError {
	return MustWrap(message, Caller(stderrors.New(message), skip))
}
