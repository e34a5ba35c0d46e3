package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, scoring.ErrInconsistentLength) {
//	    // Handle mismatched label slices
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var pipelineErr PipelineError
//	if errors.As(err, &pipelineErr) {
//	    line := pipelineErr.Line()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Origin returns the provenance of the innermost PipelineError in err's chain.
// Each catch point records its own provenance; Origin walks past them to the
// deepest one, which is where the failure first crossed a layer.
// Returns ok=false if err is nil or its chain contains no PipelineError.
//
// Example:
//
//	if file, line, ok := errors.Origin(err); ok {
//	    slog.Error("stage failed", "file", file, "line", line)
//	}
func Origin(err error) (file string, line int, ok bool) {
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if pe, isPipeline := e.(PipelineError); isPipeline {
			file, line, ok = pe.File(), pe.Line(), true
		}
	}
	return file, line, ok
}

// Render returns the canonical diagnostic for err.
// The outermost PipelineError in the chain is rendered; other errors fall
// back to err.Error(). Returns "" if err is nil.
func Render(err error) string {
	if err == nil {
		return ""
	}

	var pipelineErr PipelineError
	if stderrors.As(err, &pipelineErr) {
		return pipelineErr.Render()
	}
	return err.Error()
}
