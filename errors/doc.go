// Package errors provides the failure context used across pipeline stages.
//
// Every failure that crosses a stage boundary is re-raised as a PipelineError,
// which records where the failure originated (source file and line) and why
// (the original cause). Operators debugging a multi-stage pipeline see one
// diagnostic format regardless of which stage failed. The package remains
// compatible with the standard library errors package (errors.Is, errors.As,
// errors.Unwrap).
//
// # Features
//
//   - One failure kind with provenance (file, line, function) and cause
//   - Explicit failure handles: no ambient "current exception" lookup
//   - Panic recovery that resolves the panicking statement, not the recover site
//   - Context metadata attachment for debugging
//   - JSON serialization for reports
//   - Zero dependencies (Layer 0 library)
//
// # Failure Handles
//
// A Failure pins a cause to its origin frame. It is captured where the failure
// is observed and passed explicitly to Wrap:
//
//	// Recovered panic: origin is the statement that panicked
//	defer func() {
//	    if f := errors.Recover(recover()); f != nil {
//	        err = errors.MustWrap(nil, f)
//	    }
//	}()
//
//	// Returned error: origin is the line calling Here
//	if err := ingest(ctx); err != nil {
//	    return errors.MustWrap(err, errors.Here(err))
//	}
//
//	// Shorthand for the above
//	return errors.Trace(err)
//
// Wrap refuses to build a PipelineError without an active failure and returns
// ErrNoActiveFailure instead, so every PipelineError carries valid provenance.
//
// # Rendering
//
// Error and Render produce one deterministic line:
//
//	Error occurred in script name [/src/train.go] at line number [42] with error message [runtime error: integer divide by zero]
//
// # Context Metadata
//
//	err := errors.Trace(cause)
//	err = errors.WithContext(err, "stage", "data_ingestion")
//
// Context is included in JSON serialization but not in Render.
//
// # Concurrency
//
// All functions are reentrant. A Failure belongs to the goroutine that
// captured it; pass it to Wrap on that goroutine.
package errors
