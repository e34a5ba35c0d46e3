package errors

import stderrors "errors"

// ErrNoActiveFailure is returned when Wrap is called without an active failure.
// Every PipelineError must carry valid provenance, so there is no fallback.
var ErrNoActiveFailure = stderrors.New("no active failure to wrap")

// Wrap wraps cause with the provenance recorded by failure.
// The origin file and line always come from failure, never from the frame
// calling Wrap.
//
// cause may be any value convertible to text; if it is an error it remains
// reachable through Unwrap. A nil cause falls back to failure.Cause().
//
// Returns ErrNoActiveFailure if failure is nil or not active.
//
// Example:
//
//	defer func() {
//	    r := recover()
//	    if perr, werr := errors.Wrap(r, errors.Recover(r)); werr == nil {
//	        err = perr
//	    }
//	}()
func Wrap(cause interface{}, failure *Failure) (PipelineError, error) {
	if !failure.Active() {
		return nil, ErrNoActiveFailure
	}

	if cause == nil {
		cause = failure.Cause()
	}

	return newPipelineError(cause, failure), nil
}

// MustWrap is like Wrap but panics with ErrNoActiveFailure on invalid use.
//
// Example:
//
//	if err := ingest(ctx); err != nil {
//	    return errors.MustWrap(err, errors.Here(err))
//	}
func MustWrap(cause interface{}, failure *Failure) PipelineError {
	err, werr := Wrap(cause, failure)
	if werr != nil {
		panic(werr)
	}
	return err
}

// Trace wraps err with the caller's frame as its origin.
// Returns nil if err is nil.
//
// Example:
//
//	score, err := scoring.F1(yTrue, yPred)
//	if err != nil {
//	    return nil, errors.Trace(err)
//	}
func Trace(err error) PipelineError {
	if err == nil {
		return nil
	}
	return MustWrap(err, Caller(err, 1))
}

// WrapWithContext wraps cause and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns ErrNoActiveFailure if failure is nil or not active.
func WrapWithContext(cause interface{}, failure *Failure, ctx map[string]interface{}) (PipelineError, error) {
	err, werr := Wrap(cause, failure)
	if werr != nil {
		return nil, werr
	}

	// Create defensive copy of context
	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return err.(*pipelineError).with(contextCopy), nil
}
