package errors

import "fmt"

// renderFormat is the canonical diagnostic layout shared by logs and tests.
const renderFormat = "Error occurred in script name [%s] at line number [%d] with error message [%s]"

// pipelineError is the concrete implementation of PipelineError.
// It is private to enforce construction through package functions.
type pipelineError struct {
	message  string
	file     string
	line     int
	function string
	context  map[string]interface{}
	cause    error
}

// newPipelineError builds a pipelineError from a cause and an active failure.
// Callers must have verified that failure is active.
func newPipelineError(cause interface{}, failure *Failure) *pipelineError {
	e := &pipelineError{
		file:     failure.origin.File,
		line:     failure.origin.Line,
		function: failure.origin.Function,
	}

	switch c := cause.(type) {
	case error:
		e.message = c.Error()
		e.cause = c
	case string:
		e.message = c
	default:
		e.message = fmt.Sprint(c)
	}

	return e
}

// Error returns the rendered diagnostic.
func (e *pipelineError) Error() string {
	return e.Render()
}

// Render returns the canonical diagnostic string.
func (e *pipelineError) Render() string {
	return fmt.Sprintf(renderFormat, e.file, e.line, e.message)
}

// Message returns the message of the original cause.
func (e *pipelineError) Message() string {
	return e.message
}

// File returns the origin source file.
func (e *pipelineError) File() string {
	return e.file
}

// Line returns the origin line number.
func (e *pipelineError) Line() int {
	return e.line
}

// Function returns the origin function name.
func (e *pipelineError) Function() string {
	return e.function
}

// Context returns a defensive copy of the context map.
// Returns nil if no context has been attached (maintains immutability).
func (e *pipelineError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped cause for standard library compatibility.
func (e *pipelineError) Unwrap() error {
	return e.cause
}

// with returns a copy of e carrying ctx as its context.
func (e *pipelineError) with(ctx map[string]interface{}) *pipelineError {
	c := *e
	c.context = ctx
	return &c
}
