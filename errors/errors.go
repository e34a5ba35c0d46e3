package errors

// PipelineError is the single failure kind raised across pipeline stages.
//
// PipelineError records where a failure originated (source file and line)
// and why (the original cause), and renders both as one diagnostic line.
// It is compatible with standard library error handling (errors.Is,
// errors.As, errors.Unwrap).
type PipelineError interface {
	error

	// Message returns the textual content of the original cause.
	Message() string

	// File returns the path of the source file where the failure originated.
	File() string

	// Line returns the line number within File where the failure originated.
	Line() int

	// Function returns the fully-qualified name of the function where the
	// failure originated. It may be empty if the runtime could not resolve it.
	Function() string

	// Render returns the canonical diagnostic string.
	// Format: "Error occurred in script name [FILE] at line number [LINE] with error message [MESSAGE]".
	Render() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the original cause for errors.Is and errors.As compatibility.
	// Returns nil if the cause was not an error value.
	Unwrap() error
}
