package errors

import (
	"encoding/json"
)

// ErrorResponse is the structured view of a PipelineError.
// Render remains the canonical one-line diagnostic; ErrorResponse carries the
// same provenance in a machine-readable shape for reports and run logs.
type ErrorResponse struct {
	// Message is the message of the original cause.
	Message string `json:"message"`

	// File is the origin source file. Omitted for non-pipeline errors.
	File string `json:"file,omitempty"`

	// Line is the origin line number. Omitted for non-pipeline errors.
	Line int `json:"line,omitempty"`

	// Function is the origin function name, if resolved.
	Function string `json:"function,omitempty"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For PipelineError instances, extracts message, provenance and context from
// the outermost PipelineError in the chain. For other errors only the message
// is populated.
//
// The wrapped error chain is intentionally excluded; the message already
// carries the cause's text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var pipelineErr PipelineError
	if !As(err, &pipelineErr) {
		return &ErrorResponse{Message: err.Error()}
	}

	return &ErrorResponse{
		Message:  pipelineErr.Message(),
		File:     pipelineErr.File(),
		Line:     pipelineErr.Line(),
		Function: pipelineErr.Function(),
		Context:  pipelineErr.Context(),
	}
}

// MarshalJSON implements json.Marshaler for pipelineError.
// This allows PipelineError instances to be marshaled directly using json.Marshal
// without needing to call ToJSON explicitly.
//
// Example:
//
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"message":"runtime error: integer divide by zero","file":"/src/train.go","line":42,...}
func (e *pipelineError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Message:  e.message,
		File:     e.file,
		Line:     e.line,
		Function: e.function,
		Context:  e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		// Context values are caller supplied and may not be serializable.
		return nil, err
	}
	return data, nil
}
