package errors

// WithContext adds a single context field to an error.
// Returns a new PipelineError with the context field added.
// Existing context fields are preserved; the original error is unchanged.
//
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New("transformation failed")
//	err = errors.WithContext(err, "stage", "data_transformation")
//	err = errors.WithContext(err, "rows", 1204)
func WithContext(err PipelineError, key string, value interface{}) PipelineError {
	if err == nil {
		return nil
	}

	// Create new context with existing fields plus new field
	newContext := make(map[string]interface{})
	if existingCtx := err.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	newContext[key] = value

	return rebuild(err, newContext)
}

// WithContextMap adds multiple context fields to an error.
// Returns a new PipelineError with the context fields merged.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "stage": "model_trainer",
//	    "model": "random_forest",
//	})
func WithContextMap(err PipelineError, ctx map[string]interface{}) PipelineError {
	if err == nil {
		return nil
	}

	// Merge existing context with new context
	newContext := make(map[string]interface{})
	if existingCtx := err.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	// New fields override existing
	for k, v := range ctx {
		newContext[k] = v
	}

	return rebuild(err, newContext)
}

// rebuild copies err with a new context, keeping its provenance.
// Foreign PipelineError implementations are copied field by field.
func rebuild(err PipelineError, ctx map[string]interface{}) PipelineError {
	if pe, ok := err.(*pipelineError); ok {
		return pe.with(ctx)
	}
	return &pipelineError{
		message:  err.Message(),
		file:     err.File(),
		line:     err.Line(),
		function: err.Function(),
		context:  ctx,
		cause:    err.Unwrap(),
	}
}
