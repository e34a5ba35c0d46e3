package metrics

import (
	stderrors "errors"

	pipelineerrors "github.com/jmgilman/go/pipeline/errors"
)

// ErrInvalidArtifact indicates scores that do not satisfy the artifact schema.
var ErrInvalidArtifact = stderrors.New("invalid classification metrics artifact")

// wrapError re-raises err as a PipelineError originating at the caller of
// wrapError, tagging the step that failed.
// If err is nil, returns nil.
func wrapError(err error, step string) error {
	if err == nil {
		return nil
	}
	perr := pipelineerrors.MustWrap(err, pipelineerrors.Caller(err, 1))
	return pipelineerrors.WithContext(perr, "step", step)
}
