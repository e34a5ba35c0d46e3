package metrics

import "github.com/jmgilman/go/pipeline/scoring"

// Compute scores yPred against yTrue and returns the resulting artifact.
//
// F1, precision, recall and accuracy are computed independently over the same
// inputs, fail-fast: the first scorer to fail aborts the call. Failures are
// returned as a PipelineError originating in Compute with a "step" context
// field naming the scorer; the scoring sentinel (for example
// scoring.ErrInconsistentLength) remains reachable through errors.Is.
//
// No partial artifact is ever returned.
func Compute[T comparable](yTrue, yPred []T, opts ...scoring.Option) (*ClassificationMetricsArtifact, error) {
	f1, err := scoring.F1(yTrue, yPred, opts...)
	if err != nil {
		return nil, wrapError(err, fieldF1)
	}

	recall, err := scoring.Recall(yTrue, yPred, opts...)
	if err != nil {
		return nil, wrapError(err, fieldRecall)
	}

	precision, err := scoring.Precision(yTrue, yPred, opts...)
	if err != nil {
		return nil, wrapError(err, fieldPrecision)
	}

	accuracy, err := scoring.Accuracy(yTrue, yPred, opts...)
	if err != nil {
		return nil, wrapError(err, fieldAccuracy)
	}

	artifact, err := build(f1, precision, recall, accuracy)
	if err != nil {
		return nil, wrapError(err, "validate")
	}

	return artifact, nil
}
