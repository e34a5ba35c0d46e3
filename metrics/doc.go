// Package metrics packages classification-quality scores into an immutable,
// validated artifact.
//
// Compute scores a pair of label slices and returns a
// ClassificationMetricsArtifact holding F1, precision, recall and accuracy:
//
//	artifact, err := metrics.Compute(yTrue, yPred)
//	if err != nil {
//	    // err is a PipelineError; the scoring sentinel is still reachable
//	    if errors.Is(err, scoring.ErrInconsistentLength) { ... }
//	    return err
//	}
//	fmt.Println(artifact.F1Score())
//
// An artifact either has all four scores, each validated against the
// #ClassificationMetrics CUE schema, or it does not exist. It holds no
// reference to its inputs and exposes no mutation API.
//
// Artifacts persist as YAML through any core.FS provider:
//
//	err := metrics.Save(fs, "artifacts/model_trainer/metrics.yaml", artifact)
//	artifact, err := metrics.Load(fs, "artifacts/model_trainer/metrics.yaml")
package metrics
