package metrics

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field names used by the schema and every serialization.
const (
	fieldF1        = "f1_score"
	fieldPrecision = "precision_score"
	fieldRecall    = "recall_score"
	fieldAccuracy  = "accuracy_score"
)

// ClassificationMetricsArtifact holds the four quality scores of one evaluation.
// Values are immutable; every score lies in [0, 1].
type ClassificationMetricsArtifact struct {
	f1Score        float64
	precisionScore float64
	recallScore    float64
	accuracyScore  float64
}

// record is the serialized shape of an artifact.
type record struct {
	F1Score        float64 `json:"f1_score" yaml:"f1_score"`
	PrecisionScore float64 `json:"precision_score" yaml:"precision_score"`
	RecallScore    float64 `json:"recall_score" yaml:"recall_score"`
	AccuracyScore  float64 `json:"accuracy_score" yaml:"accuracy_score"`
}

// New creates an artifact from precomputed scores.
// Returns a PipelineError wrapping ErrInvalidArtifact if any score is outside
// [0, 1] or not a finite number.
func New(f1, precision, recall, accuracy float64) (*ClassificationMetricsArtifact, error) {
	a, err := build(f1, precision, recall, accuracy)
	if err != nil {
		return nil, wrapError(err, "validate")
	}
	return a, nil
}

func build(f1, precision, recall, accuracy float64) (*ClassificationMetricsArtifact, error) {
	a := &ClassificationMetricsArtifact{
		f1Score:        f1,
		precisionScore: precision,
		recallScore:    recall,
		accuracyScore:  accuracy,
	}
	if err := validate(a.fields()); err != nil {
		return nil, err
	}
	return a, nil
}

// F1Score returns the F1 score.
func (a *ClassificationMetricsArtifact) F1Score() float64 {
	return a.f1Score
}

// PrecisionScore returns the precision score.
func (a *ClassificationMetricsArtifact) PrecisionScore() float64 {
	return a.precisionScore
}

// RecallScore returns the recall score.
func (a *ClassificationMetricsArtifact) RecallScore() float64 {
	return a.recallScore
}

// AccuracyScore returns the accuracy score.
func (a *ClassificationMetricsArtifact) AccuracyScore() float64 {
	return a.accuracyScore
}

// String returns a one-line summary for logs.
func (a *ClassificationMetricsArtifact) String() string {
	return fmt.Sprintf("f1_score=%.4f precision_score=%.4f recall_score=%.4f accuracy_score=%.4f",
		a.f1Score, a.precisionScore, a.recallScore, a.accuracyScore)
}

func (a *ClassificationMetricsArtifact) fields() map[string]float64 {
	return map[string]float64{
		fieldF1:        a.f1Score,
		fieldPrecision: a.precisionScore,
		fieldRecall:    a.recallScore,
		fieldAccuracy:  a.accuracyScore,
	}
}

func (a *ClassificationMetricsArtifact) record() record {
	return record{
		F1Score:        a.f1Score,
		PrecisionScore: a.precisionScore,
		RecallScore:    a.recallScore,
		AccuracyScore:  a.accuracyScore,
	}
}

// MarshalJSON implements json.Marshaler.
func (a *ClassificationMetricsArtifact) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.record())
}

// MarshalYAML implements yaml.Marshaler.
func (a *ClassificationMetricsArtifact) MarshalYAML() (interface{}, error) {
	return a.record(), nil
}

// Decode parses a YAML or JSON document into a validated artifact.
// All four fields are required; unknown fields are rejected.
func Decode(data []byte) (*ClassificationMetricsArtifact, error) {
	fields := make(map[string]float64)
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&fields); err != nil {
		return nil, wrapError(fmt.Errorf("%w: %v", ErrInvalidArtifact, err), "decode")
	}

	if err := validate(fields); err != nil {
		return nil, wrapError(err, "validate")
	}

	return &ClassificationMetricsArtifact{
		f1Score:        fields[fieldF1],
		precisionScore: fields[fieldPrecision],
		recallScore:    fields[fieldRecall],
		accuracyScore:  fields[fieldAccuracy],
	}, nil
}
