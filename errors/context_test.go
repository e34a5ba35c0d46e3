package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New("transformation failed")
	err = WithContext(err, "stage", "data_transformation")

	ctx := err.Context()
	require.NotNil(t, ctx)
	require.Equal(t, "data_transformation", ctx["stage"])
}

func TestWithContext_Chaining(t *testing.T) {
	err := New("transformation failed")
	err = WithContext(err, "stage", "data_transformation")
	err = WithContext(err, "rows", 1204)

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "data_transformation", ctx["stage"])
	require.Equal(t, 1204, ctx["rows"])
}

func TestWithContext_Immutability(t *testing.T) {
	original := New("failed")
	withCtx := WithContext(original, "key", "value")

	// Original unchanged
	require.Nil(t, original.Context())
	require.NotNil(t, withCtx.Context())
}

func TestWithContext_PreservesProvenance(t *testing.T) {
	original := New("failed")
	withCtx := WithContext(original, "stage", "ingest")

	require.Equal(t, original.File(), withCtx.File())
	require.Equal(t, original.Line(), withCtx.Line())
	require.Equal(t, original.Message(), withCtx.Message())
	require.Equal(t, original.Render(), withCtx.Render())
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
}

func TestWithContext_Override(t *testing.T) {
	err := New("failed")
	err = WithContext(err, "stage", "ingest")
	err = WithContext(err, "stage", "transform")

	require.Equal(t, "transform", err.Context()["stage"])
}

func TestContext_DefensiveCopy(t *testing.T) {
	err := WithContext(New("failed"), "key", "value")

	ctx := err.Context()
	ctx["key"] = "modified"
	ctx["new"] = "field"

	require.Equal(t, "value", err.Context()["key"])
	require.NotContains(t, err.Context(), "new")
}

func TestWithContextMap(t *testing.T) {
	err := New("training failed")
	err = WithContextMap(err, map[string]interface{}{
		"stage": "model_trainer",
		"model": "random_forest",
	})

	ctx := err.Context()
	require.Equal(t, "model_trainer", ctx["stage"])
	require.Equal(t, "random_forest", ctx["model"])
}

func TestWithContextMap_Merge(t *testing.T) {
	err := WithContext(New("failed"), "stage", "ingest")
	err = WithContextMap(err, map[string]interface{}{
		"stage":  "transform",
		"column": "url_length",
	})

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "transform", ctx["stage"])
	require.Equal(t, "url_length", ctx["column"])
}

func TestWithContextMap_NilError(t *testing.T) {
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"key": "value"}))
}

// stubError is a PipelineError implemented outside this package.
type stubError struct{}

func (stubError) Error() string                   { return "stub" }
func (stubError) Message() string                 { return "stub" }
func (stubError) File() string                    { return "stub.go" }
func (stubError) Line() int                       { return 9 }
func (stubError) Function() string                { return "stub.Run" }
func (stubError) Render() string                  { return "stub" }
func (stubError) Context() map[string]interface{} { return nil }
func (stubError) Unwrap() error                   { return nil }

func TestWithContext_ForeignImplementation(t *testing.T) {
	err := WithContext(stubError{}, "stage", "ingest")

	require.Equal(t, "stub.go", err.File())
	require.Equal(t, 9, err.Line())
	require.Equal(t, "ingest", err.Context()["stage"])
}
