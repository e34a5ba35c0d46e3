package metrics

import (
	"testing"

	"github.com/jmgilman/go/fs/billy"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	fs := billy.NewMemory()

	artifact, err := Compute([]int{1, 0, 1, 1, 0}, []int{1, 0, 0, 1, 0})
	require.NoError(t, err)

	require.NoError(t, Save(fs, "artifacts/model_trainer/metrics.yaml", artifact))

	exists, err := fs.Exists("artifacts/model_trainer/metrics.yaml")
	require.NoError(t, err)
	require.True(t, exists)

	loaded, err := Load(fs, "artifacts/model_trainer/metrics.yaml")
	require.NoError(t, err)
	require.Equal(t, artifact, loaded)
}

func TestSave_Format(t *testing.T) {
	fs := billy.NewMemory()

	artifact, err := New(0.8, 1, 0.5, 0.75)
	require.NoError(t, err)
	require.NoError(t, Save(fs, "metrics.yaml", artifact))

	data, err := fs.ReadFile("metrics.yaml")
	require.NoError(t, err)
	require.Equal(t,
		"f1_score: 0.8\nprecision_score: 1\nrecall_score: 0.5\naccuracy_score: 0.75\n",
		string(data))
}

func TestSave_NilArtifact(t *testing.T) {
	err := Save(billy.NewMemory(), "metrics.yaml", nil)
	require.ErrorIs(t, err, ErrInvalidArtifact)
}

func TestLoad_Missing(t *testing.T) {
	artifact, err := Load(billy.NewMemory(), "missing.yaml")

	require.Nil(t, artifact)
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	fs := billy.NewMemory()
	require.NoError(t, fs.WriteFile("metrics.yaml", []byte("f1_score: 2\n"), 0o644))

	artifact, err := Load(fs, "metrics.yaml")

	require.Nil(t, artifact)
	require.ErrorIs(t, err, ErrInvalidArtifact)
}
