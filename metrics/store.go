package metrics

import (
	"fmt"
	"path/filepath"

	"github.com/jmgilman/go/fs/core"
	"gopkg.in/yaml.v3"
)

// artifactPerm is the mode used for persisted artifacts.
const artifactPerm = 0o644

// Save writes artifact to path on fsys as YAML, creating parent directories.
func Save(fsys core.WriteFS, path string, artifact *ClassificationMetricsArtifact) error {
	if artifact == nil {
		return wrapError(fmt.Errorf("%w: nil artifact", ErrInvalidArtifact), "save")
	}

	data, err := yaml.Marshal(artifact)
	if err != nil {
		return wrapError(fmt.Errorf("encoding artifact: %w", err), "save")
	}

	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return wrapError(fmt.Errorf("creating %s: %w", dir, err), "save")
		}
	}

	if err := fsys.WriteFile(path, data, artifactPerm); err != nil {
		return wrapError(fmt.Errorf("writing %s: %w", path, err), "save")
	}

	return nil
}

// Load reads and validates the artifact stored at path on fsys.
func Load(fsys core.ReadFS, path string) (*ClassificationMetricsArtifact, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, wrapError(fmt.Errorf("reading %s: %w", path, err), "load")
	}
	return Decode(data)
}
