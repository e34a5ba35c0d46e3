package commands

import (
	"fmt"
	"strconv"

	pipelineerrors "github.com/jmgilman/go/pipeline/errors"
	"github.com/jmgilman/go/pipeline/metrics"
	"github.com/jmgilman/go/pipeline/scoring"
	"gopkg.in/yaml.v3"
)

// ScoreCmd implements the 'score' command.
type ScoreCmd struct {
	Input        string  `short:"i" required:"" type:"path" help:"YAML or JSON file with y_true and y_pred label lists"`
	Output       string  `short:"o" type:"path" help:"Write the artifact to this path instead of stdout"`
	Labels       string  `help:"Type the label lists are read as" default:"int" enum:"int,string"`
	Average      string  `help:"Averaging strategy" default:"binary" enum:"binary,micro,macro,weighted" env:"PIPELINE_AVERAGE"`
	PosLabel     string  `name:"pos-label" help:"Label treated as positive for binary averaging, read with the --labels type" default:"1"`
	ZeroDivision float64 `name:"zero-division" help:"Score reported when a denominator is zero (0 or 1)" default:"0"`
}

// labelFile is the input document read by the score command.
type labelFile[T comparable] struct {
	YTrue []T `yaml:"y_true"`
	YPred []T `yaml:"y_pred"`
}

func (s *ScoreCmd) Run(g *Global) error {
	average, err := scoring.ParseAverage(s.Average)
	if err != nil {
		return pipelineerrors.Trace(err)
	}

	var artifact *metrics.ClassificationMetricsArtifact
	switch s.Labels {
	case "string":
		artifact, err = computeLabels(s, g, average, s.PosLabel)
	default:
		pos, perr := strconv.Atoi(s.PosLabel)
		if perr != nil {
			return pipelineerrors.Trace(fmt.Errorf("%w: %q is not an integer label", scoring.ErrInvalidPosLabel, s.PosLabel))
		}
		artifact, err = computeLabels(s, g, average, pos)
	}
	if err != nil {
		return err
	}

	g.Logger.Info("Computed classification metrics",
		"f1_score", artifact.F1Score(),
		"precision_score", artifact.PrecisionScore(),
		"recall_score", artifact.RecallScore(),
		"accuracy_score", artifact.AccuracyScore(),
	)

	if s.Output == "" {
		data, err := yaml.Marshal(artifact)
		if err != nil {
			return pipelineerrors.Trace(err)
		}
		_, err = g.Stdout.Write(data)
		return err
	}

	if err := metrics.Save(g.FS, s.Output, artifact); err != nil {
		return err
	}
	g.Logger.Info("Wrote metrics artifact", "path", s.Output)
	return nil
}

// computeLabels reads the input as labels of type T and builds the artifact.
func computeLabels[T comparable](s *ScoreCmd, g *Global, average scoring.Average, pos T) (*metrics.ClassificationMetricsArtifact, error) {
	in, err := readLabels[T](g, s.Input)
	if err != nil {
		return nil, err
	}

	g.Logger.Debug("Scoring labels", "input", s.Input, "labels", s.Labels, "samples", len(in.YTrue), "average", average)

	return metrics.Compute(in.YTrue, in.YPred,
		scoring.WithAverage(average),
		scoring.WithPosLabel(pos),
		scoring.WithZeroDivision(s.ZeroDivision),
	)
}

func readLabels[T comparable](g *Global, path string) (*labelFile[T], error) {
	data, err := g.FS.ReadFile(path)
	if err != nil {
		return nil, pipelineerrors.Trace(fmt.Errorf("reading labels: %w", err))
	}

	var in labelFile[T]
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, pipelineerrors.Trace(fmt.Errorf("parsing %s: %w", path, err))
	}

	return &in, nil
}
