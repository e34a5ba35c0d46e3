package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Average selects how per-label scores are combined.
type Average int

const (
	// Binary reports the score of the positive label only.
	Binary Average = iota

	// Micro counts true positives, false positives and false negatives globally.
	Micro

	// Macro takes the unweighted mean of per-label scores.
	Macro

	// Weighted takes the mean of per-label scores weighted by support.
	Weighted
)

// String returns the sklearn name of the averaging strategy.
func (a Average) String() string {
	switch a {
	case Binary:
		return "binary"
	case Micro:
		return "micro"
	case Macro:
		return "macro"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("Average(%d)", int(a))
	}
}

// ParseAverage parses an sklearn averaging name ("binary", "micro", "macro", "weighted").
func ParseAverage(s string) (Average, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "":
		return Binary, nil
	case "micro":
		return Micro, nil
	case "macro":
		return Macro, nil
	case "weighted":
		return Weighted, nil
	default:
		return Binary, fmt.Errorf("%w: %q", ErrInvalidAverage, s)
	}
}

// Option configures a scorer.
type Option func(*config)

type config struct {
	average      Average
	posLabel     interface{}
	zeroDivision float64
}

func newConfig(opts []Option) (config, error) {
	cfg := config{average: Binary}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.average < Binary || cfg.average > Weighted {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidAverage, cfg.average)
	}
	if !math.IsNaN(cfg.zeroDivision) && cfg.zeroDivision != 0 && cfg.zeroDivision != 1 {
		return cfg, fmt.Errorf("%w: got %v", ErrInvalidZeroDivision, cfg.zeroDivision)
	}

	return cfg, nil
}

// WithAverage sets the averaging strategy. The default is Binary.
func WithAverage(a Average) Option {
	return func(c *config) {
		c.average = a
	}
}

// WithPosLabel sets the label treated as positive under Binary averaging.
// Numeric values are converted to the label type when possible.
func WithPosLabel(label interface{}) Option {
	return func(c *config) {
		c.posLabel = label
	}
}

// WithZeroDivision sets the score reported when a denominator is zero.
// Accepted values are 0 (the default), 1 and NaN.
func WithZeroDivision(v float64) Option {
	return func(c *config) {
		c.zeroDivision = v
	}
}
