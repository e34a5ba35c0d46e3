package scoring

import "fmt"

// metric computes a per-label score from confusion counts.
type metric func(c counts, zeroDivision float64) float64

func ratio(num, den int, zeroDivision float64) float64 {
	if den == 0 {
		return zeroDivision
	}
	return float64(num) / float64(den)
}

func precision(c counts, zd float64) float64 { return ratio(c.tp, c.tp+c.fp, zd) }
func recall(c counts, zd float64) float64    { return ratio(c.tp, c.tp+c.fn, zd) }
func f1(c counts, zd float64) float64        { return ratio(2*c.tp, 2*c.tp+c.fp+c.fn, zd) }

// Accuracy returns the fraction of samples where yPred equals yTrue.
// Averaging options do not apply and are ignored.
func Accuracy[T comparable](yTrue, yPred []T, _ ...Option) (float64, error) {
	if err := checkTargets(yTrue, yPred); err != nil {
		return 0, err
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// Precision returns tp / (tp + fp).
func Precision[T comparable](yTrue, yPred []T, opts ...Option) (float64, error) {
	return score(yTrue, yPred, opts, precision)
}

// Recall returns tp / (tp + fn).
func Recall[T comparable](yTrue, yPred []T, opts ...Option) (float64, error) {
	return score(yTrue, yPred, opts, recall)
}

// F1 returns the harmonic mean of precision and recall, 2tp / (2tp + fp + fn).
func F1[T comparable](yTrue, yPred []T, opts ...Option) (float64, error) {
	return score(yTrue, yPred, opts, f1)
}

func score[T comparable](yTrue, yPred []T, opts []Option, m metric) (float64, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}
	if err := checkTargets(yTrue, yPred); err != nil {
		return 0, err
	}

	t := count(yTrue, yPred)
	zd := cfg.zeroDivision

	switch cfg.average {
	case Binary:
		if len(t.labels) > 2 {
			return 0, fmt.Errorf("%w: found %d labels", ErrNotBinary, len(t.labels))
		}
		pos, err := resolvePosLabel[T](cfg.posLabel)
		if err != nil {
			return 0, err
		}
		c, ok := t.byLabel[pos]
		if !ok {
			if len(t.labels) >= 2 {
				return 0, fmt.Errorf("%w: %v not in %v", ErrInvalidPosLabel, pos, t.labels)
			}
			c = &counts{}
		}
		return m(*c, zd), nil

	case Micro:
		var total counts
		for _, c := range t.byLabel {
			total.tp += c.tp
			total.fp += c.fp
			total.fn += c.fn
		}
		return m(total, zd), nil

	case Macro:
		sum := 0.0
		for _, l := range t.labels {
			sum += m(*t.byLabel[l], zd)
		}
		return sum / float64(len(t.labels)), nil

	default: // Weighted
		sum, support := 0.0, 0
		for _, l := range t.labels {
			c := *t.byLabel[l]
			sum += m(c, zd) * float64(c.support())
			support += c.support()
		}
		return ratioF(sum, float64(support), zd), nil
	}
}

func ratioF(num, den, zeroDivision float64) float64 {
	if den == 0 {
		return zeroDivision
	}
	return num / den
}
