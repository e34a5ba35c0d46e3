package scoring

import (
	"fmt"
	"math"
	"reflect"
)

// counts holds the confusion counts of a single label.
type counts struct {
	tp, fp, fn int
}

func (c counts) support() int {
	return c.tp + c.fn
}

// tally holds per-label counts in first-seen order.
type tally[T comparable] struct {
	labels  []T
	byLabel map[T]*counts
}

// checkTargets validates the label slices the way every scorer requires.
func checkTargets[T comparable](yTrue, yPred []T) error {
	if len(yTrue) != len(yPred) {
		return fmt.Errorf("%w: [%d, %d]", ErrInconsistentLength, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return ErrEmptyInput
	}

	if isFloat[T]() {
		for _, y := range [][]T{yTrue, yPred} {
			for _, v := range y {
				f := reflect.ValueOf(v).Float()
				if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
					return fmt.Errorf("%w: found %v", ErrContinuousTarget, f)
				}
			}
		}
	}

	return nil
}

// count builds the per-label confusion counts for yTrue and yPred.
// Slices must have passed checkTargets.
func count[T comparable](yTrue, yPred []T) tally[T] {
	t := tally[T]{byLabel: make(map[T]*counts)}
	get := func(l T) *counts {
		c, ok := t.byLabel[l]
		if !ok {
			c = &counts{}
			t.byLabel[l] = c
			t.labels = append(t.labels, l)
		}
		return c
	}

	for i := range yTrue {
		truth, pred := yTrue[i], yPred[i]
		if truth == pred {
			get(truth).tp++
			continue
		}
		get(truth).fn++
		get(pred).fp++
	}

	return t
}

func labelType[T comparable]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func isFloat[T comparable]() bool {
	switch labelType[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// resolvePosLabel returns the configured positive label converted to T,
// or the default positive label for T's kind.
func resolvePosLabel[T comparable](label interface{}) (T, error) {
	var pos T
	typ := labelType[T]()

	if label != nil {
		if v, ok := label.(T); ok {
			return v, nil
		}
		v := reflect.ValueOf(label)
		if isNumeric(v.Kind()) && isNumeric(typ.Kind()) && v.CanConvert(typ) {
			converted := v.Convert(typ)
			// The label must survive the round trip, so 1.5 or an
			// overflowing 257 never silently selects another class.
			if converted.Convert(v.Type()).Interface() != label {
				return pos, fmt.Errorf("%w: %v is not representable as %s", ErrInvalidPosLabel, label, typ)
			}
			reflect.ValueOf(&pos).Elem().Set(converted)
			return pos, nil
		}
		return pos, fmt.Errorf("%w: %v is a %T, labels are %s", ErrInvalidPosLabel, label, label, typ)
	}

	target := reflect.ValueOf(&pos).Elem()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		target.SetInt(1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		target.SetUint(1)
	case reflect.Float32, reflect.Float64:
		target.SetFloat(1)
	case reflect.Bool:
		target.SetBool(true)
	default:
		return pos, fmt.Errorf("%w: labels are %s", ErrPosLabelRequired, typ)
	}
	return pos, nil
}
