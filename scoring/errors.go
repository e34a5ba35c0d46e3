package scoring

import "errors"

var (
	// ErrInconsistentLength indicates y_true and y_pred have different lengths.
	ErrInconsistentLength = errors.New("found input variables with inconsistent numbers of samples")

	// ErrEmptyInput indicates the label slices are empty.
	ErrEmptyInput = errors.New("found empty input: at least one sample is required")

	// ErrContinuousTarget indicates floating point labels that are not whole numbers.
	ErrContinuousTarget = errors.New("classification metrics can't handle continuous targets")

	// ErrNotBinary indicates more than two labels were found with Binary averaging.
	ErrNotBinary = errors.New("target is multiclass but average is binary; choose another average setting")

	// ErrInvalidPosLabel indicates the positive label is absent or of the wrong type.
	ErrInvalidPosLabel = errors.New("pos_label is not a valid label")

	// ErrPosLabelRequired indicates binary averaging over labels with no default positive label.
	ErrPosLabelRequired = errors.New("pos_label must be set for non-numeric labels")

	// ErrInvalidZeroDivision indicates a zero-division value outside [0, 1] that is not NaN.
	ErrInvalidZeroDivision = errors.New("zero_division must be 0, 1 or NaN")

	// ErrInvalidAverage indicates an unknown averaging strategy.
	ErrInvalidAverage = errors.New("unknown average")
)
