// Package scoring computes classification-quality scores over label slices.
//
// The four scorers (Accuracy, Precision, Recall, F1) follow scikit-learn's
// sklearn.metrics semantics so that scores reported by Go stages match the
// ones produced by the Python training code:
//
//	precision, err := scoring.Precision(yTrue, yPred)
//	f1, err := scoring.F1(yTrue, yPred, scoring.WithAverage(scoring.Macro))
//
// Labels may be any comparable type. Binary averaging needs a positive label:
// numeric labels default to 1 and boolean labels to true; other label types
// must set one with WithPosLabel.
//
// Invalid input is reported through sentinel errors (ErrInconsistentLength,
// ErrEmptyInput, ...) that callers can match with errors.Is. Scorers never
// return a sentinel score in place of an error.
package scoring
