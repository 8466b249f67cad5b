package genebench

import (
	"fmt"
	"math"
)

// EvaluateNucleotideLevel derives the exact per-position confusion matrix
// for one gene: every position in [1, regionLength] is classified as
// coding/non-coding by both the prediction and the reference.
//
// The counts are computed by segment arithmetic over merged interval sets,
// never by materializing position sets, so cost is linear in the number of
// exons rather than in region length. The result always satisfies
// TP+FP+TN+FN == regionLength.
func EvaluateNucleotideLevel(pred []PredictedExon, ref []Interval, regionLength int) (ConfusionMatrix, error) {
	if regionLength < 1 {
		return ConfusionMatrix{}, fmt.Errorf("%w: got %d", ErrInvalidRegionLength, regionLength)
	}
	if err := validatePredicted(pred, regionLength); err != nil {
		return ConfusionMatrix{}, err
	}
	if err := validateIntervals(ref, regionLength); err != nil {
		return ConfusionMatrix{}, err
	}

	predIvs := make([]Interval, len(pred))
	for i, pe := range pred {
		predIvs[i] = pe.Interval()
	}
	predCoding := mergeIntervals(predIvs)
	refCoding := mergeIntervals(ref)

	tp := intersectionLength(predCoding, refCoding)
	predLen := coveredLength(predCoding)
	refLen := coveredLength(refCoding)

	return ConfusionMatrix{
		TP: tp,
		FP: predLen - tp,
		FN: refLen - tp,
		TN: regionLength - predLen - refLen + tp,
	}, nil
}

// Sensitivity is tp/(tp+fn), 0 when the reference covers nothing.
func (m ConfusionMatrix) Sensitivity() float64 {
	return ratio(m.TP, m.TP+m.FN)
}

// Specificity is tn/(tn+fp), 0 when nothing is non-coding.
func (m ConfusionMatrix) Specificity() float64 {
	return ratio(m.TN, m.TN+m.FP)
}

// MCC returns the Matthews correlation coefficient, 0 when any of the four
// marginal sums is 0 (degenerate denominator).
func (m ConfusionMatrix) MCC() float64 {
	denom := float64(m.TP+m.FP) * float64(m.TP+m.FN) * float64(m.TN+m.FP) * float64(m.TN+m.FN)
	if denom <= 0 {
		return 0
	}
	return (float64(m.TP)*float64(m.TN) - float64(m.FP)*float64(m.FN)) / math.Sqrt(denom)
}

// Add accumulates another matrix into m.
func (m *ConfusionMatrix) Add(other ConfusionMatrix) {
	m.TP += other.TP
	m.FP += other.FP
	m.TN += other.TN
	m.FN += other.FN
}
