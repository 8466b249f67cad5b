package genebench

// EvaluateExonLevel matches predicted exons against reference exons at the
// given IoU threshold and returns the raw counts.
//
// Matching is greedy first-fit: predicted exons are walked in their given
// order, and each claims the first unclaimed reference whose IoU meets the
// threshold. This is order-dependent and not a maximum matching; it is kept
// deliberately for parity with the established benchmark protocol.
func EvaluateExonLevel(pred []PredictedExon, ref []Interval, threshold float64) (ExonCounts, error) {
	if err := validatePredicted(pred, 0); err != nil {
		return ExonCounts{}, err
	}
	if err := validateIntervals(ref, 0); err != nil {
		return ExonCounts{}, err
	}

	claimed := make([]bool, len(ref))
	tp := 0
	for _, pe := range pred {
		for i, rv := range ref {
			if claimed[i] {
				continue
			}
			if IoU(pe.Interval(), rv) >= threshold {
				claimed[i] = true
				tp++
				break
			}
		}
	}

	return ExonCounts{
		TP:        tp,
		Predicted: len(pred),
		Reference: len(ref),
	}, nil
}

// Sensitivity is tp over the reference count, 0 when there are no references.
func (c ExonCounts) Sensitivity() float64 {
	return ratio(c.TP, c.Reference)
}

// Precision is tp over the predicted count, 0 when there are no predictions.
func (c ExonCounts) Precision() float64 {
	return ratio(c.TP, c.Predicted)
}

// F1 is the harmonic mean of sensitivity and precision, 0 when both are 0.
func (c ExonCounts) F1() float64 {
	return harmonicMean(c.Sensitivity(), c.Precision())
}

// Add accumulates another tally into c. Summation is commutative, so
// parallel partial tallies merge in any order.
func (c *ExonCounts) Add(other ExonCounts) {
	c.TP += other.TP
	c.Predicted += other.Predicted
	c.Reference += other.Reference
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func harmonicMean(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}
