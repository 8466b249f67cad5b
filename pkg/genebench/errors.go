package genebench

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMalformedInterval indicates an interval with start > end.
	ErrMalformedInterval = errors.New("genebench: interval start after end")

	// ErrIntervalOutOfBounds indicates coordinates outside [1, region length].
	ErrIntervalOutOfBounds = errors.New("genebench: interval outside region bounds")

	// ErrInvalidRegionLength indicates a region length below 1.
	ErrInvalidRegionLength = errors.New("genebench: region length must be >= 1")

	// ErrUnknownComplexity indicates a complexity label outside the three buckets.
	ErrUnknownComplexity = errors.New("genebench: unknown complexity bucket")

	// ErrMissingPrediction indicates a gene with no prediction record for a tool.
	ErrMissingPrediction = errors.New("genebench: no prediction for gene")
)

// ParseComplexity validates an externally supplied bucket label.
func ParseComplexity(s string) (Complexity, error) {
	switch Complexity(s) {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		return Complexity(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComplexity, s)
}

// validateIntervals rejects malformed or out-of-bounds intervals eagerly,
// before any counting, so aggregates are never silently wrong.
// regionLength <= 0 disables the bounds check (exon and gene level
// evaluation have no region universe).
func validateIntervals(ivs []Interval, regionLength int) error {
	for _, iv := range ivs {
		if iv.Start > iv.End {
			return fmt.Errorf("%w: (%d,%d)", ErrMalformedInterval, iv.Start, iv.End)
		}
		if iv.Start < 1 {
			return fmt.Errorf("%w: (%d,%d)", ErrIntervalOutOfBounds, iv.Start, iv.End)
		}
		if regionLength > 0 && iv.End > regionLength {
			return fmt.Errorf("%w: (%d,%d) in region of length %d",
				ErrIntervalOutOfBounds, iv.Start, iv.End, regionLength)
		}
	}
	return nil
}

// validatePredicted applies the same checks to predicted exon calls.
func validatePredicted(pred []PredictedExon, regionLength int) error {
	for _, pe := range pred {
		if err := validateIntervals([]Interval{pe.Interval()}, regionLength); err != nil {
			return err
		}
	}
	return nil
}
