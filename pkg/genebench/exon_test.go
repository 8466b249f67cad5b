package genebench

import (
	"errors"
	"testing"
)

func predExons(ivs ...Interval) []PredictedExon {
	out := make([]PredictedExon, len(ivs))
	for i, iv := range ivs {
		out[i] = PredictedExon{Start: iv.Start, End: iv.End, Score: 0.9}
	}
	return out
}

func TestEvaluateExonLevel(t *testing.T) {
	tests := []struct {
		name     string
		pred     []PredictedExon
		ref      []Interval
		wantTP   int
		wantSens float64
		wantPrec float64
		wantF1   float64
	}{
		{
			name:     "perfect match",
			pred:     predExons(Interval{100, 200}, Interval{300, 400}),
			ref:      []Interval{{100, 200}, {300, 400}},
			wantTP:   2,
			wantSens: 1.0,
			wantPrec: 1.0,
			wantF1:   1.0,
		},
		{
			name:     "one of two found",
			pred:     predExons(Interval{100, 200}),
			ref:      []Interval{{100, 200}, {300, 400}},
			wantTP:   1,
			wantSens: 0.5,
			wantPrec: 1.0,
			wantF1:   2.0 / 3.0,
		},
		{
			name:     "spurious prediction",
			pred:     predExons(Interval{100, 200}, Interval{500, 600}),
			ref:      []Interval{{100, 200}},
			wantTP:   1,
			wantSens: 1.0,
			wantPrec: 0.5,
			wantF1:   2.0 / 3.0,
		},
		{
			name:     "shifted boundaries still match",
			pred:     predExons(Interval{110, 210}),
			ref:      []Interval{{100, 200}},
			wantTP:   1,
			wantSens: 1.0,
			wantPrec: 1.0,
			wantF1:   1.0,
		},
		{
			name:     "below threshold no match",
			pred:     predExons(Interval{180, 280}),
			ref:      []Interval{{100, 200}},
			wantTP:   0,
			wantSens: 0.0,
			wantPrec: 0.0,
			wantF1:   0.0,
		},
		{
			name:     "no predictions",
			pred:     nil,
			ref:      []Interval{{100, 200}},
			wantTP:   0,
			wantSens: 0.0,
			wantPrec: 0.0,
			wantF1:   0.0,
		},
		{
			name:     "no references",
			pred:     predExons(Interval{100, 200}),
			ref:      nil,
			wantTP:   0,
			wantSens: 0.0,
			wantPrec: 0.0,
			wantF1:   0.0,
		},
		{
			name:     "nothing at all",
			pred:     nil,
			ref:      nil,
			wantTP:   0,
			wantSens: 0.0,
			wantPrec: 0.0,
			wantF1:   0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateExonLevel(tt.pred, tt.ref, DefaultIoUThreshold)
			if err != nil {
				t.Fatalf("EvaluateExonLevel() error = %v", err)
			}
			if got.TP != tt.wantTP {
				t.Errorf("TP = %d, want %d", got.TP, tt.wantTP)
			}
			if got.Predicted != len(tt.pred) {
				t.Errorf("Predicted = %d, want %d", got.Predicted, len(tt.pred))
			}
			if got.Reference != len(tt.ref) {
				t.Errorf("Reference = %d, want %d", got.Reference, len(tt.ref))
			}
			if got.TP > got.Predicted || got.TP > got.Reference {
				t.Errorf("TP = %d exceeds min(Predicted=%d, Reference=%d)",
					got.TP, got.Predicted, got.Reference)
			}
			if !floatEq(got.Sensitivity(), tt.wantSens) {
				t.Errorf("Sensitivity() = %v, want %v", got.Sensitivity(), tt.wantSens)
			}
			if !floatEq(got.Precision(), tt.wantPrec) {
				t.Errorf("Precision() = %v, want %v", got.Precision(), tt.wantPrec)
			}
			if !floatEq(got.F1(), tt.wantF1) {
				t.Errorf("F1() = %v, want %v", got.F1(), tt.wantF1)
			}
		})
	}
}

func TestEvaluateExonLevelReferenceClaimedOnce(t *testing.T) {
	// Two predictions both overlap the same single reference; only the
	// first claims it.
	pred := predExons(Interval{100, 200}, Interval{105, 205})
	ref := []Interval{{100, 200}}

	got, err := EvaluateExonLevel(pred, ref, DefaultIoUThreshold)
	if err != nil {
		t.Fatalf("EvaluateExonLevel() error = %v", err)
	}
	if got.TP != 1 {
		t.Errorf("TP = %d, want 1", got.TP)
	}
}

func TestEvaluateExonLevelThresholdBoundary(t *testing.T) {
	// IoU((100,200),(150,250)) = 50/150. At threshold 1/3 it matches
	// exactly; nudge the threshold above and it does not.
	pred := predExons(Interval{150, 250})
	ref := []Interval{{100, 200}}

	got, err := EvaluateExonLevel(pred, ref, 50.0/150.0)
	if err != nil {
		t.Fatalf("EvaluateExonLevel() error = %v", err)
	}
	if got.TP != 1 {
		t.Errorf("TP at exact threshold = %d, want 1", got.TP)
	}

	got, err = EvaluateExonLevel(pred, ref, 50.0/150.0+1e-9)
	if err != nil {
		t.Fatalf("EvaluateExonLevel() error = %v", err)
	}
	if got.TP != 0 {
		t.Errorf("TP above threshold = %d, want 0", got.TP)
	}
}

func TestEvaluateExonLevelRejectsMalformed(t *testing.T) {
	_, err := EvaluateExonLevel(predExons(Interval{200, 100}), []Interval{{1, 50}}, DefaultIoUThreshold)
	if !errors.Is(err, ErrMalformedInterval) {
		t.Errorf("error = %v, want ErrMalformedInterval", err)
	}

	_, err = EvaluateExonLevel(nil, []Interval{{0, 50}}, DefaultIoUThreshold)
	if !errors.Is(err, ErrIntervalOutOfBounds) {
		t.Errorf("error = %v, want ErrIntervalOutOfBounds", err)
	}
}
