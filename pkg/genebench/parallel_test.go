package genebench

import (
	"errors"
	"fmt"
	"testing"
)

func testDataset(n int) ([]Gene, []Prediction) {
	genes := make([]Gene, n)
	preds := make([]Prediction, n)
	for i := range genes {
		id := fmt.Sprintf("GENE_%04d", i+1)
		exons := []Interval{{101, 200}, {501, 700}, {901, 1000}}
		genes[i] = Gene{
			ID:           id,
			Exons:        exons,
			NumExons:     len(exons),
			Complexity:   ComplexityModerate,
			RegionLength: 2000,
		}
		// Every third gene loses its last exon in the prediction.
		pe := predExons(exons...)
		if i%3 == 0 {
			pe = pe[:2]
		}
		preds[i] = Prediction{
			Tool:           "SNAP",
			GeneID:         id,
			Exons:          pe,
			NumPredicted:   len(pe),
			RuntimeSeconds: 0.3,
			MemoryMB:       39.0,
		}
	}
	return genes, preds
}

func TestEvaluateDatasetMatchesSequential(t *testing.T) {
	genes, preds := testDataset(60)

	want := NewAggregator()
	for i := range genes {
		ev, err := EvaluateGene(genes[i], preds[i], DefaultIoUThreshold)
		if err != nil {
			t.Fatalf("EvaluateGene() error = %v", err)
		}
		want.Add(ev)
	}

	for _, workers := range []int{1, 4, 0} {
		got, err := EvaluateDataset(genes, preds, DefaultIoUThreshold, workers)
		if err != nil {
			t.Fatalf("EvaluateDataset(workers=%d) error = %v", workers, err)
		}
		if got.Overall != want.Summary().Overall {
			t.Errorf("workers=%d Overall = %+v, want %+v", workers, got.Overall, want.Summary().Overall)
		}
	}
}

func TestEvaluateDatasetMissingPrediction(t *testing.T) {
	genes, preds := testDataset(5)
	_, err := EvaluateDataset(genes, preds[:4], DefaultIoUThreshold, 2)
	if !errors.Is(err, ErrMissingPrediction) {
		t.Errorf("error = %v, want ErrMissingPrediction", err)
	}
}

func TestEvaluateDatasetPropagatesValidationError(t *testing.T) {
	genes, preds := testDataset(10)
	preds[7].Exons = predExons(Interval{500, 100})

	_, err := EvaluateDataset(genes, preds, DefaultIoUThreshold, 4)
	if !errors.Is(err, ErrMalformedInterval) {
		t.Errorf("error = %v, want ErrMalformedInterval", err)
	}
}

func TestEvaluateDatasetEmpty(t *testing.T) {
	got, err := EvaluateDataset(nil, nil, DefaultIoUThreshold, 2)
	if err != nil {
		t.Fatalf("EvaluateDataset() error = %v", err)
	}
	if got.Overall != (OverallMetrics{}) {
		t.Errorf("Overall = %+v, want zero metrics", got.Overall)
	}
}

func TestNewParallelEvaluatorWorkerCount(t *testing.T) {
	if got := NewParallelEvaluator(DefaultIoUThreshold, 8).Workers(); got != 8 {
		t.Errorf("Workers() = %d, want 8", got)
	}
	if got := NewParallelEvaluator(DefaultIoUThreshold, 1000).Workers(); got != 32 {
		t.Errorf("Workers() = %d, want cap 32", got)
	}
	if got := NewParallelEvaluator(DefaultIoUThreshold, 0).Workers(); got < 1 {
		t.Errorf("Workers() = %d, want >= 1 from auto-detection", got)
	}
}
