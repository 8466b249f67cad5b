package genebench

import (
	"fmt"
	"sync"
)

// evalJob pairs one gene with its prediction for a worker.
type evalJob struct {
	gene Gene
	pred Prediction
}

// ParallelEvaluator evaluates one tool's predictions across a dataset with
// a pool of workers. Genes are independent, so each worker folds its
// results into a private partial Aggregator; Finalize merges the partials
// by summation, which is commutative, so worker scheduling never affects
// the outcome.
type ParallelEvaluator struct {
	threshold float64
	workers   int

	jobQueue chan evalJob
	workerWg sync.WaitGroup
	partials []*Aggregator

	firstErr error
	errOnce  sync.Once
}

// NewParallelEvaluator creates an evaluator pool. workers <= 0 auto-detects
// from the CPU topology; the count is capped to avoid pointless goroutines
// on small datasets.
func NewParallelEvaluator(threshold float64, workers int) *ParallelEvaluator {
	if workers <= 0 {
		workers = detectOptimalWorkers()
	}
	maxWorkers := 32
	if workers > maxWorkers {
		workers = maxWorkers
	}

	partials := make([]*Aggregator, workers)
	for i := range partials {
		partials[i] = NewAggregator()
	}

	return &ParallelEvaluator{
		threshold: threshold,
		workers:   workers,
		jobQueue:  make(chan evalJob, workers*2),
		partials:  partials,
	}
}

// Workers returns the effective worker count.
func (pe *ParallelEvaluator) Workers() int {
	return pe.workers
}

// Start launches the worker pool.
func (pe *ParallelEvaluator) Start() {
	for i := 0; i < pe.workers; i++ {
		pe.workerWg.Add(1)
		go pe.worker(pe.partials[i])
	}
}

func (pe *ParallelEvaluator) worker(agg *Aggregator) {
	defer pe.workerWg.Done()

	for job := range pe.jobQueue {
		eval, err := EvaluateGene(job.gene, job.pred, pe.threshold)
		if err != nil {
			pe.errOnce.Do(func() {
				pe.firstErr = fmt.Errorf("gene %s: %w", job.gene.ID, err)
			})
			continue
		}
		agg.Add(eval)
	}
}

// Submit queues one (gene, prediction) pair for evaluation.
func (pe *ParallelEvaluator) Submit(gene Gene, pred Prediction) {
	pe.jobQueue <- evalJob{gene: gene, pred: pred}
}

// Finalize waits for all workers, merges their partial aggregates, and
// returns the pooled summary. A validation failure on any gene fails the
// whole run rather than producing a silently incomplete aggregate.
func (pe *ParallelEvaluator) Finalize() (ToolSummary, error) {
	close(pe.jobQueue)
	pe.workerWg.Wait()

	if pe.firstErr != nil {
		return ToolSummary{}, pe.firstErr
	}

	total := pe.partials[0]
	for _, partial := range pe.partials[1:] {
		total.Merge(partial)
	}
	return total.Summary(), nil
}

// EvaluateDataset evaluates one tool's predictions against the dataset and
// returns the pooled summary. Predictions are matched to genes by ID; a
// gene without a prediction record is an error.
func EvaluateDataset(genes []Gene, preds []Prediction, threshold float64, workers int) (ToolSummary, error) {
	byGene := make(map[string]Prediction, len(preds))
	for _, p := range preds {
		byGene[p.GeneID] = p
	}

	pe := NewParallelEvaluator(threshold, workers)
	pe.Start()
	for _, gene := range genes {
		pred, ok := byGene[gene.ID]
		if !ok {
			// Drain the pool before reporting so no goroutine leaks.
			if _, err := pe.Finalize(); err != nil {
				return ToolSummary{}, err
			}
			return ToolSummary{}, fmt.Errorf("%w: %s", ErrMissingPrediction, gene.ID)
		}
		pe.Submit(gene, pred)
	}

	return pe.Finalize()
}
