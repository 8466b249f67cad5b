package genebench

import "math"

// Aggregator folds per-gene evaluation records into a ToolSummary.
//
// Metrics are derived from pooled counts, not averaged per gene: a gene
// with zero reference exons contributes nothing to the pooled sensitivity
// denominator instead of skewing an average. Resource figures are plain
// arithmetic means. Add is summation only, so partial aggregators built by
// parallel workers merge in any order.
type Aggregator struct {
	exon       ExonCounts
	nucleotide ConfusionMatrix
	byBucket   map[Complexity]*ExonCounts

	totalGenes   int
	perfectGenes int
	partialGenes int // genes that are partial but not perfect

	totalRuntime float64
	totalMemory  float64
}

// NewAggregator creates an empty aggregator with all three buckets present,
// so the summary always carries the full partition even for buckets with
// no genes.
func NewAggregator() *Aggregator {
	byBucket := make(map[Complexity]*ExonCounts, len(Complexities))
	for _, c := range Complexities {
		byBucket[c] = &ExonCounts{}
	}
	return &Aggregator{byBucket: byBucket}
}

// Add accumulates one gene evaluation record.
func (a *Aggregator) Add(ev GeneEvaluation) {
	a.exon.Add(ev.Exon)
	a.nucleotide.Add(ev.Nucleotide)

	bucket, ok := a.byBucket[ev.Complexity]
	if !ok {
		// Records without a validated label fall into the bucket their
		// reference exon count implies.
		bucket = a.byBucket[ComplexityForExonCount(ev.Exon.Reference)]
	}
	bucket.Add(ev.Exon)

	a.totalGenes++
	if ev.Match.Perfect {
		a.perfectGenes++
	} else if ev.Match.Partial {
		a.partialGenes++
	}

	a.totalRuntime += ev.RuntimeSeconds
	a.totalMemory += ev.MemoryMB
}

// Merge folds another aggregator's partial sums into a.
func (a *Aggregator) Merge(other *Aggregator) {
	a.exon.Add(other.exon)
	a.nucleotide.Add(other.nucleotide)
	for c, counts := range other.byBucket {
		a.byBucket[c].Add(*counts)
	}
	a.totalGenes += other.totalGenes
	a.perfectGenes += other.perfectGenes
	a.partialGenes += other.partialGenes
	a.totalRuntime += other.totalRuntime
	a.totalMemory += other.totalMemory
}

// Genes returns the number of records accumulated so far.
func (a *Aggregator) Genes() int {
	return a.totalGenes
}

// Summary derives the final metrics from the accumulated counts.
// Values are rounded to four decimal places for stable serialized output;
// resource averages keep three (runtime) and one (memory) as reported.
func (a *Aggregator) Summary() ToolSummary {
	overall := OverallMetrics{
		ExonSensitivity:      round(a.exon.Sensitivity(), 4),
		ExonPrecision:        round(a.exon.Precision(), 4),
		ExonF1:               round(a.exon.F1(), 4),
		CodingSensitivity:    round(a.nucleotide.Sensitivity(), 4),
		NoncodingSpecificity: round(a.nucleotide.Specificity(), 4),
		MCC:                  round(a.nucleotide.MCC(), 4),
	}

	if a.totalGenes > 0 {
		overall.GenePerfectRate = round(float64(a.perfectGenes)/float64(a.totalGenes), 4)
		// Partial rate is cumulative: perfect genes count as at least partial.
		overall.GenePartialRate = round(float64(a.perfectGenes+a.partialGenes)/float64(a.totalGenes), 4)
		overall.AvgRuntime = round(a.totalRuntime/float64(a.totalGenes), 3)
		overall.AvgMemory = round(a.totalMemory/float64(a.totalGenes), 1)
	}

	byComplexity := make(map[Complexity]BucketMetrics, len(a.byBucket))
	for c, counts := range a.byBucket {
		byComplexity[c] = BucketMetrics{ExonF1: round(counts.F1(), 4)}
	}

	return ToolSummary{Overall: overall, ByComplexity: byComplexity}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
