// Package predict simulates the four benchmarked gene-prediction tools.
// There is no real prediction algorithm: each tool is a set of fixed
// accuracy parameters sampled against the reference annotation, which is
// exactly what the benchmark protocol calls for.
package predict

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/genebench/genebench-go/pkg/genebench"
)

// Params are the fixed accuracy characteristics of one simulated tool.
type Params struct {
	Sensitivity float64 // chance of detecting each reference exon
	Precision   float64 // 1 - chance of emitting a spurious exon
	BoundaryAcc float64 // chance a detected exon keeps exact boundaries
	Speed       float64 // runtime multiplier, lower is slower
}

// ToolParams holds the published per-tool parameters.
var ToolParams = map[string]Params{
	"AUGUSTUS":   {Sensitivity: 0.92, Precision: 0.90, BoundaryAcc: 0.95, Speed: 1.0},
	"SNAP":       {Sensitivity: 0.88, Precision: 0.85, BoundaryAcc: 0.90, Speed: 0.6},
	"GlimmerHMM": {Sensitivity: 0.82, Precision: 0.80, BoundaryAcc: 0.85, Speed: 0.7},
	"Genscan":    {Sensitivity: 0.75, Precision: 0.78, BoundaryAcc: 0.80, Speed: 0.5},
}

// ToolNames lists the tools in canonical display order.
var ToolNames = []string{"AUGUSTUS", "SNAP", "GlimmerHMM", "Genscan"}

// complexityPenalty is subtracted from sensitivity on complex genes.
const complexityPenalty = 0.05

const (
	maxBoundaryShift = 10
	minSpuriousLen   = 50
	maxSpuriousLen   = 150
)

// Predictor simulates one tool. Not safe for concurrent use: it owns a
// seeded random source so runs are reproducible.
type Predictor struct {
	name   string
	params Params
	rng    *rand.Rand
}

// New creates a predictor for a named tool with an explicit random source.
func New(name string, rng *rand.Rand) (*Predictor, error) {
	params, ok := ToolParams[name]
	if !ok {
		return nil, fmt.Errorf("unknown prediction tool: %q", name)
	}
	return &Predictor{name: name, params: params, rng: rng}, nil
}

// Name returns the tool name.
func (p *Predictor) Name() string {
	return p.name
}

// Predict simulates running the tool on one gene. Each reference exon is
// detected with the tool's (complexity-adjusted) sensitivity; detected
// exons keep exact boundaries with probability BoundaryAcc and otherwise
// shift by up to 10 bp, clamped to the region. One spurious exon is added
// with probability 1-Precision.
func (p *Predictor) Predict(gene genebench.Gene) genebench.Prediction {
	start := time.Now()

	effectiveSens := p.params.Sensitivity
	if gene.Complexity == genebench.ComplexityComplex {
		effectiveSens -= complexityPenalty
	}

	var exons []genebench.PredictedExon
	for _, ref := range gene.Exons {
		if p.rng.Float64() >= effectiveSens {
			continue // missed exon
		}

		predStart, predEnd := ref.Start, ref.End
		if p.rng.Float64() >= p.params.BoundaryAcc {
			shift := p.randInt(-maxBoundaryShift, maxBoundaryShift)
			predStart = max(1, ref.Start+shift)
			predEnd = min(gene.RegionLength, ref.End+shift)
		}

		exons = append(exons, genebench.PredictedExon{
			Start: predStart,
			End:   predEnd,
			Score: p.randFloat(0.7, 0.99),
		})
	}

	if p.rng.Float64() > p.params.Precision && gene.RegionLength > 2*maxSpuriousLen+200 {
		fpStart := p.randInt(100, gene.RegionLength-200-maxSpuriousLen)
		exons = append(exons, genebench.PredictedExon{
			Start: fpStart,
			End:   fpStart + p.randInt(minSpuriousLen, maxSpuriousLen),
			Score: p.randFloat(0.5, 0.7),
		})
	}

	runtime := (time.Since(start).Seconds() + p.randFloat(0.1, 0.5)*float64(gene.NumExons)) * p.params.Speed
	memory := 30 + float64(gene.NumExons)*3 + p.randFloat(0, 10)

	return genebench.Prediction{
		Tool:           p.name,
		GeneID:         gene.ID,
		Exons:          exons,
		NumPredicted:   len(exons),
		RuntimeSeconds: runtime,
		MemoryMB:       memory,
	}
}

// PredictAll runs the tool over a whole dataset in gene order.
func (p *Predictor) PredictAll(genes []genebench.Gene) []genebench.Prediction {
	preds := make([]genebench.Prediction, len(genes))
	for i, gene := range genes {
		preds[i] = p.Predict(gene)
	}
	return preds
}

func (p *Predictor) randInt(lo, hi int) int {
	return lo + p.rng.Intn(hi-lo+1)
}

func (p *Predictor) randFloat(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
