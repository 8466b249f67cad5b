package genebench

import "time"

// DefaultIoUThreshold is the exon match acceptance threshold.
const DefaultIoUThreshold = 0.5

// Complexity buckets partition genes by reference exon count.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"   // 1-2 exons
	ComplexityModerate Complexity = "moderate" // 3-10 exons
	ComplexityComplex  Complexity = "complex"  // 11+ exons
)

// Complexities lists the buckets in display order.
var Complexities = []Complexity{ComplexitySimple, ComplexityModerate, ComplexityComplex}

// ComplexityForExonCount assigns a gene to its bucket. The three buckets
// form a total partition of non-negative exon counts.
func ComplexityForExonCount(n int) Complexity {
	switch {
	case n <= 2:
		return ComplexitySimple
	case n <= 10:
		return ComplexityModerate
	default:
		return ComplexityComplex
	}
}

// Interval is a 1-based inclusive coordinate pair in a region's local frame.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Length returns the number of positions covered by the interval.
func (iv Interval) Length() int {
	return iv.End - iv.Start + 1
}

// Gene is one synthetic genomic region with its reference annotation.
// Exon coordinates are local to the region (1-based inclusive).
type Gene struct {
	ID           string     `json:"gene_id"`
	Name         string     `json:"gene_name"`
	Chrom        string     `json:"chrom"`
	Start        int        `json:"start"`
	End          int        `json:"end"`
	Strand       string     `json:"strand"`
	Exons        []Interval `json:"exons"`
	NumExons     int        `json:"num_exons"`
	Complexity   Complexity `json:"complexity"`
	RegionLength int        `json:"sequence_length"`
}

// PredictedExon is one exon call emitted by a prediction tool.
type PredictedExon struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Score float64 `json:"score"`
}

// Interval returns the exon's coordinate pair without the score.
func (pe PredictedExon) Interval() Interval {
	return Interval{Start: pe.Start, End: pe.End}
}

// Prediction is the output of one tool on one gene.
type Prediction struct {
	Tool           string          `json:"tool"`
	GeneID         string          `json:"gene_id"`
	Exons          []PredictedExon `json:"predicted_exons"`
	NumPredicted   int             `json:"num_predicted"`
	RuntimeSeconds float64         `json:"runtime_seconds"`
	MemoryMB       float64         `json:"memory_mb"`
}

// ExonCounts is the exon-level tally for one gene.
type ExonCounts struct {
	TP        int `json:"tp"`
	Predicted int `json:"num_predicted"`
	Reference int `json:"num_reference"`
}

// ConfusionMatrix counts individual positions over a whole region.
type ConfusionMatrix struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}

// GeneMatch is the gene-level classification for one prediction.
type GeneMatch struct {
	Perfect bool `json:"perfect_match"`
	Partial bool `json:"partial_match"`
}

// GeneEvaluation holds all three evaluator outputs for one (gene, tool)
// pair, tagged with the gene's complexity bucket for aggregation.
type GeneEvaluation struct {
	GeneID         string
	Tool           string
	Complexity     Complexity
	Exon           ExonCounts
	Nucleotide     ConfusionMatrix
	Match          GeneMatch
	RuntimeSeconds float64
	MemoryMB       float64
}

// OverallMetrics are the pooled dataset-wide metrics for one tool.
type OverallMetrics struct {
	ExonSensitivity      float64 `json:"exon_sensitivity"`
	ExonPrecision        float64 `json:"exon_precision"`
	ExonF1               float64 `json:"exon_f1"`
	CodingSensitivity    float64 `json:"coding_sensitivity"`
	NoncodingSpecificity float64 `json:"noncoding_specificity"`
	MCC                  float64 `json:"mcc"`
	GenePerfectRate      float64 `json:"gene_perfect_rate"`
	GenePartialRate      float64 `json:"gene_partial_rate"`
	AvgRuntime           float64 `json:"avg_runtime"`
	AvgMemory            float64 `json:"avg_memory"`
}

// BucketMetrics are the per-complexity metrics for one tool.
type BucketMetrics struct {
	ExonF1 float64 `json:"exon_f1"`
}

// ToolSummary is the aggregated result for one tool across the dataset.
type ToolSummary struct {
	Overall      OverallMetrics               `json:"overall"`
	ByComplexity map[Complexity]BucketMetrics `json:"by_complexity"`
}

// Metadata describes a generated dataset.
type Metadata struct {
	Format        string    `json:"format"`
	Version       string    `json:"version"`
	Created       time.Time `json:"created"`
	CreatedBy     string    `json:"created_by"`
	RunID         string    `json:"run_id"`
	Seed          int64     `json:"seed"`
	TotalGenes    int       `json:"total_genes"`
	SimpleGenes   int       `json:"simple"`
	ModerateGenes int       `json:"moderate"`
	ComplexGenes  int       `json:"complex"`
	TotalBases    int64     `json:"total_bp"`
	TotalExons    int       `json:"total_exons"`
	AvgExons      float64   `json:"avg_exons"`
	AvgGeneLength float64   `json:"avg_gene_len"`
	Genes         []Gene    `json:"genes"`
}

// EvaluationResults is the persisted output of the evaluation stage.
type EvaluationResults struct {
	RunID        string                 `json:"run_id"`
	Created      time.Time              `json:"created"`
	IoUThreshold float64                `json:"iou_threshold"`
	Tools        map[string]ToolSummary `json:"tools"`
}

// ArtifactInfo describes one persisted workspace artifact.
type ArtifactInfo struct {
	Path        string    `json:"path"`
	Tool        string    `json:"tool,omitempty"`
	Records     int       `json:"records"`
	SizeBytes   int64     `json:"size_bytes"`
	Compression string    `json:"compression"`
	Checksum    string    `json:"checksum"`
	Created     time.Time `json:"created"`
}
