// Package genome synthesizes benchmark datasets: fake genomic regions with
// annotated exon structures, written out as FASTA sequences, GFF3
// annotations, and a JSON metadata file.
package genome

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/genebench/genebench-go/pkg/genebench"
)

// Options controls dataset synthesis. All randomness flows from Seed, so
// the same options always produce the same dataset.
type Options struct {
	SimpleGenes   int
	ModerateGenes int
	ComplexGenes  int
	Seed          int64
	GCContent     float64
	FlankLength   int
}

// DefaultOptions returns the published benchmark protocol's distribution:
// 50 regions split 10 simple / 25 moderate / 15 complex.
func DefaultOptions() Options {
	return Options{
		SimpleGenes:   10,
		ModerateGenes: 25,
		ComplexGenes:  15,
		Seed:          42,
		GCContent:     0.42,
		FlankLength:   1500,
	}
}

// Dataset is a generated benchmark dataset. Sequences are kept out of the
// metadata so the persisted JSON stays small.
type Dataset struct {
	Metadata  genebench.Metadata
	Sequences map[string]string
}

var chromosomes = []string{"chr1", "chr2", "chr7", "chr11", "chr17", "chr21", "chr22"}

// exon length and intron gap ranges, in bp
const (
	minExonLen   = 50
	maxExonLen   = 500
	minIntronLen = 100
	maxIntronLen = 3000
)

// bucketSpec is one slice of the complexity distribution.
type bucketSpec struct {
	minExons int
	maxExons int
	count    int
}

// Generate synthesizes a dataset from the given options.
func Generate(opts Options) (*Dataset, error) {
	if opts.SimpleGenes < 0 || opts.ModerateGenes < 0 || opts.ComplexGenes < 0 {
		return nil, fmt.Errorf("gene counts must be non-negative")
	}
	if opts.GCContent < 0 || opts.GCContent > 1 {
		return nil, fmt.Errorf("gc content must be in [0,1], got %v", opts.GCContent)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	buckets := []bucketSpec{
		{minExons: 1, maxExons: 2, count: opts.SimpleGenes},
		{minExons: 3, maxExons: 10, count: opts.ModerateGenes},
		{minExons: 11, maxExons: 25, count: opts.ComplexGenes},
	}

	ds := &Dataset{
		Sequences: make(map[string]string),
	}

	geneNum := 0
	var totalBases int64
	totalExons := 0

	for _, bucket := range buckets {
		for i := 0; i < bucket.count; i++ {
			geneNum++
			gene, seq := synthesizeGene(rng, geneNum, bucket, opts)
			ds.Metadata.Genes = append(ds.Metadata.Genes, gene)
			ds.Sequences[gene.ID] = seq

			totalBases += int64(gene.RegionLength)
			totalExons += gene.NumExons
		}
	}

	md := &ds.Metadata
	md.Format = "genebench"
	md.Version = "0.2.0"
	md.Created = time.Now()
	md.CreatedBy = "genebench-go"
	md.RunID = uuid.NewString()
	md.Seed = opts.Seed
	md.TotalGenes = geneNum
	md.SimpleGenes = opts.SimpleGenes
	md.ModerateGenes = opts.ModerateGenes
	md.ComplexGenes = opts.ComplexGenes
	md.TotalBases = totalBases
	md.TotalExons = totalExons
	if geneNum > 0 {
		md.AvgExons = float64(totalExons) / float64(geneNum)
		md.AvgGeneLength = float64(totalBases) / float64(geneNum)
	}

	return ds, nil
}

// synthesizeGene builds one region: flank, alternating exons and introns,
// flank. Exon coordinates are stored in the region-local 1-based frame.
func synthesizeGene(rng *rand.Rand, geneNum int, bucket bucketSpec, opts Options) (genebench.Gene, string) {
	chrom := chromosomes[rng.Intn(len(chromosomes))]
	absStart := randInt(rng, 1_000_000, 50_000_000)
	numExons := randInt(rng, bucket.minExons, bucket.maxExons)

	exons := make([]genebench.Interval, 0, numExons)
	pos := absStart + opts.FlankLength
	for i := 0; i < numExons; i++ {
		exonLen := randInt(rng, minExonLen, maxExonLen)
		exons = append(exons, genebench.Interval{Start: pos, End: pos + exonLen - 1})
		pos += exonLen + randInt(rng, minIntronLen, maxIntronLen)
	}

	absEnd := exons[len(exons)-1].End + opts.FlankLength
	regionLength := absEnd - absStart + 1

	// Shift exons into the local frame
	local := make([]genebench.Interval, len(exons))
	for i, e := range exons {
		local[i] = genebench.Interval{
			Start: e.Start - absStart + 1,
			End:   e.End - absStart + 1,
		}
	}

	strand := "+"
	if rng.Intn(2) == 1 {
		strand = "-"
	}

	gene := genebench.Gene{
		ID:           fmt.Sprintf("ENSG%011d", geneNum),
		Name:         fmt.Sprintf("GENE%d", geneNum),
		Chrom:        chrom,
		Start:        absStart,
		End:          absEnd,
		Strand:       strand,
		Exons:        local,
		NumExons:     numExons,
		Complexity:   genebench.ComplexityForExonCount(numExons),
		RegionLength: regionLength,
	}

	return gene, randomSequence(rng, regionLength, opts.GCContent)
}

// randomSequence generates a DNA string of the given length with the
// requested GC content, up to rounding.
func randomSequence(rng *rand.Rand, length int, gcContent float64) string {
	gc := int(float64(length) * gcContent)
	at := length - gc

	seq := make([]byte, 0, length)
	for i := 0; i < gc/2; i++ {
		seq = append(seq, 'G', 'C')
	}
	for i := 0; i < at/2; i++ {
		seq = append(seq, 'A', 'T')
	}
	bases := []byte("ATGC")
	for len(seq) < length {
		seq = append(seq, bases[rng.Intn(len(bases))])
	}
	seq = seq[:length]

	rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})

	return string(seq)
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
