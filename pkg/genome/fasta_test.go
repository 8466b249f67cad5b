package genome

import (
	"strings"
	"testing"

	"github.com/genebench/genebench-go/pkg/genebench"
)

var testGene = genebench.Gene{
	ID:           "ENSG00000000001",
	Name:         "GENE1",
	Chrom:        "chr7",
	Start:        5_000_000,
	End:          5_000_999,
	Strand:       "+",
	Exons:        []genebench.Interval{{Start: 101, End: 250}, {Start: 401, End: 600}},
	NumExons:     2,
	Complexity:   genebench.ComplexitySimple,
	RegionLength: 1000,
}

func TestFormatFASTA(t *testing.T) {
	seq := strings.Repeat("ACGT", 250) // 1000 bp
	out := string(FormatFASTA(testGene, seq))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != ">ENSG00000000001 chr7:5000000-5000999" {
		t.Errorf("header = %q", lines[0])
	}

	// 1000 bp wraps into 14 full lines of 70 and one of 20.
	body := lines[1:]
	if len(body) != 15 {
		t.Fatalf("body lines = %d, want 15", len(body))
	}
	for i, line := range body[:len(body)-1] {
		if len(line) != fastaLineWidth {
			t.Errorf("line %d length = %d, want %d", i, len(line), fastaLineWidth)
		}
	}
	if len(body[len(body)-1]) != 20 {
		t.Errorf("last line length = %d, want 20", len(body[len(body)-1]))
	}
	if strings.Join(body, "") != seq {
		t.Error("wrapped body does not reassemble to the input sequence")
	}
}

func TestFormatGFF(t *testing.T) {
	out := string(FormatGFF(testGene))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "##gff-version 3" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4 (header, gene, 2 exons)", len(lines))
	}

	geneFields := strings.Split(lines[1], "\t")
	if geneFields[0] != "chr7" || geneFields[2] != "gene" ||
		geneFields[3] != "5000000" || geneFields[4] != "5000999" {
		t.Errorf("gene line = %q", lines[1])
	}

	// Local exon (101,250) maps to genomic 5000100-5000249.
	exonFields := strings.Split(lines[2], "\t")
	if exonFields[2] != "exon" || exonFields[3] != "5000100" || exonFields[4] != "5000249" {
		t.Errorf("exon line = %q", lines[2])
	}
	if !strings.Contains(exonFields[8], "Parent=ENSG00000000001") {
		t.Errorf("exon attributes = %q, want Parent tag", exonFields[8])
	}
}
