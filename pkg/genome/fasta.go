package genome

import (
	"fmt"
	"path"
	"strings"

	"github.com/genebench/genebench-go/pkg/genebench"
)

const fastaLineWidth = 70

// FormatFASTA renders one gene's sequence as a FASTA record. Write-only:
// nothing in the benchmark reads these files back.
func FormatFASTA(gene genebench.Gene, sequence string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, ">%s %s:%d-%d\n", gene.ID, gene.Chrom, gene.Start, gene.End)
	for i := 0; i < len(sequence); i += fastaLineWidth {
		end := i + fastaLineWidth
		if end > len(sequence) {
			end = len(sequence)
		}
		b.WriteString(sequence[i:end])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// FormatGFF renders one gene's annotation as GFF3 in genomic coordinates.
func FormatGFF(gene genebench.Gene) []byte {
	var b strings.Builder
	b.WriteString("##gff-version 3\n")
	fmt.Fprintf(&b, "%s\tgenebench\tgene\t%d\t%d\t.\t%s\t.\tID=%s;Name=%s\n",
		gene.Chrom, gene.Start, gene.End, gene.Strand, gene.ID, gene.Name)
	for i, exon := range gene.Exons {
		// Exons are stored region-local; GFF wants genomic coordinates.
		absStart := exon.Start + gene.Start - 1
		absEnd := exon.End + gene.Start - 1
		fmt.Fprintf(&b, "%s\tgenebench\texon\t%d\t%d\t.\t%s\t.\tID=%s.exon%d;Parent=%s\n",
			gene.Chrom, absStart, absEnd, gene.Strand, gene.ID, i+1, gene.ID)
	}
	return []byte(b.String())
}

// WriteDataset persists a generated dataset through a workspace writer:
// one FASTA and one GFF per gene, plus the metadata file.
func WriteDataset(w *genebench.Writer, ds *Dataset) error {
	storage := w.Storage()

	for _, gene := range ds.Metadata.Genes {
		seq, ok := ds.Sequences[gene.ID]
		if !ok {
			return fmt.Errorf("dataset has no sequence for gene %s", gene.ID)
		}

		fastaPath := path.Join(genebench.SequenceDir, gene.ID+".fa")
		if err := storage.WriteFile(fastaPath, FormatFASTA(gene, seq)); err != nil {
			return fmt.Errorf("failed to write %s: %w", fastaPath, err)
		}

		gffPath := path.Join(genebench.AnnotationDir, gene.ID+".gff")
		if err := storage.WriteFile(gffPath, FormatGFF(gene)); err != nil {
			return fmt.Errorf("failed to write %s: %w", gffPath, err)
		}
	}

	if err := w.WriteMetadata(ds.Metadata); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}
