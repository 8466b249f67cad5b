package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genebench/genebench-go/pkg/genebench"
)

var inspectTool string

var inspectCmd = &cobra.Command{
	Use:   "inspect <workspace> <gene-id>",
	Short: "Inspect one gene's reference and predicted exons",
	Long: `Show the reference exon structure for one gene and the exons each
tool predicted for it, in region-local coordinates.

Only the selected tools' prediction artifacts are loaded, not the whole
result set.

Examples:
  genebench inspect bench/ ENSG00000000007
  genebench inspect bench/ ENSG00000000007 --tool AUGUSTUS`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := genebench.OpenWorkspace(args[0])
		if err != nil {
			return fmt.Errorf("failed to open workspace: %w", err)
		}
		defer r.Close()

		geneID := args[1]
		genes := r.Genes()
		var gene *genebench.Gene
		for i := range genes {
			if genes[i].ID == geneID {
				gene = &genes[i]
				break
			}
		}
		if gene == nil {
			return fmt.Errorf("gene %s not found in workspace", geneID)
		}

		fmt.Printf("Gene: %s (%s) %s:%d-%d %s\n",
			gene.ID, gene.Name, gene.Chrom, gene.Start, gene.End, gene.Strand)
		fmt.Printf("Complexity: %s | Region: %d bp | Exons: %d\n\n",
			gene.Complexity, gene.RegionLength, gene.NumExons)

		fmt.Println("Reference exons (local coordinates):")
		for i, exon := range gene.Exons {
			fmt.Printf("  %2d: %6d-%-6d (%d bp)\n", i+1, exon.Start, exon.End, exon.Length())
		}

		tools := cfg.Tools.Enabled
		if inspectTool != "" {
			tools = []string{inspectTool}
		}

		for _, tool := range tools {
			preds, err := r.Predictions(tool)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s:\n", tool)
			found := false
			for _, pred := range preds {
				if pred.GeneID != geneID {
					continue
				}
				found = true
				if len(pred.Exons) == 0 {
					fmt.Println("  (no exons predicted)")
				}
				for i, exon := range pred.Exons {
					fmt.Printf("  %2d: %6d-%-6d score %.2f\n", i+1, exon.Start, exon.End, exon.Score)
				}
				fmt.Printf("  runtime %.3fs, memory %.1f MB\n", pred.RuntimeSeconds, pred.MemoryMB)
			}
			if !found {
				fmt.Println("  (no prediction record)")
			}
		}

		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectTool, "tool", "",
		"Show only this tool's predictions")
}
