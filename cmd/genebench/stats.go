package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/genebench/genebench-go/pkg/genebench"
)

var statsCmd = &cobra.Command{
	Use:   "stats <workspace>",
	Short: "Show statistics for a benchmark workspace",
	Long: `Display dataset statistics and, when present, the evaluation
summary for a benchmark workspace.

Statistics are read from the metadata file without touching the
per-gene sequence or prediction artifacts.

Example:
  genebench stats bench/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := genebench.OpenWorkspace(args[0])
		if err != nil {
			return fmt.Errorf("failed to open workspace: %w", err)
		}
		defer r.Close()

		md := r.Metadata()

		fmt.Println("===========================================")
		fmt.Println("Benchmark Workspace Statistics")
		fmt.Println("===========================================")
		fmt.Println()
		backend := "local"
		if r.Storage().IsS3() {
			backend = "S3"
		}
		fmt.Printf("Workspace: %s (%s)\n", r.Storage().GetBasePath(), backend)
		fmt.Printf("Format: %s v%s\n", md.Format, md.Version)
		fmt.Printf("Created: %s\n", md.Created.Format("2006-01-02 15:04:05"))
		fmt.Printf("Created by: %s\n", md.CreatedBy)
		fmt.Printf("Run ID: %s\n", md.RunID)
		fmt.Printf("Seed: %d\n", md.Seed)
		fmt.Println()

		fmt.Println("Dataset:")
		fmt.Printf("  Genomic regions: %d\n", md.TotalGenes)
		fmt.Printf("  Simple (1-2 exons):    %d\n", md.SimpleGenes)
		fmt.Printf("  Moderate (3-10 exons): %d\n", md.ModerateGenes)
		fmt.Printf("  Complex (11+ exons):   %d\n", md.ComplexGenes)
		fmt.Printf("  Total bases: %d\n", md.TotalBases)
		fmt.Printf("  Total exons: %d\n", md.TotalExons)
		fmt.Printf("  Avg exons/gene: %.1f\n", md.AvgExons)
		fmt.Printf("  Avg region length: %.0f bp\n", md.AvgGeneLength)

		evaluated, err := r.Storage().Exists(genebench.ResultsPath)
		if err != nil {
			return err
		}
		if !evaluated {
			// No evaluation yet; dataset stats alone are still useful.
			return nil
		}
		res, err := r.Results()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("Evaluation (IoU threshold %.2f):\n", res.IoUThreshold)
		fmt.Printf("  %-12s %8s %8s %8s %8s %8s\n",
			"Tool", "Sens", "Prec", "F1", "MCC", "Perfect")
		tools := make([]string, 0, len(res.Tools))
		for tool := range res.Tools {
			tools = append(tools, tool)
		}
		sort.Strings(tools)
		for _, tool := range tools {
			s := res.Tools[tool]
			fmt.Printf("  %-12s %8.4f %8.4f %8.4f %8.4f %8.4f\n",
				tool,
				s.Overall.ExonSensitivity,
				s.Overall.ExonPrecision,
				s.Overall.ExonF1,
				s.Overall.MCC,
				s.Overall.GenePerfectRate)
		}

		return nil
	},
}
