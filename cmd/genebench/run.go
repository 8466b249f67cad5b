package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/genebench/genebench-go/pkg/genebench"
)

var runCmd = &cobra.Command{
	Use:   "run <workspace>",
	Short: "Run the full benchmark pipeline",
	Long: `Run the full benchmark pipeline in one step: generate a dataset,
run the simulated prediction tools, evaluate their predictions, and
render the dashboard.

Equivalent to:
  genebench generate <workspace>
  genebench predict <workspace>
  genebench evaluate <workspace>
  genebench report <workspace>

Example:
  genebench run bench/ --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := args[0]
		opts := generateOptions(cmd)

		fmt.Println("[1/4] Generating dataset")
		_, md, err := generateDataset(workspace, opts)
		if err != nil {
			return err
		}
		fmt.Printf("  %d regions, %d exons, %d bp\n", md.TotalGenes, md.TotalExons, md.TotalBases)

		fmt.Println("[2/4] Running prediction tools")
		if err := runPredictions(workspace, cfg.Tools.Enabled, opts.Seed); err != nil {
			return err
		}

		fmt.Println("[3/4] Evaluating predictions")
		res, err := runEvaluation(workspace, cfg.Tools.Enabled,
			cfg.Evaluation.IoUThreshold, cfg.Evaluation.Workers)
		if err != nil {
			return err
		}
		for _, tool := range cfg.Tools.Enabled {
			if s, ok := res.Tools[tool]; ok {
				fmt.Printf("  %-12s | F1: %.3f | MCC: %.3f\n",
					tool, s.Overall.ExonF1, s.Overall.MCC)
			}
		}

		fmt.Println("[4/4] Rendering dashboard")
		if err := renderDashboard(workspace); err != nil {
			return err
		}

		fmt.Printf("\nComplete. Dashboard: %s\n", path.Join(workspace, genebench.DashboardPath))
		return nil
	},
}

func init() {
	runCmd.Flags().Int64Var(&genSeed, "seed", 0,
		"Random seed (overrides config)")
	runCmd.Flags().IntVar(&genSimple, "simple", 0,
		"Number of simple genes, 1-2 exons (overrides config)")
	runCmd.Flags().IntVar(&genModerate, "moderate", 0,
		"Number of moderate genes, 3-10 exons (overrides config)")
	runCmd.Flags().IntVar(&genComplex, "complex", 0,
		"Number of complex genes, 11+ exons (overrides config)")
}
