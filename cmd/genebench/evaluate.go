package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genebench/genebench-go/pkg/genebench"
	"github.com/genebench/genebench-go/pkg/logger"
)

var (
	evalTools     []string
	evalWorkers   int
	evalThreshold float64
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <workspace>",
	Short: "Score persisted predictions against the reference annotation",
	Long: `Score each tool's persisted predictions against the dataset's
reference annotation.

Every gene is evaluated at three levels: exon (greedy IoU matching),
nucleotide (exact per-position confusion matrix), and gene (perfect or
partial structure match). Per-gene results are pooled into one summary
per tool, overall and per complexity bucket, and written to
results/evaluation_results.json.

Genes are independent, so evaluation runs on a worker pool sized from
the CPU topology unless --workers is given.

Examples:
  genebench evaluate bench/
  genebench evaluate bench/ --workers 4 --iou-threshold 0.8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tools := cfg.Tools.Enabled
		if cmd.Flags().Changed("tools") {
			tools = evalTools
		}
		workers := cfg.Evaluation.Workers
		if cmd.Flags().Changed("workers") {
			workers = evalWorkers
		}
		threshold := cfg.Evaluation.IoUThreshold
		if cmd.Flags().Changed("iou-threshold") {
			threshold = evalThreshold
		}

		res, err := runEvaluation(args[0], tools, threshold, workers)
		if err != nil {
			return err
		}

		for _, tool := range tools {
			s, ok := res.Tools[tool]
			if !ok {
				continue
			}
			fmt.Printf("  %-12s | F1: %.3f | Coding Sens: %.3f | Perfect rate: %.3f\n",
				tool, s.Overall.ExonF1, s.Overall.CodingSensitivity, s.Overall.GenePerfectRate)
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringSliceVar(&evalTools, "tools", nil,
		"Tools to evaluate (default: all configured tools)")
	evaluateCmd.Flags().IntVar(&evalWorkers, "workers", 0,
		"Number of evaluation workers (0 = auto-detect CPU count)")
	evaluateCmd.Flags().Float64Var(&evalThreshold, "iou-threshold", genebench.DefaultIoUThreshold,
		"IoU threshold for an exon match")
}

func runEvaluation(workspace string, tools []string, threshold float64, workers int) (genebench.EvaluationResults, error) {
	var res genebench.EvaluationResults

	r, err := genebench.OpenWorkspace(workspace)
	if err != nil {
		return res, err
	}
	defer r.Close()

	md := r.Metadata()
	logger.Info("evaluating predictions",
		zap.Strings("tools", tools),
		zap.Int("genes", len(md.Genes)),
		zap.Float64("iou_threshold", threshold),
	)

	res = genebench.EvaluationResults{
		RunID:        md.RunID,
		Created:      time.Now(),
		IoUThreshold: threshold,
		Tools:        make(map[string]genebench.ToolSummary, len(tools)),
	}

	for _, tool := range tools {
		preds, err := r.Predictions(tool)
		if err != nil {
			return res, err
		}

		summary, err := genebench.EvaluateDataset(md.Genes, preds, threshold, workers)
		if err != nil {
			return res, fmt.Errorf("evaluation failed for %s: %w", tool, err)
		}
		res.Tools[tool] = summary

		logger.Info("tool evaluated",
			zap.String("tool", tool),
			zap.Float64("exon_f1", summary.Overall.ExonF1),
			zap.Float64("mcc", summary.Overall.MCC),
		)
	}

	w, err := genebench.NewWriter(workspace)
	if err != nil {
		return res, err
	}
	if err := w.WriteResults(res); err != nil {
		return res, err
	}
	return res, w.Finalize()
}
