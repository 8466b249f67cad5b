package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genebench/genebench-go/pkg/config"
	"github.com/genebench/genebench-go/pkg/logger"
)

const version = "0.2.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "genebench",
	Short: "Simulated gene-prediction benchmark",
	Long: `genebench is a classroom benchmarking simulation for eukaryotic
gene-prediction tools.

It synthesizes fake genomic regions with annotated exon structures,
simulates four named prediction tools against fixed accuracy parameters,
scores the predictions with standard genomics evaluation metrics, and
renders a static HTML dashboard.

A benchmark lives in a workspace directory (local or s3://bucket/prefix):
  data/            generated sequences, annotations, and metadata
  results/         per-tool predictions and evaluation results
  visualizations/  the rendered dashboard`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("genebench version %s\n", version)
	},
}
