package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genebench/genebench-go/pkg/genebench"
	"github.com/genebench/genebench-go/pkg/logger"
	"github.com/genebench/genebench-go/pkg/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <workspace>",
	Short: "Render the HTML benchmark dashboard",
	Long: `Render the static HTML dashboard from a workspace's evaluation
results into visualizations/dashboard.html.

Example:
  genebench report bench/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := renderDashboard(args[0]); err != nil {
			return err
		}
		fmt.Printf("Dashboard: %s\n", path.Join(args[0], genebench.DashboardPath))
		return nil
	},
}

func renderDashboard(workspace string) error {
	r, err := genebench.OpenWorkspace(workspace)
	if err != nil {
		return err
	}
	defer r.Close()

	res, err := r.Results()
	if err != nil {
		return err
	}

	html, err := report.Render(r.Metadata(), res, cfg.Tools.Enabled)
	if err != nil {
		return err
	}

	w, err := genebench.NewWriter(workspace)
	if err != nil {
		return err
	}
	if err := w.WriteDashboard(html); err != nil {
		return err
	}
	if err := w.Finalize(); err != nil {
		return err
	}

	logger.Info("dashboard rendered",
		zap.String("workspace", workspace),
		zap.Int("tools", len(res.Tools)),
	)
	return nil
}
