package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genebench/genebench-go/pkg/genebench"
)

func summary(f1 float64, runtime float64) genebench.ToolSummary {
	return genebench.ToolSummary{
		Overall: genebench.OverallMetrics{
			ExonSensitivity:      f1,
			ExonPrecision:        f1,
			ExonF1:               f1,
			CodingSensitivity:    f1,
			NoncodingSpecificity: f1,
			MCC:                  f1 - 0.1,
			GenePerfectRate:      f1 / 2,
			GenePartialRate:      f1,
			AvgRuntime:           runtime,
			AvgMemory:            40 + runtime,
		},
		ByComplexity: map[genebench.Complexity]genebench.BucketMetrics{
			genebench.ComplexitySimple:   {ExonF1: f1},
			genebench.ComplexityModerate: {ExonF1: f1 - 0.05},
			genebench.ComplexityComplex:  {ExonF1: f1 - 0.1},
		},
	}
}

func testResults() (genebench.Metadata, genebench.EvaluationResults) {
	md := genebench.Metadata{
		Format:     "genebench",
		Version:    "0.2.0",
		Created:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		RunID:      "test-run",
		Seed:       42,
		TotalGenes: 50,
		TotalExons: 340,
	}
	res := genebench.EvaluationResults{
		RunID:        "test-run",
		IoUThreshold: 0.5,
		Tools: map[string]genebench.ToolSummary{
			"AUGUSTUS": summary(0.90, 1.2),
			"SNAP":     summary(0.84, 0.8),
		},
	}
	return md, res
}

func TestRender(t *testing.T) {
	md, res := testResults()

	out, err := Render(md, res, []string{"AUGUSTUS", "SNAP"})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "AUGUSTUS")
	assert.Contains(t, html, "SNAP")
	assert.Contains(t, html, "test-run")
	assert.Contains(t, html, "0.9000")
	assert.Contains(t, html, "Exon F1 Score")
	// Columns follow the requested order.
	assert.Less(t, strings.Index(html, "AUGUSTUS"), strings.Index(html, "SNAP"))
}

func TestRenderNoTools(t *testing.T) {
	md, _ := testResults()
	_, err := Render(md, genebench.EvaluationResults{}, []string{"AUGUSTUS"})
	assert.Error(t, err)
}

func TestOrderTools(t *testing.T) {
	_, res := testResults()
	res.Tools["Genscan"] = summary(0.7, 2.0)
	res.Tools["GlimmerHMM"] = summary(0.75, 1.5)

	// Listed tools keep their order, unlisted ones append alphabetically,
	// tools without results are skipped.
	got := orderTools(res, []string{"SNAP", "AUGUSTUS", "Missing"})
	assert.Equal(t, []string{"SNAP", "AUGUSTUS", "Genscan", "GlimmerHMM"}, got)
}

func TestBuildRowsBestHighlight(t *testing.T) {
	_, res := testResults()
	tools := orderTools(res, []string{"AUGUSTUS", "SNAP"})
	rows := buildRows(buildChartData(res, tools))

	require.Len(t, rows, 10)

	byLabel := map[string]metricRow{}
	for _, r := range rows {
		byLabel[r.Label] = r
	}

	// AUGUSTUS (column 0) wins F1; SNAP (column 1) wins runtime, where
	// lower is better.
	f1 := byLabel["Exon F1 Score"]
	assert.True(t, f1.Cells[0].Best)
	assert.False(t, f1.Cells[1].Best)

	rt := byLabel["Avg Runtime (s)"]
	assert.False(t, rt.Cells[0].Best)
	assert.True(t, rt.Cells[1].Best)
}
