// Package report renders the static HTML benchmark dashboard.
package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"

	"github.com/genebench/genebench-go/pkg/genebench"
)

//go:embed dashboard.html.tmpl
var templates embed.FS

// metricCell is one table cell; the best value in a row is highlighted.
type metricCell struct {
	Value string
	Best  bool
}

// metricRow is one metric across all tools.
type metricRow struct {
	Label string
	Cells []metricCell
}

// chartData is the payload handed to the chart.js snippets.
type chartData struct {
	Tools      []string  `json:"tools"`
	ExonSens   []float64 `json:"exon_sens"`
	ExonPrec   []float64 `json:"exon_prec"`
	ExonF1     []float64 `json:"exon_f1"`
	NucSens    []float64 `json:"nuc_sens"`
	NucSpec    []float64 `json:"nuc_spec"`
	MCC        []float64 `json:"mcc"`
	Perfect    []float64 `json:"gene_perfect"`
	Partial    []float64 `json:"gene_partial"`
	Runtime    []float64 `json:"runtime"`
	Memory     []float64 `json:"memory"`
	SimpleF1   []float64 `json:"simple_f1"`
	ModerateF1 []float64 `json:"moderate_f1"`
	ComplexF1  []float64 `json:"complex_f1"`
}

type pageData struct {
	Metadata genebench.Metadata
	Tools    []string
	Rows     []metricRow
	Charts   template.JS
}

// Render produces the dashboard HTML for a dataset and its evaluation
// results. toolOrder fixes column order; tools missing from the results
// are skipped, and evaluated tools not listed are appended alphabetically.
func Render(md genebench.Metadata, res genebench.EvaluationResults, toolOrder []string) ([]byte, error) {
	tools := orderTools(res, toolOrder)
	if len(tools) == 0 {
		return nil, fmt.Errorf("no evaluated tools to report")
	}

	charts := buildChartData(res, tools)
	chartsJSON, err := json.Marshal(charts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart data: %w", err)
	}

	page := pageData{
		Metadata: md,
		Tools:    tools,
		Rows:     buildRows(charts),
		Charts:   template.JS(chartsJSON),
	}

	tmpl, err := template.ParseFS(templates, "dashboard.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}

	return buf.Bytes(), nil
}

func orderTools(res genebench.EvaluationResults, toolOrder []string) []string {
	var tools []string
	seen := make(map[string]bool)
	for _, t := range toolOrder {
		if _, ok := res.Tools[t]; ok {
			tools = append(tools, t)
			seen[t] = true
		}
	}

	var extra []string
	for t := range res.Tools {
		if !seen[t] {
			extra = append(extra, t)
		}
	}
	sort.Strings(extra)

	return append(tools, extra...)
}

func buildChartData(res genebench.EvaluationResults, tools []string) chartData {
	d := chartData{Tools: tools}
	for _, t := range tools {
		s := res.Tools[t]
		d.ExonSens = append(d.ExonSens, s.Overall.ExonSensitivity)
		d.ExonPrec = append(d.ExonPrec, s.Overall.ExonPrecision)
		d.ExonF1 = append(d.ExonF1, s.Overall.ExonF1)
		d.NucSens = append(d.NucSens, s.Overall.CodingSensitivity)
		d.NucSpec = append(d.NucSpec, s.Overall.NoncodingSpecificity)
		d.MCC = append(d.MCC, s.Overall.MCC)
		d.Perfect = append(d.Perfect, s.Overall.GenePerfectRate)
		d.Partial = append(d.Partial, s.Overall.GenePartialRate)
		d.Runtime = append(d.Runtime, s.Overall.AvgRuntime)
		d.Memory = append(d.Memory, s.Overall.AvgMemory)
		d.SimpleF1 = append(d.SimpleF1, s.ByComplexity[genebench.ComplexitySimple].ExonF1)
		d.ModerateF1 = append(d.ModerateF1, s.ByComplexity[genebench.ComplexityModerate].ExonF1)
		d.ComplexF1 = append(d.ComplexF1, s.ByComplexity[genebench.ComplexityComplex].ExonF1)
	}
	return d
}

func buildRows(d chartData) []metricRow {
	rows := []struct {
		label       string
		values      []float64
		format      string
		lowerBetter bool
	}{
		{"Exon Sensitivity", d.ExonSens, "%.4f", false},
		{"Exon Precision", d.ExonPrec, "%.4f", false},
		{"Exon F1 Score", d.ExonF1, "%.4f", false},
		{"Coding Sensitivity", d.NucSens, "%.4f", false},
		{"Non-coding Specificity", d.NucSpec, "%.4f", false},
		{"MCC", d.MCC, "%.4f", false},
		{"Gene Perfect Rate", d.Perfect, "%.4f", false},
		{"Gene Partial Rate", d.Partial, "%.4f", false},
		{"Avg Runtime (s)", d.Runtime, "%.3f", true},
		{"Avg Memory (MB)", d.Memory, "%.1f", true},
	}

	out := make([]metricRow, 0, len(rows))
	for _, r := range rows {
		best := bestIndex(r.values, r.lowerBetter)
		row := metricRow{Label: r.label}
		for i, v := range r.values {
			row.Cells = append(row.Cells, metricCell{
				Value: fmt.Sprintf(r.format, v),
				Best:  i == best,
			})
		}
		out = append(out, row)
	}
	return out
}

func bestIndex(values []float64, lowerBetter bool) int {
	best := 0
	for i, v := range values {
		if lowerBetter && v < values[best] {
			best = i
		}
		if !lowerBetter && v > values[best] {
			best = i
		}
	}
	return best
}
