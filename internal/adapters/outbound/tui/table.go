package tui

import (
	"fmt"
	"strings"

	"github.com/bewertigo/bewertigo/internal/application"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable formats the module scores and top issues as two plain tables.
func RenderTable(report *application.AuditReport) string {
	result := report.Result

	scores := table.NewWriter()
	scores.SetStyle(table.StyleRounded)
	scores.SetTitle(fmt.Sprintf("%s · %s", report.BusinessName, report.City))
	scores.AppendHeader(table.Row{"Module", "Score", "Weight", "Issues"})
	for _, m := range result.Modules {
		scores.AppendRow(table.Row{
			ModuleLabel(m.Module),
			fmt.Sprintf("%.1f", m.Score),
			fmt.Sprintf("%.1f", m.Weight),
			len(m.Issues),
		})
	}
	scores.AppendFooter(table.Row{
		"Total",
		fmt.Sprintf("%.1f", result.TotalScore),
		report.Grade,
		fmt.Sprintf("benchmark %d", result.IndustryBenchmark.AverageScore),
	})

	var b strings.Builder
	b.WriteString(scores.Render())
	b.WriteString("\n")

	if len(result.TopIssues) == 0 {
		return b.String()
	}

	issues := table.NewWriter()
	issues.SetStyle(table.StyleRounded)
	issues.AppendHeader(table.Row{"#", "Severity", "Module", "Issue"})
	for i, issue := range result.TopIssues {
		issues.AppendRow(table.Row{
			i + 1,
			string(issue.Severity),
			ModuleLabel(issue.Module),
			issue.Message,
		})
	}
	b.WriteString("\n")
	b.WriteString(issues.Render())
	b.WriteString("\n")
	return b.String()
}
