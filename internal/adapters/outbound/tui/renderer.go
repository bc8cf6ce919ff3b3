package tui

import (
	"fmt"
	"strings"

	"github.com/bewertigo/bewertigo/internal/application"
	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	lime    = lipgloss.Color("#A3E635")
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	orange  = lipgloss.Color("#FB923C")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lime,
		"C":  warning,
		"D":  orange,
		"F":  danger,
	}

	severityColors = map[domain.Severity]lipgloss.Color{
		domain.SeverityCritical: danger,
		domain.SeverityHigh:     orange,
		domain.SeverityMedium:   warning,
		domain.SeverityLow:      dim,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	moduleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	lossStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true).Width(60)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats an audit report for terminal output.
func RenderReport(report *application.AuditReport) string {
	var b strings.Builder
	result := report.Result

	// ── Header ──
	grade := report.Grade
	title := headerStyle.Render("bewertigo")
	subtitle := dimStyle.Render("Online-Präsenz Score · " + report.BusinessName)
	scoreColorStyle := lipgloss.NewStyle().Bold(true).Foreground(gradeColor(grade))
	scoreLine := scoreColorStyle.Render(fmt.Sprintf("%.1f / 100", result.TotalScore)) +
		"  " + scoreColorStyle.Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreLine))
	b.WriteString("\n\n")

	renderBenchmark(&b, result)
	b.WriteString("\n")

	// ── Modules ──
	for i, m := range result.Modules {
		renderModule(&b, m)
		if i < len(result.Modules)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Top issues ──
	if len(result.TopIssues) > 0 {
		b.WriteString("  " + titleStyle.Render("Top-Probleme") + "\n\n")
		for _, issue := range result.TopIssues {
			renderIssue(&b, issue)
		}
	} else {
		b.WriteString("  " + passStyle.Render("Keine Probleme gefunden.") + "\n")
	}

	if len(report.BelowThreshold) > 0 {
		b.WriteString("\n")
		for _, m := range report.BelowThreshold {
			fmt.Fprintf(&b, "  %s %s\n", failStyle.Render("✗"), dimStyle.Render(ModuleLabel(m)+" unter Mindestwert"))
		}
	}

	// ── Recommendations ──
	if len(report.Recommendations) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Empfehlungen") + "\n")
		for _, link := range report.Recommendations {
			fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("→"), link)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderBenchmark(b *strings.Builder, result domain.AuditResult) {
	bm := result.IndustryBenchmark
	label := bm.Category
	if bm.City != "" {
		label += ", " + bm.City
	}
	diff := result.TotalScore - float64(bm.AverageScore)

	var delta string
	switch {
	case diff > 0:
		delta = passStyle.Render(fmt.Sprintf("+%.1f", diff))
	case diff < 0:
		delta = failStyle.Render(fmt.Sprintf("%.1f", diff))
	default:
		delta = dimStyle.Render("±0")
	}

	fmt.Fprintf(b, "  %s %s  %s\n",
		dimStyle.Render(fmt.Sprintf("Branchenschnitt (%s):", label)),
		titleStyle.Render(fmt.Sprintf("%d", bm.AverageScore)),
		delta,
	)
}

func renderModule(b *strings.Builder, m domain.ModuleResult) {
	pct := percentOf(m.Score, m.Weight)
	color := scoreColor(pct)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%.1f", m.Score))
	weight := dimStyle.Render(fmt.Sprintf("/ %.1f", m.Weight))

	name := moduleStyle.Render(padRight(ModuleLabel(m.Module), 26))
	fmt.Fprintf(b, "  %s %s  %s %s\n", name, coloredBar(pct, 20), scoreText, weight)

	for _, sm := range m.SubMetrics {
		renderSubMetric(b, sm)
	}
	if m.Penalty > 0 {
		fmt.Fprintf(b, "    %s %s %s\n", failStyle.Render("−"), padRight("Abzug", 28), dimStyle.Render(fmt.Sprintf("-%.1f", m.Penalty)))
	}
}

func renderSubMetric(b *strings.Builder, sm domain.SubMetric) {
	pct := percentOf(sm.Score, sm.Points)

	var icon string
	switch {
	case pct >= 80:
		icon = passStyle.Render("●")
	case pct >= 40:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	score := dimStyle.Render(fmt.Sprintf("%.1f/%.1f", sm.Score, sm.Points))
	fmt.Fprintf(b, "    %s %s %s\n", icon, padRight(SubMetricLabel(sm.Name), 28), score)
}

func renderIssue(b *strings.Builder, issue domain.TopIssue) {
	tag := severityTag(issue.Severity)
	fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(ModuleLabel(issue.Module)))
	fmt.Fprintf(b, "             %s\n", issue.Message)
	if issue.EstimatedLoss != "" {
		for _, line := range strings.Split(lossStyle.Render(issue.EstimatedLoss), "\n") {
			fmt.Fprintf(b, "             %s\n", line)
		}
	}
}

func severityTag(s domain.Severity) string {
	color, ok := severityColors[s]
	if !ok {
		color = dim
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(padRight(string(s), 8))
}

func percentOf(score, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return score / total * 100
}

func coloredBar(pct float64, width int) string {
	filled := max(0, min(int(pct)*width/100, width))
	empty := width - filled

	color := scoreColor(pct)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 80:
		return success
	case pct >= 60:
		return lime
	case pct >= 30:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

// RenderHistory lists saved audits oldest first with the change against the
// previous run.
func RenderHistory(records []domain.AuditRecord) string {
	if len(records) == 0 {
		return "  " + dimStyle.Render("Keine gespeicherten Audits gefunden.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Verlauf") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, r := range records {
		date := r.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(r.TotalScore)).
			Render(fmt.Sprintf("%5.1f/100", r.TotalScore))

		line := fmt.Sprintf("  %s  %s  %-2s  %s",
			dimStyle.Render(date),
			scoreStyled,
			r.Grade,
			r.BusinessName,
		)

		if i > 0 {
			diff := r.TotalScore - records[i-1].TotalScore
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.1f", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.1f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
