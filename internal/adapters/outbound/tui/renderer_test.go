package tui_test

import (
	"testing"

	"github.com/bewertigo/bewertigo/internal/adapters/outbound/tui"
	"github.com/bewertigo/bewertigo/internal/application"
	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *application.AuditReport {
	return &application.AuditReport{
		BusinessName: "Plachutta Wollzeile",
		Category:     "restaurant",
		City:         "Wien",
		Grade:        "C",
		Result: domain.AuditResult{
			TotalScore: 68,
			ModuleScores: map[domain.Module]float64{
				domain.ModuleBusinessProfile: 14.5,
				domain.ModuleSocial:          5.1,
			},
			Modules: []domain.ModuleResult{
				{
					Module: domain.ModuleBusinessProfile, Score: 14.5, Weight: 16.6,
					SubMetrics: []domain.SubMetric{
						{Name: "basic_data", Score: 6.2, Points: 8.3},
						{Name: "profile_completeness", Score: 8.3, Points: 8.3},
					},
					Issues: []string{"Beschreibung fehlt oder zu kurz (< 250 Zeichen)"},
				},
				{
					Module: domain.ModuleWebsite, Score: 9, Weight: 16.6, Penalty: 3,
					Issues: []string{"Keine Click-to-Call Funktion - Mobile Nutzer können nicht direkt anrufen!"},
				},
				{
					Module: domain.ModuleSocial, Score: 5.1, Weight: 16.6,
					Issues: []string{"TikTok Profil nicht gefunden - Virale Reichweite ungenutzt!"},
				},
			},
			TopIssues: []domain.TopIssue{
				{
					Module:        domain.ModuleSocial,
					Score:         5.1,
					Severity:      domain.SeverityHigh,
					Message:       "TikTok Profil nicht gefunden - Virale Reichweite ungenutzt!",
					EstimatedLoss: domain.LossMessages[domain.ModuleSocial],
				},
			},
			IndustryBenchmark: domain.Benchmark{AverageScore: 75, Category: "restaurant", City: "Wien", Source: "static"},
		},
		Recommendations: []string{"bewertigo.at/digitalmenu"},
		BelowThreshold:  []domain.Module{domain.ModuleSocial},
	}
}

func TestRenderReport_ContainsTotal(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "68.0 / 100")
	assert.Contains(t, output, "Plachutta Wollzeile")
}

func TestRenderReport_ContainsModuleLabels(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Google Business Profile")
	assert.Contains(t, output, "Social Media Presence")
	assert.Contains(t, output, "Profile Completeness")
	assert.Contains(t, output, "Abzug")
}

func TestRenderReport_ContainsIssuesAndBenchmark(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Top-Probleme")
	assert.Contains(t, output, "TikTok Profil nicht gefunden")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "Branchenschnitt (restaurant, Wien):")
	assert.Contains(t, output, "-7.0")
	assert.Contains(t, output, "unter Mindestwert")
	assert.Contains(t, output, "bewertigo.at/digitalmenu")
}

func TestRenderReport_NoIssues(t *testing.T) {
	report := sampleReport()
	report.Result.TopIssues = nil
	report.BelowThreshold = nil

	output := tui.RenderReport(report)
	assert.Contains(t, output, "Keine Probleme gefunden.")
	assert.NotContains(t, output, "unter Mindestwert")
}

func TestModuleLabel(t *testing.T) {
	tests := map[domain.Module]string{
		domain.ModuleBusinessProfile: "Google Business Profile",
		domain.ModuleReviews:         "Review Sentiment",
		domain.ModuleWebsite:         "Website Performance",
		domain.ModuleMobile:          "Mobile Experience",
		domain.ModuleSocial:          "Social Media Presence",
		domain.ModuleCompetitors:     "Competitor Analysis",
	}
	for m, want := range tests {
		assert.Equal(t, want, tui.ModuleLabel(m))
	}
}

func TestSubMetricLabel(t *testing.T) {
	assert.Equal(t, "Desktop Lcp", tui.SubMetricLabel("desktop_lcp"))
	assert.Equal(t, "Rank", tui.SubMetricLabel("rank"))
}

func TestRenderTable(t *testing.T) {
	output := tui.RenderTable(sampleReport())
	assert.Contains(t, output, "Google Business Profile")
	assert.Contains(t, output, "14.5")
	assert.Contains(t, output, "68.0")
	assert.Contains(t, output, "TikTok Profil nicht gefunden - Virale Reichweite ungenutzt!")
}

func TestRenderTable_NoIssuesSkipsSecondTable(t *testing.T) {
	report := sampleReport()
	report.Result.TopIssues = nil

	output := tui.RenderTable(report)
	assert.NotContains(t, output, "Virale Reichweite")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "Keine gespeicherten Audits")
}

func TestRenderHistory_ShowsTrend(t *testing.T) {
	out := tui.RenderHistory([]domain.AuditRecord{
		{Timestamp: "2026-05-04T08:30:00Z", BusinessName: "Plachutta Wollzeile", TotalScore: 61.2, Grade: "C"},
		{Timestamp: "2026-05-11T08:30:00Z", BusinessName: "Plachutta Wollzeile", TotalScore: 68, Grade: "C"},
		{Timestamp: "2026-05-18T08:30:00Z", BusinessName: "Plachutta Wollzeile", TotalScore: 66.5, Grade: "C"},
	})
	assert.Contains(t, out, "2026-05-04")
	assert.Contains(t, out, "61.2/100")
	assert.Contains(t, out, "↑6.8")
	assert.Contains(t, out, "↓1.5")
}
