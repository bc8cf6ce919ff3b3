package scoring_test

import (
	"encoding/json"
	"testing"

	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/bewertigo/bewertigo/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_FullAudit(t *testing.T) {
	result := scoring.Evaluate(fullAudit(), domain.DefaultBenchmarks())

	assert.Equal(t, 68.0, result.TotalScore)
	require.Len(t, result.ModuleScores, 6)
	assert.Equal(t, 14.5, result.ModuleScores[domain.ModuleBusinessProfile])
	assert.InDelta(t, 16.6, result.ModuleScores[domain.ModuleReviews], 0.0001)
	assert.InDelta(t, 9.0, result.ModuleScores[domain.ModuleWebsite], 0.0001)
	assert.InDelta(t, 10.3, result.ModuleScores[domain.ModuleMobile], 0.0001)
	assert.InDelta(t, 5.146, result.ModuleScores[domain.ModuleSocial], 0.0001)
	assert.InDelta(t, 12.5, result.ModuleScores[domain.ModuleCompetitors], 0.0001)

	assert.Equal(t, domain.Benchmark{
		AverageScore: 75,
		Category:     "restaurant",
		City:         "Wien",
		Source:       "static",
	}, result.IndustryBenchmark)

	website, ok := result.Module(domain.ModuleWebsite)
	require.True(t, ok)
	assert.Contains(t, website.Issues, issueWebsiteNoClickToCall)
	mobile, ok := result.Module(domain.ModuleMobile)
	require.True(t, ok)
	assert.Contains(t, mobile.Issues, "Mobile Ladezeit 3s - 80% der Suchen erfolgen mobil!")
}

func TestEvaluate_FullAuditTopIssues(t *testing.T) {
	result := scoring.Evaluate(fullAudit(), domain.DefaultBenchmarks())

	// Nine issues overall; the second profile placeholder falls off.
	require.Len(t, result.TopIssues, domain.TopIssueLimit)

	wantModules := []domain.Module{
		domain.ModuleSocial, domain.ModuleSocial, domain.ModuleSocial,
		domain.ModuleWebsite, domain.ModuleWebsite,
		domain.ModuleMobile,
		domain.ModuleCompetitors,
		domain.ModuleBusinessProfile,
	}
	for i, issue := range result.TopIssues {
		assert.Equal(t, wantModules[i], issue.Module, "issue %d", i)
	}

	assert.Equal(t, domain.SeverityHigh, result.TopIssues[0].Severity)
	assert.Equal(t, domain.SeverityHigh, result.TopIssues[3].Severity)
	assert.Equal(t, domain.SeverityMedium, result.TopIssues[5].Severity)
	assert.Equal(t, domain.SeverityMedium, result.TopIssues[6].Severity)
	assert.Equal(t, domain.SeverityLow, result.TopIssues[7].Severity)
	assert.Equal(t, "Beschreibung fehlt oder zu kurz (< 250 Zeichen)", result.TopIssues[7].Message)

	// Keyword match beats the module fallback.
	assert.Equal(t, domain.ImpactFor("Desktop Ladezeit", domain.ModuleWebsite), result.TopIssues[3].EstimatedLoss)
	assert.Equal(t, domain.LossMessages[domain.ModuleWebsite], result.TopIssues[4].EstimatedLoss)
	assert.Contains(t, result.TopIssues[5].EstimatedLoss, "Click-to-Call-Button")
}

func TestEvaluate_NoWebsite(t *testing.T) {
	result := scoring.Evaluate(noWebsiteAudit(), domain.DefaultBenchmarks())

	assert.Equal(t, 27.5, result.TotalScore)
	assert.Equal(t, 6.2, result.ModuleScores[domain.ModuleBusinessProfile])
	assert.InDelta(t, 9.0, result.ModuleScores[domain.ModuleReviews], 0.0001)
	assert.Equal(t, 0.0, result.ModuleScores[domain.ModuleWebsite])
	assert.InDelta(t, 4.0, result.ModuleScores[domain.ModuleMobile], 0.0001)
	assert.Equal(t, 0.0, result.ModuleScores[domain.ModuleSocial])
	assert.Equal(t, 8.3, result.ModuleScores[domain.ModuleCompetitors])

	for _, m := range result.Modules {
		assert.Zero(t, m.Penalty, "module %s", m.Module)
	}
	assert.Equal(t, 72, result.IndustryBenchmark.AverageScore)
	assert.Equal(t, "Cafe", result.IndustryBenchmark.Category)
}

func TestEvaluate_EmptyInputStaysInBounds(t *testing.T) {
	inputs := []domain.AuditInput{
		{},
		{Business: domain.BusinessProfile{Name: "x", Website: "https://x.at"}},
		{Performance: &domain.PerformanceSample{}, ClickToCall: &domain.ClickToCallResult{}, Social: &domain.SocialPresence{}},
		fullAudit(),
		noWebsiteAudit(),
	}

	for i, in := range inputs {
		result := scoring.Evaluate(in, domain.DefaultBenchmarks())

		assert.GreaterOrEqual(t, result.TotalScore, 0.0, "input %d", i)
		assert.LessOrEqual(t, result.TotalScore, 100.0, "input %d", i)
		assert.Equal(t, scoring.ComputeTotal(result.Modules), result.TotalScore)
		require.Len(t, result.Modules, len(domain.Modules))
		for j, m := range result.Modules {
			assert.Equal(t, domain.Modules[j], m.Module)
			assert.GreaterOrEqual(t, m.Score, 0.0, "input %d module %s", i, m.Module)
			assert.LessOrEqual(t, m.Score, m.Module.Weight(), "input %d module %s", i, m.Module)
			assert.Equal(t, m.Module, m.Details.DetailsFor())
		}
		assert.LessOrEqual(t, len(result.TopIssues), domain.TopIssueLimit)
		for k := 1; k < len(result.TopIssues); k++ {
			assert.LessOrEqual(t, result.TopIssues[k-1].Score, result.TopIssues[k].Score)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	first, err := json.Marshal(scoring.Evaluate(fullAudit(), domain.DefaultBenchmarks()))
	require.NoError(t, err)
	second, err := json.Marshal(scoring.Evaluate(fullAudit(), domain.DefaultBenchmarks()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestEvaluate_CategoryFallsBackToBusiness(t *testing.T) {
	in := noWebsiteAudit()
	in.Category = ""
	in.Business.Category = "Beauty Salon"

	result := scoring.Evaluate(in, domain.DefaultBenchmarks())

	assert.Equal(t, 74, result.IndustryBenchmark.AverageScore)
	assert.Equal(t, "Beauty Salon", result.IndustryBenchmark.Category)
}

func TestComputeTotal_CapsAtHundred(t *testing.T) {
	modules := []domain.ModuleResult{{Score: 60.04}, {Score: 50}}

	assert.Equal(t, 100.0, scoring.ComputeTotal(modules))
	assert.Equal(t, 0.0, scoring.ComputeTotal(nil))
	assert.Equal(t, 3.1, scoring.ComputeTotal([]domain.ModuleResult{{Score: 1.04}, {Score: 2.05}}))
}

func TestRankIssues_StableWithinEqualScores(t *testing.T) {
	modules := []domain.ModuleResult{
		{Module: domain.ModuleReviews, Score: 4, Weight: 16.6, Issues: []string{"r1", "r2"}},
		{Module: domain.ModuleWebsite, Score: 4, Weight: 16.6, Issues: []string{"w1"}},
		{Module: domain.ModuleMobile, Score: 1, Weight: 16.6, Issues: []string{"m1"}},
	}

	issues := scoring.RankIssues(modules)

	var got []string
	for _, i := range issues {
		got = append(got, i.Message)
	}
	assert.Equal(t, []string{"m1", "r1", "r2", "w1"}, got)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
	assert.Equal(t, domain.LossMessages[domain.ModuleReviews], issues[1].EstimatedLoss)
}

func TestRankIssues_EmptyIsNotNil(t *testing.T) {
	issues := scoring.RankIssues(nil)

	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}

func TestLookupBenchmark_UnknownCategoryUsesDefault(t *testing.T) {
	table := domain.DefaultBenchmarks()

	b := scoring.LookupBenchmark(table, "Tattoo Studio", "Graz")

	assert.Equal(t, table.Default(), b.AverageScore)
	assert.Equal(t, 70, b.AverageScore)
	assert.Equal(t, "Tattoo Studio", b.Category)
	assert.Equal(t, "Graz", b.City)
	assert.Equal(t, domain.BenchmarkSourceStatic, b.Source)
}

func TestLookupBenchmark_NormalizesCategory(t *testing.T) {
	b := scoring.LookupBenchmark(domain.DefaultBenchmarks(), "Barber Shop", "Linz")

	assert.Equal(t, 72, b.AverageScore)
	assert.Equal(t, "Barber Shop", b.Category)
}
