package scoring

import "github.com/bewertigo/bewertigo/internal/domain"

// ScoreModules runs all six module scorers in domain.Modules order.
func ScoreModules(in domain.AuditInput) []domain.ModuleResult {
	b := in.Business
	return []domain.ModuleResult{
		ScoreBusinessProfile(b),
		ScoreReviews(b),
		ScoreWebsite(b, in.Performance, in.ClickToCall),
		ScoreMobile(b, in.Performance, in.ClickToCall),
		ScoreSocial(in.Social),
		ScoreCompetitors(b, in.Competitors),
	}
}

// Evaluate is the scoring engine. It is a pure function of its inputs: the
// same input always yields the same result. Missing optional records are
// scored through their worst-case branch and never cause an error.
func Evaluate(in domain.AuditInput, benchmarks domain.BenchmarkTable) domain.AuditResult {
	modules := ScoreModules(in)
	category := in.Category
	if category == "" {
		category = in.Business.Category
	}
	return domain.AuditResult{
		TotalScore:        ComputeTotal(modules),
		ModuleScores:      ModuleScores(modules),
		TopIssues:         RankIssues(modules),
		IndustryBenchmark: LookupBenchmark(benchmarks, category, in.City),
		Modules:           modules,
	}
}
