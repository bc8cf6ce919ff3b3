package scoring

import (
	"math"

	"github.com/bewertigo/bewertigo/internal/domain"
)

const maxTotalScore = 100.0

// ComputeTotal sums the module scores, rounds to one decimal and caps at 100.
// Module scores are already floored at zero so no lower clip is needed.
func ComputeTotal(modules []domain.ModuleResult) float64 {
	sum := 0.0
	for _, m := range modules {
		sum += m.Score
	}
	return math.Min(round10(sum), maxTotalScore)
}

// ModuleScores indexes module scores by module.
func ModuleScores(modules []domain.ModuleResult) map[domain.Module]float64 {
	scores := make(map[domain.Module]float64, len(modules))
	for _, m := range modules {
		scores[m.Module] = m.Score
	}
	return scores
}
