package scoring

import (
	"sort"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// RankIssues flattens every module's issues into severity-tagged records,
// sorts them by ascending module score and keeps the first eight.
//
// Modules are flattened in the order given and the sort is stable, so
// issues of equally scored modules keep module order and then issue order.
func RankIssues(modules []domain.ModuleResult) []domain.TopIssue {
	var all []domain.TopIssue
	for _, m := range modules {
		severity := domain.SeverityFor(m.Score, m.Weight)
		for _, issue := range m.Issues {
			all = append(all, domain.TopIssue{
				Module:        m.Module,
				Score:         m.Score,
				Severity:      severity,
				Message:       issue,
				EstimatedLoss: domain.ImpactFor(issue, m.Module),
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score < all[j].Score
	})

	if len(all) > domain.TopIssueLimit {
		all = all[:domain.TopIssueLimit]
	}
	if all == nil {
		all = []domain.TopIssue{}
	}
	return all
}
