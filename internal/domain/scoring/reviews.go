package scoring

import (
	"fmt"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// ScoreReviews evaluates the star rating and the review volume, each worth
// half of the module weight.
func ScoreReviews(b domain.BusinessProfile) domain.ModuleResult {
	weight := domain.Weights.Reviews
	half := weight / 2

	var issues []string
	rating := b.Rating
	total := b.TotalReviews

	rs := domain.SubMetric{Name: "rating", Points: half}
	switch {
	case rating >= domain.ExcellentRating:
		rs.Score = half
	case rating >= domain.GoodRating:
		rs.Score = domain.RatingGoodPoints
		issues = append(issues, fmt.Sprintf("Bewertung %s unter 4.5 Sternen - Vertrauensverlust!", formatNumber(rating)))
	case rating >= domain.FairRating:
		rs.Score = domain.RatingFairPoints
		issues = append(issues, fmt.Sprintf("Bewertung %s deutlich unter dem Optimum", formatNumber(rating)))
	case rating > 0:
		issues = append(issues, fmt.Sprintf("Kritische Bewertung %s - Dringender Handlungsbedarf!", formatNumber(rating)))
	default:
		issues = append(issues, "Keine Bewertungen vorhanden")
	}

	vs := domain.SubMetric{Name: "review_volume", Points: half}
	switch {
	case total >= domain.ManyReviews:
		vs.Score = half
	case total >= domain.SolidReviews:
		vs.Score = domain.VolumeSolidPoints
	case total >= domain.SomeReviews:
		vs.Score = domain.VolumeSomePoints
		issues = append(issues, "Wenige Bewertungen - Aktives Bewertungsmanagement empfohlen")
	case total >= domain.HandfulReviews:
		vs.Score = domain.VolumeHandfulPoints
		issues = append(issues, "Sehr wenige Bewertungen - Vertrauen aufbauen durch mehr Rezensionen")
	default:
		issues = append(issues, "Keine oder fast keine Bewertungen vorhanden")
	}

	subs := []domain.SubMetric{rs, vs}
	return domain.ModuleResult{
		Module:     domain.ModuleReviews,
		Score:      clamp(sumSubMetrics(subs), 0, weight),
		Weight:     weight,
		Issues:     issues,
		SubMetrics: subs,
		Details: domain.ReviewDetails{
			Rating:       rating,
			TotalReviews: total,
		},
	}
}
