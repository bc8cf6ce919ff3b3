package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/bewertigo/bewertigo/internal/domain"
)

const (
	ratingFitnessShare = 70.0
	volumeFitnessShare = 30.0
	volumeSaturation   = 100.0
	topCompetitorCount = 3
)

type rankBand struct {
	multiplier float64
	issue      string
}

// rankBands is indexed by rank-1. Anything past the last band uses rankTail.
var rankBands = []rankBand{
	{1.0, "Marktführer in Ihrer Region - Position halten!"},
	{0.75, "2. Platz - Knapp am Spitzenplatz vorbei"},
	{0.5, "3. Platz - Sie verlieren Sichtbarkeit an die Konkurrenz"},
	{0.3, "4. Platz - Ihre Top-Konkurrenten ziehen mehr Aufmerksamkeit auf sich"},
}

const (
	rankTailMultiplier = 0.15
	rankTailTmpl       = "Platz %d von %d - Ihre Konkurrenten dominieren den Markt!"
	issueNoCompetitors = "Keine Konkurrenten in der Nähe gefunden"
)

// Fitness is the 0-100 composite used to rank entrants against each other.
// Rating contributes up to 70 points and review volume up to 30, saturating
// at 100 reviews.
func Fitness(rating float64, reviewCount int) float64 {
	volume := math.Min(float64(reviewCount)/volumeSaturation*volumeFitnessShare, volumeFitnessShare)
	return rating/5*ratingFitnessShare + volume
}

// ScoreCompetitors ranks the business among its nearby competitors and scores
// it by rank.
//
// Entrants are sorted by descending fitness with a stable sort over the
// business followed by competitors in input order, so ties keep the business
// ahead of competitors and competitors in the order supplied.
func ScoreCompetitors(b domain.BusinessProfile, competitors []domain.CompetitorRecord) domain.ModuleResult {
	weight := domain.Weights.Competitors
	result := domain.ModuleResult{
		Module: domain.ModuleCompetitors,
		Weight: weight,
	}

	if len(competitors) == 0 {
		result.Score = weight / 2
		result.Issues = []string{issueNoCompetitors}
		result.Details = domain.CompetitorDetails{}
		return result
	}

	field := make([]domain.CompetitorStanding, 0, len(competitors)+1)
	field = append(field, domain.CompetitorStanding{
		Name:        b.Name,
		Rating:      b.Rating,
		ReviewCount: b.TotalReviews,
		Fitness:     Fitness(b.Rating, b.TotalReviews),
		IsSelf:      true,
	})
	for _, c := range competitors {
		field = append(field, domain.CompetitorStanding{
			Name:        c.Name,
			Rating:      c.Rating,
			ReviewCount: c.ReviewCount,
			DistanceKm:  c.DistanceKm,
			Fitness:     Fitness(c.Rating, c.ReviewCount),
		})
	}

	sort.SliceStable(field, func(i, j int) bool {
		return field[i].Fitness > field[j].Fitness
	})

	var self domain.CompetitorStanding
	top := make([]domain.CompetitorStanding, 0, topCompetitorCount)
	for i := range field {
		field[i].Rank = i + 1
		if field[i].IsSelf {
			self = field[i]
			continue
		}
		if len(top) < topCompetitorCount {
			top = append(top, field[i])
		}
	}

	multiplier := rankTailMultiplier
	issue := fmt.Sprintf(rankTailTmpl, self.Rank, len(field))
	if self.Rank <= len(rankBands) {
		band := rankBands[self.Rank-1]
		multiplier = band.multiplier
		issue = band.issue
	}

	result.Score = clamp(round10(weight*multiplier), 0, weight)
	result.Issues = []string{issue}
	result.SubMetrics = []domain.SubMetric{{Name: "rank", Score: result.Score, Points: weight}}
	result.Details = domain.CompetitorDetails{
		Rank:           self.Rank,
		FieldSize:      len(field),
		Fitness:        self.Fitness,
		TopCompetitors: top,
	}
	return result
}
