package scoring

import (
	"math"
	"strconv"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// round10 rounds to one decimal place.
func round10(v float64) float64 {
	return math.Round(v*10) / 10
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// formatNumber prints a float in its shortest form: 3 -> "3", 1.50 -> "1.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sumSubMetrics adds up the earned points of every bucket.
func sumSubMetrics(sms []domain.SubMetric) float64 {
	total := 0.0
	for _, sm := range sms {
		total += sm.Score
	}
	return total
}
