package scoring

import (
	"fmt"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// ScoreWebsite evaluates desktop load time and listing photos, then applies
// the click-to-call penalty when a website exists without a call link.
// Without a website the desktop LCP is treated as unmeasured.
func ScoreWebsite(b domain.BusinessProfile, perf *domain.PerformanceSample, ctc *domain.ClickToCallResult) domain.ModuleResult {
	weight := domain.Weights.Website
	hasWebsite := b.HasWebsite()

	var issues []string

	var lcp *float64
	if hasWebsite {
		lcp = perf.DesktopLCP()
	}

	speed := domain.SubMetric{Name: "desktop_lcp", Points: domain.DesktopLCPPoints}
	switch {
	case lcp == nil:
		issues = append(issues, "Website-Geschwindigkeit konnte nicht gemessen werden")
	case *lcp <= domain.DesktopLCPExcellent:
		speed.Score = domain.DesktopLCPPoints
	case *lcp <= domain.DesktopLCPGood:
		speed.Score = domain.DesktopLCPGoodPoints
		issues = append(issues, fmt.Sprintf("Desktop Ladezeit %ss - Kann verbessert werden", formatNumber(*lcp)))
	default:
		speed.Score = domain.DesktopLCPSlowPoints
		issues = append(issues, fmt.Sprintf("Kritische Desktop Ladezeit %ss - Sie verlieren 7%% Conversion pro Sekunde!", formatNumber(*lcp)))
	}

	photos := domain.SubMetric{Name: "photos", Points: domain.PhotoPoints}
	highQuality := b.PhotoCount >= domain.MinPhotos
	if highQuality {
		photos.Score = domain.PhotoPoints
	} else {
		issues = append(issues, fmt.Sprintf("Nur %d Fotos - Minimum 5 hochwertige Bilder empfohlen", b.PhotoCount))
	}

	var penalty float64
	if hasWebsite && !ctc.Present() {
		penalty = domain.ClickToCallPenalty
		issues = append(issues, "Keine Click-to-Call Funktion - Mobile Nutzer können nicht direkt anrufen!")
	}

	subs := []domain.SubMetric{speed, photos}
	return domain.ModuleResult{
		Module:     domain.ModuleWebsite,
		Score:      clamp(sumSubMetrics(subs)-penalty, 0, weight),
		Weight:     weight,
		Issues:     issues,
		SubMetrics: subs,
		Penalty:    penalty,
		Details: domain.WebsiteDetails{
			DesktopLCP:           lcp,
			PhotoCount:           b.PhotoCount,
			HasHighQualityPhotos: highQuality,
			HasClickToCall:       ctc.Present(),
		},
	}
}
