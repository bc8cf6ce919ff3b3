package scoring

import (
	"fmt"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// ScoreMobile evaluates mobile load time and four UI checks, each bucket worth
// half of the module weight. A business without a website gets flat partial
// credit instead, and the click-to-call penalty only applies with a website.
func ScoreMobile(b domain.BusinessProfile, perf *domain.PerformanceSample, ctc *domain.ClickToCallResult) domain.ModuleResult {
	weight := domain.Weights.Mobile
	half := weight / 2
	hasWebsite := b.HasWebsite()
	sampled := perf != nil && perf.Mobile != nil
	mobile := perf.MobileMetrics()

	var issues []string

	speed := domain.SubMetric{Name: "mobile_lcp", Points: half}
	switch {
	case !hasWebsite:
		speed.Score = domain.NoWebsiteMobilePoints
		issues = append(issues, "Keine Website - Sie verlieren 80% der mobilen Kunden!")
	case mobile.LCP == nil:
		issues = append(issues, "Mobile Geschwindigkeit konnte nicht gemessen werden")
	case *mobile.LCP <= domain.MobileLCPExcellent:
		speed.Score = half
	case *mobile.LCP <= domain.MobileLCPGood:
		speed.Score = domain.MobileLCPGoodPoints
		issues = append(issues, fmt.Sprintf("Mobile Ladezeit %ss - 80%% der Suchen erfolgen mobil!", formatNumber(*mobile.LCP)))
	default:
		speed.Score = domain.MobileLCPSlowPoints
		issues = append(issues, fmt.Sprintf("Kritische Mobile Ladezeit %ss - Sie verlieren mobile Kunden!", formatNumber(*mobile.LCP)))
	}

	ui := domain.SubMetric{Name: "ui_ux", Points: half}
	checks := mobile.Checks
	stable := mobile.CLS != nil && *mobile.CLS < domain.MaxStableCLS
	// A sample without CLS earns nothing but reports nothing either.
	unstable := !stable && (mobile.CLS != nil || !sampled)
	if hasWebsite {
		checkPoints := half / 4
		if checks.UsesHTTPS {
			ui.Score += checkPoints
		} else {
			issues = append(issues, "Keine HTTPS Verschlüsselung - Unsicher!")
		}
		if stable {
			ui.Score += checkPoints
		} else if unstable {
			issues = append(issues, "Instabile Seitenlayout - Elemente springen beim Laden")
		}
		if checks.FontSizeOK {
			ui.Score += checkPoints
		} else {
			issues = append(issues, "Schrift zu klein - Unleserlich auf mobilen Geräten")
		}
		if checks.TapTargetsOK {
			ui.Score += checkPoints
		} else {
			issues = append(issues, "Buttons zu klein - Schwer klickbar auf Smartphones")
		}
	} else {
		if b.HasPhone() {
			ui.Score += domain.PhoneOnlyUIPoints
		}
		issues = append(issues, "Keine mobile Website - Kunden können Ihr Angebot nicht online sehen")
	}

	var penalty float64
	if hasWebsite && !ctc.Present() {
		penalty = domain.ClickToCallPenalty
		issues = append(issues, "Fehlende Click-to-Call Funktion kostet Sie direkte Kundenanfragen!")
	}

	subs := []domain.SubMetric{speed, ui}
	return domain.ModuleResult{
		Module:     domain.ModuleMobile,
		Score:      clamp(sumSubMetrics(subs)-penalty, 0, weight),
		Weight:     weight,
		Issues:     issues,
		SubMetrics: subs,
		Penalty:    penalty,
		Details: domain.MobileDetails{
			HasWebsite:          hasWebsite,
			MobileLCP:           mobile.LCP,
			CLS:                 mobile.CLS,
			HasSSL:              checks.UsesHTTPS,
			HasClickToCall:      ctc.Present(),
			HasMobileFriendlyUI: checks.FontSizeOK && checks.TapTargetsOK,
		},
	}
}
