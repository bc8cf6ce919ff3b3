package scoring

import (
	"fmt"

	"github.com/bewertigo/bewertigo/internal/domain"
)

const (
	issueNoOpeningHours = "Keine Öffnungszeiten hinterlegt"
	issueNoPhone        = "Keine Telefonnummer angegeben"
	issueNoCategories   = "Kategorie nicht vollständig"
	issueNoWebsiteLink  = "Keine Website hinterlegt - Sie existieren digital nicht!"
	issueNoServices     = "Dienstleistungen/Produkte nicht aufgelistet"
)

var issueNoDescription = fmt.Sprintf("Beschreibung fehlt oder zu kurz (< %d Zeichen)", domain.DescriptionMinLength)

// ScoreBusinessProfile evaluates completeness of the directory listing.
//
// Half of the weight is basic data split across four checks (opening hours,
// phone, categories, description). A website link alone earns the other
// half. Neither the description nor the services listing is ever supplied by
// the directory, so both checks always fail and always report their issue,
// which caps the module at 14.5.
func ScoreBusinessProfile(b domain.BusinessProfile) domain.ModuleResult {
	weight := domain.Weights.BusinessProfile
	basicPoints := weight / 2 / 4
	websitePoints := weight / 2

	var issues []string
	details := domain.ProfileDetails{}

	basic := domain.SubMetric{Name: "basic_data", Points: weight / 2}
	if b.HasOpeningHours {
		basic.Score += basicPoints
		details.HasOpeningHours = true
	} else {
		issues = append(issues, issueNoOpeningHours)
	}

	if b.HasPhone() {
		basic.Score += basicPoints
		details.HasPhone = true
	} else {
		issues = append(issues, issueNoPhone)
	}

	if len(b.Types) > 0 {
		basic.Score += basicPoints
		details.HasCategories = true
	} else {
		issues = append(issues, issueNoCategories)
	}

	// No description data exists in the listing.
	issues = append(issues, issueNoDescription)

	completeness := domain.SubMetric{Name: "profile_completeness", Points: weight / 2}
	if b.HasWebsite() {
		completeness.Score += websitePoints
		details.HasWebsite = true
	} else {
		issues = append(issues, issueNoWebsiteLink)
	}

	// No services/products data exists in the listing.
	issues = append(issues, issueNoServices)

	subs := []domain.SubMetric{basic, completeness}
	return domain.ModuleResult{
		Module:     domain.ModuleBusinessProfile,
		Score:      clamp(round10(sumSubMetrics(subs)), 0, weight),
		Weight:     weight,
		Issues:     issues,
		SubMetrics: subs,
		Details:    details,
	}
}
