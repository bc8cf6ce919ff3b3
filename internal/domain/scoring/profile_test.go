package scoring_test

import (
	"testing"

	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/bewertigo/bewertigo/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreBusinessProfile_CompleteListingCapsAtPlaceholderCost(t *testing.T) {
	result := scoring.ScoreBusinessProfile(fullAudit().Business)

	assert.Equal(t, domain.ModuleBusinessProfile, result.Module)
	assert.Equal(t, 14.5, result.Score)
	assert.Equal(t, []string{
		"Beschreibung fehlt oder zu kurz (< 250 Zeichen)",
		"Dienstleistungen/Produkte nicht aufgelistet",
	}, result.Issues)

	details, ok := result.Details.(domain.ProfileDetails)
	assert.True(t, ok)
	assert.True(t, details.HasWebsite)
	assert.False(t, details.HasDescription)
	assert.False(t, details.HasServices)
}

func TestScoreBusinessProfile_EmptyListing(t *testing.T) {
	result := scoring.ScoreBusinessProfile(domain.BusinessProfile{Name: "Leer"})

	assert.Equal(t, 0.0, result.Score)
	assert.Len(t, result.Issues, 6)
	assert.Contains(t, result.Issues, "Keine Öffnungszeiten hinterlegt")
	assert.Contains(t, result.Issues, "Keine Telefonnummer angegeben")
	assert.Contains(t, result.Issues, "Kategorie nicht vollständig")
	assert.Contains(t, result.Issues, "Keine Website hinterlegt - Sie existieren digital nicht!")
}

func TestScoreBusinessProfile_WhitespacePhoneCountsAsMissing(t *testing.T) {
	b := fullAudit().Business
	b.Phone = "   "

	result := scoring.ScoreBusinessProfile(b)

	assert.Contains(t, result.Issues, "Keine Telefonnummer angegeben")
	assert.Equal(t, 12.5, result.Score)
}

func TestScoreBusinessProfile_SubMetrics(t *testing.T) {
	result := scoring.ScoreBusinessProfile(fullAudit().Business)

	assert.Len(t, result.SubMetrics, 2)
	assert.Equal(t, "basic_data", result.SubMetrics[0].Name)
	assert.InDelta(t, 6.225, result.SubMetrics[0].Score, 0.0001)
	assert.Equal(t, "profile_completeness", result.SubMetrics[1].Name)
	assert.InDelta(t, 8.3, result.SubMetrics[1].Score, 0.0001)
}
