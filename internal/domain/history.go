package domain

import (
	"strings"
	"time"
)

// AuditRecord is one saved audit run, kept to show score trends over time.
type AuditRecord struct {
	Timestamp    string             `json:"timestamp"`
	BusinessName string             `json:"businessName"`
	Category     string             `json:"category"`
	City         string             `json:"city"`
	TotalScore   float64            `json:"totalScore"`
	Grade        string             `json:"grade"`
	ModuleScores map[Module]float64 `json:"moduleScores"`
}

// NewAuditRecord captures the headline numbers of result at the given time.
func NewAuditRecord(business, category, city string, result AuditResult, at time.Time) AuditRecord {
	scores := make(map[Module]float64, len(result.ModuleScores))
	for m, s := range result.ModuleScores {
		scores[m] = s
	}
	return AuditRecord{
		Timestamp:    at.UTC().Format(time.RFC3339),
		BusinessName: business,
		Category:     category,
		City:         city,
		TotalScore:   result.TotalScore,
		Grade:        result.Grade(),
		ModuleScores: scores,
	}
}

// RecordsFor returns the records of one business in their stored order.
// Names match case-insensitively; an empty name returns every record.
func RecordsFor(records []AuditRecord, business string) []AuditRecord {
	if business == "" {
		return records
	}
	var out []AuditRecord
	for _, r := range records {
		if strings.EqualFold(strings.TrimSpace(r.BusinessName), strings.TrimSpace(business)) {
			out = append(out, r)
		}
	}
	return out
}
