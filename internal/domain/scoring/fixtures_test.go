package scoring_test

import "github.com/bewertigo/bewertigo/internal/domain"

func ptr(v float64) *float64 { return &v }

// fullAudit is a city-centre restaurant with every record supplied.
func fullAudit() domain.AuditInput {
	return domain.AuditInput{
		Business: domain.BusinessProfile{
			Name:            "Plachutta Wollzeile",
			Category:        "restaurant",
			Phone:           "+43 1 5121577",
			Website:         "https://www.plachutta.at",
			HasOpeningHours: true,
			Types:           []string{"restaurant", "food"},
			Rating:          4.5,
			TotalReviews:    1542,
			PhotoCount:      12,
			Location:        domain.Coordinates{Lat: 48.2085, Lng: 16.3751},
		},
		Performance: &domain.PerformanceSample{
			Desktop: &domain.StrategyMetrics{LCP: ptr(1.5)},
			Mobile: &domain.StrategyMetrics{
				LCP: ptr(3.0),
				CLS: ptr(0.08),
				Checks: domain.PageChecks{
					UsesHTTPS:    true,
					HasViewport:  true,
					FontSizeOK:   true,
					TapTargetsOK: true,
				},
			},
		},
		ClickToCall: &domain.ClickToCallResult{HasClickToCall: false},
		Social: &domain.SocialPresence{
			Instagram: domain.PlatformPresence{
				Handle: "plachutta",
				Source: domain.SourceWebsite,
				Data: &domain.EngagementData{
					FollowerCount:   500,
					PostCount:       20,
					LastPostAgeDays: ptr(45),
					EngagementRate:  0.10,
				},
			},
		},
		Competitors: []domain.CompetitorRecord{
			{Name: "Figlmüller", Rating: 4.3, ReviewCount: 800, DistanceKm: 0.4},
			{Name: "Zum Schwarzen Kameel", Rating: 4.6, ReviewCount: 1200, DistanceKm: 0.6},
			{Name: "Gasthaus Pöschl", Rating: 4.2, ReviewCount: 600, DistanceKm: 0.3},
		},
		Category: "restaurant",
		City:     "Wien",
	}
}

// noWebsiteAudit is a small café with a listing but nothing else.
func noWebsiteAudit() domain.AuditInput {
	return domain.AuditInput{
		Business: domain.BusinessProfile{
			Name:            "Kaffeehaus Hummel",
			Category:        "Cafe",
			Phone:           "+43 1 4055314",
			HasOpeningHours: true,
			Types:           []string{"cafe"},
			Rating:          4.2,
			TotalReviews:    38,
			PhotoCount:      3,
		},
		Category: "Cafe",
		City:     "Wien",
	}
}
