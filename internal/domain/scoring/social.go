package scoring

import (
	"fmt"
	"math"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// Credit shares of the module weight.
const (
	profileShare  = 0.25
	followerShare = 0.25
	fallbackShare = 0.12
	lowShare      = 0.06
)

type platformMessages struct {
	dataMissing  string
	notFound     string
	lowEngage    string
	inactiveTmpl string
}

var (
	instagramMessages = platformMessages{
		dataMissing:  "Instagram Profil gefunden, aber Daten nicht abrufbar",
		notFound:     "Instagram Profil nicht auf Website verlinkt - Chance verpasst!",
		lowEngage:    "Instagram: Niedrige Interaktionsrate - Content erreicht Zielgruppe nicht",
		inactiveTmpl: "Instagram inaktiv seit %d Tagen - Wirkt wie geschlossenes Geschäft!",
	}
	tiktokMessages = platformMessages{
		dataMissing:  "TikTok Profil gefunden, aber Daten nicht abrufbar",
		notFound:     "TikTok Profil nicht gefunden - Virale Reichweite ungenutzt!",
		lowEngage:    "TikTok: Niedrige Aufrufzahlen - Videos werden nicht gesehen",
		inactiveTmpl: "TikTok inaktiv seit %d Tagen",
	}
)

const issueNoSocial = "Keine Social Media Präsenz - Sie existieren für die neue Generation nicht!"

// ScoreSocial evaluates Instagram and TikTok presence. Without any handle the
// module scores zero with a single issue. Otherwise availability and
// engagement are each capped at half of the module weight.
func ScoreSocial(sp *domain.SocialPresence) domain.ModuleResult {
	weight := domain.Weights.Social
	half := weight / 2

	result := domain.ModuleResult{
		Module: domain.ModuleSocial,
		Weight: weight,
	}

	if sp == nil || (!sp.Instagram.Found() && !sp.TikTok.Found()) {
		result.Issues = []string{issueNoSocial}
		result.Details = domain.SocialDetails{}
		return result
	}

	var issues []string
	details := domain.SocialDetails{
		Instagram: platformDetails(sp.Instagram, false),
		TikTok:    platformDetails(sp.TikTok, true),
	}

	availability := domain.SubMetric{Name: "availability", Points: half}
	availability.Score += scoreAvailability(sp.Instagram, instagramMessages, weight, &issues)
	availability.Score += scoreAvailability(sp.TikTok, tiktokMessages, weight, &issues)
	availability.Score = math.Min(availability.Score, half)

	engagement := domain.SubMetric{Name: "engagement", Points: half}
	if sp.Instagram.Found() {
		engagement.Score += scoreEngagement(sp.Instagram.Data, false, instagramMessages, weight, &issues)
	}
	if sp.TikTok.Found() {
		engagement.Score += scoreEngagement(sp.TikTok.Data, true, tiktokMessages, weight, &issues)
	}
	engagement.Score = math.Min(engagement.Score, half)

	result.SubMetrics = []domain.SubMetric{availability, engagement}
	result.Score = clamp(sumSubMetrics(result.SubMetrics), 0, weight)
	result.Issues = issues
	result.Details = details
	return result
}

func scoreAvailability(p domain.PlatformPresence, msg platformMessages, weight float64, issues *[]string) float64 {
	switch {
	case p.Found() && p.Data != nil:
		pts := weight * profileShare
		if p.Data.FollowerCount >= domain.MinFollowers {
			pts += weight * followerShare
		}
		return pts
	case p.Found():
		*issues = append(*issues, msg.dataMissing)
		return weight * fallbackShare
	default:
		*issues = append(*issues, msg.notFound)
		return 0
	}
}

// scoreEngagement only runs for platforms with post data. Video platforms
// compare average views against the expected reach of their followers.
func scoreEngagement(d *domain.EngagementData, video bool, msg platformMessages, weight float64, issues *[]string) float64 {
	if d == nil || d.PostCount == 0 {
		return 0
	}

	var pts float64
	if engaged(d, video) {
		pts += weight * profileShare
	} else {
		pts += weight * lowShare
		*issues = append(*issues, msg.lowEngage)
	}

	switch {
	case d.LastPostAgeDays == nil:
		pts += weight * lowShare
	case *d.LastPostAgeDays <= domain.InactivityDays:
		pts += weight * fallbackShare
	default:
		*issues = append(*issues, fmt.Sprintf(msg.inactiveTmpl, int(math.Round(*d.LastPostAgeDays))))
	}
	return pts
}

func engaged(d *domain.EngagementData, video bool) bool {
	if video {
		expected := float64(d.FollowerCount) * domain.EngagementRate
		return d.AverageViewsPerPost >= expected
	}
	return d.EngagementRate >= domain.EngagementRate
}

func platformDetails(p domain.PlatformPresence, video bool) domain.PlatformDetails {
	pd := domain.PlatformDetails{
		Found:  p.Found(),
		Source: p.Source,
	}
	if p.Data == nil {
		return pd
	}
	pd.DataAvailable = true
	pd.Followers = p.Data.FollowerCount
	pd.Engagement = p.Data.EngagementRate
	if video {
		pd.Engagement = p.Data.AverageViewsPerPost
	}
	pd.DaysSinceActivity = p.Data.LastPostAgeDays
	pd.Active = p.Data.LastPostAgeDays != nil && *p.Data.LastPostAgeDays <= domain.InactivityDays
	return pd
}
