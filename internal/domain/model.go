package domain

// Module identifies one of the six scoring dimensions. The string values are
// the keys callers see in moduleScores and topIssues.
type Module string

const (
	ModuleBusinessProfile Module = "googleBusinessProfile"
	ModuleReviews         Module = "reviewSentiment"
	ModuleWebsite         Module = "websitePerformance"
	ModuleMobile          Module = "mobileExperience"
	ModuleSocial          Module = "socialMediaPresence"
	ModuleCompetitors     Module = "competitorAnalysis"
)

// Modules lists every module in evaluation order. Issue ranking relies on
// this order to break ties between modules with equal scores.
var Modules = []Module{
	ModuleBusinessProfile,
	ModuleReviews,
	ModuleWebsite,
	ModuleMobile,
	ModuleSocial,
	ModuleCompetitors,
}

func (m Module) Valid() bool {
	switch m {
	case ModuleBusinessProfile, ModuleReviews, ModuleWebsite,
		ModuleMobile, ModuleSocial, ModuleCompetitors:
		return true
	}
	return false
}

// Weight returns the fixed point weight of the module.
func (m Module) Weight() float64 {
	return Weights.For(m)
}

// Severity tiers an issue by how much of its module's weight was achieved.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// SeverityFor maps an achieved score against its maximum onto a tier.
func SeverityFor(score, maxScore float64) Severity {
	pct := score / maxScore * 100
	switch {
	case pct < 30:
		return SeverityCritical
	case pct < 60:
		return SeverityHigh
	case pct < 80:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// AuditResult is the engine's complete output for one business.
type AuditResult struct {
	TotalScore        float64            `json:"totalScore"`
	ModuleScores      map[Module]float64 `json:"moduleScores"`
	TopIssues         []TopIssue         `json:"topIssues"`
	IndustryBenchmark Benchmark          `json:"industryBenchmark"`
	Modules           []ModuleResult     `json:"modules"`
}

// Grade converts the total score into a letter grade.
func (r AuditResult) Grade() string { return GradeFor(r.TotalScore) }

func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// BadgeColor maps a total score to a shields.io color name.
func BadgeColor(score float64) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// Module returns the result for m, or false if it is missing.
func (r AuditResult) Module(m Module) (ModuleResult, bool) {
	for _, mr := range r.Modules {
		if mr.Module == m {
			return mr, true
		}
	}
	return ModuleResult{}, false
}

// TopIssue is a ranked issue with its impact narrative attached.
type TopIssue struct {
	Module        Module   `json:"module"`
	Score         float64  `json:"score"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	EstimatedLoss string   `json:"estimatedLoss"`
}

// Benchmark is the static industry average for a business category.
type Benchmark struct {
	AverageScore int    `json:"averageScore"`
	Category     string `json:"category"`
	City         string `json:"city"`
	Source       string `json:"source"`
}

// ModuleResult is the output of a single module scorer.
type ModuleResult struct {
	Module     Module        `json:"module"`
	Score      float64       `json:"score"`
	Weight     float64       `json:"weight"`
	Issues     []string      `json:"issues"`
	SubMetrics []SubMetric   `json:"subMetrics,omitempty"`
	Penalty    float64       `json:"penalty,omitempty"`
	Details    ModuleDetails `json:"details"`
}

// SubMetric is one point bucket inside a module.
type SubMetric struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Points float64 `json:"points"`
}

// ModuleDetails is implemented by exactly one details type per module.
type ModuleDetails interface {
	DetailsFor() Module
}

type ProfileDetails struct {
	HasOpeningHours   bool `json:"hasOpeningHours"`
	HasPhone          bool `json:"hasPhone"`
	HasWebsite        bool `json:"hasWebsite"`
	HasCategories     bool `json:"hasCategories"`
	HasDescription    bool `json:"hasDescription"`
	DescriptionLength int  `json:"descriptionLength"`
	HasServices       bool `json:"hasServices"`
}

func (ProfileDetails) DetailsFor() Module { return ModuleBusinessProfile }

type ReviewDetails struct {
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
}

func (ReviewDetails) DetailsFor() Module { return ModuleReviews }

type WebsiteDetails struct {
	DesktopLCP           *float64 `json:"desktopLCP"`
	PhotoCount           int      `json:"photoCount"`
	HasHighQualityPhotos bool     `json:"hasHighQualityPhotos"`
	HasClickToCall       bool     `json:"hasClickToCall"`
}

func (WebsiteDetails) DetailsFor() Module { return ModuleWebsite }

type MobileDetails struct {
	HasWebsite          bool     `json:"hasWebsite"`
	MobileLCP           *float64 `json:"mobileLCP"`
	CLS                 *float64 `json:"cls"`
	HasSSL              bool     `json:"hasSSL"`
	HasClickToCall      bool     `json:"hasClickToCall"`
	HasMobileFriendlyUI bool     `json:"hasMobileFriendlyUI"`
}

func (MobileDetails) DetailsFor() Module { return ModuleMobile }

type SocialDetails struct {
	Instagram PlatformDetails `json:"instagram"`
	TikTok    PlatformDetails `json:"tiktok"`
}

func (SocialDetails) DetailsFor() Module { return ModuleSocial }

// IsActive reports whether any platform posted within the inactivity window.
func (d SocialDetails) IsActive() bool {
	return d.Instagram.Active || d.TikTok.Active
}

type PlatformDetails struct {
	Found             bool         `json:"found"`
	Source            HandleSource `json:"source,omitempty"`
	DataAvailable     bool         `json:"dataAvailable"`
	Followers         int          `json:"followers"`
	Engagement        float64      `json:"engagement"`
	DaysSinceActivity *float64     `json:"daysSinceActivity"`
	Active            bool         `json:"active"`
}

type CompetitorDetails struct {
	Rank           int                  `json:"rank"`
	FieldSize      int                  `json:"fieldSize"`
	Fitness        float64              `json:"fitness"`
	TopCompetitors []CompetitorStanding `json:"competitors"`
}

func (CompetitorDetails) DetailsFor() Module { return ModuleCompetitors }

// CompetitorStanding is an entrant in the local ranking.
type CompetitorStanding struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	DistanceKm  float64 `json:"distanceKm,omitempty"`
	Fitness     float64 `json:"fitness"`
	Rank        int     `json:"rank"`
	IsSelf      bool    `json:"isSelf"`
}
