package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ScoreWeights holds the point weight of each module. The six weights sum to
// roughly 100 and are not configurable.
type ScoreWeights struct {
	BusinessProfile float64
	Reviews         float64
	Website         float64
	Mobile          float64
	Social          float64
	Competitors     float64
}

// Weights is the fixed weighting used by every audit.
var Weights = ScoreWeights{
	BusinessProfile: 16.6,
	Reviews:         16.6,
	Website:         16.6,
	Mobile:          16.6,
	Social:          16.6,
	Competitors:     16.6,
}

// For returns the weight of m, or 0 for an unknown module.
func (w ScoreWeights) For(m Module) float64 {
	switch m {
	case ModuleBusinessProfile:
		return w.BusinessProfile
	case ModuleReviews:
		return w.Reviews
	case ModuleWebsite:
		return w.Website
	case ModuleMobile:
		return w.Mobile
	case ModuleSocial:
		return w.Social
	case ModuleCompetitors:
		return w.Competitors
	}
	return 0
}

// Total sums all six weights.
func (w ScoreWeights) Total() float64 {
	return w.BusinessProfile + w.Reviews + w.Website + w.Mobile + w.Social + w.Competitors
}

// Scoring thresholds. Every band boundary is inclusive at the threshold value.
const (
	DescriptionMinLength = 250

	ExcellentRating = 4.5
	GoodRating      = 4.0
	FairRating      = 3.5

	ManyReviews    = 100
	SolidReviews   = 50
	SomeReviews    = 20
	HandfulReviews = 5

	DesktopLCPExcellent = 1.2
	DesktopLCPGood      = 2.5

	MobileLCPExcellent = 2.5
	MobileLCPGood      = 4.0
	MaxStableCLS       = 0.1

	MinFollowers   = 1000
	EngagementRate = 0.2
	InactivityDays = 30

	MinPhotos = 5

	ClickToCallPenalty = 3.0

	// TopIssueLimit caps the ranked issue list.
	TopIssueLimit = 8
)

// Fixed bucket points inside the website-performance module.
const (
	DesktopLCPPoints     = 12.6
	DesktopLCPGoodPoints = 8.0
	DesktopLCPSlowPoints = 3.0
	PhotoPoints          = 4.0
)

// Fixed credits in the review and mobile modules.
const (
	RatingGoodPoints = 5.0
	RatingFairPoints = 2.0

	VolumeSolidPoints   = 6.0
	VolumeSomePoints    = 4.0
	VolumeHandfulPoints = 2.0

	MobileLCPGoodPoints   = 5.0
	MobileLCPSlowPoints   = 2.0
	NoWebsiteMobilePoints = 2.0
	PhoneOnlyUIPoints     = 2.0
)

// AuditConfig holds run configuration loaded from .bewertigo.yaml.
type AuditConfig struct {
	DefaultCity   string             `yaml:"default_city"   json:"default_city,omitempty"`
	Benchmarks    map[string]int     `yaml:"benchmarks"     json:"benchmarks,omitempty"`
	MinThresholds map[string]float64 `yaml:"min_thresholds" json:"min_thresholds,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() AuditConfig {
	return AuditConfig{}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c AuditConfig) Validate() error {
	for _, k := range sortedKeys(c.Benchmarks) {
		v := c.Benchmarks[k]
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("benchmarks: empty category key")
		}
		if v < 0 || v > 100 {
			return fmt.Errorf("benchmarks[%q] = %d (must be between 0 and 100)", k, v)
		}
	}

	for _, k := range sortedKeys(c.MinThresholds) {
		m := Module(k)
		if !m.Valid() {
			return fmt.Errorf("unknown module %q in min_thresholds", k)
		}
		v := c.MinThresholds[k]
		if v < 0 || v > m.Weight() {
			return fmt.Errorf("min_thresholds[%q] = %.1f (must be between 0 and %.1f)", k, v, m.Weight())
		}
	}
	return nil
}

// BenchmarkTable returns the static benchmark table with configured overrides applied.
func (c AuditConfig) BenchmarkTable() BenchmarkTable {
	if len(c.Benchmarks) == 0 {
		return DefaultBenchmarks()
	}
	return DefaultBenchmarks().With(c.Benchmarks)
}

// BelowThreshold lists the modules whose score is under their configured minimum.
func (c AuditConfig) BelowThreshold(scores map[Module]float64) []Module {
	var below []Module
	for _, m := range Modules {
		floor, ok := c.MinThresholds[string(m)]
		if !ok {
			continue
		}
		if scores[m] < floor {
			below = append(below, m)
		}
	}
	return below
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
