package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is wrapped by every AuditInput validation failure.
var ErrInvalidInput = errors.New("invalid audit input")

// AuditInput bundles every normalized record the engine consumes for one run.
// Optional records are nil when the collaborator could not supply them.
type AuditInput struct {
	Business    BusinessProfile    `json:"business"               yaml:"business"`
	Performance *PerformanceSample `json:"performance,omitempty"   yaml:"performance,omitempty"`
	ClickToCall *ClickToCallResult `json:"click_to_call,omitempty" yaml:"click_to_call,omitempty"`
	Social      *SocialPresence    `json:"social,omitempty"        yaml:"social,omitempty"`
	Competitors []CompetitorRecord `json:"competitors,omitempty"   yaml:"competitors,omitempty"`
	Category    string             `json:"category,omitempty"      yaml:"category,omitempty"`
	City        string             `json:"city,omitempty"          yaml:"city,omitempty"`
}

// BusinessProfile is the directory listing of the audited business.
type BusinessProfile struct {
	Name            string      `json:"name"                    yaml:"name"`
	Category        string      `json:"category,omitempty"      yaml:"category,omitempty"`
	Phone           string      `json:"phone,omitempty"         yaml:"phone,omitempty"`
	Website         string      `json:"website,omitempty"       yaml:"website,omitempty"`
	HasOpeningHours bool        `json:"opening_hours"           yaml:"opening_hours"`
	Types           []string    `json:"types,omitempty"         yaml:"types,omitempty"`
	Rating          float64     `json:"rating,omitempty"        yaml:"rating,omitempty"`
	TotalReviews    int         `json:"total_reviews,omitempty" yaml:"total_reviews,omitempty"`
	Reviews         []Review    `json:"reviews,omitempty"       yaml:"reviews,omitempty"`
	PhotoCount      int         `json:"photo_count,omitempty"   yaml:"photo_count,omitempty"`
	Location        Coordinates `json:"location"                yaml:"location"`
}

func (b BusinessProfile) HasWebsite() bool { return strings.TrimSpace(b.Website) != "" }
func (b BusinessProfile) HasPhone() bool   { return strings.TrimSpace(b.Phone) != "" }

// Review is a single customer review. Responded is carried through but not scored.
type Review struct {
	Rating    float64 `json:"rating"              yaml:"rating"`
	Text      string  `json:"text,omitempty"      yaml:"text,omitempty"`
	Author    string  `json:"author,omitempty"    yaml:"author,omitempty"`
	Responded bool    `json:"responded,omitempty" yaml:"responded,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// PerformanceSample holds page-speed measurements per strategy.
type PerformanceSample struct {
	Desktop *StrategyMetrics `json:"desktop,omitempty" yaml:"desktop,omitempty"`
	Mobile  *StrategyMetrics `json:"mobile,omitempty"  yaml:"mobile,omitempty"`
}

// StrategyMetrics is one strategy's measurement. LCP and CLS are nil when unmeasured.
type StrategyMetrics struct {
	LCP    *float64   `json:"lcp,omitempty" yaml:"lcp,omitempty"`
	CLS    *float64   `json:"cls,omitempty" yaml:"cls,omitempty"`
	Checks PageChecks `json:"checks"        yaml:"checks"`
}

type PageChecks struct {
	UsesHTTPS    bool `json:"uses_https"     yaml:"uses_https"`
	HasViewport  bool `json:"has_viewport"   yaml:"has_viewport"`
	FontSizeOK   bool `json:"font_size_ok"   yaml:"font_size_ok"`
	TapTargetsOK bool `json:"tap_targets_ok" yaml:"tap_targets_ok"`
}

// DesktopLCP returns the desktop LCP in seconds, or nil.
func (p *PerformanceSample) DesktopLCP() *float64 {
	if p == nil || p.Desktop == nil {
		return nil
	}
	return p.Desktop.LCP
}

// MobileMetrics returns the mobile strategy, or an empty one.
func (p *PerformanceSample) MobileMetrics() StrategyMetrics {
	if p == nil || p.Mobile == nil {
		return StrategyMetrics{}
	}
	return *p.Mobile
}

type ClickToCallResult struct {
	HasClickToCall bool `json:"has_click_to_call" yaml:"has_click_to_call"`
}

// Present reports whether a click-to-call link was detected. Nil means no.
func (c *ClickToCallResult) Present() bool {
	return c != nil && c.HasClickToCall
}

// HandleSource records how a social handle was discovered.
type HandleSource string

const (
	SourceNone    HandleSource = ""
	SourceWebsite HandleSource = "website"
	SourceSearch  HandleSource = "search"
)

func (s HandleSource) Valid() bool {
	switch s {
	case SourceNone, SourceWebsite, SourceSearch:
		return true
	}
	return false
}

// SocialPresence holds the resolved profiles for the supported platforms.
type SocialPresence struct {
	Instagram PlatformPresence `json:"instagram" yaml:"instagram"`
	TikTok    PlatformPresence `json:"tiktok"    yaml:"tiktok"`
}

// PlatformPresence is a single platform's handle and, if retrievable, its data.
type PlatformPresence struct {
	Handle string          `json:"handle,omitempty" yaml:"handle,omitempty"`
	Source HandleSource    `json:"source,omitempty" yaml:"source,omitempty"`
	Data   *EngagementData `json:"data,omitempty"   yaml:"data,omitempty"`
}

func (p PlatformPresence) Found() bool { return strings.TrimSpace(p.Handle) != "" }

// EngagementData is the scraped activity of a platform profile.
// LastPostAgeDays is computed by the caller and nil when unknown.
type EngagementData struct {
	FollowerCount       int      `json:"follower_count"               yaml:"follower_count"`
	PostCount           int      `json:"post_count"                   yaml:"post_count"`
	LastPostAgeDays     *float64 `json:"last_post_age_days,omitempty" yaml:"last_post_age_days,omitempty"`
	EngagementRate      float64  `json:"engagement_rate,omitempty"    yaml:"engagement_rate,omitempty"`
	AverageViewsPerPost float64  `json:"average_views,omitempty"      yaml:"average_views,omitempty"`
}

// CompetitorRecord is a nearby business in the same category.
type CompetitorRecord struct {
	Name        string  `json:"name"                  yaml:"name"`
	Rating      float64 `json:"rating"                yaml:"rating"`
	ReviewCount int     `json:"review_count"          yaml:"review_count"`
	DistanceKm  float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
}

// Validate rejects input the engine is not required to handle.
func (in AuditInput) Validate() error {
	b := in.Business
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: business.name must not be empty", ErrInvalidInput)
	}
	if err := checkRating("business.rating", b.Rating); err != nil {
		return err
	}
	if b.TotalReviews < 0 {
		return fmt.Errorf("%w: business.total_reviews must be >= 0 (got %d)", ErrInvalidInput, b.TotalReviews)
	}
	if b.PhotoCount < 0 {
		return fmt.Errorf("%w: business.photo_count must be >= 0 (got %d)", ErrInvalidInput, b.PhotoCount)
	}
	for i, r := range b.Reviews {
		if err := checkRating(fmt.Sprintf("business.reviews[%d].rating", i), r.Rating); err != nil {
			return err
		}
	}

	if p := in.Performance; p != nil {
		strategies := []struct {
			name string
			m    *StrategyMetrics
		}{{"desktop", p.Desktop}, {"mobile", p.Mobile}}
		for _, st := range strategies {
			name, s := st.name, st.m
			if s == nil {
				continue
			}
			if err := checkOptional("performance."+name+".lcp", s.LCP); err != nil {
				return err
			}
			if err := checkOptional("performance."+name+".cls", s.CLS); err != nil {
				return err
			}
		}
	}

	if s := in.Social; s != nil {
		platforms := []struct {
			name string
			p    PlatformPresence
		}{{"instagram", s.Instagram}, {"tiktok", s.TikTok}}
		for _, pl := range platforms {
			name, p := pl.name, pl.p
			if !p.Source.Valid() {
				return fmt.Errorf("%w: social.%s.source %q (valid: website, search)", ErrInvalidInput, name, p.Source)
			}
			if !p.Found() && (p.Source != "" || p.Data != nil) {
				return fmt.Errorf("%w: social.%s has source or data but no handle", ErrInvalidInput, name)
			}
			if p.Data == nil {
				continue
			}
			d := p.Data
			if d.FollowerCount < 0 || d.PostCount < 0 {
				return fmt.Errorf("%w: social.%s counts must be >= 0", ErrInvalidInput, name)
			}
			if err := checkOptional("social."+name+".data.last_post_age_days", d.LastPostAgeDays); err != nil {
				return err
			}
			if err := checkNonNegative("social."+name+".data.engagement_rate", d.EngagementRate); err != nil {
				return err
			}
			if err := checkNonNegative("social."+name+".data.average_views", d.AverageViewsPerPost); err != nil {
				return err
			}
		}
	}

	for i, c := range in.Competitors {
		field := fmt.Sprintf("competitors[%d]", i)
		if err := checkRating(field+".rating", c.Rating); err != nil {
			return err
		}
		if c.ReviewCount < 0 {
			return fmt.Errorf("%w: %s.review_count must be >= 0 (got %d)", ErrInvalidInput, field, c.ReviewCount)
		}
		if err := checkNonNegative(field+".distance_km", c.DistanceKm); err != nil {
			return err
		}
	}
	return nil
}

func checkRating(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 5 {
		return fmt.Errorf("%w: %s must be between 0 and 5 (got %v)", ErrInvalidInput, field, v)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be a finite number >= 0 (got %v)", ErrInvalidInput, field, v)
	}
	return nil
}

func checkOptional(field string, v *float64) error {
	if v == nil {
		return nil
	}
	return checkNonNegative(field, *v)
}
