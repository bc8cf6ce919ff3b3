package application

import (
	"fmt"
	"strings"

	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/bewertigo/bewertigo/internal/domain/scoring"
	"go.uber.org/zap"
)

// AuditReport wraps the engine result with the business it belongs to and
// the recommended follow-up services for its category.
type AuditReport struct {
	BusinessName    string             `json:"businessName"`
	Category        string             `json:"category"`
	City            string             `json:"city"`
	Grade           string             `json:"grade"`
	Result          domain.AuditResult `json:"result"`
	Recommendations []string           `json:"recommendations"`
	BelowThreshold  []domain.Module    `json:"belowThreshold,omitempty"`
}

// AuditService orchestrates an audit:
// load config -> load input -> validate -> evaluate -> attach recommendations.
type AuditService struct {
	inputLoader  domain.InputLoader
	configLoader domain.ConfigLoader
	logger       *zap.Logger
}

func NewAuditService(inputLoader domain.InputLoader, configLoader domain.ConfigLoader, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		inputLoader:  inputLoader,
		configLoader: configLoader,
		logger:       logger,
	}
}

// LoadConfig reads the run configuration from configDir.
func (s *AuditService) LoadConfig(configDir string) (domain.AuditConfig, error) {
	cfg, err := s.configLoader.Load(configDir)
	if err != nil {
		return domain.AuditConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// AuditFile audits the input document at inputPath. A non-empty city
// overrides the city in the document.
func (s *AuditService) AuditFile(inputPath, configDir, city string) (*AuditReport, error) {
	cfg, err := s.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}

	in, err := s.inputLoader.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}
	if city != "" {
		in.City = city
	}

	return s.Audit(in, cfg)
}

// Audit validates in and runs the scoring engine over it.
func (s *AuditService) Audit(in domain.AuditInput, cfg domain.AuditConfig) (*AuditReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if in.City == "" {
		in.City = cfg.DefaultCity
	}
	if in.Category == "" {
		in.Category = in.Business.Category
	}

	result := scoring.Evaluate(in, cfg.BenchmarkTable())

	for _, m := range result.Modules {
		s.logger.Debug("module scored",
			zap.String("module", string(m.Module)),
			zap.Float64("score", m.Score),
			zap.Int("issues", len(m.Issues)),
		)
	}

	report := &AuditReport{
		BusinessName:    in.Business.Name,
		Category:        in.Category,
		City:            in.City,
		Grade:           result.Grade(),
		Result:          result,
		Recommendations: domain.CallsToAction(in.Category),
		BelowThreshold:  cfg.BelowThreshold(result.ModuleScores),
	}

	s.logger.Info("audit finished",
		zap.String("business", report.BusinessName),
		zap.Float64("total_score", result.TotalScore),
		zap.Int("top_issues", len(result.TopIssues)),
	)
	for _, m := range report.BelowThreshold {
		s.logger.Warn("module below threshold",
			zap.String("module", string(m)),
			zap.Float64("score", result.ModuleScores[m]),
		)
	}

	return report, nil
}

// Benchmark looks up the industry average for category using the configured table.
func (s *AuditService) Benchmark(configDir, category, city string) (domain.Benchmark, error) {
	cfg, err := s.LoadConfig(configDir)
	if err != nil {
		return domain.Benchmark{}, err
	}
	if city == "" {
		city = cfg.DefaultCity
	}
	return scoring.LookupBenchmark(cfg.BenchmarkTable(), category, city), nil
}

// CheckGate returns an error when the report fails the CI gate: a total
// below minTotal or any module below its configured threshold.
func CheckGate(report *AuditReport, minTotal float64) error {
	var failures []string
	if report.Result.TotalScore < minTotal {
		failures = append(failures, fmt.Sprintf("score %.1f is below minimum %.1f", report.Result.TotalScore, minTotal))
	}
	for _, m := range report.BelowThreshold {
		failures = append(failures, fmt.Sprintf("%s %.1f is below its threshold", m, report.Result.ModuleScores[m]))
	}
	if len(failures) == 0 {
		return nil
	}
	return fmt.Errorf("audit gate failed: %s", strings.Join(failures, "; "))
}
