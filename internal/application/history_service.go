package application

import (
	"fmt"
	"time"

	"github.com/bewertigo/bewertigo/internal/domain"
	"go.uber.org/zap"
)

// HistoryService saves audit runs and reads back per-business trends.
type HistoryService struct {
	store  domain.AuditHistory
	logger *zap.Logger
}

func NewHistoryService(store domain.AuditHistory, logger *zap.Logger) *HistoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryService{store: store, logger: logger}
}

// Record appends the report to the history kept under dir.
func (s *HistoryService) Record(dir string, report *AuditReport, at time.Time) (domain.AuditRecord, error) {
	rec := domain.NewAuditRecord(report.BusinessName, report.Category, report.City, report.Result, at)
	if err := s.store.Save(dir, rec); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("saving history: %w", err)
	}
	s.logger.Debug("audit recorded",
		zap.String("business", rec.BusinessName),
		zap.Float64("total_score", rec.TotalScore),
	)
	return rec, nil
}

// Trend returns the saved records for business, oldest first.
// An empty business returns all records.
func (s *HistoryService) Trend(dir, business string) ([]domain.AuditRecord, error) {
	records, err := s.store.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return domain.RecordsFor(records, business), nil
}
