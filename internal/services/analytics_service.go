package services

import (
	"dealscope/internal/analytics"
	"dealscope/internal/domain"
	"dealscope/internal/repos"
)

type AnalyticsService struct {
	Agg     *analytics.Aggregator
	History *repos.HistoryRepo
}

func NewAnalyticsService(agg *analytics.Aggregator, hist *repos.HistoryRepo) *AnalyticsService {
	return &AnalyticsService{Agg: agg, History: hist}
}

// Statistics returns the aggregate stats and the most recent matching
// records, newest first.
func (s *AnalyticsService) Statistics(categoryFilter string, limit int) (domain.AggregateStats, []domain.AnalysisRecord) {
	return s.Agg.Stats(), s.Agg.Recent(categoryFilter, limit)
}

// Record appends an externally completed record; exposed for callers that
// finish an analysis out of band. Returns the lifetime total.
func (s *AnalyticsService) Record(rec domain.AnalysisRecord) (int64, error) {
	return s.Agg.Append(rec)
}

// HistoryFor looks up the persisted analysis for a product URL along with its
// decoded alternatives.
func (s *AnalyticsService) HistoryFor(productURL string) (domain.HistoryEntry, []domain.AlternativeProduct, error) {
	e, err := s.History.Get(productURL)
	if err != nil {
		return domain.HistoryEntry{}, nil, err
	}
	alts, err := s.History.Alternatives(e)
	if err != nil {
		return e, nil, err
	}
	return e, alts, nil
}

func (s *AnalyticsService) RecentHistory(limit int) ([]domain.HistoryEntry, error) {
	return s.History.Recent(limit)
}
