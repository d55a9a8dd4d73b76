package services

import (
	"fmt"
	"net/url"
	"time"

	"dealscope/internal/analytics"
	"dealscope/internal/classify"
	"dealscope/internal/domain"
	applog "dealscope/internal/log"
	"dealscope/internal/provider"
	"dealscope/internal/repos"
	"dealscope/internal/scoring"
	"dealscope/internal/validate"

	"github.com/google/uuid"
)

type AnalysisService struct {
	Provider provider.SnapshotProvider
	Engine   *scoring.Engine
	Agg      *analytics.Aggregator
	History  *repos.HistoryRepo
}

func NewAnalysisService(p provider.SnapshotProvider, eng *scoring.Engine, agg *analytics.Aggregator, hist *repos.HistoryRepo) *AnalysisService {
	return &AnalysisService{Provider: p, Engine: eng, Agg: agg, History: hist}
}

// Analyze runs the full pipeline for one product URL: classify, fetch a
// snapshot, score, then record the finished analysis in the aggregator and
// the history sink. The aggregator append is authoritative; a sink failure is
// logged and swallowed so the in-memory statistics never disagree with the
// window.
func (s *AnalysisService) Analyze(rawURL, sessionID, userAgent string) (domain.AnalysisResult, error) {
	start := time.Now()

	productURL, ok := validate.ProductURL(rawURL)
	if !ok {
		return domain.AnalysisResult{}, domain.NewError(domain.ErrInvalidInput, "not a valid product url: %q", rawURL)
	}

	cls, err := classify.URL(productURL)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	snap, err := s.Provider.FetchSnapshot(productURL, cls.Platform, cls.Category)
	if err != nil {
		return domain.AnalysisResult{}, domain.NewError(domain.ErrUpstreamUnavailable, "snapshot provider: %v", err)
	}

	scored, err := s.Engine.Score(snap)
	if err != nil {
		// Never recorded: the analysis did not complete scoring.
		return domain.AnalysisResult{}, err
	}

	ethical := scored.Scores.EthicalScore
	rec := domain.AnalysisRecord{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		ProductURL:       productURL,
		ProductTitle:     snap.Title,
		Category:         cls.Category,
		EthicalScore:     &ethical,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		SessionID:        sessionID,
		UserAgent:        userAgent,
	}

	if _, err := s.Agg.Append(rec); err != nil {
		return domain.AnalysisResult{}, err
	}

	result := domain.AnalysisResult{
		Platform: cls.Platform,
		Category: cls.Category,
		Snapshot: snap,
		Trend:    scored.Trend,
		Scores:   scored.Scores,
		Decision: scored.Decision,
		RecordID: rec.ID,
	}

	// Fire-and-forget persistence; analytics already counted this analysis.
	if s.History != nil {
		entry := domain.HistoryEntry{
			ProductURL:       rec.ProductURL,
			RecordID:         rec.ID,
			ProductTitle:     rec.ProductTitle,
			Platform:         cls.Platform,
			Category:         cls.Category,
			Decision:         string(scored.Decision.Kind),
			DealScore:        scored.Scores.DealScore,
			EthicalScore:     rec.EthicalScore,
			CurrentPrice:     snap.CurrentPrice,
			Currency:         snap.Currency,
			ProcessingTimeMs: rec.ProcessingTimeMs,
			SessionID:        sessionID,
			UserAgent:        userAgent,
		}
		if err := s.History.Upsert(entry, alternatives(cls, snap, scored.Decision)); err != nil {
			applog.Error(nil, "history.persist.fail", err, map[string]any{"product_url": productURL})
		}
	}

	return result, nil
}

// alternatives suggests substitute products when the decision steers the
// shopper away from this one. Suggestions are search links, not live offers.
func alternatives(cls classify.Result, snap domain.ProductSnapshot, d domain.Decision) []domain.AlternativeProduct {
	if d.Kind != domain.Avoid && d.Kind != domain.ResearchMore {
		return nil
	}
	price := snap.CurrentPrice
	if snap.MarketAverage > 0 && snap.MarketAverage < price {
		price = snap.MarketAverage
	}
	q := url.QueryEscape(snap.Category)
	out := []domain.AlternativeProduct{
		{
			Title:    fmt.Sprintf("Top-rated %s on Amazon", snap.Category),
			URL:      "https://www.amazon.in/s?k=" + q,
			Price:    price,
			Platform: "Amazon",
		},
	}
	if cls.Platform != "Flipkart" {
		out = append(out, domain.AlternativeProduct{
			Title:    fmt.Sprintf("Compare %s on Flipkart", snap.Category),
			URL:      "https://www.flipkart.com/search?q=" + q,
			Price:    price,
			Platform: "Flipkart",
		})
	}
	return out
}
