package domain

import "time"

// Availability of a product at snapshot time.
type Availability string

const (
	InStock             Availability = "in_stock"
	OutOfStock          Availability = "out_of_stock"
	Limited             Availability = "limited"
	UnknownAvailability Availability = "unknown"
)

// EthicalSignals are the optional sustainability flags a provider may attach
// to a snapshot. An absent flag means "not known", not "known false".
type EthicalSignals struct {
	SustainabilityCertified bool `json:"sustainability_certified"`
	FairLabor               bool `json:"fair_labor"`
	RecycledMaterials       bool `json:"recycled_materials"`
}

// ProductSnapshot is a point-in-time description of a product, produced by a
// snapshot provider. Immutable once returned; the scoring run that requested
// it is its only consumer.
type ProductSnapshot struct {
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand,omitempty"`
	CurrentPrice  float64         `json:"current_price"`
	OriginalPrice float64         `json:"original_price,omitempty"` // 0 = unknown; >= CurrentPrice when set
	Currency      string          `json:"currency"`
	MarketAverage float64         `json:"market_average,omitempty"` // 0 = unknown
	Rating        float64         `json:"rating"`                   // 0-5
	ReviewCount   int             `json:"review_count"`
	Availability  Availability    `json:"availability"`
	Signals       *EthicalSignals `json:"signals,omitempty"`
}

// DataCertainty mirrors confidence in the deal score, not an independent
// measurement.
type DataCertainty string

const (
	CertaintyHigh   DataCertainty = "high"
	CertaintyMedium DataCertainty = "medium"
	CertaintyLow    DataCertainty = "low"
)

type PriceTrend struct {
	Current       float64       `json:"current"`
	Original      float64       `json:"original,omitempty"`
	Currency      string        `json:"currency"`
	MarketAverage float64       `json:"market_average,omitempty"`
	DataCertainty DataCertainty `json:"data_certainty"`
}

type TrustLevel string

const (
	TrustHigh   TrustLevel = "high"
	TrustMedium TrustLevel = "medium"
	TrustLow    TrustLevel = "low"
)

type TrustScore struct {
	DataReliability int        `json:"data_reliability"` // 0-100
	OverallTrust    TrustLevel `json:"overall_trust"`
}

// ScoreBundle is always complete: a partial bundle is invalid.
type ScoreBundle struct {
	DealScore    int        `json:"deal_score"`    // 0-100
	EthicalScore int        `json:"ethical_score"` // 0-100
	Trust        TrustScore `json:"trust"`
}

type DecisionKind string

const (
	BuyNow       DecisionKind = "buy_now"
	Wait         DecisionKind = "wait"
	Avoid        DecisionKind = "avoid"
	ResearchMore DecisionKind = "research_more"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

type Decision struct {
	Kind           DecisionKind `json:"decision"`
	Recommendation string       `json:"recommendation"`
	Confidence     float64      `json:"confidence"` // 0-1, mirrors DealScore/100
	Urgency        Urgency      `json:"urgency"`
	Warnings       []string     `json:"warnings,omitempty"`
}

// AnalysisRecord is the unit appended to the aggregator and persisted to the
// history sink. Created exactly once per completed analysis; immutable after.
type AnalysisRecord struct {
	ID               string    `db:"id" json:"id"`
	Timestamp        time.Time `db:"created_at" json:"timestamp"`
	ProductURL       string    `db:"product_url" json:"product_url"`
	ProductTitle     string    `db:"product_title" json:"product_title"`
	Category         string    `db:"category" json:"category"`
	EthicalScore     *int      `db:"ethical_score" json:"ethical_score,omitempty"` // nil when scoring was skipped
	ProcessingTimeMs int64     `db:"processing_ms" json:"processing_time_ms"`
	SessionID        string    `db:"session_id" json:"session_id"`
	UserAgent        string    `db:"user_agent" json:"user_agent"`
}

// AggregateStats is derived from the live window plus the lifetime counter,
// never persisted separately.
type AggregateStats struct {
	TotalAnalyses           int64    `json:"total_analyses"`
	AnalysesToday           int      `json:"analyses_today"`
	AverageProcessingTimeMs float64  `json:"average_processing_time_ms"`
	DistinctCategoryCount   int      `json:"distinct_category_count"`
	AverageEthicalScore     *float64 `json:"average_ethical_score"` // nil when no record in the window carries a score
}

// AlternativeProduct is the closed record stored in the history sink's
// alternatives column (the source schema allowed arbitrary payloads here).
type AlternativeProduct struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Price    float64 `json:"price"`
	Platform string  `json:"platform"`
}

// AnalysisResult is what Analyze returns to the HTTP boundary.
type AnalysisResult struct {
	Platform string          `json:"platform"`
	Category string          `json:"category"`
	Snapshot ProductSnapshot `json:"snapshot"`
	Trend    PriceTrend      `json:"price_trend"`
	Scores   ScoreBundle     `json:"scores"`
	Decision Decision        `json:"decision"`
	RecordID string          `json:"record_id"`
}
