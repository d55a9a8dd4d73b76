package domain

// HistoryEntry is a persisted analysis row in the history sink, keyed by
// product URL: re-analyzing the same URL overwrites the previous row.
type HistoryEntry struct {
	ProductURL       string  `db:"product_url" json:"product_url"`
	RecordID         string  `db:"record_id" json:"record_id"`
	ProductTitle     string  `db:"product_title" json:"product_title"`
	Platform         string  `db:"platform" json:"platform"`
	Category         string  `db:"category" json:"category"`
	Decision         string  `db:"decision" json:"decision"`
	DealScore        int     `db:"deal_score" json:"deal_score"`
	EthicalScore     *int    `db:"ethical_score" json:"ethical_score,omitempty"`
	CurrentPrice     float64 `db:"current_price" json:"current_price"`
	Currency         string  `db:"currency" json:"currency"`
	ProcessingTimeMs int64   `db:"processing_ms" json:"processing_time_ms"`
	SessionID        string  `db:"session_id" json:"session_id"`
	UserAgent        string  `db:"user_agent" json:"user_agent"`
	AlternativesJSON string  `db:"alternatives_json" json:"-"`
	CreatedAt        string  `db:"created_at" json:"created_at"`
	UpdatedAt        string  `db:"updated_at" json:"updated_at,omitempty"`
}
