package repos

import (
	"encoding/json"

	"dealscope/internal/domain"

	"github.com/jmoiron/sqlx"
)

type HistoryRepo struct{ db *sqlx.DB }

func NewHistoryRepo(db *sqlx.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// Upsert writes the latest analysis for a product URL, replacing any earlier
// row for the same URL.
func (r *HistoryRepo) Upsert(e domain.HistoryEntry, alternatives []domain.AlternativeProduct) error {
	if alternatives == nil {
		alternatives = []domain.AlternativeProduct{}
	}
	b, err := json.Marshal(alternatives)
	if err != nil {
		return err
	}
	e.AlternativesJSON = string(b)

	_, err = r.db.NamedExec(`
  INSERT INTO analyses(
    product_url, record_id, product_title, platform, category, decision,
    deal_score, ethical_score, current_price, currency, processing_ms,
    session_id, user_agent, alternatives_json
  ) VALUES (
    :product_url, :record_id, :product_title, :platform, :category, :decision,
    :deal_score, :ethical_score, :current_price, :currency, :processing_ms,
    :session_id, :user_agent, :alternatives_json
  )
  ON CONFLICT(product_url) DO UPDATE SET
    record_id = excluded.record_id,
    product_title = excluded.product_title,
    platform = excluded.platform,
    category = excluded.category,
    decision = excluded.decision,
    deal_score = excluded.deal_score,
    ethical_score = excluded.ethical_score,
    current_price = excluded.current_price,
    currency = excluded.currency,
    processing_ms = excluded.processing_ms,
    session_id = excluded.session_id,
    user_agent = excluded.user_agent,
    alternatives_json = excluded.alternatives_json,
    updated_at = CURRENT_TIMESTAMP
`, e)
	return err
}

func (r *HistoryRepo) Get(productURL string) (domain.HistoryEntry, error) {
	var e domain.HistoryEntry
	err := r.db.Get(&e, `
  SELECT
    product_url, record_id, product_title, platform, category, decision,
    deal_score, ethical_score, current_price, currency, processing_ms,
    COALESCE(session_id,'') AS session_id, COALESCE(user_agent,'') AS user_agent,
    alternatives_json, created_at, COALESCE(updated_at,'') AS updated_at
  FROM analyses
  WHERE product_url = ?
`, productURL)
	return e, err
}

func (r *HistoryRepo) Recent(limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var out []domain.HistoryEntry
	err := r.db.Select(&out, `
  SELECT
    product_url, record_id, product_title, platform, category, decision,
    deal_score, ethical_score, current_price, currency, processing_ms,
    COALESCE(session_id,'') AS session_id, COALESCE(user_agent,'') AS user_agent,
    alternatives_json, created_at, COALESCE(updated_at,'') AS updated_at
  FROM analyses
  ORDER BY COALESCE(updated_at, created_at) DESC
  LIMIT ?
`, limit)
	return out, err
}

// Alternatives decodes the typed alternatives payload of an entry.
func (r *HistoryRepo) Alternatives(e domain.HistoryEntry) ([]domain.AlternativeProduct, error) {
	var out []domain.AlternativeProduct
	if e.AlternativesJSON == "" {
		return out, nil
	}
	err := json.Unmarshal([]byte(e.AlternativesJSON), &out)
	return out, err
}
