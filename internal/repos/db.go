package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Persisted analysis history, one row per product URL (latest analysis wins).
CREATE TABLE IF NOT EXISTS analyses(
  product_url   TEXT PRIMARY KEY,
  record_id     TEXT NOT NULL,
  product_title TEXT NOT NULL,
  platform      TEXT NOT NULL,
  category      TEXT NOT NULL,
  decision      TEXT NOT NULL CHECK (decision IN ('buy_now','wait','avoid','research_more')),
  deal_score    INTEGER NOT NULL CHECK (deal_score BETWEEN 0 AND 100),
  ethical_score INTEGER CHECK (ethical_score BETWEEN 0 AND 100),
  current_price NUMERIC NOT NULL CHECK (current_price >= 0),
  currency      TEXT NOT NULL DEFAULT 'INR',
  processing_ms INTEGER NOT NULL DEFAULT 0 CHECK (processing_ms >= 0),
  session_id    TEXT,
  user_agent    TEXT,
  alternatives_json TEXT NOT NULL DEFAULT '[]',
  created_at    TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at    TEXT
);
CREATE INDEX IF NOT EXISTS idx_analyses_category   ON analyses(LOWER(category));
CREATE INDEX IF NOT EXISTS idx_analyses_decision   ON analyses(decision);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`
	_, err := db.Exec(schema)
	return err
}
