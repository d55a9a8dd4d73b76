package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dealscope/internal/domain"
	"dealscope/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE analyses(
	  product_url TEXT PRIMARY KEY,
	  record_id TEXT NOT NULL,
	  product_title TEXT NOT NULL,
	  platform TEXT NOT NULL,
	  category TEXT NOT NULL,
	  decision TEXT NOT NULL,
	  deal_score INTEGER NOT NULL,
	  ethical_score INTEGER,
	  current_price NUMERIC NOT NULL,
	  currency TEXT NOT NULL DEFAULT 'INR',
	  processing_ms INTEGER NOT NULL DEFAULT 0,
	  session_id TEXT,
	  user_agent TEXT,
	  alternatives_json TEXT NOT NULL DEFAULT '[]',
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	  updated_at TEXT
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func entry(url, recordID string, deal int) domain.HistoryEntry {
	return domain.HistoryEntry{
		ProductURL:   url,
		RecordID:     recordID,
		ProductTitle: "Pixel Something",
		Platform:     "Amazon",
		Category:     "Smartphones",
		Decision:     "wait",
		DealScore:    deal,
		CurrentPrice: 29999,
		Currency:     "INR",
	}
}

func TestHistoryUpsertKeyedByURL(t *testing.T) {
	db := memdb(t)
	repo := repos.NewHistoryRepo(db)

	const u = "https://www.amazon.com/dp/pixel"
	if err := repo.Upsert(entry(u, "r1", 70), nil); err != nil {
		t.Fatal(err)
	}
	// Second analysis of the same URL replaces the first row.
	if err := repo.Upsert(entry(u, "r2", 88), nil); err != nil {
		t.Fatal(err)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM analyses`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("upsert must keep one row per url, got %d", n)
	}

	got, err := repo.Get(u)
	if err != nil {
		t.Fatal(err)
	}
	if got.RecordID != "r2" || got.DealScore != 88 {
		t.Fatalf("latest analysis should win: %+v", got)
	}
	if got.UpdatedAt == "" {
		t.Fatal("updated_at should be set on conflict")
	}
}

func TestHistoryAlternativesRoundTrip(t *testing.T) {
	db := memdb(t)
	repo := repos.NewHistoryRepo(db)

	alts := []domain.AlternativeProduct{
		{Title: "Top-rated Smartphones on Amazon", URL: "https://www.amazon.in/s?k=Smartphones", Price: 24999, Platform: "Amazon"},
	}
	const u = "https://www.flipkart.com/thing/p/1"
	if err := repo.Upsert(entry(u, "r1", 30), alts); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(u)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := repo.Alternatives(got)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0] != alts[0] {
		t.Fatalf("alternatives did not round-trip: %+v", decoded)
	}
}

func TestHistoryRecentOrder(t *testing.T) {
	db := memdb(t)
	repo := repos.NewHistoryRepo(db)

	urls := []string{
		"https://www.amazon.com/dp/a",
		"https://www.amazon.com/dp/b",
		"https://www.amazon.com/dp/c",
	}
	for i, u := range urls {
		e := entry(u, "r", 50)
		e.CreatedAt = "" // let the DB stamp it
		if err := repo.Upsert(e, nil); err != nil {
			t.Fatal(err)
		}
		// Force distinct created_at values for a deterministic order.
		if _, err := db.Exec(`UPDATE analyses SET created_at = ? WHERE product_url = ?`,
			"2026-08-31 10:00:0"+string(rune('0'+i)), u); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].ProductURL != urls[2] || got[1].ProductURL != urls[1] {
		t.Fatalf("want newest first, got %s then %s", got[0].ProductURL, got[1].ProductURL)
	}
}
