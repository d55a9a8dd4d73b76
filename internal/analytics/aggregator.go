// Package analytics keeps a bounded in-memory log of completed analyses and
// derives running statistics from it. One Aggregator is constructed per
// process and shared by reference across request handlers.
package analytics

import (
	"strings"
	"sync"
	"time"

	"dealscope/internal/domain"
)

// DefaultCapacity bounds the in-memory window.
const DefaultCapacity = 1000

type Aggregator struct {
	mu       sync.Mutex
	window   []domain.AnalysisRecord // ordered, oldest first
	total    int64                   // lifetime counter, never decremented
	capacity int
	now      func() time.Time
}

// New builds an aggregator. capacity <= 0 falls back to DefaultCapacity;
// now == nil falls back to time.Now (injectable for tests).
func New(capacity int, now func() time.Time) *Aggregator {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		window:   make([]domain.AnalysisRecord, 0, capacity),
		capacity: capacity,
		now:      now,
	}
}

// Append adds a completed record to the tail of the window, evicting from the
// head when over capacity. Eviction and the lifetime-counter increment happen
// under one lock acquisition, so concurrent appends can never both skip
// eviction. Returns the lifetime total after this append. The only error is
// the capacity invariant assertion, which signals a programming fault, not an
// operational condition.
func (a *Aggregator) Append(rec domain.AnalysisRecord) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.window = append(a.window, rec)
	if n := len(a.window) - a.capacity; n > 0 {
		a.window = a.window[:copy(a.window, a.window[n:])]
	}
	a.total++

	if len(a.window) > a.capacity {
		return a.total, domain.NewError(domain.ErrCapacityInvariantViolation,
			"window holds %d records, capacity %d", len(a.window), a.capacity)
	}
	return a.total, nil
}

// Stats derives the aggregate statistics from the current window. All values
// are computed under the lock, so a single call never mixes two generations
// of the window.
func (a *Aggregator) Stats() domain.AggregateStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := domain.AggregateStats{TotalAnalyses: a.total}

	today := a.now()
	y, m, d := today.Date()

	var sumMs int64
	var ethicalSum, ethicalN int
	categories := map[string]struct{}{}

	for _, rec := range a.window {
		ry, rm, rd := rec.Timestamp.Date()
		if ry == y && rm == m && rd == d {
			stats.AnalysesToday++
		}
		sumMs += rec.ProcessingTimeMs
		categories[rec.Category] = struct{}{}
		if rec.EthicalScore != nil {
			ethicalSum += *rec.EthicalScore
			ethicalN++
		}
	}

	if n := len(a.window); n > 0 {
		stats.AverageProcessingTimeMs = float64(sumMs) / float64(n)
		stats.DistinctCategoryCount = len(categories)
	}
	if ethicalN > 0 {
		avg := float64(ethicalSum) / float64(ethicalN)
		stats.AverageEthicalScore = &avg
	}
	return stats
}

// Recent returns up to limit records, newest first, optionally filtered by a
// case-insensitive category substring. The returned slice is a copy; the
// window is never exposed.
func (a *Aggregator) Recent(categoryFilter string, limit int) []domain.AnalysisRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	if limit <= 0 {
		limit = len(a.window)
	}
	filter := strings.ToLower(strings.TrimSpace(categoryFilter))

	out := make([]domain.AnalysisRecord, 0, min(limit, len(a.window)))
	for i := len(a.window) - 1; i >= 0 && len(out) < limit; i-- {
		rec := a.window[i]
		if filter != "" && !strings.Contains(strings.ToLower(rec.Category), filter) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Len reports the current window length.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.window)
}
