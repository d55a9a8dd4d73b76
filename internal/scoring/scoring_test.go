package scoring_test

import (
	"errors"
	"testing"

	"dealscope/internal/domain"
	"dealscope/internal/scoring"
)

func snap() domain.ProductSnapshot {
	return domain.ProductSnapshot{
		Title:         "Trail Runner Shoe",
		Category:      "Footwear",
		Brand:         "Acme",
		CurrentPrice:  300,
		OriginalPrice: 400,
		Currency:      "INR",
		Rating:        4.2,
		ReviewCount:   120,
		Availability:  domain.InStock,
	}
}

func TestScoreRangesAlwaysValid(t *testing.T) {
	eng := scoring.NewEngine(0)
	snaps := []domain.ProductSnapshot{
		snap(),
		{Title: "Bare", CurrentPrice: 10},
		{Title: "Deep Cut", Category: "Fashion", CurrentPrice: 50, OriginalPrice: 1000, MarketAverage: 40},
		{Title: "Overpriced", CurrentPrice: 900, MarketAverage: 300, Rating: 1.1, ReviewCount: 3},
		{Title: "Certified", Category: "Fashion", Brand: "Patagonia", CurrentPrice: 200, OriginalPrice: 260,
			Rating: 4.9, ReviewCount: 4000, Availability: domain.Limited,
			Signals: &domain.EthicalSignals{SustainabilityCertified: true, FairLabor: true, RecycledMaterials: true}},
	}
	for _, s := range snaps {
		res, err := eng.Score(s)
		if err != nil {
			t.Fatalf("%s: %v", s.Title, err)
		}
		b := res.Scores
		if b.DealScore < 0 || b.DealScore > 100 {
			t.Fatalf("%s: deal score %d out of range", s.Title, b.DealScore)
		}
		if b.EthicalScore < 0 || b.EthicalScore > 100 {
			t.Fatalf("%s: ethical score %d out of range", s.Title, b.EthicalScore)
		}
		if b.Trust.DataReliability < 0 || b.Trust.DataReliability > 100 {
			t.Fatalf("%s: reliability %d out of range", s.Title, b.Trust.DataReliability)
		}
		if res.Decision.Confidence != float64(b.DealScore)/100 {
			t.Fatalf("%s: confidence %v does not mirror deal score %d", s.Title, res.Decision.Confidence, b.DealScore)
		}
	}
}

func TestDealScoreMonotonicInDiscount(t *testing.T) {
	eng := scoring.NewEngine(0)
	prev := -1
	for pct := 0; pct <= 80; pct += 5 {
		s := snap()
		s.OriginalPrice = 1000
		s.CurrentPrice = 1000 - float64(pct)*10
		res, err := eng.Score(s)
		if err != nil {
			t.Fatal(err)
		}
		if res.Scores.DealScore < prev {
			t.Fatalf("deal score dropped at %d%% discount: %d < %d", pct, res.Scores.DealScore, prev)
		}
		prev = res.Scores.DealScore
	}
}

func TestDecisionThresholds(t *testing.T) {
	eng := scoring.NewEngine(0)

	// 30% discount -> 94, buy now with high urgency.
	s := snap()
	s.CurrentPrice, s.OriginalPrice = 700, 1000
	res, err := eng.Score(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Scores.DealScore <= scoring.DealBuyNowThreshold {
		t.Fatalf("want score above %d, got %d", scoring.DealBuyNowThreshold, res.Scores.DealScore)
	}
	if res.Decision.Kind != domain.BuyNow || res.Decision.Urgency != domain.UrgencyHigh {
		t.Fatalf("want buy_now/high, got %s/%s", res.Decision.Kind, res.Decision.Urgency)
	}
	if res.Trend.DataCertainty != domain.CertaintyHigh {
		t.Fatalf("want high certainty at score %d, got %s", res.Scores.DealScore, res.Trend.DataCertainty)
	}

	// No discount -> 40, research more with low urgency.
	s = snap()
	s.OriginalPrice = 0
	res, err = eng.Score(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Decision.Kind != domain.ResearchMore || res.Decision.Urgency != domain.UrgencyLow {
		t.Fatalf("want research_more/low, got %s/%s", res.Decision.Kind, res.Decision.Urgency)
	}
	if res.Trend.DataCertainty != domain.CertaintyLow {
		t.Fatalf("want low certainty, got %s", res.Trend.DataCertainty)
	}
}

// 25% discount with no ethical signal lands in the good band and never
// forces avoid on its own.
func TestQuarterDiscountScenario(t *testing.T) {
	eng := scoring.NewEngine(0)
	res, err := eng.Score(snap())
	if err != nil {
		t.Fatal(err)
	}
	if res.Scores.DealScore < scoring.DealGoodBand {
		t.Fatalf("25%% discount should reach the good band, got %d", res.Scores.DealScore)
	}
	if res.Decision.Kind == domain.Avoid {
		t.Fatalf("avoid must come from the ethical floor, not the deal score")
	}
	if res.Decision.Kind != domain.Wait || res.Decision.Urgency != domain.UrgencyMedium {
		t.Fatalf("score %d should be wait/medium, got %s/%s", res.Scores.DealScore, res.Decision.Kind, res.Decision.Urgency)
	}
}

func TestEthicalFloorForcesAvoid(t *testing.T) {
	// Floor above what an unknown fast-fashion brand can reach (50-10=40).
	eng := scoring.NewEngine(45)
	s := snap()
	s.Category = "Fashion"
	s.CurrentPrice, s.OriginalPrice = 600, 1000 // deep discount, would be buy_now
	res, err := eng.Score(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Scores.DealScore <= scoring.DealBuyNowThreshold {
		t.Fatalf("precondition broken: want a buy_now-grade score, got %d", res.Scores.DealScore)
	}
	if res.Decision.Kind != domain.Avoid {
		t.Fatalf("ethical floor must override the deal, got %s", res.Decision.Kind)
	}
	if res.Decision.Urgency != domain.UrgencyLow {
		t.Fatalf("avoid carries low urgency, got %s", res.Decision.Urgency)
	}
	if len(res.Decision.Warnings) == 0 {
		t.Fatal("expected an ethics warning")
	}
}

func TestEthicalSignalsRaiseScore(t *testing.T) {
	eng := scoring.NewEngine(0)
	plain := snap()
	flagged := snap()
	flagged.Signals = &domain.EthicalSignals{SustainabilityCertified: true, FairLabor: true}

	rp, err := eng.Score(plain)
	if err != nil {
		t.Fatal(err)
	}
	rf, err := eng.Score(flagged)
	if err != nil {
		t.Fatal(err)
	}
	if rf.Scores.EthicalScore <= rp.Scores.EthicalScore {
		t.Fatalf("signals should raise the ethical score: %d vs %d", rf.Scores.EthicalScore, rp.Scores.EthicalScore)
	}
}

func TestTrustReflectsPresence(t *testing.T) {
	eng := scoring.NewEngine(0)

	full := snap() // all six fields present
	res, err := eng.Score(full)
	if err != nil {
		t.Fatal(err)
	}
	if res.Scores.Trust.DataReliability != 100 || res.Scores.Trust.OverallTrust != domain.TrustHigh {
		t.Fatalf("full snapshot should be 100/high, got %+v", res.Scores.Trust)
	}

	bare := domain.ProductSnapshot{Title: "Bare", CurrentPrice: 10, Availability: domain.UnknownAvailability}
	res, err = eng.Score(bare)
	if err != nil {
		t.Fatal(err)
	}
	if res.Scores.Trust.OverallTrust != domain.TrustLow {
		t.Fatalf("bare snapshot should be low trust, got %+v", res.Scores.Trust)
	}
}

func TestThinDealWarning(t *testing.T) {
	eng := scoring.NewEngine(0)
	s := snap()
	s.OriginalPrice = 0
	s.CurrentPrice = 500
	s.MarketAverage = 400 // above market, no discount
	res, err := eng.Score(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Scores.DealScore >= scoring.DealWarnFloor {
		t.Fatalf("precondition broken: want score under %d, got %d", scoring.DealWarnFloor, res.Scores.DealScore)
	}
	if len(res.Decision.Warnings) == 0 {
		t.Fatal("expected a thin-deal warning")
	}
}

func TestIncompleteSnapshotRejected(t *testing.T) {
	eng := scoring.NewEngine(0)
	for _, s := range []domain.ProductSnapshot{
		{CurrentPrice: 100},            // no title
		{Title: "No Price"},            // no price
		{Title: "  ", CurrentPrice: 5}, // whitespace title
	} {
		_, err := eng.Score(s)
		if err == nil {
			t.Fatalf("%+v: expected error", s)
		}
		if !errors.Is(err, domain.ErrIncompleteSnapshot) {
			t.Fatalf("want IncompleteSnapshot, got %v", err)
		}
	}
}

func TestScoringDeterministic(t *testing.T) {
	eng := scoring.NewEngine(0)
	first, err := eng.Score(snap())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := eng.Score(snap())
		if err != nil {
			t.Fatal(err)
		}
		if again.Scores != first.Scores || again.Decision.Kind != first.Decision.Kind {
			t.Fatalf("scoring drifted: %+v vs %+v", again.Scores, first.Scores)
		}
	}
}
