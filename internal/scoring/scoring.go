package scoring

import (
	"fmt"
	"math"
	"strings"

	"dealscope/internal/domain"
)

// Engine turns a product snapshot into scores and a decision. Deterministic:
// the same snapshot always produces the same bundle.
type Engine struct {
	EthicalFloor int
}

func NewEngine(ethicalFloor int) *Engine {
	if ethicalFloor <= 0 {
		ethicalFloor = DefaultEthicalFloor
	}
	return &Engine{EthicalFloor: ethicalFloor}
}

// Result bundles everything a single scoring run produces.
type Result struct {
	Trend    domain.PriceTrend
	Scores   domain.ScoreBundle
	Decision domain.Decision
}

// Score validates the snapshot, derives the three scores and renders the
// decision. A snapshot missing its title or a positive current price fails
// with IncompleteSnapshot; it is never silently scored.
func (e *Engine) Score(snap domain.ProductSnapshot) (Result, error) {
	if strings.TrimSpace(snap.Title) == "" {
		return Result{}, domain.NewError(domain.ErrIncompleteSnapshot, "snapshot has no title")
	}
	if snap.CurrentPrice <= 0 {
		return Result{}, domain.NewError(domain.ErrIncompleteSnapshot, "snapshot has no current price")
	}

	deal := dealScore(snap)
	ethical := ethicalScore(snap)
	trust := trustScore(snap)

	bundle := domain.ScoreBundle{DealScore: deal, EthicalScore: ethical, Trust: trust}
	trend := domain.PriceTrend{
		Current:       snap.CurrentPrice,
		Original:      snap.OriginalPrice,
		Currency:      snap.Currency,
		MarketAverage: snap.MarketAverage,
		DataCertainty: certainty(deal),
	}
	decision := e.decide(bundle)

	return Result{Trend: trend, Scores: bundle, Decision: decision}, nil
}

// dealScore maps discount percentage (plus market positioning when known)
// onto 0-100. Monotonic non-decreasing in discount percentage: the market
// term does not depend on the discount.
func dealScore(snap domain.ProductSnapshot) int {
	discountPct := 0.0
	if snap.OriginalPrice > snap.CurrentPrice {
		discountPct = (snap.OriginalPrice - snap.CurrentPrice) / snap.OriginalPrice * 100
	}

	score := 40 + 1.8*discountPct

	if snap.MarketAverage > 0 {
		// Up to +/-10 for sitting below/above the market average.
		positioning := (snap.MarketAverage - snap.CurrentPrice) / snap.MarketAverage * 25
		score += math.Max(-10, math.Min(10, positioning))
	}

	return clampScore(score)
}

// Brands with a public sustainability track record. Lowercased.
var ethicalBrands = map[string]struct{}{
	"patagonia": {}, "fairphone": {}, "veja": {}, "allbirds": {},
	"tentree": {}, "the body shop": {}, "seventh generation": {},
}

// Categories with structurally poor ethics signals. Lowercased.
var ethicalCategoryPenalty = map[string]int{
	"fashion":     -10, // fast-fashion supply chains
	"electronics": -5,  // e-waste
	"smartphones": -5,
}

// ethicalScore derives a 0-100 ethics measure from the signals the snapshot
// actually carries. With explicit sustainability flags those dominate;
// without them the score degrades to brand/category adjustments over a
// neutral base, never fabricating precision the data cannot support.
func ethicalScore(snap domain.ProductSnapshot) int {
	score := 50.0

	if s := snap.Signals; s != nil {
		if s.SustainabilityCertified {
			score += 20
		}
		if s.FairLabor {
			score += 15
		}
		if s.RecycledMaterials {
			score += 10
		}
	}

	if _, ok := ethicalBrands[strings.ToLower(snap.Brand)]; ok {
		score += 15
	}
	if p, ok := ethicalCategoryPenalty[strings.ToLower(snap.Category)]; ok {
		score += float64(p)
	}
	// Community-verified quality as a weak proxy for a brand that stands by
	// its products.
	if snap.Rating >= 4.5 && snap.ReviewCount >= 500 {
		score += 5
	}

	return clampScore(score)
}

// trustScore reports how much of the snapshot was present vs defaulted.
func trustScore(snap domain.ProductSnapshot) domain.TrustScore {
	present := 0
	total := 6
	if strings.TrimSpace(snap.Title) != "" {
		present++
	}
	if strings.TrimSpace(snap.Brand) != "" {
		present++
	}
	if snap.OriginalPrice > 0 {
		present++
	}
	if snap.Rating > 0 {
		present++
	}
	if snap.ReviewCount > 0 {
		present++
	}
	if snap.Availability != "" && snap.Availability != domain.UnknownAvailability {
		present++
	}

	reliability := int(math.Round(float64(present) / float64(total) * 100))

	level := domain.TrustMedium
	switch {
	case reliability >= TrustHighThreshold:
		level = domain.TrustHigh
	case reliability < TrustLowThreshold:
		level = domain.TrustLow
	}
	return domain.TrustScore{DataReliability: reliability, OverallTrust: level}
}

func certainty(deal int) domain.DataCertainty {
	switch {
	case deal > CertaintyHighThreshold:
		return domain.CertaintyHigh
	case deal > CertaintyMediumThreshold:
		return domain.CertaintyMedium
	default:
		return domain.CertaintyLow
	}
}

// decide applies the fixed decision thresholds. The ethical floor wins over
// any deal-based outcome.
func (e *Engine) decide(b domain.ScoreBundle) domain.Decision {
	var kind domain.DecisionKind
	var urgency domain.Urgency

	switch {
	case b.EthicalScore < e.EthicalFloor:
		kind, urgency = domain.Avoid, domain.UrgencyLow
	case b.DealScore > DealBuyNowThreshold:
		kind, urgency = domain.BuyNow, domain.UrgencyHigh
	case b.DealScore > DealWaitThreshold:
		kind, urgency = domain.Wait, domain.UrgencyMedium
	default:
		kind, urgency = domain.ResearchMore, domain.UrgencyLow
	}

	return domain.Decision{
		Kind:           kind,
		Recommendation: recommendation(kind, b),
		Confidence:     float64(b.DealScore) / 100,
		Urgency:        urgency,
		Warnings:       warnings(b),
	}
}

// recommendation renders the fixed template for a decision kind.
func recommendation(kind domain.DecisionKind, b domain.ScoreBundle) string {
	switch kind {
	case domain.BuyNow:
		quality := "Strong"
		if b.DealScore >= DealExcellentBand {
			quality = "Excellent"
		}
		return fmt.Sprintf("%s deal (score %d/100) with %s data trust. Price is unlikely to drop further soon.",
			quality, b.DealScore, b.Trust.OverallTrust)
	case domain.Wait:
		quality := "Decent"
		if b.DealScore >= DealGoodBand {
			quality = "Good"
		}
		return fmt.Sprintf("%s deal (score %d/100), but not a standout. Watching for a deeper cut may pay off.",
			quality, b.DealScore)
	case domain.Avoid:
		return fmt.Sprintf("Ethical score %d/100 is below the floor. Consider an alternative brand or seller.",
			b.EthicalScore)
	default:
		return fmt.Sprintf("Deal score %d/100 is inconclusive with %s data trust. Compare prices elsewhere before committing.",
			b.DealScore, b.Trust.OverallTrust)
	}
}

// warnings emits short advisories when a score sits under its floor. Never
// an error.
func warnings(b domain.ScoreBundle) []string {
	var out []string
	if b.EthicalScore < EthicalWarnFloor {
		out = append(out, fmt.Sprintf("ethical score %d is below %d; brand or category carries ethics concerns", b.EthicalScore, EthicalWarnFloor))
	}
	if b.DealScore < DealWarnFloor {
		out = append(out, fmt.Sprintf("deal score %d is below %d; discount is too thin to call this a deal", b.DealScore, DealWarnFloor))
	}
	return out
}

func clampScore(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}
