// Package provider defines the product data boundary. Real marketplace
// fetching lives outside this service; the engine only depends on the
// snapshot shape coming back.
package provider

import (
	"hash/fnv"
	"strings"

	"dealscope/internal/domain"
)

// SnapshotProvider returns a product snapshot for a classified URL. A failing
// provider is surfaced to callers as UpstreamUnavailable by the analysis
// service.
type SnapshotProvider interface {
	FetchSnapshot(url, platform, category string) (domain.ProductSnapshot, error)
}

// catalogEntry parameterizes snapshot synthesis per category.
type catalogEntry struct {
	Brands    []string
	BasePrice float64 // low end of the category price band
	Spread    float64 // band width
}

var catalog = map[string]catalogEntry{
	"Smartphones":    {[]string{"Samsung", "OnePlus", "Fairphone", "Xiaomi", "Motorola"}, 12000, 60000},
	"Laptops":        {[]string{"Lenovo", "Dell", "HP", "Asus", "Acer"}, 35000, 90000},
	"Audio":          {[]string{"Sony", "JBL", "Bose", "Sennheiser", "boAt"}, 1500, 25000},
	"Footwear":       {[]string{"Veja", "Nike", "Adidas", "Puma", "Allbirds"}, 1800, 9000},
	"Fashion":        {[]string{"Patagonia", "Levis", "H&M", "Zara", "Tentree"}, 800, 5000},
	"Wearables":      {[]string{"Garmin", "Fitbit", "Noise", "Amazfit"}, 2500, 30000},
	"Televisions":    {[]string{"LG", "Samsung", "Sony", "TCL"}, 18000, 80000},
	"Books":          {[]string{"Penguin", "HarperCollins", "OReilly"}, 300, 1500},
	"Home & Kitchen": {[]string{"Prestige", "Philips", "Milton"}, 900, 12000},
	"Electronics":    {[]string{"Sony", "Samsung", "Anker", "Logitech"}, 1000, 40000},
}

var availabilities = []domain.Availability{
	domain.InStock, domain.InStock, domain.InStock, domain.Limited, domain.OutOfStock,
}

// Deterministic synthesizes a stable snapshot per URL: the same URL always
// yields the same product. It stands in for a live marketplace fetcher in
// development and tests.
type Deterministic struct{}

func NewDeterministic() *Deterministic { return &Deterministic{} }

func (p *Deterministic) FetchSnapshot(url, platform, category string) (domain.ProductSnapshot, error) {
	entry, ok := catalog[category]
	if !ok {
		entry = catalog["Electronics"]
	}

	h := hash64(url)
	brand := entry.Brands[int(h%uint64(len(entry.Brands)))]

	// Spread prices across the category band; keep two decimals.
	current := entry.BasePrice + float64(h%10000)/10000*entry.Spread
	current = float64(int(current*100)) / 100

	// Roughly two thirds of products carry a visible discount of 5-45%.
	var original float64
	if h%3 != 0 {
		discount := 0.05 + float64(h%41)/100
		original = float64(int(current/(1-discount)*100)) / 100
	}

	// Market average hovers around the current price for half the products.
	var market float64
	if h%2 == 0 {
		market = float64(int(current*(0.9+float64(h%21)/100)*100)) / 100
	}

	var signals *domain.EthicalSignals
	if h%4 == 0 {
		signals = &domain.EthicalSignals{
			SustainabilityCertified: h%8 == 0,
			FairLabor:               h%12 == 0,
			RecycledMaterials:       h%16 == 0,
		}
	}

	return domain.ProductSnapshot{
		Title:         titleFromURL(url, brand, category),
		Category:      category,
		Brand:         brand,
		CurrentPrice:  current,
		OriginalPrice: original,
		Currency:      "INR",
		MarketAverage: market,
		Rating:        3.2 + float64(h%18)/10, // 3.2-4.9
		ReviewCount:   int(h % 5000),
		Availability:  availabilities[int(h%uint64(len(availabilities)))],
		Signals:       signals,
	}, nil
}

// titleFromURL derives a readable title from the last meaningful path
// segment, falling back to brand + category.
func titleFromURL(url, brand, category string) string {
	seg := url
	if i := strings.Index(seg, "?"); i >= 0 {
		seg = seg[:i]
	}
	seg = strings.Trim(seg, "/")
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	seg = strings.NewReplacer("-", " ", "_", " ", "+", " ").Replace(seg)
	seg = strings.TrimSpace(seg)
	if seg == "" || strings.Contains(seg, ".") {
		return brand + " " + category
	}
	words := strings.Fields(seg)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func hash64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
