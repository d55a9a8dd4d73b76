package classify

import (
	"net/url"
	"strings"

	"dealscope/internal/domain"
)

// Result of classifying a product URL.
type Result struct {
	Platform string `json:"platform"`
	Category string `json:"category"`
}

// categoryRule maps a path keyword to a category. Rules are checked in order;
// first hit wins so the more specific keywords come first.
type categoryRule struct {
	Keyword  string
	Category string
}

// platforms maps a registrable-domain marker to its marketplace name and
// category rules. Hostname matching is case-insensitive substring on the
// host only, never the path.
var platforms = []struct {
	Marker string
	Name   string
	Rules  []categoryRule
}{
	{"amazon.", "Amazon", []categoryRule{
		{"smartphone", "Smartphones"}, {"mobile", "Smartphones"}, {"phone", "Smartphones"},
		{"laptop", "Laptops"}, {"notebook", "Laptops"},
		{"headphone", "Audio"}, {"earbud", "Audio"}, {"speaker", "Audio"},
		{"shoe", "Footwear"}, {"sneaker", "Footwear"},
		{"watch", "Wearables"},
		{"book", "Books"},
		{"kitchen", "Home & Kitchen"}, {"furniture", "Home & Kitchen"},
	}},
	{"flipkart.", "Flipkart", []categoryRule{
		{"mobile", "Smartphones"}, {"smartphone", "Smartphones"},
		{"laptop", "Laptops"},
		{"tshirt", "Fashion"}, {"shirt", "Fashion"}, {"jean", "Fashion"},
		{"shoe", "Footwear"},
		{"tv", "Televisions"}, {"television", "Televisions"},
	}},
	{"myntra.", "Myntra", []categoryRule{
		{"shoe", "Footwear"}, {"sneaker", "Footwear"}, {"sandal", "Footwear"},
		{"dress", "Fashion"}, {"shirt", "Fashion"}, {"kurta", "Fashion"}, {"jean", "Fashion"},
		{"watch", "Wearables"},
	}},
	{"ajio.", "Ajio", []categoryRule{
		{"shoe", "Footwear"},
		{"dress", "Fashion"}, {"shirt", "Fashion"}, {"jean", "Fashion"},
	}},
	{"ebay.", "eBay", []categoryRule{
		{"phone", "Smartphones"},
		{"laptop", "Laptops"},
		{"collectible", "Collectibles"}, {"vintage", "Collectibles"},
	}},
	{"walmart.", "Walmart", []categoryRule{
		{"phone", "Smartphones"},
		{"laptop", "Laptops"},
		{"grocery", "Grocery"},
		{"toy", "Toys"},
	}},
	{"snapdeal.", "Snapdeal", []categoryRule{
		{"mobile", "Smartphones"},
		{"shoe", "Footwear"},
	}},
}

const (
	UnknownPlatform = "Unknown"
	// DefaultCategory is an explicit default for unknown hosts or paths with
	// no category keyword, not an error.
	DefaultCategory = "Electronics"
)

// URL maps a product URL to its marketplace and category. Same URL always
// yields the same pair. A URL that does not parse or has no host is a
// precondition violation (validation belongs upstream).
func URL(raw string) (Result, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Result{}, domain.NewError(domain.ErrInvalidInput, "not a well-formed product url: %q", raw)
	}

	host := strings.ToLower(u.Hostname())
	path := strings.ToLower(u.Path)

	for _, p := range platforms {
		if !strings.Contains(host, p.Marker) {
			continue
		}
		for _, r := range p.Rules {
			if strings.Contains(path, r.Keyword) {
				return Result{Platform: p.Name, Category: r.Category}, nil
			}
		}
		return Result{Platform: p.Name, Category: DefaultCategory}, nil
	}
	return Result{Platform: UnknownPlatform, Category: DefaultCategory}, nil
}
