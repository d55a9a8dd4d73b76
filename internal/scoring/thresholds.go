package scoring

// Decision and scoring thresholds. These used to live inline as magic numbers
// in the analysis routine; named so behavior can be audited and tested
// independently of the formulas.
const (
	// Deal-score decision bands: > DealBuyNowThreshold buys now,
	// > DealWaitThreshold waits, anything else researches more.
	DealBuyNowThreshold = 85
	DealWaitThreshold   = 65

	// Recommendation wording bands.
	DealExcellentBand = 90
	DealGoodBand      = 75

	// Price-trend certainty mirrors the deal score.
	CertaintyHighThreshold   = 80
	CertaintyMediumThreshold = 60

	// Trust levels from data reliability.
	TrustHighThreshold = 80
	TrustLowThreshold  = 50

	// Ethical floors. Below DefaultEthicalFloor the decision is forced to
	// avoid regardless of the deal; below EthicalWarnFloor a warning is
	// attached.
	DefaultEthicalFloor = 30
	EthicalWarnFloor    = 50

	// Deal warning floor: below this the discount is too thin to call a deal.
	DealWarnFloor = 40
)
