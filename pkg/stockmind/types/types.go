package types

import "time"

// CompanyProfile is the encyclopedia view of a company.
type CompanyProfile struct {
	Name     string // company name as entered by the user
	Title    string // resolved article title
	Industry string // best-effort, may be empty for unusual articles
	Summary  string
}

// SectorCompetitors groups competitor names under the sector the model assigned.
// Sector may be empty for unstructured single-line model output.
type SectorCompetitors struct {
	Sector      string
	Competitors []string
}

// Flatten returns all competitor names in model output order.
func Flatten(sectors []SectorCompetitors) []string {
	out := make([]string, 0, 8)
	for _, s := range sectors {
		out = append(out, s.Competitors...)
	}
	return out
}

// PriceQuote is a point-in-time price observation for a ticker.
type PriceQuote struct {
	Ticker    string
	Name      string // provider's name for the listed company
	Price     float64
	PriceFmt  string // provider-formatted price, preferred for display
	Currency  string
	ChangePct string
	ChangeRaw float64
	Time      time.Time
}

// PriceBar is one daily close observation.
type PriceBar struct {
	Date  string // YYYY-MM-DD, provider timezone
	Close float64
}

// CompetitorQuote is an enriched competitor: resolved ticker, market cap and price.
type CompetitorQuote struct {
	Name      string
	Ticker    string
	MarketCap int64
	Price     float64
	PriceFmt  string
}

// Report is the single-run output record. Quote is nil when no ticker resolved.
type Report struct {
	Profile        CompanyProfile
	Sectors        []SectorCompetitors
	Competitors    []string
	Ticker         string
	Quote          *PriceQuote
	MarketCap      int64
	History        []PriceBar
	TopCompetitors []CompetitorQuote
}
