package render

import (
	"time"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

// reportModel is the output shape shared by the JSON and YAML renderers.
type reportModel struct {
	Company        string            `json:"company" yaml:"company"`
	Title          string            `json:"title" yaml:"title"`
	Industry       string            `json:"industry" yaml:"industry"`
	Summary        string            `json:"summary" yaml:"summary"`
	Ticker         string            `json:"ticker,omitempty" yaml:"ticker,omitempty"`
	Quote          *quoteModel       `json:"quote,omitempty" yaml:"quote,omitempty"`
	MarketCap      int64             `json:"market_cap,omitempty" yaml:"market_cap,omitempty"`
	Sectors        []sectorModel     `json:"sectors" yaml:"sectors"`
	Competitors    []string          `json:"competitors" yaml:"competitors"`
	TopCompetitors []competitorModel `json:"top_competitors,omitempty" yaml:"top_competitors,omitempty"`
	History        []barModel        `json:"history,omitempty" yaml:"history,omitempty"`
}

type quoteModel struct {
	Price     float64   `json:"price" yaml:"price"`
	PriceFmt  string    `json:"price_fmt" yaml:"price_fmt"`
	Currency  string    `json:"currency" yaml:"currency"`
	ChangePct string    `json:"change_pct,omitempty" yaml:"change_pct,omitempty"`
	Time      time.Time `json:"time" yaml:"time"`
}

type sectorModel struct {
	Sector      string   `json:"sector" yaml:"sector"`
	Competitors []string `json:"competitors" yaml:"competitors"`
}

type competitorModel struct {
	Name      string  `json:"name" yaml:"name"`
	Ticker    string  `json:"ticker" yaml:"ticker"`
	MarketCap int64   `json:"market_cap" yaml:"market_cap"`
	Price     float64 `json:"price" yaml:"price"`
}

type barModel struct {
	Date  string  `json:"date" yaml:"date"`
	Close float64 `json:"close" yaml:"close"`
}

func toModel(r *types.Report) reportModel {
	m := reportModel{
		Company:     r.Profile.Name,
		Title:       r.Profile.Title,
		Industry:    r.Profile.Industry,
		Summary:     r.Profile.Summary,
		Ticker:      r.Ticker,
		MarketCap:   r.MarketCap,
		Competitors: r.Competitors,
	}
	if r.Quote != nil {
		m.Quote = &quoteModel{
			Price:     r.Quote.Price,
			PriceFmt:  r.Quote.PriceFmt,
			Currency:  r.Quote.Currency,
			ChangePct: r.Quote.ChangePct,
			Time:      r.Quote.Time,
		}
	}
	for _, s := range r.Sectors {
		m.Sectors = append(m.Sectors, sectorModel{Sector: s.Sector, Competitors: s.Competitors})
	}
	for _, c := range r.TopCompetitors {
		m.TopCompetitors = append(m.TopCompetitors, competitorModel{
			Name: c.Name, Ticker: c.Ticker, MarketCap: c.MarketCap, Price: c.Price,
		})
	}
	for _, b := range r.History {
		m.History = append(m.History, barModel{Date: b.Date, Close: b.Close})
	}
	return m
}
