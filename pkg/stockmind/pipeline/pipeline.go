// Package pipeline sequences the four stages of a company analysis:
// encyclopedia lookup, competitor finding, ticker resolution and price fetch.
package pipeline

import (
	"context"
	"errors"
	"sort"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/quote"
	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

// CompanyLookup resolves a free-text company name to a profile.
type CompanyLookup interface {
	Lookup(ctx context.Context, name string) (types.CompanyProfile, error)
}

// CompetitorFinder names peer competitors for a company profile.
type CompetitorFinder interface {
	Find(ctx context.Context, profile types.CompanyProfile) ([]types.SectorCompetitors, error)
}

// TickerResolver maps company names to symbols and provides fundamentals.
type TickerResolver interface {
	SearchSymbol(ctx context.Context, name string) (string, error)
	MarketCap(ctx context.Context, sym string) (int64, error)
	DailyHistory(ctx context.Context, sym string, days int) ([]types.PriceBar, error)
}

// Runner executes the stages in order. Each external call is single-attempt
// and blocking; a stage error aborts the run, except an unresolved ticker,
// which skips the price stage and leaves Report.Quote nil.
type Runner struct {
	Lookup   CompanyLookup
	Finder   CompetitorFinder
	Resolver TickerResolver
	Quotes   quote.Service

	Top         int // competitors to enrich and rank by market cap; 0 disables
	HistoryDays int // daily closes to fetch for the resolved ticker; 0 disables
}

func (r *Runner) Run(ctx context.Context, name string) (*types.Report, error) {
	profile, err := r.Lookup.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	sectors, err := r.Finder.Find(ctx, profile)
	if err != nil {
		return nil, err
	}

	rep := &types.Report{
		Profile:     profile,
		Sectors:     sectors,
		Competitors: types.Flatten(sectors),
	}

	sym, err := r.Resolver.SearchSymbol(ctx, name)
	if err != nil {
		var nf *types.NotFoundError
		if errors.As(err, &nf) {
			// Private or unlisted company: the report stands without a quote.
			return rep, nil
		}
		return nil, err
	}
	rep.Ticker = sym

	q, err := r.Quotes.Latest(ctx, sym)
	if err != nil {
		return nil, err
	}
	rep.Quote = &q

	// Market cap is decoration on the report; a miss does not kill the run.
	if mcap, err := r.Resolver.MarketCap(ctx, sym); err == nil {
		rep.MarketCap = mcap
	}

	if r.HistoryDays > 0 {
		bars, err := r.Resolver.DailyHistory(ctx, sym, r.HistoryDays)
		if err != nil {
			return nil, err
		}
		rep.History = bars
	}

	if r.Top > 0 {
		rep.TopCompetitors = r.rankCompetitors(ctx, rep.Competitors)
	}
	return rep, nil
}

// rankCompetitors resolves each competitor name to a ticker, fetches market
// cap and price, dedupes by ticker and keeps the Top largest by market cap.
// Names that fail to resolve are expected (private companies, model noise)
// and are skipped.
func (r *Runner) rankCompetitors(ctx context.Context, names []string) []types.CompetitorQuote {
	seenName := map[string]struct{}{}
	seenSym := map[string]struct{}{}
	var out []types.CompetitorQuote
	for _, name := range names {
		if _, ok := seenName[name]; ok {
			continue
		}
		seenName[name] = struct{}{}

		sym, err := r.Resolver.SearchSymbol(ctx, name)
		if err != nil {
			continue
		}
		if _, ok := seenSym[sym]; ok {
			continue
		}
		mcap, err := r.Resolver.MarketCap(ctx, sym)
		if err != nil || mcap == 0 {
			continue
		}
		q, err := r.Quotes.Latest(ctx, sym)
		if err != nil {
			continue
		}
		seenSym[sym] = struct{}{}
		out = append(out, types.CompetitorQuote{
			Name:      name,
			Ticker:    sym,
			MarketCap: mcap,
			Price:     q.Price,
			PriceFmt:  q.PriceFmt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MarketCap > out[j].MarketCap })
	if len(out) > r.Top {
		out = out[:r.Top]
	}
	return out
}
