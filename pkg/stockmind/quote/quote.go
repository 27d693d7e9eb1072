package quote

import (
	"context"
	"fmt"
	"time"

	yfgo "github.com/komsit37/yf-go"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

// Service fetches the latest traded price for a symbol.
type Service interface {
	Latest(ctx context.Context, sym string) (types.PriceQuote, error)
}

// YahooService implements Service using yf-go.
type YahooService struct {
	client  *yfgo.Client
	timeout time.Duration
}

func NewYahooService(timeout time.Duration) *YahooService {
	return &YahooService{client: yfgo.NewClient(), timeout: timeout}
}

func (s *YahooService) Latest(ctx context.Context, sym string) (types.PriceQuote, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	res, err := s.client.QuoteSummaryTyped(cctx, sym, []yfgo.QuoteSummaryModule{yfgo.ModulePrice})
	if err != nil {
		return types.PriceQuote{}, &types.TransientError{Op: fmt.Sprintf("quote %s", sym), Err: err}
	}
	if res.Price == nil {
		return types.PriceQuote{}, &types.NotFoundError{Kind: "price", Query: sym}
	}

	q := types.PriceQuote{Ticker: sym, Time: time.Now()}
	// Prefer the provider-formatted value, fall back to raw.
	p := res.Price.RegularMarketPrice
	if p.Raw != nil {
		q.Price = *p.Raw
	}
	if p.Fmt != "" {
		q.PriceFmt = p.Fmt
	} else {
		q.PriceFmt = fmt.Sprintf("%.2f", q.Price)
	}
	cp := res.Price.RegularMarketChangePercent
	if cp.Fmt != "" {
		q.ChangePct = cp.Fmt
	}
	if cp.Raw != nil {
		q.ChangeRaw = *cp.Raw
		if q.ChangePct == "" {
			q.ChangePct = fmt.Sprintf("%.2f%%", q.ChangeRaw)
		}
	}
	if res.Price.ShortName != "" {
		q.Name = res.Price.ShortName
	} else {
		q.Name = res.Price.LongName
	}
	q.Currency = res.Price.Currency
	if q.Currency == "" {
		q.Currency = "USD"
	}
	return q, nil
}
