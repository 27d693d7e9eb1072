// Package symbols maps company names to ticker symbols and provides
// fundamentals and daily history via the Alpha Vantage API.
package symbols

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

const DefaultBaseURL = "https://www.alphavantage.co/query"

// ThreeMonthBars is roughly three months of trading days.
const ThreeMonthBars = 63

// Client handles Alpha Vantage API requests.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Alpha Vantage API client.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL creates a client against an alternate endpoint, using
// the supplied HTTP client. Useful for tests.
func NewClientWithBaseURL(apiKey, baseURL string, client *http.Client) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, client: client}
}

type symbolSearchResponse struct {
	BestMatches []struct {
		Symbol   string `json:"1. symbol"`
		Name     string `json:"2. name"`
		Type     string `json:"3. type"`
		Region   string `json:"4. region"`
		Currency string `json:"8. currency"`
	} `json:"bestMatches"`
	Note        string `json:"Note"`
	Information string `json:"Information"`
}

type overviewResponse struct {
	Symbol               string `json:"Symbol"`
	Name                 string `json:"Name"`
	Currency             string `json:"Currency"`
	Sector               string `json:"Sector"`
	Industry             string `json:"Industry"`
	MarketCapitalization string `json:"MarketCapitalization"`
	Note                 string `json:"Note"`
	Information          string `json:"Information"`
}

type dailyResponse struct {
	TimeSeries map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (Daily)"`
	Note        string `json:"Note"`
	Information string `json:"Information"`
}

// SearchSymbol resolves a company name to a ticker symbol. Matches in the
// "United States" region are preferred; otherwise the provider's first match
// is taken.
func (c *Client) SearchSymbol(ctx context.Context, name string) (string, error) {
	q := url.Values{}
	q.Set("function", "SYMBOL_SEARCH")
	q.Set("keywords", name)

	var payload symbolSearchResponse
	if err := c.get(ctx, q, &payload); err != nil {
		return "", err
	}
	if err := throttled(payload.Note, payload.Information); err != nil {
		return "", err
	}
	if len(payload.BestMatches) == 0 {
		return "", &types.NotFoundError{Kind: "ticker symbol", Query: name}
	}
	for _, m := range payload.BestMatches {
		if m.Region == "United States" {
			return m.Symbol, nil
		}
	}
	return payload.BestMatches[0].Symbol, nil
}

// MarketCap returns the market capitalization for a symbol, or 0 when the
// provider has no figure.
func (c *Client) MarketCap(ctx context.Context, sym string) (int64, error) {
	q := url.Values{}
	q.Set("function", "OVERVIEW")
	q.Set("symbol", sym)

	var payload overviewResponse
	if err := c.get(ctx, q, &payload); err != nil {
		return 0, err
	}
	if err := throttled(payload.Note, payload.Information); err != nil {
		return 0, err
	}
	if payload.MarketCapitalization == "" || payload.MarketCapitalization == "None" {
		return 0, nil
	}
	n, err := strconv.ParseInt(payload.MarketCapitalization, 10, 64)
	if err != nil {
		return 0, &types.TransientError{Op: fmt.Sprintf("overview %s: bad market cap %q", sym, payload.MarketCapitalization)}
	}
	return n, nil
}

// DailyHistory returns up to days daily closes for a symbol, oldest first.
func (c *Client) DailyHistory(ctx context.Context, sym string, days int) ([]types.PriceBar, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", sym)
	q.Set("outputsize", "compact")

	var payload dailyResponse
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}
	if err := throttled(payload.Note, payload.Information); err != nil {
		return nil, err
	}
	if len(payload.TimeSeries) == 0 {
		return nil, &types.NotFoundError{Kind: "price history", Query: sym}
	}

	dates := make([]string, 0, len(payload.TimeSeries))
	for d := range payload.TimeSeries {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	bars := make([]types.PriceBar, 0, len(dates))
	for _, d := range dates {
		px, err := strconv.ParseFloat(payload.TimeSeries[d].Close, 64)
		if err != nil {
			continue
		}
		bars = append(bars, types.PriceBar{Date: d, Close: px})
	}
	if days > 0 && len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func (c *Client) get(ctx context.Context, q url.Values, out any) error {
	// The key check must fail before any network I/O.
	if c.apiKey == "" {
		return &types.TransientError{Op: "alpha vantage: API key is missing"}
	}
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return &types.TransientError{Op: "alpha vantage request", Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &types.TransientError{Op: "alpha vantage request", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &types.TransientError{Op: fmt.Sprintf("alpha vantage http %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &types.TransientError{Op: "alpha vantage decode", Err: err}
	}
	return nil
}

// Alpha Vantage signals rate limiting with a 200 response carrying a Note or
// Information field instead of data.
func throttled(note, info string) error {
	if note != "" || info != "" {
		return &types.TransientError{Op: "alpha vantage throttled"}
	}
	return nil
}
